package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
)

type AppointmentService struct {
	appointments repositories.AppointmentRepository
	doctors      repositories.DoctorRepository
	users        repositories.UserRepository
	locker       Locker
}

func NewAppointmentService(appointments repositories.AppointmentRepository, doctors repositories.DoctorRepository, users repositories.UserRepository, locker Locker) *AppointmentService {
	return &AppointmentService{appointments: appointments, doctors: doctors, users: users, locker: locker}
}

// Book reserves a doctor's slot for the user. A slot holds at most one
// appointment that has not been cancelled.
func (s *AppointmentService) Book(ctx context.Context, userID string, appointment *models.Appointment) error {
	if err := utils.ValidateAppointment(appointment); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return utils.NotFound("User not found")
	}
	doctor, err := s.doctors.GetByID(ctx, appointment.DoctorID)
	if err != nil {
		return fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil || !doctor.IsActive {
		return utils.NotFound("Doctor not found")
	}
	if !doctor.Available {
		return utils.Validation("Doctor not available")
	}

	slot := appointment.DoctorID + ":" + appointment.SlotDate + ":" + appointment.SlotTime
	return s.locker.WithLock(ctx, lockKey("appointment", slot), func() error {
		taken, err := s.appointments.SlotTaken(ctx, appointment.DoctorID, appointment.SlotDate, appointment.SlotTime)
		if err != nil {
			return fmt.Errorf("failed to check slot: %w", err)
		}
		if taken {
			return utils.Conflict("Slot not available")
		}
		appointment.UserID = userID
		appointment.Amount = doctor.Fees
		appointment.Cancelled = false
		appointment.IsCompleted = false
		appointment.Payment = false
		return s.appointments.Create(ctx, appointment)
	})
}

func (s *AppointmentService) ListForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return s.appointments.GetByUser(ctx, userID)
}

func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return s.appointments.GetByDoctor(ctx, doctorID)
}

func (s *AppointmentService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.appointments.GetAll(ctx)
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment == nil {
		return nil, utils.NotFound("Appointment not found")
	}
	return appointment, nil
}

// CancelByUser cancels one of the user's own appointments.
func (s *AppointmentService) CancelByUser(ctx context.Context, userID, id string) (*models.Appointment, error) {
	return s.cancel(ctx, id, func(a *models.Appointment) error {
		if a.UserID != userID {
			return utils.Unauthorized("Unauthorized action")
		}
		return nil
	})
}

func (s *AppointmentService) CancelByDoctor(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
	return s.cancel(ctx, id, func(a *models.Appointment) error {
		if a.DoctorID != doctorID {
			return utils.Unauthorized("Unauthorized action")
		}
		return nil
	})
}

func (s *AppointmentService) CancelByAdmin(ctx context.Context, id string) (*models.Appointment, error) {
	return s.cancel(ctx, id, func(*models.Appointment) error { return nil })
}

func (s *AppointmentService) cancel(ctx context.Context, id string, authorize func(*models.Appointment) error) (*models.Appointment, error) {
	return s.appointments.Modify(ctx, id, func(a *models.Appointment) error {
		if err := authorize(a); err != nil {
			return err
		}
		if a.IsCompleted {
			return utils.Conflict("Completed appointments cannot be cancelled")
		}
		if a.Cancelled {
			return utils.Conflict("Appointment already cancelled")
		}
		a.Cancelled = true
		return nil
	})
}

// Complete marks the doctor's appointment as held.
func (s *AppointmentService) Complete(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
	return s.appointments.Modify(ctx, id, func(a *models.Appointment) error {
		if a.DoctorID != doctorID {
			return utils.Unauthorized("Unauthorized action")
		}
		if a.Cancelled {
			return utils.Conflict("Cancelled appointments cannot be completed")
		}
		if a.IsCompleted {
			return utils.Conflict("Appointment already completed")
		}
		a.IsCompleted = true
		return nil
	})
}
