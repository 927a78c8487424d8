package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
)

type DoctorService struct {
	doctors repositories.DoctorRepository
	locker  Locker
}

func NewDoctorService(doctors repositories.DoctorRepository, locker Locker) *DoctorService {
	return &DoctorService{doctors: doctors, locker: locker}
}

// Add registers a doctor. New doctors start out available for booking.
func (s *DoctorService) Add(ctx context.Context, doctor *models.Doctor) error {
	doctor.Email = normalizeEmail(doctor.Email)
	if err := utils.ValidateDoctor(doctor); err != nil {
		return err
	}
	return s.locker.WithLock(ctx, lockKey("doctor", doctor.Email), func() error {
		taken, err := s.doctors.EmailExists(ctx, doctor.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return utils.Conflict("Doctor with this email already exists")
		}
		hashed, err := utils.HashPassword(doctor.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		doctor.Password = hashed
		doctor.Available = true
		return s.doctors.Create(ctx, doctor)
	})
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors.GetAll(ctx)
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil {
		return nil, utils.NotFound("Doctor not found")
	}
	return doctor, nil
}

// ToggleAvailability flips whether the doctor accepts new bookings.
func (s *DoctorService) ToggleAvailability(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	doctor.Available = !doctor.Available
	if err := s.doctors.SetAvailability(ctx, id, doctor.Available); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) Login(ctx context.Context, email, password string) (*models.Doctor, error) {
	if err := utils.ValidateLogin(email, password); err != nil {
		return nil, err
	}
	doctor, err := s.doctors.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil || !doctor.IsActive || !utils.CheckPassword(doctor.Password, password) {
		return nil, utils.Unauthorized("Invalid credentials")
	}
	return doctor, nil
}
