package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
)

type PrescriptionService struct {
	prescriptions repositories.PrescriptionRepository
	appointments  repositories.AppointmentRepository
}

func NewPrescriptionService(prescriptions repositories.PrescriptionRepository, appointments repositories.AppointmentRepository) *PrescriptionService {
	return &PrescriptionService{prescriptions: prescriptions, appointments: appointments}
}

// Create writes a prescription for a completed appointment of the prescribing doctor.
func (s *PrescriptionService) Create(ctx context.Context, doctorID string, prescription *models.Prescription) error {
	if prescription.AppointmentID == "" {
		return utils.Validation("appointmentId: cannot be blank.")
	}
	appointment, err := s.appointments.GetByID(ctx, prescription.AppointmentID)
	if err != nil {
		return fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment == nil {
		return utils.NotFound("Appointment not found")
	}
	if doctorID != "" && appointment.DoctorID != doctorID {
		return utils.Unauthorized("Unauthorized action")
	}
	if !appointment.IsCompleted {
		return utils.Validation("Appointment must be completed before creating prescription")
	}

	prescription.DoctorID = appointment.DoctorID
	if prescription.PatientID == "" {
		prescription.PatientID = appointment.UserID
	}
	if err := utils.ValidatePrescription(prescription); err != nil {
		return err
	}
	return s.prescriptions.Create(ctx, prescription)
}

// GetByID also returns deactivated prescriptions.
func (s *PrescriptionService) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	prescription, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	if prescription == nil {
		return nil, utils.NotFound("Prescription not found")
	}
	return prescription, nil
}

// Update replaces the clinical content. The appointment, patient and doctor links are fixed.
func (s *PrescriptionService) Update(ctx context.Context, id string, update *models.Prescription) (*models.Prescription, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.Diagnosis = update.Diagnosis
	current.Symptoms = update.Symptoms
	current.Medicines = update.Medicines
	current.Tests = update.Tests
	current.FollowUpDate = update.FollowUpDate
	current.FollowUpInstructions = update.FollowUpInstructions
	current.LifestyleAdvice = update.LifestyleAdvice
	current.Notes = update.Notes
	if err := utils.ValidatePrescription(current); err != nil {
		return nil, err
	}
	if err := s.prescriptions.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *PrescriptionService) Delete(ctx context.Context, id string) error {
	ok, err := s.prescriptions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return utils.NotFound("Prescription not found")
	}
	return nil
}

func (s *PrescriptionService) GetByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return s.prescriptions.GetByDoctor(ctx, doctorID)
}

func (s *PrescriptionService) GetByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return s.prescriptions.GetByPatient(ctx, patientID)
}

func (s *PrescriptionService) GetByAppointment(ctx context.Context, appointmentID string) ([]models.Prescription, error) {
	return s.prescriptions.GetByAppointment(ctx, appointmentID)
}
