package repositories

import (
	"MediCore/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) error
	GetByID(ctx context.Context, id string) (*models.Prescription, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
	GetByAppointment(ctx context.Context, appointmentID string) ([]models.Prescription, error)
	Update(ctx context.Context, prescription *models.Prescription) error
	Delete(ctx context.Context, id string) (bool, error)
}

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	if err := r.db.WithContext(ctx).Create(prescription).Error; err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	var prescription models.Prescription
	found, err := findOne(ctx, r.db, &prescription, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) list(ctx context.Context, column, value string) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.WithContext(ctx).
		Where(column+" = ? AND is_active = ?", value, true).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get prescriptions by %s: %w", column, err)
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) GetByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.list(ctx, "doctor_id", doctorID)
}

func (r *prescriptionRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.list(ctx, "patient_id", patientID)
}

func (r *prescriptionRepository) GetByAppointment(ctx context.Context, appointmentID string) ([]models.Prescription, error) {
	return r.list(ctx, "appointment_id", appointmentID)
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	if err := r.db.WithContext(ctx).Save(prescription).Error; err != nil {
		return fmt.Errorf("failed to update prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deactivate(ctx, r.db, &models.Prescription{}, id)
}
