package repositories

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	SlotTaken(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error)
	GetByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	Latest(ctx context.Context, limit int) ([]models.Appointment, error)
	Modify(ctx context.Context, id string, apply func(*models.Appointment) error) (*models.Appointment, error)
	Count(ctx context.Context) (int64, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Omit("User", "Doctor").Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	found, err := findOne(ctx, r.db, &appointment, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) SlotTaken(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error) {
	return exists(ctx, r.db, &models.Appointment{},
		"doctor_id = ? AND slot_date = ? AND slot_time = ? AND cancelled = ? AND is_active = ?",
		doctorID, slotDate, slotTime, false, true)
}

func (r *appointmentRepository) withParties() *gorm.DB {
	return r.db.Preload("User").Preload("Doctor")
}

func (r *appointmentRepository) GetByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.withParties().WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.withParties().WithContext(ctx).
		Where("doctor_id = ? AND is_active = ?", doctorID, true).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.withParties().WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Latest(ctx context.Context, limit int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.withParties().WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest appointments: %w", err)
	}
	return appointments, nil
}

// Modify locks the appointment row, applies the change and saves it.
func (r *appointmentRepository) Modify(ctx context.Context, id string, apply func(*models.Appointment) error) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockOne(tx, &appointment, "id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to lock appointment: %w", err)
		}
		if !found {
			return utils.NotFound("Appointment not found")
		}
		if err := apply(&appointment); err != nil {
			return err
		}
		return tx.Omit("User", "Doctor").Save(&appointment).Error
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	return countActive(ctx, r.db, &models.Appointment{})
}
