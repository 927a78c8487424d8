package repositories

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type AdmissionRepository interface {
	// Admit locks the admission's room, lets apply adjust the room and the
	// admission, then persists both in one transaction.
	Admit(ctx context.Context, admission *models.Admission, apply func(room *models.Room) error) error
	// Discharge locks the admission and its room, lets apply adjust both, then
	// persists them in one transaction.
	Discharge(ctx context.Context, id string, apply func(admission *models.Admission, room *models.Room) error) (*models.Admission, error)
	GetByID(ctx context.Context, id string) (*models.Admission, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Admission, error)
	GetCurrent(ctx context.Context) ([]models.Admission, error)
	Latest(ctx context.Context, limit int) ([]models.Admission, error)
	Update(ctx context.Context, admission *models.Admission) error
	Stats(ctx context.Context) (*models.AdmissionStats, error)
}

type admissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepository(db *gorm.DB) AdmissionRepository {
	return &admissionRepository{db: db}
}

func (r *admissionRepository) Admit(ctx context.Context, admission *models.Admission, apply func(room *models.Room) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		found, err := lockOne(tx, &room, "room_number = ?", admission.RoomNumber)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}
		if !found {
			return utils.NotFound("Room not found")
		}
		if err := apply(&room); err != nil {
			return err
		}
		if err := tx.Save(&room).Error; err != nil {
			return fmt.Errorf("failed to update room beds: %w", err)
		}
		if err := tx.Create(admission).Error; err != nil {
			return fmt.Errorf("failed to create admission: %w", err)
		}
		return nil
	})
}

func (r *admissionRepository) Discharge(ctx context.Context, id string, apply func(*models.Admission, *models.Room) error) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockOne(tx, &admission, "id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to lock admission: %w", err)
		}
		if !found {
			return utils.NotFound("Admission not found")
		}

		var room models.Room
		roomFound, err := lockOne(tx, &room, "room_number = ?", admission.RoomNumber)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}
		if !roomFound {
			return fmt.Errorf("room %s of admission %s not found", admission.RoomNumber, admission.ID)
		}

		if err := apply(&admission, &room); err != nil {
			return err
		}
		if err := tx.Save(&admission).Error; err != nil {
			return fmt.Errorf("failed to discharge admission: %w", err)
		}
		if err := tx.Save(&room).Error; err != nil {
			return fmt.Errorf("failed to release bed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &admission, nil
}

func (r *admissionRepository) GetByID(ctx context.Context, id string) (*models.Admission, error) {
	var admission models.Admission
	found, err := findOne(ctx, r.db, &admission, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &admission, nil
}

func (r *admissionRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_active = ?", patientID, true).
		Order("created_at DESC").
		Find(&admissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient admissions: %w", err)
	}
	return admissions, nil
}

func (r *admissionRepository) GetCurrent(ctx context.Context) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.WithContext(ctx).
		Where("status = ? AND is_active = ?", models.AdmissionAdmitted, true).
		Order("admission_date DESC, admission_time DESC").
		Find(&admissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get current admissions: %w", err)
	}
	return admissions, nil
}

func (r *admissionRepository) Latest(ctx context.Context, limit int) ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&admissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest admissions: %w", err)
	}
	return admissions, nil
}

func (r *admissionRepository) Update(ctx context.Context, admission *models.Admission) error {
	if err := r.db.WithContext(ctx).Save(admission).Error; err != nil {
		return fmt.Errorf("failed to update admission: %w", err)
	}
	return nil
}

func (r *admissionRepository) Stats(ctx context.Context) (*models.AdmissionStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Admission{}).
		Select("status, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count admissions: %w", err)
	}

	stats := &models.AdmissionStats{}
	for _, row := range rows {
		stats.TotalAdmissions += row.Count
		switch row.Status {
		case models.AdmissionAdmitted:
			stats.CurrentAdmissions = row.Count
		case models.AdmissionDischarged:
			stats.DischargedAdmissions = row.Count
		}
	}
	return stats, nil
}
