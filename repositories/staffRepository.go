package repositories

import (
	"MediCore/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]models.Staff, error)
	GetByDepartment(ctx context.Context, department string) ([]models.Staff, error)
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, staff *models.Staff) error {
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	found, err := findOne(ctx, r.db, &staff, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &staff, nil
}

// GetByEmail only returns active staff; deactivated accounts cannot log in.
func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	found, err := findOne(ctx, r.db, &staff, "email = ? AND is_active = ?", email, true)
	if err != nil || !found {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db, &models.Staff{}, "email = ?", email)
}

func (r *staffRepository) GetAll(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return staff, nil
}

func (r *staffRepository) GetByDepartment(ctx context.Context, department string) ([]models.Staff, error) {
	var staff []models.Staff
	err := r.db.WithContext(ctx).
		Where("department = ? AND is_active = ?", department, true).
		Order("name").
		Find(&staff).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get staff by department: %w", err)
	}
	return staff, nil
}

func (r *staffRepository) Update(ctx context.Context, staff *models.Staff) error {
	if err := r.db.WithContext(ctx).Save(staff).Error; err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deactivate(ctx, r.db, &models.Staff{}, id)
}

func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	return countActive(ctx, r.db, &models.Staff{})
}
