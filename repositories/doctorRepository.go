package repositories

import (
	"MediCore/cache"
	"MediCore/models"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	DoctorListCacheKey = "doctors_cache"
	DoctorCacheExpiry  = time.Hour
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	Count(ctx context.Context) (int64, error)
}

type doctorRepository struct {
	db    *gorm.DB
	cache *cache.Cache
	log   zerolog.Logger
}

func NewDoctorRepository(db *gorm.DB, cache *cache.Cache, log zerolog.Logger) DoctorRepository {
	return &doctorRepository{db: db, cache: cache, log: log}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	r.invalidate(ctx)
	return nil
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	found, err := findOne(ctx, r.db, &doctor, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var doctor models.Doctor
	found, err := findOne(ctx, r.db, &doctor, "email = ?", email)
	if err != nil || !found {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db, &models.Doctor{}, "email = ?", email)
}

// GetAll returns every active doctor, served from the cache when possible.
func (r *doctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if found, err := r.cache.GetJSON(ctx, DoctorListCacheKey, &doctors); err != nil {
		r.log.Warn().Err(err).Msg("failed to get doctors from cache")
	} else if found {
		return doctors, nil
	}

	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to get doctors: %w", err)
	}
	if err := r.cache.SetJSON(ctx, DoctorListCacheKey, doctors, DoctorCacheExpiry); err != nil {
		r.log.Warn().Err(err).Msg("failed to set doctors in cache")
	}
	return doctors, nil
}

func (r *doctorRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", id).Update("available", available).Error; err != nil {
		return fmt.Errorf("failed to update doctor availability: %w", err)
	}
	r.invalidate(ctx)
	return nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	return countActive(ctx, r.db, &models.Doctor{})
}

func (r *doctorRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, DoctorListCacheKey); err != nil {
		r.log.Warn().Err(err).Msg("failed to delete doctors cache")
	}
}
