package repositories

import (
	"MediCore/cache"
	"MediCore/models"
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	DiseaseListCacheKey = "diseases_cache"
	DiseaseCacheExpiry  = 24 * time.Hour
)

type DiseaseRepository interface {
	Create(ctx context.Context, disease *models.Disease) error
	GetByID(ctx context.Context, id string) (*models.Disease, error)
	NameExists(ctx context.Context, name, excludeID string) (bool, error)
	GetAll(ctx context.Context) ([]models.Disease, error)
	GetByCategory(ctx context.Context, category string) ([]models.Disease, error)
	// SearchBySymptoms returns active diseases sharing at least one symptom with the given set.
	SearchBySymptoms(ctx context.Context, symptoms []string, limit int) ([]models.Disease, error)
	TrainingData(ctx context.Context) ([]models.DiseaseTrainingData, error)
	Update(ctx context.Context, disease *models.Disease) error
	Delete(ctx context.Context, id string) (bool, error)
}

type diseaseRepository struct {
	db    *gorm.DB
	cache *cache.Cache
	log   zerolog.Logger
}

func NewDiseaseRepository(db *gorm.DB, cache *cache.Cache, log zerolog.Logger) DiseaseRepository {
	return &diseaseRepository{db: db, cache: cache, log: log}
}

func diseaseCacheKey(id string) string {
	return "disease_cache:" + id
}

func (r *diseaseRepository) Create(ctx context.Context, disease *models.Disease) error {
	if err := r.db.WithContext(ctx).Create(disease).Error; err != nil {
		return fmt.Errorf("failed to create disease: %w", err)
	}
	r.invalidate(ctx, disease.ID)
	return nil
}

func (r *diseaseRepository) GetByID(ctx context.Context, id string) (*models.Disease, error) {
	var disease models.Disease
	if found, err := r.cache.GetJSON(ctx, diseaseCacheKey(id), &disease); err != nil {
		r.log.Warn().Err(err).Str("disease_id", id).Msg("failed to get disease from cache")
	} else if found {
		return &disease, nil
	}

	found, err := findOne(ctx, r.db, &disease, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	if err := r.cache.SetJSON(ctx, diseaseCacheKey(id), disease, DiseaseCacheExpiry); err != nil {
		r.log.Warn().Err(err).Str("disease_id", id).Msg("failed to set disease in cache")
	}
	return &disease, nil
}

func (r *diseaseRepository) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	if excludeID == "" {
		return exists(ctx, r.db, &models.Disease{}, "LOWER(name) = LOWER(?)", name)
	}
	return exists(ctx, r.db, &models.Disease{}, "LOWER(name) = LOWER(?) AND id <> ?", name, excludeID)
}

func (r *diseaseRepository) GetAll(ctx context.Context) ([]models.Disease, error) {
	var diseases []models.Disease
	if found, err := r.cache.GetJSON(ctx, DiseaseListCacheKey, &diseases); err != nil {
		r.log.Warn().Err(err).Msg("failed to get diseases from cache")
	} else if found {
		return diseases, nil
	}

	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name").Find(&diseases).Error; err != nil {
		return nil, fmt.Errorf("failed to get diseases: %w", err)
	}
	if err := r.cache.SetJSON(ctx, DiseaseListCacheKey, diseases, DiseaseCacheExpiry); err != nil {
		r.log.Warn().Err(err).Msg("failed to set diseases in cache")
	}
	return diseases, nil
}

func (r *diseaseRepository) GetByCategory(ctx context.Context, category string) ([]models.Disease, error) {
	var diseases []models.Disease
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", category, true).
		Order("name").
		Find(&diseases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get diseases by category: %w", err)
	}
	return diseases, nil
}

func (r *diseaseRepository) SearchBySymptoms(ctx context.Context, symptoms []string, limit int) ([]models.Disease, error) {
	var diseases []models.Disease
	if len(symptoms) == 0 {
		return diseases, nil
	}
	query := r.db.WithContext(ctx).
		Where("is_active = ? AND symptoms && ?", true, pq.Array(symptoms)).
		Order("name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&diseases).Error; err != nil {
		return nil, fmt.Errorf("failed to search diseases by symptoms: %w", err)
	}
	return diseases, nil
}

func (r *diseaseRepository) TrainingData(ctx context.Context) ([]models.DiseaseTrainingData, error) {
	var data []models.DiseaseTrainingData
	err := r.db.WithContext(ctx).Model(&models.Disease{}).
		Select("id, name, symptoms, chatbot_keywords, chatbot_responses, category, severity").
		Where("is_active = ?", true).
		Order("name").
		Scan(&data).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get chatbot training data: %w", err)
	}
	return data, nil
}

func (r *diseaseRepository) Update(ctx context.Context, disease *models.Disease) error {
	if err := r.db.WithContext(ctx).Save(disease).Error; err != nil {
		return fmt.Errorf("failed to update disease: %w", err)
	}
	r.invalidate(ctx, disease.ID)
	return nil
}

func (r *diseaseRepository) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := deactivate(ctx, r.db, &models.Disease{}, id)
	if ok {
		r.invalidate(ctx, id)
	}
	return ok, err
}

func (r *diseaseRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.DeleteBatch(ctx, DiseaseListCacheKey, diseaseCacheKey(id)); err != nil {
		r.log.Warn().Err(err).Str("disease_id", id).Msg("failed to delete disease cache")
	}
}
