package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
	"strings"
)

type DiseaseService struct {
	diseases repositories.DiseaseRepository
	locker   Locker
}

func NewDiseaseService(diseases repositories.DiseaseRepository, locker Locker) *DiseaseService {
	return &DiseaseService{diseases: diseases, locker: locker}
}

// normalizeDisease lower-cases the searchable lists so symptom lookups are case-insensitive.
func normalizeDisease(d *models.Disease) {
	d.Name = strings.TrimSpace(d.Name)
	d.Symptoms = normalizeTerms(d.Symptoms)
	d.ChatbotKeywords = normalizeTerms(d.ChatbotKeywords)
}

// Add stores a new disease. Names are unique, ignoring case.
func (s *DiseaseService) Add(ctx context.Context, disease *models.Disease, createdBy string) error {
	normalizeDisease(disease)
	disease.CreatedBy = createdBy
	if err := utils.ValidateDisease(disease); err != nil {
		return err
	}
	return s.locker.WithLock(ctx, lockKey("disease", disease.Name), func() error {
		taken, err := s.diseases.NameExists(ctx, disease.Name, "")
		if err != nil {
			return fmt.Errorf("failed to check disease name: %w", err)
		}
		if taken {
			return utils.Conflict("Disease with this name already exists")
		}
		return s.diseases.Create(ctx, disease)
	})
}

func (s *DiseaseService) GetAll(ctx context.Context) ([]models.Disease, error) {
	return s.diseases.GetAll(ctx)
}

// GetByID also returns deactivated diseases.
func (s *DiseaseService) GetByID(ctx context.Context, id string) (*models.Disease, error) {
	disease, err := s.diseases.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get disease: %w", err)
	}
	if disease == nil {
		return nil, utils.NotFound("Disease not found")
	}
	return disease, nil
}

func (s *DiseaseService) Update(ctx context.Context, id string, update *models.Disease, updatedBy string) (*models.Disease, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	normalizeDisease(update)
	update.CreatedBy = current.CreatedBy
	if err := utils.ValidateDisease(update); err != nil {
		return nil, err
	}

	update.Record = current.Record
	update.UpdatedBy = updatedBy

	err = s.locker.WithLock(ctx, lockKey("disease", update.Name), func() error {
		if !strings.EqualFold(update.Name, current.Name) {
			taken, err := s.diseases.NameExists(ctx, update.Name, id)
			if err != nil {
				return fmt.Errorf("failed to check disease name: %w", err)
			}
			if taken {
				return utils.Conflict("Disease with this name already exists")
			}
		}
		return s.diseases.Update(ctx, update)
	})
	if err != nil {
		return nil, err
	}
	return update, nil
}

func (s *DiseaseService) Delete(ctx context.Context, id string) error {
	ok, err := s.diseases.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return utils.NotFound("Disease not found")
	}
	return nil
}

func (s *DiseaseService) GetByCategory(ctx context.Context, category string) ([]models.Disease, error) {
	return s.diseases.GetByCategory(ctx, strings.ToLower(category))
}

// SearchBySymptoms returns active diseases that list any of the given symptoms.
func (s *DiseaseService) SearchBySymptoms(ctx context.Context, symptoms []string) ([]models.Disease, error) {
	terms := normalizeTerms(symptoms)
	if len(terms) == 0 {
		return nil, utils.Validation("Symptoms array is required")
	}
	return s.diseases.SearchBySymptoms(ctx, terms, 0)
}

func (s *DiseaseService) TrainingData(ctx context.Context) ([]models.DiseaseTrainingData, error) {
	return s.diseases.TrainingData(ctx)
}
