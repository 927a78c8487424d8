package services

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"errors"
)

// starterDiseases is a small catalogue whose symptoms line up with the chatbot's phrase table.
var starterDiseases = []models.Disease{
	{
		Name:        "Common Cold",
		Description: "A viral infection of the nose and throat.",
		Symptoms:    []string{"cold", "sore throat", "cough", "fatigue"},
		Causes:      []string{"rhinovirus"},
		Treatments:  []string{"rest", "fluids"},
		Prevention:  []string{"hand washing"},
		Category:    "infectious",
		Severity:    "low",
		Contagious:  true,
	},
	{
		Name:        "Influenza",
		Description: "A contagious respiratory illness caused by influenza viruses.",
		Symptoms:    []string{"fever", "headache", "body pain", "cough", "fatigue"},
		Causes:      []string{"influenza virus"},
		Treatments:  []string{"rest", "fluids", "antivirals"},
		Prevention:  []string{"annual vaccination"},
		Category:    "respiratory",
		Severity:    "medium",
		Contagious:  true,
	},
	{
		Name:        "Migraine",
		Description: "Recurrent headaches of moderate to severe intensity.",
		Symptoms:    []string{"headache", "nausea", "dizziness"},
		Treatments:  []string{"pain relievers", "triptans"},
		Category:    "neurological",
		Severity:    "medium",
	},
	{
		Name:        "Gastroenteritis",
		Description: "Inflammation of the stomach and intestines.",
		Symptoms:    []string{"diarrhea", "nausea", "fever", "fatigue"},
		Causes:      []string{"norovirus", "contaminated food"},
		Treatments:  []string{"oral rehydration"},
		Category:    "digestive",
		Severity:    "medium",
		Contagious:  true,
	},
	{
		Name:        "Angina",
		Description: "Chest pain caused by reduced blood flow to the heart.",
		Symptoms:    []string{"chest pain", "shortness of breath", "dizziness", "fatigue"},
		Treatments:  []string{"nitrates", "lifestyle changes"},
		Category:    "cardiovascular",
		Severity:    "high",
	},
	{
		Name:        "Generalized Anxiety Disorder",
		Description: "Persistent and excessive worry that interferes with daily life.",
		Symptoms:    []string{"anxiety", "insomnia", "fatigue"},
		Treatments:  []string{"therapy", "medication"},
		Category:    "mental_health",
		Severity:    "medium",
	},
	{
		Name:        "Major Depressive Disorder",
		Description: "A mood disorder causing persistent sadness and loss of interest.",
		Symptoms:    []string{"depression", "insomnia", "fatigue"},
		Treatments:  []string{"therapy", "antidepressants"},
		Category:    "mental_health",
		Severity:    "high",
	},
}

// Seed adds the starter catalogue, skipping entries whose name already exists.
func (s *DiseaseService) Seed(ctx context.Context, createdBy string) (added, skipped int, err error) {
	for _, d := range starterDiseases {
		disease := d
		if err := s.Add(ctx, &disease, createdBy); err != nil {
			if errors.Is(err, utils.ErrConflict) {
				skipped++
				continue
			}
			return added, skipped, err
		}
		added++
	}
	return added, skipped, nil
}
