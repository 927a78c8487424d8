package models

import "github.com/lib/pq"

var DiseaseCategories = []interface{}{
	"infectious", "chronic", "genetic", "autoimmune", "cancer", "mental_health",
	"cardiovascular", "respiratory", "digestive", "neurological", "other",
}

var DiseaseSeverities = []interface{}{"low", "medium", "high", "critical"}

// Disease is a catalogue entry used by admins and the symptom chatbot.
type Disease struct {
	Record
	Name             string         `gorm:"column:name;size:200;not null;uniqueIndex" json:"name"`
	Description      string         `gorm:"column:description;type:text;not null" json:"description"`
	Symptoms         pq.StringArray `gorm:"column:symptoms;type:text[];not null" json:"symptoms"`
	Causes           pq.StringArray `gorm:"column:causes;type:text[]" json:"causes"`
	Treatments       pq.StringArray `gorm:"column:treatments;type:text[]" json:"treatments"`
	Prevention       pq.StringArray `gorm:"column:prevention;type:text[]" json:"prevention"`
	Category         string         `gorm:"column:category;not null;index" json:"category"`
	Severity         string         `gorm:"column:severity;not null" json:"severity"`
	Contagious       bool           `gorm:"column:contagious;not null" json:"contagious"`
	AgeGroup         pq.StringArray `gorm:"column:age_group;type:text[]" json:"ageGroup"`
	Gender           pq.StringArray `gorm:"column:gender;type:text[]" json:"gender"`
	RiskFactors      pq.StringArray `gorm:"column:risk_factors;type:text[]" json:"riskFactors"`
	Complications    pq.StringArray `gorm:"column:complications;type:text[]" json:"complications"`
	DiagnosticTests  pq.StringArray `gorm:"column:diagnostic_tests;type:text[]" json:"diagnosticTests"`
	Medications      pq.StringArray `gorm:"column:medications;type:text[]" json:"medications"`
	LifestyleChanges pq.StringArray `gorm:"column:lifestyle_changes;type:text[]" json:"lifestyleChanges"`
	ChatbotKeywords  pq.StringArray `gorm:"column:chatbot_keywords;type:text[]" json:"chatbotKeywords"`
	ChatbotResponses pq.StringArray `gorm:"column:chatbot_responses;type:text[]" json:"chatbotResponses"`
	CreatedBy        string         `gorm:"column:created_by;not null" json:"createdBy"`
	UpdatedBy        string         `gorm:"column:updated_by" json:"updatedBy,omitempty"`
}

func (Disease) TableName() string {
	return "diseases"
}

// DiseaseTrainingData is the read-only projection served to the chatbot tooling.
type DiseaseTrainingData struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Symptoms         pq.StringArray `gorm:"type:text[]" json:"symptoms"`
	ChatbotKeywords  pq.StringArray `gorm:"type:text[]" json:"chatbotKeywords"`
	ChatbotResponses pq.StringArray `gorm:"type:text[]" json:"chatbotResponses"`
	Category         string         `json:"category"`
	Severity         string         `json:"severity"`
}
