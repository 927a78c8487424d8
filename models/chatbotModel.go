package models

import (
	"time"

	"github.com/lib/pq"
)

// Chat intents.
const (
	IntentGreeting        = "greeting"
	IntentSymptomAnalysis = "symptom_analysis"
	IntentHealthAdvice    = "health_advice"
	IntentEmergency       = "emergency"
	IntentGeneral         = "general"
)

// ChatFeedback is the optional end-of-session rating.
type ChatFeedback struct {
	Rating   *int   `gorm:"column:rating" json:"rating,omitempty"`
	Helpful  *bool  `gorm:"column:helpful" json:"helpful,omitempty"`
	Comments string `gorm:"column:comments;type:text" json:"comments,omitempty"`
}

// ChatSession accumulates the symptoms and suggested diseases of one conversation.
type ChatSession struct {
	Record
	SessionID          string         `gorm:"column:session_id;size:64;not null;uniqueIndex" json:"sessionId"`
	UserID             string         `gorm:"column:user_id;size:36;index" json:"userId,omitempty"`
	UserSymptoms       pq.StringArray `gorm:"column:user_symptoms;type:text[]" json:"userSymptoms"`
	SuggestedDiagnosis pq.StringArray `gorm:"column:suggested_diagnosis;type:text[]" json:"suggestedDiagnosis"`
	Feedback           ChatFeedback   `gorm:"embedded;embeddedPrefix:feedback_" json:"feedback"`
	StartTime          time.Time      `gorm:"column:start_time;not null" json:"startTime"`
	EndTime            *time.Time     `gorm:"column:end_time" json:"endTime,omitempty"`
	Messages           []ChatMessage  `gorm:"foreignKey:SessionID;references:SessionID" json:"messages"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage is one entry of a session transcript. Rows are only ever inserted.
type ChatMessage struct {
	ID                uint           `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	SessionID         string         `gorm:"column:session_id;size:64;not null;index" json:"-"`
	Role              string         `gorm:"column:role;not null;check:role IN ('user','assistant')" json:"role"`
	Content           string         `gorm:"column:content;type:text;not null" json:"content"`
	Intent            string         `gorm:"column:intent" json:"intent,omitempty"`
	Confidence        float64        `gorm:"column:confidence" json:"confidence,omitempty"`
	DiseaseKeywords   pq.StringArray `gorm:"column:disease_keywords;type:text[]" json:"diseaseKeywords,omitempty"`
	SuggestedDiseases pq.StringArray `gorm:"column:suggested_diseases;type:text[]" json:"suggestedDiseases,omitempty"`
	Timestamp         time.Time      `gorm:"column:timestamp;not null" json:"timestamp"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// ChatbotAnalytics summarises session feedback.
type ChatbotAnalytics struct {
	TotalSessions     int64   `json:"totalSessions"`
	CompletedSessions int64   `json:"completedSessions"`
	AverageRating     float64 `json:"averageRating"`
	HelpfulSessions   int64   `json:"helpfulSessions"`
	HelpfulRate       float64 `json:"helpfulRate"`
}

// Accumulate merges newly detected symptoms and diseases into the session,
// keeping the first occurrence of each.
func (s *ChatSession) Accumulate(symptoms, diseases []string) {
	s.UserSymptoms = mergeUnique(s.UserSymptoms, symptoms)
	s.SuggestedDiagnosis = mergeUnique(s.SuggestedDiagnosis, diseases)
}

func mergeUnique(existing pq.StringArray, incoming []string) pq.StringArray {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make(pq.StringArray, 0, len(existing)+len(incoming))
	for _, list := range [][]string{existing, incoming} {
		for _, v := range list {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
