package services

import (
	"MediCore/models"
	"context"
	"fmt"
	"strings"
	"unicode"
)

const maxSuggestedDiseases = 3

// symptomPhrases maps each symptom label to the phrases that indicate it.
// Order is significant: matched labels are reported in this order.
var symptomPhrases = []struct {
	symptom string
	phrases []string
}{
	{"fever", []string{"fever", "temperature", "hot", "burning"}},
	{"headache", []string{"headache", "head pain", "migraine"}},
	{"cough", []string{"cough", "coughing", "dry cough", "wet cough"}},
	{"cold", []string{"cold", "runny nose", "sneezing", "congestion"}},
	{"sore throat", []string{"sore throat", "throat pain", "difficulty swallowing"}},
	{"body pain", []string{"body pain", "muscle pain", "joint pain", "aches"}},
	{"fatigue", []string{"fatigue", "tired", "exhausted", "weak"}},
	{"nausea", []string{"nausea", "vomiting", "sick", "queasy"}},
	{"diarrhea", []string{"diarrhea", "loose stools", "stomach upset"}},
	{"chest pain", []string{"chest pain", "chest discomfort", "heart pain"}},
	{"shortness of breath", []string{"shortness of breath", "breathing difficulty", "dyspnea"}},
	{"dizziness", []string{"dizziness", "lightheaded", "vertigo"}},
	{"insomnia", []string{"insomnia", "sleeplessness", "can't sleep"}},
	{"anxiety", []string{"anxiety", "worried", "nervous", "stress"}},
	{"depression", []string{"depression", "sad", "hopeless", "mood"}},
}

var (
	greetingWords     = []string{"hello", "hi", "hey"}
	healthAdviceWords = []string{"healthy", "diet", "exercise"}
	emergencyWords    = []string{"emergency", "severe", "critical"}
)

const (
	greetingReply     = "Hello! I'm your health assistant. How can I help you today? You can describe your symptoms or ask me about any health concerns."
	healthAdviceReply = "Maintaining good health involves a balanced diet, regular exercise, adequate sleep, and stress management. Remember to stay hydrated and get regular check-ups with your doctor."
	emergencyReply    = "If you're experiencing a medical emergency, please call emergency services immediately or go to the nearest emergency room. This chatbot is not a substitute for emergency medical care."
	defaultReply      = "I'm here to help with your health concerns. Could you please describe your symptoms in more detail, or ask me a specific health-related question?"
)

// ChatReply is the assistant's answer to one message.
type ChatReply struct {
	Message           string   `json:"message"`
	Intent            string   `json:"intent"`
	Confidence        float64  `json:"confidence"`
	Symptoms          []string `json:"symptoms,omitempty"`
	SuggestedDiseases []string `json:"suggestedDiseases,omitempty"`
}

// DiseaseSearcher finds diseases sharing a symptom with the given set.
type DiseaseSearcher interface {
	SearchBySymptoms(ctx context.Context, symptoms []string, limit int) ([]models.Disease, error)
}

// SymptomMatcher answers chat messages from a fixed phrase table. It keeps no state.
type SymptomMatcher struct {
	diseases DiseaseSearcher
}

func NewSymptomMatcher(diseases DiseaseSearcher) *SymptomMatcher {
	return &SymptomMatcher{diseases: diseases}
}

// MatchSymptoms returns every symptom label whose phrases occur in text.
func MatchSymptoms(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, entry := range symptomPhrases {
		for _, phrase := range entry.phrases {
			if strings.Contains(lower, phrase) {
				matched = append(matched, entry.symptom)
				break
			}
		}
	}
	return matched
}

func words(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func containsWord(set map[string]struct{}, candidates []string) bool {
	for _, c := range candidates {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}

func containsAny(text string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}

// Reply classifies message: greeting first, then symptoms, then health
// advice, then emergency keywords, else a default prompt.
func (m *SymptomMatcher) Reply(ctx context.Context, message string) (*ChatReply, error) {
	lower := strings.ToLower(message)

	if containsWord(words(lower), greetingWords) {
		return &ChatReply{Message: greetingReply, Intent: models.IntentGreeting, Confidence: 0.9}, nil
	}

	if symptoms := MatchSymptoms(lower); len(symptoms) > 0 {
		diseases, err := m.diseases.SearchBySymptoms(ctx, symptoms, maxSuggestedDiseases)
		if err != nil {
			return nil, fmt.Errorf("failed to look up diseases: %w", err)
		}
		names := make([]string, 0, len(diseases))
		for _, d := range diseases {
			names = append(names, d.Name)
		}

		text := fmt.Sprintf("I understand you're experiencing %s. ", strings.Join(symptoms, ", "))
		if len(names) > 0 {
			text += fmt.Sprintf("Based on your symptoms, you might want to consider consulting a doctor about: %s. ", strings.Join(names, ", "))
		} else {
			text += "I couldn't find a matching condition in our records. "
		}
		text += "However, this is not a diagnosis - please consult a healthcare professional for proper medical advice."

		return &ChatReply{
			Message:           text,
			Intent:            models.IntentSymptomAnalysis,
			Confidence:        0.7,
			Symptoms:          symptoms,
			SuggestedDiseases: names,
		}, nil
	}

	if containsAny(lower, healthAdviceWords) {
		return &ChatReply{Message: healthAdviceReply, Intent: models.IntentHealthAdvice, Confidence: 0.8}, nil
	}
	if containsAny(lower, emergencyWords) {
		return &ChatReply{Message: emergencyReply, Intent: models.IntentEmergency, Confidence: 0.9}, nil
	}
	return &ChatReply{Message: defaultReply, Intent: models.IntentGeneral, Confidence: 0.5}, nil
}
