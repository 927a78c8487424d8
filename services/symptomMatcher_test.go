package services

import (
	"MediCore/models"
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogue() *fakeDiseases {
	return newFakeDiseases(
		models.Disease{Name: "Influenza", Symptoms: pq.StringArray{"fever", "headache", "cough"}},
		models.Disease{Name: "Migraine", Symptoms: pq.StringArray{"headache", "nausea"}},
		models.Disease{Name: "Gastritis", Symptoms: pq.StringArray{"nausea"}},
		models.Disease{Name: "Malaria", Symptoms: pq.StringArray{"fever", "fatigue"}},
		models.Disease{Name: "Tension Headache", Symptoms: pq.StringArray{"headache"}},
	)
}

func TestMatchSymptoms(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"I have fever and headache", []string{"fever", "headache"}},
		{"Feeling TIRED with a runny nose", []string{"cold", "fatigue"}},
		{"I can't sleep and feel worried", []string{"insomnia", "anxiety"}},
		{"nothing to report", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchSymptoms(tc.text), tc.text)
	}
}

func TestReply_SymptomsSuggestUpToThreeDiseases(t *testing.T) {
	m := NewSymptomMatcher(catalogue())

	reply, err := m.Reply(context.Background(), "I have fever and headache")
	require.NoError(t, err)
	assert.Equal(t, models.IntentSymptomAnalysis, reply.Intent)
	assert.Equal(t, 0.7, reply.Confidence)
	assert.Equal(t, []string{"fever", "headache"}, reply.Symptoms)
	assert.NotEmpty(t, reply.SuggestedDiseases)
	assert.LessOrEqual(t, len(reply.SuggestedDiseases), 3)
	assert.Contains(t, reply.Message, "fever, headache")
}

func TestReply_SymptomsWithoutCatalogueMatch(t *testing.T) {
	m := NewSymptomMatcher(newFakeDiseases())

	reply, err := m.Reply(context.Background(), "bad chest pain today")
	require.NoError(t, err)
	assert.Equal(t, models.IntentSymptomAnalysis, reply.Intent)
	assert.Empty(t, reply.SuggestedDiseases)
	assert.Contains(t, reply.Message, "couldn't find a matching condition")
}

func TestReply_FallbackCategories(t *testing.T) {
	m := NewSymptomMatcher(catalogue())
	cases := []struct {
		message string
		intent  string
		conf    float64
	}{
		{"hello", models.IntentGreeting, 0.9},
		{"Hey there!", models.IntentGreeting, 0.9},
		{"what diet keeps me healthy", models.IntentHealthAdvice, 0.8},
		{"this is an emergency", models.IntentEmergency, 0.9},
		{"", models.IntentGeneral, 0.5},
		{"tell me about the clinic opening times", models.IntentGeneral, 0.5},
	}
	for _, tc := range cases {
		reply, err := m.Reply(context.Background(), tc.message)
		require.NoError(t, err)
		assert.Equal(t, tc.intent, reply.Intent, tc.message)
		assert.Equal(t, tc.conf, reply.Confidence, tc.message)
	}
}

func TestReply_GreetingIsWholeWord(t *testing.T) {
	m := NewSymptomMatcher(catalogue())

	reply, err := m.Reply(context.Background(), "this medication is not helping")
	require.NoError(t, err)
	assert.NotEqual(t, models.IntentGreeting, reply.Intent)
}
