package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FeedbackInput is the end-of-session rating.
type FeedbackInput struct {
	SessionID string `json:"sessionId"`
	Rating    int    `json:"rating"`
	Helpful   *bool  `json:"helpful"`
	Comments  string `json:"comments"`
}

type ChatbotService struct {
	sessions repositories.ChatbotRepository
	matcher  *SymptomMatcher
	clock    Clock
}

func NewChatbotService(sessions repositories.ChatbotRepository, matcher *SymptomMatcher, clock Clock) *ChatbotService {
	return &ChatbotService{sessions: sessions, matcher: matcher, clock: clock}
}

func (s *ChatbotService) newSessionID() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("session_%d_%s", s.clock().UnixMilli(), token)
}

// StartSession opens a conversation. userID may be empty for anonymous visitors.
func (s *ChatbotService) StartSession(ctx context.Context, userID string) (*models.ChatSession, error) {
	session := &models.ChatSession{
		SessionID:          s.newSessionID(),
		UserID:             userID,
		UserSymptoms:       []string{},
		SuggestedDiagnosis: []string{},
		StartTime:          s.clock(),
		Messages:           []models.ChatMessage{},
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SendMessage records the user's message and the assistant's reply in the session transcript.
func (s *ChatbotService) SendMessage(ctx context.Context, sessionID, message string) (*ChatReply, *models.ChatSession, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, nil, utils.Validation("sessionId: cannot be blank.")
	}
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, nil, err
	}

	reply, err := s.matcher.Reply(ctx, message)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock()
	messages := []models.ChatMessage{
		{Role: "user", Content: message, Timestamp: now},
		{
			Role:              "assistant",
			Content:           reply.Message,
			Intent:            reply.Intent,
			Confidence:        reply.Confidence,
			DiseaseKeywords:   reply.Symptoms,
			SuggestedDiseases: reply.SuggestedDiseases,
			Timestamp:         now,
		},
	}
	session, err := s.sessions.AppendExchange(ctx, sessionID, messages, reply.Symptoms, reply.SuggestedDiseases)
	if err != nil {
		return nil, nil, err
	}
	return reply, session, nil
}

func (s *ChatbotService) GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, utils.NotFound("Chat session not found")
	}
	return session, nil
}

// SubmitFeedback rates the session and closes it.
func (s *ChatbotService) SubmitFeedback(ctx context.Context, input FeedbackInput) error {
	if err := utils.ValidateFeedback(input.SessionID, input.Rating); err != nil {
		return err
	}
	rating := input.Rating
	feedback := models.ChatFeedback{Rating: &rating, Helpful: input.Helpful, Comments: input.Comments}
	return s.sessions.SaveFeedback(ctx, input.SessionID, feedback, s.clock())
}

func (s *ChatbotService) Analytics(ctx context.Context) (*models.ChatbotAnalytics, error) {
	return s.sessions.Analytics(ctx)
}
