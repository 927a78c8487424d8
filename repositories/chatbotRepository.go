package repositories

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatbotRepository interface {
	CreateSession(ctx context.Context, session *models.ChatSession) error
	GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error)
	// AppendExchange stores the messages and merges the detected symptoms and
	// diseases into the session under a row lock.
	AppendExchange(ctx context.Context, sessionID string, messages []models.ChatMessage, symptoms, diseases []string) (*models.ChatSession, error)
	SaveFeedback(ctx context.Context, sessionID string, feedback models.ChatFeedback, endTime time.Time) error
	Analytics(ctx context.Context) (*models.ChatbotAnalytics, error)
}

type chatbotRepository struct {
	db *gorm.DB
}

func NewChatbotRepository(db *gorm.DB) ChatbotRepository {
	return &chatbotRepository{db: db}
}

func (r *chatbotRepository) CreateSession(ctx context.Context, session *models.ChatSession) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	return nil
}

func (r *chatbotRepository) GetSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("session_id = ? AND is_active = ?", sessionID, true).
		Limit(1).
		Find(&session).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	if session.ID == "" {
		return nil, nil
	}
	return &session, nil
}

func (r *chatbotRepository) AppendExchange(ctx context.Context, sessionID string, messages []models.ChatMessage, symptoms, diseases []string) (*models.ChatSession, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.ChatSession
		found, err := lockOne(tx, &session, "session_id = ? AND is_active = ?", sessionID, true)
		if err != nil {
			return fmt.Errorf("failed to lock chat session: %w", err)
		}
		if !found {
			return utils.NotFound("Chat session not found")
		}

		for i := range messages {
			messages[i].SessionID = sessionID
		}
		if len(messages) > 0 {
			if err := tx.Create(&messages).Error; err != nil {
				return fmt.Errorf("failed to append chat messages: %w", err)
			}
		}

		session.Accumulate(symptoms, diseases)
		return tx.Omit(clause.Associations).Save(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetSession(ctx, sessionID)
}

func (r *chatbotRepository) SaveFeedback(ctx context.Context, sessionID string, feedback models.ChatFeedback, endTime time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.ChatSession{}).
		Where("session_id = ? AND is_active = ?", sessionID, true).
		Updates(map[string]interface{}{
			"feedback_rating":   feedback.Rating,
			"feedback_helpful":  feedback.Helpful,
			"feedback_comments": feedback.Comments,
			"end_time":          endTime,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save feedback: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound("Chat session not found")
	}
	return nil
}

func (r *chatbotRepository) Analytics(ctx context.Context) (*models.ChatbotAnalytics, error) {
	analytics := &models.ChatbotAnalytics{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.ChatSession{}).Where("is_active = ?", true).Count(&analytics.TotalSessions).Error; err != nil {
		return nil, fmt.Errorf("failed to count chat sessions: %w", err)
	}
	if err := db.Model(&models.ChatSession{}).
		Where("is_active = ? AND feedback_rating IS NOT NULL", true).
		Count(&analytics.CompletedSessions).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed chat sessions: %w", err)
	}
	if err := db.Model(&models.ChatSession{}).
		Select("COALESCE(AVG(feedback_rating), 0)").
		Where("is_active = ? AND feedback_rating IS NOT NULL", true).
		Scan(&analytics.AverageRating).Error; err != nil {
		return nil, fmt.Errorf("failed to average chat ratings: %w", err)
	}
	if err := db.Model(&models.ChatSession{}).
		Where("is_active = ? AND feedback_helpful = ?", true, true).
		Count(&analytics.HelpfulSessions).Error; err != nil {
		return nil, fmt.Errorf("failed to count helpful chat sessions: %w", err)
	}
	if analytics.CompletedSessions > 0 {
		analytics.HelpfulRate = float64(analytics.HelpfulSessions) / float64(analytics.CompletedSessions) * 100
	}
	return analytics, nil
}
