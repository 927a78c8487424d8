package handlers

import (
	"MediCore/middlewares"
	"MediCore/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatbotHandler struct {
	chatbot *services.ChatbotService
}

func NewChatbotHandler(chatbot *services.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbot: chatbot}
}

type startSessionRequest struct {
	UserID string `json:"userId"`
}

func (h *ChatbotHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if c.Request.ContentLength > 0 && !bind(c, &req) {
		return
	}
	session, err := h.chatbot.StartSession(c.Request.Context(), req.UserID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{
		"message":   "Chat session started",
		"sessionId": session.SessionID,
		"session":   session,
	})
}

type chatMessageRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

func (h *ChatbotHandler) SendMessage(c *gin.Context) {
	var req chatMessageRequest
	if !bind(c, &req) {
		return
	}
	reply, session, err := h.chatbot.SendMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{
		"message":  "Message sent successfully",
		"response": reply.Message,
		"reply":    reply,
		"session":  session,
	})
}

func (h *ChatbotHandler) GetSession(c *gin.Context) {
	session, err := h.chatbot.GetSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"session": session})
}

func (h *ChatbotHandler) SubmitFeedback(c *gin.Context) {
	var input services.FeedbackInput
	if !bind(c, &input) {
		return
	}
	if err := h.chatbot.SubmitFeedback(c.Request.Context(), input); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Feedback submitted successfully", http.StatusOK)
}

func (h *ChatbotHandler) Analytics(c *gin.Context) {
	analytics, err := h.chatbot.Analytics(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"analytics": analytics})
}
