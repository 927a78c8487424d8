package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"MediCore/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users        *services.UserService
	appointments *services.AppointmentService
	tokens       *utils.TokenManager
}

func NewUserHandler(users *services.UserService, appointments *services.AppointmentService, tokens *utils.TokenManager) *UserHandler {
	return &UserHandler{users: users, appointments: appointments, tokens: tokens}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bind(c, &req) {
		return
	}
	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	body, ok := issueTokens(c, h.tokens, user.ID, user.Email, models.RolePatient)
	if !ok {
		return
	}
	body["userData"] = user
	respondCreated(c, body)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req credentials
	if !bind(c, &req) {
		return
	}
	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	body, ok := issueTokens(c, h.tokens, user.ID, user.Email, models.RolePatient)
	if !ok {
		return
	}
	respondOK(c, body)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.users.GetProfile(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"userData": user})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req services.ProfileUpdate
	if !bind(c, &req) {
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), middlewares.CurrentUserID(c), req)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Profile Updated", "userData": user})
}

func (h *UserHandler) BookAppointment(c *gin.Context) {
	var appointment models.Appointment
	if !bind(c, &appointment) {
		return
	}
	if err := h.appointments.Book(c.Request.Context(), middlewares.CurrentUserID(c), &appointment); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "Appointment Booked", "appointment": appointment})
}

func (h *UserHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.appointments.ListForUser(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"appointments": appointments})
}

func (h *UserHandler) CancelAppointment(c *gin.Context) {
	appointment, err := h.appointments.CancelByUser(c.Request.Context(), middlewares.CurrentUserID(c), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Appointment Cancelled", "appointment": appointment})
}

type resetCodeRequest struct {
	Email string `json:"email"`
}

func (h *UserHandler) SendResetCode(c *gin.Context) {
	var req resetCodeRequest
	if !bind(c, &req) {
		return
	}
	if err := h.users.SendResetCode(c.Request.Context(), req.Email); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Reset code sent to your email", http.StatusOK)
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if !bind(c, &req) {
		return
	}
	if err := h.users.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Password reset successfully", http.StatusOK)
}
