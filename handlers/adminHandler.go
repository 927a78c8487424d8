package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"MediCore/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminSubject = "admin"

type AdminHandler struct {
	admin        *services.AdminService
	doctors      *services.DoctorService
	appointments *services.AppointmentService
	tokens       *utils.TokenManager
}

func NewAdminHandler(admin *services.AdminService, doctors *services.DoctorService, appointments *services.AppointmentService, tokens *utils.TokenManager) *AdminHandler {
	return &AdminHandler{admin: admin, doctors: doctors, appointments: appointments, tokens: tokens}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req credentials
	if !bind(c, &req) {
		return
	}
	if !h.admin.CheckCredentials(req.Email, req.Password) {
		middlewares.HttpError(c, utils.Unauthorized("Invalid credentials"))
		return
	}
	body, ok := issueTokens(c, h.tokens, adminSubject, req.Email, models.RoleAdmin)
	if !ok {
		return
	}
	respondOK(c, body)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"dashData": dash})
}

// doctorRequest accepts the password the model never serializes.
type doctorRequest struct {
	models.Doctor
	Password string `json:"password"`
}

func (h *AdminHandler) AddDoctor(c *gin.Context) {
	var req doctorRequest
	if !bind(c, &req) {
		return
	}
	doctor := req.Doctor
	doctor.Password = req.Password
	if err := h.doctors.Add(c.Request.Context(), &doctor); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"message": "Doctor Added", "doctor": doctor}, http.StatusCreated)
}

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"doctors": doctors})
}

type doctorIDRequest struct {
	DocID string `json:"docId"`
}

func (h *AdminHandler) ChangeAvailability(c *gin.Context) {
	var req doctorIDRequest
	if !bind(c, &req) {
		return
	}
	doctor, err := h.doctors.ToggleAvailability(c.Request.Context(), req.DocID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Availability Changed", "doctor": doctor})
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.appointments.ListAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"appointments": appointments})
}

type appointmentIDRequest struct {
	AppointmentID string `json:"appointmentId"`
}

func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	var req appointmentIDRequest
	if !bind(c, &req) {
		return
	}
	appointment, err := h.appointments.CancelByAdmin(c.Request.Context(), req.AppointmentID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Appointment Cancelled", "appointment": appointment})
}
