package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"MediCore/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctors      *services.DoctorService
	appointments *services.AppointmentService
	tokens       *utils.TokenManager
}

func NewDoctorHandler(doctors *services.DoctorService, appointments *services.AppointmentService, tokens *utils.TokenManager) *DoctorHandler {
	return &DoctorHandler{doctors: doctors, appointments: appointments, tokens: tokens}
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"doctors": doctors})
}

func (h *DoctorHandler) Login(c *gin.Context) {
	var req credentials
	if !bind(c, &req) {
		return
	}
	doctor, err := h.doctors.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	body, ok := issueTokens(c, h.tokens, doctor.ID, doctor.Email, models.RoleDoctor)
	if !ok {
		return
	}
	respondOK(c, body)
}

func (h *DoctorHandler) Profile(c *gin.Context) {
	doctor, err := h.doctors.GetByID(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"profileData": doctor})
}

func (h *DoctorHandler) Appointments(c *gin.Context) {
	appointments, err := h.appointments.ListForDoctor(c.Request.Context(), middlewares.CurrentUserID(c))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"appointments": appointments})
}

func (h *DoctorHandler) CompleteAppointment(c *gin.Context) {
	appointment, err := h.appointments.Complete(c.Request.Context(), middlewares.CurrentUserID(c), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Appointment Completed", "appointment": appointment})
}

func (h *DoctorHandler) CancelAppointment(c *gin.Context) {
	appointment, err := h.appointments.CancelByDoctor(c.Request.Context(), middlewares.CurrentUserID(c), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Appointment Cancelled", "appointment": appointment})
}
