package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"

	"github.com/gin-gonic/gin"
)

type AdmissionHandler struct {
	admissions *services.AdmissionService
}

func NewAdmissionHandler(admissions *services.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{admissions: admissions}
}

// Create admits a patient. Doctors always admit under their own id.
func (h *AdmissionHandler) Create(c *gin.Context) {
	var admission models.Admission
	if !bind(c, &admission) {
		return
	}
	if claims := middlewares.Claims(c); claims != nil && claims.Role == models.RoleDoctor {
		admission.DoctorID = claims.UserID
	}
	if err := h.admissions.Create(c.Request.Context(), &admission); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "Admission created successfully", "admission": admission})
}

func (h *AdmissionHandler) GetByID(c *gin.Context) {
	admission, err := h.admissions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	if denyForeignPatient(c, admission.PatientID) {
		return
	}
	respondOK(c, gin.H{"admission": admission})
}

func (h *AdmissionHandler) GetByPatient(c *gin.Context) {
	patientID := c.Param("patientId")
	if denyForeignPatient(c, patientID) {
		return
	}
	admissions, err := h.admissions.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"admissions": admissions})
}

func (h *AdmissionHandler) Current(c *gin.Context) {
	admissions, err := h.admissions.GetCurrent(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"admissions": admissions})
}

func (h *AdmissionHandler) Discharge(c *gin.Context) {
	var input services.DischargeInput
	if !bind(c, &input) {
		return
	}
	admission, err := h.admissions.Discharge(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Patient discharged successfully", "admission": admission})
}

func (h *AdmissionHandler) Update(c *gin.Context) {
	var update services.AdmissionUpdate
	if !bind(c, &update) {
		return
	}
	admission, err := h.admissions.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Admission updated successfully", "admission": admission})
}

func (h *AdmissionHandler) Stats(c *gin.Context) {
	stats, err := h.admissions.Stats(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"stats": stats})
}
