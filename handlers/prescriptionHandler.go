package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	prescriptions *services.PrescriptionService
}

func NewPrescriptionHandler(prescriptions *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptions: prescriptions}
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var prescription models.Prescription
	if !bind(c, &prescription) {
		return
	}
	if err := h.prescriptions.Create(c.Request.Context(), middlewares.CurrentUserID(c), &prescription); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "Prescription created successfully", "prescription": prescription})
}

func (h *PrescriptionHandler) GetByID(c *gin.Context) {
	prescription, err := h.prescriptions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	if denyForeignPatient(c, prescription.PatientID) {
		return
	}
	respondOK(c, gin.H{"prescription": prescription})
}

func (h *PrescriptionHandler) GetByDoctor(c *gin.Context) {
	prescriptions, err := h.prescriptions.GetByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"prescriptions": prescriptions})
}

func (h *PrescriptionHandler) GetByPatient(c *gin.Context) {
	patientID := c.Param("patientId")
	if denyForeignPatient(c, patientID) {
		return
	}
	prescriptions, err := h.prescriptions.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"prescriptions": prescriptions})
}

func (h *PrescriptionHandler) GetByAppointment(c *gin.Context) {
	prescriptions, err := h.prescriptions.GetByAppointment(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"prescriptions": prescriptions})
}

func (h *PrescriptionHandler) Update(c *gin.Context) {
	var update models.Prescription
	if !bind(c, &update) {
		return
	}
	prescription, err := h.prescriptions.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Prescription updated successfully", "prescription": prescription})
}

func (h *PrescriptionHandler) Delete(c *gin.Context) {
	if err := h.prescriptions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Prescription deleted successfully", http.StatusOK)
}
