package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BillingHandler struct {
	billings *services.BillingService
}

func NewBillingHandler(billings *services.BillingService) *BillingHandler {
	return &BillingHandler{billings: billings}
}

func (h *BillingHandler) Create(c *gin.Context) {
	var billing models.Billing
	if !bind(c, &billing) {
		return
	}
	if err := h.billings.Create(c.Request.Context(), &billing); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "Billing created successfully", "billing": billing})
}

func (h *BillingHandler) GetByID(c *gin.Context) {
	billing, err := h.billings.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	if denyForeignPatient(c, billing.PatientID) {
		return
	}
	respondOK(c, gin.H{"billing": billing})
}

func (h *BillingHandler) GetByPatient(c *gin.Context) {
	patientID := c.Param("patientId")
	if denyForeignPatient(c, patientID) {
		return
	}
	billings, err := h.billings.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"billings": billings})
}

type paymentRequest struct {
	PaidAmount    float64 `json:"paidAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

func (h *BillingHandler) RecordPayment(c *gin.Context) {
	var req paymentRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	current, err := h.billings.GetByID(ctx, c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	if denyForeignPatient(c, current.PatientID) {
		return
	}
	billing, err := h.billings.RecordPayment(ctx, current.ID, req.PaidAmount, req.PaymentMethod)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Payment updated successfully", "billing": billing})
}

func (h *BillingHandler) GetPending(c *gin.Context) {
	billings, err := h.billings.GetPending(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"billings": billings})
}

func (h *BillingHandler) Stats(c *gin.Context) {
	stats, err := h.billings.Stats(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"stats": stats})
}

// Export streams every active bill as an xlsx workbook.
func (h *BillingHandler) Export(c *gin.Context) {
	data, err := h.billings.Export(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	filename := fmt.Sprintf("billing-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *BillingHandler) Delete(c *gin.Context) {
	if err := h.billings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Billing deleted successfully", http.StatusOK)
}
