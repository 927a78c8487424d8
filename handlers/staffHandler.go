package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"MediCore/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staff  *services.StaffService
	tokens *utils.TokenManager
}

func NewStaffHandler(staff *services.StaffService, tokens *utils.TokenManager) *StaffHandler {
	return &StaffHandler{staff: staff, tokens: tokens}
}

// staffRequest accepts the password the model never serializes.
type staffRequest struct {
	models.Staff
	Password string `json:"password"`
}

func (r staffRequest) toModel() models.Staff {
	staff := r.Staff
	staff.Password = r.Password
	return staff
}

func (h *StaffHandler) Register(c *gin.Context) {
	var req staffRequest
	if !bind(c, &req) {
		return
	}
	staff := req.toModel()
	if err := h.staff.Register(c.Request.Context(), &staff); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "Staff registered successfully", "staff": staff})
}

func (h *StaffHandler) Login(c *gin.Context) {
	var req credentials
	if !bind(c, &req) {
		return
	}
	staff, err := h.staff.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	body, ok := issueTokens(c, h.tokens, staff.ID, staff.Email, staff.Role)
	if !ok {
		return
	}
	body["message"] = "Login successful"
	body["staff"] = gin.H{
		"id":         staff.ID,
		"name":       staff.Name,
		"email":      staff.Email,
		"role":       staff.Role,
		"department": staff.Department,
	}
	respondOK(c, body)
}

func (h *StaffHandler) GetAll(c *gin.Context) {
	staff, err := h.staff.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"staff": staff})
}

func (h *StaffHandler) GetByDepartment(c *gin.Context) {
	staff, err := h.staff.GetByDepartment(c.Request.Context(), c.Param("department"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"staff": staff})
}

func (h *StaffHandler) GetByID(c *gin.Context) {
	staff, err := h.staff.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"staff": staff})
}

func (h *StaffHandler) Update(c *gin.Context) {
	var req staffRequest
	if !bind(c, &req) {
		return
	}
	update := req.toModel()
	staff, err := h.staff.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Staff updated successfully", "staff": staff})
}

func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.staff.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Staff deleted successfully", http.StatusOK)
}
