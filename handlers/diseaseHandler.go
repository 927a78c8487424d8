package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DiseaseHandler struct {
	diseases *services.DiseaseService
}

func NewDiseaseHandler(diseases *services.DiseaseService) *DiseaseHandler {
	return &DiseaseHandler{diseases: diseases}
}

func (h *DiseaseHandler) Add(c *gin.Context) {
	var disease models.Disease
	if !bind(c, &disease) {
		return
	}
	if err := h.diseases.Add(c.Request.Context(), &disease, middlewares.CurrentUserID(c)); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "Disease added successfully", "disease": disease})
}

func (h *DiseaseHandler) GetAll(c *gin.Context) {
	diseases, err := h.diseases.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"diseases": diseases})
}

func (h *DiseaseHandler) GetByID(c *gin.Context) {
	disease, err := h.diseases.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"disease": disease})
}

func (h *DiseaseHandler) Update(c *gin.Context) {
	var update models.Disease
	if !bind(c, &update) {
		return
	}
	disease, err := h.diseases.Update(c.Request.Context(), c.Param("id"), &update, middlewares.CurrentUserID(c))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Disease updated successfully", "disease": disease})
}

func (h *DiseaseHandler) Delete(c *gin.Context) {
	if err := h.diseases.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Disease deleted successfully", http.StatusOK)
}

func (h *DiseaseHandler) GetByCategory(c *gin.Context) {
	diseases, err := h.diseases.GetByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"diseases": diseases})
}

type symptomSearchRequest struct {
	Symptoms []string `json:"symptoms"`
}

func (h *DiseaseHandler) SearchBySymptoms(c *gin.Context) {
	var req symptomSearchRequest
	if !bind(c, &req) {
		return
	}
	diseases, err := h.diseases.SearchBySymptoms(c.Request.Context(), req.Symptoms)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"diseases": diseases})
}

func (h *DiseaseHandler) TrainingData(c *gin.Context) {
	data, err := h.diseases.TrainingData(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"diseases": data})
}
