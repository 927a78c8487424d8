package handlers

import (
	"MediCore/middlewares"
	"MediCore/models"
	"MediCore/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms *services.RoomService
}

func NewRoomHandler(rooms *services.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) Add(c *gin.Context) {
	var room models.Room
	if !bind(c, &room) {
		return
	}
	if err := h.rooms.Add(c.Request.Context(), &room); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondCreated(c, gin.H{"message": "Room added successfully", "room": room})
}

func (h *RoomHandler) GetAll(c *gin.Context) {
	rooms, err := h.rooms.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"rooms": rooms})
}

func (h *RoomHandler) GetAvailable(c *gin.Context) {
	rooms, err := h.rooms.GetAvailable(c.Request.Context(), c.Query("roomType"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"rooms": rooms})
}

func (h *RoomHandler) Stats(c *gin.Context) {
	stats, err := h.rooms.Stats(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"stats": stats})
}

func (h *RoomHandler) GetByID(c *gin.Context) {
	room, err := h.rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"room": room})
}

func (h *RoomHandler) Update(c *gin.Context) {
	var update models.Room
	if !bind(c, &update) {
		return
	}
	room, err := h.rooms.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Room updated successfully", "room": room})
}

func (h *RoomHandler) SetMaintenance(c *gin.Context) {
	var update services.MaintenanceUpdate
	if !bind(c, &update) {
		return
	}
	room, err := h.rooms.SetMaintenance(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		middlewares.HttpError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Room maintenance status updated successfully", "room": room})
}

func (h *RoomHandler) Delete(c *gin.Context) {
	if err := h.rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middlewares.HttpError(c, err)
		return
	}
	middlewares.RespondMessage(c, "Room deleted successfully", http.StatusOK)
}
