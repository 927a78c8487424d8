package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
	"strings"
)

// MaintenanceUpdate switches a room in or out of maintenance.
type MaintenanceUpdate struct {
	IsMaintenance bool   `json:"isMaintenance"`
	Reason        string `json:"maintenanceReason"`
	StartDate     string `json:"maintenanceStartDate"`
	EndDate       string `json:"maintenanceEndDate"`
}

type RoomService struct {
	rooms  repositories.RoomRepository
	locker Locker
}

func NewRoomService(rooms repositories.RoomRepository, locker Locker) *RoomService {
	return &RoomService{rooms: rooms, locker: locker}
}

// Add creates a room with every bed free. Room numbers are unique.
func (s *RoomService) Add(ctx context.Context, room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if err := utils.ValidateRoom(room); err != nil {
		return err
	}
	return s.locker.WithLock(ctx, lockKey("room", room.RoomNumber), func() error {
		taken, err := s.rooms.NumberExists(ctx, room.RoomNumber)
		if err != nil {
			return fmt.Errorf("failed to check room number: %w", err)
		}
		if taken {
			return utils.Conflict("Room number already exists")
		}
		room.OccupiedBeds = 0
		room.AvailableBeds = room.Capacity
		return s.rooms.Create(ctx, room)
	})
}

func (s *RoomService) GetAll(ctx context.Context) ([]models.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *RoomService) GetAvailable(ctx context.Context, roomType string) ([]models.Room, error) {
	return s.rooms.GetAvailable(ctx, roomType)
}

func (s *RoomService) Stats(ctx context.Context) (*models.RoomStats, error) {
	return s.rooms.Stats(ctx)
}

// GetByID also returns deactivated rooms.
func (s *RoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, utils.NotFound("Room not found")
	}
	return room, nil
}

// Update replaces the descriptive fields. Bed counts are owned by admissions;
// a capacity change only moves the number of free beds. Admissions refer to
// their room by number, so an occupied room keeps its number.
func (s *RoomService) Update(ctx context.Context, id string, update *models.Room) (*models.Room, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	update.RoomNumber = strings.TrimSpace(update.RoomNumber)
	if err := utils.ValidateRoom(update); err != nil {
		return nil, err
	}

	modify := func() (*models.Room, error) {
		return s.rooms.Modify(ctx, id, func(room *models.Room) error {
			if update.Capacity < room.OccupiedBeds {
				return utils.Validation("Capacity cannot be less than the %d occupied beds", room.OccupiedBeds)
			}
			if room.RoomNumber != update.RoomNumber && room.OccupiedBeds > 0 {
				return utils.Validation("Cannot change the number of a room with admitted patients")
			}
			room.RoomNumber = update.RoomNumber
			room.RoomType = update.RoomType
			room.Floor = update.Floor
			room.Ward = update.Ward
			room.Capacity = update.Capacity
			room.AvailableBeds = update.Capacity - room.OccupiedBeds
			room.DailyRate = update.DailyRate
			room.Amenities = update.Amenities
			room.Notes = update.Notes
			return nil
		})
	}

	if update.RoomNumber == current.RoomNumber {
		return modify()
	}
	var updated *models.Room
	err = s.locker.WithLock(ctx, lockKey("room", update.RoomNumber), func() error {
		taken, err := s.rooms.NumberExists(ctx, update.RoomNumber)
		if err != nil {
			return fmt.Errorf("failed to check room number: %w", err)
		}
		if taken {
			return utils.Conflict("Room number already exists")
		}
		updated, err = modify()
		return err
	})
	return updated, err
}

func (s *RoomService) SetMaintenance(ctx context.Context, id string, update MaintenanceUpdate) (*models.Room, error) {
	window := models.Room{MaintenanceStartDate: update.StartDate, MaintenanceEndDate: update.EndDate}
	if err := utils.ValidateMaintenanceWindow(&window); err != nil {
		return nil, err
	}
	return s.rooms.Modify(ctx, id, func(room *models.Room) error {
		room.IsMaintenance = update.IsMaintenance
		if update.IsMaintenance {
			room.MaintenanceReason = update.Reason
			room.MaintenanceStartDate = update.StartDate
			room.MaintenanceEndDate = update.EndDate
		} else {
			room.MaintenanceReason = ""
			room.MaintenanceStartDate = ""
			room.MaintenanceEndDate = ""
		}
		return nil
	})
}

// Delete soft-deletes a room. Rooms with admitted patients cannot be removed.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room.OccupiedBeds > 0 {
		return utils.Validation("Cannot delete a room with admitted patients")
	}
	ok, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return utils.NotFound("Room not found")
	}
	return nil
}
