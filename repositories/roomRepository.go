package repositories

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	NumberExists(ctx context.Context, roomNumber string) (bool, error)
	GetAll(ctx context.Context) ([]models.Room, error)
	GetAvailable(ctx context.Context, roomType string) ([]models.Room, error)
	Modify(ctx context.Context, id string, apply func(*models.Room) error) (*models.Room, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*models.RoomStats, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	found, err := findOne(ctx, r.db, &room, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) NumberExists(ctx context.Context, roomNumber string) (bool, error) {
	return exists(ctx, r.db, &models.Room{}, "room_number = ?", roomNumber)
}

func (r *roomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}
	return rooms, nil
}

// GetAvailable lists active rooms with a free bed that are not under maintenance.
func (r *roomRepository) GetAvailable(ctx context.Context, roomType string) ([]models.Room, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ? AND is_maintenance = ? AND available_beds > 0", true, false)
	if roomType != "" {
		query = query.Where("room_type = ?", roomType)
	}
	var rooms []models.Room
	if err := query.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}
	return rooms, nil
}

// Modify locks the room row, applies the change and saves it.
func (r *roomRepository) Modify(ctx context.Context, id string, apply func(*models.Room) error) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockOne(tx, &room, "id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}
		if !found {
			return utils.NotFound("Room not found")
		}
		if err := apply(&room); err != nil {
			return err
		}
		return tx.Save(&room).Error
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deactivate(ctx, r.db, &models.Room{}, id)
}

func (r *roomRepository) Stats(ctx context.Context) (*models.RoomStats, error) {
	stats := &models.RoomStats{RoomTypes: []models.RoomTypeCount{}}
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Room{}).Where("is_active = ?", true).Count(&stats.TotalRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := db.Model(&models.Room{}).
		Where("is_active = ? AND is_maintenance = ? AND available_beds > 0", true, false).
		Count(&stats.AvailableRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count available rooms: %w", err)
	}
	if err := db.Model(&models.Room{}).
		Where("is_active = ? AND is_maintenance = ?", true, true).
		Count(&stats.MaintenanceRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms under maintenance: %w", err)
	}
	if err := db.Model(&models.Room{}).
		Select("room_type, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("room_type").
		Order("room_type").
		Scan(&stats.RoomTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to group rooms by type: %w", err)
	}
	return stats, nil
}
