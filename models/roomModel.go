package models

import "github.com/lib/pq"

// Room types.
const (
	RoomGeneral     = "general"
	RoomSemiPrivate = "semi_private"
	RoomPrivate     = "private"
	RoomICU         = "icu"
	RoomEmergency   = "emergency"
)

var RoomTypes = []interface{}{RoomGeneral, RoomSemiPrivate, RoomPrivate, RoomICU, RoomEmergency}

// Room is a ward room. OccupiedBeds + AvailableBeds always equals Capacity.
type Room struct {
	Record
	RoomNumber           string         `gorm:"column:room_number;size:50;not null;uniqueIndex" json:"roomNumber"`
	RoomType             string         `gorm:"column:room_type;not null;index" json:"roomType"`
	Floor                string         `gorm:"column:floor;not null" json:"floor"`
	Ward                 string         `gorm:"column:ward;not null" json:"ward"`
	Capacity             int            `gorm:"column:capacity;not null" json:"capacity"`
	OccupiedBeds         int            `gorm:"column:occupied_beds;not null" json:"occupiedBeds"`
	AvailableBeds        int            `gorm:"column:available_beds;not null" json:"availableBeds"`
	DailyRate            float64        `gorm:"column:daily_rate;not null" json:"dailyRate"`
	Amenities            pq.StringArray `gorm:"column:amenities;type:text[]" json:"amenities"`
	IsMaintenance        bool           `gorm:"column:is_maintenance;not null" json:"isMaintenance"`
	MaintenanceReason    string         `gorm:"column:maintenance_reason" json:"maintenanceReason"`
	MaintenanceStartDate string         `gorm:"column:maintenance_start_date" json:"maintenanceStartDate"`
	MaintenanceEndDate   string         `gorm:"column:maintenance_end_date" json:"maintenanceEndDate"`
	Notes                string         `gorm:"column:notes;type:text" json:"notes"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomTypeCount is one row of the per-type room statistics.
type RoomTypeCount struct {
	RoomType string `json:"roomType"`
	Count    int64  `json:"count"`
}

// RoomStats summarises active rooms.
type RoomStats struct {
	TotalRooms       int64           `json:"totalRooms"`
	AvailableRooms   int64           `json:"availableRooms"`
	MaintenanceRooms int64           `json:"maintenanceRooms"`
	RoomTypes        []RoomTypeCount `json:"roomTypes"`
}
