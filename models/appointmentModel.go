package models

// Appointment is a booked consultation slot with a doctor.
type Appointment struct {
	Record
	UserID      string  `gorm:"column:user_id;size:36;not null;index" json:"userId"`
	DoctorID    string  `gorm:"column:doctor_id;size:36;not null;index:idx_appointment_slot,priority:1" json:"docId"`
	SlotDate    string  `gorm:"column:slot_date;not null;index:idx_appointment_slot,priority:2" json:"slotDate"`
	SlotTime    string  `gorm:"column:slot_time;not null;index:idx_appointment_slot,priority:3" json:"slotTime"`
	Amount      float64 `gorm:"column:amount;not null" json:"amount"`
	Cancelled   bool    `gorm:"column:cancelled;not null" json:"cancelled"`
	Payment     bool    `gorm:"column:payment;not null" json:"payment"`
	IsCompleted bool    `gorm:"column:is_completed;not null" json:"isCompleted"`
	User        *User   `gorm:"foreignKey:UserID;references:ID" json:"userData,omitempty"`
	Doctor      *Doctor `gorm:"foreignKey:DoctorID;references:ID" json:"docData,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
