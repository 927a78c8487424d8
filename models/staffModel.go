package models

import "time"

// Staff is a non-doctor hospital employee.
type Staff struct {
	Record
	Name        string    `gorm:"column:name;not null" json:"name"`
	Email       string    `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"column:password;not null" json:"-"`
	Image       string    `gorm:"column:image" json:"image"`
	Phone       string    `gorm:"column:phone;not null" json:"phone"`
	Role        string    `gorm:"column:role;not null;check:role IN ('nurse','receptionist','pharmacist','lab_technician','admin')" json:"role"`
	Department  string    `gorm:"column:department;not null;index" json:"department"`
	Address     Address   `gorm:"column:address;serializer:json" json:"address"`
	Salary      float64   `gorm:"column:salary;not null" json:"salary"`
	JoiningDate time.Time `gorm:"column:joining_date" json:"joiningDate"`
}

func (Staff) TableName() string {
	return "staff"
}
