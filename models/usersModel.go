package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles carried in access tokens.
const (
	RoleAdmin         = "admin"
	RoleDoctor        = "doctor"
	RolePatient       = "patient"
	RoleNurse         = "nurse"
	RoleReceptionist  = "receptionist"
	RolePharmacist    = "pharmacist"
	RoleLabTechnician = "lab_technician"
)

// StaffRoles lists the roles a staff member may hold.
var StaffRoles = []interface{}{RoleNurse, RoleReceptionist, RolePharmacist, RoleLabTechnician, RoleAdmin}

// Record holds the columns every persisted entity shares. Inactive records are
// soft-deleted: hidden from listings but still addressable by id.
type Record struct {
	ID        string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true;index" json:"isActive"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns a surrogate id and marks the record active.
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.IsActive = true
	return nil
}

// Address is stored as a JSON document.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// User is a patient account.
type User struct {
	Record
	Name     string  `gorm:"column:name;not null" json:"name"`
	Email    string  `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password string  `gorm:"column:password;not null" json:"-"`
	Phone    string  `gorm:"column:phone" json:"phone"`
	Gender   string  `gorm:"column:gender" json:"gender"`
	DOB      string  `gorm:"column:dob" json:"dob"`
	Image    string  `gorm:"column:image" json:"image"`
	Address  Address `gorm:"column:address;serializer:json" json:"address"`
}

func (User) TableName() string {
	return "users"
}

// Doctor model
type Doctor struct {
	Record
	Name       string  `gorm:"column:name;not null" json:"name"`
	Email      string  `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password   string  `gorm:"column:password;not null" json:"-"`
	Image      string  `gorm:"column:image" json:"image"`
	Speciality string  `gorm:"column:speciality;not null;index" json:"speciality"`
	Degree     string  `gorm:"column:degree;not null" json:"degree"`
	Experience string  `gorm:"column:experience;not null" json:"experience"`
	About      string  `gorm:"column:about;type:text" json:"about"`
	Available  bool    `gorm:"column:available;not null" json:"available"`
	Fees       float64 `gorm:"column:fees;not null" json:"fees"`
	Address    Address `gorm:"column:address;serializer:json" json:"address"`
}

func (Doctor) TableName() string {
	return "doctors"
}
