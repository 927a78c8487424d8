package models

import "github.com/lib/pq"

// Medicine is one prescribed drug.
type Medicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
	BeforeMeal   bool   `json:"beforeMeal"`
}

// LabTest is one ordered test.
type LabTest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsRequired  bool   `json:"isRequired"`
}

// Prescription is written by a doctor for a completed appointment.
type Prescription struct {
	Record
	AppointmentID        string         `gorm:"column:appointment_id;size:36;not null;index" json:"appointmentId"`
	PatientID            string         `gorm:"column:patient_id;size:36;not null;index" json:"patientId"`
	DoctorID             string         `gorm:"column:doctor_id;size:36;not null;index" json:"doctorId"`
	Diagnosis            string         `gorm:"column:diagnosis;type:text;not null" json:"diagnosis"`
	Symptoms             pq.StringArray `gorm:"column:symptoms;type:text[]" json:"symptoms"`
	Medicines            []Medicine     `gorm:"column:medicines;serializer:json" json:"medicines"`
	Tests                []LabTest      `gorm:"column:tests;serializer:json" json:"tests"`
	FollowUpDate         string         `gorm:"column:follow_up_date" json:"followUpDate,omitempty"`
	FollowUpInstructions string         `gorm:"column:follow_up_instructions;type:text" json:"followUpInstructions,omitempty"`
	LifestyleAdvice      pq.StringArray `gorm:"column:lifestyle_advice;type:text[]" json:"lifestyleAdvice"`
	Notes                string         `gorm:"column:notes;type:text" json:"notes,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
