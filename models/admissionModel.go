package models

// Admission statuses.
const (
	AdmissionAdmitted    = "admitted"
	AdmissionDischarged  = "discharged"
	AdmissionTransferred = "transferred"
)

// Admission is an in-patient stay in a room. TotalDays and TotalAmount are set at discharge.
type Admission struct {
	Record
	PatientID        string  `gorm:"column:patient_id;size:36;not null;index" json:"patientId"`
	DoctorID         string  `gorm:"column:doctor_id;size:36;not null;index" json:"doctorId"`
	RoomNumber       string  `gorm:"column:room_number;size:50;not null;index" json:"roomNumber"`
	RoomType         string  `gorm:"column:room_type;not null" json:"roomType"`
	AdmissionDate    string  `gorm:"column:admission_date;not null" json:"admissionDate"`
	AdmissionTime    string  `gorm:"column:admission_time;not null" json:"admissionTime"`
	DischargeDate    string  `gorm:"column:discharge_date" json:"dischargeDate"`
	DischargeTime    string  `gorm:"column:discharge_time" json:"dischargeTime"`
	Reason           string  `gorm:"column:reason;not null" json:"reason"`
	Diagnosis        string  `gorm:"column:diagnosis;not null" json:"diagnosis"`
	Status           string  `gorm:"column:status;not null;index;check:status IN ('admitted','discharged','transferred')" json:"status"`
	TotalDays        int     `gorm:"column:total_days;not null" json:"totalDays"`
	DailyRate        float64 `gorm:"column:daily_rate;not null" json:"dailyRate"`
	TotalAmount      float64 `gorm:"column:total_amount;not null" json:"totalAmount"`
	PaidAmount       float64 `gorm:"column:paid_amount;not null" json:"paidAmount"`
	PaymentStatus    string  `gorm:"column:payment_status;not null" json:"paymentStatus"`
	Notes            string  `gorm:"column:notes;type:text" json:"notes"`
	DischargeSummary string  `gorm:"column:discharge_summary;type:text" json:"dischargeSummary"`
	FollowUpDate     string  `gorm:"column:follow_up_date" json:"followUpDate"`
}

func (Admission) TableName() string {
	return "admissions"
}

// AdmissionStats counts active admissions by status.
type AdmissionStats struct {
	TotalAdmissions      int64 `json:"totalAdmissions"`
	CurrentAdmissions    int64 `json:"currentAdmissions"`
	DischargedAdmissions int64 `json:"dischargedAdmissions"`
}
