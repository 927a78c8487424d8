package models

// Dashboard is the admin overview.
type Dashboard struct {
	Doctors            int64         `json:"doctors"`
	Appointments       int64         `json:"appointments"`
	Patients           int64         `json:"patients"`
	Staff              int64         `json:"staff"`
	Admissions         int64         `json:"admissions"`
	CurrentAdmissions  int64         `json:"currentAdmissions"`
	TotalRevenue       float64       `json:"totalRevenue"`
	PaidRevenue        float64       `json:"paidRevenue"`
	PendingRevenue     float64       `json:"pendingRevenue"`
	TotalRooms         int64         `json:"totalRooms"`
	AvailableRooms     int64         `json:"availableRooms"`
	ChatbotSessions    int64         `json:"chatbotSessions"`
	LatestAppointments []Appointment `json:"latestAppointments"`
	LatestAdmissions   []Admission   `json:"latestAdmissions"`
}
