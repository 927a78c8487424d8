package models

// Bill types.
const (
	BillAppointment  = "appointment"
	BillAdmission    = "admission"
	BillMedicine     = "medicine"
	BillTest         = "test"
	BillProcedure    = "procedure"
	BillConsultation = "consultation"
)

var BillTypes = []interface{}{BillAppointment, BillAdmission, BillMedicine, BillTest, BillProcedure, BillConsultation}

// Payment statuses, shared by bills and admissions.
const (
	PaymentPending   = "pending"
	PaymentPartial   = "partial"
	PaymentCompleted = "completed"
)

var PaymentMethods = []interface{}{"cash", "card", "upi", "insurance", "pending"}

// BillItem is one line of a bill.
type BillItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Billing is a patient bill. BalanceAmount = TotalAmount - PaidAmount and
// PaymentStatus is derived from it.
type Billing struct {
	Record
	PatientID     string     `gorm:"column:patient_id;size:36;not null;index" json:"patientId"`
	AppointmentID string     `gorm:"column:appointment_id;size:36" json:"appointmentId,omitempty"`
	AdmissionID   string     `gorm:"column:admission_id;size:36" json:"admissionId,omitempty"`
	BillType      string     `gorm:"column:bill_type;not null" json:"billType"`
	Items         []BillItem `gorm:"column:items;serializer:json" json:"items"`
	Subtotal      float64    `gorm:"column:subtotal;not null" json:"subtotal"`
	Tax           float64    `gorm:"column:tax;not null" json:"tax"`
	Discount      float64    `gorm:"column:discount;not null" json:"discount"`
	TotalAmount   float64    `gorm:"column:total_amount;not null" json:"totalAmount"`
	PaidAmount    float64    `gorm:"column:paid_amount;not null" json:"paidAmount"`
	BalanceAmount float64    `gorm:"column:balance_amount;not null" json:"balanceAmount"`
	PaymentMethod string     `gorm:"column:payment_method" json:"paymentMethod,omitempty"`
	PaymentStatus string     `gorm:"column:payment_status;not null;index" json:"paymentStatus"`
	DueDate       string     `gorm:"column:due_date" json:"dueDate,omitempty"`
	BillDate      string     `gorm:"column:bill_date;not null" json:"billDate"`
	BillNumber    string     `gorm:"column:bill_number;size:40;not null;uniqueIndex" json:"billNumber"`
	Notes         string     `gorm:"column:notes;type:text" json:"notes,omitempty"`
}

func (Billing) TableName() string {
	return "billings"
}

// BillingStats aggregates active bills.
type BillingStats struct {
	TotalBills   int64   `json:"totalBills"`
	TotalAmount  float64 `json:"totalAmount"`
	TotalPaid    float64 `json:"totalPaid"`
	PendingBills int64   `json:"pendingBills"`
}

// DerivePaymentStatus maps a balance and the amount paid so far to a payment status.
func DerivePaymentStatus(balance, paid float64) string {
	switch {
	case balance <= 0:
		return PaymentCompleted
	case paid > 0:
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// Recalculate derives item totals, subtotal, total, balance and status from the
// items, tax, discount and amount paid.
func (b *Billing) Recalculate() {
	b.Subtotal = 0
	for i := range b.Items {
		b.Items[i].TotalPrice = float64(b.Items[i].Quantity) * b.Items[i].UnitPrice
		b.Subtotal += b.Items[i].TotalPrice
	}
	b.TotalAmount = b.Subtotal + b.Tax - b.Discount
	b.BalanceAmount = b.TotalAmount - b.PaidAmount
	b.PaymentStatus = DerivePaymentStatus(b.BalanceAmount, b.PaidAmount)
}

// RecordPayment adds amount to the paid total and refreshes balance and status.
func (b *Billing) RecordPayment(amount float64) {
	b.PaidAmount += amount
	b.BalanceAmount = b.TotalAmount - b.PaidAmount
	b.PaymentStatus = DerivePaymentStatus(b.BalanceAmount, b.PaidAmount)
}
