package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

const billNumberAttempts = 5

type BillingService struct {
	billings     repositories.BillingRepository
	users        repositories.UserRepository
	appointments repositories.AppointmentRepository
	admissions   repositories.AdmissionRepository
	clock        Clock
}

func NewBillingService(billings repositories.BillingRepository, users repositories.UserRepository, appointments repositories.AppointmentRepository, admissions repositories.AdmissionRepository, clock Clock) *BillingService {
	return &BillingService{billings: billings, users: users, appointments: appointments, admissions: admissions, clock: clock}
}

// Create prices the bill from its items and stores it unpaid. Appointment and
// admission bills must reference an existing record of that kind.
func (s *BillingService) Create(ctx context.Context, billing *models.Billing) error {
	if err := utils.ValidateBilling(billing); err != nil {
		return err
	}

	patient, err := s.users.GetByID(ctx, billing.PatientID)
	if err != nil {
		return fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil {
		return utils.NotFound("Patient not found")
	}

	switch billing.BillType {
	case models.BillAppointment:
		appointment, err := s.appointments.GetByID(ctx, billing.AppointmentID)
		if err != nil {
			return fmt.Errorf("failed to get appointment: %w", err)
		}
		if appointment == nil {
			return utils.NotFound("Appointment not found")
		}
	case models.BillAdmission:
		admission, err := s.admissions.GetByID(ctx, billing.AdmissionID)
		if err != nil {
			return fmt.Errorf("failed to get admission: %w", err)
		}
		if admission == nil {
			return utils.NotFound("Admission not found")
		}
	}

	billing.PaidAmount = 0
	billing.Recalculate()
	if billing.TotalAmount < 0 {
		return utils.Validation("Discount cannot exceed subtotal plus tax")
	}
	if billing.PaymentMethod == "" {
		billing.PaymentMethod = "pending"
	}
	billing.BillDate = utils.FormatDate(s.clock())

	number, err := s.newBillNumber(ctx)
	if err != nil {
		return err
	}
	billing.BillNumber = number
	return s.billings.Create(ctx, billing)
}

// newBillNumber returns an unused number of the form BILL-<6 digits of time>-<3 random digits>.
func (s *BillingService) newBillNumber(ctx context.Context) (string, error) {
	for i := 0; i < billNumberAttempts; i++ {
		millis := strconv.FormatInt(s.clock().UnixMilli(), 10)
		if len(millis) > 6 {
			millis = millis[len(millis)-6:]
		}
		n, err := rand.Int(rand.Reader, big.NewInt(1000))
		if err != nil {
			return "", fmt.Errorf("failed to generate bill number: %w", err)
		}
		number := fmt.Sprintf("BILL-%s-%03d", millis, n.Int64())

		taken, err := s.billings.BillNumberExists(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check bill number: %w", err)
		}
		if !taken {
			return number, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique bill number after %d attempts", billNumberAttempts)
}

// RecordPayment adds a payment to the bill and recomputes balance and status atomically.
func (s *BillingService) RecordPayment(ctx context.Context, id string, amount float64, method string) (*models.Billing, error) {
	if err := utils.ValidatePayment(amount, method); err != nil {
		return nil, err
	}
	return s.billings.ApplyPayment(ctx, id, func(billing *models.Billing) error {
		if !billing.IsActive {
			return utils.Validation("Cannot record a payment on a deleted bill")
		}
		billing.RecordPayment(amount)
		if method != "" {
			billing.PaymentMethod = method
		}
		return nil
	})
}

func (s *BillingService) GetByID(ctx context.Context, id string) (*models.Billing, error) {
	billing, err := s.billings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get billing: %w", err)
	}
	if billing == nil {
		return nil, utils.NotFound("Billing not found")
	}
	return billing, nil
}

func (s *BillingService) GetByPatient(ctx context.Context, patientID string) ([]models.Billing, error) {
	return s.billings.GetByPatient(ctx, patientID)
}

// GetPending lists active bills that still carry a balance.
func (s *BillingService) GetPending(ctx context.Context) ([]models.Billing, error) {
	return s.billings.GetPending(ctx)
}

func (s *BillingService) Stats(ctx context.Context) (*models.BillingStats, error) {
	return s.billings.Stats(ctx)
}

func (s *BillingService) Delete(ctx context.Context, id string) error {
	ok, err := s.billings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return utils.NotFound("Billing not found")
	}
	return nil
}
