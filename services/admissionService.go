package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"MediCore/utils"
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DischargeInput carries the optional discharge details. Date and time default to now.
type DischargeInput struct {
	DischargeDate    string `json:"dischargeDate"`
	DischargeTime    string `json:"dischargeTime"`
	DischargeSummary string `json:"dischargeSummary"`
	FollowUpDate     string `json:"followUpDate"`
}

// AdmissionUpdate carries the fields that may change while a patient is admitted.
// Room, dates and status change only through admission and discharge. The
// payment status follows the amount paid against the stay total.
type AdmissionUpdate struct {
	Reason           *string  `json:"reason"`
	Diagnosis        *string  `json:"diagnosis"`
	Notes            *string  `json:"notes"`
	DischargeSummary *string  `json:"dischargeSummary"`
	FollowUpDate     *string  `json:"followUpDate"`
	PaidAmount       *float64 `json:"paidAmount"`
}

type AdmissionService struct {
	admissions repositories.AdmissionRepository
	users      repositories.UserRepository
	doctors    repositories.DoctorRepository
	clock      Clock
}

func NewAdmissionService(admissions repositories.AdmissionRepository, users repositories.UserRepository, doctors repositories.DoctorRepository, clock Clock) *AdmissionService {
	return &AdmissionService{admissions: admissions, users: users, doctors: doctors, clock: clock}
}

// Create admits a patient, taking one free bed from the room in the same transaction.
func (s *AdmissionService) Create(ctx context.Context, admission *models.Admission) error {
	now := s.clock()
	if admission.AdmissionDate == "" {
		admission.AdmissionDate = utils.FormatDate(now)
	}
	if admission.AdmissionTime == "" {
		admission.AdmissionTime = now.Format("15:04")
	}
	if err := utils.ValidateAdmission(admission); err != nil {
		return err
	}

	patient, err := s.users.GetByID(ctx, admission.PatientID)
	if err != nil {
		return fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil {
		return utils.NotFound("Patient not found")
	}
	doctor, err := s.doctors.GetByID(ctx, admission.DoctorID)
	if err != nil {
		return fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil {
		return utils.NotFound("Doctor not found")
	}

	// The room row lock in Admit serializes bed bookkeeping.
	return s.admissions.Admit(ctx, admission, func(room *models.Room) error {
		if !room.IsActive {
			return utils.Validation("Room is not active")
		}
		if room.IsMaintenance {
			return utils.Validation("Room is under maintenance")
		}
		if room.AvailableBeds <= 0 {
			return utils.Validation("No available beds in this room")
		}
		room.AvailableBeds--
		room.OccupiedBeds++

		admission.RoomType = room.RoomType
		if admission.DailyRate == 0 {
			admission.DailyRate = room.DailyRate
		}
		admission.Status = models.AdmissionAdmitted
		admission.TotalDays = 0
		admission.TotalAmount = 0
		admission.PaidAmount = 0
		admission.PaymentStatus = models.PaymentPending
		admission.DischargeDate = ""
		admission.DischargeTime = ""
		return nil
	})
}

// Discharge closes an admission: the stay is charged per calendar day (at
// least one) and the bed goes back to the room.
func (s *AdmissionService) Discharge(ctx context.Context, id string, input DischargeInput) (*models.Admission, error) {
	now := s.clock()
	if input.DischargeDate == "" {
		input.DischargeDate = utils.FormatDate(now)
	}
	if input.DischargeTime == "" {
		input.DischargeTime = now.Format("15:04")
	}
	dischargeDay, err := utils.ParseDate(input.DischargeDate)
	if err != nil {
		return nil, utils.Validation("dischargeDate: %s.", utils.ErrInvalidDate.Error())
	}
	if input.FollowUpDate != "" {
		if _, err := utils.ParseDate(input.FollowUpDate); err != nil {
			return nil, utils.Validation("followUpDate: %s.", utils.ErrInvalidDate.Error())
		}
	}

	return s.admissions.Discharge(ctx, id, func(admission *models.Admission, room *models.Room) error {
		if admission.Status == models.AdmissionDischarged {
			return utils.Conflict("Patient already discharged")
		}
		admittedDay, err := utils.ParseDate(admission.AdmissionDate)
		if err != nil {
			return fmt.Errorf("admission %s has malformed admission date %q", admission.ID, admission.AdmissionDate)
		}
		if dischargeDay.Before(admittedDay) {
			return utils.Validation("Discharge date cannot be before admission date")
		}

		admission.TotalDays = StayDays(admittedDay, dischargeDay)
		admission.TotalAmount = float64(admission.TotalDays) * admission.DailyRate
		admission.Status = models.AdmissionDischarged
		admission.DischargeDate = input.DischargeDate
		admission.DischargeTime = input.DischargeTime
		if input.DischargeSummary != "" {
			admission.DischargeSummary = input.DischargeSummary
		}
		if input.FollowUpDate != "" {
			admission.FollowUpDate = input.FollowUpDate
		}

		admission.PaymentStatus = admissionPaymentStatus(admission)

		if room.OccupiedBeds > 0 {
			room.OccupiedBeds--
			room.AvailableBeds++
		}
		return nil
	})
}

// StayDays counts calendar days between admission and discharge, charging at least one.
func StayDays(admitted, discharged time.Time) int {
	days := int(discharged.Sub(admitted).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func (s *AdmissionService) Update(ctx context.Context, id string, update AdmissionUpdate) (*models.Admission, error) {
	admission, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = utils.FromValidation(validation.Errors{
		"followUpDate": validation.Validate(update.FollowUpDate, validation.By(dateOrNil)),
		"paidAmount":   validation.Validate(update.PaidAmount, validation.Min(0.0)),
	}.Filter())
	if err != nil {
		return nil, err
	}

	if update.Reason != nil {
		admission.Reason = *update.Reason
	}
	if update.Diagnosis != nil {
		admission.Diagnosis = *update.Diagnosis
	}
	if update.Notes != nil {
		admission.Notes = *update.Notes
	}
	if update.DischargeSummary != nil {
		admission.DischargeSummary = *update.DischargeSummary
	}
	if update.FollowUpDate != nil {
		admission.FollowUpDate = *update.FollowUpDate
	}
	if update.PaidAmount != nil {
		admission.PaidAmount = *update.PaidAmount
		admission.PaymentStatus = admissionPaymentStatus(admission)
	}
	if err := s.admissions.Update(ctx, admission); err != nil {
		return nil, err
	}
	return admission, nil
}

// admissionPaymentStatus derives the status from the amount paid. Until
// discharge there is no total to settle, so any payment is partial.
func admissionPaymentStatus(admission *models.Admission) string {
	if admission.Status != models.AdmissionDischarged {
		if admission.PaidAmount > 0 {
			return models.PaymentPartial
		}
		return models.PaymentPending
	}
	return models.DerivePaymentStatus(admission.TotalAmount-admission.PaidAmount, admission.PaidAmount)
}

func dateOrNil(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil || *s == "" {
		return nil
	}
	if _, err := utils.ParseDate(*s); err != nil {
		return utils.ErrInvalidDate
	}
	return nil
}

func (s *AdmissionService) GetByID(ctx context.Context, id string) (*models.Admission, error) {
	admission, err := s.admissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get admission: %w", err)
	}
	if admission == nil {
		return nil, utils.NotFound("Admission not found")
	}
	return admission, nil
}

func (s *AdmissionService) GetByPatient(ctx context.Context, patientID string) ([]models.Admission, error) {
	return s.admissions.GetByPatient(ctx, patientID)
}

// GetCurrent lists every patient still admitted, newest admission date first.
func (s *AdmissionService) GetCurrent(ctx context.Context) ([]models.Admission, error) {
	return s.admissions.GetCurrent(ctx)
}

func (s *AdmissionService) Stats(ctx context.Context) (*models.AdmissionStats, error) {
	return s.admissions.Stats(ctx)
}
