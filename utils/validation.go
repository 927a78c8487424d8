package utils

import (
	"MediCore/models"
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dateLayout = "2006-01-02"

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrInvalidDate      = errors.New("must be a date in YYYY-MM-DD format")

	clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d(\s?[AaPp][Mm])?$`)
)

func validatePassword(value interface{}) error {
	password, _ := value.(string)
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}

func validateDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders t as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ValidateRegistration validates the fields of a new patient or staff account.
func ValidateRegistration(name, email, password string) error {
	return FromValidation(validation.Errors{
		"name":     validation.Validate(name, validation.Required, validation.Length(2, 100)),
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required, validation.By(validatePassword)),
	}.Filter())
}

// ValidateLogin requires both credentials.
func ValidateLogin(email, password string) error {
	return FromValidation(validation.Errors{
		"email":    validation.Validate(email, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}.Filter())
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(email, resetCode, newPassword string) error {
	return FromValidation(validation.Errors{
		"email":     validation.Validate(email, validation.Required, is.Email),
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter())
}

func ValidateDoctor(doctor *models.Doctor) error {
	return FromValidation(validation.ValidateStruct(doctor,
		validation.Field(&doctor.Name, validation.Required),
		validation.Field(&doctor.Email, validation.Required, is.Email),
		validation.Field(&doctor.Password, validation.Required, validation.By(validatePassword)),
		validation.Field(&doctor.Speciality, validation.Required),
		validation.Field(&doctor.Degree, validation.Required),
		validation.Field(&doctor.Experience, validation.Required),
		validation.Field(&doctor.Fees, validation.Min(0.0)),
	))
}

func ValidateAppointment(appointment *models.Appointment) error {
	return FromValidation(validation.ValidateStruct(appointment,
		validation.Field(&appointment.DoctorID, validation.Required),
		validation.Field(&appointment.SlotDate, validation.Required, validation.By(validateDate)),
		validation.Field(&appointment.SlotTime, validation.Required, validation.Match(clockPattern)),
	))
}

// ValidateStaff validates a staff record. The password is only checked when
// requirePassword is set or a new one is supplied.
func ValidateStaff(staff *models.Staff, requirePassword bool) error {
	passwordRules := []validation.Rule{validation.By(validatePassword)}
	if requirePassword {
		passwordRules = append([]validation.Rule{validation.Required}, passwordRules...)
	} else if staff.Password == "" {
		passwordRules = nil
	}
	return FromValidation(validation.ValidateStruct(staff,
		validation.Field(&staff.Name, validation.Required),
		validation.Field(&staff.Email, validation.Required, is.Email),
		validation.Field(&staff.Password, passwordRules...),
		validation.Field(&staff.Phone, validation.Required),
		validation.Field(&staff.Role, validation.Required, validation.In(models.StaffRoles...)),
		validation.Field(&staff.Department, validation.Required),
		validation.Field(&staff.Salary, validation.Min(0.0)),
	))
}

func ValidateRoom(room *models.Room) error {
	return FromValidation(validation.ValidateStruct(room,
		validation.Field(&room.RoomNumber, validation.Required),
		validation.Field(&room.RoomType, validation.Required, validation.In(models.RoomTypes...)),
		validation.Field(&room.Floor, validation.Required),
		validation.Field(&room.Ward, validation.Required),
		validation.Field(&room.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&room.DailyRate, validation.Min(0.0)),
		validation.Field(&room.MaintenanceStartDate, validation.By(validateDate)),
		validation.Field(&room.MaintenanceEndDate, validation.By(validateDate)),
	))
}

func ValidateAdmission(admission *models.Admission) error {
	return FromValidation(validation.ValidateStruct(admission,
		validation.Field(&admission.PatientID, validation.Required),
		validation.Field(&admission.DoctorID, validation.Required),
		validation.Field(&admission.RoomNumber, validation.Required),
		validation.Field(&admission.AdmissionDate, validation.Required, validation.By(validateDate)),
		validation.Field(&admission.AdmissionTime, validation.Required),
		validation.Field(&admission.Reason, validation.Required),
		validation.Field(&admission.Diagnosis, validation.Required),
		validation.Field(&admission.DailyRate, validation.Min(0.0)),
		validation.Field(&admission.FollowUpDate, validation.By(validateDate)),
	))
}

func validateBillItem(value interface{}) error {
	item, _ := value.(models.BillItem)
	return validation.ValidateStruct(&item,
		validation.Field(&item.Name, validation.Required),
		validation.Field(&item.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&item.UnitPrice, validation.Min(0.0)),
	)
}

func ValidateBilling(billing *models.Billing) error {
	return FromValidation(validation.ValidateStruct(billing,
		validation.Field(&billing.PatientID, validation.Required),
		validation.Field(&billing.BillType, validation.Required, validation.In(models.BillTypes...)),
		validation.Field(&billing.AppointmentID, validation.When(billing.BillType == models.BillAppointment,
			validation.Required.Error("Appointment ID required for appointment billing"))),
		validation.Field(&billing.AdmissionID, validation.When(billing.BillType == models.BillAdmission,
			validation.Required.Error("Admission ID required for admission billing"))),
		validation.Field(&billing.Items, validation.Required, validation.Each(validation.By(validateBillItem))),
		validation.Field(&billing.Tax, validation.Min(0.0)),
		validation.Field(&billing.Discount, validation.Min(0.0)),
		validation.Field(&billing.PaymentMethod, validation.In(models.PaymentMethods...)),
		validation.Field(&billing.DueDate, validation.By(validateDate)),
	))
}

func ValidatePayment(amount float64, method string) error {
	return FromValidation(validation.Errors{
		"paidAmount":    validation.Validate(amount, validation.Required, validation.Min(0.01)),
		"paymentMethod": validation.Validate(method, validation.In(models.PaymentMethods...)),
	}.Filter())
}

func ValidateDisease(disease *models.Disease) error {
	return FromValidation(validation.ValidateStruct(disease,
		validation.Field(&disease.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&disease.Description, validation.Required),
		validation.Field(&disease.Symptoms, validation.Required),
		validation.Field(&disease.Category, validation.Required, validation.In(models.DiseaseCategories...)),
		validation.Field(&disease.Severity, validation.Required, validation.In(models.DiseaseSeverities...)),
	))
}

func ValidatePrescription(prescription *models.Prescription) error {
	return FromValidation(validation.ValidateStruct(prescription,
		validation.Field(&prescription.AppointmentID, validation.Required),
		validation.Field(&prescription.PatientID, validation.Required),
		validation.Field(&prescription.Diagnosis, validation.Required),
		validation.Field(&prescription.Medicines, validation.Each(validation.By(func(value interface{}) error {
			medicine, _ := value.(models.Medicine)
			return validation.ValidateStruct(&medicine,
				validation.Field(&medicine.Name, validation.Required),
				validation.Field(&medicine.Dosage, validation.Required),
				validation.Field(&medicine.Frequency, validation.Required),
				validation.Field(&medicine.Duration, validation.Required),
			)
		}))),
		validation.Field(&prescription.FollowUpDate, validation.By(validateDate)),
	))
}

// ValidateFeedback requires a rating between 1 and 5.
func ValidateFeedback(sessionID string, rating int) error {
	return FromValidation(validation.Errors{
		"sessionId": validation.Validate(sessionID, validation.Required),
		"rating":    validation.Validate(rating, validation.Required, validation.Min(1), validation.Max(5)),
	}.Filter())
}

// ValidateMaintenanceWindow checks the optional maintenance dates and their order.
func ValidateMaintenanceWindow(room *models.Room) error {
	err := validation.ValidateStruct(room,
		validation.Field(&room.MaintenanceStartDate, validation.By(validateDate)),
		validation.Field(&room.MaintenanceEndDate, validation.By(validateDate)),
	)
	if err != nil {
		return FromValidation(err)
	}
	if room.MaintenanceStartDate != "" && room.MaintenanceEndDate != "" && room.MaintenanceEndDate < room.MaintenanceStartDate {
		return Validation("maintenanceEndDate: must not be before the start date.")
	}
	return nil
}
