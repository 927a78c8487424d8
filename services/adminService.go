package services

import (
	"MediCore/models"
	"MediCore/repositories"
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	latestAppointmentsLimit = 10
	latestAdmissionsLimit   = 5
)

// AdminCredentials are the single administrator login taken from configuration.
type AdminCredentials struct {
	Email    string
	Password string
}

type AdminService struct {
	creds        AdminCredentials
	users        repositories.UserRepository
	doctors      repositories.DoctorRepository
	staff        repositories.StaffRepository
	appointments repositories.AppointmentRepository
	admissions   repositories.AdmissionRepository
	billings     repositories.BillingRepository
	rooms        repositories.RoomRepository
	chats        repositories.ChatbotRepository
}

// AdminRepositories groups the stores the dashboard reads from.
type AdminRepositories struct {
	Users        repositories.UserRepository
	Doctors      repositories.DoctorRepository
	Staff        repositories.StaffRepository
	Appointments repositories.AppointmentRepository
	Admissions   repositories.AdmissionRepository
	Billings     repositories.BillingRepository
	Rooms        repositories.RoomRepository
	Chats        repositories.ChatbotRepository
}

func NewAdminService(creds AdminCredentials, repos AdminRepositories) *AdminService {
	return &AdminService{
		creds:        creds,
		users:        repos.Users,
		doctors:      repos.Doctors,
		staff:        repos.Staff,
		appointments: repos.Appointments,
		admissions:   repos.Admissions,
		billings:     repos.Billings,
		rooms:        repos.Rooms,
		chats:        repos.Chats,
	}
}

// CheckCredentials compares against the configured administrator login in constant time.
func (s *AdminService) CheckCredentials(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.creds.Email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	return emailOK && passwordOK && s.creds.Email != ""
}

// Dashboard gathers the admin overview. The independent reads run concurrently.
func (s *AdminService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	dash := &models.Dashboard{}
	var (
		admissionStats *models.AdmissionStats
		billingStats   *models.BillingStats
		roomStats      *models.RoomStats
		chatStats      *models.ChatbotAnalytics
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dash.Doctors, err = s.doctors.Count(ctx)
		return wrapDashboard("doctors", err)
	})
	g.Go(func() (err error) {
		dash.Patients, err = s.users.Count(ctx)
		return wrapDashboard("patients", err)
	})
	g.Go(func() (err error) {
		dash.Appointments, err = s.appointments.Count(ctx)
		return wrapDashboard("appointments", err)
	})
	g.Go(func() (err error) {
		dash.Staff, err = s.staff.Count(ctx)
		return wrapDashboard("staff", err)
	})
	g.Go(func() (err error) {
		admissionStats, err = s.admissions.Stats(ctx)
		return wrapDashboard("admissions", err)
	})
	g.Go(func() (err error) {
		billingStats, err = s.billings.Stats(ctx)
		return wrapDashboard("revenue", err)
	})
	g.Go(func() (err error) {
		roomStats, err = s.rooms.Stats(ctx)
		return wrapDashboard("rooms", err)
	})
	g.Go(func() (err error) {
		chatStats, err = s.chats.Analytics(ctx)
		return wrapDashboard("chatbot sessions", err)
	})
	g.Go(func() (err error) {
		dash.LatestAppointments, err = s.appointments.Latest(ctx, latestAppointmentsLimit)
		return wrapDashboard("latest appointments", err)
	})
	g.Go(func() (err error) {
		dash.LatestAdmissions, err = s.admissions.Latest(ctx, latestAdmissionsLimit)
		return wrapDashboard("latest admissions", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dash.Admissions = admissionStats.TotalAdmissions
	dash.CurrentAdmissions = admissionStats.CurrentAdmissions
	dash.TotalRevenue = billingStats.TotalAmount
	dash.PaidRevenue = billingStats.TotalPaid
	dash.PendingRevenue = billingStats.TotalAmount - billingStats.TotalPaid
	dash.TotalRooms = roomStats.TotalRooms
	dash.AvailableRooms = roomStats.AvailableRooms
	dash.ChatbotSessions = chatStats.TotalSessions
	return dash, nil
}

func wrapDashboard(part string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load dashboard %s: %w", part, err)
	}
	return nil
}
