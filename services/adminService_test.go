package services

import (
	"MediCore/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_CheckCredentials(t *testing.T) {
	svc := NewAdminService(AdminCredentials{Email: "admin@medicore.test", Password: "letmein123"}, AdminRepositories{})
	assert.True(t, svc.CheckCredentials("admin@medicore.test", "letmein123"))
	assert.False(t, svc.CheckCredentials("admin@medicore.test", "letmein"))
	assert.False(t, svc.CheckCredentials("other@medicore.test", "letmein123"))

	unset := NewAdminService(AdminCredentials{}, AdminRepositories{})
	assert.False(t, unset.CheckCredentials("", ""))
}

func TestAdmin_DashboardAggregates(t *testing.T) {
	ctx := context.Background()
	f := newAdmissionFixture(ward101())
	require.NoError(t, f.svc.Create(ctx, newAdmission("p1", "2024-03-09")))

	appointments := newFakeAppointments(
		models.Appointment{Record: models.Record{ID: "a1"}, UserID: "p1", DoctorID: "d1", SlotDate: "2024-03-11", SlotTime: "10:00"},
	)
	billings := newFakeBillings()
	require.NoError(t, billings.Create(ctx, &models.Billing{
		PatientID: "p1", TotalAmount: 1000, PaidAmount: 400, BalanceAmount: 600, PaymentStatus: models.PaymentPartial,
	}))
	chats := newFakeChats()
	require.NoError(t, chats.CreateSession(ctx, &models.ChatSession{SessionID: "s1"}))

	staff := newFakeStaff()
	require.NoError(t, staff.Create(ctx, nurse("grace@hospital.org")))

	svc := NewAdminService(AdminCredentials{}, AdminRepositories{
		Users:        newFakeUsers(models.User{Record: models.Record{ID: "p1"}}, models.User{Record: models.Record{ID: "p2"}}),
		Doctors:      newFakeDoctors(models.Doctor{Record: models.Record{ID: "d1"}, Available: true}),
		Staff:        staff,
		Appointments: appointments,
		Admissions:   f.repo,
		Billings:     billings,
		Rooms:        f.rooms,
		Chats:        chats,
	})

	dash, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dash.Doctors)
	assert.Equal(t, int64(2), dash.Patients)
	assert.Equal(t, int64(1), dash.Appointments)
	assert.Equal(t, int64(1), dash.Staff)
	assert.Equal(t, int64(1), dash.Admissions)
	assert.Equal(t, int64(1), dash.CurrentAdmissions)
	assert.Equal(t, 1000.0, dash.TotalRevenue)
	assert.Equal(t, 400.0, dash.PaidRevenue)
	assert.Equal(t, 600.0, dash.PendingRevenue)
	assert.Equal(t, int64(1), dash.TotalRooms)
	assert.Equal(t, int64(1), dash.AvailableRooms)
	assert.Equal(t, int64(1), dash.ChatbotSessions)
	assert.Len(t, dash.LatestAppointments, 1)
	assert.Len(t, dash.LatestAdmissions, 1)
}
