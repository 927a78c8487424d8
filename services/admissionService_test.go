package services

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type admissionFixture struct {
	svc   *AdmissionService
	rooms *fakeRooms
	repo  *fakeAdmissions
}

func newAdmissionFixture(rooms ...models.Room) admissionFixture {
	roomRepo := newFakeRooms(rooms...)
	repo := newFakeAdmissions(roomRepo)
	users := newFakeUsers(
		models.User{Record: models.Record{ID: "p1"}, Name: "Ann"},
		models.User{Record: models.Record{ID: "p2"}, Name: "Ben"},
		models.User{Record: models.Record{ID: "p3"}, Name: "Cat"},
	)
	doctors := newFakeDoctors(
		models.Doctor{Record: models.Record{ID: "d1"}, Name: "Dr. Who", Available: true},
		models.Doctor{Record: models.Record{ID: "d2"}, Name: "Dr. Grey", Available: true},
	)
	svc := NewAdmissionService(repo, users, doctors, fixedClock)
	return admissionFixture{svc: svc, rooms: roomRepo, repo: repo}
}

func ward101() models.Room {
	return models.Room{RoomNumber: "101", RoomType: "general", Floor: "1", Ward: "A", Capacity: 2, AvailableBeds: 2, DailyRate: 1500}
}

func newAdmission(patientID, date string) *models.Admission {
	return &models.Admission{
		PatientID:     patientID,
		DoctorID:      "d1",
		RoomNumber:    "101",
		AdmissionDate: date,
		AdmissionTime: "10:00",
		Reason:        "observation",
		Diagnosis:     "fever",
	}
}

func TestAdmission_FillsRoomUntilNoBedsRemain(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	first := newAdmission("p1", "2024-03-01")
	require.NoError(t, f.svc.Create(ctx, first))
	assert.Equal(t, models.AdmissionAdmitted, first.Status)
	assert.Equal(t, 1500.0, first.DailyRate)
	assert.Equal(t, "general", first.RoomType)
	assert.Equal(t, models.PaymentPending, first.PaymentStatus)

	room := f.rooms.room("101")
	assert.Equal(t, 1, room.OccupiedBeds)
	assert.Equal(t, 1, room.AvailableBeds)

	require.NoError(t, f.svc.Create(ctx, newAdmission("p2", "2024-03-01")))
	room = f.rooms.room("101")
	assert.Equal(t, 2, room.OccupiedBeds)
	assert.Equal(t, 0, room.AvailableBeds)

	err := f.svc.Create(ctx, newAdmission("p3", "2024-03-01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, "No available beds in this room", err.Error())
}

func TestAdmission_DischargeReturnsBedAndCharges(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	admission := newAdmission("p1", "2024-03-01")
	require.NoError(t, f.svc.Create(ctx, admission))

	discharged, err := f.svc.Discharge(ctx, admission.ID, DischargeInput{DischargeDate: "2024-03-04", DischargeSummary: "recovered"})
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionDischarged, discharged.Status)
	assert.Equal(t, 3, discharged.TotalDays)
	assert.Equal(t, 4500.0, discharged.TotalAmount)
	assert.Equal(t, "recovered", discharged.DischargeSummary)

	room := f.rooms.room("101")
	assert.Equal(t, 0, room.OccupiedBeds)
	assert.Equal(t, 2, room.AvailableBeds)
}

func TestAdmission_SameDayDischargeChargesOneDay(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	admission := newAdmission("p1", "")
	require.NoError(t, f.svc.Create(ctx, admission))
	assert.Equal(t, "2024-03-10", admission.AdmissionDate)

	discharged, err := f.svc.Discharge(ctx, admission.ID, DischargeInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, discharged.TotalDays)
	assert.Equal(t, 1500.0, discharged.TotalAmount)
}

func TestAdmission_DoubleDischargeConflicts(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	admission := newAdmission("p1", "2024-03-01")
	require.NoError(t, f.svc.Create(ctx, admission))
	_, err := f.svc.Discharge(ctx, admission.ID, DischargeInput{DischargeDate: "2024-03-02"})
	require.NoError(t, err)

	_, err = f.svc.Discharge(ctx, admission.ID, DischargeInput{DischargeDate: "2024-03-03"})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrConflict)

	room := f.rooms.room("101")
	assert.Equal(t, 2, room.AvailableBeds, "a second discharge must not free another bed")
}

func TestAdmission_DischargeBeforeAdmissionRejected(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	admission := newAdmission("p1", "2024-03-05")
	require.NoError(t, f.svc.Create(ctx, admission))

	_, err := f.svc.Discharge(ctx, admission.ID, DischargeInput{DischargeDate: "2024-03-01"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAdmission_RejectsRoomUnderMaintenance(t *testing.T) {
	room := ward101()
	room.IsMaintenance = true
	f := newAdmissionFixture(room)

	err := f.svc.Create(context.Background(), newAdmission("p1", "2024-03-01"))
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, 2, f.rooms.room("101").AvailableBeds)
}

func TestAdmission_UnknownReferences(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	err := f.svc.Create(ctx, newAdmission("nobody", "2024-03-01"))
	assert.ErrorIs(t, err, utils.ErrNotFound)

	missingRoom := newAdmission("p1", "2024-03-01")
	missingRoom.RoomNumber = "999"
	err = f.svc.Create(ctx, missingRoom)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = f.svc.Discharge(ctx, "missing", DischargeInput{})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestAdmission_ConcurrentAdmissionsNeverOverbook(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.svc.Create(ctx, newAdmission("p1", "2024-03-01")); err == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	room := f.rooms.room("101")
	assert.Equal(t, 2, admitted)
	assert.Equal(t, 2, room.OccupiedBeds)
	assert.Equal(t, 0, room.AvailableBeds)
	assert.Equal(t, room.Capacity, room.OccupiedBeds+room.AvailableBeds)
}

// slowAdmissions delays every admit the way a database round trip would.
type slowAdmissions struct {
	*fakeAdmissions
	delay time.Duration
}

func (s *slowAdmissions) Admit(ctx context.Context, admission *models.Admission, apply func(*models.Room) error) error {
	time.Sleep(s.delay)
	return s.fakeAdmissions.Admit(ctx, admission, apply)
}

func TestAdmission_ConcurrentAdmissionsFillEveryFreeBed(t *testing.T) {
	ward := ward101()
	ward.Capacity = 10
	ward.AvailableBeds = 10
	f := newAdmissionFixture(ward)
	svc := NewAdmissionService(&slowAdmissions{fakeAdmissions: f.repo, delay: 20 * time.Millisecond},
		newFakeUsers(models.User{Record: models.Record{ID: "p1"}}),
		newFakeDoctors(models.Doctor{Record: models.Record{ID: "d1"}}),
		fixedClock)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Create(ctx, newAdmission("p1", "2024-03-01"))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	room := f.rooms.room("101")
	assert.Equal(t, 10, room.OccupiedBeds)
	assert.Equal(t, 0, room.AvailableBeds)
}

func TestAdmission_DischargeFailsWhenRoomIsGone(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	admission := newAdmission("p1", "2024-03-01")
	require.NoError(t, f.svc.Create(ctx, admission))

	f.rooms.mu.Lock()
	f.rooms.byNumber("101").RoomNumber = "101-old"
	f.rooms.mu.Unlock()

	_, err := f.svc.Discharge(ctx, admission.ID, DischargeInput{DischargeDate: "2024-03-02"})
	require.Error(t, err)

	stored, err := f.svc.GetByID(ctx, admission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AdmissionAdmitted, stored.Status, "a failed discharge leaves the admission open")
}

func TestAdmission_PaymentStatusFollowsPaidAmount(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	admission := newAdmission("p1", "2024-03-01")
	require.NoError(t, f.svc.Create(ctx, admission))

	paid := 500.0
	updated, err := f.svc.Update(ctx, admission.ID, AdmissionUpdate{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartial, updated.PaymentStatus)

	discharged, err := f.svc.Discharge(ctx, admission.ID, DischargeInput{DischargeDate: "2024-03-04"})
	require.NoError(t, err)
	assert.Equal(t, 4500.0, discharged.TotalAmount)
	assert.Equal(t, models.PaymentPartial, discharged.PaymentStatus)

	paid = 4500
	updated, err = f.svc.Update(ctx, admission.ID, AdmissionUpdate{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, updated.PaymentStatus)

	paid = 0
	updated, err = f.svc.Update(ctx, admission.ID, AdmissionUpdate{PaidAmount: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, updated.PaymentStatus)

	negative := -1.0
	_, err = f.svc.Update(ctx, admission.ID, AdmissionUpdate{PaidAmount: &negative})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestAdmission_CurrentListsEveryAdmittedPatient(t *testing.T) {
	f := newAdmissionFixture(ward101())
	ctx := context.Background()

	first := newAdmission("p1", "2024-03-01")
	require.NoError(t, f.svc.Create(ctx, first))
	second := newAdmission("p2", "2024-03-02")
	second.DoctorID = "d2"
	require.NoError(t, f.svc.Create(ctx, second))
	_, err := f.svc.Discharge(ctx, first.ID, DischargeInput{DischargeDate: "2024-03-03"})
	require.NoError(t, err)
	third := newAdmission("p3", "2024-03-03")
	require.NoError(t, f.svc.Create(ctx, third))

	current, err := f.svc.GetCurrent(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(current))
	for _, a := range current {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{second.ID, third.ID}, ids)
}

func TestStayDays(t *testing.T) {
	cases := []struct {
		from, to string
		want     int
	}{
		{"2024-03-01", "2024-03-01", 1},
		{"2024-03-01", "2024-03-02", 1},
		{"2024-03-01", "2024-03-08", 7},
		{"2024-02-28", "2024-03-01", 2},
	}
	for _, tc := range cases {
		from, err := utils.ParseDate(tc.from)
		require.NoError(t, err)
		to, err := utils.ParseDate(tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, StayDays(from, to), "%s -> %s", tc.from, tc.to)
	}
}
