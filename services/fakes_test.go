package services

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// inlineLocker serializes critical sections in-process.
type inlineLocker struct{ mu sync.Mutex }

func (l *inlineLocker) WithLock(_ context.Context, _ string, fn func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn()
}

func assignID(r *models.Record) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.IsActive = true
	r.CreatedAt = fixedNow
	r.UpdatedAt = fixedNow
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{users: map[string]models.User{}}
	for _, u := range users {
		if !u.IsActive {
			u.IsActive = true
		}
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignID(&user.Record)
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := f.GetByEmail(ctx, email)
	return u != nil, nil
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, hashed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[id]
	u.Password = hashed
	f.users[id] = u
	return nil
}

func (f *fakeUsers) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeDoctors struct {
	mu      sync.Mutex
	doctors map[string]models.Doctor
}

func newFakeDoctors(doctors ...models.Doctor) *fakeDoctors {
	f := &fakeDoctors{doctors: map[string]models.Doctor{}}
	for _, d := range doctors {
		d.IsActive = true
		f.doctors[d.ID] = d
	}
	return f
}

func (f *fakeDoctors) Create(_ context.Context, doctor *models.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignID(&doctor.Record)
	f.doctors[doctor.ID] = *doctor
	return nil
}

func (f *fakeDoctors) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.doctors[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDoctors) GetByEmail(_ context.Context, email string) (*models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.doctors {
		if d.Email == email {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctors) EmailExists(ctx context.Context, email string) (bool, error) {
	d, _ := f.GetByEmail(ctx, email)
	return d != nil, nil
}

func (f *fakeDoctors) GetAll(_ context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDoctors) SetAvailability(_ context.Context, id string, available bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.doctors[id]
	d.Available = available
	f.doctors[id] = d
	return nil
}

func (f *fakeDoctors) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.doctors)), nil
}

type fakeAppointments struct {
	mu           sync.Mutex
	appointments map[string]models.Appointment
}

func newFakeAppointments(appointments ...models.Appointment) *fakeAppointments {
	f := &fakeAppointments{appointments: map[string]models.Appointment{}}
	for _, a := range appointments {
		a.IsActive = true
		f.appointments[a.ID] = a
	}
	return f
}

func (f *fakeAppointments) Create(_ context.Context, a *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignID(&a.Record)
	f.appointments[a.ID] = *a
	return nil
}

func (f *fakeAppointments) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAppointments) SlotTaken(_ context.Context, doctorID, date, slot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.SlotDate == date && a.SlotTime == slot && !a.Cancelled && a.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppointments) filter(keep func(models.Appointment) bool) []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f *fakeAppointments) GetByUser(_ context.Context, userID string) ([]models.Appointment, error) {
	return f.filter(func(a models.Appointment) bool { return a.UserID == userID }), nil
}

func (f *fakeAppointments) GetByDoctor(_ context.Context, doctorID string) ([]models.Appointment, error) {
	return f.filter(func(a models.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (f *fakeAppointments) GetAll(_ context.Context) ([]models.Appointment, error) {
	return f.filter(func(models.Appointment) bool { return true }), nil
}

func (f *fakeAppointments) Latest(ctx context.Context, limit int) ([]models.Appointment, error) {
	all, _ := f.GetAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeAppointments) Modify(_ context.Context, id string, apply func(*models.Appointment) error) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.appointments[id]
	if !ok {
		return nil, utils.NotFound("Appointment not found")
	}
	if err := apply(&a); err != nil {
		return nil, err
	}
	f.appointments[id] = a
	return &a, nil
}

func (f *fakeAppointments) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.appointments)), nil
}

type fakeRooms struct {
	mu    sync.Mutex
	rooms map[string]*models.Room
}

func newFakeRooms(rooms ...models.Room) *fakeRooms {
	f := &fakeRooms{rooms: map[string]*models.Room{}}
	for _, r := range rooms {
		r := r
		assignID(&r.Record)
		f.rooms[r.ID] = &r
	}
	return f
}

func (f *fakeRooms) byNumber(number string) *models.Room {
	for _, r := range f.rooms {
		if r.RoomNumber == number {
			return r
		}
	}
	return nil
}

// room returns a copy of the stored room with the given number.
func (f *fakeRooms) room(number string) models.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.byNumber(number)
}

func (f *fakeRooms) Create(_ context.Context, room *models.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignID(&room.Record)
	r := *room
	f.rooms[r.ID] = &r
	return nil
}

func (f *fakeRooms) GetByID(_ context.Context, id string) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRooms) NumberExists(_ context.Context, number string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byNumber(number) != nil, nil
}

func (f *fakeRooms) GetAll(_ context.Context) ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Room
	for _, r := range f.rooms {
		if r.IsActive {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (f *fakeRooms) GetAvailable(ctx context.Context, roomType string) ([]models.Room, error) {
	all, _ := f.GetAll(ctx)
	var out []models.Room
	for _, r := range all {
		if r.AvailableBeds > 0 && !r.IsMaintenance && (roomType == "" || r.RoomType == roomType) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRooms) Modify(_ context.Context, id string, apply func(*models.Room) error) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return nil, utils.NotFound("Room not found")
	}
	cp := *r
	if err := apply(&cp); err != nil {
		return nil, err
	}
	f.rooms[id] = &cp
	out := cp
	return &out, nil
}

func (f *fakeRooms) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok || !r.IsActive {
		return false, nil
	}
	r.IsActive = false
	return true, nil
}

func (f *fakeRooms) Stats(ctx context.Context) (*models.RoomStats, error) {
	all, _ := f.GetAll(ctx)
	stats := &models.RoomStats{TotalRooms: int64(len(all))}
	for _, r := range all {
		if r.AvailableBeds > 0 {
			stats.AvailableRooms++
		}
		if r.IsMaintenance {
			stats.MaintenanceRooms++
		}
	}
	return stats, nil
}

// fakeAdmissions shares its rooms with a fakeRooms so bed counts stay visible.
type fakeAdmissions struct {
	rooms      *fakeRooms
	admissions map[string]models.Admission
}

func newFakeAdmissions(rooms *fakeRooms) *fakeAdmissions {
	return &fakeAdmissions{rooms: rooms, admissions: map[string]models.Admission{}}
}

func (f *fakeAdmissions) Admit(_ context.Context, admission *models.Admission, apply func(*models.Room) error) error {
	f.rooms.mu.Lock()
	defer f.rooms.mu.Unlock()
	stored := f.rooms.byNumber(admission.RoomNumber)
	if stored == nil {
		return utils.NotFound("Room not found")
	}
	room := *stored
	if err := apply(&room); err != nil {
		return err
	}
	*stored = room
	assignID(&admission.Record)
	f.admissions[admission.ID] = *admission
	return nil
}

func (f *fakeAdmissions) Discharge(_ context.Context, id string, apply func(*models.Admission, *models.Room) error) (*models.Admission, error) {
	f.rooms.mu.Lock()
	defer f.rooms.mu.Unlock()
	admission, ok := f.admissions[id]
	if !ok {
		return nil, utils.NotFound("Admission not found")
	}
	stored := f.rooms.byNumber(admission.RoomNumber)
	if stored == nil {
		return nil, fmt.Errorf("room %s of admission %s not found", admission.RoomNumber, id)
	}
	room := *stored
	if err := apply(&admission, &room); err != nil {
		return nil, err
	}
	*stored = room
	f.admissions[id] = admission
	return &admission, nil
}

func (f *fakeAdmissions) GetByID(_ context.Context, id string) (*models.Admission, error) {
	f.rooms.mu.Lock()
	defer f.rooms.mu.Unlock()
	a, ok := f.admissions[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAdmissions) list(keep func(models.Admission) bool) []models.Admission {
	f.rooms.mu.Lock()
	defer f.rooms.mu.Unlock()
	var out []models.Admission
	for _, a := range f.admissions {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f *fakeAdmissions) GetByPatient(_ context.Context, patientID string) ([]models.Admission, error) {
	return f.list(func(a models.Admission) bool { return a.PatientID == patientID }), nil
}

func (f *fakeAdmissions) GetCurrent(_ context.Context) ([]models.Admission, error) {
	return f.list(func(a models.Admission) bool { return a.Status == models.AdmissionAdmitted }), nil
}

func (f *fakeAdmissions) Latest(_ context.Context, limit int) ([]models.Admission, error) {
	all := f.list(func(models.Admission) bool { return true })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeAdmissions) Update(_ context.Context, admission *models.Admission) error {
	f.rooms.mu.Lock()
	defer f.rooms.mu.Unlock()
	f.admissions[admission.ID] = *admission
	return nil
}

func (f *fakeAdmissions) Stats(_ context.Context) (*models.AdmissionStats, error) {
	all := f.list(func(models.Admission) bool { return true })
	stats := &models.AdmissionStats{TotalAdmissions: int64(len(all))}
	for _, a := range all {
		if a.Status == models.AdmissionAdmitted {
			stats.CurrentAdmissions++
		}
	}
	return stats, nil
}

type fakeBillings struct {
	mu       sync.Mutex
	billings map[string]models.Billing
}

func newFakeBillings() *fakeBillings {
	return &fakeBillings{billings: map[string]models.Billing{}}
}

func (f *fakeBillings) Create(_ context.Context, b *models.Billing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignID(&b.Record)
	f.billings[b.ID] = *b
	return nil
}

func (f *fakeBillings) GetByID(_ context.Context, id string) (*models.Billing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.billings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeBillings) BillNumberExists(_ context.Context, number string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.billings {
		if b.BillNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBillings) ApplyPayment(_ context.Context, id string, apply func(*models.Billing) error) (*models.Billing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.billings[id]
	if !ok {
		return nil, utils.NotFound("Billing not found")
	}
	if err := apply(&b); err != nil {
		return nil, err
	}
	f.billings[id] = b
	return &b, nil
}

func (f *fakeBillings) list(keep func(models.Billing) bool) []models.Billing {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Billing
	for _, b := range f.billings {
		if b.IsActive && keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (f *fakeBillings) GetByPatient(_ context.Context, patientID string) ([]models.Billing, error) {
	return f.list(func(b models.Billing) bool { return b.PatientID == patientID }), nil
}

func (f *fakeBillings) GetPending(_ context.Context) ([]models.Billing, error) {
	pending := f.list(func(b models.Billing) bool { return b.PaymentStatus != models.PaymentCompleted })
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].DueDate < pending[j].DueDate })
	return pending, nil
}

func (f *fakeBillings) GetAll(_ context.Context) ([]models.Billing, error) {
	return f.list(func(models.Billing) bool { return true }), nil
}

func (f *fakeBillings) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.billings[id]
	if !ok || !b.IsActive {
		return false, nil
	}
	b.IsActive = false
	f.billings[id] = b
	return true, nil
}

func (f *fakeBillings) Stats(_ context.Context) (*models.BillingStats, error) {
	stats := &models.BillingStats{}
	for _, b := range f.list(func(models.Billing) bool { return true }) {
		stats.TotalBills++
		stats.TotalAmount += b.TotalAmount
		stats.TotalPaid += b.PaidAmount
		if b.PaymentStatus != models.PaymentCompleted {
			stats.PendingBills++
		}
	}
	return stats, nil
}

type fakeDiseases struct {
	mu       sync.Mutex
	diseases map[string]models.Disease
}

func newFakeDiseases(diseases ...models.Disease) *fakeDiseases {
	f := &fakeDiseases{diseases: map[string]models.Disease{}}
	for _, d := range diseases {
		assignID(&d.Record)
		f.diseases[d.ID] = d
	}
	return f
}

func (f *fakeDiseases) Create(_ context.Context, d *models.Disease) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignID(&d.Record)
	f.diseases[d.ID] = *d
	return nil
}

func (f *fakeDiseases) GetByID(_ context.Context, id string) (*models.Disease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.diseases[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeDiseases) NameExists(_ context.Context, name, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.diseases {
		if d.IsActive && d.ID != excludeID && strings.EqualFold(d.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDiseases) active() []models.Disease {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Disease
	for _, d := range f.diseases {
		if d.IsActive {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeDiseases) GetAll(_ context.Context) ([]models.Disease, error) {
	return f.active(), nil
}

func (f *fakeDiseases) GetByCategory(_ context.Context, category string) ([]models.Disease, error) {
	var out []models.Disease
	for _, d := range f.active() {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDiseases) SearchBySymptoms(_ context.Context, symptoms []string, limit int) ([]models.Disease, error) {
	wanted := map[string]bool{}
	for _, s := range symptoms {
		wanted[s] = true
	}
	var out []models.Disease
	for _, d := range f.active() {
		for _, s := range d.Symptoms {
			if wanted[s] {
				out = append(out, d)
				break
			}
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeDiseases) TrainingData(_ context.Context) ([]models.DiseaseTrainingData, error) {
	var out []models.DiseaseTrainingData
	for _, d := range f.active() {
		out = append(out, models.DiseaseTrainingData{Name: d.Name, Symptoms: d.Symptoms})
	}
	return out, nil
}

func (f *fakeDiseases) Update(_ context.Context, d *models.Disease) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.diseases[d.ID] = *d
	return nil
}

func (f *fakeDiseases) Delete(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.diseases[id]
	if !ok || !d.IsActive {
		return false, nil
	}
	d.IsActive = false
	f.diseases[id] = d
	return true, nil
}

type fakeChats struct {
	mu       sync.Mutex
	sessions map[string]*models.ChatSession
	nextID   uint
}

func newFakeChats() *fakeChats {
	return &fakeChats{sessions: map[string]*models.ChatSession{}}
}

func (f *fakeChats) CreateSession(_ context.Context, s *models.ChatSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignID(&s.Record)
	cp := *s
	f.sessions[s.SessionID] = &cp
	return nil
}

func (f *fakeChats) GetSession(_ context.Context, sessionID string) (*models.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Messages = append([]models.ChatMessage(nil), s.Messages...)
	return &cp, nil
}

func (f *fakeChats) AppendExchange(ctx context.Context, sessionID string, messages []models.ChatMessage, symptoms, diseases []string) (*models.ChatSession, error) {
	f.mu.Lock()
	s, ok := f.sessions[sessionID]
	if !ok {
		f.mu.Unlock()
		return nil, utils.NotFound("Chat session not found")
	}
	for _, m := range messages {
		f.nextID++
		m.ID = f.nextID
		m.SessionID = sessionID
		s.Messages = append(s.Messages, m)
	}
	s.Accumulate(symptoms, diseases)
	f.mu.Unlock()
	return f.GetSession(ctx, sessionID)
}

func (f *fakeChats) SaveFeedback(_ context.Context, sessionID string, feedback models.ChatFeedback, endTime time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[sessionID]
	if !ok {
		return utils.NotFound("Chat session not found")
	}
	s.Feedback = feedback
	s.EndTime = &endTime
	return nil
}

func (f *fakeChats) Analytics(_ context.Context) (*models.ChatbotAnalytics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &models.ChatbotAnalytics{TotalSessions: int64(len(f.sessions))}, nil
}
