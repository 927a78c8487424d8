package services

import (
	"MediCore/models"
	"MediCore/utils"
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newBillingFixture() (*BillingService, *fakeBillings) {
	billings := newFakeBillings()
	users := newFakeUsers(models.User{Record: models.Record{ID: "p1"}, Name: "Ann"})
	appointments := newFakeAppointments(models.Appointment{Record: models.Record{ID: "a1"}, UserID: "p1", DoctorID: "d1"})
	admissions := newFakeAdmissions(newFakeRooms())
	return NewBillingService(billings, users, appointments, admissions, fixedClock), billings
}

func consultationBill() *models.Billing {
	return &models.Billing{
		PatientID:     "p1",
		AppointmentID: "a1",
		BillType:      models.BillAppointment,
		Items: []models.BillItem{
			{Name: "Consultation", Quantity: 1, UnitPrice: 500},
			{Name: "Blood test", Quantity: 2, UnitPrice: 250},
		},
		Tax:      100,
		Discount: 50,
	}
}

func TestBilling_CreateComputesTotals(t *testing.T) {
	svc, _ := newBillingFixture()
	bill := consultationBill()

	require.NoError(t, svc.Create(context.Background(), bill))

	assert.Equal(t, 500.0, bill.Items[0].TotalPrice)
	assert.Equal(t, 500.0, bill.Items[1].TotalPrice)
	assert.Equal(t, 1000.0, bill.Subtotal)
	assert.Equal(t, 1050.0, bill.TotalAmount)
	assert.Equal(t, 1050.0, bill.BalanceAmount)
	assert.Equal(t, 0.0, bill.PaidAmount)
	assert.Equal(t, models.PaymentPending, bill.PaymentStatus)
	assert.Equal(t, "pending", bill.PaymentMethod)
	assert.Equal(t, "2024-03-10", bill.BillDate)
	assert.True(t, strings.HasPrefix(bill.BillNumber, "BILL-"), bill.BillNumber)
}

func TestBilling_CreateValidatesReferences(t *testing.T) {
	svc, _ := newBillingFixture()
	ctx := context.Background()

	noAppointment := consultationBill()
	noAppointment.AppointmentID = ""
	assert.ErrorIs(t, svc.Create(ctx, noAppointment), utils.ErrValidation)

	unknownAppointment := consultationBill()
	unknownAppointment.AppointmentID = "missing"
	assert.ErrorIs(t, svc.Create(ctx, unknownAppointment), utils.ErrNotFound)

	admissionBill := consultationBill()
	admissionBill.BillType = models.BillAdmission
	admissionBill.AdmissionID = "missing"
	assert.ErrorIs(t, svc.Create(ctx, admissionBill), utils.ErrNotFound)

	unknownPatient := consultationBill()
	unknownPatient.PatientID = "nobody"
	assert.ErrorIs(t, svc.Create(ctx, unknownPatient), utils.ErrNotFound)

	oversized := consultationBill()
	oversized.Discount = 5000
	assert.ErrorIs(t, svc.Create(ctx, oversized), utils.ErrValidation)
}

func TestBilling_PaymentsMoveStatus(t *testing.T) {
	svc, _ := newBillingFixture()
	ctx := context.Background()
	bill := consultationBill()
	require.NoError(t, svc.Create(ctx, bill))

	partial, err := svc.RecordPayment(ctx, bill.ID, 500, "card")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPartial, partial.PaymentStatus)
	assert.Equal(t, 550.0, partial.BalanceAmount)
	assert.Equal(t, "card", partial.PaymentMethod)

	paid, err := svc.RecordPayment(ctx, bill.ID, 550, "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, paid.PaymentStatus)
	assert.Equal(t, 0.0, paid.BalanceAmount)
	assert.Equal(t, paid.TotalAmount, paid.PaidAmount+paid.BalanceAmount)
}

func TestBilling_PaymentValidation(t *testing.T) {
	svc, _ := newBillingFixture()
	ctx := context.Background()
	bill := consultationBill()
	require.NoError(t, svc.Create(ctx, bill))

	_, err := svc.RecordPayment(ctx, bill.ID, 0, "cash")
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.RecordPayment(ctx, bill.ID, 10, "bitcoin")
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.RecordPayment(ctx, "missing", 10, "cash")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestBilling_DeletedBillRejectsPayments(t *testing.T) {
	svc, _ := newBillingFixture()
	ctx := context.Background()
	bill := consultationBill()
	require.NoError(t, svc.Create(ctx, bill))

	require.NoError(t, svc.Delete(ctx, bill.ID))
	assert.ErrorIs(t, svc.Delete(ctx, bill.ID), utils.ErrNotFound)

	stored, err := svc.GetByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	_, err = svc.RecordPayment(ctx, bill.ID, 100, "cash")
	assert.ErrorIs(t, err, utils.ErrValidation)

	pending, err := svc.GetPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestBilling_ConcurrentPaymentsAreAllCounted(t *testing.T) {
	svc, _ := newBillingFixture()
	ctx := context.Background()
	bill := consultationBill()
	require.NoError(t, svc.Create(ctx, bill))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.RecordPayment(ctx, bill.ID, 105, "cash")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := svc.GetByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1050.0, stored.PaidAmount, 0.001)
	assert.InDelta(t, 0.0, stored.BalanceAmount, 0.001)
	assert.Equal(t, models.PaymentCompleted, stored.PaymentStatus)
}

func TestBilling_ExportWritesOneRowPerBill(t *testing.T) {
	svc, _ := newBillingFixture()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Create(ctx, consultationBill()))
	}

	data, err := svc.Export(ctx)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Billing")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Bill Number", rows[0][0])
}
