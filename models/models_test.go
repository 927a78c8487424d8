package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestDerivePaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentPending, DerivePaymentStatus(100, 0))
	assert.Equal(t, PaymentPartial, DerivePaymentStatus(40, 60))
	assert.Equal(t, PaymentCompleted, DerivePaymentStatus(0, 100))
	assert.Equal(t, PaymentCompleted, DerivePaymentStatus(0, 0))
}

func TestBillingRecalculateAndPay(t *testing.T) {
	b := &Billing{
		Items: []BillItem{
			{Name: "Ward bed", Quantity: 3, UnitPrice: 1500},
			{Name: "X-ray", Quantity: 1, UnitPrice: 800},
		},
		Tax:      265,
		Discount: 65,
	}
	b.Recalculate()
	assert.Equal(t, 4500.0, b.Items[0].TotalPrice)
	assert.Equal(t, 5300.0, b.Subtotal)
	assert.Equal(t, 5500.0, b.TotalAmount)
	assert.Equal(t, 5500.0, b.BalanceAmount)
	assert.Equal(t, PaymentPending, b.PaymentStatus)

	b.RecordPayment(2000)
	assert.Equal(t, 3500.0, b.BalanceAmount)
	assert.Equal(t, PaymentPartial, b.PaymentStatus)

	b.RecordPayment(3500)
	assert.Equal(t, 0.0, b.BalanceAmount)
	assert.Equal(t, PaymentCompleted, b.PaymentStatus)
}

func TestChatSessionAccumulate(t *testing.T) {
	s := &ChatSession{UserSymptoms: pq.StringArray{"fever"}}
	s.Accumulate([]string{"cough", "fever"}, []string{"Influenza"})
	s.Accumulate([]string{"headache"}, []string{"Influenza", "Migraine"})

	assert.Equal(t, pq.StringArray{"fever", "cough", "headache"}, s.UserSymptoms)
	assert.Equal(t, pq.StringArray{"Influenza", "Migraine"}, s.SuggestedDiagnosis)
}
