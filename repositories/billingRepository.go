package repositories

import (
	"MediCore/models"
	"MediCore/utils"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type BillingRepository interface {
	Create(ctx context.Context, billing *models.Billing) error
	GetByID(ctx context.Context, id string) (*models.Billing, error)
	BillNumberExists(ctx context.Context, billNumber string) (bool, error)
	// ApplyPayment locks the bill, lets apply record the payment and saves it.
	ApplyPayment(ctx context.Context, id string, apply func(*models.Billing) error) (*models.Billing, error)
	GetByPatient(ctx context.Context, patientID string) ([]models.Billing, error)
	GetPending(ctx context.Context) ([]models.Billing, error)
	GetAll(ctx context.Context) ([]models.Billing, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*models.BillingStats, error)
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, billing *models.Billing) error {
	if err := r.db.WithContext(ctx).Create(billing).Error; err != nil {
		return fmt.Errorf("failed to create billing: %w", err)
	}
	return nil
}

func (r *billingRepository) GetByID(ctx context.Context, id string) (*models.Billing, error) {
	var billing models.Billing
	found, err := findOne(ctx, r.db, &billing, "id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) BillNumberExists(ctx context.Context, billNumber string) (bool, error) {
	return exists(ctx, r.db, &models.Billing{}, "bill_number = ?", billNumber)
}

func (r *billingRepository) ApplyPayment(ctx context.Context, id string, apply func(*models.Billing) error) (*models.Billing, error) {
	var billing models.Billing
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := lockOne(tx, &billing, "id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to lock billing: %w", err)
		}
		if !found {
			return utils.NotFound("Billing not found")
		}
		if err := apply(&billing); err != nil {
			return err
		}
		return tx.Save(&billing).Error
	})
	if err != nil {
		return nil, err
	}
	return &billing, nil
}

func (r *billingRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Billing, error) {
	var billings []models.Billing
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_active = ?", patientID, true).
		Order("created_at DESC").
		Find(&billings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient billings: %w", err)
	}
	return billings, nil
}

// openPaymentStatuses are the statuses of bills with a balance left to pay.
var openPaymentStatuses = []string{models.PaymentPending, models.PaymentPartial}

func (r *billingRepository) GetPending(ctx context.Context) ([]models.Billing, error) {
	var billings []models.Billing
	err := r.db.WithContext(ctx).
		Where("payment_status IN ? AND is_active = ?", openPaymentStatuses, true).
		Order("due_date ASC, created_at ASC").
		Find(&billings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending billings: %w", err)
	}
	return billings, nil
}

func (r *billingRepository) GetAll(ctx context.Context) ([]models.Billing, error) {
	var billings []models.Billing
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").Find(&billings).Error; err != nil {
		return nil, fmt.Errorf("failed to get billings: %w", err)
	}
	return billings, nil
}

func (r *billingRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deactivate(ctx, r.db, &models.Billing{}, id)
}

func (r *billingRepository) Stats(ctx context.Context) (*models.BillingStats, error) {
	stats := &models.BillingStats{}
	db := r.db.WithContext(ctx)

	var sums struct {
		TotalBills  int64
		TotalAmount float64
		TotalPaid   float64
	}
	err := db.Model(&models.Billing{}).
		Select("COUNT(*) AS total_bills, COALESCE(SUM(total_amount), 0) AS total_amount, COALESCE(SUM(paid_amount), 0) AS total_paid").
		Where("is_active = ?", true).
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate billings: %w", err)
	}
	stats.TotalBills, stats.TotalAmount, stats.TotalPaid = sums.TotalBills, sums.TotalAmount, sums.TotalPaid

	if err := db.Model(&models.Billing{}).
		Where("payment_status IN ? AND is_active = ?", openPaymentStatuses, true).
		Count(&stats.PendingBills).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending billings: %w", err)
	}
	return stats, nil
}
