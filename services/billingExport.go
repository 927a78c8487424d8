package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const billingSheet = "Billing"

var billingExportHeader = []interface{}{
	"Bill Number", "Bill Date", "Patient ID", "Bill Type", "Items", "Subtotal", "Tax", "Discount",
	"Total", "Paid", "Balance", "Payment Status", "Payment Method", "Due Date",
}

// Export renders every active bill as an xlsx workbook.
func (s *BillingService) Export(ctx context.Context) ([]byte, error) {
	billings, err := s.billings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", billingSheet); err != nil {
		return nil, fmt.Errorf("failed to name billing sheet: %w", err)
	}
	if err := f.SetSheetRow(billingSheet, "A1", &billingExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write billing header: %w", err)
	}
	for i, b := range billings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			b.BillNumber, b.BillDate, b.PatientID, b.BillType, len(b.Items), b.Subtotal, b.Tax, b.Discount,
			b.TotalAmount, b.PaidAmount, b.BalanceAmount, b.PaymentStatus, b.PaymentMethod, b.DueDate,
		}
		if err := f.SetSheetRow(billingSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write bill %s: %w", b.BillNumber, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render billing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
