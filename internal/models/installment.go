package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment statuses, monotonic toward Paid
const (
	InstallmentStatusUnpaid        = "Unpaid"
	InstallmentStatusPartiallyPaid = "PartiallyPaid"
	InstallmentStatusPaid          = "Paid"
)

// Installment represents one scheduled loan deduction row
type Installment struct {
	ID              int64           `json:"id"`
	LoanID          int64           `json:"loan_id"`
	DueDate         time.Time       `json:"due_date"`
	ScheduledAmount decimal.Decimal `json:"scheduled_amount"`
	Status          string          `json:"status"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	PaymentDate     *time.Time      `json:"payment_date"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OutstandingGap returns how much is still owed on this row.
func (i *Installment) OutstandingGap() decimal.Decimal {
	return i.ScheduledAmount.Sub(i.PaidAmount)
}
