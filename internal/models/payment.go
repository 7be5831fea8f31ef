package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowAllocation is the planned application of part of a payment to one
// installment. It is produced by the allocator before anything is written.
type RowAllocation struct {
	InstallmentID   int64           `json:"installment_id"`
	AppliedAmount   decimal.Decimal `json:"applied_amount"`
	ResultingStatus string          `json:"resulting_status"`
	PaymentDate     time.Time       `json:"payment_date"`
	Notes           string          `json:"notes,omitempty"`
}

// AllocationPlan is the full allocation of one payment across installments.
// Leftover is positive when the payment exceeded the total outstanding; the
// excess is reported, never silently absorbed by a row.
type AllocationPlan struct {
	Rows     []RowAllocation `json:"rows"`
	Leftover decimal.Decimal `json:"leftover"`
}

// Outcomes of persisting a single planned row allocation
const (
	RowOutcomeApplied = "Applied"
	RowOutcomeFailed  = "Failed"
	RowOutcomeSkipped = "Skipped"
)

// RowResult tags the persistence outcome of one planned row write.
type RowResult struct {
	InstallmentID int64           `json:"installment_id"`
	Outcome       string          `json:"outcome"`
	AppliedAmount decimal.Decimal `json:"applied_amount"`
	Error         string          `json:"error,omitempty"`
}

// PaymentResult is returned to the caller after a payment apply flow.
type PaymentResult struct {
	ReferenceNo string          `json:"reference_no"`
	Rows        []RowResult     `json:"rows"`
	Leftover    decimal.Decimal `json:"leftover"`
}

// LedgerEntry records a payment event independently of how it was split
// across installment rows.
type LedgerEntry struct {
	ID          int64           `json:"id"`
	ReferenceNo string          `json:"reference_no"`
	LoanID      int64           `json:"loan_id"`
	LoanType    string          `json:"loan_type"`
	Amount      decimal.Decimal `json:"amount"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
