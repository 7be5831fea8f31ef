package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medical benefit request types
const (
	BenefitTypeReimbursement = "reimbursement"
	BenefitTypeLOA           = "loa"
)

// BenefitRequest represents a medical benefit application
// (reimbursement or letter of authorization).
type BenefitRequest struct {
	ID                   int64           `json:"id"`
	EmployeeID           int64           `json:"employee_id"`
	BenefitType          string          `json:"benefit_type"`
	Amount               decimal.Decimal `json:"amount"`
	Provider             string          `json:"provider"`
	Diagnosis            string          `json:"diagnosis,omitempty"`
	Status               string          `json:"status"`
	CurrentApprovalLevel int             `json:"current_approval_level"`
	StageLabel           string          `json:"stage_label,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}
