package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan types offered to employees
const (
	LoanTypeSalary  = "salary"
	LoanTypeHousing = "housing"
	LoanTypeCar     = "car"
)

// LoanTypes lists every supported loan type in display order.
var LoanTypes = []string{LoanTypeSalary, LoanTypeHousing, LoanTypeCar}

// Loan represents an employee loan application
type Loan struct {
	ID                   int64           `json:"id"`
	EmployeeID           int64           `json:"employee_id"`
	LoanType             string          `json:"loan_type"`
	Amount               decimal.Decimal `json:"amount"`
	TermMonths           int             `json:"term_months"`
	MonthlyDeduction     decimal.Decimal `json:"monthly_deduction"`
	StartDate            time.Time       `json:"start_date"`
	Purpose              string          `json:"purpose"`
	Status               string          `json:"status"`
	CurrentApprovalLevel int             `json:"current_approval_level"`
	StageLabel           string          `json:"stage_label,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// LoanSourceResult tags the outcome of fetching one loan type when the
// three types are listed together. A failed source carries its error
// message instead of blanking the whole listing.
type LoanSourceResult struct {
	LoanType string  `json:"loan_type"`
	OK       bool    `json:"ok"`
	Error    string  `json:"error,omitempty"`
	Loans    []*Loan `json:"-"`
}

// LoanListing is the merged view over all loan types.
type LoanListing struct {
	Loans   []*Loan             `json:"loans"`
	Sources []*LoanSourceResult `json:"sources"`
}
