package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role classes assigned per position
const (
	RoleClassA = "Class A"
	RoleClassB = "Class B"
	RoleClassC = "Class C"
)

// Benefit packages derived from role class
const (
	BenefitsPackageA = "Package A"
	BenefitsPackageB = "Package B"
)

// Employee represents an employee record
type Employee struct {
	ID              int64           `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email"`
	Position        string          `json:"position"`
	Department      string          `json:"department"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	RoleClass       string          `json:"role_class"`
	BenefitsPackage string          `json:"benefits_package"`
	BenefitsLimit   decimal.Decimal `json:"benefits_limit"`
	DateHired       time.Time       `json:"date_hired"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
