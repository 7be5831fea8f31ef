package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/altamirahr/hris-service/internal/models"
)

// Position describes a role in the static position table.
type Position struct {
	Prefix     string
	BaseSalary decimal.Decimal
	RoleClass  string
}

// positionTable is the static lookup backing salary, role class and
// employee-ID prefix derivation.
var positionTable = map[string]Position{
	"President":        {Prefix: "PRS", BaseSalary: decimal.NewFromInt(250000), RoleClass: models.RoleClassA},
	"Vice President":   {Prefix: "VPR", BaseSalary: decimal.NewFromInt(180000), RoleClass: models.RoleClassA},
	"Division Manager": {Prefix: "DVM", BaseSalary: decimal.NewFromInt(120000), RoleClass: models.RoleClassB},
	"Manager":          {Prefix: "MGR", BaseSalary: decimal.NewFromInt(90000), RoleClass: models.RoleClassB},
	"Supervisor":       {Prefix: "SUP", BaseSalary: decimal.NewFromInt(60000), RoleClass: models.RoleClassB},
	"Assistant":        {Prefix: "AST", BaseSalary: decimal.NewFromInt(35000), RoleClass: models.RoleClassC},
	"Staff":            {Prefix: "STF", BaseSalary: decimal.NewFromInt(28000), RoleClass: models.RoleClassC},
}

// LookupPosition returns the position entry for a position name. Unknown
// positions yield zero/empty defaults, not an error.
func LookupPosition(name string) (Position, bool) {
	p, ok := positionTable[name]
	return p, ok
}

// BenefitsForRoleClass derives the benefits package and annual allowance
// from a role class.
func BenefitsForRoleClass(roleClass string) (string, decimal.Decimal) {
	switch roleClass {
	case models.RoleClassA, models.RoleClassB:
		return models.BenefitsPackageB, decimal.NewFromInt(200000)
	case models.RoleClassC:
		return models.BenefitsPackageA, decimal.NewFromInt(100000)
	}
	return "", decimal.Zero
}

// NextEmployeeID derives the next sequential employee ID for a prefix by
// scanning the existing IDs sharing that prefix and taking max+1, zero
// padded to three digits. With no existing IDs the sequence starts at 001.
func NextEmployeeID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// CreateEmployee derives salary, role class, benefits and the next employee
// ID from the position, then persists the record.
func (s *Service) CreateEmployee(firstName, lastName, emailAddr, position, department string,
	dateHired time.Time) (*models.Employee, error) {

	pos, found := LookupPosition(position)
	if !found {
		s.log.Warnf("Unknown position %q, using empty derivations", position)
	}

	existing, err := s.repo.ListEmployeeIDsByPrefix(pos.Prefix)
	if err != nil {
		return nil, err
	}

	pkg, limit := BenefitsForRoleClass(pos.RoleClass)
	emp := &models.Employee{
		EmployeeID:      NextEmployeeID(pos.Prefix, existing),
		FirstName:       firstName,
		LastName:        lastName,
		Email:           emailAddr,
		Position:        position,
		Department:      department,
		BaseSalary:      pos.BaseSalary,
		RoleClass:       pos.RoleClass,
		BenefitsPackage: pkg,
		BenefitsLimit:   limit,
		DateHired:       dateHired,
		Active:          true,
	}

	if err := s.repo.CreateEmployee(emp); err != nil {
		return nil, err
	}
	s.log.Infof("Employee created: %s (%s)", emp.EmployeeID, emp.Position)
	return emp, nil
}

// UpdateEmployee re-runs the position derivations and persists the changes.
// The employee ID is never regenerated on update.
func (s *Service) UpdateEmployee(id int64, firstName, lastName, emailAddr, position,
	department string, active bool) (*models.Employee, error) {

	emp, err := s.repo.FindEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	pos, found := LookupPosition(position)
	if !found {
		s.log.Warnf("Unknown position %q, using empty derivations", position)
	}
	pkg, limit := BenefitsForRoleClass(pos.RoleClass)

	emp.FirstName = firstName
	emp.LastName = lastName
	emp.Email = emailAddr
	emp.Position = position
	emp.Department = department
	emp.BaseSalary = pos.BaseSalary
	emp.RoleClass = pos.RoleClass
	emp.BenefitsPackage = pkg
	emp.BenefitsLimit = limit
	emp.Active = active

	if err := s.repo.UpdateEmployee(emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// GetEmployee retrieves one employee record
func (s *Service) GetEmployee(id int64) (*models.Employee, error) {
	return s.repo.FindEmployeeByID(id)
}

// ListEmployees retrieves all employee records
func (s *Service) ListEmployees() ([]*models.Employee, error) {
	return s.repo.ListEmployees()
}

// DeleteEmployee removes an employee record
func (s *Service) DeleteEmployee(id int64) error {
	return s.repo.DeleteEmployee(id)
}
