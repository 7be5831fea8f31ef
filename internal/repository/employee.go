package repository

import (
	"database/sql"
	"fmt"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateEmployee creates a new employee record
func (r *Repository) CreateEmployee(e *models.Employee) error {
	query := `
		INSERT INTO hris.employees (employee_id, first_name, last_name, email, position,
			department, base_salary, role_class, benefits_package, benefits_limit,
			date_hired, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Position,
		e.Department, e.BaseSalary, e.RoleClass, e.BenefitsPackage, e.BenefitsLimit,
		e.DateHired, e.Active).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// UpdateEmployee updates an existing employee record
func (r *Repository) UpdateEmployee(e *models.Employee) error {
	query := `
		UPDATE hris.employees
		SET first_name = $1, last_name = $2, email = $3, position = $4, department = $5,
			base_salary = $6, role_class = $7, benefits_package = $8, benefits_limit = $9,
			active = $10, updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING updated_at`
	err := r.db.QueryRow(query, e.FirstName, e.LastName, e.Email, e.Position, e.Department,
		e.BaseSalary, e.RoleClass, e.BenefitsPackage, e.BenefitsLimit, e.Active, e.ID).
		Scan(&e.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// DeleteEmployee removes an employee record. Employees with loans, benefit
// requests, bookings or tickets on file cannot be deleted; those deletes
// return ErrReferenced.
func (r *Repository) DeleteEmployee(id int64) error {
	res, err := r.db.Exec(`DELETE FROM hris.employees WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return ErrReferenced
	}
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// FindEmployeeByID retrieves an employee by primary key
func (r *Repository) FindEmployeeByID(id int64) (*models.Employee, error) {
	e := &models.Employee{}
	query := `
		SELECT id, employee_id, first_name, last_name, email, position, department,
			base_salary, role_class, benefits_package, benefits_limit, date_hired,
			active, created_at, updated_at
		FROM hris.employees
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.Position,
			&e.Department, &e.BaseSalary, &e.RoleClass, &e.BenefitsPackage, &e.BenefitsLimit,
			&e.DateHired, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return e, nil
}

// ListEmployees retrieves all employee records
func (r *Repository) ListEmployees() ([]*models.Employee, error) {
	query := `
		SELECT id, employee_id, first_name, last_name, email, position, department,
			base_salary, role_class, benefits_package, benefits_limit, date_hired,
			active, created_at, updated_at
		FROM hris.employees
		ORDER BY employee_id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e := &models.Employee{}
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email,
			&e.Position, &e.Department, &e.BaseSalary, &e.RoleClass, &e.BenefitsPackage,
			&e.BenefitsLimit, &e.DateHired, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// ListEmployeeIDsByPrefix retrieves all employee IDs sharing a position prefix
func (r *Repository) ListEmployeeIDsByPrefix(prefix string) ([]string, error) {
	query := `
		SELECT employee_id
		FROM hris.employees
		WHERE employee_id LIKE $1 || '%'
		ORDER BY employee_id`
	rows, err := r.db.Query(query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee IDs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
