package repository

import (
	"database/sql"
	"fmt"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateBenefitRequest creates a new medical benefit application
func (r *Repository) CreateBenefitRequest(b *models.BenefitRequest) error {
	query := `
		INSERT INTO hris.benefit_requests (employee_id, benefit_type, amount, provider,
			diagnosis, status, current_approval_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, b.EmployeeID, b.BenefitType, b.Amount, b.Provider,
		b.Diagnosis, b.Status, b.CurrentApprovalLevel).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create benefit request: %w", err)
	}
	return nil
}

// FindBenefitRequestByID retrieves a benefit request by primary key
func (r *Repository) FindBenefitRequestByID(id int64) (*models.BenefitRequest, error) {
	b := &models.BenefitRequest{}
	query := `
		SELECT id, employee_id, benefit_type, amount, provider, diagnosis, status,
			current_approval_level, created_at, updated_at
		FROM hris.benefit_requests
		WHERE id = $1`
	var diagnosis sql.NullString
	err := r.db.QueryRow(query, id).
		Scan(&b.ID, &b.EmployeeID, &b.BenefitType, &b.Amount, &b.Provider, &diagnosis,
			&b.Status, &b.CurrentApprovalLevel, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find benefit request: %w", err)
	}
	b.Diagnosis = diagnosis.String
	return b, nil
}

// ListBenefitRequests retrieves all benefit requests, newest first
func (r *Repository) ListBenefitRequests() ([]*models.BenefitRequest, error) {
	query := `
		SELECT id, employee_id, benefit_type, amount, provider, diagnosis, status,
			current_approval_level, created_at, updated_at
		FROM hris.benefit_requests
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefit requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.BenefitRequest
	for rows.Next() {
		b := &models.BenefitRequest{}
		var diagnosis sql.NullString
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.BenefitType, &b.Amount, &b.Provider,
			&diagnosis, &b.Status, &b.CurrentApprovalLevel, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan benefit request: %w", err)
		}
		b.Diagnosis = diagnosis.String
		requests = append(requests, b)
	}
	return requests, rows.Err()
}

// UpdateBenefitRequest updates a benefit request's editable fields
func (r *Repository) UpdateBenefitRequest(b *models.BenefitRequest) error {
	query := `
		UPDATE hris.benefit_requests
		SET amount = $1, provider = $2, diagnosis = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at`
	err := r.db.QueryRow(query, b.Amount, b.Provider, b.Diagnosis, b.ID).Scan(&b.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update benefit request: %w", err)
	}
	return nil
}

// UpdateBenefitApproval moves a benefit request through its approval workflow
func (r *Repository) UpdateBenefitApproval(id int64, status string, level int) error {
	res, err := r.db.Exec(`
		UPDATE hris.benefit_requests
		SET status = $1, current_approval_level = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, status, level, id)
	if err != nil {
		return fmt.Errorf("failed to update benefit approval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBenefitRequest removes a benefit request
func (r *Repository) DeleteBenefitRequest(id int64) error {
	res, err := r.db.Exec(`DELETE FROM hris.benefit_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete benefit request: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
