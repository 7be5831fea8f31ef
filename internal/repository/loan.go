package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateLoan creates a new loan application
func (r *Repository) CreateLoan(l *models.Loan) error {
	query := `
		INSERT INTO hris.loans (employee_id, loan_type, amount, term_months,
			monthly_deduction, start_date, purpose, status, current_approval_level,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, l.EmployeeID, l.LoanType, l.Amount, l.TermMonths,
		l.MonthlyDeduction, l.StartDate, l.Purpose, l.Status, l.CurrentApprovalLevel).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

// FindLoanByID retrieves a loan by primary key
func (r *Repository) FindLoanByID(id int64) (*models.Loan, error) {
	l := &models.Loan{}
	query := `
		SELECT id, employee_id, loan_type, amount, term_months, monthly_deduction,
			start_date, purpose, status, current_approval_level, created_at, updated_at
		FROM hris.loans
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&l.ID, &l.EmployeeID, &l.LoanType, &l.Amount, &l.TermMonths, &l.MonthlyDeduction,
			&l.StartDate, &l.Purpose, &l.Status, &l.CurrentApprovalLevel, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}
	return l, nil
}

// ListLoansByType retrieves all loans of one type
func (r *Repository) ListLoansByType(loanType string) ([]*models.Loan, error) {
	query := `
		SELECT id, employee_id, loan_type, amount, term_months, monthly_deduction,
			start_date, purpose, status, current_approval_level, created_at, updated_at
		FROM hris.loans
		WHERE loan_type = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, loanType)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s loans: %w", loanType, err)
	}
	defer rows.Close()

	var loans []*models.Loan
	for rows.Next() {
		l := &models.Loan{}
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.LoanType, &l.Amount, &l.TermMonths,
			&l.MonthlyDeduction, &l.StartDate, &l.Purpose, &l.Status, &l.CurrentApprovalLevel,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// UpdateLoan updates a loan's editable fields
func (r *Repository) UpdateLoan(l *models.Loan) error {
	query := `
		UPDATE hris.loans
		SET amount = $1, term_months = $2, monthly_deduction = $3, start_date = $4,
			purpose = $5, updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at`
	err := r.db.QueryRow(query, l.Amount, l.TermMonths, l.MonthlyDeduction, l.StartDate,
		l.Purpose, l.ID).
		Scan(&l.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	return nil
}

// UpdateLoanApproval moves a loan through its approval workflow
func (r *Repository) UpdateLoanApproval(id int64, status string, level int) error {
	res, err := r.db.Exec(`
		UPDATE hris.loans
		SET status = $1, current_approval_level = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, status, level, id)
	if err != nil {
		return fmt.Errorf("failed to update loan approval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLoan removes a loan together with its installments and ledger
// entries. The dependent rows must go first or their foreign keys block
// the loan delete.
func (r *Repository) DeleteLoan(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM hris.installments WHERE loan_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete installments: %w", err)
	}
	if _, err := r.db.Exec(`DELETE FROM hris.payment_ledger WHERE loan_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete ledger entries: %w", err)
	}
	res, err := r.db.Exec(`DELETE FROM hris.loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateInstallment creates one scheduled deduction row
func (r *Repository) CreateInstallment(ins *models.Installment) error {
	query := `
		INSERT INTO hris.installments (loan_id, due_date, scheduled_amount, status,
			paid_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, ins.LoanID, ins.DueDate, ins.ScheduledAmount, ins.Status,
		ins.PaidAmount).
		Scan(&ins.ID, &ins.CreatedAt, &ins.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create installment: %w", err)
	}
	return nil
}

// ListInstallmentsByLoan retrieves all deduction rows of a loan in due-date order
func (r *Repository) ListInstallmentsByLoan(loanID int64) ([]*models.Installment, error) {
	return r.listInstallments(`
		SELECT id, loan_id, due_date, scheduled_amount, status, paid_amount,
			payment_date, notes, created_at, updated_at
		FROM hris.installments
		WHERE loan_id = $1
		ORDER BY due_date`, loanID)
}

// ListOutstandingInstallments retrieves the not-yet-paid rows of a loan,
// ascending by due date, ready for the allocator.
func (r *Repository) ListOutstandingInstallments(loanID int64) ([]*models.Installment, error) {
	return r.listInstallments(`
		SELECT id, loan_id, due_date, scheduled_amount, status, paid_amount,
			payment_date, notes, created_at, updated_at
		FROM hris.installments
		WHERE loan_id = $1 AND status <> 'Paid'
		ORDER BY due_date`, loanID)
}

func (r *Repository) listInstallments(query string, loanID int64) ([]*models.Installment, error) {
	rows, err := r.db.Query(query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	defer rows.Close()

	var installments []*models.Installment
	for rows.Next() {
		ins := &models.Installment{}
		var paymentDate sql.NullTime
		var notes sql.NullString
		if err := rows.Scan(&ins.ID, &ins.LoanID, &ins.DueDate, &ins.ScheduledAmount,
			&ins.Status, &ins.PaidAmount, &paymentDate, &notes, &ins.CreatedAt,
			&ins.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		if paymentDate.Valid {
			t := paymentDate.Time
			ins.PaymentDate = &t
		}
		ins.Notes = notes.String
		installments = append(installments, ins)
	}
	return installments, rows.Err()
}

// ApplyRowAllocation persists one allocation against an installment row.
// Paid amount accumulates; notes are overwritten by the latest allocation.
func (r *Repository) ApplyRowAllocation(installmentID int64, applied decimal.Decimal,
	status string, paymentDate time.Time, notes string) error {
	res, err := r.db.Exec(`
		UPDATE hris.installments
		SET paid_amount = paid_amount + $1, status = $2, payment_date = $3,
			notes = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5`, applied, status, paymentDate, notes, installmentID)
	if err != nil {
		return fmt.Errorf("failed to apply allocation to installment %d: %w", installmentID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateLedgerEntry records a payment event independent of its row split
func (r *Repository) CreateLedgerEntry(entry *models.LedgerEntry) error {
	query := `
		INSERT INTO hris.payment_ledger (reference_no, loan_id, loan_type, amount, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, entry.ReferenceNo, entry.LoanID, entry.LoanType,
		entry.Amount, entry.Notes).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

// ListLedgerByLoan retrieves the payment history of a loan, newest first
func (r *Repository) ListLedgerByLoan(loanID int64) ([]*models.LedgerEntry, error) {
	query := `
		SELECT id, reference_no, loan_id, loan_type, amount, notes, created_at
		FROM hris.payment_ledger
		WHERE loan_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.LedgerEntry
	for rows.Next() {
		e := &models.LedgerEntry{}
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.ReferenceNo, &e.LoanID, &e.LoanType, &e.Amount,
			&notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
