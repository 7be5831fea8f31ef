package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/altamirahr/hris-service/internal/models"
)

func validLoanType(loanType string) bool {
	for _, t := range models.LoanTypes {
		if t == loanType {
			return true
		}
	}
	return false
}

// CreateLoan creates a loan application at the first approval level.
func (s *Service) CreateLoan(employeeID int64, loanType string, amount decimal.Decimal,
	termMonths int, startDate time.Time, purpose string) (*models.Loan, error) {

	if !validLoanType(loanType) {
		return nil, ErrInvalidLoanType
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: loan amount must be positive", ErrValidation)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("%w: term must be at least one month", ErrValidation)
	}
	if _, err := s.repo.FindEmployeeByID(employeeID); err != nil {
		return nil, err
	}

	loan := &models.Loan{
		EmployeeID:           employeeID,
		LoanType:             loanType,
		Amount:               amount,
		TermMonths:           termMonths,
		MonthlyDeduction:     monthlyDeduction(amount, termMonths),
		StartDate:            startDate,
		Purpose:              purpose,
		Status:               models.ApprovalStatusPending,
		CurrentApprovalLevel: models.ApprovalLevelMin,
	}
	if err := s.repo.CreateLoan(loan); err != nil {
		return nil, err
	}
	loan.StageLabel = StageLabel(loan.CurrentApprovalLevel, loan.Status)
	s.log.Infof("Loan created: #%d %s %s for employee %d", loan.ID, loan.LoanType,
		loan.Amount.StringFixed(2), loan.EmployeeID)
	return loan, nil
}

// monthlyDeduction splits the principal evenly across the term, rounded to
// centavos. The last installment absorbs the rounding remainder when the
// schedule is generated.
func monthlyDeduction(amount decimal.Decimal, termMonths int) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
}

// GetLoan retrieves one loan with its stage label resolved
func (s *Service) GetLoan(id int64) (*models.Loan, error) {
	loan, err := s.repo.FindLoanByID(id)
	if err != nil {
		return nil, err
	}
	loan.StageLabel = StageLabel(loan.CurrentApprovalLevel, loan.Status)
	return loan, nil
}

// ListLoans fans out over every loan type concurrently and merges the
// results with per-source tagging, so one failing type does not blank the
// whole listing.
func (s *Service) ListLoans() *models.LoanListing {
	results := make(chan *models.LoanSourceResult, len(models.LoanTypes))
	for _, loanType := range models.LoanTypes {
		go func(lt string) {
			loans, err := s.repo.ListLoansByType(lt)
			if err != nil {
				s.log.Errorf("Failed to list %s loans: %v", lt, err)
				results <- &models.LoanSourceResult{LoanType: lt, Error: err.Error()}
				return
			}
			results <- &models.LoanSourceResult{LoanType: lt, OK: true, Loans: loans}
		}(loanType)
	}

	byType := make(map[string]*models.LoanSourceResult, len(models.LoanTypes))
	for range models.LoanTypes {
		r := <-results
		byType[r.LoanType] = r
	}

	listing := &models.LoanListing{Loans: []*models.Loan{}}
	for _, loanType := range models.LoanTypes {
		src := byType[loanType]
		listing.Sources = append(listing.Sources, src)
		for _, loan := range src.Loans {
			loan.StageLabel = StageLabel(loan.CurrentApprovalLevel, loan.Status)
			listing.Loans = append(listing.Loans, loan)
		}
	}
	return listing
}

// ListLoansByType retrieves loans of a single type
func (s *Service) ListLoansByType(loanType string) ([]*models.Loan, error) {
	if !validLoanType(loanType) {
		return nil, ErrInvalidLoanType
	}
	loans, err := s.repo.ListLoansByType(loanType)
	if err != nil {
		return nil, err
	}
	for _, loan := range loans {
		loan.StageLabel = StageLabel(loan.CurrentApprovalLevel, loan.Status)
	}
	return loans, nil
}

// UpdateLoan updates a pending loan's editable fields
func (s *Service) UpdateLoan(id int64, amount decimal.Decimal, termMonths int,
	startDate time.Time, purpose string) (*models.Loan, error) {

	loan, err := s.repo.FindLoanByID(id)
	if err != nil {
		return nil, err
	}
	if loan.Status != models.ApprovalStatusPending {
		return nil, ErrAlreadyFinalized
	}
	if amount.LessThanOrEqual(decimal.Zero) || termMonths <= 0 {
		return nil, fmt.Errorf("%w: invalid amount or term", ErrValidation)
	}

	loan.Amount = amount
	loan.TermMonths = termMonths
	loan.MonthlyDeduction = monthlyDeduction(amount, termMonths)
	loan.StartDate = startDate
	loan.Purpose = purpose
	if err := s.repo.UpdateLoan(loan); err != nil {
		return nil, err
	}
	loan.StageLabel = StageLabel(loan.CurrentApprovalLevel, loan.Status)
	return loan, nil
}

// DeleteLoan removes a loan and its schedule
func (s *Service) DeleteLoan(id int64) error {
	return s.repo.DeleteLoan(id)
}

// DecideLoan applies one approver action. Final approval generates the
// deduction schedule and notifies the employee.
func (s *Service) DecideLoan(id int64, approve bool) (*models.Loan, error) {
	loan, err := s.repo.FindLoanByID(id)
	if err != nil {
		return nil, err
	}

	status, level, err := nextApproval(loan.Status, loan.CurrentApprovalLevel, approve)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateLoanApproval(id, status, level); err != nil {
		return nil, err
	}
	loan.Status = status
	loan.CurrentApprovalLevel = level
	loan.StageLabel = StageLabel(level, status)

	if status == models.ApprovalStatusApproved {
		if err := s.generateSchedule(loan); err != nil {
			return nil, err
		}
	}
	if status != models.ApprovalStatusPending {
		s.notifyOutcome(loan.EmployeeID, loan.LoanType+" loan", status)
	}
	return loan, nil
}

// generateSchedule creates the monthly deduction rows for an approved loan.
// Due dates step one month from the start date; the last row absorbs the
// division remainder so the schedule sums exactly to the principal.
func (s *Service) generateSchedule(loan *models.Loan) error {
	per := monthlyDeduction(loan.Amount, loan.TermMonths)
	for i := 0; i < loan.TermMonths; i++ {
		amount := per
		if i == loan.TermMonths-1 {
			amount = loan.Amount.Sub(per.Mul(decimal.NewFromInt(int64(loan.TermMonths - 1))))
		}
		ins := &models.Installment{
			LoanID:          loan.ID,
			DueDate:         loan.StartDate.AddDate(0, i+1, 0),
			ScheduledAmount: amount,
			Status:          models.InstallmentStatusUnpaid,
			PaidAmount:      decimal.Zero,
		}
		if err := s.repo.CreateInstallment(ins); err != nil {
			return err
		}
	}
	s.log.Infof("Generated %d installments for loan #%d", loan.TermMonths, loan.ID)
	return nil
}

// ListInstallments retrieves a loan's deduction schedule
func (s *Service) ListInstallments(loanID int64) ([]*models.Installment, error) {
	if _, err := s.repo.FindLoanByID(loanID); err != nil {
		return nil, err
	}
	return s.repo.ListInstallmentsByLoan(loanID)
}

// ListPayments retrieves a loan's payment ledger
func (s *Service) ListPayments(loanID int64) ([]*models.LedgerEntry, error) {
	if _, err := s.repo.FindLoanByID(loanID); err != nil {
		return nil, err
	}
	return s.repo.ListLedgerByLoan(loanID)
}

// ApplyPayment runs the full payment flow for a loan: plan the allocation,
// write the ledger entry, then persist each row allocation sequentially in
// due-date order.
//
// The ledger entry is written before any row; its failure aborts the whole
// flow. A row write failure aborts the loop at that row. Earlier row
// writes are kept, not rolled back, and the partial state is reported in
// the result alongside ErrRowAllocationFailed.
func (s *Service) ApplyPayment(loanID int64, amount decimal.Decimal, note string) (*models.PaymentResult, error) {
	// reject bad amounts before touching storage
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	loan, err := s.repo.FindLoanByID(loanID)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.repo.ListOutstandingInstallments(loanID)
	if err != nil {
		return nil, err
	}

	plan, err := Allocate(amount, outstanding, note, time.Now())
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		ReferenceNo: uuid.NewString(),
		LoanID:      loan.ID,
		LoanType:    loan.LoanType,
		Amount:      amount,
		Notes:       note,
	}
	if err := s.repo.CreateLedgerEntry(entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLedgerWriteFailed, err)
	}

	result := &models.PaymentResult{
		ReferenceNo: entry.ReferenceNo,
		Leftover:    plan.Leftover,
	}
	for i, row := range plan.Rows {
		err := s.repo.ApplyRowAllocation(row.InstallmentID, row.AppliedAmount,
			row.ResultingStatus, row.PaymentDate, row.Notes)
		if err != nil {
			s.log.Errorf("Row allocation failed for installment %d: %v", row.InstallmentID, err)
			result.Rows = append(result.Rows, models.RowResult{
				InstallmentID: row.InstallmentID,
				Outcome:       models.RowOutcomeFailed,
				AppliedAmount: row.AppliedAmount,
				Error:         err.Error(),
			})
			for _, rest := range plan.Rows[i+1:] {
				result.Rows = append(result.Rows, models.RowResult{
					InstallmentID: rest.InstallmentID,
					Outcome:       models.RowOutcomeSkipped,
					AppliedAmount: rest.AppliedAmount,
				})
			}
			return result, ErrRowAllocationFailed
		}
		result.Rows = append(result.Rows, models.RowResult{
			InstallmentID: row.InstallmentID,
			Outcome:       models.RowOutcomeApplied,
			AppliedAmount: row.AppliedAmount,
		})
	}

	s.log.Infof("Payment %s of %s applied to loan #%d across %d installments",
		entry.ReferenceNo, amount.StringFixed(2), loanID, len(result.Rows))
	return result, nil
}
