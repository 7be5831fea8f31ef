package service

import (
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altamirahr/hris-service/internal/config"
	"github.com/altamirahr/hris-service/internal/models"
	"github.com/altamirahr/hris-service/internal/repository"
)

func newTestService(t *testing.T) (*Service, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewService(repository.NewRepository(db), log, &config.Config{JWTSecret: "test"}, nil, nil)
	return svc, mock, db
}

func loanColumns() []string {
	return []string{"id", "employee_id", "loan_type", "amount", "term_months",
		"monthly_deduction", "start_date", "purpose", "status",
		"current_approval_level", "created_at", "updated_at"}
}

func installmentColumns() []string {
	return []string{"id", "loan_id", "due_date", "scheduled_amount", "status",
		"paid_amount", "payment_date", "notes", "created_at", "updated_at"}
}

func expectFindLoan(mock sqlmock.Sqlmock, id int64, status string, level int) {
	now := time.Now()
	mock.ExpectQuery("SELECT id, employee_id, loan_type").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(loanColumns()).
			AddRow(id, 7, models.LoanTypeSalary, "15000", 3, "5000",
				now, "appliance purchase", status, level, now, now))
}

func TestApplyPayment_Success(t *testing.T) {
	svc, mock, _ := newTestService(t)
	now := time.Now()

	expectFindLoan(mock, 42, models.ApprovalStatusApproved, 4)
	mock.ExpectQuery("SELECT id, loan_id, due_date").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(installmentColumns()).
			AddRow(1, 42, now, "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now).
			AddRow(2, 42, now.AddDate(0, 1, 0), "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now).
			AddRow(3, 42, now.AddDate(0, 2, 0), "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now))
	mock.ExpectQuery("INSERT INTO hris.payment_ledger").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(9, now))
	mock.ExpectExec("UPDATE hris.installments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE hris.installments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := svc.ApplyPayment(42, decimal.NewFromInt(7000), "march payroll")
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	assert.Equal(t, models.RowOutcomeApplied, result.Rows[0].Outcome)
	assert.True(t, result.Rows[0].AppliedAmount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, models.RowOutcomeApplied, result.Rows[1].Outcome)
	assert.True(t, result.Rows[1].AppliedAmount.Equal(decimal.NewFromInt(2000)))
	assert.True(t, result.Leftover.IsZero())
	assert.NotEmpty(t, result.ReferenceNo)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPayment_LedgerWriteFailureAbortsBeforeRowWrites(t *testing.T) {
	svc, mock, _ := newTestService(t)
	now := time.Now()

	expectFindLoan(mock, 42, models.ApprovalStatusApproved, 4)
	mock.ExpectQuery("SELECT id, loan_id, due_date").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(installmentColumns()).
			AddRow(1, 42, now, "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now))
	mock.ExpectQuery("INSERT INTO hris.payment_ledger").
		WillReturnError(errors.New("connection reset"))

	result, err := svc.ApplyPayment(42, decimal.NewFromInt(1000), "")
	assert.ErrorIs(t, err, ErrLedgerWriteFailed)
	assert.Nil(t, result)

	// no installment row was touched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPayment_RowFailureKeepsEarlierWrites(t *testing.T) {
	svc, mock, _ := newTestService(t)
	now := time.Now()

	expectFindLoan(mock, 42, models.ApprovalStatusApproved, 4)
	mock.ExpectQuery("SELECT id, loan_id, due_date").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(installmentColumns()).
			AddRow(1, 42, now, "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now).
			AddRow(2, 42, now.AddDate(0, 1, 0), "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now).
			AddRow(3, 42, now.AddDate(0, 2, 0), "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now))
	mock.ExpectQuery("INSERT INTO hris.payment_ledger").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(9, now))
	mock.ExpectExec("UPDATE hris.installments").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE hris.installments").
		WillReturnError(errors.New("deadlock detected"))

	result, err := svc.ApplyPayment(42, decimal.NewFromInt(12000), "")
	assert.ErrorIs(t, err, ErrRowAllocationFailed)
	require.NotNil(t, result)
	require.Len(t, result.Rows, 3)

	assert.Equal(t, models.RowOutcomeApplied, result.Rows[0].Outcome)
	assert.Equal(t, models.RowOutcomeFailed, result.Rows[1].Outcome)
	assert.Contains(t, result.Rows[1].Error, "deadlock")
	// the loop stops at the failed row; later rows are never attempted
	assert.Equal(t, models.RowOutcomeSkipped, result.Rows[2].Outcome)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPayment_RejectsInvalidAmountBeforeAnyIO(t *testing.T) {
	svc, mock, _ := newTestService(t)

	_, err := svc.ApplyPayment(42, decimal.Zero, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.ApplyPayment(42, decimal.NewFromInt(-100), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// no queries or writes may reach the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecideLoan_FinalApprovalGeneratesSchedule(t *testing.T) {
	svc, mock, _ := newTestService(t)
	now := time.Now()

	expectFindLoan(mock, 42, models.ApprovalStatusPending, 4)
	mock.ExpectExec("UPDATE hris.loans").
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i := 0; i < 3; i++ {
		mock.ExpectQuery("INSERT INTO hris.installments").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(i+1), now, now))
	}

	loan, err := svc.DecideLoan(42, true)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, loan.Status)
	assert.Equal(t, "Fully Approved", loan.StageLabel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecideLoan_MidLevelApprovalAdvances(t *testing.T) {
	svc, mock, _ := newTestService(t)

	expectFindLoan(mock, 42, models.ApprovalStatusPending, 2)
	mock.ExpectExec("UPDATE hris.loans").
		WillReturnResult(sqlmock.NewResult(0, 1))

	loan, err := svc.DecideLoan(42, true)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusPending, loan.Status)
	assert.Equal(t, 3, loan.CurrentApprovalLevel)
	assert.Equal(t, "Awaiting Vice President Approval", loan.StageLabel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyDeduction_RoundsToCentavos(t *testing.T) {
	per := monthlyDeduction(decimal.NewFromInt(10000), 3)
	assert.Equal(t, "3333.33", per.StringFixed(2))

	// the last installment absorbs the rounding remainder
	last := decimal.NewFromInt(10000).Sub(per.Mul(decimal.NewFromInt(2)))
	assert.Equal(t, "3333.34", last.StringFixed(2))
}

func TestCreateLoan_RejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateLoan(7, "yacht", decimal.NewFromInt(1000), 12, time.Now(), "")
	assert.ErrorIs(t, err, ErrInvalidLoanType)
}
