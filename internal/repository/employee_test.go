package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestListEmployeeIDsByPrefix(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT employee_id").
		WithArgs("MGR").
		WillReturnRows(sqlmock.NewRows([]string{"employee_id"}).
			AddRow("MGR001").
			AddRow("MGR003"))

	ids, err := repo.ListEmployeeIDsByPrefix("MGR")
	require.NoError(t, err)
	assert.Equal(t, []string{"MGR001", "MGR003"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEmployeeByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT id, employee_id, first_name").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindEmployeeByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOutstandingInstallments_NullFields(t *testing.T) {
	repo, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, loan_id, due_date").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "loan_id", "due_date",
			"scheduled_amount", "status", "paid_amount", "payment_date", "notes",
			"created_at", "updated_at"}).
			AddRow(1, 5, now, "5000", "Unpaid", "0", nil, nil, now, now).
			AddRow(2, 5, now, "5000", "PartiallyPaid", "2000", now, "partial via payroll", now, now))

	installments, err := repo.ListOutstandingInstallments(5)
	require.NoError(t, err)
	require.Len(t, installments, 2)

	assert.Nil(t, installments[0].PaymentDate)
	assert.Empty(t, installments[0].Notes)
	assert.NotNil(t, installments[1].PaymentDate)
	assert.Equal(t, "partial via payroll", installments[1].Notes)
}

func TestApplyRowAllocation_NoRowsAffected(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("UPDATE hris.installments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ApplyRowAllocation(404, mustDecimal(t, "100"), "Paid", time.Now(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLoan_RemovesDependentRowsFirst(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("DELETE FROM hris.installments").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec("DELETE FROM hris.payment_ledger").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM hris.loans").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteLoan(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_ReferencedReturnsConflict(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("DELETE FROM hris.employees").
		WithArgs(int64(7)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.DeleteEmployee(7)
	assert.ErrorIs(t, err, ErrReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLedgerEntry_WrapsDriverError(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO hris.payment_ledger").
		WillReturnError(errors.New("disk full"))

	err := repo.CreateLedgerEntry(testLedgerEntry(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create ledger entry")
}
