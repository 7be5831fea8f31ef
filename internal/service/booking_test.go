package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altamirahr/hris-service/internal/models"
)

type fakeHolidaySource struct {
	holiday bool
	err     error
}

func (f *fakeHolidaySource) IsHoliday(year, month, day int) (bool, error) {
	return f.holiday, f.err
}

func employeeColumns() []string {
	return []string{"id", "employee_id", "first_name", "last_name", "email", "position",
		"department", "base_salary", "role_class", "benefits_package", "benefits_limit",
		"date_hired", "active", "created_at", "updated_at"}
}

func expectFindEmployee(mock sqlmock.Sqlmock, id int64) {
	now := time.Now()
	mock.ExpectQuery("SELECT id, employee_id, first_name").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(employeeColumns()).
			AddRow(id, "MGR001", "Maria", "Santos", "maria.santos@altamira.ph", "Manager",
				"Operations", "90000", models.RoleClassB, models.BenefitsPackageB,
				"200000", now, true, now, now))
}

func TestCreateBooking_RejectsHolidayCheckIn(t *testing.T) {
	svc, mock, _ := newTestService(t)
	svc.holidays = &fakeHolidaySource{holiday: true}

	expectFindEmployee(mock, 7)

	checkIn := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateBooking(7, "Baguio House", checkIn, checkIn.AddDate(0, 0, 2), 2, "family trip")
	assert.ErrorIs(t, err, ErrHolidayCheckIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_FeedFailureIsNonFatal(t *testing.T) {
	svc, mock, _ := newTestService(t)
	svc.holidays = &fakeHolidaySource{err: errors.New("feed unreachable")}

	expectFindEmployee(mock, 7)
	mock.ExpectQuery("INSERT INTO hris.bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(1, time.Now(), time.Now()))

	checkIn := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	booking, err := svc.CreateBooking(7, "Baguio House", checkIn, checkIn.AddDate(0, 0, 1), 1, "")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusPending, booking.Status)
	assert.Equal(t, "Awaiting HR Approval", booking.StageLabel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	checkIn := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateBooking(7, "", checkIn, checkIn.AddDate(0, 0, 1), 1, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateBooking(7, "Baguio House", checkIn, checkIn, 1, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateBooking(7, "Baguio House", checkIn, checkIn.AddDate(0, 0, 1), 0, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBenefitRequest_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateBenefitRequest(7, "dental", decimal.NewFromInt(500), "MedCentral", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateBenefitRequest(7, models.BenefitTypeReimbursement, decimal.Zero, "MedCentral", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListLoans_PerSourceIsolation(t *testing.T) {
	svc, mock, _ := newTestService(t)
	mock.MatchExpectationsInOrder(false)
	now := time.Now()

	mock.ExpectQuery("SELECT id, employee_id, loan_type").
		WithArgs(models.LoanTypeSalary).
		WillReturnRows(sqlmock.NewRows(loanColumns()).
			AddRow(1, 7, models.LoanTypeSalary, "15000", 3, "5000", now, "",
				models.ApprovalStatusPending, 1, now, now))
	mock.ExpectQuery("SELECT id, employee_id, loan_type").
		WithArgs(models.LoanTypeHousing).
		WillReturnError(errors.New("relation unavailable"))
	mock.ExpectQuery("SELECT id, employee_id, loan_type").
		WithArgs(models.LoanTypeCar).
		WillReturnRows(sqlmock.NewRows(loanColumns()))

	listing := svc.ListLoans()
	require.Len(t, listing.Sources, 3)

	assert.True(t, listing.Sources[0].OK)
	assert.False(t, listing.Sources[1].OK)
	assert.Contains(t, listing.Sources[1].Error, "relation unavailable")
	assert.True(t, listing.Sources[2].OK)

	// the failing source does not blank the successful ones
	require.Len(t, listing.Loans, 1)
	assert.Equal(t, "Awaiting HR Approval", listing.Loans[0].StageLabel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
