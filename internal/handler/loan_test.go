package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altamirahr/hris-service/internal/config"
	"github.com/altamirahr/hris-service/internal/models"
	"github.com/altamirahr/hris-service/internal/repository"
	"github.com/altamirahr/hris-service/internal/service"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := service.NewService(repository.NewRepository(db), log,
		&config.Config{JWTSecret: "test"}, nil, nil)
	return NewHandler(svc, log), mock
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/loans/{id}", h.GetLoan).Methods("GET")
	r.HandleFunc("/loans/{id}/payments", h.ApplyPayment).Methods("POST")
	return r
}

func TestApplyPaymentEndpoint_Success(t *testing.T) {
	h, mock := newTestHandler(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, employee_id, loan_type").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "loan_type", "amount",
			"term_months", "monthly_deduction", "start_date", "purpose", "status",
			"current_approval_level", "created_at", "updated_at"}).
			AddRow(42, 7, models.LoanTypeSalary, "15000", 3, "5000", now, "",
				models.ApprovalStatusApproved, 4, now, now))
	mock.ExpectQuery("SELECT id, loan_id, due_date").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "loan_id", "due_date",
			"scheduled_amount", "status", "paid_amount", "payment_date", "notes",
			"created_at", "updated_at"}).
			AddRow(1, 42, now, "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now))
	mock.ExpectQuery("INSERT INTO hris.payment_ledger").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(9, now))
	mock.ExpectExec("UPDATE hris.installments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"payment_amount": 5000, "notes": "march payroll"}`
	req := httptest.NewRequest("POST", "/loans/42/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Applied"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPaymentEndpoint_InvalidAmountIs400(t *testing.T) {
	h, mock := newTestHandler(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, employee_id, loan_type").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "loan_type", "amount",
			"term_months", "monthly_deduction", "start_date", "purpose", "status",
			"current_approval_level", "created_at", "updated_at"}).
			AddRow(42, 7, models.LoanTypeSalary, "15000", 3, "5000", now, "",
				models.ApprovalStatusApproved, 4, now, now))
	mock.ExpectQuery("SELECT id, loan_id, due_date").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "loan_id", "due_date",
			"scheduled_amount", "status", "paid_amount", "payment_date", "notes",
			"created_at", "updated_at"}).
			AddRow(1, 42, now, "5000", models.InstallmentStatusUnpaid, "0", nil, nil, now, now))

	body := `{"payment_amount": -50}`
	req := httptest.NewRequest("POST", "/loans/42/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLoanEndpoint_NotFoundIs404(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT id, employee_id, loan_type").
		WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/loans/9999", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
