package handler

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/altamirahr/hris-service/internal/service"
)

type loanRequest struct {
	EmployeeID int64           `json:"employee_id"`
	LoanType   string          `json:"loan_type"`
	Amount     decimal.Decimal `json:"amount"`
	TermMonths int             `json:"term_months"`
	StartDate  string          `json:"start_date"`
	Purpose    string          `json:"purpose"`
}

type decisionRequest struct {
	Approve bool `json:"approve"`
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"payment_amount"`
	Notes  string          `json:"notes"`
}

// CreateLoan handles loan application creation
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "start_date must be YYYY-MM-DD"})
		return
	}

	loan, err := h.svc.CreateLoan(req.EmployeeID, req.LoanType, req.Amount,
		req.TermMonths, startDate, req.Purpose)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, loan)
}

// ListLoans handles the merged listing across all loan types
func (h *Handler) ListLoans(w http.ResponseWriter, r *http.Request) {
	if loanType := r.URL.Query().Get("type"); loanType != "" {
		loans, err := h.svc.ListLoansByType(loanType)
		if err != nil {
			h.respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, loans)
		return
	}
	respondJSON(w, http.StatusOK, h.svc.ListLoans())
}

// GetLoan handles single loan retrieval
func (h *Handler) GetLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	loan, err := h.svc.GetLoan(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

// UpdateLoan handles pending loan updates
func (h *Handler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req loanRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "start_date must be YYYY-MM-DD"})
		return
	}

	loan, err := h.svc.UpdateLoan(id, req.Amount, req.TermMonths, startDate, req.Purpose)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

// DeleteLoan handles loan deletion
func (h *Handler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteLoan(id); err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// DecideLoan handles one approver action on a loan
func (h *Handler) DecideLoan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req decisionRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	loan, err := h.svc.DecideLoan(id, req.Approve)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loan)
}

// ListInstallments handles a loan's deduction schedule listing
func (h *Handler) ListInstallments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	installments, err := h.svc.ListInstallments(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, installments)
}

// ListPayments handles a loan's payment ledger listing
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	entries, err := h.svc.ListPayments(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// ApplyPayment handles a payment against a loan's outstanding installments.
// A row-level write failure returns the partial result with 502 so the
// caller can see exactly which rows were applied before the failure.
func (h *Handler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.svc.ApplyPayment(id, req.Amount, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrRowAllocationFailed) && result != nil {
			respondJSON(w, http.StatusBadGateway, result)
			return
		}
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
