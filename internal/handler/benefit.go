package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
)

type benefitRequest struct {
	EmployeeID  int64           `json:"employee_id"`
	BenefitType string          `json:"benefit_type"`
	Amount      decimal.Decimal `json:"amount"`
	Provider    string          `json:"provider"`
	Diagnosis   string          `json:"diagnosis"`
}

// CreateBenefitRequest handles medical benefit application creation
func (h *Handler) CreateBenefitRequest(w http.ResponseWriter, r *http.Request) {
	var req benefitRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	benefit, err := h.svc.CreateBenefitRequest(req.EmployeeID, req.BenefitType,
		req.Amount, req.Provider, req.Diagnosis)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, benefit)
}

// GetBenefitRequest handles single benefit request retrieval
func (h *Handler) GetBenefitRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	benefit, err := h.svc.GetBenefitRequest(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, benefit)
}

// ListBenefitRequests handles benefit request listing
func (h *Handler) ListBenefitRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.svc.ListBenefitRequests()
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// UpdateBenefitRequest handles pending benefit request updates
func (h *Handler) UpdateBenefitRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req benefitRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	benefit, err := h.svc.UpdateBenefitRequest(id, req.Amount, req.Provider, req.Diagnosis)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, benefit)
}

// DeleteBenefitRequest handles benefit request deletion
func (h *Handler) DeleteBenefitRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteBenefitRequest(id); err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// DecideBenefitRequest handles one approver action on a benefit request
func (h *Handler) DecideBenefitRequest(w http.ResponseWriter, r *http.Request) {
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

	benefit, err := h.svc.DecideBenefitRequest(id, req.Approve)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, benefit)
}
