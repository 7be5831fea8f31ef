package handler

import (
	"net/http"
)

type employeeRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	DateHired  string `json:"date_hired"`
	Active     *bool  `json:"active"`
}

// CreateEmployee handles employee creation with derived fields
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	dateHired, err := parseDate(req.DateHired)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "date_hired must be YYYY-MM-DD"})
		return
	}

	emp, err := h.svc.CreateEmployee(req.FirstName, req.LastName, req.Email,
		req.Position, req.Department, dateHired)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emp)
}

// GetEmployee handles single employee retrieval
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	emp, err := h.svc.GetEmployee(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emp)
}

// ListEmployees handles employee listing
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.ListEmployees()
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

// UpdateEmployee handles employee updates with re-derived fields
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req employeeRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	emp, err := h.svc.UpdateEmployee(id, req.FirstName, req.LastName, req.Email,
		req.Position, req.Department, active)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emp)
}

// DeleteEmployee handles employee deletion
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteEmployee(id); err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
