package handler

import (
	"net/http"
)

type bookingRequest struct {
	EmployeeID int64  `json:"employee_id"`
	House      string `json:"house"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
	Purpose    string `json:"purpose"`
}

// CreateBooking handles staff-house booking creation
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "check_in must be YYYY-MM-DD"})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "check_out must be YYYY-MM-DD"})
		return
	}

	booking, err := h.svc.CreateBooking(req.EmployeeID, req.House, checkIn, checkOut,
		req.Guests, req.Purpose)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

// GetBooking handles single booking retrieval
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	booking, err := h.svc.GetBooking(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// ListBookings handles booking listing
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.ListBookings()
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

// UpdateBooking handles pending booking updates
func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "check_in must be YYYY-MM-DD"})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "check_out must be YYYY-MM-DD"})
		return
	}

	booking, err := h.svc.UpdateBooking(id, req.House, checkIn, checkOut, req.Guests, req.Purpose)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

// DeleteBooking handles booking deletion
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteBooking(id); err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// DecideBooking handles one approver action on a booking
func (h *Handler) DecideBooking(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.svc.DecideBooking(id, req.Approve)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}
