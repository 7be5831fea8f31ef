package handler

import (
	"net/http"
	"strconv"

	"github.com/altamirahr/hris-service/internal/middleware"
)

// CreateBackup handles an on-demand database backup run
func (h *Handler) CreateBackup(w http.ResponseWriter, r *http.Request) {
	backup, err := h.svc.RunBackup(middleware.Username(r.Context()))
	if err != nil {
		if backup != nil {
			// pg_dump failed but the run was recorded
			respondJSON(w, http.StatusBadGateway, backup)
			return
		}
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, backup)
}

// ListBackups handles backup listing
func (h *Handler) ListBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.svc.ListBackups()
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, backups)
}

// DeleteBackup handles backup deletion
func (h *Handler) DeleteBackup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}
	if err := h.svc.DeleteBackup(id); err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListActivities handles activity log listing
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	activities, err := h.svc.ListActivities(limit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, activities)
}
