package service

import (
	"strings"

	"github.com/altamirahr/hris-service/internal/models"
)

// RecordActivity stores one dashboard action. Failures are logged and
// swallowed so activity recording never blocks a request.
func (s *Service) RecordActivity(username, method, path string) {
	a := &models.Activity{
		Username: username,
		Method:   method,
		Path:     path,
		Resource: resourceFromPath(path),
	}
	if err := s.repo.CreateActivity(a); err != nil {
		s.log.Errorf("Failed to record activity: %v", err)
	}
}

// resourceFromPath extracts the top-level resource segment of a route path.
func resourceFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// ListActivities retrieves the most recent activity entries. Non-positive
// limits fall back to 100.
func (s *Service) ListActivities(limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.repo.ListActivities(limit)
}
