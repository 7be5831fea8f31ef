package repository

import (
	"fmt"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateActivity records one dashboard action
func (r *Repository) CreateActivity(a *models.Activity) error {
	query := `
		INSERT INTO hris.activity_logs (username, method, path, resource, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, a.Username, a.Method, a.Path, a.Resource).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListActivities retrieves the most recent activity entries
func (r *Repository) ListActivities(limit int) ([]*models.Activity, error) {
	query := `
		SELECT id, username, method, path, resource, created_at
		FROM hris.activity_logs
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.Username, &a.Method, &a.Path, &a.Resource,
			&a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
