package repository

import (
	"database/sql"
	"fmt"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateBackup records a database backup run
func (r *Repository) CreateBackup(b *models.Backup) error {
	query := `
		INSERT INTO hris.backups (filename, size_bytes, checksum, status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, b.Filename, b.SizeBytes, b.Checksum, b.Status, b.CreatedBy).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record backup: %w", err)
	}
	return nil
}

// FindBackupByID retrieves a backup record by primary key
func (r *Repository) FindBackupByID(id int64) (*models.Backup, error) {
	b := &models.Backup{}
	query := `
		SELECT id, filename, size_bytes, checksum, status, created_by, created_at
		FROM hris.backups
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&b.ID, &b.Filename, &b.SizeBytes, &b.Checksum, &b.Status, &b.CreatedBy, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find backup: %w", err)
	}
	return b, nil
}

// ListBackups retrieves all backup records, newest first
func (r *Repository) ListBackups() ([]*models.Backup, error) {
	query := `
		SELECT id, filename, size_bytes, checksum, status, created_by, created_at
		FROM hris.backups
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	defer rows.Close()

	var backups []*models.Backup
	for rows.Next() {
		b := &models.Backup{}
		if err := rows.Scan(&b.ID, &b.Filename, &b.SizeBytes, &b.Checksum, &b.Status,
			&b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan backup: %w", err)
		}
		backups = append(backups, b)
	}
	return backups, rows.Err()
}

// DeleteBackup removes a backup record
func (r *Repository) DeleteBackup(id int64) error {
	res, err := r.db.Exec(`DELETE FROM hris.backups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
