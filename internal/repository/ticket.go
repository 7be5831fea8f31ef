package repository

import (
	"database/sql"
	"fmt"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateTicket creates a new support ticket
func (r *Repository) CreateTicket(t *models.Ticket) error {
	query := `
		INSERT INTO hris.tickets (employee_id, subject, category, priority, description,
			status, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, t.EmployeeID, t.Subject, t.Category, t.Priority,
		t.Description, t.Status, t.AssignedTo).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// FindTicketByID retrieves a ticket by primary key
func (r *Repository) FindTicketByID(id int64) (*models.Ticket, error) {
	t := &models.Ticket{}
	query := `
		SELECT id, employee_id, subject, category, priority, description, status,
			assigned_to, created_at, updated_at
		FROM hris.tickets
		WHERE id = $1`
	var description, assignedTo sql.NullString
	err := r.db.QueryRow(query, id).
		Scan(&t.ID, &t.EmployeeID, &t.Subject, &t.Category, &t.Priority, &description,
			&t.Status, &assignedTo, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	t.Description = description.String
	t.AssignedTo = assignedTo.String
	return t, nil
}

// ListTickets retrieves all tickets, newest first
func (r *Repository) ListTickets() ([]*models.Ticket, error) {
	query := `
		SELECT id, employee_id, subject, category, priority, description, status,
			assigned_to, created_at, updated_at
		FROM hris.tickets
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		t := &models.Ticket{}
		var description, assignedTo sql.NullString
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Subject, &t.Category, &t.Priority,
			&description, &t.Status, &assignedTo, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		t.Description = description.String
		t.AssignedTo = assignedTo.String
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// UpdateTicket updates a ticket's editable fields
func (r *Repository) UpdateTicket(t *models.Ticket) error {
	query := `
		UPDATE hris.tickets
		SET subject = $1, category = $2, priority = $3, description = $4, status = $5,
			assigned_to = $6, updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING updated_at`
	err := r.db.QueryRow(query, t.Subject, t.Category, t.Priority, t.Description,
		t.Status, t.AssignedTo, t.ID).
		Scan(&t.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

// DeleteTicket removes a ticket
func (r *Repository) DeleteTicket(id int64) error {
	res, err := r.db.Exec(`DELETE FROM hris.tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
