package repository

import (
	"database/sql"
	"fmt"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateBooking creates a new staff-house booking request
func (r *Repository) CreateBooking(b *models.Booking) error {
	query := `
		INSERT INTO hris.bookings (employee_id, house, check_in, check_out, guests,
			purpose, status, current_approval_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, b.EmployeeID, b.House, b.CheckIn, b.CheckOut, b.Guests,
		b.Purpose, b.Status, b.CurrentApprovalLevel).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindBookingByID retrieves a booking by primary key
func (r *Repository) FindBookingByID(id int64) (*models.Booking, error) {
	b := &models.Booking{}
	query := `
		SELECT id, employee_id, house, check_in, check_out, guests, purpose, status,
			current_approval_level, created_at, updated_at
		FROM hris.bookings
		WHERE id = $1`
	var purpose sql.NullString
	err := r.db.QueryRow(query, id).
		Scan(&b.ID, &b.EmployeeID, &b.House, &b.CheckIn, &b.CheckOut, &b.Guests,
			&purpose, &b.Status, &b.CurrentApprovalLevel, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	b.Purpose = purpose.String
	return b, nil
}

// ListBookings retrieves all bookings, newest first
func (r *Repository) ListBookings() ([]*models.Booking, error) {
	query := `
		SELECT id, employee_id, house, check_in, check_out, guests, purpose, status,
			current_approval_level, created_at, updated_at
		FROM hris.bookings
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		var purpose sql.NullString
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.House, &b.CheckIn, &b.CheckOut,
			&b.Guests, &purpose, &b.Status, &b.CurrentApprovalLevel, &b.CreatedAt,
			&b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.Purpose = purpose.String
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateBooking updates a booking's editable fields
func (r *Repository) UpdateBooking(b *models.Booking) error {
	query := `
		UPDATE hris.bookings
		SET house = $1, check_in = $2, check_out = $3, guests = $4, purpose = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at`
	err := r.db.QueryRow(query, b.House, b.CheckIn, b.CheckOut, b.Guests, b.Purpose, b.ID).
		Scan(&b.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	return nil
}

// UpdateBookingApproval moves a booking through its approval workflow
func (r *Repository) UpdateBookingApproval(id int64, status string, level int) error {
	res, err := r.db.Exec(`
		UPDATE hris.bookings
		SET status = $1, current_approval_level = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3`, status, level, id)
	if err != nil {
		return fmt.Errorf("failed to update booking approval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBooking removes a booking
func (r *Repository) DeleteBooking(id int64) error {
	res, err := r.db.Exec(`DELETE FROM hris.bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
