package models

import "time"

// Support ticket statuses
const (
	TicketStatusOpen       = "Open"
	TicketStatusInProgress = "In Progress"
	TicketStatusResolved   = "Resolved"
	TicketStatusClosed     = "Closed"
)

// Ticket represents a support ticket filed from the dashboard
type Ticket struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	Subject     string    `json:"subject"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
