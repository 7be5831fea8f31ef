package models

import "time"

// Booking represents a staff-house booking request
type Booking struct {
	ID                   int64     `json:"id"`
	EmployeeID           int64     `json:"employee_id"`
	House                string    `json:"house"`
	CheckIn              time.Time `json:"check_in"`
	CheckOut             time.Time `json:"check_out"`
	Guests               int       `json:"guests"`
	Purpose              string    `json:"purpose,omitempty"`
	Status               string    `json:"status"`
	CurrentApprovalLevel int       `json:"current_approval_level"`
	StageLabel           string    `json:"stage_label,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
