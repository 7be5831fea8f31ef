package service

import (
	"fmt"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateTicket files a new support ticket
func (s *Service) CreateTicket(employeeID int64, subject, category, priority,
	description string) (*models.Ticket, error) {

	if subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrValidation)
	}
	if _, err := s.repo.FindEmployeeByID(employeeID); err != nil {
		return nil, err
	}

	t := &models.Ticket{
		EmployeeID:  employeeID,
		Subject:     subject,
		Category:    category,
		Priority:    priority,
		Description: description,
		Status:      models.TicketStatusOpen,
	}
	if err := s.repo.CreateTicket(t); err != nil {
		return nil, err
	}
	s.log.Infof("Ticket created: #%d %q", t.ID, t.Subject)
	return t, nil
}

// GetTicket retrieves one ticket
func (s *Service) GetTicket(id int64) (*models.Ticket, error) {
	return s.repo.FindTicketByID(id)
}

// ListTickets retrieves all tickets
func (s *Service) ListTickets() ([]*models.Ticket, error) {
	return s.repo.ListTickets()
}

// UpdateTicket updates a ticket's fields including status and assignee
func (s *Service) UpdateTicket(id int64, subject, category, priority, description,
	status, assignedTo string) (*models.Ticket, error) {

	t, err := s.repo.FindTicketByID(id)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.TicketStatusOpen, models.TicketStatusInProgress,
		models.TicketStatusResolved, models.TicketStatusClosed:
	default:
		return nil, fmt.Errorf("%w: unknown ticket status %q", ErrValidation, status)
	}

	t.Subject = subject
	t.Category = category
	t.Priority = priority
	t.Description = description
	t.Status = status
	t.AssignedTo = assignedTo
	if err := s.repo.UpdateTicket(t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTicket removes a ticket
func (s *Service) DeleteTicket(id int64) error {
	return s.repo.DeleteTicket(id)
}
