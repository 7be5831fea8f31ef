package service

import (
	"github.com/altamirahr/hris-service/internal/models"
)

// stageNames maps a pending approval level to the role expected to act next.
var stageNames = map[int]string{
	1: "Awaiting HR Approval",
	2: "Awaiting Supervisor/Division Manager Approval",
	3: "Awaiting Vice President Approval",
	4: "Awaiting President Approval",
}

// StageLabel resolves the human-readable workflow stage for an approval
// request. Terminal statuses ignore the level; unknown pending levels fall
// back to a generic label rather than erroring. Loans, benefit requests and
// bookings all share this single resolver.
func StageLabel(level int, status string) string {
	switch status {
	case models.ApprovalStatusApproved:
		return "Fully Approved"
	case models.ApprovalStatusRejected:
		return "Rejected"
	}
	if label, ok := stageNames[level]; ok {
		return label
	}
	return "Pending Review"
}

// nextApproval computes the state after one approver action. Approving at
// the top level finalizes the request; rejecting is terminal at any level.
func nextApproval(status string, level int, approve bool) (string, int, error) {
	if status != models.ApprovalStatusPending {
		return "", 0, ErrAlreadyFinalized
	}
	if !approve {
		return models.ApprovalStatusRejected, level, nil
	}
	if level >= models.ApprovalLevelMax {
		return models.ApprovalStatusApproved, level, nil
	}
	return models.ApprovalStatusPending, level + 1, nil
}

// notifyOutcome sends a best-effort terminal-status notification to the
// employee. Send failures never fail the approval action.
func (s *Service) notifyOutcome(employeeID int64, requestKind, status string) {
	if s.mailer == nil {
		return
	}
	emp, err := s.repo.FindEmployeeByID(employeeID)
	if err != nil {
		s.log.Warnf("Skipping %s notification, employee %d lookup failed: %v", requestKind, employeeID, err)
		return
	}
	if err := s.mailer.SendApprovalOutcome(emp.Email, emp.FirstName, requestKind, status); err != nil {
		s.log.Warnf("Failed to send %s notification to %s: %v", requestKind, emp.Email, err)
	}
}
