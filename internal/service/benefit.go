package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateBenefitRequest creates a medical benefit application at the first
// approval level.
func (s *Service) CreateBenefitRequest(employeeID int64, benefitType string,
	amount decimal.Decimal, provider, diagnosis string) (*models.BenefitRequest, error) {

	if benefitType != models.BenefitTypeReimbursement && benefitType != models.BenefitTypeLOA {
		return nil, fmt.Errorf("%w: unknown benefit type %q", ErrValidation, benefitType)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if _, err := s.repo.FindEmployeeByID(employeeID); err != nil {
		return nil, err
	}

	req := &models.BenefitRequest{
		EmployeeID:           employeeID,
		BenefitType:          benefitType,
		Amount:               amount,
		Provider:             provider,
		Diagnosis:            diagnosis,
		Status:               models.ApprovalStatusPending,
		CurrentApprovalLevel: models.ApprovalLevelMin,
	}
	if err := s.repo.CreateBenefitRequest(req); err != nil {
		return nil, err
	}
	req.StageLabel = StageLabel(req.CurrentApprovalLevel, req.Status)
	s.log.Infof("Benefit request created: #%d %s for employee %d", req.ID, req.BenefitType, req.EmployeeID)
	return req, nil
}

// GetBenefitRequest retrieves one benefit request with its stage label
func (s *Service) GetBenefitRequest(id int64) (*models.BenefitRequest, error) {
	req, err := s.repo.FindBenefitRequestByID(id)
	if err != nil {
		return nil, err
	}
	req.StageLabel = StageLabel(req.CurrentApprovalLevel, req.Status)
	return req, nil
}

// ListBenefitRequests retrieves all benefit requests with stage labels
func (s *Service) ListBenefitRequests() ([]*models.BenefitRequest, error) {
	requests, err := s.repo.ListBenefitRequests()
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		req.StageLabel = StageLabel(req.CurrentApprovalLevel, req.Status)
	}
	return requests, nil
}

// UpdateBenefitRequest updates a pending benefit request
func (s *Service) UpdateBenefitRequest(id int64, amount decimal.Decimal,
	provider, diagnosis string) (*models.BenefitRequest, error) {

	req, err := s.repo.FindBenefitRequestByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.ApprovalStatusPending {
		return nil, ErrAlreadyFinalized
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	req.Amount = amount
	req.Provider = provider
	req.Diagnosis = diagnosis
	if err := s.repo.UpdateBenefitRequest(req); err != nil {
		return nil, err
	}
	req.StageLabel = StageLabel(req.CurrentApprovalLevel, req.Status)
	return req, nil
}

// DeleteBenefitRequest removes a benefit request
func (s *Service) DeleteBenefitRequest(id int64) error {
	return s.repo.DeleteBenefitRequest(id)
}

// DecideBenefitRequest applies one approver action to a benefit request
func (s *Service) DecideBenefitRequest(id int64, approve bool) (*models.BenefitRequest, error) {
	req, err := s.repo.FindBenefitRequestByID(id)
	if err != nil {
		return nil, err
	}

	status, level, err := nextApproval(req.Status, req.CurrentApprovalLevel, approve)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateBenefitApproval(id, status, level); err != nil {
		return nil, err
	}
	req.Status = status
	req.CurrentApprovalLevel = level
	req.StageLabel = StageLabel(level, status)

	if status != models.ApprovalStatusPending {
		s.notifyOutcome(req.EmployeeID, "medical benefit", status)
	}
	return req, nil
}
