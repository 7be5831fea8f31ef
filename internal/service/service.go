package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/altamirahr/hris-service/internal/config"
	"github.com/altamirahr/hris-service/internal/repository"
	"github.com/altamirahr/hris-service/internal/utils/email"
)

// Validation and flow errors surfaced to the handlers
var (
	ErrInvalidAmount             = errors.New("payment amount must be positive")
	ErrNoOutstandingInstallments = errors.New("no outstanding installments")
	ErrLedgerWriteFailed         = errors.New("ledger write failed")
	ErrRowAllocationFailed       = errors.New("row allocation failed")
	ErrAlreadyFinalized          = errors.New("request already finalized")
	ErrInvalidLoanType           = errors.New("invalid loan type")
	ErrHolidayCheckIn            = errors.New("check-in date falls on a public holiday")
	ErrValidation                = errors.New("validation failed")
)

// HolidaySource reports whether a date is a public holiday.
type HolidaySource interface {
	IsHoliday(year int, month int, day int) (bool, error)
}

// Service handles business logic
type Service struct {
	repo     *repository.Repository
	log      *logrus.Logger
	config   *config.Config
	mailer   *email.Sender
	holidays HolidaySource
}

// NewService initializes a new service. The mailer and holiday source are
// optional; when nil the corresponding behavior is skipped.
func NewService(repo *repository.Repository, log *logrus.Logger, cfg *config.Config,
	mailer *email.Sender, holidays HolidaySource) *Service {
	return &Service{repo: repo, log: log, config: cfg, mailer: mailer, holidays: holidays}
}
