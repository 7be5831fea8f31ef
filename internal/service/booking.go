package service

import (
	"fmt"
	"time"

	"github.com/altamirahr/hris-service/internal/models"
)

// CreateBooking creates a staff-house booking request at the first approval
// level. Check-in dates landing on a public holiday are rejected when the
// holiday feed is reachable; feed errors are non-fatal.
func (s *Service) CreateBooking(employeeID int64, house string, checkIn, checkOut time.Time,
	guests int, purpose string) (*models.Booking, error) {

	if house == "" {
		return nil, fmt.Errorf("%w: house is required", ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	if guests <= 0 {
		return nil, fmt.Errorf("%w: at least one guest required", ErrValidation)
	}
	if _, err := s.repo.FindEmployeeByID(employeeID); err != nil {
		return nil, err
	}

	if s.holidays != nil {
		holiday, err := s.holidays.IsHoliday(checkIn.Year(), int(checkIn.Month()), checkIn.Day())
		if err != nil {
			s.log.Warnf("Holiday feed unavailable, skipping check-in validation: %v", err)
		} else if holiday {
			return nil, ErrHolidayCheckIn
		}
	}

	booking := &models.Booking{
		EmployeeID:           employeeID,
		House:                house,
		CheckIn:              checkIn,
		CheckOut:             checkOut,
		Guests:               guests,
		Purpose:              purpose,
		Status:               models.ApprovalStatusPending,
		CurrentApprovalLevel: models.ApprovalLevelMin,
	}
	if err := s.repo.CreateBooking(booking); err != nil {
		return nil, err
	}
	booking.StageLabel = StageLabel(booking.CurrentApprovalLevel, booking.Status)
	s.log.Infof("Booking created: #%d %s for employee %d", booking.ID, booking.House, booking.EmployeeID)
	return booking, nil
}

// GetBooking retrieves one booking with its stage label
func (s *Service) GetBooking(id int64) (*models.Booking, error) {
	booking, err := s.repo.FindBookingByID(id)
	if err != nil {
		return nil, err
	}
	booking.StageLabel = StageLabel(booking.CurrentApprovalLevel, booking.Status)
	return booking, nil
}

// ListBookings retrieves all bookings with stage labels
func (s *Service) ListBookings() ([]*models.Booking, error) {
	bookings, err := s.repo.ListBookings()
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.StageLabel = StageLabel(b.CurrentApprovalLevel, b.Status)
	}
	return bookings, nil
}

// UpdateBooking updates a pending booking
func (s *Service) UpdateBooking(id int64, house string, checkIn, checkOut time.Time,
	guests int, purpose string) (*models.Booking, error) {

	booking, err := s.repo.FindBookingByID(id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.ApprovalStatusPending {
		return nil, ErrAlreadyFinalized
	}
	if !checkOut.After(checkIn) || guests <= 0 {
		return nil, fmt.Errorf("%w: invalid dates or guest count", ErrValidation)
	}

	booking.House = house
	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	booking.Guests = guests
	booking.Purpose = purpose
	if err := s.repo.UpdateBooking(booking); err != nil {
		return nil, err
	}
	booking.StageLabel = StageLabel(booking.CurrentApprovalLevel, booking.Status)
	return booking, nil
}

// DeleteBooking removes a booking
func (s *Service) DeleteBooking(id int64) error {
	return s.repo.DeleteBooking(id)
}

// DecideBooking applies one approver action to a booking
func (s *Service) DecideBooking(id int64, approve bool) (*models.Booking, error) {
	booking, err := s.repo.FindBookingByID(id)
	if err != nil {
		return nil, err
	}

	status, level, err := nextApproval(booking.Status, booking.CurrentApprovalLevel, approve)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateBookingApproval(id, status, level); err != nil {
		return nil, err
	}
	booking.Status = status
	booking.CurrentApprovalLevel = level
	booking.StageLabel = StageLabel(level, status)

	if status != models.ApprovalStatusPending {
		s.notifyOutcome(booking.EmployeeID, "staff-house booking", status)
	}
	return booking, nil
}
