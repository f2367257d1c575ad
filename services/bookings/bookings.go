package bookings

import (
	"context"
	"errors"

	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
)

var (
	// ErrNotFound is returned for unknown booking IDs.
	ErrNotFound = errors.New("booking not found")
	// ErrForbidden is returned when a caller touches someone else's booking.
	ErrForbidden = errors.New("booking belongs to another user")
	// ErrAlreadyCancelled is returned for repeated cancellations.
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

// BookingService exposes the caller's confirmed bookings.
type BookingService interface {
	List(ctx context.Context, userID string) ([]models.Booking, error)
	Get(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// List returns the caller's bookings, newest first.
func (s *DefaultBookingService) List(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// Get fetches one booking, enforcing ownership.
func (s *DefaultBookingService) Get(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}

// Cancel flips a booking to cancelled unless it already is.
func (s *DefaultBookingService) Cancel(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Get(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if err := s.Repo.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusCancelled
	return booking, nil
}
