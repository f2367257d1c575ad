package trip

import (
	"context"
	"time"

	tripRepo "voyago/database/repository/trip"
	"voyago/models"

	"github.com/google/uuid"
)

// TripService manages the caller's trip aggregates, used by the wizard's
// optional "attach to trip" selector.
type TripService interface {
	Create(ctx context.Context, userID, name, startDate string) (*models.Trip, error)
	List(ctx context.Context, userID string) ([]models.Trip, error)
}

// DefaultTripService implements TripService.
type DefaultTripService struct {
	Repo tripRepo.TripRepository
}

// Create adds a new trip for the caller.
func (s *DefaultTripService) Create(ctx context.Context, userID, name, startDate string) (*models.Trip, error) {
	if name == "" {
		return nil, &ValidationError{Message: "a trip name is required"}
	}
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			return nil, &ValidationError{Message: "invalid start date"}
		}
	}

	t := &models.Trip{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		StartDate: startDate,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns the caller's trips.
func (s *DefaultTripService) List(ctx context.Context, userID string) ([]models.Trip, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// ValidationError is a user-facing trip input violation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
