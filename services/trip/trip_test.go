package trip

import (
	"context"
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTripRepository struct {
	mock.Mock
}

func (m *mockTripRepository) Create(ctx context.Context, trip *models.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *mockTripRepository) GetByID(ctx context.Context, id string) (*models.Trip, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*models.Trip), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTripRepository) GetByUser(ctx context.Context, userID string) ([]models.Trip, error) {
	args := m.Called(ctx, userID)
	if t := args.Get(0); t != nil {
		return t.([]models.Trip), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateTrip(t *testing.T) {
	repo := &mockTripRepository{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Trip")).Return(nil).Once()

	svc := &DefaultTripService{Repo: repo}
	trip, err := svc.Create(context.Background(), "user-1", "Goa in December", "2026-12-18")
	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "user-1", trip.UserID)
	assert.Equal(t, "Goa in December", trip.Name)
}

func TestCreateTripValidation(t *testing.T) {
	svc := &DefaultTripService{}

	_, err := svc.Create(context.Background(), "user-1", "", "")
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Create(context.Background(), "user-1", "Goa", "18-12-2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}
