package catalog

import (
	"context"
	"testing"

	productRepo "voyago/database/repository/product"
	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) GetByID(ctx context.Context, kind models.ProductKind, id string) (*models.Product, error) {
	args := m.Called(ctx, kind, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) QueryUnits(ctx context.Context, kind models.ProductKind, id string, filter productRepo.UnitFilter) ([]models.InventoryUnit, error) {
	args := m.Called(ctx, kind, id, filter)
	if u := args.Get(0); u != nil {
		return u.([]models.InventoryUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGetProductUnknown(t *testing.T) {
	repo := &mockProductRepository{}
	repo.On("GetByID", mock.Anything, models.ProductHotel, "missing").Return(nil, nil)

	svc := &DefaultCatalogService{Repo: repo}
	_, err := svc.GetProduct(context.Background(), models.ProductHotel, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetProduct(context.Background(), "spaceship", "p-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQueryUnitsUnknownProduct(t *testing.T) {
	repo := &mockProductRepository{}
	repo.On("GetByID", mock.Anything, models.ProductHotel, "missing").Return(nil, nil)

	svc := &DefaultCatalogService{Repo: repo}
	_, err := svc.QueryUnits(context.Background(), models.ProductHotel, "missing", productRepo.UnitFilter{})
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "QueryUnits", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestQueryUnitsPassesFilter(t *testing.T) {
	product := &models.Product{ID: "bus-1", Kind: models.ProductBus}
	filter := productRepo.UnitFilter{CoachID: "coach-a", OnlyAvailable: true}
	units := []models.InventoryUnit{{ID: "seat-1", CoachID: "coach-a", Available: true}}

	repo := &mockProductRepository{}
	repo.On("GetByID", mock.Anything, models.ProductBus, "bus-1").Return(product, nil)
	repo.On("QueryUnits", mock.Anything, models.ProductBus, "bus-1", filter).Return(units, nil)

	svc := &DefaultCatalogService{Repo: repo}
	got, err := svc.QueryUnits(context.Background(), models.ProductBus, "bus-1", filter)
	require.NoError(t, err)
	assert.Equal(t, units, got)
}
