package catalog

import (
	"context"
	"errors"

	productRepo "voyago/database/repository/product"
	"voyago/models"
)

// ErrNotFound is returned for unknown products.
var ErrNotFound = errors.New("product not found")

// CatalogService exposes read-only product and inventory lookups for the
// search and detail pages.
type CatalogService interface {
	GetProduct(ctx context.Context, kind models.ProductKind, id string) (*models.Product, error)
	QueryUnits(ctx context.Context, kind models.ProductKind, id string, filter productRepo.UnitFilter) ([]models.InventoryUnit, error)
}

// DefaultCatalogService implements CatalogService on top of the product
// repository.
type DefaultCatalogService struct {
	Repo productRepo.ProductRepository
}

// GetProduct fetches one product's metadata.
func (s *DefaultCatalogService) GetProduct(ctx context.Context, kind models.ProductKind, id string) (*models.Product, error) {
	if !kind.IsValid() {
		return nil, ErrNotFound
	}
	product, err := s.Repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// QueryUnits lists a product's inventory units matching the filter. An
// unknown product is ErrNotFound, same as GetProduct.
func (s *DefaultCatalogService) QueryUnits(ctx context.Context, kind models.ProductKind, id string, filter productRepo.UnitFilter) ([]models.InventoryUnit, error) {
	if _, err := s.GetProduct(ctx, kind, id); err != nil {
		return nil, err
	}
	return s.Repo.QueryUnits(ctx, kind, id, filter)
}
