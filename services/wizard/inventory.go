package wizard

import (
	"context"

	productRepo "voyago/database/repository/product"
	"voyago/models"
)

// DateRange bounds an availability query.
type DateRange struct {
	Start string
	End   string
}

// InventoryGateway provides read-only availability lookups. Returned
// units are never mutated locally; selection only copies unit IDs into
// the session.
type InventoryGateway interface {
	FetchAvailability(ctx context.Context, kind models.ProductKind, productID string, dates DateRange, partySize int, coachID string) ([]models.InventoryUnit, error)
}

// CatalogInventoryGateway answers availability queries from the product
// catalog repository.
type CatalogInventoryGateway struct {
	Products productRepo.ProductRepository
}

// FetchAvailability returns the product's currently available units,
// narrowed to the chosen coach for seat-based transport. The date range
// and party size shape the caller's query but inventory flags are the
// catalog's to arbitrate.
func (g *CatalogInventoryGateway) FetchAvailability(ctx context.Context, kind models.ProductKind, productID string, dates DateRange, partySize int, coachID string) ([]models.InventoryUnit, error) {
	return g.Products.QueryUnits(ctx, kind, productID, productRepo.UnitFilter{
		CoachID:       coachID,
		OnlyAvailable: true,
	})
}
