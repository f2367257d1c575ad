package wizard

import (
	"context"
	"time"

	productRepo "voyago/database/repository/product"
	"voyago/models"

	"go.uber.org/zap"
)

// WizardService drives the multi-step booking wizard for every travel
// product. Every session operation takes the caller's user ID; the
// session's owner is checked before anything is read or mutated.
type WizardService interface {
	StartSession(ctx context.Context, user models.Session, kind models.ProductKind, productID string) (*models.WizardSession, error)
	GetSession(ctx context.Context, userID, sessionID string) (*models.WizardSession, error)
	Advance(ctx context.Context, userID, sessionID string, input StepInput) (*models.WizardSession, error)
	Retreat(ctx context.Context, userID, sessionID string) (*models.WizardSession, error)
	Submit(ctx context.Context, userID, sessionID string, input StepInput) (*models.WizardSession, error)
	Cancel(ctx context.Context, userID, sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store     SessionStore
	Inventory InventoryGateway
	Submitter BookingSubmitter
	Products  productRepo.ProductRepository
	Logger    *zap.Logger
	Currency  string

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}
