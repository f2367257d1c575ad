package wizard

import (
	"context"
	"errors"
	"time"

	"voyago/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrProductNotFound is returned when the wizard targets a product the
// catalog does not know.
var ErrProductNotFound = errors.New("product not found")

// ErrSessionForbidden is returned when a caller addresses a wizard
// session owned by someone else.
var ErrSessionForbidden = errors.New("wizard session belongs to another user")

func (e *DefaultWizardService) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// StartSession creates a new wizard session for one product and one
// authenticated caller. The caller's identity is passed in explicitly;
// contact defaults are prefilled from it. An idempotency key is minted
// here so a later double submission collapses onto one booking.
func (e *DefaultWizardService) StartSession(ctx context.Context, user models.Session, kind models.ProductKind, productID string) (*models.WizardSession, error) {
	cfg, ok := ConfigFor(kind)
	if !ok {
		return nil, NewValidationError("unknown product kind %q", kind)
	}

	product, err := e.Products.GetByID(ctx, kind, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	steps := make([]models.StepKind, len(cfg.Steps))
	copy(steps, cfg.Steps)

	session := &models.WizardSession{
		SessionID:      uuid.New().String(),
		ProductKind:    kind,
		ProductID:      productID,
		User:           user,
		IdempotencyKey: uuid.New().String(),
		Steps:          steps,
		Contact: models.ContactInfo{
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
		CreatedAt: e.now(),
	}

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	e.Logger.Info("wizard session started",
		zap.String("sessionID", session.SessionID),
		zap.String("product", string(kind)),
		zap.String("productID", productID))
	return session, nil
}

// loadOwnedSession fetches one session and verifies the caller owns it.
// The check runs before any step logic so a guessed session ID can
// neither be read nor mutated.
func (e *DefaultWizardService) loadOwnedSession(ctx context.Context, userID, sessionID string) (*models.WizardSession, error) {
	session, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.User.UserID != userID {
		return nil, ErrSessionForbidden
	}
	return session, nil
}

// GetSession returns the current state of one wizard session.
func (e *DefaultWizardService) GetSession(ctx context.Context, userID, sessionID string) (*models.WizardSession, error) {
	return e.loadOwnedSession(ctx, userID, sessionID)
}

// Advance validates the current step against the given input. On success
// the step index moves forward and, when the step invalidated previously
// fetched inventory (date or coach changes), availability is refreshed.
// On failure the session keeps its step index and carries the violation
// message.
func (e *DefaultWizardService) Advance(ctx context.Context, userID, sessionID string, input StepInput) (*models.WizardSession, error) {
	session, err := e.loadOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Confirmed {
		return session, NewValidationError("booking already confirmed")
	}

	cfg, ok := ConfigFor(session.ProductKind)
	if !ok {
		return nil, NewValidationError("unknown product kind %q", session.ProductKind)
	}
	product, err := e.Products.GetByID(ctx, session.ProductKind, session.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	step := session.CurrentStep()
	var applyErr error
	switch step {
	case models.StepDates:
		applyErr = applyDates(cfg, session, input.Dates, e.now())
	case models.StepParty:
		applyErr = applyParty(cfg, session, input.Party, product)
	case models.StepAssignment:
		applyErr = applyAssignment(cfg, session, input.Assignment)
	case models.StepPayment:
		applyErr = NewValidationError("the payment step is completed via submit")
	default:
		applyErr = NewValidationError("session has no current step")
	}

	if applyErr != nil {
		session.LastError = applyErr.Error()
		if saveErr := e.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, applyErr
	}

	session.LastError = ""
	if step == models.StepDates || (step == models.StepParty && cfg.UsesCoaches) {
		e.refreshAvailability(ctx, cfg, session)
	}
	e.refreshPrice(cfg, session, product)
	session.StepIndex++

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Retreat steps back one step, unconditionally: prior steps are not
// re-validated and step 0 is the floor.
func (e *DefaultWizardService) Retreat(ctx context.Context, userID, sessionID string) (*models.WizardSession, error) {
	session, err := e.loadOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Confirmed {
		return session, NewValidationError("booking already confirmed")
	}

	if session.StepIndex > 0 {
		session.StepIndex--
	}
	session.LastError = ""

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit completes the wizard from its final step. The payment input is
// validated first; an outstanding availability warning blocks the
// submission; a submitter failure leaves the session on the payment step
// with an error set and no BookingResult. On success the session enters
// the terminal confirmed state and no further mutation is permitted.
func (e *DefaultWizardService) Submit(ctx context.Context, userID, sessionID string, input StepInput) (*models.WizardSession, error) {
	session, err := e.loadOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Confirmed {
		// Terminal state; re-submission returns the stored result.
		return session, nil
	}

	if !session.OnFinalStep() {
		return session, NewValidationError("submission is only allowed from the final step")
	}

	if applyErr := applyPayment(session, input.Payment); applyErr != nil {
		session.LastError = applyErr.Error()
		if saveErr := e.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, applyErr
	}

	if session.AvailabilityError != "" {
		availErr := &AvailabilityError{Message: "cannot submit: " + session.AvailabilityError}
		session.LastError = availErr.Message
		if saveErr := e.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, availErr
	}

	cfg, ok := ConfigFor(session.ProductKind)
	if !ok {
		return nil, NewValidationError("unknown product kind %q", session.ProductKind)
	}
	product, err := e.Products.GetByID(ctx, session.ProductKind, session.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	e.refreshPrice(cfg, session, product)
	if session.Price == nil {
		return session, NewValidationError("the booking cannot be priced from the current selections")
	}

	result, err := e.Submitter.Submit(ctx, session)
	if err != nil {
		subErr := &SubmissionError{Message: "booking submission failed", Err: err}
		session.LastError = subErr.Error()
		if saveErr := e.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, subErr
	}

	session.Confirmed = true
	session.Result = result
	session.LastError = ""

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	e.Logger.Info("wizard session confirmed",
		zap.String("sessionID", session.SessionID),
		zap.String("bookingID", result.BookingID))
	return session, nil
}

// Cancel destroys a wizard session after verifying ownership.
func (e *DefaultWizardService) Cancel(ctx context.Context, userID, sessionID string) error {
	if _, err := e.loadOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return e.Store.Delete(ctx, sessionID)
}

// refreshAvailability reloads inventory after a step that invalidates a
// previous fetch. A failed or empty fetch flags the session instead of
// failing the advance: the warning is non-blocking until submission.
func (e *DefaultWizardService) refreshAvailability(ctx context.Context, cfg ProductConfig, session *models.WizardSession) {
	if cfg.Assignment == AssignNone {
		return
	}

	units, err := e.Inventory.FetchAvailability(ctx, session.ProductKind, session.ProductID,
		DateRange{Start: session.CheckIn, End: session.CheckOut}, len(session.Party), session.CoachID)
	if err != nil {
		session.Availability = nil
		session.AvailabilityError = "availability lookup failed: " + err.Error()
		e.Logger.Warn("availability refresh failed",
			zap.String("sessionID", session.SessionID), zap.Error(err))
		return
	}
	if len(units) == 0 {
		session.Availability = nil
		session.AvailabilityError = "no " + cfg.UnitKind + "s available for the selected inputs"
		return
	}
	session.Availability = units
	session.AvailabilityError = ""
}

// refreshPrice recomputes the derived price breakdown from the session's
// current inputs. Nothing is cached; insufficient inputs clear the price.
func (e *DefaultWizardService) refreshPrice(cfg ProductConfig, session *models.WizardSession, product *models.Product) {
	in, ok := derivePricing(cfg, session, product, e.Currency)
	if !ok {
		session.Price = nil
		return
	}
	breakdown := ComputeTotal(in)
	session.Price = &breakdown
}
