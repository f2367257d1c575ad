package wizard

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	bookingRepo "voyago/database/repository/booking"
	productRepo "voyago/database/repository/product"
	"voyago/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const referenceChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateReference creates a booking reference in the format "VG-XXXXXX".
func generateReference() (string, error) {
	result := make([]byte, 6)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate booking reference: %w", err)
		}
		result[i] = referenceChars[n.Int64()]
	}
	return "VG-" + string(result), nil
}

// ReminderScheduler schedules a pre-trip reminder for a booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking) error
}

// BookingSubmitter turns a completed wizard session into one persisted
// booking.
type BookingSubmitter interface {
	Submit(ctx context.Context, session *models.WizardSession) (*models.BookingResult, error)
}

// DefaultBookingSubmitter persists bookings through the booking
// repository and deduplicates on the session's idempotency key, so a
// double-click resubmission returns the first booking instead of
// creating a second.
type DefaultBookingSubmitter struct {
	Bookings  bookingRepo.BookingRepository
	Products  productRepo.ProductRepository
	Payments  PaymentProcessor
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// Submit performs exactly one booking creation for the session.
func (sub *DefaultBookingSubmitter) Submit(ctx context.Context, session *models.WizardSession) (*models.BookingResult, error) {
	if session.Price == nil {
		return nil, fmt.Errorf("session has no computed price")
	}

	existing, err := sub.Bookings.GetByIdempotencyKey(ctx, session.IdempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate submission: %w", err)
	}
	if existing != nil {
		sub.Logger.Info("duplicate submission collapsed onto existing booking",
			zap.String("bookingID", existing.ID),
			zap.String("sessionID", session.SessionID))
		return &models.BookingResult{BookingID: existing.ID, Status: existing.Status}, nil
	}

	product, err := sub.Products.GetByID(ctx, session.ProductKind, session.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%s %s no longer exists", session.ProductKind, session.ProductID)
	}

	invoice, err := sub.Payments.Process(ctx, models.PaymentRequest{
		UserID:      session.User.UserID,
		Amount:      session.Price.Total,
		Method:      session.Payment.Method,
		Currency:    session.Price.Currency,
		Idempotency: session.IdempotencyKey,
		Description: fmt.Sprintf("%s booking for %s", session.ProductKind, product.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	reference, err := generateReference()
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		Reference:      reference,
		UserID:         session.User.UserID,
		ProductKind:    session.ProductKind,
		ProductID:      session.ProductID,
		ProductName:    product.Name,
		CheckIn:        session.CheckIn,
		CheckOut:       session.CheckOut,
		DurationHours:  session.DurationHours,
		CoachID:        session.CoachID,
		Party:          session.Party,
		UnitIDs:        bookedUnitIDs(session),
		AddonIDs:       session.AddonIDs,
		Contact:        session.Contact,
		PaymentMethod:  session.Payment.Method,
		Price:          *session.Price,
		TripID:         session.TripID,
		IdempotencyKey: session.IdempotencyKey,
		Status:         models.BookingStatusConfirmed,
		Invoice:        invoice,
	}

	if err := sub.Bookings.Create(ctx, booking); err != nil {
		// A concurrent duplicate may have won the unique-key race.
		if winner, lookupErr := sub.Bookings.GetByIdempotencyKey(ctx, session.IdempotencyKey); lookupErr == nil && winner != nil {
			return &models.BookingResult{BookingID: winner.ID, Status: winner.Status}, nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if sub.Reminders != nil && booking.CheckIn != "" {
		if err := sub.Reminders.ScheduleBookingReminder(booking); err != nil {
			sub.Logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	sub.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("reference", booking.Reference),
		zap.String("product", string(booking.ProductKind)))

	return &models.BookingResult{BookingID: booking.ID, Status: booking.Status}, nil
}

func bookedUnitIDs(session *models.WizardSession) []string {
	if len(session.UnitIDs) > 0 {
		return session.UnitIDs
	}
	return distinctAssignedUnits(session.Party)
}
