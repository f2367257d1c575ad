package wizard

import (
	"context"
	"fmt"
	"time"

	"voyago/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor settles the payment for one booking.
type PaymentProcessor interface {
	Process(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// SimulatedPaymentProcessor approves card payments and records cash
// payments as pending, without talking to a payment provider.
type SimulatedPaymentProcessor struct {
	Logger *zap.Logger
}

// Process settles the payment locally.
func (p *SimulatedPaymentProcessor) Process(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Method == "card" {
		inv.PaymentID = "pi_" + uuid.New().String()
		inv.Status = "paid"
	}

	p.Logger.Info("payment recorded",
		zap.String("invoice", inv.InvoiceID),
		zap.String("method", inv.Method),
		zap.String("status", inv.Status))
	return inv, nil
}

// StripePaymentProcessor creates a Stripe payment intent for card
// payments and falls back to the pending-cash flow otherwise.
type StripePaymentProcessor struct {
	Logger *zap.Logger
}

// Process settles the payment through Stripe.
func (p *StripePaymentProcessor) Process(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Method != "card" {
		return inv, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(req.Amount * 100)),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.SetIdempotencyKey(req.Idempotency)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = string(pi.Status)
	inv.UpdatedAt = time.Now()

	p.Logger.Info("stripe payment intent created",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID))
	return inv, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("invalid payment amount")
	}
	if req.UserID == "" {
		return fmt.Errorf("missing user ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return fmt.Errorf("unsupported method %q", req.Method)
	}
	return nil
}
