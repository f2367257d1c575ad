package models

import "time"

// PaymentRequest carries the inputs for processing one payment.
type PaymentRequest struct {
	UserID      string
	Amount      float64
	Method      string // "cash" or "card"
	Currency    string
	Idempotency string
	Description string
}

// Invoice records the outcome of a payment attempt for a booking.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"` // "pending" or "paid"
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReminderPayload is the asynq task payload for a scheduled booking
// reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
