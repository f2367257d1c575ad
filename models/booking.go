package models

import "time"

// Booking status values. A booking is created confirmed and can only move
// to cancelled.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a confirmed booking record. Immutable once created, except
// for cancellation and the reminder marker.
type Booking struct {
	ID             string            `bson:"id" json:"id"`
	Reference      string            `bson:"reference" json:"reference"` // human-readable, e.g. "VG-7KQ2MX"
	UserID         string            `bson:"user_id" json:"userId"`
	ProductKind    ProductKind       `bson:"product_kind" json:"productKind"`
	ProductID      string            `bson:"product_id" json:"productId"`
	ProductName    string            `bson:"product_name" json:"productName"`
	CheckIn        string            `bson:"check_in,omitempty" json:"checkIn,omitempty"`
	CheckOut       string            `bson:"check_out,omitempty" json:"checkOut,omitempty"`
	DurationHours  int               `bson:"duration_hours,omitempty" json:"durationHours,omitempty"`
	CoachID        string            `bson:"coach_id,omitempty" json:"coachId,omitempty"`
	Party          []PassengerRecord `bson:"party,omitempty" json:"party,omitempty"`
	UnitIDs        []string          `bson:"unit_ids,omitempty" json:"unitIds,omitempty"`
	AddonIDs       []string          `bson:"addon_ids,omitempty" json:"addonIds,omitempty"`
	Contact        ContactInfo       `bson:"contact" json:"contact"`
	PaymentMethod  string            `bson:"payment_method" json:"paymentMethod"`
	Price          PriceBreakdown    `bson:"price" json:"price"`
	TripID         string            `bson:"trip_id,omitempty" json:"tripId,omitempty"`
	IdempotencyKey string            `bson:"idempotency_key" json:"-"`
	Status         string            `bson:"status" json:"status"`
	Invoice        *Invoice          `bson:"invoice,omitempty" json:"invoice,omitempty"`
	ReminderSentAt *time.Time        `bson:"reminder_sent_at,omitempty" json:"reminderSentAt,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updatedAt"`
}

// Trip is an optional user-defined grouping that a booking can attach to.
type Trip struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	StartDate string    `bson:"start_date" json:"startDate"` // "2006-01-02"
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
