package wizard

import "voyago/models"

// StepInput carries the form payload for one step. Only the field
// matching the session's current step is read.
type StepInput struct {
	Dates      *DatesInput      `json:"dates,omitempty"`
	Party      *PartyInput      `json:"party,omitempty"`
	Assignment *AssignmentInput `json:"assignment,omitempty"`
	Payment    *PaymentInput    `json:"payment,omitempty"`
}

// DatesInput is the date/time step payload. CheckOut is ignored for
// products measured in hours or passengers.
type DatesInput struct {
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut,omitempty"`
	DurationHours int    `json:"durationHours,omitempty"`
}

// PartyInput is the party composition step payload. CoachID is required
// for seat-based transport; AddonIDs are optional extras.
type PartyInput struct {
	Passengers []models.PassengerRecord `json:"passengers"`
	CoachID    string                   `json:"coachId,omitempty"`
	AddonIDs   []string                 `json:"addonIds,omitempty"`
}

// UnitAssignment binds one passenger to one inventory unit.
type UnitAssignment struct {
	PassengerIndex int    `json:"passengerIndex"`
	UnitID         string `json:"unitId"`
}

// AssignmentInput is the seat/cabin/room assignment step payload.
// UnitIDs is used for whole-party selection (hotel rooms); Assignments
// for per-passenger binding (seats, cabins).
type AssignmentInput struct {
	UnitIDs     []string         `json:"unitIds,omitempty"`
	Assignments []UnitAssignment `json:"assignments,omitempty"`
}

// PaymentInput is the final step payload, applied during submission.
type PaymentInput struct {
	Contact models.ContactInfo      `json:"contact"`
	Payment models.PaymentSelection `json:"payment"`
	TripID  string                  `json:"tripId,omitempty"`
}
