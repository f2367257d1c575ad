package models

import "time"

// StepKind identifies one wizard step type.
type StepKind string

const (
	StepDates      StepKind = "dates"
	StepParty      StepKind = "party"
	StepAssignment StepKind = "assignment"
	StepPayment    StepKind = "payment"
)

// Session carries the authenticated caller's identity and contact defaults
// into a wizard. It is passed explicitly so the engine never reads ambient
// auth state.
type Session struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

// PassengerRecord is one passenger or guest in a wizard session's party.
// UnitID stays empty until the assignment step binds the passenger to an
// inventory unit.
type PassengerRecord struct {
	Name       string `bson:"name" json:"name"`
	Age        int    `bson:"age" json:"age"`
	Gender     string `bson:"gender" json:"gender"`
	Preference string `bson:"preference,omitempty" json:"preference,omitempty"` // diet, luggage, etc.
	UnitID     string `bson:"unit_id,omitempty" json:"unitId,omitempty"`
}

// ContactInfo is the booking contact for one wizard session.
type ContactInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// PaymentSelection holds the payment step's form state. Card fields are
// only required when Method is "card".
type PaymentSelection struct {
	Method        string `bson:"method" json:"method"` // "card" or "cash"
	CardName      string `bson:"-" json:"cardName,omitempty"`
	CardNumber    string `bson:"-" json:"cardNumber,omitempty"`
	CardExpiry    string `bson:"-" json:"cardExpiry,omitempty"`
	CardCVC       string `bson:"-" json:"cardCvc,omitempty"`
	TermsAccepted bool   `bson:"terms_accepted" json:"termsAccepted"`
}

// Fee is one fixed fee line in a price breakdown.
type Fee struct {
	Label  string  `bson:"label" json:"label"`
	Amount float64 `bson:"amount" json:"amount"`
}

// PriceBreakdown is derived from the session's current inputs. It is
// recomputed on every relevant state change and never cached apart from
// the denormalized copy embedded in the final booking document.
type PriceBreakdown struct {
	Currency   string  `bson:"currency" json:"currency"`
	Base       float64 `bson:"base" json:"base"`
	Fees       []Fee   `bson:"fees,omitempty" json:"fees,omitempty"`
	FeeTotal   float64 `bson:"fee_total" json:"feeTotal"`
	AddonTotal float64 `bson:"addon_total" json:"addonTotal"`
	Total      float64 `bson:"total" json:"total"`
}

// BookingResult is the terminal output of a successful wizard submission.
type BookingResult struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// WizardSession holds all state accumulated by one booking wizard between
// its first step and confirmation. It is JSON-marshaled into Redis with a
// TTL; one authenticated caller owns one session.
type WizardSession struct {
	SessionID      string      `json:"sessionId"`
	ProductKind    ProductKind `json:"productKind"`
	ProductID      string      `json:"productId"`
	User           Session     `json:"user"`
	IdempotencyKey string      `json:"idempotencyKey"`

	Steps     []StepKind `json:"steps"`
	StepIndex int        `json:"stepIndex"`

	CheckIn       string `json:"checkIn,omitempty"`  // "2006-01-02"
	CheckOut      string `json:"checkOut,omitempty"` // "2006-01-02"
	DurationHours int    `json:"durationHours,omitempty"`

	CoachID  string            `json:"coachId,omitempty"`
	Party    []PassengerRecord `json:"party,omitempty"`
	UnitIDs  []string          `json:"unitIds,omitempty"` // selected rooms for lodging products
	AddonIDs []string          `json:"addonIds,omitempty"`

	Contact ContactInfo      `json:"contact"`
	Payment PaymentSelection `json:"payment"`
	TripID  string           `json:"tripId,omitempty"`

	Availability      []InventoryUnit `json:"availability,omitempty"`
	AvailabilityError string          `json:"availabilityError,omitempty"`

	Price     *PriceBreakdown `json:"price,omitempty"`
	LastError string          `json:"lastError,omitempty"`

	Confirmed bool           `json:"confirmed"`
	Result    *BookingResult `json:"result,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// CurrentStep returns the step kind at the session's current index.
func (s *WizardSession) CurrentStep() StepKind {
	if s.StepIndex < 0 || s.StepIndex >= len(s.Steps) {
		return ""
	}
	return s.Steps[s.StepIndex]
}

// OnFinalStep reports whether the session sits on the last
// pre-confirmation step.
func (s *WizardSession) OnFinalStep() bool {
	return len(s.Steps) > 0 && s.StepIndex == len(s.Steps)-1
}

// UnitTakenBy returns the index of the passenger holding the given unit
// ID, or -1 if the unit is unassigned.
func (s *WizardSession) UnitTakenBy(unitID string) int {
	for i, p := range s.Party {
		if p.UnitID == unitID {
			return i
		}
	}
	return -1
}
