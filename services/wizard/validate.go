package wizard

import (
	"time"

	"voyago/models"
)

const dateLayout = "2006-01-02"

// applyDates validates and applies the date/time step. Rules:
//   - the start date must not be in the past;
//   - for night-based products checkout must be strictly after checkin;
//   - if changing the start date pushes it past the current end date, the
//     end date is auto-advanced to start+1 night;
//   - hour-based products need a positive duration instead of an end date.
func applyDates(cfg ProductConfig, s *models.WizardSession, in *DatesInput, now time.Time) error {
	if in == nil || in.CheckIn == "" {
		return NewValidationError("a start date is required")
	}

	checkIn, err := time.Parse(dateLayout, in.CheckIn)
	if err != nil {
		return NewValidationError("invalid start date %q", in.CheckIn)
	}
	today := now.Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return NewValidationError("start date %s is in the past", in.CheckIn)
	}

	switch cfg.Duration {
	case DurationNights:
		checkOutStr := in.CheckOut
		if checkOutStr == "" {
			checkOutStr = s.CheckOut
		}
		if checkOutStr == "" {
			return NewValidationError("an end date is required")
		}
		checkOut, err := time.Parse(dateLayout, checkOutStr)
		if err != nil {
			return NewValidationError("invalid end date %q", checkOutStr)
		}
		if in.CheckOut == "" && !checkOut.After(checkIn) {
			// Start-date change overtook the previously chosen end date.
			checkOut = checkIn.AddDate(0, 0, 1)
			checkOutStr = checkOut.Format(dateLayout)
		}
		if !checkOut.After(checkIn) {
			return NewValidationError("end date must be after start date")
		}
		s.CheckIn = in.CheckIn
		s.CheckOut = checkOutStr

	case DurationHours:
		if in.DurationHours < 1 {
			return NewValidationError("duration must be at least one hour")
		}
		s.CheckIn = in.CheckIn
		s.CheckOut = ""
		s.DurationHours = in.DurationHours

	case DurationPassengers:
		s.CheckIn = in.CheckIn
		s.CheckOut = ""
	}

	return nil
}

// applyParty validates and applies the party composition step. Every
// passenger needs a non-empty name, a positive age and a gender before
// unit assignment is allowed, and the party must fit the declared
// capacity of the product (or the chosen coach).
func applyParty(cfg ProductConfig, s *models.WizardSession, in *PartyInput, product *models.Product) error {
	if in == nil || len(in.Passengers) == 0 {
		return NewValidationError("at least one passenger is required")
	}

	for i, p := range in.Passengers {
		if p.Name == "" || p.Age <= 0 || p.Gender == "" {
			return NewValidationError("passenger %d needs a name, age and gender", i+1)
		}
	}

	capacity := product.Capacity
	if cfg.UsesCoaches {
		if in.CoachID == "" {
			return NewValidationError("a %s class must be selected", cfg.UnitKind)
		}
		coach, ok := product.CoachByID(in.CoachID)
		if !ok {
			return NewValidationError("unknown class %q", in.CoachID)
		}
		capacity = coach.Capacity
	}
	if capacity > 0 && len(in.Passengers) > capacity {
		return NewValidationError("party size %d exceeds capacity %d", len(in.Passengers), capacity)
	}

	for _, id := range in.AddonIDs {
		if _, ok := product.AddonByID(id); !ok {
			return NewValidationError("unknown addon %q", id)
		}
	}

	// Preserve assignments for passengers that were kept unchanged.
	passengers := make([]models.PassengerRecord, len(in.Passengers))
	copy(passengers, in.Passengers)
	for i := range passengers {
		passengers[i].UnitID = ""
		if i < len(s.Party) && samePassenger(s.Party[i], passengers[i]) {
			passengers[i].UnitID = s.Party[i].UnitID
		}
	}

	coachChanged := cfg.UsesCoaches && s.CoachID != in.CoachID
	if coachChanged {
		// A new coach invalidates previously assigned seats.
		for i := range passengers {
			passengers[i].UnitID = ""
		}
	}

	s.Party = passengers
	s.CoachID = in.CoachID
	s.AddonIDs = in.AddonIDs
	return nil
}

func samePassenger(a, b models.PassengerRecord) bool {
	return a.Name == b.Name && a.Age == b.Age && a.Gender == b.Gender
}

// applyAssignment validates and applies the seat/cabin/room assignment
// step. No two passengers may reference the same unit: the first
// assignment wins and later attempts are a no-op, never an overwrite.
func applyAssignment(cfg ProductConfig, s *models.WizardSession, in *AssignmentInput) error {
	if in == nil {
		return NewValidationError("an assignment is required")
	}

	switch cfg.Assignment {
	case AssignUnits:
		if len(in.UnitIDs) == 0 {
			return NewValidationError("at least one %s must be selected", cfg.UnitKind)
		}
		seen := make(map[string]bool, len(in.UnitIDs))
		selected := make([]string, 0, len(in.UnitIDs))
		for _, id := range in.UnitIDs {
			if seen[id] {
				continue
			}
			if !unitAvailable(s.Availability, id) {
				return NewValidationError("%s %q is not available", cfg.UnitKind, id)
			}
			seen[id] = true
			selected = append(selected, id)
		}
		s.UnitIDs = selected

	case AssignPerPassenger:
		for i, p := range s.Party {
			if p.Name == "" || p.Age <= 0 || p.Gender == "" {
				return NewValidationError("passenger %d must be completed before assignment", i+1)
			}
		}
		for _, a := range in.Assignments {
			if a.PassengerIndex < 0 || a.PassengerIndex >= len(s.Party) {
				return NewValidationError("passenger index %d out of range", a.PassengerIndex)
			}
			if !unitAvailable(s.Availability, a.UnitID) {
				return NewValidationError("%s %q is not available", cfg.UnitKind, a.UnitID)
			}
			if holder := s.UnitTakenBy(a.UnitID); holder >= 0 && holder != a.PassengerIndex {
				// First assignment wins; this attempt is a no-op.
				continue
			}
			s.Party[a.PassengerIndex].UnitID = a.UnitID
		}
		for i, p := range s.Party {
			if p.UnitID == "" {
				return NewValidationError("passenger %d has no %s assigned", i+1, cfg.UnitKind)
			}
		}

	default:
		return NewValidationError("this product has no assignment step")
	}

	return nil
}

func unitAvailable(units []models.InventoryUnit, id string) bool {
	for _, u := range units {
		if u.ID == id {
			return u.Available
		}
	}
	return false
}

// applyPayment validates and applies the payment step. Terms must be
// accepted; a card payment needs all four card fields filled in. Card
// numbers are not format-checked here.
func applyPayment(s *models.WizardSession, in *PaymentInput) error {
	if in == nil {
		return NewValidationError("payment details are required")
	}

	if !in.Payment.TermsAccepted {
		return NewValidationError("terms and conditions must be accepted")
	}
	switch in.Payment.Method {
	case "card":
		if in.Payment.CardName == "" || in.Payment.CardNumber == "" ||
			in.Payment.CardExpiry == "" || in.Payment.CardCVC == "" {
			return NewValidationError("all card fields are required")
		}
	case "cash":
		// Nothing extra to check.
	default:
		return NewValidationError("unsupported payment method %q", in.Payment.Method)
	}

	contact := in.Contact
	if contact.Name == "" {
		contact.Name = s.Contact.Name
	}
	if contact.Email == "" {
		contact.Email = s.Contact.Email
	}
	if contact.Phone == "" {
		contact.Phone = s.Contact.Phone
	}
	if contact.Name == "" || contact.Email == "" {
		return NewValidationError("a contact name and email are required")
	}

	s.Contact = contact
	s.Payment = in.Payment
	s.TripID = in.TripID
	return nil
}
