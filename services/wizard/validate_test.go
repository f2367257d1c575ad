package wizard

import (
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func hotelConfig(t *testing.T) ProductConfig {
	t.Helper()
	cfg, ok := ConfigFor(models.ProductHotel)
	require.True(t, ok)
	return cfg
}

func busConfig(t *testing.T) ProductConfig {
	t.Helper()
	cfg, ok := ConfigFor(models.ProductBus)
	require.True(t, ok)
	return cfg
}

func TestApplyDatesRejectsPastStart(t *testing.T) {
	s := &models.WizardSession{}
	err := applyDates(hotelConfig(t), s, &DatesInput{CheckIn: "2026-08-20", CheckOut: "2026-09-05"}, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in the past")
	assert.Empty(t, s.CheckIn)
}

func TestApplyDatesRejectsCheckoutNotAfterCheckin(t *testing.T) {
	s := &models.WizardSession{}
	err := applyDates(hotelConfig(t), s, &DatesInput{CheckIn: "2026-09-10", CheckOut: "2026-09-10"}, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date must be after start date")
}

func TestApplyDatesAutoAdvancesOvertakenCheckout(t *testing.T) {
	// End date was chosen earlier; moving the start date past it pushes
	// the end date to one night later instead of failing.
	s := &models.WizardSession{CheckIn: "2026-09-10", CheckOut: "2026-09-12"}
	err := applyDates(hotelConfig(t), s, &DatesInput{CheckIn: "2026-09-15"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", s.CheckIn)
	assert.Equal(t, "2026-09-16", s.CheckOut)
}

func TestApplyDatesHourlyDuration(t *testing.T) {
	cfg, ok := ConfigFor(models.ProductCab)
	require.True(t, ok)

	s := &models.WizardSession{}
	err := applyDates(cfg, s, &DatesInput{CheckIn: "2026-09-10"}, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one hour")

	err = applyDates(cfg, s, &DatesInput{CheckIn: "2026-09-10", DurationHours: 4}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 4, s.DurationHours)
}

func TestApplyPartyRequiresCompletedPassengers(t *testing.T) {
	product := &models.Product{Kind: models.ProductHotel, Capacity: 4}
	s := &models.WizardSession{}

	err := applyParty(hotelConfig(t), s, &PartyInput{}, product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one passenger")

	err = applyParty(hotelConfig(t), s, &PartyInput{
		Passengers: []models.PassengerRecord{{Name: "Asha", Age: 0, Gender: "female"}},
	}, product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passenger 1")
}

func TestApplyPartyEnforcesCapacity(t *testing.T) {
	product := &models.Product{Kind: models.ProductHotel, Capacity: 2}
	s := &models.WizardSession{}

	err := applyParty(hotelConfig(t), s, &PartyInput{
		Passengers: []models.PassengerRecord{
			{Name: "Asha", Age: 34, Gender: "female"},
			{Name: "Ravi", Age: 36, Gender: "male"},
			{Name: "Meera", Age: 8, Gender: "female"},
		},
	}, product)
	require.Error(t, err)
	assert.Equal(t, "party size 3 exceeds capacity 2", err.Error())
}

func TestApplyPartyRequiresCoachForSeatTransport(t *testing.T) {
	product := &models.Product{
		Kind:    models.ProductBus,
		Coaches: []models.Coach{{ID: "coach-a", Price: 800, Capacity: 2}},
	}
	passengers := []models.PassengerRecord{{Name: "Asha", Age: 34, Gender: "female"}}
	s := &models.WizardSession{}

	err := applyParty(busConfig(t), s, &PartyInput{Passengers: passengers}, product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class must be selected")

	err = applyParty(busConfig(t), s, &PartyInput{Passengers: passengers, CoachID: "coach-x"}, product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown class")

	err = applyParty(busConfig(t), s, &PartyInput{Passengers: passengers, CoachID: "coach-a"}, product)
	require.NoError(t, err)
	assert.Equal(t, "coach-a", s.CoachID)
}

func TestApplyPartyCoachChangeClearsAssignments(t *testing.T) {
	product := &models.Product{
		Kind: models.ProductBus,
		Coaches: []models.Coach{
			{ID: "coach-a", Price: 800, Capacity: 40},
			{ID: "coach-b", Price: 1200, Capacity: 40},
		},
	}
	passengers := []models.PassengerRecord{{Name: "Asha", Age: 34, Gender: "female"}}
	s := &models.WizardSession{
		CoachID: "coach-a",
		Party:   []models.PassengerRecord{{Name: "Asha", Age: 34, Gender: "female", UnitID: "seat-1"}},
	}

	// Same coach, unchanged passenger: the seat survives.
	err := applyParty(busConfig(t), s, &PartyInput{Passengers: passengers, CoachID: "coach-a"}, product)
	require.NoError(t, err)
	assert.Equal(t, "seat-1", s.Party[0].UnitID)

	// Switching coach drops it.
	err = applyParty(busConfig(t), s, &PartyInput{Passengers: passengers, CoachID: "coach-b"}, product)
	require.NoError(t, err)
	assert.Empty(t, s.Party[0].UnitID)
}

func TestApplyPartyRejectsUnknownAddon(t *testing.T) {
	product := &models.Product{
		Kind:     models.ProductHotel,
		Capacity: 4,
		Addons:   []models.Addon{{ID: "breakfast", Price: 240}},
	}
	s := &models.WizardSession{}

	err := applyParty(hotelConfig(t), s, &PartyInput{
		Passengers: []models.PassengerRecord{{Name: "Asha", Age: 34, Gender: "female"}},
		AddonIDs:   []string{"spa"},
	}, product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown addon "spa"`)
}

func availableSeats(ids ...string) []models.InventoryUnit {
	units := make([]models.InventoryUnit, len(ids))
	for i, id := range ids {
		units[i] = models.InventoryUnit{ID: id, Kind: "seat", Available: true}
	}
	return units
}

func TestApplyAssignmentFirstAssignmentWins(t *testing.T) {
	cfg := busConfig(t)
	s := &models.WizardSession{
		Party: []models.PassengerRecord{
			{Name: "Asha", Age: 34, Gender: "female"},
			{Name: "Ravi", Age: 36, Gender: "male"},
		},
		Availability: availableSeats("seat-1", "seat-2"),
	}

	err := applyAssignment(cfg, s, &AssignmentInput{Assignments: []UnitAssignment{
		{PassengerIndex: 0, UnitID: "seat-1"},
		{PassengerIndex: 1, UnitID: "seat-1"}, // no-op: seat-1 already taken
		{PassengerIndex: 1, UnitID: "seat-2"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "seat-1", s.Party[0].UnitID)
	assert.Equal(t, "seat-2", s.Party[1].UnitID)
}

func TestApplyAssignmentRequiresEveryPassengerSeated(t *testing.T) {
	cfg := busConfig(t)
	s := &models.WizardSession{
		Party: []models.PassengerRecord{
			{Name: "Asha", Age: 34, Gender: "female"},
			{Name: "Ravi", Age: 36, Gender: "male"},
		},
		Availability: availableSeats("seat-1", "seat-2"),
	}

	err := applyAssignment(cfg, s, &AssignmentInput{Assignments: []UnitAssignment{
		{PassengerIndex: 0, UnitID: "seat-1"},
	}})
	require.Error(t, err)
	assert.Equal(t, "passenger 2 has no seat assigned", err.Error())
}

func TestApplyAssignmentRejectsUnavailableUnit(t *testing.T) {
	cfg := busConfig(t)
	s := &models.WizardSession{
		Party:        []models.PassengerRecord{{Name: "Asha", Age: 34, Gender: "female"}},
		Availability: availableSeats("seat-1"),
	}

	err := applyAssignment(cfg, s, &AssignmentInput{Assignments: []UnitAssignment{
		{PassengerIndex: 0, UnitID: "seat-9"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"seat-9" is not available`)
}

func TestApplyAssignmentHotelRoomSelection(t *testing.T) {
	cfg := hotelConfig(t)
	s := &models.WizardSession{
		Availability: []models.InventoryUnit{
			{ID: "room-101", Kind: "room", Available: true},
			{ID: "room-102", Kind: "room", Available: true},
		},
	}

	// Duplicates collapse; unknown rooms fail.
	err := applyAssignment(cfg, s, &AssignmentInput{UnitIDs: []string{"room-101", "room-101", "room-102"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"room-101", "room-102"}, s.UnitIDs)

	err = applyAssignment(cfg, s, &AssignmentInput{UnitIDs: []string{"room-404"}})
	require.Error(t, err)
}

func TestApplyPaymentTermsAndCardFields(t *testing.T) {
	s := &models.WizardSession{Contact: models.ContactInfo{Name: "Asha", Email: "asha@example.com"}}

	err := applyPayment(s, &PaymentInput{Payment: models.PaymentSelection{Method: "card"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terms and conditions")

	err = applyPayment(s, &PaymentInput{Payment: models.PaymentSelection{
		Method: "card", TermsAccepted: true, CardName: "Asha",
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all card fields are required")

	err = applyPayment(s, &PaymentInput{Payment: models.PaymentSelection{
		Method: "card", TermsAccepted: true,
		CardName: "Asha", CardNumber: "4242424242424242", CardExpiry: "12/27", CardCVC: "123",
	}})
	require.NoError(t, err)
}

func TestApplyPaymentContactFallsBackToSessionDefaults(t *testing.T) {
	s := &models.WizardSession{Contact: models.ContactInfo{Name: "Asha", Email: "asha@example.com"}}

	err := applyPayment(s, &PaymentInput{Payment: models.PaymentSelection{Method: "cash", TermsAccepted: true}})
	require.NoError(t, err)
	assert.Equal(t, "Asha", s.Contact.Name)
	assert.Equal(t, "asha@example.com", s.Contact.Email)

	// No contact anywhere fails.
	empty := &models.WizardSession{}
	err = applyPayment(empty, &PaymentInput{Payment: models.PaymentSelection{Method: "cash", TermsAccepted: true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact name and email")
}
