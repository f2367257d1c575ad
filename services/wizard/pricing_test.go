package wizard

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalHotelStay(t *testing.T) {
	// Deluxe room for three nights with cleaning fee and breakfast addon.
	breakdown := ComputeTotal(PricingInput{
		Currency:      "inr",
		UnitPrice:     2000,
		DurationUnits: 3,
		FixedFees:     []models.Fee{{Label: "cleaning", Amount: 500}},
		Addons:        []models.Addon{{ID: "breakfast", Name: "Breakfast", Price: 240}},
	})

	assert.Equal(t, float64(6000), breakdown.Base)
	assert.Equal(t, float64(500), breakdown.FeeTotal)
	assert.Equal(t, float64(240), breakdown.AddonTotal)
	assert.Equal(t, float64(6740), breakdown.Total)
}

func TestComputeTotalBusParty(t *testing.T) {
	// Coach fare is charged per passenger; no fees or addons.
	breakdown := ComputeTotal(PricingInput{
		Currency:      "inr",
		UnitPrice:     800,
		DurationUnits: 3,
	})

	assert.Equal(t, float64(2400), breakdown.Base)
	assert.Equal(t, float64(2400), breakdown.Total)
	assert.Zero(t, breakdown.FeeTotal)
	assert.Zero(t, breakdown.AddonTotal)
}

func TestComputeTotalRoundsToWholeUnit(t *testing.T) {
	breakdown := ComputeTotal(PricingInput{
		Currency:      "inr",
		UnitPrice:     999.99,
		DurationUnits: 2,
		FixedFees:     []models.Fee{{Label: "service", Amount: 0.4}},
	})

	assert.Equal(t, float64(2000), breakdown.Total)
}

func TestComputeTotalIsDeterministic(t *testing.T) {
	in := PricingInput{
		Currency:      "inr",
		UnitPrice:     1500,
		DurationUnits: 2,
		FixedFees:     []models.Fee{{Label: "cleaning", Amount: 300}},
		Addons:        []models.Addon{{ID: "wifi", Price: 120}},
	}

	first := ComputeTotal(in)
	second := ComputeTotal(in)
	assert.Equal(t, first, second)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights("2026-09-10", "2026-09-13"))
	assert.Equal(t, 1, Nights("2026-09-10", "2026-09-11"))
	assert.Equal(t, 0, Nights("2026-09-13", "2026-09-10"))
	assert.Equal(t, 0, Nights("not-a-date", "2026-09-10"))
	assert.Equal(t, 0, Nights("2026-09-10", ""))
}

func TestDerivePricingHotelRooms(t *testing.T) {
	product := &models.Product{
		ID:   "hotel-1",
		Kind: models.ProductHotel,
		Units: []models.InventoryUnit{
			{ID: "room-101", Kind: "room", Price: 2000, Available: true},
			{ID: "room-102", Kind: "room", Price: 3500, Available: true},
		},
		CleaningFee: 500,
	}
	session := &models.WizardSession{
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-13",
		UnitIDs:  []string{"room-101"},
	}
	cfg, ok := ConfigFor(models.ProductHotel)
	require.True(t, ok)

	in, ok := derivePricing(cfg, session, product, "inr")
	require.True(t, ok)
	assert.Equal(t, float64(2000), in.UnitPrice)
	assert.Equal(t, 3, in.DurationUnits)
	require.Len(t, in.FixedFees, 1)
	assert.Equal(t, "cleaning", in.FixedFees[0].Label)

	// Two rooms sum their nightly rates.
	session.UnitIDs = []string{"room-101", "room-102"}
	in, ok = derivePricing(cfg, session, product, "inr")
	require.True(t, ok)
	assert.Equal(t, float64(5500), in.UnitPrice)
}

func TestDerivePricingBusCoachFare(t *testing.T) {
	product := &models.Product{
		ID:      "bus-1",
		Kind:    models.ProductBus,
		Coaches: []models.Coach{{ID: "coach-a", Price: 800, Capacity: 40}},
	}
	session := &models.WizardSession{
		CheckIn: "2026-09-10",
		CoachID: "coach-a",
		Party: []models.PassengerRecord{
			{Name: "Asha", Age: 34, Gender: "female"},
			{Name: "Ravi", Age: 36, Gender: "male"},
			{Name: "Meera", Age: 8, Gender: "female"},
		},
	}
	cfg, ok := ConfigFor(models.ProductBus)
	require.True(t, ok)

	in, ok := derivePricing(cfg, session, product, "inr")
	require.True(t, ok)
	assert.Equal(t, float64(800), in.UnitPrice)
	assert.Equal(t, 3, in.DurationUnits)
	assert.Equal(t, float64(2400), ComputeTotal(in).Total)
}

func TestDerivePricingCabHourly(t *testing.T) {
	product := &models.Product{ID: "cab-1", Kind: models.ProductCab, BasePrice: 350}
	session := &models.WizardSession{CheckIn: "2026-09-10", DurationHours: 4}
	cfg, ok := ConfigFor(models.ProductCab)
	require.True(t, ok)

	in, ok := derivePricing(cfg, session, product, "inr")
	require.True(t, ok)
	assert.Equal(t, float64(1400), ComputeTotal(in).Total)
}

func TestDerivePricingCruiseCabins(t *testing.T) {
	product := &models.Product{
		ID:      "cruise-1",
		Kind:    models.ProductCruise,
		Coaches: []models.Coach{{ID: "deck-b", Price: 0, Capacity: 80}},
		Units: []models.InventoryUnit{
			{ID: "cabin-1", Kind: "cabin", CoachID: "deck-b", Price: 4000, Available: true},
			{ID: "cabin-2", Kind: "cabin", CoachID: "deck-b", Price: 6000, Available: true},
		},
	}
	// One cabin per passenger, as the assignment step produces.
	session := &models.WizardSession{
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		CoachID:  "deck-b",
		Party: []models.PassengerRecord{
			{Name: "Asha", Age: 34, Gender: "female", UnitID: "cabin-1"},
			{Name: "Ravi", Age: 36, Gender: "male", UnitID: "cabin-2"},
		},
	}
	cfg, ok := ConfigFor(models.ProductCruise)
	require.True(t, ok)

	in, ok := derivePricing(cfg, session, product, "inr")
	require.True(t, ok)
	assert.Equal(t, float64(10000), in.UnitPrice)
	assert.Equal(t, 2, in.DurationUnits)

	// The assignment step keeps units distinct; if duplicated unit
	// references ever survive in stored session data, pricing counts
	// the cabin once rather than per passenger.
	session.Party[1].UnitID = "cabin-1"
	in, ok = derivePricing(cfg, session, product, "inr")
	require.True(t, ok)
	assert.Equal(t, float64(4000), in.UnitPrice)
}

func TestDerivePricingIncompleteSelections(t *testing.T) {
	product := &models.Product{
		ID:    "hotel-1",
		Kind:  models.ProductHotel,
		Units: []models.InventoryUnit{{ID: "room-101", Price: 2000, Available: true}},
	}
	cfg, ok := ConfigFor(models.ProductHotel)
	require.True(t, ok)

	// No dates yet.
	_, priced := derivePricing(cfg, &models.WizardSession{}, product, "inr")
	assert.False(t, priced)

	// Dates but no room selected.
	_, priced = derivePricing(cfg, &models.WizardSession{CheckIn: "2026-09-10", CheckOut: "2026-09-12"}, product, "inr")
	assert.False(t, priced)
}
