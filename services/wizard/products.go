package wizard

import "voyago/models"

// DurationUnit determines how a session's duration multiplies into the
// price: nights for lodging, hours for cabs, passenger count for
// seat-based transport.
type DurationUnit string

const (
	DurationNights     DurationUnit = "nights"
	DurationHours      DurationUnit = "hours"
	DurationPassengers DurationUnit = "passengers"
)

// AssignmentMode describes how inventory units bind to a session.
type AssignmentMode string

const (
	// AssignNone books the product as a whole (stays, cabs).
	AssignNone AssignmentMode = "none"
	// AssignUnits selects a set of units for the whole party (hotel rooms).
	AssignUnits AssignmentMode = "units"
	// AssignPerPassenger binds one distinct unit to each passenger
	// (bus/train seats, cruise cabins).
	AssignPerPassenger AssignmentMode = "per_passenger"
)

// ProductConfig parametrizes the wizard engine for one travel product.
// All six products run the same engine; only this table differs.
type ProductConfig struct {
	Kind        models.ProductKind
	Steps       []models.StepKind
	Duration    DurationUnit
	UnitKind    string
	Assignment  AssignmentMode
	UsesCoaches bool
}

var productConfigs = map[models.ProductKind]ProductConfig{
	models.ProductHotel: {
		Kind:       models.ProductHotel,
		Steps:      []models.StepKind{models.StepDates, models.StepParty, models.StepAssignment, models.StepPayment},
		Duration:   DurationNights,
		UnitKind:   "room",
		Assignment: AssignUnits,
	},
	models.ProductStay: {
		Kind:       models.ProductStay,
		Steps:      []models.StepKind{models.StepDates, models.StepParty, models.StepPayment},
		Duration:   DurationNights,
		UnitKind:   "home",
		Assignment: AssignNone,
	},
	models.ProductBus: {
		Kind:        models.ProductBus,
		Steps:       []models.StepKind{models.StepDates, models.StepParty, models.StepAssignment, models.StepPayment},
		Duration:    DurationPassengers,
		UnitKind:    "seat",
		Assignment:  AssignPerPassenger,
		UsesCoaches: true,
	},
	models.ProductTrain: {
		Kind:        models.ProductTrain,
		Steps:       []models.StepKind{models.StepDates, models.StepParty, models.StepAssignment, models.StepPayment},
		Duration:    DurationPassengers,
		UnitKind:    "seat",
		Assignment:  AssignPerPassenger,
		UsesCoaches: true,
	},
	models.ProductCab: {
		Kind:       models.ProductCab,
		Steps:      []models.StepKind{models.StepDates, models.StepParty, models.StepPayment},
		Duration:   DurationHours,
		UnitKind:   "vehicle",
		Assignment: AssignNone,
	},
	models.ProductCruise: {
		Kind:        models.ProductCruise,
		Steps:       []models.StepKind{models.StepDates, models.StepParty, models.StepAssignment, models.StepPayment},
		Duration:    DurationNights,
		UnitKind:    "cabin",
		Assignment:  AssignPerPassenger,
		UsesCoaches: true,
	},
}

// ConfigFor returns the wizard configuration for a product kind.
func ConfigFor(kind models.ProductKind) (ProductConfig, bool) {
	cfg, ok := productConfigs[kind]
	return cfg, ok
}
