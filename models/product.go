package models

import "time"

// ProductKind identifies one of the bookable travel products.
type ProductKind string

const (
	ProductHotel  ProductKind = "hotel"
	ProductStay   ProductKind = "stay"
	ProductBus    ProductKind = "bus"
	ProductTrain  ProductKind = "train"
	ProductCab    ProductKind = "cab"
	ProductCruise ProductKind = "cruise"
)

// IsValid returns true if the kind is a recognized travel product.
func (k ProductKind) IsValid() bool {
	switch k {
	case ProductHotel, ProductStay, ProductBus, ProductTrain, ProductCab, ProductCruise:
		return true
	}
	return false
}

// String returns the string representation of the kind.
func (k ProductKind) String() string { return string(k) }

// Coach is a fare class/tier (e.g. Sleeper, Economy) against which
// inventory units and price are quoted.
type Coach struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Capacity int     `bson:"capacity" json:"capacity"`
}

// InventoryUnit is a bookable sub-resource (room, seat, cabin) with a
// capacity and price. Units are read-only catalog data; a wizard session
// only ever copies the unit ID.
type InventoryUnit struct {
	ID        string  `bson:"id" json:"id"`
	Label     string  `bson:"label" json:"label"`
	Kind      string  `bson:"kind" json:"kind"` // "room", "seat", "cabin", "vehicle"
	CoachID   string  `bson:"coach_id,omitempty" json:"coachId,omitempty"`
	Capacity  int     `bson:"capacity" json:"capacity"`
	Price     float64 `bson:"price" json:"price"`
	Available bool    `bson:"available" json:"available"`
}

// Addon is an optional purchasable extra (breakfast, extra luggage, wifi).
type Addon struct {
	ID    string  `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Product is the catalog aggregate for one bookable travel product.
// Coaches are only populated for seat-based transport; fees only for
// lodging-style products.
type Product struct {
	ID          string          `bson:"id" json:"id"`
	Kind        ProductKind     `bson:"kind" json:"kind"`
	Name        string          `bson:"name" json:"name"`
	Location    string          `bson:"location" json:"location"` // address or route description
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	Coaches     []Coach         `bson:"coaches,omitempty" json:"coaches,omitempty"`
	Units       []InventoryUnit `bson:"units,omitempty" json:"units,omitempty"`
	Addons      []Addon         `bson:"addons,omitempty" json:"addons,omitempty"`
	BasePrice   float64         `bson:"base_price,omitempty" json:"basePrice,omitempty"` // hourly rate for cab-style products
	CleaningFee float64         `bson:"cleaning_fee,omitempty" json:"cleaningFee,omitempty"`
	ServiceFee  float64         `bson:"service_fee,omitempty" json:"serviceFee,omitempty"`
	Capacity    int             `bson:"capacity" json:"capacity"` // maximum party size
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// CoachByID returns the coach with the given ID, if present.
func (p *Product) CoachByID(id string) (Coach, bool) {
	for _, c := range p.Coaches {
		if c.ID == id {
			return c, true
		}
	}
	return Coach{}, false
}

// UnitByID returns the inventory unit with the given ID, if present.
func (p *Product) UnitByID(id string) (InventoryUnit, bool) {
	for _, u := range p.Units {
		if u.ID == id {
			return u, true
		}
	}
	return InventoryUnit{}, false
}

// AddonByID returns the addon with the given ID, if present.
func (p *Product) AddonByID(id string) (Addon, bool) {
	for _, a := range p.Addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}
