package wizard

import (
	"math"
	"time"

	"voyago/models"
)

// PricingInput holds the resolved inputs for one total computation.
type PricingInput struct {
	Currency      string
	UnitPrice     float64
	DurationUnits int
	FixedFees     []models.Fee
	Addons        []models.Addon
}

// ComputeTotal derives a price breakdown from its inputs:
//
//	unitPrice × durationUnits + Σ(fixed fees) + Σ(addon prices)
//
// rounded to the nearest whole currency unit. Pure function; callers
// recompute on every relevant state change instead of caching.
func ComputeTotal(in PricingInput) models.PriceBreakdown {
	breakdown := models.PriceBreakdown{
		Currency: in.Currency,
		Base:     in.UnitPrice * float64(in.DurationUnits),
		Fees:     in.FixedFees,
	}
	for _, f := range in.FixedFees {
		breakdown.FeeTotal += f.Amount
	}
	for _, a := range in.Addons {
		breakdown.AddonTotal += a.Price
	}
	breakdown.Total = math.Round(breakdown.Base + breakdown.FeeTotal + breakdown.AddonTotal)
	return breakdown
}

// Nights returns the number of nights between two "2006-01-02" dates, or
// 0 if either fails to parse or the range is not positive.
func Nights(checkIn, checkOut string) int {
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// derivePricing resolves a session's current selections into a
// PricingInput. It returns false until the session has enough state to
// price (units selected, coach chosen, party entered).
func derivePricing(cfg ProductConfig, s *models.WizardSession, product *models.Product, currency string) (PricingInput, bool) {
	in := PricingInput{Currency: currency}

	for _, id := range s.AddonIDs {
		if addon, ok := product.AddonByID(id); ok {
			in.Addons = append(in.Addons, addon)
		}
	}

	switch cfg.Duration {
	case DurationNights:
		nights := Nights(s.CheckIn, s.CheckOut)
		if nights == 0 {
			return in, false
		}
		in.DurationUnits = nights
		switch cfg.Assignment {
		case AssignUnits:
			if len(s.UnitIDs) == 0 {
				return in, false
			}
			for _, id := range s.UnitIDs {
				unit, ok := product.UnitByID(id)
				if !ok {
					return in, false
				}
				in.UnitPrice += unit.Price
			}
		case AssignPerPassenger:
			assigned := distinctAssignedUnits(s.Party)
			if len(assigned) == 0 {
				return in, false
			}
			for _, id := range assigned {
				unit, ok := product.UnitByID(id)
				if !ok {
					return in, false
				}
				in.UnitPrice += unit.Price
			}
		default:
			in.UnitPrice = product.BasePrice
		}
		in.FixedFees = lodgingFees(product)

	case DurationHours:
		if s.DurationHours == 0 {
			return in, false
		}
		in.UnitPrice = product.BasePrice
		in.DurationUnits = s.DurationHours

	case DurationPassengers:
		if len(s.Party) == 0 || s.CoachID == "" {
			return in, false
		}
		coach, ok := product.CoachByID(s.CoachID)
		if !ok {
			return in, false
		}
		in.UnitPrice = coach.Price
		in.DurationUnits = len(s.Party)
	}

	return in, in.UnitPrice > 0
}

func distinctAssignedUnits(party []models.PassengerRecord) []string {
	seen := make(map[string]bool, len(party))
	var ids []string
	for _, p := range party {
		if p.UnitID == "" || seen[p.UnitID] {
			continue
		}
		seen[p.UnitID] = true
		ids = append(ids, p.UnitID)
	}
	return ids
}

func lodgingFees(product *models.Product) []models.Fee {
	var fees []models.Fee
	if product.CleaningFee > 0 {
		fees = append(fees, models.Fee{Label: "cleaning", Amount: product.CleaningFee})
	}
	if product.ServiceFee > 0 {
		fees = append(fees, models.Fee{Label: "service", Amount: product.ServiceFee})
	}
	return fees
}
