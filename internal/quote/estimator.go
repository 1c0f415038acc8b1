package quote

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PropertyType is the closed set of property categories the pricing
// policy knows about. Anything else maps to PropertyUnknown, which
// carries the neutral multiplier.
type PropertyType string

const (
	PropertyResidential  PropertyType = "residential"
	PropertyCommercial   PropertyType = "commercial"
	PropertyAbandoned    PropertyType = "abandoned"
	PropertyConstruction PropertyType = "construction"
	PropertyUnknown      PropertyType = "unknown"
)

const (
	// BaseRatePerSquareFoot is the rate applied to every job before
	// the property-type multiplier.
	BaseRatePerSquareFoot = 2.50

	// HazardSurcharge is the flat fee for hazardous material handling.
	HazardSurcharge = 50.0

	// LawnPromoSurcharge is the flat fee for the lawn care add-on
	// at its promotional rate.
	LawnPromoSurcharge = 99.0

	defaultMultiplier = 1.0
)

// Disclaimer is appended to every quote detail the site renders.
const Disclaimer = "Final pricing may vary after an on-site assessment."

var multipliers = map[PropertyType]float64{
	PropertyResidential:  1.0,
	PropertyCommercial:   1.2,
	PropertyAbandoned:    1.5,
	PropertyConstruction: 0.8,
	PropertyUnknown:      defaultMultiplier,
}

// ParsePropertyType maps a form value onto the enum. Unrecognized
// values become PropertyUnknown rather than an error: the pricing
// policy treats them as a plain residential-rate job.
func ParsePropertyType(s string) PropertyType {
	switch t := PropertyType(strings.ToLower(strings.TrimSpace(s))); t {
	case PropertyResidential, PropertyCommercial, PropertyAbandoned, PropertyConstruction:
		return t
	default:
		return PropertyUnknown
	}
}

// Multiplier returns the pricing multiplier for the property type.
func (p PropertyType) Multiplier() float64 {
	if m, ok := multipliers[p]; ok {
		return m
	}
	return defaultMultiplier
}

// Multipliers returns a copy of the full multiplier table, keyed by
// the known property types, for rate-card display.
func Multipliers() map[PropertyType]float64 {
	out := make(map[PropertyType]float64, len(multipliers))
	for k, v := range multipliers {
		out[k] = v
	}
	return out
}

// Estimate computes the quoted amount for a job. size is square
// footage and must already be validated as a positive finite number
// by the caller; the function itself has no error conditions.
func Estimate(size float64, propertyType PropertyType, hasHazard, hasLawn bool) float64 {
	amount := size * BaseRatePerSquareFoot * propertyType.Multiplier()
	if hasHazard {
		amount += HazardSurcharge
	}
	if hasLawn {
		amount += LawnPromoSurcharge
	}
	return amount
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount as a display currency string,
// e.g. 1875 -> "$1,875.00".
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}

// DetailLines composes the human-readable fee disclosures for a quote.
// The disclaimer is always the last line.
func DetailLines(hasHazard, hasLawn bool) []string {
	var lines []string
	if hasHazard {
		lines = append(lines, "Includes a $50 hazardous material handling fee.")
	}
	if hasLawn {
		lines = append(lines, "Includes the $99 lawn care add-on at the promotional rate.")
	}
	return append(lines, Disclaimer)
}
