package vehicle

import "strings"

// Transmission is the gearbox attribute inferred or supplied for a vehicle.

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// luxuryBrands always infer an automatic gearbox regardless of model or year.
var luxuryBrands = map[string]bool{
	"bmw":        true,
	"mercedes":   true,
	"audi":       true,
	"lexus":      true,
	"porsche":    true,
	"land rover": true,
	"jaguar":     true,
}

// premiumBrands are not automatic-only but dropped manual gearboxes much
// earlier than the mainstream market; they lower the year threshold in the
// banding fallback.
var premiumBrands = map[string]bool{
	"volvo": true,
	"mini":  true,
	"jeep":  true,
}

// automaticModelHints are model-name substrings of trims that historically
// shipped automatic-only. Disjoint from manualModelHints.
var automaticModelHints = []string{
	"tiptronic",
	"multitronic",
	"s tronic",
	"dsg",
	"cvt",
	"aut.",
	"automatico",
	"automático",
}

// manualModelHints are economy/compact models that historically shipped
// manual-only in the Brazilian market.
var manualModelHints = []string{
	"mecanico",
	"mecânico",
	"uno mille",
	"gol 1.0",
	"palio fire",
	"celta",
	"ka 1.0",
	"kombi",
	"fusca",
}

// Year bands for the no-rule-matched fallback.
const (
	automaticYearThreshold        = 2018
	premiumAutomaticYearThreshold = 2005
)

// InferTransmission guesses a vehicle's gearbox from brand, model and model
// year when the pricing source does not supply one.
//
// Three tiers, first match wins:
//  1. luxury brand => Automatic
//  2. model-name substring hint => Automatic or Manual
//  3. year banding: >= 2018 Automatic, otherwise Manual, with the threshold
//     lowered to 2005 for premium brands
//
// This is a best-effort classifier. Its output pre-fills a user-editable
// field and is never enforced.
func InferTransmission(brand, model string, modelYear int) Transmission {
	b := strings.ToLower(strings.TrimSpace(brand))
	m := strings.ToLower(strings.TrimSpace(model))

	if brandInSet(b, luxuryBrands) {
		return TransmissionAutomatic
	}

	for _, hint := range automaticModelHints {
		if strings.Contains(m, hint) {
			return TransmissionAutomatic
		}
	}
	for _, hint := range manualModelHints {
		if strings.Contains(m, hint) {
			return TransmissionManual
		}
	}

	threshold := automaticYearThreshold
	if brandInSet(b, premiumBrands) {
		threshold = premiumAutomaticYearThreshold
	}
	if modelYear >= threshold {
		return TransmissionAutomatic
	}
	return TransmissionManual
}

// brandInSet matches exactly or by known prefix. Pricing sources name some
// makes with suffixes ("Mercedes-Benz", "BMW Motorrad").
func brandInSet(brand string, set map[string]bool) bool {
	if set[brand] {
		return true
	}
	for known := range set {
		if strings.HasPrefix(brand, known) {
			return true
		}
	}
	return false
}
