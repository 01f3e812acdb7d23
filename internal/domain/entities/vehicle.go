package entities

import "financiamento_xpto/internal/domain/vehicle"

// VehicleKind selects which valuation table the pricing source serves.

type VehicleKind string

const (
	VehicleKindCar        VehicleKind = "cars"
	VehicleKindMotorcycle VehicleKind = "motorcycles"
	VehicleKindTruck      VehicleKind = "trucks"
)

// VehicleCondition distinguishes new from used stock.

type VehicleCondition string

const (
	VehicleConditionNew  VehicleCondition = "new"
	VehicleConditionUsed VehicleCondition = "used"
)

// CatalogRef is an item of a single cascade level (brand, model or
// model-year) as listed by the pricing source.
type CatalogRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// VehicleCatalogEntry is the immutable result of a completed pricing cascade,
// produced once per resolved (kind, brand, model, year) triple and cached by
// that key path.
type VehicleCatalogEntry struct {
	BrandCode      string  `json:"brand_code"`
	BrandName      string  `json:"brand_name"`
	ModelCode      string  `json:"model_code"`
	ModelName      string  `json:"model_name"`
	YearCode       string  `json:"year_code"`
	ModelYear      int     `json:"model_year"`
	FuelType       string  `json:"fuel_type"`
	FipeCode       string  `json:"fipe_code"`
	ReferencePrice float64 `json:"reference_price"`
}

// VehicleSelectionKind tags which provenance of vehicle data is
// authoritative for a draft.

type VehicleSelectionKind string

const (
	VehicleSelectionCatalog VehicleSelectionKind = "catalog"
	VehicleSelectionManual  VehicleSelectionKind = "manual"
)

// CatalogSelection holds the cascade codes chosen so far plus the resolved
// entry once the price lookup completed. A cleared downstream level is the
// empty string; Entry is nil until resolution.
type CatalogSelection struct {
	BrandCode string               `json:"brand_code"`
	ModelCode string               `json:"model_code"`
	YearCode  string               `json:"year_code"`
	Entry     *VehicleCatalogEntry `json:"entry,omitempty"`
}

// ManualSelection is the free-form fallback when the user abandons the
// cascade (pricing source down, vehicle not listed).
type ManualSelection struct {
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	ModelYear int     `json:"model_year"`
	Price     float64 `json:"price"`
}

// VehicleSelection is a tagged union over the two provenances. Exactly one of
// Catalog/Manual is populated according to Kind; switching kinds discards the
// other branch so no stale field can masquerade as authoritative.
type VehicleSelection struct {
	Kind    VehicleSelectionKind `json:"kind"`
	Catalog *CatalogSelection    `json:"catalog,omitempty"`
	Manual  *ManualSelection     `json:"manual,omitempty"`
}

// Brand returns the authoritative brand name for whichever provenance is
// active, or "" when not yet known.
func (s VehicleSelection) Brand() string {
	switch s.Kind {
	case VehicleSelectionCatalog:
		if s.Catalog != nil && s.Catalog.Entry != nil {
			return s.Catalog.Entry.BrandName
		}
	case VehicleSelectionManual:
		if s.Manual != nil {
			return s.Manual.Brand
		}
	}
	return ""
}

// Model returns the authoritative model name, or "".
func (s VehicleSelection) Model() string {
	switch s.Kind {
	case VehicleSelectionCatalog:
		if s.Catalog != nil && s.Catalog.Entry != nil {
			return s.Catalog.Entry.ModelName
		}
	case VehicleSelectionManual:
		if s.Manual != nil {
			return s.Manual.Model
		}
	}
	return ""
}

// ModelYear returns the authoritative model year, or 0.
func (s VehicleSelection) ModelYear() int {
	switch s.Kind {
	case VehicleSelectionCatalog:
		if s.Catalog != nil && s.Catalog.Entry != nil {
			return s.Catalog.Entry.ModelYear
		}
	case VehicleSelectionManual:
		if s.Manual != nil {
			return s.Manual.ModelYear
		}
	}
	return 0
}

// Complete reports whether the active provenance carries everything step 2
// needs: a resolved entry for catalog, brand+model+year for manual.
func (s VehicleSelection) Complete() bool {
	switch s.Kind {
	case VehicleSelectionCatalog:
		return s.Catalog != nil && s.Catalog.Entry != nil
	case VehicleSelectionManual:
		return s.Manual != nil && s.Manual.Brand != "" && s.Manual.Model != "" && s.Manual.ModelYear > 0
	default:
		return false
	}
}

// VehicleInfo is the vehicle section of a draft. Price, down payment and term
// are pointers so "not filled in yet" is distinguishable from a legitimate
// zero down payment.
type VehicleInfo struct {
	Selection    VehicleSelection     `json:"selection"`
	Condition    VehicleCondition     `json:"condition"`
	Transmission vehicle.Transmission `json:"transmission"`
	FuelType     string               `json:"fuel_type"`
	VehiclePrice *float64             `json:"vehicle_price"`
	DownPayment  *float64             `json:"down_payment"`
	TermMonths   *int                 `json:"term_months"`
}
