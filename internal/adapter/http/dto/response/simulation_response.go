package response

import (
	"math"
	"time"

	"financiamento_xpto/internal/domain/entities"
)

type CatalogRefResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func FromCatalogRefs(refs []entities.CatalogRef) []CatalogRefResponse {
	out := make([]CatalogRefResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, CatalogRefResponse{Code: ref.Code, Name: ref.Name})
	}
	return out
}

type CatalogEntryResponse struct {
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

func FromCatalogEntry(e entities.VehicleCatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{
		BrandCode:      e.BrandCode,
		BrandName:      e.BrandName,
		ModelCode:      e.ModelCode,
		ModelName:      e.ModelName,
		YearCode:       e.YearCode,
		ModelYear:      e.ModelYear,
		FuelType:       e.FuelType,
		FipeCode:       e.FipeCode,
		ReferencePrice: roundTo2Decimals(e.ReferencePrice),
	}
}

type ComputedResultResponse struct {
	FinancedAmount   float64   `json:"financed_amount"`
	InstallmentValue float64   `json:"installment_value"`
	MonthlyRate      float64   `json:"monthly_rate"`
	Approved         bool      `json:"approved"`
	ComputedAt       time.Time `json:"computed_at"`
}

// DraftResponse mirrors the wizard session state. The Computed block is only
// present after the session reached the result step at least once.
type DraftResponse struct {
	SessionID   string `json:"session_id"`
	ListingID   string `json:"listing_id,omitempty"`
	VehicleKind string `json:"vehicle_kind"`
	Step        int    `json:"step"`

	Personal entities.PersonalInfo   `json:"personal"`
	Vehicle  entities.VehicleInfo    `json:"vehicle"`
	Intent   entities.ClosingIntent  `json:"intent"`
	Computed *ComputedResultResponse `json:"computed,omitempty"`

	Dirty             bool   `json:"dirty"`
	SavedSimulationID string `json:"saved_simulation_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDraft(d entities.SimulationDraft) DraftResponse {
	resp := DraftResponse{
		SessionID:         d.SessionID,
		ListingID:         d.ListingID,
		VehicleKind:       string(d.VehicleKind),
		Step:              int(d.Step),
		Personal:          d.Personal,
		Vehicle:           d.Vehicle,
		Intent:            d.Intent,
		Dirty:             d.Dirty,
		SavedSimulationID: d.SavedSimulationID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if !d.Computed.ComputedAt.IsZero() {
		resp.Computed = &ComputedResultResponse{
			FinancedAmount:   roundTo2Decimals(d.Computed.FinancedAmount),
			InstallmentValue: roundTo2Decimals(d.Computed.InstallmentValue),
			MonthlyRate:      d.Computed.MonthlyRate,
			Approved:         d.Computed.Approved,
			ComputedAt:       d.Computed.ComputedAt,
		}
	}
	return resp
}

type SimulationResponse struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id,omitempty"`

	TaxIdentifier string `json:"tax_identifier"`
	DocumentKind  string `json:"document_kind"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`

	VehicleKind   string  `json:"vehicle_kind"`
	SelectionKind string  `json:"selection_kind"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	ModelYear     int     `json:"model_year"`
	FipeCode      string  `json:"fipe_code,omitempty"`
	FuelType      string  `json:"fuel_type,omitempty"`
	Condition     string  `json:"condition"`
	Transmission  string  `json:"transmission"`
	VehiclePrice  float64 `json:"vehicle_price"`
	DownPayment   float64 `json:"down_payment"`
	TermMonths    int     `json:"term_months"`

	TimeToClose    string `json:"time_to_close"`
	HasSeenVehicle bool   `json:"has_seen_vehicle"`
	SellerType     string `json:"seller_type"`

	FinancedAmount   float64 `json:"financed_amount"`
	InstallmentValue float64 `json:"installment_value"`
	MonthlyRate      float64 `json:"monthly_rate"`
	Approved         bool    `json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}

func FromSimulation(s entities.StoredSimulation) SimulationResponse {
	return SimulationResponse{
		ID:               s.ID,
		ListingID:        s.ListingID,
		TaxIdentifier:    s.TaxIdentifier,
		DocumentKind:     string(s.DocumentKind),
		FullName:         s.FullName,
		Email:            s.Email,
		Phone:            s.Phone,
		VehicleKind:      string(s.VehicleKind),
		SelectionKind:    string(s.SelectionKind),
		Brand:            s.Brand,
		Model:            s.Model,
		ModelYear:        s.ModelYear,
		FipeCode:         s.FipeCode,
		FuelType:         s.FuelType,
		Condition:        string(s.Condition),
		Transmission:     string(s.Transmission),
		VehiclePrice:     roundTo2Decimals(s.VehiclePrice),
		DownPayment:      roundTo2Decimals(s.DownPayment),
		TermMonths:       s.TermMonths,
		TimeToClose:      s.TimeToClose,
		HasSeenVehicle:   s.HasSeenVehicle,
		SellerType:       s.SellerType,
		FinancedAmount:   roundTo2Decimals(s.FinancedAmount),
		InstallmentValue: roundTo2Decimals(s.InstallmentValue),
		MonthlyRate:      s.MonthlyRate,
		Approved:         s.Approved,
		CreatedAt:        s.CreatedAt,
	}
}

func FromSimulations(sims []entities.StoredSimulation) []SimulationResponse {
	out := make([]SimulationResponse, 0, len(sims))
	for _, s := range sims {
		out = append(out, FromSimulation(s))
	}
	return out
}

type SaveResponse struct {
	SimulationID string        `json:"simulation_id"`
	Draft        DraftResponse `json:"draft"`
}

type ValidateDocumentResponse struct {
	Valid bool   `json:"valid"`
	Kind  string `json:"kind"`
}

func roundTo2Decimals(v float64) float64 {
	return math.Round(v*100) / 100
}
