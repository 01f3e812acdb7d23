package entities

import (
	"time"

	"financiamento_xpto/internal/domain/document"
	"financiamento_xpto/internal/domain/vehicle"
)

// WizardStep enumerates the ordered steps of the simulation wizard.

type WizardStep int

const (
	StepPersonalInfo WizardStep = iota + 1
	StepVehicleInfo
	StepClosingIntent
	StepResult
)

func (s WizardStep) Valid() bool {
	return s >= StepPersonalInfo && s <= StepResult
}

// PersonalInfo is the step-1 section of a draft. TaxIdentifier holds digits
// only; formatting is stripped on ingestion.
type PersonalInfo struct {
	TaxIdentifier string        `json:"tax_identifier"`
	DocumentKind  document.Kind `json:"document_kind"`
	FullName      string        `json:"full_name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
}

// ClosingIntent is the step-3 section. HasSeenVehicle is a pointer because
// the gate requires the field to be answered, and "no" is an answer.
type ClosingIntent struct {
	TimeToClose    string `json:"time_to_close"`
	HasSeenVehicle *bool  `json:"has_seen_vehicle"`
	SellerType     string `json:"seller_type"`
}

// ComputedResult is the financial output block, populated only by an explicit
// computation pass on entering the result step (never implicitly).
type ComputedResult struct {
	FinancedAmount   float64 `json:"financed_amount"`
	InstallmentValue float64 `json:"installment_value"`
	MonthlyRate      float64 `json:"monthly_rate"`
	Approved         bool    `json:"approved"`
	ComputedAt       time.Time
}

// SimulationDraft is the mutable working state of a wizard session. It lives
// only in memory; its lifetime ends on restart or session expiry, and it is
// never persisted mid-flight. A save snapshots it into a StoredSimulation.
//
// Dirty is true whenever a financial input (vehicle price, down payment,
// term) changed since the last successful save; non-financial edits leave it
// untouched.
type SimulationDraft struct {
	SessionID   string      `json:"session_id"`
	ListingID   string      `json:"listing_id,omitempty"`
	VehicleKind VehicleKind `json:"vehicle_kind"`
	Step        WizardStep  `json:"step"`

	Personal PersonalInfo   `json:"personal"`
	Vehicle  VehicleInfo    `json:"vehicle"`
	Intent   ClosingIntent  `json:"intent"`
	Computed ComputedResult `json:"computed"`

	Dirty             bool   `json:"dirty"`
	SavedSimulationID string `json:"saved_simulation_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoredSimulation is the append-only persisted snapshot of a draft at save
// time. Records are never updated or deleted by this service; a save after
// further edits creates a new record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (listing_id-index): listing_id
type StoredSimulation struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id,omitempty"`

	TaxIdentifier string        `json:"tax_identifier"`
	DocumentKind  document.Kind `json:"document_kind"`
	FullName      string        `json:"full_name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`

	VehicleKind   VehicleKind          `json:"vehicle_kind"`
	SelectionKind VehicleSelectionKind `json:"selection_kind"`
	Brand         string               `json:"brand"`
	Model         string               `json:"model"`
	ModelYear     int                  `json:"model_year"`
	FipeCode      string               `json:"fipe_code,omitempty"`
	FuelType      string               `json:"fuel_type,omitempty"`
	Condition     VehicleCondition     `json:"condition"`
	Transmission  vehicle.Transmission `json:"transmission"`
	VehiclePrice  float64              `json:"vehicle_price"`
	DownPayment   float64              `json:"down_payment"`
	TermMonths    int                  `json:"term_months"`

	TimeToClose    string `json:"time_to_close"`
	HasSeenVehicle bool   `json:"has_seen_vehicle"`
	SellerType     string `json:"seller_type"`

	FinancedAmount   float64 `json:"financed_amount"`
	InstallmentValue float64 `json:"installment_value"`
	MonthlyRate      float64 `json:"monthly_rate"`
	Approved         bool    `json:"approved"`

	CreatedAt time.Time `json:"created_at"`
}
