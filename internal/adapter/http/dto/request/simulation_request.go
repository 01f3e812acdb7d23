package request

import (
	"strings"

	"financiamento_xpto/internal/domain/document"
	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/domain/vehicle"
	"financiamento_xpto/internal/usecase"
)

// CreateSessionRequest starts a wizard session. All fields are optional: a
// session may start from a marketplace listing (listing_id set), from a
// logged-in user (user_id set, used for pre-fill), or blank.
type CreateSessionRequest struct {
	ListingID   string `json:"listing_id"`
	UserID      string `json:"user_id"`
	VehicleKind string `json:"vehicle_kind"`
}

func (r CreateSessionRequest) ToInput() usecase.CreateSessionInput {
	return usecase.CreateSessionInput{
		ListingID:   strings.TrimSpace(r.ListingID),
		UserID:      strings.TrimSpace(r.UserID),
		VehicleKind: entities.VehicleKind(strings.TrimSpace(r.VehicleKind)),
	}
}

// PersonalRequest is a partial update: absent fields leave the section
// untouched, which is what lets the frontend save field-by-field.
type PersonalRequest struct {
	TaxIdentifier *string `json:"tax_identifier"`
	DocumentKind  *string `json:"document_kind"`
	FullName      *string `json:"full_name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
}

func (r PersonalRequest) ToInput() usecase.PersonalInput {
	in := usecase.PersonalInput{
		TaxIdentifier: r.TaxIdentifier,
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
	}
	if r.DocumentKind != nil {
		kind := document.Kind(strings.TrimSpace(*r.DocumentKind))
		in.DocumentKind = &kind
	}
	return in
}

// VehicleRequest carries either catalog codes or manual fields plus the
// shared financial inputs. Mixing catalog and manual fields in one request is
// rejected downstream.
type VehicleRequest struct {
	SelectionKind *string `json:"selection_kind"`

	BrandCode *string `json:"brand_code"`
	ModelCode *string `json:"model_code"`
	YearCode  *string `json:"year_code"`

	ManualBrand *string  `json:"manual_brand"`
	ManualModel *string  `json:"manual_model"`
	ManualYear  *int     `json:"manual_year"`
	ManualPrice *float64 `json:"manual_price"`

	Condition    *string `json:"condition"`
	Transmission *string `json:"transmission"`
	FuelType     *string `json:"fuel_type"`

	VehiclePrice *float64 `json:"vehicle_price"`
	DownPayment  *float64 `json:"down_payment"`
	TermMonths   *int     `json:"term_months"`
}

func (r VehicleRequest) ToInput() usecase.VehicleInput {
	in := usecase.VehicleInput{
		BrandCode:    r.BrandCode,
		ModelCode:    r.ModelCode,
		YearCode:     r.YearCode,
		ManualBrand:  r.ManualBrand,
		ManualModel:  r.ManualModel,
		ManualYear:   r.ManualYear,
		ManualPrice:  r.ManualPrice,
		FuelType:     r.FuelType,
		VehiclePrice: r.VehiclePrice,
		DownPayment:  r.DownPayment,
		TermMonths:   r.TermMonths,
	}
	if r.SelectionKind != nil {
		kind := entities.VehicleSelectionKind(strings.TrimSpace(*r.SelectionKind))
		in.SelectionKind = &kind
	}
	if r.Condition != nil {
		cond := entities.VehicleCondition(strings.TrimSpace(*r.Condition))
		in.Condition = &cond
	}
	if r.Transmission != nil {
		tr := vehicle.Transmission(strings.TrimSpace(*r.Transmission))
		in.Transmission = &tr
	}
	return in
}

type IntentRequest struct {
	TimeToClose    *string `json:"time_to_close"`
	HasSeenVehicle *bool   `json:"has_seen_vehicle"`
	SellerType     *string `json:"seller_type"`
}

func (r IntentRequest) ToInput() usecase.IntentInput {
	return usecase.IntentInput{
		TimeToClose:    r.TimeToClose,
		HasSeenVehicle: r.HasSeenVehicle,
		SellerType:     r.SellerType,
	}
}

// RecomputeRequest tweaks the financial knobs on the result step without
// leaving it. An empty body recomputes with the current values.
type RecomputeRequest struct {
	DownPayment *float64 `json:"down_payment"`
	TermMonths  *int     `json:"term_months"`
}

func (r RecomputeRequest) ToInput() usecase.WhatIfInput {
	return usecase.WhatIfInput{
		DownPayment: r.DownPayment,
		TermMonths:  r.TermMonths,
	}
}

type BackRequest struct {
	Step int `json:"step" binding:"required"`
}

type ValidateDocumentRequest struct {
	Document string `json:"document" binding:"required"`
	Kind     string `json:"kind" binding:"required"`
}
