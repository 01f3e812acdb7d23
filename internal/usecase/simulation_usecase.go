package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSimulationNotFound  = errors.New("simulation not found")
	ErrInvalidSimulationID = errors.New("invalid simulation id")
	ErrInvalidListingID    = errors.New("invalid listing_id")
	ErrDraftNotComputed    = errors.New("draft has no computed result")
)

// ISimulationUseCase converts a fully computed draft into an append-only
// stored snapshot and reads snapshots back. Re-save prevention (dirty flag)
// is the wizard's responsibility; two saves of two computed drafts always
// create two records.

type ISimulationUseCase interface {
	SaveFromDraft(ctx context.Context, draft entities.SimulationDraft) (entities.StoredSimulation, error)
	GetByID(ctx context.Context, id string) (entities.StoredSimulation, error)
	ListByListingID(ctx context.Context, listingID string) ([]entities.StoredSimulation, error)
}

type SimulationUseCase struct {
	repo interfaces.ISimulationRepository
}

var _ ISimulationUseCase = (*SimulationUseCase)(nil)

func NewSimulationUseCase(repo interfaces.ISimulationRepository) *SimulationUseCase {
	return &SimulationUseCase{repo: repo}
}

func (u *SimulationUseCase) SaveFromDraft(ctx context.Context, draft entities.SimulationDraft) (entities.StoredSimulation, error) {
	if draft.Computed.ComputedAt.IsZero() {
		return entities.StoredSimulation{}, ErrDraftNotComputed
	}

	s := snapshotDraft(draft)
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[simulation][usecase] save failed session_id=%s err=%v", draft.SessionID, err)
		return entities.StoredSimulation{}, err
	}
	log.Printf("[simulation][usecase] save success session_id=%s simulation_id=%s approved=%t", draft.SessionID, created.ID, created.Approved)
	return created, nil
}

func (u *SimulationUseCase) GetByID(ctx context.Context, id string) (entities.StoredSimulation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.StoredSimulation{}, ErrInvalidSimulationID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.StoredSimulation{}, err
	}
	if s.ID == "" {
		return entities.StoredSimulation{}, ErrSimulationNotFound
	}
	return s, nil
}

func (u *SimulationUseCase) ListByListingID(ctx context.Context, listingID string) ([]entities.StoredSimulation, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, ErrInvalidListingID
	}
	return u.repo.ListByListingID(ctx, listingID)
}

// snapshotDraft flattens a draft into the record shape, resolving the tagged
// vehicle union into plain brand/model/year fields.
func snapshotDraft(d entities.SimulationDraft) entities.StoredSimulation {
	s := entities.StoredSimulation{
		ListingID: d.ListingID,

		TaxIdentifier: d.Personal.TaxIdentifier,
		DocumentKind:  d.Personal.DocumentKind,
		FullName:      d.Personal.FullName,
		Email:         d.Personal.Email,
		Phone:         d.Personal.Phone,

		VehicleKind:   d.VehicleKind,
		SelectionKind: d.Vehicle.Selection.Kind,
		Brand:         d.Vehicle.Selection.Brand(),
		Model:         d.Vehicle.Selection.Model(),
		ModelYear:     d.Vehicle.Selection.ModelYear(),
		Condition:     d.Vehicle.Condition,
		Transmission:  d.Vehicle.Transmission,
		FuelType:      d.Vehicle.FuelType,

		TimeToClose: d.Intent.TimeToClose,
		SellerType:  d.Intent.SellerType,

		FinancedAmount:   d.Computed.FinancedAmount,
		InstallmentValue: d.Computed.InstallmentValue,
		MonthlyRate:      d.Computed.MonthlyRate,
		Approved:         d.Computed.Approved,
	}

	if d.Vehicle.Selection.Kind == entities.VehicleSelectionCatalog && d.Vehicle.Selection.Catalog != nil && d.Vehicle.Selection.Catalog.Entry != nil {
		s.FipeCode = d.Vehicle.Selection.Catalog.Entry.FipeCode
	}
	if d.Vehicle.VehiclePrice != nil {
		s.VehiclePrice = *d.Vehicle.VehiclePrice
	}
	if d.Vehicle.DownPayment != nil {
		s.DownPayment = *d.Vehicle.DownPayment
	}
	if d.Vehicle.TermMonths != nil {
		s.TermMonths = *d.Vehicle.TermMonths
	}
	if d.Intent.HasSeenVehicle != nil {
		s.HasSeenVehicle = *d.Intent.HasSeenVehicle
	}
	return s
}
