package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"financiamento_xpto/internal/domain/document"
	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/domain/finance"
	"financiamento_xpto/internal/domain/vehicle"
	"financiamento_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound      = errors.New("wizard session not found")
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrStepIncomplete       = errors.New("current step is incomplete")
	ErrInvalidTransition    = errors.New("invalid wizard transition")
	ErrWrongStep            = errors.New("operation not allowed on current step")
	ErrInvalidDocumentKind  = errors.New("invalid document kind")
	ErrInvalidSelection     = errors.New("invalid vehicle selection")
	ErrComputeFailed        = errors.New("unable to compute simulation")
	ErrSimulationUnsaveable = errors.New("simulation not in a saveable state")
	ErrAlreadySaved         = errors.New("simulation already saved")
)

const (
	defaultMonthlyRatePct = 1.99
	sessionIdleTTL        = 2 * time.Hour
	sessionSweepInterval  = 15 * time.Minute
)

// CreateSessionInput seeds a new wizard session. UserID is optional; when
// present the personal step is pre-filled from the profile store. ListingID
// ties the eventual snapshot to a marketplace listing.
type CreateSessionInput struct {
	ListingID   string
	UserID      string
	VehicleKind entities.VehicleKind
}

// PersonalInput is a partial update for step 1. Nil fields are left alone.
type PersonalInput struct {
	TaxIdentifier *string
	DocumentKind  *document.Kind
	FullName      *string
	Email         *string
	Phone         *string
}

// VehicleInput is a partial update for step 2. Catalog codes drive the
// cascade; manual fields drive the fallback provenance. Nil fields are left
// alone.
type VehicleInput struct {
	SelectionKind *entities.VehicleSelectionKind

	BrandCode *string
	ModelCode *string
	YearCode  *string

	ManualBrand *string
	ManualModel *string
	ManualYear  *int
	ManualPrice *float64

	Condition    *entities.VehicleCondition
	Transmission *vehicle.Transmission
	FuelType     *string

	VehiclePrice *float64
	DownPayment  *float64
	TermMonths   *int
}

// IntentInput is a partial update for step 3.
type IntentInput struct {
	TimeToClose    *string
	HasSeenVehicle *bool
	SellerType     *string
}

// WhatIfInput adjusts the two what-if knobs available on the result step.
type WhatIfInput struct {
	DownPayment *float64
	TermMonths  *int
}

// IWizardUseCase is the finite-state controller of the simulation wizard.
//
// Steps: PersonalInfo(1) -> VehicleInfo(2) -> ClosingIntent(3) -> Result(4).
// Forward transitions are gated on the current step's validity predicate;
// backward navigation reaches any prior step; Restart from Result discards
// the draft. Entering Result always runs exactly one computation pass, so
// stale computed values are never served against edited inputs.

type IWizardUseCase interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (entities.SimulationDraft, error)
	GetSession(ctx context.Context, sessionID string) (entities.SimulationDraft, error)
	UpdatePersonal(ctx context.Context, sessionID string, input PersonalInput) (entities.SimulationDraft, error)
	UpdateVehicle(ctx context.Context, sessionID string, input VehicleInput) (entities.SimulationDraft, error)
	UpdateIntent(ctx context.Context, sessionID string, input IntentInput) (entities.SimulationDraft, error)
	Advance(ctx context.Context, sessionID string) (entities.SimulationDraft, error)
	Back(ctx context.Context, sessionID string, to entities.WizardStep) (entities.SimulationDraft, error)
	Restart(ctx context.Context, sessionID string) (entities.SimulationDraft, error)
	Recompute(ctx context.Context, sessionID string, input WhatIfInput) (entities.SimulationDraft, error)
	Save(ctx context.Context, sessionID string) (entities.StoredSimulation, entities.SimulationDraft, error)
}

// wizardSession wraps a draft with its serialization lock and the cascade
// generation counter used to discard superseded catalog resolutions.
type wizardSession struct {
	mu         sync.Mutex
	draft      entities.SimulationDraft
	cascadeGen uint64
	lastAccess time.Time
}

type WizardUseCase struct {
	mu       sync.RWMutex
	sessions map[string]*wizardSession

	profiles   interfaces.IProfileStore
	pricing    IPricingUseCase
	store      ISimulationUseCase
	ratePct    float64
	idleTTL    time.Duration
	stopSweep  chan struct{}
	sweepOnce  sync.Once
	sweepEvery time.Duration
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(profiles interfaces.IProfileStore, pricing IPricingUseCase, store ISimulationUseCase, monthlyRatePct float64) *WizardUseCase {
	if monthlyRatePct <= 0 {
		monthlyRatePct = defaultMonthlyRatePct
	}
	u := &WizardUseCase{
		sessions:   make(map[string]*wizardSession),
		profiles:   profiles,
		pricing:    pricing,
		store:      store,
		ratePct:    monthlyRatePct,
		idleTTL:    sessionIdleTTL,
		stopSweep:  make(chan struct{}),
		sweepEvery: sessionSweepInterval,
	}
	go u.sweepLoop()
	return u
}

// Stop terminates the idle-session sweeper.
func (u *WizardUseCase) Stop() {
	u.sweepOnce.Do(func() { close(u.stopSweep) })
}

func (u *WizardUseCase) sweepLoop() {
	ticker := time.NewTicker(u.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			u.sweep()
		case <-u.stopSweep:
			return
		}
	}
}

func (u *WizardUseCase) sweep() {
	now := time.Now()
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, s := range u.sessions {
		if now.Sub(s.lastAccess) > u.idleTTL {
			delete(u.sessions, id)
			log.Printf("[wizard][usecase] expired idle session session_id=%s", id)
		}
	}
}

func (u *WizardUseCase) CreateSession(ctx context.Context, input CreateSessionInput) (entities.SimulationDraft, error) {
	kind := input.VehicleKind
	if kind == "" {
		kind = entities.VehicleKindCar
	}
	if !validVehicleKind(kind) {
		return entities.SimulationDraft{}, ErrInvalidVehicleKind
	}

	now := time.Now().UTC()
	draft := entities.SimulationDraft{
		SessionID:   uuid.NewString(),
		ListingID:   strings.TrimSpace(input.ListingID),
		VehicleKind: kind,
		Step:        entities.StepPersonalInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if userID := strings.TrimSpace(input.UserID); userID != "" && u.profiles != nil {
		profile, err := u.profiles.GetByUserID(ctx, userID)
		if err != nil {
			// Pre-fill is best effort: the wizard must start even when the
			// profile store is unreachable.
			log.Printf("[wizard][usecase] profile prefill failed user_id=%s err=%v", userID, err)
		} else if profile.UserID != "" {
			draft.Personal = entities.PersonalInfo{
				TaxIdentifier: document.Digits(profile.TaxIdentifier),
				DocumentKind:  profile.DocumentKind,
				FullName:      profile.FullName,
				Email:         profile.Email,
				Phone:         profile.Phone,
			}
		}
	}

	u.mu.Lock()
	u.sessions[draft.SessionID] = &wizardSession{draft: draft, lastAccess: time.Now()}
	u.mu.Unlock()

	log.Printf("[wizard][usecase] session created session_id=%s listing_id=%s kind=%s", draft.SessionID, draft.ListingID, kind)
	return draft, nil
}

func (u *WizardUseCase) GetSession(_ context.Context, sessionID string) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, nil
}

func (u *WizardUseCase) UpdatePersonal(_ context.Context, sessionID string, input PersonalInput) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Step != entities.StepPersonalInfo {
		return entities.SimulationDraft{}, ErrWrongStep
	}

	if input.DocumentKind != nil {
		switch *input.DocumentKind {
		case document.KindIndividual, document.KindOrganization:
			s.draft.Personal.DocumentKind = *input.DocumentKind
		default:
			return entities.SimulationDraft{}, ErrInvalidDocumentKind
		}
	}
	if input.TaxIdentifier != nil {
		s.draft.Personal.TaxIdentifier = document.Digits(*input.TaxIdentifier)
	}
	if input.FullName != nil {
		s.draft.Personal.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Email != nil {
		s.draft.Personal.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		s.draft.Personal.Phone = strings.TrimSpace(*input.Phone)
	}

	s.draft.UpdatedAt = time.Now().UTC()
	return s.draft, nil
}

func (u *WizardUseCase) UpdateVehicle(ctx context.Context, sessionID string, input VehicleInput) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()

	if s.draft.Step != entities.StepVehicleInfo {
		s.mu.Unlock()
		return entities.SimulationDraft{}, ErrWrongStep
	}

	if hasCatalogInput(input) && hasManualInput(input) {
		s.mu.Unlock()
		return entities.SimulationDraft{}, ErrInvalidSelection
	}

	// The first field of either provenance picks the union tag implicitly;
	// an explicit selection_kind always wins.
	kind := s.draft.Vehicle.Selection.Kind
	if input.SelectionKind != nil {
		kind = *input.SelectionKind
	} else if kind == "" && hasCatalogInput(input) {
		kind = entities.VehicleSelectionCatalog
	} else if kind == "" && hasManualInput(input) {
		kind = entities.VehicleSelectionManual
	}
	if kind != s.draft.Vehicle.Selection.Kind {
		if err := u.switchSelectionKind(&s.draft, kind); err != nil {
			s.mu.Unlock()
			return entities.SimulationDraft{}, err
		}
		s.cascadeGen++
	}

	var resolveGen uint64
	var resolveCodes *entities.CatalogSelection

	switch s.draft.Vehicle.Selection.Kind {
	case entities.VehicleSelectionCatalog:
		gen, codes, err := u.applyCatalogInput(s, input)
		if err != nil {
			s.mu.Unlock()
			return entities.SimulationDraft{}, err
		}
		resolveGen, resolveCodes = gen, codes
	case entities.VehicleSelectionManual:
		if err := applyManualInput(&s.draft, input); err != nil {
			s.mu.Unlock()
			return entities.SimulationDraft{}, err
		}
	default:
		if hasCatalogInput(input) || hasManualInput(input) {
			s.mu.Unlock()
			return entities.SimulationDraft{}, ErrInvalidSelection
		}
	}

	applyCommonVehicleInput(&s.draft, input)
	s.draft.UpdatedAt = time.Now().UTC()
	s.mu.Unlock()

	if resolveCodes != nil {
		u.resolveCatalogEntry(ctx, s, resolveGen, *resolveCodes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, nil
}

// switchSelectionKind flips the provenance union, discarding the branch that
// is no longer authoritative.
func (u *WizardUseCase) switchSelectionKind(d *entities.SimulationDraft, kind entities.VehicleSelectionKind) error {
	switch kind {
	case entities.VehicleSelectionCatalog:
		if d.Vehicle.Selection.Kind != entities.VehicleSelectionCatalog {
			d.Vehicle.Selection = entities.VehicleSelection{
				Kind:    entities.VehicleSelectionCatalog,
				Catalog: &entities.CatalogSelection{},
			}
			clearVehiclePrice(d)
		}
	case entities.VehicleSelectionManual:
		if d.Vehicle.Selection.Kind != entities.VehicleSelectionManual {
			d.Vehicle.Selection = entities.VehicleSelection{
				Kind:   entities.VehicleSelectionManual,
				Manual: &entities.ManualSelection{},
			}
			clearVehiclePrice(d)
		}
	default:
		return ErrInvalidSelection
	}
	return nil
}

// applyCatalogInput applies cascade code changes under the session lock and
// reports whether a price resolution should follow. Changing an upstream code
// clears every downstream level: a model code from another brand is
// meaningless.
func (u *WizardUseCase) applyCatalogInput(s *wizardSession, input VehicleInput) (uint64, *entities.CatalogSelection, error) {
	if hasManualInput(input) {
		return 0, nil, ErrInvalidSelection
	}
	sel := s.draft.Vehicle.Selection.Catalog
	if sel == nil {
		sel = &entities.CatalogSelection{}
		s.draft.Vehicle.Selection.Catalog = sel
	}

	if input.BrandCode != nil {
		code := strings.TrimSpace(*input.BrandCode)
		if code == "" {
			return 0, nil, ErrInvalidCatalogCode
		}
		if code != sel.BrandCode {
			sel.BrandCode = code
			sel.ModelCode = ""
			sel.YearCode = ""
			sel.Entry = nil
			clearVehiclePrice(&s.draft)
			s.cascadeGen++
		}
	}
	if input.ModelCode != nil {
		code := strings.TrimSpace(*input.ModelCode)
		if code == "" || sel.BrandCode == "" {
			return 0, nil, ErrInvalidCatalogCode
		}
		if code != sel.ModelCode {
			sel.ModelCode = code
			sel.YearCode = ""
			sel.Entry = nil
			clearVehiclePrice(&s.draft)
			s.cascadeGen++
		}
	}
	if input.YearCode != nil {
		code := strings.TrimSpace(*input.YearCode)
		if code == "" || sel.BrandCode == "" || sel.ModelCode == "" {
			return 0, nil, ErrInvalidCatalogCode
		}
		if code != sel.YearCode {
			sel.YearCode = code
			sel.Entry = nil
			clearVehiclePrice(&s.draft)
			s.cascadeGen++
		}
		if sel.Entry == nil {
			codes := *sel
			return s.cascadeGen, &codes, nil
		}
	}
	return 0, nil, nil
}

// resolveCatalogEntry performs the price lookup outside the session lock and
// applies the result only if the cascade generation is unchanged — a
// superseded lookup (user already picked another brand/model/year) is
// discarded instead of overwriting the draft with stale data.
func (u *WizardUseCase) resolveCatalogEntry(ctx context.Context, s *wizardSession, gen uint64, codes entities.CatalogSelection) {
	entry, err := u.pricing.ResolvePrice(ctx, u.draftKind(s), codes.BrandCode, codes.ModelCode, codes.YearCode)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cascadeGen != gen {
		log.Printf("[wizard][usecase] stale catalog resolution discarded session_id=%s gen=%d current=%d", s.draft.SessionID, gen, s.cascadeGen)
		return
	}
	if err != nil {
		// Level-scoped failure: the codes stay selected so the user can
		// retry, and the rest of the draft is untouched.
		log.Printf("[wizard][usecase] price resolution failed session_id=%s err=%v", s.draft.SessionID, err)
		return
	}

	sel := s.draft.Vehicle.Selection.Catalog
	if s.draft.Vehicle.Selection.Kind != entities.VehicleSelectionCatalog || sel == nil {
		return
	}
	sel.Entry = &entry

	price := entry.ReferencePrice
	s.draft.Vehicle.VehiclePrice = &price
	s.draft.Dirty = true
	if entry.FuelType != "" {
		s.draft.Vehicle.FuelType = entry.FuelType
	}
	if s.draft.Vehicle.Transmission == "" {
		s.draft.Vehicle.Transmission = vehicle.InferTransmission(entry.BrandName, entry.ModelName, entry.ModelYear)
	}
	s.draft.UpdatedAt = time.Now().UTC()
}

func (u *WizardUseCase) draftKind(s *wizardSession) entities.VehicleKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.VehicleKind
}

func applyManualInput(d *entities.SimulationDraft, input VehicleInput) error {
	if hasCatalogInput(input) {
		return ErrInvalidSelection
	}
	man := d.Vehicle.Selection.Manual
	if man == nil {
		man = &entities.ManualSelection{}
		d.Vehicle.Selection.Manual = man
	}

	if input.ManualBrand != nil {
		man.Brand = strings.TrimSpace(*input.ManualBrand)
	}
	if input.ManualModel != nil {
		man.Model = strings.TrimSpace(*input.ManualModel)
	}
	if input.ManualYear != nil {
		if *input.ManualYear <= 0 {
			return ErrInvalidSelection
		}
		man.ModelYear = *input.ManualYear
	}
	if input.ManualPrice != nil {
		if *input.ManualPrice <= 0 {
			return ErrInvalidSelection
		}
		man.Price = *input.ManualPrice
		price := *input.ManualPrice
		d.Vehicle.VehiclePrice = &price
		d.Dirty = true
	}

	// Manual entry gets the transmission heuristic too, once enough of the
	// vehicle is known and the user has not picked one.
	if d.Vehicle.Transmission == "" && man.Brand != "" && man.Model != "" && man.ModelYear > 0 {
		d.Vehicle.Transmission = vehicle.InferTransmission(man.Brand, man.Model, man.ModelYear)
	}
	return nil
}

// applyCommonVehicleInput applies the provenance-independent fields. Vehicle
// price, down payment and term are the financial inputs: touching any of them
// marks the draft dirty.
func applyCommonVehicleInput(d *entities.SimulationDraft, input VehicleInput) {
	if input.Condition != nil {
		d.Vehicle.Condition = *input.Condition
	}
	if input.Transmission != nil {
		d.Vehicle.Transmission = *input.Transmission
	}
	if input.FuelType != nil {
		d.Vehicle.FuelType = strings.TrimSpace(*input.FuelType)
	}
	if input.VehiclePrice != nil {
		price := *input.VehiclePrice
		d.Vehicle.VehiclePrice = &price
		d.Dirty = true
	}
	if input.DownPayment != nil {
		dp := *input.DownPayment
		d.Vehicle.DownPayment = &dp
		d.Dirty = true
	}
	if input.TermMonths != nil {
		tm := *input.TermMonths
		d.Vehicle.TermMonths = &tm
		d.Dirty = true
	}
}

func hasCatalogInput(input VehicleInput) bool {
	return input.BrandCode != nil || input.ModelCode != nil || input.YearCode != nil
}

func hasManualInput(input VehicleInput) bool {
	return input.ManualBrand != nil || input.ManualModel != nil || input.ManualYear != nil || input.ManualPrice != nil
}

func clearVehiclePrice(d *entities.SimulationDraft) {
	if d.Vehicle.VehiclePrice != nil {
		d.Vehicle.VehiclePrice = nil
		d.Dirty = true
	}
}

func (u *WizardUseCase) UpdateIntent(_ context.Context, sessionID string, input IntentInput) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Step != entities.StepClosingIntent {
		return entities.SimulationDraft{}, ErrWrongStep
	}

	// Closing intent is not a financial input: none of these touch Dirty.
	if input.TimeToClose != nil {
		s.draft.Intent.TimeToClose = strings.TrimSpace(*input.TimeToClose)
	}
	if input.HasSeenVehicle != nil {
		seen := *input.HasSeenVehicle
		s.draft.Intent.HasSeenVehicle = &seen
	}
	if input.SellerType != nil {
		s.draft.Intent.SellerType = strings.TrimSpace(*input.SellerType)
	}

	s.draft.UpdatedAt = time.Now().UTC()
	return s.draft, nil
}

func (u *WizardUseCase) Advance(_ context.Context, sessionID string) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Step >= entities.StepResult {
		return entities.SimulationDraft{}, ErrInvalidTransition
	}
	if !stepComplete(s.draft, s.draft.Step) {
		return entities.SimulationDraft{}, ErrStepIncomplete
	}

	next := s.draft.Step + 1
	if next == entities.StepResult {
		if err := u.computeDraft(&s.draft); err != nil {
			return entities.SimulationDraft{}, err
		}
	}
	s.draft.Step = next
	s.draft.UpdatedAt = time.Now().UTC()
	log.Printf("[wizard][usecase] advanced session_id=%s step=%d", s.draft.SessionID, next)
	return s.draft, nil
}

func (u *WizardUseCase) Back(_ context.Context, sessionID string, to entities.WizardStep) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !to.Valid() || to >= s.draft.Step {
		return entities.SimulationDraft{}, ErrInvalidTransition
	}
	s.draft.Step = to
	s.draft.UpdatedAt = time.Now().UTC()
	return s.draft, nil
}

func (u *WizardUseCase) Restart(_ context.Context, sessionID string) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Step != entities.StepResult {
		return entities.SimulationDraft{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	fresh := entities.SimulationDraft{
		SessionID:   s.draft.SessionID,
		ListingID:   s.draft.ListingID,
		VehicleKind: s.draft.VehicleKind,
		Step:        entities.StepPersonalInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.draft = fresh
	s.cascadeGen++
	log.Printf("[wizard][usecase] restarted session_id=%s", s.draft.SessionID)
	return s.draft, nil
}

func (u *WizardUseCase) Recompute(_ context.Context, sessionID string, input WhatIfInput) (entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Step != entities.StepResult {
		return entities.SimulationDraft{}, ErrWrongStep
	}

	if input.DownPayment != nil {
		if *input.DownPayment < 0 {
			return entities.SimulationDraft{}, ErrInvalidSelection
		}
		dp := *input.DownPayment
		s.draft.Vehicle.DownPayment = &dp
		s.draft.Dirty = true
	}
	if input.TermMonths != nil {
		if *input.TermMonths <= 0 {
			return entities.SimulationDraft{}, ErrInvalidSelection
		}
		tm := *input.TermMonths
		s.draft.Vehicle.TermMonths = &tm
		s.draft.Dirty = true
	}

	if err := u.computeDraft(&s.draft); err != nil {
		return entities.SimulationDraft{}, err
	}
	s.draft.UpdatedAt = time.Now().UTC()
	return s.draft, nil
}

func (u *WizardUseCase) Save(ctx context.Context, sessionID string) (entities.StoredSimulation, entities.SimulationDraft, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.StoredSimulation{}, entities.SimulationDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft.Step != entities.StepResult || s.draft.Computed.ComputedAt.IsZero() {
		return entities.StoredSimulation{}, entities.SimulationDraft{}, ErrSimulationUnsaveable
	}
	// The dirty flag gates the re-save of an unmutated draft before the
	// persistence sink is ever consulted.
	if !s.draft.Dirty && s.draft.SavedSimulationID != "" {
		return entities.StoredSimulation{}, entities.SimulationDraft{}, ErrAlreadySaved
	}

	stored, err := u.store.SaveFromDraft(ctx, s.draft)
	if err != nil {
		// Draft stays intact and dirty so the user can retry without
		// re-entering anything.
		return entities.StoredSimulation{}, entities.SimulationDraft{}, err
	}

	s.draft.Dirty = false
	s.draft.SavedSimulationID = stored.ID
	s.draft.UpdatedAt = time.Now().UTC()
	return stored, s.draft, nil
}

// computeDraft is the single computation pass: financed amount, installment,
// approval. Called on every Result entry and on explicit recompute, never
// implicitly.
func (u *WizardUseCase) computeDraft(d *entities.SimulationDraft) error {
	if d.Vehicle.VehiclePrice == nil || d.Vehicle.DownPayment == nil || d.Vehicle.TermMonths == nil {
		return ErrStepIncomplete
	}

	financed := *d.Vehicle.VehiclePrice - *d.Vehicle.DownPayment
	installment, err := finance.ComputeInstallment(financed, u.ratePct, *d.Vehicle.TermMonths)
	if err != nil {
		log.Printf("[wizard][usecase] computation failed session_id=%s err=%v", d.SessionID, err)
		return ErrComputeFailed
	}

	d.Computed = entities.ComputedResult{
		FinancedAmount:   financed,
		InstallmentValue: installment,
		MonthlyRate:      u.ratePct,
		Approved:         finance.EvaluateApproval(financed, len(d.Personal.TaxIdentifier)),
		ComputedAt:       time.Now().UTC(),
	}
	return nil
}

// stepComplete is the per-step validity predicate gating forward transitions.
func stepComplete(d entities.SimulationDraft, step entities.WizardStep) bool {
	switch step {
	case entities.StepPersonalInfo:
		// Non-emptiness only: the checksum result is advisory UI state, not a
		// hard block (the value may come from a trusted profile).
		p := d.Personal
		return p.TaxIdentifier != "" && p.FullName != "" && p.Email != "" && p.Phone != ""
	case entities.StepVehicleInfo:
		v := d.Vehicle
		return v.Selection.Complete() &&
			v.VehiclePrice != nil && *v.VehiclePrice > 0 &&
			v.DownPayment != nil && *v.DownPayment >= 0 &&
			v.TermMonths != nil && *v.TermMonths > 0
	case entities.StepClosingIntent:
		i := d.Intent
		return i.TimeToClose != "" && i.HasSeenVehicle != nil && i.SellerType != ""
	default:
		return false
	}
}

func (u *WizardUseCase) session(sessionID string) (*wizardSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	u.mu.RLock()
	s, ok := u.sessions[sessionID]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	s.lastAccess = time.Now()
	s.mu.Unlock()
	return s, nil
}
