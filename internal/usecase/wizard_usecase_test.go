package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"financiamento_xpto/internal/domain/document"
	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/domain/vehicle"
	mock_interfaces "financiamento_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

// stubSimulationStore is a hand stub because the real mock package imports
// this one.
type stubSimulationStore struct {
	saveCalls int
	fail      error
}

func (s *stubSimulationStore) SaveFromDraft(_ context.Context, d entities.SimulationDraft) (entities.StoredSimulation, error) {
	s.saveCalls++
	if s.fail != nil {
		return entities.StoredSimulation{}, s.fail
	}
	st := snapshotDraft(d)
	st.ID = fmt.Sprintf("sim-%d", s.saveCalls)
	return st, nil
}

func (s *stubSimulationStore) GetByID(context.Context, string) (entities.StoredSimulation, error) {
	return entities.StoredSimulation{}, nil
}

func (s *stubSimulationStore) ListByListingID(context.Context, string) ([]entities.StoredSimulation, error) {
	return nil, nil
}

func newTestWizard(t *testing.T, source *mock_interfaces.MockIPricingSource, profiles *mock_interfaces.MockIProfileStore, store ISimulationUseCase) *WizardUseCase {
	t.Helper()
	var pricing IPricingUseCase
	if source != nil {
		pricing = NewPricingUseCase(source, nil)
	}
	if store == nil {
		store = &stubSimulationStore{}
	}
	var uc *WizardUseCase
	if profiles != nil {
		uc = NewWizardUseCase(profiles, pricing, store, 1.99)
	} else {
		uc = NewWizardUseCase(nil, pricing, store, 1.99)
	}
	t.Cleanup(uc.Stop)
	return uc
}

func fillPersonal(t *testing.T, uc *WizardUseCase, sessionID string) {
	t.Helper()
	_, err := uc.UpdatePersonal(context.Background(), sessionID, PersonalInput{
		TaxIdentifier: ptr("111.444.777-35"),
		DocumentKind:  ptr(document.KindIndividual),
		FullName:      ptr("Maria Silva"),
		Email:         ptr("maria@example.com"),
		Phone:         ptr("11999990000"),
	})
	if err != nil {
		t.Fatalf("fill personal: %v", err)
	}
	if _, err := uc.Advance(context.Background(), sessionID); err != nil {
		t.Fatalf("advance to vehicle: %v", err)
	}
}

func fillManualVehicle(t *testing.T, uc *WizardUseCase, sessionID string, price, down float64, term int) {
	t.Helper()
	_, err := uc.UpdateVehicle(context.Background(), sessionID, VehicleInput{
		ManualBrand: ptr("Chevrolet"),
		ManualModel: ptr("Onix 1.0"),
		ManualYear:  ptr(2020),
		ManualPrice: ptr(price),
		Condition:   ptr(entities.VehicleConditionUsed),
		DownPayment: ptr(down),
		TermMonths:  ptr(term),
	})
	if err != nil {
		t.Fatalf("fill vehicle: %v", err)
	}
	if _, err := uc.Advance(context.Background(), sessionID); err != nil {
		t.Fatalf("advance to intent: %v", err)
	}
}

func fillIntent(t *testing.T, uc *WizardUseCase, sessionID string) {
	t.Helper()
	_, err := uc.UpdateIntent(context.Background(), sessionID, IntentInput{
		TimeToClose:    ptr("30d"),
		HasSeenVehicle: ptr(true),
		SellerType:     ptr("dealer"),
	})
	if err != nil {
		t.Fatalf("fill intent: %v", err)
	}
}

func driveToResult(t *testing.T, uc *WizardUseCase) string {
	t.Helper()
	draft, err := uc.CreateSession(context.Background(), CreateSessionInput{ListingID: "listing-9"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	fillPersonal(t, uc, draft.SessionID)
	fillManualVehicle(t, uc, draft.SessionID, 60000, 20000, 48)
	fillIntent(t, uc, draft.SessionID)
	if _, err := uc.Advance(context.Background(), draft.SessionID); err != nil {
		t.Fatalf("advance to result: %v", err)
	}
	return draft.SessionID
}

func TestWizardUseCase_CreateSession(t *testing.T) {
	t.Run("defaults to cars", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, err := uc.CreateSession(context.Background(), CreateSessionInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.VehicleKind != entities.VehicleKindCar || draft.Step != entities.StepPersonalInfo {
			t.Fatalf("unexpected draft: %+v", draft)
		}
		if draft.SessionID == "" {
			t.Fatalf("expected session id")
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		_, err := uc.CreateSession(context.Background(), CreateSessionInput{VehicleKind: "boats"})
		if !errors.Is(err, ErrInvalidVehicleKind) {
			t.Fatalf("expected ErrInvalidVehicleKind, got %v", err)
		}
	})

	t.Run("prefills from profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileStore(ctrl)
		uc := newTestWizard(t, nil, profiles, nil)

		profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.CustomerProfile{
			UserID:        "user-1",
			FullName:      "Maria Silva",
			TaxIdentifier: "111.444.777-35",
			DocumentKind:  document.KindIndividual,
			Email:         "maria@example.com",
			Phone:         "11999990000",
		}, nil)

		draft, err := uc.CreateSession(context.Background(), CreateSessionInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Personal.TaxIdentifier != "11144477735" {
			t.Fatalf("expected stripped identifier, got %q", draft.Personal.TaxIdentifier)
		}
		if draft.Personal.FullName != "Maria Silva" {
			t.Fatalf("expected prefill, got %+v", draft.Personal)
		}
	})

	t.Run("profile failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profiles := mock_interfaces.NewMockIProfileStore(ctrl)
		uc := newTestWizard(t, nil, profiles, nil)

		profiles.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.CustomerProfile{}, errors.New("store down"))

		draft, err := uc.CreateSession(context.Background(), CreateSessionInput{UserID: "user-1"})
		if err != nil {
			t.Fatalf("expected session despite profile failure, got %v", err)
		}
		if draft.Personal.FullName != "" {
			t.Fatalf("expected empty personal section")
		}
	})
}

func TestWizardUseCase_StepGates(t *testing.T) {
	t.Run("personal gate blocks empty fields", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})

		if _, err := uc.Advance(context.Background(), draft.SessionID); !errors.Is(err, ErrStepIncomplete) {
			t.Fatalf("expected ErrStepIncomplete, got %v", err)
		}

		// Checksum is advisory: a malformed identifier passes the gate as
		// long as it is non-empty.
		_, err := uc.UpdatePersonal(context.Background(), draft.SessionID, PersonalInput{
			TaxIdentifier: ptr("11144477736"),
			FullName:      ptr("Maria"),
			Email:         ptr("m@e.com"),
			Phone:         ptr("11"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Advance(context.Background(), draft.SessionID); err != nil {
			t.Fatalf("expected advance with invalid checksum, got %v", err)
		}
	})

	t.Run("vehicle gate requires financial inputs", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		fillPersonal(t, uc, draft.SessionID)

		_, err := uc.UpdateVehicle(context.Background(), draft.SessionID, VehicleInput{
			ManualBrand: ptr("Chevrolet"),
			ManualModel: ptr("Onix 1.0"),
			ManualYear:  ptr(2020),
			ManualPrice: ptr(60000.0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Advance(context.Background(), draft.SessionID); !errors.Is(err, ErrStepIncomplete) {
			t.Fatalf("expected ErrStepIncomplete without down payment and term, got %v", err)
		}

		// A zero down payment is an answer, not a missing field.
		_, err = uc.UpdateVehicle(context.Background(), draft.SessionID, VehicleInput{
			DownPayment: ptr(0.0),
			TermMonths:  ptr(36),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Advance(context.Background(), draft.SessionID); err != nil {
			t.Fatalf("expected advance, got %v", err)
		}
	})

	t.Run("intent gate requires all fields answered", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		fillPersonal(t, uc, draft.SessionID)
		fillManualVehicle(t, uc, draft.SessionID, 60000, 20000, 48)

		if _, err := uc.Advance(context.Background(), draft.SessionID); !errors.Is(err, ErrStepIncomplete) {
			t.Fatalf("expected ErrStepIncomplete, got %v", err)
		}

		_, err := uc.UpdateIntent(context.Background(), draft.SessionID, IntentInput{
			TimeToClose:    ptr("30d"),
			HasSeenVehicle: ptr(false),
			SellerType:     ptr("private"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Advance(context.Background(), draft.SessionID); err != nil {
			t.Fatalf("expected advance with hasSeenVehicle=false, got %v", err)
		}
	})

	t.Run("updates outside their step are rejected", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})

		if _, err := uc.UpdateVehicle(context.Background(), draft.SessionID, VehicleInput{}); !errors.Is(err, ErrWrongStep) {
			t.Fatalf("expected ErrWrongStep, got %v", err)
		}
		if _, err := uc.UpdateIntent(context.Background(), draft.SessionID, IntentInput{}); !errors.Is(err, ErrWrongStep) {
			t.Fatalf("expected ErrWrongStep, got %v", err)
		}
	})
}

func TestWizardUseCase_CatalogCascade(t *testing.T) {
	entry := entities.VehicleCatalogEntry{
		BrandName:      "Fiat",
		ModelName:      "Palio 1.0",
		ModelYear:      2014,
		FuelType:       "Gasolina",
		FipeCode:       "001267-0",
		ReferencePrice: 23450,
	}

	newCatalogSession := func(t *testing.T, source *mock_interfaces.MockIPricingSource) (*WizardUseCase, string) {
		uc := newTestWizard(t, source, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		fillPersonal(t, uc, draft.SessionID)
		return uc, draft.SessionID
	}

	t.Run("year selection resolves price and prefills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricingSource(ctrl)
		uc, sid := newCatalogSession(t, source)

		source.EXPECT().ResolvePrice(gomock.Any(), entities.VehicleKindCar, "21", "4828", "2014-1").Return(entry, nil)

		_, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{
			BrandCode: ptr("21"),
			ModelCode: ptr("4828"),
			YearCode:  ptr("2014-1"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		draft, _ := uc.GetSession(context.Background(), sid)
		sel := draft.Vehicle.Selection.Catalog
		if sel == nil || sel.Entry == nil {
			t.Fatalf("expected resolved entry")
		}
		if draft.Vehicle.VehiclePrice == nil || *draft.Vehicle.VehiclePrice != 23450 {
			t.Fatalf("expected price prefill, got %+v", draft.Vehicle.VehiclePrice)
		}
		if draft.Vehicle.FuelType != "Gasolina" {
			t.Fatalf("expected fuel prefill, got %q", draft.Vehicle.FuelType)
		}
		// 2014 non-luxury, no hints => Manual.
		if draft.Vehicle.Transmission != vehicle.TransmissionManual {
			t.Fatalf("expected inferred Manual, got %s", draft.Vehicle.Transmission)
		}
	})

	t.Run("changing brand clears downstream selections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricingSource(ctrl)
		uc, sid := newCatalogSession(t, source)

		source.EXPECT().ResolvePrice(gomock.Any(), entities.VehicleKindCar, "21", "4828", "2014-1").Return(entry, nil)

		if _, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{
			BrandCode: ptr("21"), ModelCode: ptr("4828"), YearCode: ptr("2014-1"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		draft, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{BrandCode: ptr("59")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sel := draft.Vehicle.Selection.Catalog
		if sel.BrandCode != "59" || sel.ModelCode != "" || sel.YearCode != "" || sel.Entry != nil {
			t.Fatalf("expected downstream cleared, got %+v", sel)
		}
		if draft.Vehicle.VehiclePrice != nil {
			t.Fatalf("expected price cleared")
		}
		if !draft.Dirty {
			t.Fatalf("expected dirty after price cleared")
		}
	})

	t.Run("changing model clears year and price only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricingSource(ctrl)
		uc, sid := newCatalogSession(t, source)

		source.EXPECT().ResolvePrice(gomock.Any(), entities.VehicleKindCar, "21", "4828", "2014-1").Return(entry, nil)

		if _, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{
			BrandCode: ptr("21"), ModelCode: ptr("4828"), YearCode: ptr("2014-1"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		draft, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{ModelCode: ptr("4829")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sel := draft.Vehicle.Selection.Catalog
		if sel.BrandCode != "21" || sel.ModelCode != "4829" || sel.YearCode != "" || sel.Entry != nil {
			t.Fatalf("expected year/price cleared and brand kept, got %+v", sel)
		}
	})

	t.Run("superseded resolution is discarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricingSource(ctrl)
		uc, sid := newCatalogSession(t, source)

		// While the price lookup for brand 21 is in flight, the user picks
		// another brand. The late response must not overwrite the draft.
		source.EXPECT().ResolvePrice(gomock.Any(), entities.VehicleKindCar, "21", "4828", "2014-1").DoAndReturn(
			func(ctx context.Context, _ entities.VehicleKind, _, _, _ string) (entities.VehicleCatalogEntry, error) {
				if _, err := uc.UpdateVehicle(ctx, sid, VehicleInput{BrandCode: ptr("59")}); err != nil {
					t.Fatalf("concurrent brand change failed: %v", err)
				}
				return entry, nil
			},
		)

		if _, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{
			BrandCode: ptr("21"), ModelCode: ptr("4828"), YearCode: ptr("2014-1"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		draft, _ := uc.GetSession(context.Background(), sid)
		sel := draft.Vehicle.Selection.Catalog
		if sel.BrandCode != "59" || sel.Entry != nil {
			t.Fatalf("expected stale entry discarded, got %+v", sel)
		}
		if draft.Vehicle.VehiclePrice != nil {
			t.Fatalf("expected no stale price prefill")
		}
	})

	t.Run("failed resolution keeps codes for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricingSource(ctrl)
		uc, sid := newCatalogSession(t, source)

		source.EXPECT().ResolvePrice(gomock.Any(), entities.VehicleKindCar, "21", "4828", "2014-1").Return(entities.VehicleCatalogEntry{}, errors.New("timeout"))

		if _, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{
			BrandCode: ptr("21"), ModelCode: ptr("4828"), YearCode: ptr("2014-1"),
		}); err != nil {
			t.Fatalf("level failure must not fail the update: %v", err)
		}

		draft, _ := uc.GetSession(context.Background(), sid)
		sel := draft.Vehicle.Selection.Catalog
		if sel.YearCode != "2014-1" || sel.Entry != nil {
			t.Fatalf("expected codes kept and no entry, got %+v", sel)
		}

		// Retry with the same year code resolves this time.
		source.EXPECT().ResolvePrice(gomock.Any(), entities.VehicleKindCar, "21", "4828", "2014-1").Return(entry, nil)
		draft, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{YearCode: ptr("2014-1")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Vehicle.Selection.Catalog.Entry == nil {
			t.Fatalf("expected entry after retry")
		}
	})

	t.Run("mixing provenances in one update is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockIPricingSource(ctrl)
		uc, sid := newCatalogSession(t, source)

		_, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{
			BrandCode:   ptr("21"),
			ManualBrand: ptr("Fiat"),
		})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
	})
}

func TestWizardUseCase_ResultComputation(t *testing.T) {
	t.Run("entering result computes once", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		sid := driveToResult(t, uc)

		draft, _ := uc.GetSession(context.Background(), sid)
		if draft.Step != entities.StepResult {
			t.Fatalf("expected result step, got %d", draft.Step)
		}
		if draft.Computed.FinancedAmount != 40000 {
			t.Fatalf("expected financed 40000, got %v", draft.Computed.FinancedAmount)
		}
		if draft.Computed.InstallmentValue <= 0 {
			t.Fatalf("expected positive installment")
		}
		if !draft.Computed.Approved {
			t.Fatalf("expected approval for financed=40000 and 11-digit id")
		}
		if draft.Computed.MonthlyRate != 1.99 {
			t.Fatalf("unexpected rate: %v", draft.Computed.MonthlyRate)
		}
	})

	t.Run("re-entry after edits recomputes proportionally", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		sid := driveToResult(t, uc)

		first, _ := uc.GetSession(context.Background(), sid)

		if _, err := uc.Back(context.Background(), sid, entities.StepVehicleInfo); err != nil {
			t.Fatalf("back: %v", err)
		}
		if _, err := uc.UpdateVehicle(context.Background(), sid, VehicleInput{DownPayment: ptr(40000.0)}); err != nil {
			t.Fatalf("edit: %v", err)
		}
		if _, err := uc.Advance(context.Background(), sid); err != nil {
			t.Fatalf("advance to intent: %v", err)
		}
		second, err := uc.Advance(context.Background(), sid)
		if err != nil {
			t.Fatalf("advance to result: %v", err)
		}

		if second.Computed.FinancedAmount != 20000 {
			t.Fatalf("expected financed 20000, got %v", second.Computed.FinancedAmount)
		}
		// Installment scales with financed amount at a fixed rate and term.
		ratio := second.Computed.InstallmentValue / first.Computed.InstallmentValue
		if ratio < 0.49 || ratio > 0.51 {
			t.Fatalf("expected installment to halve, ratio=%v", ratio)
		}
	})

	t.Run("declined above the cap", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		fillPersonal(t, uc, draft.SessionID)
		fillManualVehicle(t, uc, draft.SessionID, 450000, 50000, 48)
		fillIntent(t, uc, draft.SessionID)

		res, err := uc.Advance(context.Background(), draft.SessionID)
		if err != nil {
			t.Fatalf("declined is not an error: %v", err)
		}
		if res.Computed.Approved {
			t.Fatalf("expected declined for financed=400000")
		}
	})

	t.Run("misconfigured rate surfaces as compute failure", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		fillPersonal(t, uc, draft.SessionID)
		fillManualVehicle(t, uc, draft.SessionID, 60000, 20000, 48)
		fillIntent(t, uc, draft.SessionID)

		uc.ratePct = -1

		if _, err := uc.Advance(context.Background(), draft.SessionID); !errors.Is(err, ErrComputeFailed) {
			t.Fatalf("expected ErrComputeFailed, got %v", err)
		}
		cur, _ := uc.GetSession(context.Background(), draft.SessionID)
		if cur.Step != entities.StepClosingIntent {
			t.Fatalf("expected to stay on intent step, got %d", cur.Step)
		}
	})
}

func TestWizardUseCase_WhatIfRecompute(t *testing.T) {
	uc := newTestWizard(t, nil, nil, nil)
	sid := driveToResult(t, uc)

	first, _ := uc.GetSession(context.Background(), sid)

	draft, err := uc.Recompute(context.Background(), sid, WhatIfInput{TermMonths: ptr(24)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Computed.InstallmentValue <= first.Computed.InstallmentValue {
		t.Fatalf("halving the term must raise the installment: %v vs %v", draft.Computed.InstallmentValue, first.Computed.InstallmentValue)
	}
	if !draft.Dirty {
		t.Fatalf("what-if edit must mark the draft dirty")
	}

	t.Run("rejected outside result", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		d, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		if _, err := uc.Recompute(context.Background(), d.SessionID, WhatIfInput{}); !errors.Is(err, ErrWrongStep) {
			t.Fatalf("expected ErrWrongStep, got %v", err)
		}
	})
}

func TestWizardUseCase_SaveLifecycle(t *testing.T) {
	t.Run("save clears dirty and records id", func(t *testing.T) {
		store := &stubSimulationStore{}
		uc := newTestWizard(t, nil, nil, store)
		sid := driveToResult(t, uc)

		stored, draft, err := uc.Save(context.Background(), sid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.ID == "" || draft.SavedSimulationID != stored.ID {
			t.Fatalf("expected stored id recorded, got %+v", draft)
		}
		if draft.Dirty {
			t.Fatalf("expected dirty=false after save")
		}
		if store.saveCalls != 1 {
			t.Fatalf("expected one sink call, got %d", store.saveCalls)
		}
	})

	t.Run("re-save of unmutated draft is rejected before the sink", func(t *testing.T) {
		store := &stubSimulationStore{}
		uc := newTestWizard(t, nil, nil, store)
		sid := driveToResult(t, uc)

		if _, _, err := uc.Save(context.Background(), sid); err != nil {
			t.Fatalf("first save: %v", err)
		}
		if _, _, err := uc.Save(context.Background(), sid); !errors.Is(err, ErrAlreadySaved) {
			t.Fatalf("expected ErrAlreadySaved, got %v", err)
		}
		if store.saveCalls != 1 {
			t.Fatalf("sink must not be consulted for the rejected save, calls=%d", store.saveCalls)
		}
	})

	t.Run("financial edit re-arms save, non-financial does not", func(t *testing.T) {
		store := &stubSimulationStore{}
		uc := newTestWizard(t, nil, nil, store)
		sid := driveToResult(t, uc)

		if _, _, err := uc.Save(context.Background(), sid); err != nil {
			t.Fatalf("first save: %v", err)
		}

		// Non-financial edit: back to intent, change seller type.
		if _, err := uc.Back(context.Background(), sid, entities.StepClosingIntent); err != nil {
			t.Fatalf("back: %v", err)
		}
		draft, err := uc.UpdateIntent(context.Background(), sid, IntentInput{SellerType: ptr("private")})
		if err != nil {
			t.Fatalf("intent edit: %v", err)
		}
		if draft.Dirty {
			t.Fatalf("seller type must not affect dirty")
		}
		if _, err := uc.Advance(context.Background(), sid); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if _, _, err := uc.Save(context.Background(), sid); !errors.Is(err, ErrAlreadySaved) {
			t.Fatalf("expected ErrAlreadySaved after non-financial edit, got %v", err)
		}

		// Financial what-if edit re-arms the save and creates a new record.
		if _, err := uc.Recompute(context.Background(), sid, WhatIfInput{DownPayment: ptr(25000.0)}); err != nil {
			t.Fatalf("recompute: %v", err)
		}
		stored, draft, err := uc.Save(context.Background(), sid)
		if err != nil {
			t.Fatalf("second save: %v", err)
		}
		if stored.ID == "" || draft.SavedSimulationID != stored.ID {
			t.Fatalf("expected new record, got %+v", stored)
		}
		if store.saveCalls != 2 {
			t.Fatalf("expected two sink calls, got %d", store.saveCalls)
		}
	})

	t.Run("sink failure keeps draft dirty for retry", func(t *testing.T) {
		store := &stubSimulationStore{fail: errors.New("dynamo down")}
		uc := newTestWizard(t, nil, nil, store)
		sid := driveToResult(t, uc)

		if _, _, err := uc.Save(context.Background(), sid); err == nil {
			t.Fatalf("expected error")
		}
		draft, _ := uc.GetSession(context.Background(), sid)
		if !draft.Dirty || draft.SavedSimulationID != "" {
			t.Fatalf("expected intact unsaved draft, got %+v", draft)
		}

		store.fail = nil
		if _, _, err := uc.Save(context.Background(), sid); err != nil {
			t.Fatalf("retry should succeed: %v", err)
		}
	})

	t.Run("save before result is rejected", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		if _, _, err := uc.Save(context.Background(), draft.SessionID); !errors.Is(err, ErrSimulationUnsaveable) {
			t.Fatalf("expected ErrSimulationUnsaveable, got %v", err)
		}
	})
}

func TestWizardUseCase_Transitions(t *testing.T) {
	t.Run("back reaches any prior step", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		sid := driveToResult(t, uc)

		draft, err := uc.Back(context.Background(), sid, entities.StepPersonalInfo)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Step != entities.StepPersonalInfo {
			t.Fatalf("expected step 1, got %d", draft.Step)
		}
	})

	t.Run("back cannot go forward", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		if _, err := uc.Back(context.Background(), draft.SessionID, entities.StepResult); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("restart only from result", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		draft, _ := uc.CreateSession(context.Background(), CreateSessionInput{})
		if _, err := uc.Restart(context.Background(), draft.SessionID); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("restart discards the draft", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		sid := driveToResult(t, uc)

		draft, err := uc.Restart(context.Background(), sid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if draft.Step != entities.StepPersonalInfo {
			t.Fatalf("expected step 1, got %d", draft.Step)
		}
		if draft.Personal.FullName != "" || draft.Vehicle.VehiclePrice != nil {
			t.Fatalf("expected cleared draft, got %+v", draft)
		}
		if !draft.Computed.ComputedAt.IsZero() {
			t.Fatalf("expected computed block cleared")
		}
		if draft.ListingID != "listing-9" {
			t.Fatalf("expected listing reference kept, got %q", draft.ListingID)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc := newTestWizard(t, nil, nil, nil)
		if _, err := uc.GetSession(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if _, err := uc.GetSession(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})
}
