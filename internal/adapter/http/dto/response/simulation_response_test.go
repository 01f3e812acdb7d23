package response

import (
	"testing"
	"time"

	"financiamento_xpto/internal/domain/entities"
)

func TestFromDraft(t *testing.T) {
	now := time.Now().UTC()

	t.Run("omits computed block before first computation", func(t *testing.T) {
		d := entities.SimulationDraft{SessionID: "sess-1", Step: entities.StepVehicleInfo, CreatedAt: now, UpdatedAt: now}
		res := FromDraft(d)
		if res.Computed != nil {
			t.Fatalf("expected nil computed block, got %+v", res.Computed)
		}
		if res.SessionID != "sess-1" || res.Step != 2 {
			t.Fatalf("unexpected mapped fields: %+v", res)
		}
	})

	t.Run("rounds computed amounts", func(t *testing.T) {
		d := entities.SimulationDraft{
			SessionID: "sess-1",
			Step:      entities.StepResult,
			Computed: entities.ComputedResult{
				FinancedAmount:   40000.004,
				InstallmentValue: 1264.9455,
				MonthlyRate:      1.99,
				Approved:         true,
				ComputedAt:       now,
			},
		}
		res := FromDraft(d)
		if res.Computed == nil {
			t.Fatal("expected computed block")
		}
		if res.Computed.FinancedAmount != 40000.0 {
			t.Errorf("expected financed 40000.00, got %v", res.Computed.FinancedAmount)
		}
		if res.Computed.InstallmentValue != 1264.95 {
			t.Errorf("expected installment 1264.95, got %v", res.Computed.InstallmentValue)
		}
		if res.Computed.MonthlyRate != 1.99 {
			t.Errorf("expected rate untouched, got %v", res.Computed.MonthlyRate)
		}
	})
}

func TestFromSimulation(t *testing.T) {
	now := time.Now().UTC()
	s := entities.StoredSimulation{
		ID:               "sim-1",
		ListingID:        "lst-1",
		FullName:         "Maria",
		VehicleKind:      entities.VehicleKindCar,
		SelectionKind:    entities.VehicleSelectionCatalog,
		Brand:            "VW - VolksWagen",
		VehiclePrice:     45900.009,
		FinancedAmount:   40000,
		InstallmentValue: 1264.9455,
		Approved:         true,
		CreatedAt:        now,
	}

	res := FromSimulation(s)
	if res.ID != "sim-1" || res.ListingID != "lst-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.VehicleKind != "cars" || res.SelectionKind != "catalog" {
		t.Fatalf("unexpected kinds: %+v", res)
	}
	if res.VehiclePrice != 45900.01 || res.InstallmentValue != 1264.95 {
		t.Fatalf("expected rounded amounts, got %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromCatalogRefs(t *testing.T) {
	refs := FromCatalogRefs([]entities.CatalogRef{{Code: "59", Name: "VW"}})
	if len(refs) != 1 || refs[0].Code != "59" || refs[0].Name != "VW" {
		t.Fatalf("unexpected refs: %+v", refs)
	}
	if out := FromCatalogRefs(nil); len(out) != 0 {
		t.Fatalf("expected empty slice, got %+v", out)
	}
}
