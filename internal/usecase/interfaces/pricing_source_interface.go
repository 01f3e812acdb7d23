package interfaces

import (
	"context"

	"financiamento_xpto/internal/domain/entities"
)

// IPricingSource abstracts the external FIPE-style valuation table: three
// dependent list endpoints plus a price lookup, keyed by vehicle kind. The
// source is a black box; errors are transport/parse failures scoped to the
// level that was being fetched.

type IPricingSource interface {
	ListBrands(ctx context.Context, kind entities.VehicleKind) ([]entities.CatalogRef, error)
	ListModels(ctx context.Context, kind entities.VehicleKind, brandCode string) ([]entities.CatalogRef, error)
	ListModelYears(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode string) ([]entities.CatalogRef, error)
	ResolvePrice(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode, yearCode string) (entities.VehicleCatalogEntry, error)
}
