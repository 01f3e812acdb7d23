package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"financiamento_xpto/internal/domain/entities"
	"financiamento_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidVehicleKind      = errors.New("invalid vehicle kind")
	ErrInvalidCatalogCode      = errors.New("invalid catalog code")
	ErrPricingLevelUnavailable = errors.New("pricing level unavailable")
)

const defaultPricingCacheTTL = 30 * time.Minute

// IPricingUseCase exposes the cascading vehicle valuation lookups. Each level
// is an independent operation so a failure at one level never invalidates an
// already-resolved upstream list nor touches downstream levels — the caller
// retries the failed level or falls back to manual entry.

type IPricingUseCase interface {
	ListBrands(ctx context.Context, kind entities.VehicleKind) ([]entities.CatalogRef, error)
	ListModels(ctx context.Context, kind entities.VehicleKind, brandCode string) ([]entities.CatalogRef, error)
	ListModelYears(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode string) ([]entities.CatalogRef, error)
	ResolvePrice(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode, yearCode string) (entities.VehicleCatalogEntry, error)
}

// PricingUseCase resolves the brand -> model -> model-year -> price cascade
// against the external source, caching successful responses by their full key
// path. Cache entries are never invalidated by this service; they expire by
// TTL. The cache is optional: with a nil cache every call goes to the source.
type PricingUseCase struct {
	source interfaces.IPricingSource
	cache  interfaces.ICacheRepository
	ttl    time.Duration
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(source interfaces.IPricingSource, cache interfaces.ICacheRepository) *PricingUseCase {
	return &PricingUseCase{source: source, cache: cache, ttl: defaultPricingCacheTTL}
}

func (u *PricingUseCase) ListBrands(ctx context.Context, kind entities.VehicleKind) ([]entities.CatalogRef, error) {
	if !validVehicleKind(kind) {
		return nil, ErrInvalidVehicleKind
	}

	key := fmt.Sprintf("fipe:%s:brands", kind)
	if refs, ok := u.cachedRefs(ctx, key); ok {
		return refs, nil
	}

	refs, err := u.source.ListBrands(ctx, kind)
	if err != nil {
		log.Printf("[pricing][usecase] brand list failed kind=%s err=%v", kind, err)
		return nil, fmt.Errorf("%w: brands: %v", ErrPricingLevelUnavailable, err)
	}
	u.storeRefs(ctx, key, refs)
	return refs, nil
}

func (u *PricingUseCase) ListModels(ctx context.Context, kind entities.VehicleKind, brandCode string) ([]entities.CatalogRef, error) {
	if !validVehicleKind(kind) {
		return nil, ErrInvalidVehicleKind
	}
	brandCode = strings.TrimSpace(brandCode)
	if brandCode == "" {
		return nil, ErrInvalidCatalogCode
	}

	key := fmt.Sprintf("fipe:%s:%s:models", kind, brandCode)
	if refs, ok := u.cachedRefs(ctx, key); ok {
		return refs, nil
	}

	refs, err := u.source.ListModels(ctx, kind, brandCode)
	if err != nil {
		log.Printf("[pricing][usecase] model list failed kind=%s brand=%s err=%v", kind, brandCode, err)
		return nil, fmt.Errorf("%w: models: %v", ErrPricingLevelUnavailable, err)
	}
	u.storeRefs(ctx, key, refs)
	return refs, nil
}

func (u *PricingUseCase) ListModelYears(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode string) ([]entities.CatalogRef, error) {
	if !validVehicleKind(kind) {
		return nil, ErrInvalidVehicleKind
	}
	brandCode = strings.TrimSpace(brandCode)
	modelCode = strings.TrimSpace(modelCode)
	if brandCode == "" || modelCode == "" {
		return nil, ErrInvalidCatalogCode
	}

	key := fmt.Sprintf("fipe:%s:%s:%s:years", kind, brandCode, modelCode)
	if refs, ok := u.cachedRefs(ctx, key); ok {
		return refs, nil
	}

	refs, err := u.source.ListModelYears(ctx, kind, brandCode, modelCode)
	if err != nil {
		log.Printf("[pricing][usecase] year list failed kind=%s brand=%s model=%s err=%v", kind, brandCode, modelCode, err)
		return nil, fmt.Errorf("%w: years: %v", ErrPricingLevelUnavailable, err)
	}
	u.storeRefs(ctx, key, refs)
	return refs, nil
}

func (u *PricingUseCase) ResolvePrice(ctx context.Context, kind entities.VehicleKind, brandCode, modelCode, yearCode string) (entities.VehicleCatalogEntry, error) {
	if !validVehicleKind(kind) {
		return entities.VehicleCatalogEntry{}, ErrInvalidVehicleKind
	}
	brandCode = strings.TrimSpace(brandCode)
	modelCode = strings.TrimSpace(modelCode)
	yearCode = strings.TrimSpace(yearCode)
	if brandCode == "" || modelCode == "" || yearCode == "" {
		return entities.VehicleCatalogEntry{}, ErrInvalidCatalogCode
	}

	key := fmt.Sprintf("fipe:%s:%s:%s:%s:price", kind, brandCode, modelCode, yearCode)
	if u.cache != nil {
		if raw, ok := u.cache.Get(ctx, key); ok {
			var entry entities.VehicleCatalogEntry
			if err := json.Unmarshal([]byte(raw), &entry); err == nil {
				return entry, nil
			}
			log.Printf("[pricing][usecase] corrupt cache entry dropped key=%s", key)
		}
	}

	entry, err := u.source.ResolvePrice(ctx, kind, brandCode, modelCode, yearCode)
	if err != nil {
		log.Printf("[pricing][usecase] price lookup failed kind=%s brand=%s model=%s year=%s err=%v", kind, brandCode, modelCode, yearCode, err)
		return entities.VehicleCatalogEntry{}, fmt.Errorf("%w: price: %v", ErrPricingLevelUnavailable, err)
	}
	// Ensure the entry is addressable by the codes the caller selected even
	// when the source omits them from the payload.
	entry.BrandCode = brandCode
	entry.ModelCode = modelCode
	entry.YearCode = yearCode

	if u.cache != nil {
		if b, err := json.Marshal(entry); err == nil {
			if err := u.cache.Set(ctx, key, string(b), u.ttl); err != nil {
				log.Printf("[pricing][usecase] cache write failed key=%s err=%v", key, err)
			}
		}
	}
	return entry, nil
}

func (u *PricingUseCase) cachedRefs(ctx context.Context, key string) ([]entities.CatalogRef, bool) {
	if u.cache == nil {
		return nil, false
	}
	raw, ok := u.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var refs []entities.CatalogRef
	if err := json.Unmarshal([]byte(raw), &refs); err != nil {
		log.Printf("[pricing][usecase] corrupt cache entry dropped key=%s", key)
		return nil, false
	}
	return refs, true
}

func (u *PricingUseCase) storeRefs(ctx context.Context, key string, refs []entities.CatalogRef) {
	if u.cache == nil {
		return
	}
	b, err := json.Marshal(refs)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, key, string(b), u.ttl); err != nil {
		log.Printf("[pricing][usecase] cache write failed key=%s err=%v", key, err)
	}
}

func validVehicleKind(kind entities.VehicleKind) bool {
	switch kind {
	case entities.VehicleKindCar, entities.VehicleKindMotorcycle, entities.VehicleKindTruck:
		return true
	default:
		return false
	}
}
