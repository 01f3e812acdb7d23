package interfaces

import (
	"context"

	"financiamento_xpto/internal/domain/entities"
)

// IProfileStore is the read-only source of personal pre-fill data at wizard
// start. Owned by the accounts service; this core never writes through it.

type IProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (entities.CustomerProfile, error)
}
