package interfaces

import (
	"context"

	"financiamento_xpto/internal/domain/entities"
)

// ISimulationRepository abstracts DynamoDB persistence for StoredSimulation.
//
// The store is append-only: there is no update or delete, and no dedup
// contract — preventing a re-save of an unmutated draft is the wizard's job
// (dirty flag), not the repository's.

type ISimulationRepository interface {
	Create(ctx context.Context, s entities.StoredSimulation) (entities.StoredSimulation, error)
	GetByID(ctx context.Context, id string) (entities.StoredSimulation, error)
	ListByListingID(ctx context.Context, listingID string) ([]entities.StoredSimulation, error)
}
