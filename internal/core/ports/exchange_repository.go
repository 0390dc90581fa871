// internal/core/ports/exchange_repository.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/verdeo/plantrent-be/internal/core/domain"
)

// ExchangeRepository defines the persistence port for exchange requests.
// The scheduling workflow owns the rest of the lifecycle; this core only
// reads requests and flips them to completed.
type ExchangeRepository interface {
	// FindByID returns the exchange request, or nil when none exists.
	FindByID(ctx context.Context, q Querier, id uuid.UUID) (*domain.ExchangeRequest, error)

	// ClaimCompletion flips the request to completed, recording actor, notes
	// and timestamp, guarded by status <> 'completed'. Returns false when the
	// guard matched no row, which callers disambiguate with FindByID.
	ClaimCompletion(ctx context.Context, q Querier, id, completedBy uuid.UUID, notes string, completedAt time.Time) (bool, error)
}
