// internal/core/ports/holding_repository.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/verdeo/plantrent-be/internal/core/domain"
)

// HoldingRepository defines the persistence port for customer holdings.
type HoldingRepository interface {
	// FindByCustomerAndType returns the customer's holding for a plant type,
	// or nil when none exists.
	FindByCustomerAndType(ctx context.Context, q Querier, customerID, plantTypeID uuid.UUID) (*domain.HoldingRecord, error)

	ListByCustomer(ctx context.Context, q Querier, customerID uuid.UUID) ([]domain.HoldingRecord, error)

	Create(ctx context.Context, q Querier, holding *domain.HoldingRecord) error

	// SetQuantity persists a new positive quantity for an existing holding.
	SetQuantity(ctx context.Context, q Querier, id uuid.UUID, quantity int) error

	// Delete removes a holding outright. Used when a removal drives the
	// quantity to zero or below.
	Delete(ctx context.Context, q Querier, id uuid.UUID) error
}
