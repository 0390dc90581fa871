// internal/core/ports/stock_repository.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/verdeo/plantrent-be/internal/core/domain"
)

// StockRepository defines the persistence port for plant stock counters.
// Mutating methods run against whatever Querier they are handed; the
// synchronizer passes its open transaction.
type StockRepository interface {
	// FindByIDs fetches the stock records for the given plant type IDs in a
	// single batched query, keyed by plant type. Missing IDs are absent from
	// the result, not an error.
	FindByIDs(ctx context.Context, q Querier, ids []uuid.UUID) (map[uuid.UUID]*domain.StockRecord, error)

	FindByID(ctx context.Context, q Querier, plantTypeID uuid.UUID) (*domain.StockRecord, error)
	FindAll(ctx context.Context, q Querier, params StockListParams) ([]*domain.StockRecord, int64, error)

	Save(ctx context.Context, q Querier, record *domain.StockRecord) error

	// ReturnStock moves quantity units from rented back to available.
	// Unconditional: returning stock cannot fail on insufficiency.
	ReturnStock(ctx context.Context, q Querier, plantTypeID uuid.UUID, quantity int) error

	// ClaimStock moves quantity units from available to rented, guarded by
	// available_stock >= quantity at the moment of the write. Returns false
	// when the conditional update matched no row.
	ClaimStock(ctx context.Context, q Querier, plantTypeID uuid.UUID, quantity int) (bool, error)

	// AddStock increases available stock for a received delivery. Returns
	// false when no stock record exists for the plant type.
	AddStock(ctx context.Context, q Querier, plantTypeID uuid.UUID, quantity int) (bool, error)
}

// StockListParams holds query parameters for listing stock records
type StockListParams struct {
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
}

// StockListResult represents paginated stock listing results
type StockListResult struct {
	Items      []*domain.StockRecord `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalCount int64                 `json:"total_count"`
	TotalPages int                   `json:"total_pages"`
}
