// internal/core/ports/exchange_service.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/verdeo/plantrent-be/internal/core/domain"
)

// ExchangeService defines the application service port for the exchange
// inventory engine. This interface is implemented by the application service.
type ExchangeService interface {
	// ValidateInventory is the advisory pre-check: it reports the requested
	// plant types that cannot be covered by available stock as of the read
	// moment. An empty result means the request is satisfiable right now.
	ValidateInventory(ctx context.Context, lines []domain.ExchangeLine) ([]domain.StockShortfall, error)

	// CompleteExchange applies a finished exchange visit atomically: holdings
	// and stock counters move together with the request's terminal status and
	// the audit entry, or not at all.
	CompleteExchange(ctx context.Context, outcome *domain.ExchangeOutcome) error

	// ReceiveStock books a delivery into available stock, creating the stock
	// record on first receipt.
	ReceiveStock(ctx context.Context, params ReceiveStockParams) (*domain.StockRecord, error)

	GetStock(ctx context.Context, plantTypeID uuid.UUID) (*domain.StockRecord, error)
	ListStock(ctx context.Context, params StockListParams) (*StockListResult, error)
	ListHoldings(ctx context.Context, customerID uuid.UUID) ([]domain.HoldingRecord, error)
	GetExchange(ctx context.Context, id uuid.UUID) (*domain.ExchangeRequest, error)
}

// ReceiveStockParams describes a stock delivery. PlantName and MonthlyRate
// are only consulted when the delivery creates a new stock record.
type ReceiveStockParams struct {
	PlantTypeID uuid.UUID       `json:"plant_type_id"`
	PlantName   string          `json:"plant_name,omitempty"`
	MonthlyRate decimal.Decimal `json:"monthly_rate,omitempty"`
	Quantity    int             `json:"quantity"`
	ActorID     uuid.UUID       `json:"actor_id"`
}
