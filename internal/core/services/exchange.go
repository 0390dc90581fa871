// internal/core/services/exchange.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
)

// ExchangeService implements the exchange inventory synchronization engine:
// the advisory stock validator and the transactional exchange synchronizer.
type ExchangeService struct {
	stock    ports.StockRepository
	holdings ports.HoldingRepository
	requests ports.ExchangeRepository
	audit    ports.AuditLog
	db       ports.Database
	logger   *slog.Logger
}

// Statically assert that *ExchangeService implements the ExchangeService interface.
var _ ports.ExchangeService = (*ExchangeService)(nil)

// NewExchangeService creates a new exchange service
func NewExchangeService(
	stock ports.StockRepository,
	holdings ports.HoldingRepository,
	requests ports.ExchangeRepository,
	audit ports.AuditLog,
	db ports.Database,
	logger *slog.Logger,
) *ExchangeService {
	return &ExchangeService{
		stock:    stock,
		holdings: holdings,
		requests: requests,
		audit:    audit,
		db:       db,
		logger:   logger.With(slog.String("service", "exchange")),
	}
}

// ValidateInventory reports which of the requested plant types lack
// sufficient available stock. The check is advisory: stock can change
// between this read and the actual completion, which re-validates
// atomically. Insufficiency is data here, not an error.
func (s *ExchangeService) ValidateInventory(ctx context.Context, lines []domain.ExchangeLine) ([]domain.StockShortfall, error) {
	shortfalls := make([]domain.StockShortfall, 0)
	if len(lines) == 0 {
		return shortfalls, nil
	}

	records, err := s.stock.FindByIDs(ctx, s.db, domain.DistinctPlantTypeIDs(lines))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock records: %w", err)
	}

	for _, line := range lines {
		record, ok := records[line.PlantTypeID]
		if !ok {
			shortfalls = append(shortfalls, domain.StockShortfall{
				PlantTypeID: line.PlantTypeID,
				PlantName:   domain.UnknownPlantName,
				Required:    line.Quantity,
				Available:   0,
			})
			continue
		}
		if record.AvailableStock < line.Quantity {
			shortfalls = append(shortfalls, domain.StockShortfall{
				PlantTypeID: line.PlantTypeID,
				PlantName:   record.PlantName,
				Required:    line.Quantity,
				Available:   record.AvailableStock,
			})
		}
	}

	return shortfalls, nil
}

// CompleteExchange applies a finished exchange visit in one transaction:
// terminal status claim, removals, installs, audit entry. Any failure rolls
// the whole call back; partial application is never observable.
func (s *ExchangeService) CompleteExchange(ctx context.Context, outcome *domain.ExchangeOutcome) error {
	if err := outcome.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	completedAt := time.Now()

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		// Claim the terminal status first so a repeated call cannot re-apply
		// stock movements.
		claimed, err := s.requests.ClaimCompletion(ctx, tx,
			outcome.ExchangeRequestID, outcome.CompletedByUserID,
			outcome.CompletionNotes, completedAt)
		if err != nil {
			return fmt.Errorf("failed to claim exchange completion: %w", err)
		}
		if !claimed {
			request, err := s.requests.FindByID(ctx, tx, outcome.ExchangeRequestID)
			if err != nil {
				return fmt.Errorf("failed to look up exchange request: %w", err)
			}
			if request == nil {
				return domain.ErrExchangeNotFound
			}
			return domain.ErrExchangeAlreadyCompleted
		}

		// Removals strictly before installs: a like-for-like swap replenishes
		// stock before the install step deducts it.
		if err := s.applyRemovals(ctx, tx, outcome); err != nil {
			return err
		}
		if err := s.applyInstalls(ctx, tx, outcome); err != nil {
			return err
		}

		if err := s.audit.Append(ctx, tx, domain.NewExchangeAudit(outcome, completedAt)); err != nil {
			return fmt.Errorf("failed to append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "exchange completed",
		slog.String("exchange_request_id", outcome.ExchangeRequestID.String()),
		slog.String("customer_id", outcome.CustomerID.String()),
		slog.Int("removed_lines", len(outcome.RemovedPlants)),
		slog.Int("installed_lines", len(outcome.InstalledPlants)))

	return nil
}

// applyRemovals books removed plants out of the customer's holdings and
// back into available stock.
func (s *ExchangeService) applyRemovals(ctx context.Context, q ports.Querier, outcome *domain.ExchangeOutcome) error {
	for _, line := range outcome.RemovedPlants {
		holding, err := s.holdings.FindByCustomerAndType(ctx, q, outcome.CustomerID, line.PlantTypeID)
		if err != nil {
			return fmt.Errorf("failed to look up holding: %w", err)
		}

		switch {
		case holding == nil:
			// Field drift: a plant was removed that was never tracked as a
			// holding. Tolerated, but kept observable.
			s.logger.WarnContext(ctx, "removal references untracked holding",
				slog.String("customer_id", outcome.CustomerID.String()),
				slog.String("plant_type_id", line.PlantTypeID.String()),
				slog.Int("quantity", line.Quantity))
		case holding.Quantity-line.Quantity <= 0:
			if err := s.holdings.Delete(ctx, q, holding.ID); err != nil {
				return fmt.Errorf("failed to delete exhausted holding: %w", err)
			}
		default:
			if err := s.holdings.SetQuantity(ctx, q, holding.ID, holding.Quantity-line.Quantity); err != nil {
				return fmt.Errorf("failed to reduce holding: %w", err)
			}
		}

		// Returning stock is unconditional: units only flow back.
		if err := s.stock.ReturnStock(ctx, q, line.PlantTypeID, line.Quantity); err != nil {
			return fmt.Errorf("failed to return stock: %w", err)
		}
	}

	return nil
}

// applyInstalls deducts installed plants from available stock and books
// them into the customer's holdings. The stock fetch happens after the
// removal step so replenished counts are visible.
func (s *ExchangeService) applyInstalls(ctx context.Context, q ports.Querier, outcome *domain.ExchangeOutcome) error {
	if len(outcome.InstalledPlants) == 0 {
		return nil
	}

	records, err := s.stock.FindByIDs(ctx, q, domain.DistinctPlantTypeIDs(outcome.InstalledPlants))
	if err != nil {
		return fmt.Errorf("failed to fetch stock records: %w", err)
	}

	for _, line := range outcome.InstalledPlants {
		record, ok := records[line.PlantTypeID]
		if !ok {
			return &domain.UnknownPlantTypeError{PlantTypeID: line.PlantTypeID}
		}
		if record.AvailableStock < line.Quantity {
			return &domain.InsufficientStockError{
				PlantTypeID: line.PlantTypeID,
				PlantName:   record.PlantName,
				Required:    line.Quantity,
				Available:   record.AvailableStock,
			}
		}

		// The write-time re-check: only decrement where available_stock still
		// covers the quantity. Zero rows affected means a concurrent
		// completion got there first.
		claimed, err := s.stock.ClaimStock(ctx, q, line.PlantTypeID, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to claim stock: %w", err)
		}
		if !claimed {
			return &domain.StockContentionError{PlantTypeID: line.PlantTypeID, Required: line.Quantity}
		}
		// Keep the snapshot honest for a plant type appearing on multiple
		// install lines.
		record.AvailableStock -= line.Quantity

		holding, err := s.holdings.FindByCustomerAndType(ctx, q, outcome.CustomerID, line.PlantTypeID)
		if err != nil {
			return fmt.Errorf("failed to look up holding: %w", err)
		}
		if holding == nil {
			if err := s.holdings.Create(ctx, q, domain.NewHolding(outcome.CustomerID, line.PlantTypeID, line.Quantity)); err != nil {
				return fmt.Errorf("failed to create holding: %w", err)
			}
		} else {
			if err := s.holdings.SetQuantity(ctx, q, holding.ID, holding.Quantity+line.Quantity); err != nil {
				return fmt.Errorf("failed to increase holding: %w", err)
			}
		}
	}

	return nil
}

// ReceiveStock books a delivery into available stock, creating the stock
// record on the first receipt of a plant type.
func (s *ExchangeService) ReceiveStock(ctx context.Context, params ports.ReceiveStockParams) (*domain.StockRecord, error) {
	if params.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if params.ActorID == uuid.Nil {
		return nil, fmt.Errorf("actor_id is required")
	}

	var record *domain.StockRecord

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		if params.PlantTypeID != uuid.Nil {
			added, err := s.stock.AddStock(ctx, tx, params.PlantTypeID, params.Quantity)
			if err != nil {
				return fmt.Errorf("failed to add stock: %w", err)
			}
			if added {
				record, err = s.stock.FindByID(ctx, tx, params.PlantTypeID)
				if err != nil {
					return fmt.Errorf("failed to reload stock record: %w", err)
				}
				return s.appendReceiptAudit(ctx, tx, params, record)
			}
		}

		// First receipt of this plant type.
		if params.PlantName == "" {
			return fmt.Errorf("plant_name is required for a new plant type")
		}
		record = &domain.StockRecord{
			PlantTypeID:    params.PlantTypeID,
			PlantName:      params.PlantName,
			AvailableStock: params.Quantity,
			MonthlyRate:    params.MonthlyRate,
		}
		record.PrepareForStorage()
		if err := record.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if err := s.stock.Save(ctx, tx, record); err != nil {
			return fmt.Errorf("failed to save stock record: %w", err)
		}
		return s.appendReceiptAudit(ctx, tx, params, record)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "stock received",
		slog.String("plant_type_id", record.PlantTypeID.String()),
		slog.Int("quantity", params.Quantity))

	return record, nil
}

func (s *ExchangeService) appendReceiptAudit(ctx context.Context, q ports.Querier, params ports.ReceiveStockParams, record *domain.StockRecord) error {
	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		ActorID:    params.ActorID,
		Action:     domain.ActionStockReceived,
		EntityType: domain.EntityStockRecord,
		EntityID:   record.PlantTypeID,
		Payload: map[string]any{
			"plant_name":      record.PlantName,
			"quantity":        params.Quantity,
			"available_stock": record.AvailableStock,
		},
		CreatedAt: time.Now(),
	}
	if err := s.audit.Append(ctx, q, entry); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// GetStock retrieves a stock record by plant type ID
func (s *ExchangeService) GetStock(ctx context.Context, plantTypeID uuid.UUID) (*domain.StockRecord, error) {
	record, err := s.stock.FindByID(ctx, s.db, plantTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock record: %w", err)
	}
	if record == nil {
		return nil, domain.ErrStockNotFound
	}
	return record, nil
}

// ListStock retrieves stock records with filtering and pagination
func (s *ExchangeService) ListStock(ctx context.Context, params ports.StockListParams) (*ports.StockListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = 50
	}
	if params.PageSize > 1000 {
		params.PageSize = 1000
	}

	items, totalCount, err := s.stock.FindAll(ctx, s.db, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock records: %w", err)
	}

	totalPages := int(totalCount) / params.PageSize
	if int(totalCount)%params.PageSize > 0 {
		totalPages++
	}

	return &ports.StockListResult{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// ListHoldings retrieves all active holdings for a customer
func (s *ExchangeService) ListHoldings(ctx context.Context, customerID uuid.UUID) ([]domain.HoldingRecord, error) {
	holdings, err := s.holdings.ListByCustomer(ctx, s.db, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

// GetExchange retrieves an exchange request by ID
func (s *ExchangeService) GetExchange(ctx context.Context, id uuid.UUID) (*domain.ExchangeRequest, error) {
	request, err := s.requests.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange request: %w", err)
	}
	if request == nil {
		return nil, domain.ErrExchangeNotFound
	}
	return request, nil
}
