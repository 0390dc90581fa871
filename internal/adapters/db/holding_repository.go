// internal/adapters/db/holding_repository.go
package db

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

// holdingRepository implements ports.HoldingRepository
type holdingRepository struct {
	logger *slog.Logger
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(logger *slog.Logger) ports.HoldingRepository {
	return &holdingRepository{
		logger: logger.With(slog.String("repository", "holding")),
	}
}

const holdingColumns = `id, customer_id, plant_type_id, quantity, status, created_at, updated_at`

// FindByCustomerAndType returns the customer's active holding for a plant
// type, or nil when none exists.
func (r *holdingRepository) FindByCustomerAndType(ctx context.Context, q ports.Querier, customerID, plantTypeID uuid.UUID) (*domain.HoldingRecord, error) {
	query := `
		SELECT ` + holdingColumns + `
		FROM customer_holdings
		WHERE customer_id = $1 AND plant_type_id = $2 AND status = $3`

	holding, err := scanHolding(q.QueryRow(ctx, query, customerID, plantTypeID, domain.HoldingActive))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find holding: %w", err)
	}

	return holding, nil
}

// ListByCustomer retrieves all active holdings for a customer
func (r *holdingRepository) ListByCustomer(ctx context.Context, q ports.Querier, customerID uuid.UUID) ([]domain.HoldingRecord, error) {
	query := `
		SELECT ` + holdingColumns + `
		FROM customer_holdings
		WHERE customer_id = $1 AND status = $2
		ORDER BY created_at`

	rows, err := q.Query(ctx, query, customerID, domain.HoldingActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []domain.HoldingRecord
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, *holding)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return holdings, nil
}

// Create inserts a new holding
func (r *holdingRepository) Create(ctx context.Context, q ports.Querier, holding *domain.HoldingRecord) error {
	query := `
		INSERT INTO customer_holdings (
			id, customer_id, plant_type_id, quantity, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		holding.ID, holding.CustomerID, holding.PlantTypeID,
		holding.Quantity, holding.Status, holding.CreatedAt, holding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}

	r.logger.DebugContext(ctx, "holding created",
		slog.String("customer_id", holding.CustomerID.String()),
		slog.String("plant_type_id", holding.PlantTypeID.String()),
		slog.Int("quantity", holding.Quantity))

	return nil
}

// SetQuantity persists a new quantity for an existing holding
func (r *holdingRepository) SetQuantity(ctx context.Context, q ports.Querier, id uuid.UUID, quantity int) error {
	query := `UPDATE customer_holdings SET quantity = $2, updated_at = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update holding quantity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("holding not found: %s", id)
	}

	return nil
}

// Delete removes a holding outright
func (r *holdingRepository) Delete(ctx context.Context, q ports.Querier, id uuid.UUID) error {
	query := `DELETE FROM customer_holdings WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("holding not found: %s", id)
	}

	r.logger.DebugContext(ctx, "holding deleted", slog.String("id", id.String()))

	return nil
}

func scanHolding(row pgx.Row) (*domain.HoldingRecord, error) {
	holding := &domain.HoldingRecord{}
	err := row.Scan(
		&holding.ID, &holding.CustomerID, &holding.PlantTypeID,
		&holding.Quantity, &holding.Status, &holding.CreatedAt, &holding.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return holding, nil
}
