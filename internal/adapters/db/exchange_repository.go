// internal/adapters/db/exchange_repository.go
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

// exchangeRepository implements ports.ExchangeRepository
type exchangeRepository struct {
	logger *slog.Logger
}

// NewExchangeRepository creates a new exchange request repository
func NewExchangeRepository(logger *slog.Logger) ports.ExchangeRepository {
	return &exchangeRepository{
		logger: logger.With(slog.String("repository", "exchange")),
	}
}

// FindByID retrieves an exchange request by ID, or nil when none exists
func (r *exchangeRepository) FindByID(ctx context.Context, q ports.Querier, id uuid.UUID) (*domain.ExchangeRequest, error) {
	query := `
		SELECT id, customer_id, status, scheduled_date,
		       completion_notes, completed_at, completed_by,
		       created_at, updated_at
		FROM exchange_requests
		WHERE id = $1`

	request := &domain.ExchangeRequest{}
	var notes *string

	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.CustomerID, &request.Status, &request.ScheduledDate,
		&notes, &request.CompletedAt, &request.CompletedBy,
		&request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find exchange request: %w", err)
	}

	if notes != nil {
		request.CompletionNotes = *notes
	}

	return request, nil
}

// ClaimCompletion flips the request to completed, guarded by its current
// status. The rows-affected result is the idempotency signal: zero rows
// means the request is missing or already completed.
func (r *exchangeRepository) ClaimCompletion(ctx context.Context, q ports.Querier, id, completedBy uuid.UUID, notes string, completedAt time.Time) (bool, error) {
	query := `
		UPDATE exchange_requests
		SET status = $2,
		    completed_by = $3,
		    completion_notes = $4,
		    completed_at = $5,
		    updated_at = $5
		WHERE id = $1 AND status <> $2`

	tag, err := q.Exec(ctx, query, id, domain.ExchangeCompleted, completedBy, notes, completedAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark exchange completed: %w", err)
	}

	claimed := tag.RowsAffected() > 0
	if claimed {
		r.logger.DebugContext(ctx, "exchange request completed",
			slog.String("id", id.String()),
			slog.String("completed_by", completedBy.String()))
	}

	return claimed, nil
}
