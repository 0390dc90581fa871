// internal/adapters/db/audit_repository.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
)

// auditRepository implements ports.AuditLog over the audit_log table
type auditRepository struct {
	logger *slog.Logger
}

// NewAuditRepository creates a new audit log repository
func NewAuditRepository(logger *slog.Logger) ports.AuditLog {
	return &auditRepository{
		logger: logger.With(slog.String("repository", "audit")),
	}
}

// Append writes one audit entry on the caller's Querier. Run inside the
// synchronizer's transaction, a failure here rolls the whole exchange back.
func (r *auditRepository) Append(ctx context.Context, q ports.Querier, entry *domain.AuditEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	query := `
		INSERT INTO audit_log (
			id, actor_id, action, entity_type, entity_id, payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = q.Exec(ctx, query,
		entry.ID, entry.ActorID, entry.Action, entry.EntityType,
		entry.EntityID, payload, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	r.logger.DebugContext(ctx, "audit entry appended",
		slog.String("action", entry.Action),
		slog.String("entity_id", entry.EntityID.String()))

	return nil
}
