// internal/core/domain/audit.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit action kinds
const (
	ActionExchangeCompleted = "exchange.completed"
	ActionStockReceived     = "stock.received"
)

// Audit entity types
const (
	EntityExchangeRequest = "exchange_request"
	EntityStockRecord     = "stock_record"
)

// AuditEntry records who changed what. Entries are append-only; this core
// never reads them back.
type AuditEntry struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    uuid.UUID      `json:"actor_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Payload    map[string]any `json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewExchangeAudit builds the audit entry for a completed exchange,
// summarizing the full removed and installed plant lists.
func NewExchangeAudit(outcome *ExchangeOutcome, completedAt time.Time) *AuditEntry {
	return &AuditEntry{
		ID:         uuid.New(),
		ActorID:    outcome.CompletedByUserID,
		Action:     ActionExchangeCompleted,
		EntityType: EntityExchangeRequest,
		EntityID:   outcome.ExchangeRequestID,
		Payload: map[string]any{
			"customer_id":      outcome.CustomerID,
			"removed_plants":   outcome.RemovedPlants,
			"installed_plants": outcome.InstalledPlants,
			"completed_at":     completedAt,
		},
		CreatedAt: time.Now(),
	}
}
