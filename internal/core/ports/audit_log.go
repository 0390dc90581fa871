// internal/core/ports/audit_log.go
package ports

import (
	"context"

	"github.com/verdeo/plantrent-be/internal/core/domain"
)

// AuditLog defines the append-only audit trail port. Append runs on the
// caller's Querier: inside the synchronizer's transaction an audit failure
// rolls the stock mutation back with it.
type AuditLog interface {
	Append(ctx context.Context, q Querier, entry *domain.AuditEntry) error
}
