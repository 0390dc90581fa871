// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/verdeo/plantrent-be/internal/adapters/db"
	"github.com/verdeo/plantrent-be/internal/pkg/config"
)

// CleanupProcessor handles retention tasks
type CleanupProcessor struct {
	db     *db.Database
	config *config.Config
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(db *db.Database, config *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     db,
		config: config,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupAuditLog prunes audit entries past the retention window. The audit
// log is append-only; this job is the only thing that ever deletes from it.
func (p *CleanupProcessor) CleanupAuditLog(ctx context.Context, t *asynq.Task) error {
	retentionDays := p.config.Audit.RetentionDays
	if retentionDays <= 0 {
		p.logger.WarnContext(ctx, "audit retention disabled, skipping cleanup")
		return nil
	}

	p.logger.InfoContext(ctx, "cleaning up audit log",
		slog.Int("retention_days", retentionDays))

	query := `DELETE FROM audit_log WHERE created_at < NOW() - ($1 * INTERVAL '1 day')`

	result, err := p.db.Exec(ctx, query, retentionDays)
	if err != nil {
		return fmt.Errorf("failed to cleanup audit log: %w", err)
	}

	p.logger.InfoContext(ctx, "audit log cleaned up",
		slog.Int64("rows_deleted", result.RowsAffected()))

	return nil
}
