// internal/adapters/db/stock_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
)

// stockRepository implements ports.StockRepository
type stockRepository struct {
	logger *slog.Logger
}

// NewStockRepository creates a new stock repository
func NewStockRepository(logger *slog.Logger) ports.StockRepository {
	return &stockRepository{
		logger: logger.With(slog.String("repository", "stock")),
	}
}

const stockColumns = `plant_type_id, plant_name, available_stock, rented_stock, monthly_rate, created_at, updated_at`

// FindByIDs fetches stock records for the given plant type IDs in one
// batched query, keyed by plant type ID.
func (r *stockRepository) FindByIDs(ctx context.Context, q ports.Querier, ids []uuid.UUID) (map[uuid.UUID]*domain.StockRecord, error) {
	records := make(map[uuid.UUID]*domain.StockRecord, len(ids))
	if len(ids) == 0 {
		return records, nil
	}

	query := `
		SELECT ` + stockColumns + `
		FROM plant_stock
		WHERE plant_type_id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		record, err := scanStockRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock record: %w", err)
		}
		records[record.PlantTypeID] = record
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// FindByID retrieves a stock record by plant type ID
func (r *stockRepository) FindByID(ctx context.Context, q ports.Querier, plantTypeID uuid.UUID) (*domain.StockRecord, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM plant_stock
		WHERE plant_type_id = $1`

	record, err := scanStockRecord(q.QueryRow(ctx, query, plantTypeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find stock record: %w", err)
	}

	return record, nil
}

// FindAll retrieves stock records with filtering and pagination
func (r *stockRepository) FindAll(ctx context.Context, q ports.Querier, params ports.StockListParams) ([]*domain.StockRecord, int64, error) {
	qb := squirrel.Select(
		"plant_type_id", "plant_name", "available_stock", "rented_stock",
		"monthly_rate", "created_at", "updated_at",
	).From("plant_stock").
		PlaceholderFormat(squirrel.Dollar)

	if params.Search != "" {
		qb = qb.Where("plant_name ILIKE ?", "%"+params.Search+"%")
	}

	countQb := squirrel.Select("COUNT(*)").From("plant_stock").
		PlaceholderFormat(squirrel.Dollar)
	if params.Search != "" {
		countQb = countQb.Where("plant_name ILIKE ?", "%"+params.Search+"%")
	}
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count stock records: %w", err)
	}

	orderBy := "plant_name ASC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}
		switch params.SortBy {
		case "available":
			orderBy = fmt.Sprintf("available_stock %s", direction)
		case "rented":
			orderBy = fmt.Sprintf("rented_stock %s", direction)
		case "updated":
			orderBy = fmt.Sprintf("updated_at %s", direction)
		default:
			orderBy = fmt.Sprintf("plant_name %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

	if params.PageSize > 0 {
		qb = qb.Limit(uint64(params.PageSize)).
			Offset(uint64((params.Page - 1) * params.PageSize))
	}

	listSQL, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query stock records: %w", err)
	}
	defer rows.Close()

	var records []*domain.StockRecord
	for rows.Next() {
		record, err := scanStockRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan stock record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, totalCount, nil
}

// Save creates a new stock record
func (r *stockRepository) Save(ctx context.Context, q ports.Querier, record *domain.StockRecord) error {
	query := `
		INSERT INTO plant_stock (
			plant_type_id, plant_name, available_stock, rented_stock,
			monthly_rate, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		record.PlantTypeID, record.PlantName, record.AvailableStock,
		record.RentedStock, record.MonthlyRate, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock record: %w", err)
	}

	r.logger.DebugContext(ctx, "stock record saved",
		slog.String("plant_type_id", record.PlantTypeID.String()),
		slog.String("plant_name", record.PlantName))

	return nil
}

// ReturnStock moves quantity units from rented back to available. Returns
// are unconditional; rented_stock is floored at zero so untracked field
// drift cannot push the counter negative.
func (r *stockRepository) ReturnStock(ctx context.Context, q ports.Querier, plantTypeID uuid.UUID, quantity int) error {
	query := `
		UPDATE plant_stock
		SET available_stock = available_stock + $2,
		    rented_stock = GREATEST(rented_stock - $2, 0),
		    updated_at = NOW()
		WHERE plant_type_id = $1`

	if _, err := q.Exec(ctx, query, plantTypeID, quantity); err != nil {
		return fmt.Errorf("failed to return stock: %w", err)
	}

	r.logger.DebugContext(ctx, "stock returned",
		slog.String("plant_type_id", plantTypeID.String()),
		slog.Int("quantity", quantity))

	return nil
}

// ClaimStock is the conditional atomic decrement: available to rented, only
// where available_stock still covers the quantity at the moment of the
// write. Zero rows affected reports false instead of over-committing.
func (r *stockRepository) ClaimStock(ctx context.Context, q ports.Querier, plantTypeID uuid.UUID, quantity int) (bool, error) {
	query := `
		UPDATE plant_stock
		SET available_stock = available_stock - $2,
		    rented_stock = rented_stock + $2,
		    updated_at = NOW()
		WHERE plant_type_id = $1 AND available_stock >= $2`

	tag, err := q.Exec(ctx, query, plantTypeID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to claim stock: %w", err)
	}

	claimed := tag.RowsAffected() > 0
	if !claimed {
		r.logger.DebugContext(ctx, "stock claim matched no rows",
			slog.String("plant_type_id", plantTypeID.String()),
			slog.Int("quantity", quantity))
	}

	return claimed, nil
}

// AddStock increases available stock for a received delivery
func (r *stockRepository) AddStock(ctx context.Context, q ports.Querier, plantTypeID uuid.UUID, quantity int) (bool, error) {
	query := `
		UPDATE plant_stock
		SET available_stock = available_stock + $2,
		    updated_at = NOW()
		WHERE plant_type_id = $1`

	tag, err := q.Exec(ctx, query, plantTypeID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to add stock: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanStockRecord(row pgx.Row) (*domain.StockRecord, error) {
	record := &domain.StockRecord{}
	err := row.Scan(
		&record.PlantTypeID, &record.PlantName, &record.AvailableStock,
		&record.RentedStock, &record.MonthlyRate, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}
