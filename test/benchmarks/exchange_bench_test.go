package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/verdeo/plantrent-be/internal/adapters/db"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
	"github.com/verdeo/plantrent-be/internal/core/services"
	"github.com/verdeo/plantrent-be/test/helpers"
)

func BenchmarkExchangeOperations(b *testing.B) {
	// Setup
	testDB := helpers.SetupTestDB(&testing.T{})
	defer testDB.Database.Close()

	logger := helpers.TestLogger()
	stockRepo := db.NewStockRepository(logger)
	holdingRepo := db.NewHoldingRepository(logger)
	exchangeRepo := db.NewExchangeRepository(logger)
	auditRepo := db.NewAuditRepository(logger)
	service := services.NewExchangeService(
		stockRepo, holdingRepo, exchangeRepo, auditRepo, testDB.Database, logger)
	ctx := context.Background()

	// Pre-seed stock for the read and completion benchmarks
	var plantTypeIDs []uuid.UUID
	for i := 0; i < 100; i++ {
		record := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
			r.PlantName = fmt.Sprintf("Bench Plant %03d", i)
			r.AvailableStock = 1_000_000
		})
		helpers.SeedStockRecords(&testing.T{}, testDB.PgxPool, []*domain.StockRecord{record})
		plantTypeIDs = append(plantTypeIDs, record.PlantTypeID)
	}

	b.Run("ReceiveStock", func(b *testing.B) {
		actorID := uuid.New()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.ReceiveStock(ctx, ports.ReceiveStockParams{
				PlantTypeID: plantTypeIDs[i%len(plantTypeIDs)],
				Quantity:    1,
				ActorID:     actorID,
			})
		}
	})

	b.Run("ValidateInventory", func(b *testing.B) {
		lines := []domain.ExchangeLine{
			{PlantTypeID: plantTypeIDs[0], Quantity: 3},
			{PlantTypeID: plantTypeIDs[1], Quantity: 5},
			{PlantTypeID: plantTypeIDs[2], Quantity: 1},
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.ValidateInventory(ctx, lines)
		}
	})

	b.Run("GetStock", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.GetStock(ctx, plantTypeIDs[i%len(plantTypeIDs)])
		}
	})

	b.Run("ListStock", func(b *testing.B) {
		params := ports.StockListParams{
			Page:      1,
			PageSize:  50,
			SortBy:    "plant_name",
			SortOrder: "asc",
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.ListStock(ctx, params)
		}
	})

	b.Run("CompleteExchange", func(b *testing.B) {
		customerID := uuid.New()
		technicianID := uuid.New()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			exchangeID := uuid.New()
			_, err := testDB.PgxPool.Exec(ctx,
				`INSERT INTO exchange_requests (id, customer_id, status, created_at, updated_at)
				 VALUES ($1, $2, 'scheduled', NOW(), NOW())`,
				exchangeID, customerID)
			if err != nil {
				b.Fatalf("seed exchange request: %v", err)
			}
			b.StartTimer()

			_ = service.CompleteExchange(ctx, &domain.ExchangeOutcome{
				ExchangeRequestID: exchangeID,
				CustomerID:        customerID,
				InstalledPlants: []domain.ExchangeLine{
					{PlantTypeID: plantTypeIDs[i%len(plantTypeIDs)], Quantity: 1},
				},
				CompletedByUserID: technicianID,
			})
		}
	})
}

func BenchmarkManifestParsing(b *testing.B) {
	parser := newManifestParser()
	content := createManifestContent(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parser.ExtractLines(content)
	}
}

func BenchmarkDistinctPlantTypeIDs(b *testing.B) {
	lines := make([]domain.ExchangeLine, 50)
	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
	}
	for i := range lines {
		lines[i] = domain.ExchangeLine{PlantTypeID: ids[i%len(ids)], Quantity: 1 + i}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = domain.DistinctPlantTypeIDs(lines)
	}
}

// Memory allocation benchmarks
func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("StockRecord", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = &domain.StockRecord{
				PlantTypeID:    uuid.New(),
				PlantName:      "Ficus Benjamina",
				AvailableStock: 10,
				RentedStock:    5,
				MonthlyRate:    decimal.NewFromFloat(24.50),
			}
		}
	})

	b.Run("StockListResult", func(b *testing.B) {
		items := make([]*domain.StockRecord, 100)
		for i := range items {
			items[i] = helpers.CreateTestStockRecord()
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = &ports.StockListResult{
				Items:      items,
				Page:       1,
				PageSize:   50,
				TotalCount: 100,
				TotalPages: 2,
			}
		}
	})
}
