// internal/core/domain/exchange_test.go
package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdeo/plantrent-be/internal/core/domain"
)

func validOutcome() *domain.ExchangeOutcome {
	return &domain.ExchangeOutcome{
		ExchangeRequestID: uuid.New(),
		CustomerID:        uuid.New(),
		RemovedPlants:     []domain.ExchangeLine{{PlantTypeID: uuid.New(), Quantity: 1}},
		InstalledPlants:   []domain.ExchangeLine{{PlantTypeID: uuid.New(), Quantity: 2}},
		CompletedByUserID: uuid.New(),
	}
}

func TestExchangeOutcome_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.ExchangeOutcome)
		wantErr       bool
		errorContains string
	}{
		{
			name:   "valid_outcome",
			mutate: func(o *domain.ExchangeOutcome) {},
		},
		{
			name: "empty_line_lists_are_valid",
			mutate: func(o *domain.ExchangeOutcome) {
				o.RemovedPlants = nil
				o.InstalledPlants = nil
			},
		},
		{
			name:          "missing_request_id",
			mutate:        func(o *domain.ExchangeOutcome) { o.ExchangeRequestID = uuid.Nil },
			wantErr:       true,
			errorContains: "exchange_request_id",
		},
		{
			name:          "missing_customer_id",
			mutate:        func(o *domain.ExchangeOutcome) { o.CustomerID = uuid.Nil },
			wantErr:       true,
			errorContains: "customer_id",
		},
		{
			name:          "missing_completed_by",
			mutate:        func(o *domain.ExchangeOutcome) { o.CompletedByUserID = uuid.Nil },
			wantErr:       true,
			errorContains: "completed_by_user_id",
		},
		{
			name: "removed_line_without_plant_type",
			mutate: func(o *domain.ExchangeOutcome) {
				o.RemovedPlants = []domain.ExchangeLine{{Quantity: 1}}
			},
			wantErr:       true,
			errorContains: "removed plants",
		},
		{
			name: "installed_line_with_zero_quantity",
			mutate: func(o *domain.ExchangeOutcome) {
				o.InstalledPlants = []domain.ExchangeLine{{PlantTypeID: uuid.New(), Quantity: 0}}
			},
			wantErr:       true,
			errorContains: "installed plants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := validOutcome()
			tt.mutate(outcome)

			err := outcome.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDistinctPlantTypeIDs(t *testing.T) {
	typeA := uuid.New()
	typeB := uuid.New()
	typeC := uuid.New()

	lines := []domain.ExchangeLine{
		{PlantTypeID: typeB, Quantity: 1},
		{PlantTypeID: typeA, Quantity: 2},
		{PlantTypeID: typeB, Quantity: 3},
		{PlantTypeID: typeC, Quantity: 1},
		{PlantTypeID: typeA, Quantity: 5},
	}

	ids := domain.DistinctPlantTypeIDs(lines)

	// First-seen order, duplicates dropped.
	assert.Equal(t, []uuid.UUID{typeB, typeA, typeC}, ids)
}

func TestDistinctPlantTypeIDs_Empty(t *testing.T) {
	assert.Empty(t, domain.DistinctPlantTypeIDs(nil))
}

func TestStockRecord_Validate(t *testing.T) {
	tests := []struct {
		name          string
		record        domain.StockRecord
		wantErr       bool
		errorContains string
	}{
		{
			name: "valid_record",
			record: domain.StockRecord{
				PlantTypeID:    uuid.New(),
				PlantName:      "Ficus Benjamina",
				AvailableStock: 3,
				RentedStock:    1,
				MonthlyRate:    decimal.NewFromFloat(19.99),
			},
		},
		{
			name:          "missing_name",
			record:        domain.StockRecord{PlantTypeID: uuid.New()},
			wantErr:       true,
			errorContains: "plant_name",
		},
		{
			name: "negative_available",
			record: domain.StockRecord{
				PlantName:      "Ficus Benjamina",
				AvailableStock: -1,
			},
			wantErr:       true,
			errorContains: "available_stock",
		},
		{
			name: "negative_rate",
			record: domain.StockRecord{
				PlantName:   "Ficus Benjamina",
				MonthlyRate: decimal.NewFromInt(-5),
			},
			wantErr:       true,
			errorContains: "monthly_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStockRecord_PrepareForStorage(t *testing.T) {
	record := &domain.StockRecord{PlantName: "Ficus Benjamina"}
	record.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, record.PlantTypeID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.False(t, record.UpdatedAt.IsZero())

	// A preset ID survives.
	id := uuid.New()
	record = &domain.StockRecord{PlantTypeID: id, PlantName: "Ficus Benjamina"}
	record.PrepareForStorage()
	assert.Equal(t, id, record.PlantTypeID)
}

func TestHoldingRecord_MonthlyValue(t *testing.T) {
	holding := domain.NewHolding(uuid.New(), uuid.New(), 4)

	value := holding.MonthlyValue(decimal.NewFromFloat(12.50))
	assert.True(t, decimal.NewFromInt(50).Equal(value))
}
