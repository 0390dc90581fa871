// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownPlantName is reported for plant types without a stock record.
const UnknownPlantName = "Unknown"

// StockRecord tracks per-plant-type stock counters. AvailableStock counts
// units eligible for new deployment; RentedStock counts units currently
// installed at customer sites.
type StockRecord struct {
	PlantTypeID    uuid.UUID       `json:"plant_type_id"`
	PlantName      string          `json:"plant_name"`
	AvailableStock int             `json:"available_stock"`
	RentedStock    int             `json:"rented_stock"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the stock record
func (s *StockRecord) Validate() error {
	if s.PlantName == "" {
		return fmt.Errorf("plant_name is required")
	}
	if s.AvailableStock < 0 {
		return fmt.Errorf("available_stock cannot be negative")
	}
	if s.RentedStock < 0 {
		return fmt.Errorf("rented_stock cannot be negative")
	}
	if s.MonthlyRate.IsNegative() {
		return fmt.Errorf("monthly_rate cannot be negative")
	}
	return nil
}

// TotalUnits returns the total units owned for this plant type.
func (s *StockRecord) TotalUnits() int {
	return s.AvailableStock + s.RentedStock
}

// PrepareForStorage assigns an ID and timestamps before the first insert.
func (s *StockRecord) PrepareForStorage() {
	if s.PlantTypeID == uuid.Nil {
		s.PlantTypeID = uuid.New()
	}
	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

// StockShortfall reports a requested plant type that cannot be satisfied
// from available stock. Plant types without a stock record are reported
// with PlantName set to UnknownPlantName and Available zero.
type StockShortfall struct {
	PlantTypeID uuid.UUID `json:"plant_type_id"`
	PlantName   string    `json:"plant_name"`
	Required    int       `json:"required"`
	Available   int       `json:"available"`
}
