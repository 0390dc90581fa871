// internal/core/domain/holding.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HoldingStatus represents the lifecycle state of a customer holding
type HoldingStatus string

const (
	HoldingActive   HoldingStatus = "active"
	HoldingInactive HoldingStatus = "inactive"
)

// HoldingRecord tracks how many units of a plant type are installed at a
// customer site. A holding never persists with Quantity <= 0; reducing it
// to zero deletes the row instead.
type HoldingRecord struct {
	ID          uuid.UUID     `json:"id"`
	CustomerID  uuid.UUID     `json:"customer_id"`
	PlantTypeID uuid.UUID     `json:"plant_type_id"`
	Quantity    int           `json:"quantity"`
	Status      HoldingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewHolding creates an active holding for the first install of a plant
// type at a customer site.
func NewHolding(customerID, plantTypeID uuid.UUID, quantity int) *HoldingRecord {
	now := time.Now()
	return &HoldingRecord{
		ID:          uuid.New(),
		CustomerID:  customerID,
		PlantTypeID: plantTypeID,
		Quantity:    quantity,
		Status:      HoldingActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MonthlyValue returns the holding's rental value at the given per-unit rate.
func (h *HoldingRecord) MonthlyValue(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(h.Quantity)))
}
