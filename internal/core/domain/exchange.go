// internal/core/domain/exchange.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExchangeStatus represents the state of an exchange request
type ExchangeStatus string

// Exchange request statuses
const (
	ExchangePending   ExchangeStatus = "pending"
	ExchangeScheduled ExchangeStatus = "scheduled"
	ExchangeCompleted ExchangeStatus = "completed"
	ExchangeCancelled ExchangeStatus = "cancelled"
)

// ExchangeRequest is the scheduling record for a plant swap at a customer
// site. Its lifecycle is owned by the scheduling workflow; the synchronizer
// only flips it to completed.
type ExchangeRequest struct {
	ID              uuid.UUID      `json:"id"`
	CustomerID      uuid.UUID      `json:"customer_id"`
	Status          ExchangeStatus `json:"status"`
	ScheduledDate   *time.Time     `json:"scheduled_date,omitempty"`
	CompletionNotes string         `json:"completion_notes,omitempty"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	CompletedBy     *uuid.UUID     `json:"completed_by,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ExchangeLine is one plant type with a quantity, as removed from or
// installed at a customer site.
type ExchangeLine struct {
	PlantTypeID uuid.UUID `json:"plant_type_id"`
	Quantity    int       `json:"quantity"`
}

// ExchangeOutcome describes a completed exchange visit: the plants the
// technician removed and the plants installed in their place. The same
// plant type may appear on both sides of a like-for-like swap; the two
// lines are applied independently, never netted.
type ExchangeOutcome struct {
	ExchangeRequestID uuid.UUID      `json:"exchange_request_id"`
	CustomerID        uuid.UUID      `json:"customer_id"`
	RemovedPlants     []ExchangeLine `json:"removed_plants"`
	InstalledPlants   []ExchangeLine `json:"installed_plants"`
	CompletionNotes   string         `json:"completion_notes,omitempty"`
	CompletedByUserID uuid.UUID      `json:"completed_by_user_id"`
}

// Validate performs domain validation on the exchange outcome
func (o *ExchangeOutcome) Validate() error {
	if o.ExchangeRequestID == uuid.Nil {
		return fmt.Errorf("exchange_request_id is required")
	}
	if o.CustomerID == uuid.Nil {
		return fmt.Errorf("customer_id is required")
	}
	if o.CompletedByUserID == uuid.Nil {
		return fmt.Errorf("completed_by_user_id is required")
	}
	for _, line := range o.RemovedPlants {
		if err := line.validate(); err != nil {
			return fmt.Errorf("removed plants: %w", err)
		}
	}
	for _, line := range o.InstalledPlants {
		if err := line.validate(); err != nil {
			return fmt.Errorf("installed plants: %w", err)
		}
	}
	return nil
}

func (l ExchangeLine) validate() error {
	if l.PlantTypeID == uuid.Nil {
		return fmt.Errorf("plant_type_id is required")
	}
	if l.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

// DistinctPlantTypeIDs returns the distinct plant type IDs of the given
// lines, preserving first-seen order.
func DistinctPlantTypeIDs(lines []ExchangeLine) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.PlantTypeID]; ok {
			continue
		}
		seen[line.PlantTypeID] = struct{}{}
		ids = append(ids, line.PlantTypeID)
	}
	return ids
}
