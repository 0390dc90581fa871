// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for exchange completion
var (
	ErrExchangeNotFound         = errors.New("exchange request not found")
	ErrExchangeAlreadyCompleted = errors.New("exchange request already completed")
	ErrStockNotFound            = errors.New("stock record not found")
)

// UnknownPlantTypeError indicates an install referenced a plant type with
// no stock record.
type UnknownPlantTypeError struct {
	PlantTypeID uuid.UUID
}

func (e *UnknownPlantTypeError) Error() string {
	return fmt.Sprintf("unknown plant type: %s", e.PlantTypeID)
}

// InsufficientStockError indicates available stock cannot cover the
// requested install quantity at read time.
type InsufficientStockError struct {
	PlantTypeID uuid.UUID
	PlantName   string
	Required    int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: required %d, available %d",
		e.PlantName, e.Required, e.Available)
}

// StockContentionError indicates the conditional stock decrement matched no
// rows even though the pre-check passed: a concurrent completion consumed
// the stock between read and write. Callers should refresh and retry rather
// than reduce the requested quantity.
type StockContentionError struct {
	PlantTypeID uuid.UUID
	Required    int
}

func (e *StockContentionError) Error() string {
	return fmt.Sprintf("stock contention on plant type %s: concurrent update claimed the remaining units (required %d)",
		e.PlantTypeID, e.Required)
}
