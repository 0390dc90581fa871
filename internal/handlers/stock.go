// internal/handlers/stock.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	redis_a "github.com/verdeo/plantrent-be/internal/adapters/redis_adapter"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
)

// StockHandler handles stock and holdings HTTP requests
type StockHandler struct {
	service ports.ExchangeService
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service ports.ExchangeService, cache ports.CacheRepository, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		cache:   cache,
		logger:  logger.With(slog.String("handler", "stock")),
	}
}

// ListStock handles GET /api/v1/stock
func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := h.parseListParams(r)

	var result ports.StockListResult
	cacheKey := redis_a.BuildKey(redis_a.PrefixStock, "list",
		fmt.Sprintf("p%d", params.Page),
		fmt.Sprintf("s%d", params.PageSize),
		params.SortBy, params.SortOrder, params.Search)

	err := h.cache.GetOrSet(ctx, cacheKey, &result, func() (interface{}, error) {
		listed, err := h.service.ListStock(ctx, params)
		if err != nil {
			return nil, err
		}
		return listed, nil
	}, 1*time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list stock",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list stock")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetStock handles GET /api/v1/stock/{id}
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	plantTypeID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid plant type ID format")
		return
	}

	record, err := h.service.GetStock(ctx, plantTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			h.respondError(w, http.StatusNotFound, "Stock record not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get stock record",
			slog.String("plant_type_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve stock record")
		return
	}

	h.respondJSON(w, http.StatusOK, record)
}

// ReceiveStock handles POST /api/v1/stock/{id}/receive
func (h *StockHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	plantTypeID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid plant type ID format")
		return
	}

	var req ReceiveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.ReceiveStock(ctx, req.ToParams(plantTypeID))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to receive stock",
			slog.String("plant_type_id", idStr),
			slog.Int("quantity", req.Quantity),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to receive stock")
		return
	}

	h.logger.InfoContext(ctx, "stock received",
		slog.String("plant_type_id", record.PlantTypeID.String()),
		slog.String("plant_name", record.PlantName),
		slog.Int("quantity", req.Quantity))

	// Stock and dashboard views are stale after a delivery.
	redis_a.InvalidateStockCache(ctx, h.cache, h.logger)

	h.respondJSON(w, http.StatusOK, record)
}

// ListHoldings handles GET /api/v1/customers/{id}/holdings
func (h *StockHandler) ListHoldings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	customerID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var holdings []domain.HoldingRecord
	cacheKey := redis_a.BuildKey(redis_a.PrefixHoldings, idStr, "list")

	err = h.cache.GetOrSet(ctx, cacheKey, &holdings, func() (interface{}, error) {
		listed, err := h.service.ListHoldings(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return listed, nil
	}, 1*time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list holdings",
			slog.String("customer_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list holdings")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"customer_id": idStr,
		"holdings":    holdings,
	})
}

// parseListParams parses query parameters for listing stock
func (h *StockHandler) parseListParams(r *http.Request) ports.StockListParams {
	params := ports.StockListParams{
		Page:      1,
		PageSize:  50,
		SortBy:    "plant_name",
		SortOrder: "asc",
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	params.Search = r.URL.Query().Get("search")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}

	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// Helper methods

func (h *StockHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *StockHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// ReceiveStockRequest represents the request body for booking a delivery
type ReceiveStockRequest struct {
	Quantity    int             `json:"quantity"`
	PlantName   string          `json:"plant_name,omitempty"`
	MonthlyRate decimal.Decimal `json:"monthly_rate,omitempty"`
	ActorID     uuid.UUID       `json:"actor_id"`
}

// Validate validates the receive stock request
func (r *ReceiveStockRequest) Validate() error {
	if r.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if r.MonthlyRate.IsNegative() {
		return fmt.Errorf("monthly_rate cannot be negative")
	}
	if r.ActorID == uuid.Nil {
		return fmt.Errorf("actor_id is required")
	}
	return nil
}

// ToParams converts the request to service parameters
func (r *ReceiveStockRequest) ToParams(plantTypeID uuid.UUID) ports.ReceiveStockParams {
	return ports.ReceiveStockParams{
		PlantTypeID: plantTypeID,
		PlantName:   r.PlantName,
		MonthlyRate: r.MonthlyRate,
		Quantity:    r.Quantity,
		ActorID:     r.ActorID,
	}
}
