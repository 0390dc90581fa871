// internal/handlers/exchange.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	redis_a "github.com/verdeo/plantrent-be/internal/adapters/redis_adapter"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
	"github.com/verdeo/plantrent-be/internal/workers"
)

// ExchangeHandler handles exchange-related HTTP requests
type ExchangeHandler struct {
	service     ports.ExchangeService
	cache       ports.CacheRepository
	asynqClient *asynq.Client
	logger      *slog.Logger
}

// NewExchangeHandler creates a new exchange handler
func NewExchangeHandler(
	service ports.ExchangeService,
	cache ports.CacheRepository,
	asynqClient *asynq.Client,
	logger *slog.Logger,
) *ExchangeHandler {
	return &ExchangeHandler{
		service:     service,
		cache:       cache,
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "exchange")),
	}
}

// ValidateInventory handles POST /api/v1/inventory/validate
func (h *ExchangeHandler) ValidateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	shortfalls, err := h.service.ValidateInventory(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to validate inventory",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to validate inventory")
		return
	}

	h.respondJSON(w, http.StatusOK, ValidateInventoryResponse{
		Satisfiable: len(shortfalls) == 0,
		Shortfalls:  shortfalls,
	})
}

// CompleteExchange handles POST /api/v1/exchanges/{id}/complete
func (h *ExchangeHandler) CompleteExchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	exchangeID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid exchange ID format")
		return
	}

	var req CompleteExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome := req.ToDomain(exchangeID)
	if err := outcome.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.CompleteExchange(ctx, outcome); err != nil {
		h.respondCompletionError(w, r, exchangeID, err)
		return
	}

	h.logger.InfoContext(ctx, "exchange completed",
		slog.String("exchange_request_id", idStr),
		slog.String("customer_id", outcome.CustomerID.String()))

	// Counters moved: cached stock and holdings views are stale now.
	redis_a.InvalidateStockCache(ctx, h.cache, h.logger)
	_ = h.cache.Delete(ctx, redis_a.BuildKey(redis_a.PrefixExchange, idStr))

	h.enqueueCompletionNotice(r, outcome)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"exchange_request_id": idStr,
		"status":              domain.ExchangeCompleted,
		"message":             "Exchange completed successfully",
	})
}

// GetExchange handles GET /api/v1/exchanges/{id}
func (h *ExchangeHandler) GetExchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	exchangeID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid exchange ID format")
		return
	}

	var exchange domain.ExchangeRequest
	cacheKey := redis_a.BuildKey(redis_a.PrefixExchange, idStr)

	err = h.cache.GetOrSet(ctx, cacheKey, &exchange, func() (interface{}, error) {
		found, err := h.service.GetExchange(ctx, exchangeID)
		if err != nil {
			return nil, err
		}
		return found, nil
	}, 1*time.Minute)

	if err != nil {
		if errors.Is(err, domain.ErrExchangeNotFound) {
			h.respondError(w, http.StatusNotFound, "Exchange request not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get exchange request",
			slog.String("exchange_request_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve exchange request")
		return
	}

	h.respondJSON(w, http.StatusOK, exchange)
}

// respondCompletionError maps completion failures to HTTP statuses: unknown
// request 404, repeated completion 409, stock conflicts 422.
func (h *ExchangeHandler) respondCompletionError(w http.ResponseWriter, r *http.Request, exchangeID uuid.UUID, err error) {
	ctx := r.Context()

	var unknownType *domain.UnknownPlantTypeError
	var insufficient *domain.InsufficientStockError
	var contention *domain.StockContentionError

	switch {
	case errors.Is(err, domain.ErrExchangeNotFound):
		h.respondError(w, http.StatusNotFound, "Exchange request not found")
	case errors.Is(err, domain.ErrExchangeAlreadyCompleted):
		h.respondError(w, http.StatusConflict, "Exchange request already completed")
	case errors.As(err, &unknownType),
		errors.As(err, &insufficient),
		errors.As(err, &contention):
		h.logger.WarnContext(ctx, "exchange completion rejected",
			slog.String("exchange_request_id", exchangeID.String()),
			slog.String("reason", err.Error()))
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.ErrorContext(ctx, "failed to complete exchange",
			slog.String("exchange_request_id", exchangeID.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to complete exchange")
	}
}

// enqueueCompletionNotice queues the notification task. Best effort: the
// exchange is already committed, so a queueing failure is logged, not
// surfaced.
func (h *ExchangeHandler) enqueueCompletionNotice(r *http.Request, outcome *domain.ExchangeOutcome) {
	if h.asynqClient == nil {
		return
	}
	ctx := r.Context()

	payload := workers.ExchangeCompletedPayload{
		ExchangeRequestID: outcome.ExchangeRequestID.String(),
		CustomerID:        outcome.CustomerID.String(),
		CompletedBy:       outcome.CompletedByUserID.String(),
		RemovedLines:      len(outcome.RemovedPlants),
		InstalledLines:    len(outcome.InstalledPlants),
		CompletedAt:       time.Now(),
	}

	b, err := json.Marshal(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal notification payload", slog.String("error", err.Error()))
		return
	}

	task := asynq.NewTask(workers.TypeExchangeCompleted, b)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue notification task", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "completion notification queued",
		slog.String("task_id", info.ID),
		slog.String("exchange_request_id", payload.ExchangeRequestID))
}

// Helper methods

func (h *ExchangeHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ExchangeHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request/Response DTOs

// ExchangeLineRequest is one plant type with a quantity
type ExchangeLineRequest struct {
	PlantTypeID uuid.UUID `json:"plant_type_id"`
	Quantity    int       `json:"quantity"`
}

// ValidateInventoryRequest represents the request body for stock validation
type ValidateInventoryRequest struct {
	Lines []ExchangeLineRequest `json:"lines"`
}

// Validate validates the stock validation request
func (r *ValidateInventoryRequest) Validate() error {
	for _, line := range r.Lines {
		if line.PlantTypeID == uuid.Nil {
			return errors.New("plant_type_id is required")
		}
		if line.Quantity <= 0 {
			return errors.New("quantity must be positive")
		}
	}
	return nil
}

// ToDomain converts the request to domain exchange lines
func (r *ValidateInventoryRequest) ToDomain() []domain.ExchangeLine {
	lines := make([]domain.ExchangeLine, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, domain.ExchangeLine{
			PlantTypeID: line.PlantTypeID,
			Quantity:    line.Quantity,
		})
	}
	return lines
}

// ValidateInventoryResponse reports whether the request is satisfiable
type ValidateInventoryResponse struct {
	Satisfiable bool                    `json:"satisfiable"`
	Shortfalls  []domain.StockShortfall `json:"shortfalls"`
}

// CompleteExchangeRequest represents the request body for completing an exchange
type CompleteExchangeRequest struct {
	CustomerID        uuid.UUID             `json:"customer_id"`
	RemovedPlants     []ExchangeLineRequest `json:"removed_plants"`
	InstalledPlants   []ExchangeLineRequest `json:"installed_plants"`
	CompletionNotes   string                `json:"completion_notes,omitempty"`
	CompletedByUserID uuid.UUID             `json:"completed_by_user_id"`
}

// ToDomain converts the request to a domain exchange outcome
func (r *CompleteExchangeRequest) ToDomain(exchangeID uuid.UUID) *domain.ExchangeOutcome {
	toLines := func(reqs []ExchangeLineRequest) []domain.ExchangeLine {
		lines := make([]domain.ExchangeLine, 0, len(reqs))
		for _, line := range reqs {
			lines = append(lines, domain.ExchangeLine{
				PlantTypeID: line.PlantTypeID,
				Quantity:    line.Quantity,
			})
		}
		return lines
	}

	return &domain.ExchangeOutcome{
		ExchangeRequestID: exchangeID,
		CustomerID:        r.CustomerID,
		RemovedPlants:     toLines(r.RemovedPlants),
		InstalledPlants:   toLines(r.InstalledPlants),
		CompletionNotes:   r.CompletionNotes,
		CompletedByUserID: r.CompletedByUserID,
	}
}
