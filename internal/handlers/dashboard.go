package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/verdeo/plantrent-be/internal/adapters/db"
	redis_a "github.com/verdeo/plantrent-be/internal/adapters/redis_adapter"
	"github.com/verdeo/plantrent-be/internal/core/ports"
)

// DashboardHandler serves the fleet overview: stock totals, utilization
// and recent ledger activity aggregated across the whole inventory.
type DashboardHandler struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *db.Database, cache ports.CacheRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		db:     db,
		cache:  cache,
		logger: logger.With(slog.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Try cache first
	cacheKey := redis_a.BuildKey(redis_a.PrefixDashboard, "main")
	var dashboard DashboardData

	err := h.cache.GetOrSet(ctx, cacheKey, &dashboard, func() (interface{}, error) {
		return h.loadDashboardData(ctx)
	}, 5*time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

func (h *DashboardHandler) loadDashboardData(ctx context.Context) (*DashboardData, error) {
	dashboard := &DashboardData{
		Timestamp: time.Now(),
	}

	// Fleet-wide counters. COALESCE keeps the scan happy on an empty ledger.
	summaryQuery := `
		SELECT
			COUNT(*) as plant_types,
			COALESCE(SUM(available_stock), 0) as total_available,
			COALESCE(SUM(rented_stock), 0) as total_rented,
			COALESCE(SUM(rented_stock * monthly_rate), 0) as monthly_rental_value
		FROM plant_stock
	`

	err := h.db.QueryRow(ctx, summaryQuery).Scan(
		&dashboard.Summary.PlantTypes,
		&dashboard.Summary.TotalAvailable,
		&dashboard.Summary.TotalRented,
		&dashboard.Summary.MonthlyRentalValue,
	)
	if err != nil {
		return nil, err
	}

	totalUnits := dashboard.Summary.TotalAvailable + dashboard.Summary.TotalRented
	if totalUnits > 0 {
		dashboard.Summary.UtilizationPercent = decimal.NewFromInt(dashboard.Summary.TotalRented).
			Div(decimal.NewFromInt(totalUnits)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	activeQuery := `
		SELECT COUNT(DISTINCT customer_id), COALESCE(SUM(quantity), 0)
		FROM customer_holdings
		WHERE status = 'active'
	`
	if err := h.db.QueryRow(ctx, activeQuery).Scan(
		&dashboard.Summary.ActiveCustomers,
		&dashboard.Summary.UnitsOnSite,
	); err != nil {
		return nil, err
	}

	// Most-rented plant types
	topQuery := `
		SELECT plant_type_id, plant_name, available_stock, rented_stock, monthly_rate
		FROM plant_stock
		WHERE rented_stock > 0
		ORDER BY rented_stock DESC, plant_name ASC
		LIMIT 10
	`

	rows, err := h.db.Query(ctx, topQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var top TopRentedPlant
		if err := rows.Scan(&top.PlantTypeID, &top.PlantName, &top.AvailableStock, &top.RentedStock, &top.MonthlyRate); err != nil {
			continue
		}
		dashboard.TopRented = append(dashboard.TopRented, top)
	}

	// Recent ledger activity; the dashboard survives without it
	activityQuery := `
		SELECT action, entity_type, entity_id, payload, created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT 20
	`

	actRows, err := h.db.Query(ctx, activityQuery)
	if err == nil {
		defer actRows.Close()
		for actRows.Next() {
			var activity RecentActivity
			if err := actRows.Scan(&activity.Action, &activity.EntityType, &activity.EntityID, &activity.Details, &activity.Timestamp); err == nil {
				dashboard.RecentActivity = append(dashboard.RecentActivity, activity)
			}
		}
	}

	return dashboard, nil
}

// Type definitions

type DashboardData struct {
	Summary        DashboardSummary `json:"summary"`
	TopRented      []TopRentedPlant `json:"top_rented"`
	RecentActivity []RecentActivity `json:"recent_activity"`
	Timestamp      time.Time        `json:"timestamp"`
}

type DashboardSummary struct {
	PlantTypes         int64           `json:"plant_types"`
	TotalAvailable     int64           `json:"total_available"`
	TotalRented        int64           `json:"total_rented"`
	UtilizationPercent decimal.Decimal `json:"utilization_percent"`
	MonthlyRentalValue decimal.Decimal `json:"monthly_rental_value"`
	ActiveCustomers    int64           `json:"active_customers"`
	UnitsOnSite        int64           `json:"units_on_site"`
}

type TopRentedPlant struct {
	PlantTypeID    uuid.UUID       `json:"plant_type_id"`
	PlantName      string          `json:"plant_name"`
	AvailableStock int             `json:"available_stock"`
	RentedStock    int             `json:"rented_stock"`
	MonthlyRate    decimal.Decimal `json:"monthly_rate"`
}

type RecentActivity struct {
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   uuid.UUID              `json:"entity_id"`
	Timestamp  time.Time              `json:"timestamp"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Helper methods

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *DashboardHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
