// internal/handlers/stock_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/verdeo/plantrent-be/internal/adapters/redis_adapter"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
	"github.com/verdeo/plantrent-be/internal/handlers"
	"github.com/verdeo/plantrent-be/test/helpers"
	"github.com/verdeo/plantrent-be/test/mocks"
)

func setupStockHandler(t *testing.T) (*handlers.StockHandler, *mocks.MockExchangeService, ports.CacheRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockExchangeService(ctrl)
	tr := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(tr.Client, time.Hour, helpers.TestLogger())

	handler := handlers.NewStockHandler(mockService, cache, helpers.TestLogger())
	return handler, mockService, cache
}

func TestStockHandler_ListStock(t *testing.T) {
	record := helpers.CreateTestStockRecord()

	t.Run("lists_stock_with_default_params", func(t *testing.T) {
		handler, mockService, _ := setupStockHandler(t)

		mockService.EXPECT().
			ListStock(gomock.Any(), ports.StockListParams{
				Page:      1,
				PageSize:  50,
				SortBy:    "plant_name",
				SortOrder: "asc",
			}).
			Return(&ports.StockListResult{
				Items:      []*domain.StockRecord{record},
				Page:       1,
				PageSize:   50,
				TotalCount: 1,
				TotalPages: 1,
			}, nil)

		req := httptest.NewRequest("GET", "/api/v1/stock", nil)
		w := httptest.NewRecorder()

		handler.ListStock(w, req)

		require.Equal(t, http.StatusOK, w.Result().StatusCode)

		var result ports.StockListResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.Len(t, result.Items, 1)
		assert.Equal(t, record.PlantName, result.Items[0].PlantName)
		assert.Equal(t, int64(1), result.TotalCount)
	})

	t.Run("parses_query_params", func(t *testing.T) {
		handler, mockService, _ := setupStockHandler(t)

		mockService.EXPECT().
			ListStock(gomock.Any(), ports.StockListParams{
				Search:    "ficus",
				Page:      2,
				PageSize:  100, // limit is capped at 100
				SortBy:    "available_stock",
				SortOrder: "desc",
			}).
			Return(&ports.StockListResult{Page: 2, PageSize: 100}, nil)

		req := httptest.NewRequest("GET",
			"/api/v1/stock?page=2&limit=500&search=ficus&sort=available_stock&order=desc", nil)
		w := httptest.NewRecorder()

		handler.ListStock(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("serves_repeat_requests_from_cache", func(t *testing.T) {
		handler, mockService, _ := setupStockHandler(t)

		mockService.EXPECT().
			ListStock(gomock.Any(), gomock.Any()).
			Return(&ports.StockListResult{Items: []*domain.StockRecord{record}}, nil).
			Times(1)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("GET", "/api/v1/stock", nil)
			w := httptest.NewRecorder()
			handler.ListStock(w, req)
			require.Equal(t, http.StatusOK, w.Result().StatusCode)
		}
	})

	t.Run("service_error", func(t *testing.T) {
		handler, mockService, _ := setupStockHandler(t)

		mockService.EXPECT().
			ListStock(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database connection failed"))

		req := httptest.NewRequest("GET", "/api/v1/stock", nil)
		w := httptest.NewRecorder()

		handler.ListStock(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}

func TestStockHandler_GetStock(t *testing.T) {
	record := helpers.CreateTestStockRecord()

	tests := []struct {
		name           string
		plantTypeID    string
		setupMocks     func(*mocks.MockExchangeService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:        "returns_stock_record",
			plantTypeID: record.PlantTypeID.String(),
			setupMocks: func(m *mocks.MockExchangeService) {
				m.EXPECT().
					GetStock(gomock.Any(), record.PlantTypeID).
					Return(record, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.StockRecord
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, record.PlantTypeID, response.PlantTypeID)
				assert.Equal(t, record.AvailableStock, response.AvailableStock)
				assert.Equal(t, record.RentedStock, response.RentedStock)
			},
		},
		{
			name:           "invalid_uuid",
			plantTypeID:    "not-a-uuid",
			setupMocks:     func(m *mocks.MockExchangeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "stock_not_found",
			plantTypeID: uuid.New().String(),
			setupMocks: func(m *mocks.MockExchangeService) {
				m.EXPECT().
					GetStock(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrStockNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "service_error",
			plantTypeID: record.PlantTypeID.String(),
			setupMocks: func(m *mocks.MockExchangeService) {
				m.EXPECT().
					GetStock(gomock.Any(), record.PlantTypeID).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService, _ := setupStockHandler(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/stock/"+tt.plantTypeID, nil)
			req.SetPathValue("id", tt.plantTypeID)
			w := httptest.NewRecorder()

			handler.GetStock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestStockHandler_ReceiveStock(t *testing.T) {
	plantTypeID := uuid.New()
	actorID := uuid.New()

	tests := []struct {
		name           string
		plantTypeID    string
		body           string
		setupMocks     func(*mocks.MockExchangeService)
		expectedStatus int
	}{
		{
			name:        "books_delivery",
			plantTypeID: plantTypeID.String(),
			body: `{
				"quantity": 5,
				"plant_name": "Ficus Benjamina",
				"monthly_rate": "24.50",
				"actor_id": "` + actorID.String() + `"
			}`,
			setupMocks: func(m *mocks.MockExchangeService) {
				m.EXPECT().
					ReceiveStock(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params ports.ReceiveStockParams) (*domain.StockRecord, error) {
						assert.Equal(t, plantTypeID, params.PlantTypeID)
						assert.Equal(t, 5, params.Quantity)
						assert.Equal(t, "Ficus Benjamina", params.PlantName)
						assert.Equal(t, actorID, params.ActorID)
						assert.True(t, decimal.NewFromFloat(24.50).Equal(params.MonthlyRate))
						return helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
							r.PlantTypeID = plantTypeID
							r.AvailableStock = 15
						}), nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_uuid",
			plantTypeID:    "not-a-uuid",
			body:           `{"quantity": 5, "actor_id": "` + actorID.String() + `"}`,
			setupMocks:     func(m *mocks.MockExchangeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_zero_quantity",
			plantTypeID:    plantTypeID.String(),
			body:           `{"quantity": 0, "actor_id": "` + actorID.String() + `"}`,
			setupMocks:     func(m *mocks.MockExchangeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_negative_quantity",
			plantTypeID:    plantTypeID.String(),
			body:           `{"quantity": -3, "actor_id": "` + actorID.String() + `"}`,
			setupMocks:     func(m *mocks.MockExchangeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "requires_actor_id",
			plantTypeID:    plantTypeID.String(),
			body:           `{"quantity": 5}`,
			setupMocks:     func(m *mocks.MockExchangeService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "service_error",
			plantTypeID: plantTypeID.String(),
			body:        `{"quantity": 5, "actor_id": "` + actorID.String() + `"}`,
			setupMocks: func(m *mocks.MockExchangeService) {
				m.EXPECT().
					ReceiveStock(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService, _ := setupStockHandler(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest("POST", "/api/v1/stock/"+tt.plantTypeID+"/receive",
				bytes.NewBufferString(tt.body))
			req.SetPathValue("id", tt.plantTypeID)
			w := httptest.NewRecorder()

			handler.ReceiveStock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestStockHandler_ReceiveStock_InvalidatesStockCache(t *testing.T) {
	ctx := context.Background()
	plantTypeID := uuid.New()

	handler, mockService, cache := setupStockHandler(t)

	require.NoError(t, cache.Set(ctx, "stock:list:p1", "cached stock"))
	require.NoError(t, cache.Set(ctx, "dash:main", "cached dashboard"))
	require.NoError(t, cache.Set(ctx, "exch:req-1", "unrelated"))

	mockService.EXPECT().
		ReceiveStock(gomock.Any(), gomock.Any()).
		Return(helpers.CreateTestStockRecord(), nil)

	body := `{"quantity": 5, "actor_id": "` + uuid.New().String() + `"}`
	req := httptest.NewRequest("POST", "/api/v1/stock/"+plantTypeID.String()+"/receive",
		bytes.NewBufferString(body))
	req.SetPathValue("id", plantTypeID.String())
	w := httptest.NewRecorder()

	handler.ReceiveStock(w, req)
	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	var cached string
	assert.Equal(t, redis_a.ErrCacheMiss, cache.Get(ctx, "stock:list:p1", &cached))
	assert.Equal(t, redis_a.ErrCacheMiss, cache.Get(ctx, "dash:main", &cached))
	require.NoError(t, cache.Get(ctx, "exch:req-1", &cached))
}

func TestStockHandler_ListHoldings(t *testing.T) {
	customerID := uuid.New()
	holding := helpers.CreateTestHolding(func(h *domain.HoldingRecord) {
		h.CustomerID = customerID
	})

	t.Run("lists_customer_holdings", func(t *testing.T) {
		handler, mockService, _ := setupStockHandler(t)

		mockService.EXPECT().
			ListHoldings(gomock.Any(), customerID).
			Return([]domain.HoldingRecord{*holding}, nil)

		req := httptest.NewRequest("GET", "/api/v1/customers/"+customerID.String()+"/holdings", nil)
		req.SetPathValue("id", customerID.String())
		w := httptest.NewRecorder()

		handler.ListHoldings(w, req)

		require.Equal(t, http.StatusOK, w.Result().StatusCode)

		var response struct {
			CustomerID string                 `json:"customer_id"`
			Holdings   []domain.HoldingRecord `json:"holdings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, customerID.String(), response.CustomerID)
		require.Len(t, response.Holdings, 1)
		assert.Equal(t, holding.PlantTypeID, response.Holdings[0].PlantTypeID)
		assert.Equal(t, holding.Quantity, response.Holdings[0].Quantity)
	})

	t.Run("serves_repeat_requests_from_cache", func(t *testing.T) {
		handler, mockService, _ := setupStockHandler(t)

		mockService.EXPECT().
			ListHoldings(gomock.Any(), customerID).
			Return([]domain.HoldingRecord{*holding}, nil).
			Times(1)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("GET", "/api/v1/customers/"+customerID.String()+"/holdings", nil)
			req.SetPathValue("id", customerID.String())
			w := httptest.NewRecorder()
			handler.ListHoldings(w, req)
			require.Equal(t, http.StatusOK, w.Result().StatusCode)
		}
	})

	t.Run("invalid_customer_id", func(t *testing.T) {
		handler, _, _ := setupStockHandler(t)

		req := httptest.NewRequest("GET", "/api/v1/customers/not-a-uuid/holdings", nil)
		req.SetPathValue("id", "not-a-uuid")
		w := httptest.NewRecorder()

		handler.ListHoldings(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("service_error", func(t *testing.T) {
		handler, mockService, _ := setupStockHandler(t)

		mockService.EXPECT().
			ListHoldings(gomock.Any(), customerID).
			Return(nil, errors.New("database connection failed"))

		req := httptest.NewRequest("GET", "/api/v1/customers/"+customerID.String()+"/holdings", nil)
		req.SetPathValue("id", customerID.String())
		w := httptest.NewRecorder()

		handler.ListHoldings(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
