//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/verdeo/plantrent-be/internal/adapters/db"
	redis_a "github.com/verdeo/plantrent-be/internal/adapters/redis_adapter"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/services"
	"github.com/verdeo/plantrent-be/internal/handlers"
	"github.com/verdeo/plantrent-be/test/helpers"
)

type ExchangeE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *ExchangeE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *ExchangeE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *ExchangeE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *ExchangeE2ESuite) TestCompleteExchangeWorkflow() {
	customerID := uuid.New()
	technicianID := uuid.New()
	exchangeID := uuid.New()

	ficus := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.PlantName = "Ficus Benjamina"
		r.AvailableStock = 10
		r.RentedStock = 3
	})
	monstera := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.PlantName = "Monstera Deliciosa"
		r.AvailableStock = 4
		r.RentedStock = 0
	})

	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, []*domain.StockRecord{ficus, monstera})
	helpers.SeedExchangeRequest(s.T(), s.testDB.PgxPool, exchangeID, customerID, domain.ExchangeScheduled)
	helpers.SeedHolding(s.T(), s.testDB.PgxPool, helpers.CreateTestHolding(func(h *domain.HoldingRecord) {
		h.CustomerID = customerID
		h.PlantTypeID = ficus.PlantTypeID
		h.Quantity = 3
	}))

	// 1. Pre-check: the planned install is satisfiable
	resp := s.makeRequest("POST", "/inventory/validate", map[string]interface{}{
		"lines": []map[string]interface{}{
			{"plant_type_id": monstera.PlantTypeID, "quantity": 2},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var validation map[string]interface{}
	s.decodeResponse(resp, &validation)
	s.Equal(true, validation["satisfiable"])

	// 2. Complete the exchange: swap 2 ficus out, 2 monstera in
	resp = s.makeRequest("POST", fmt.Sprintf("/exchanges/%s/complete", exchangeID), map[string]interface{}{
		"customer_id": customerID,
		"removed_plants": []map[string]interface{}{
			{"plant_type_id": ficus.PlantTypeID, "quantity": 2},
		},
		"installed_plants": []map[string]interface{}{
			{"plant_type_id": monstera.PlantTypeID, "quantity": 2},
		},
		"completion_notes":     "seasonal rotation",
		"completed_by_user_id": technicianID,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// 3. The request is now terminal
	resp = s.makeRequest("GET", fmt.Sprintf("/exchanges/%s", exchangeID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var exchange map[string]interface{}
	s.decodeResponse(resp, &exchange)
	s.Equal(string(domain.ExchangeCompleted), exchange["status"])

	// 4. Stock counters moved on both sides
	resp = s.makeRequest("GET", fmt.Sprintf("/stock/%s", ficus.PlantTypeID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var stock map[string]interface{}
	s.decodeResponse(resp, &stock)
	s.Equal(float64(12), stock["available_stock"]) // 10 + 2 returned
	s.Equal(float64(1), stock["rented_stock"])     // 3 - 2 removed

	resp = s.makeRequest("GET", fmt.Sprintf("/stock/%s", monstera.PlantTypeID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &stock)
	s.Equal(float64(2), stock["available_stock"]) // 4 - 2 installed
	s.Equal(float64(2), stock["rented_stock"])

	// 5. Holdings reflect the swap
	resp = s.makeRequest("GET", fmt.Sprintf("/customers/%s/holdings", customerID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var holdingsResp struct {
		Holdings []domain.HoldingRecord `json:"holdings"`
	}
	s.decodeResponse(resp, &holdingsResp)

	byType := make(map[uuid.UUID]int)
	for _, h := range holdingsResp.Holdings {
		byType[h.PlantTypeID] = h.Quantity
	}
	s.Equal(1, byType[ficus.PlantTypeID])
	s.Equal(2, byType[monstera.PlantTypeID])

	// 6. Repeating the completion is rejected
	resp = s.makeRequest("POST", fmt.Sprintf("/exchanges/%s/complete", exchangeID), map[string]interface{}{
		"customer_id": customerID,
		"installed_plants": []map[string]interface{}{
			{"plant_type_id": monstera.PlantTypeID, "quantity": 1},
		},
		"completed_by_user_id": technicianID,
	})
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *ExchangeE2ESuite) TestValidationReportsShortfalls() {
	record := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.PlantName = "Areca Palm"
		r.AvailableStock = 3
	})
	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, []*domain.StockRecord{record})

	unknownID := uuid.New()
	resp := s.makeRequest("POST", "/inventory/validate", map[string]interface{}{
		"lines": []map[string]interface{}{
			{"plant_type_id": record.PlantTypeID, "quantity": 5},
			{"plant_type_id": unknownID, "quantity": 1},
		},
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var validation struct {
		Satisfiable bool                    `json:"satisfiable"`
		Shortfalls  []domain.StockShortfall `json:"shortfalls"`
	}
	s.decodeResponse(resp, &validation)
	s.False(validation.Satisfiable)
	s.Len(validation.Shortfalls, 2)

	byType := make(map[uuid.UUID]domain.StockShortfall)
	for _, sf := range validation.Shortfalls {
		byType[sf.PlantTypeID] = sf
	}
	s.Equal(3, byType[record.PlantTypeID].Available)
	s.Equal(domain.UnknownPlantName, byType[unknownID].PlantName)
}

func (s *ExchangeE2ESuite) TestStockReceiptWorkflow() {
	actorID := uuid.New()
	plantTypeID := uuid.New()

	// First receipt creates the stock record
	resp := s.makeRequest("POST", fmt.Sprintf("/stock/%s/receive", plantTypeID), map[string]interface{}{
		"quantity":     8,
		"plant_name":   "Dracaena Marginata",
		"monthly_rate": "18.00",
		"actor_id":     actorID,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var record map[string]interface{}
	s.decodeResponse(resp, &record)
	s.Equal(float64(8), record["available_stock"])

	// Second receipt adds to it
	resp = s.makeRequest("POST", fmt.Sprintf("/stock/%s/receive", plantTypeID), map[string]interface{}{
		"quantity": 4,
		"actor_id": actorID,
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &record)
	s.Equal(float64(12), record["available_stock"])
	s.Equal("Dracaena Marginata", record["plant_name"])
}

func (s *ExchangeE2ESuite) TestConcurrentCompletionsNeverOversell() {
	record := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.PlantName = "Kentia Palm"
		r.AvailableStock = 5
		r.RentedStock = 0
	})
	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, []*domain.StockRecord{record})

	// Two scheduled exchanges both want all 5 remaining units
	type attempt struct {
		exchangeID uuid.UUID
		customerID uuid.UUID
	}
	attempts := []attempt{
		{uuid.New(), uuid.New()},
		{uuid.New(), uuid.New()},
	}
	for _, a := range attempts {
		helpers.SeedExchangeRequest(s.T(), s.testDB.PgxPool, a.exchangeID, a.customerID, domain.ExchangeScheduled)
	}

	statuses := make([]int, len(attempts))
	var wg sync.WaitGroup
	for i, a := range attempts {
		wg.Add(1)
		go func(i int, a attempt) {
			defer wg.Done()
			resp := s.makeRequest("POST", fmt.Sprintf("/exchanges/%s/complete", a.exchangeID), map[string]interface{}{
				"customer_id": a.customerID,
				"installed_plants": []map[string]interface{}{
					{"plant_type_id": record.PlantTypeID, "quantity": 5},
				},
				"completed_by_user_id": uuid.New(),
			})
			statuses[i] = resp.StatusCode
			resp.Body.Close()
		}(i, a)
	}
	wg.Wait()

	succeeded := 0
	for _, status := range statuses {
		switch status {
		case http.StatusOK:
			succeeded++
		case http.StatusUnprocessableEntity:
			// loser of the race
		default:
			s.Failf("unexpected status", "got %d", status)
		}
	}
	s.Equal(1, succeeded, "exactly one completion should claim the stock")

	// Unit conservation: 5 units total, all rented by the winner
	resp := s.makeRequest("GET", fmt.Sprintf("/stock/%s", record.PlantTypeID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var stock map[string]interface{}
	s.decodeResponse(resp, &stock)
	s.Equal(float64(0), stock["available_stock"])
	s.Equal(float64(5), stock["rented_stock"])
}

// Helper methods

func (s *ExchangeE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	cache := redis_a.NewCache(s.testRedis.Client, time.Hour, logger)

	stockRepo := db.NewStockRepository(logger)
	holdingRepo := db.NewHoldingRepository(logger)
	exchangeRepo := db.NewExchangeRepository(logger)
	auditRepo := db.NewAuditRepository(logger)

	service := services.NewExchangeService(
		stockRepo, holdingRepo, exchangeRepo, auditRepo, s.testDB.Database, logger)

	exchangeHandler := handlers.NewExchangeHandler(service, cache, nil, logger)
	stockHandler := handlers.NewStockHandler(service, cache, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/stock", stockHandler.ListStock)
	mux.HandleFunc("GET /api/v1/stock/{id}", stockHandler.GetStock)
	mux.HandleFunc("POST /api/v1/stock/{id}/receive", stockHandler.ReceiveStock)
	mux.HandleFunc("GET /api/v1/customers/{id}/holdings", stockHandler.ListHoldings)
	mux.HandleFunc("POST /api/v1/inventory/validate", exchangeHandler.ValidateInventory)
	mux.HandleFunc("GET /api/v1/exchanges/{id}", exchangeHandler.GetExchange)
	mux.HandleFunc("POST /api/v1/exchanges/{id}/complete", exchangeHandler.CompleteExchange)

	return httptest.NewServer(mux)
}

func (s *ExchangeE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *ExchangeE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestExchangeE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(ExchangeE2ESuite))
}
