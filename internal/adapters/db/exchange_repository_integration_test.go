//go:build integration
// +build integration

package db_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/verdeo/plantrent-be/internal/adapters/db"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/core/ports"
	"github.com/verdeo/plantrent-be/internal/core/services"
	"github.com/verdeo/plantrent-be/test/helpers"
)

type ExchangeRepositorySuite struct {
	suite.Suite
	testDB   *helpers.TestDB
	stock    ports.StockRepository
	holdings ports.HoldingRepository
	requests ports.ExchangeRepository
	audit    ports.AuditLog
	service  *services.ExchangeService
	ctx      context.Context
}

func (s *ExchangeRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())

	logger := helpers.TestLogger()
	s.stock = db.NewStockRepository(logger)
	s.holdings = db.NewHoldingRepository(logger)
	s.requests = db.NewExchangeRepository(logger)
	s.audit = db.NewAuditRepository(logger)
	s.service = services.NewExchangeService(
		s.stock, s.holdings, s.requests, s.audit, s.testDB.Database, logger)
	s.ctx = context.Background()
}

func (s *ExchangeRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *ExchangeRepositorySuite) TestStockSaveAndFind() {
	record := helpers.CreateTestStockRecord()

	err := s.stock.Save(s.ctx, s.testDB.Database, record)
	s.NoError(err)

	found, err := s.stock.FindByID(s.ctx, s.testDB.Database, record.PlantTypeID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(record.PlantName, found.PlantName)
	s.Equal(record.AvailableStock, found.AvailableStock)
	s.Equal(record.RentedStock, found.RentedStock)
	s.True(record.MonthlyRate.Equal(found.MonthlyRate))
}

func (s *ExchangeRepositorySuite) TestStockFindByIDsBatch() {
	records := []*domain.StockRecord{
		helpers.CreateTestStockRecord(),
		helpers.CreateTestStockRecord(),
		helpers.CreateTestStockRecord(),
	}
	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, records)

	missing := uuid.New()
	ids := []uuid.UUID{records[0].PlantTypeID, records[2].PlantTypeID, missing}

	found, err := s.stock.FindByIDs(s.ctx, s.testDB.Database, ids)
	s.NoError(err)
	s.Len(found, 2)
	s.Contains(found, records[0].PlantTypeID)
	s.Contains(found, records[2].PlantTypeID)
	s.NotContains(found, missing)
}

func (s *ExchangeRepositorySuite) TestClaimStockGuard() {
	record := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.AvailableStock = 3
		r.RentedStock = 0
	})
	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, []*domain.StockRecord{record})

	// Claim within availability succeeds
	claimed, err := s.stock.ClaimStock(s.ctx, s.testDB.Database, record.PlantTypeID, 2)
	s.NoError(err)
	s.True(claimed)

	// Claim beyond remaining availability matches no row
	claimed, err = s.stock.ClaimStock(s.ctx, s.testDB.Database, record.PlantTypeID, 2)
	s.NoError(err)
	s.False(claimed)

	found, err := s.stock.FindByID(s.ctx, s.testDB.Database, record.PlantTypeID)
	s.NoError(err)
	s.Equal(1, found.AvailableStock)
	s.Equal(2, found.RentedStock)
}

func (s *ExchangeRepositorySuite) TestConcurrentClaimsNeverOversell() {
	const available = 5
	const claimants = 20

	record := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.AvailableStock = available
		r.RentedStock = 0
	})
	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, []*domain.StockRecord{record})

	results := make([]bool, claimants)
	var wg sync.WaitGroup
	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			claimed, err := s.stock.ClaimStock(s.ctx, s.testDB.Database, record.PlantTypeID, 1)
			s.NoError(err)
			results[i] = claimed
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, claimed := range results {
		if claimed {
			succeeded++
		}
	}
	s.Equal(available, succeeded)

	// Unit conservation: available + rented never changes
	found, err := s.stock.FindByID(s.ctx, s.testDB.Database, record.PlantTypeID)
	s.NoError(err)
	s.Equal(0, found.AvailableStock)
	s.Equal(available, found.RentedStock)
}

func (s *ExchangeRepositorySuite) TestHoldingLifecycle() {
	customerID := uuid.New()
	plantTypeID := uuid.New()

	holding := domain.NewHolding(customerID, plantTypeID, 4)
	s.NoError(s.holdings.Create(s.ctx, s.testDB.Database, holding))

	found, err := s.holdings.FindByCustomerAndType(s.ctx, s.testDB.Database, customerID, plantTypeID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(4, found.Quantity)

	s.NoError(s.holdings.SetQuantity(s.ctx, s.testDB.Database, holding.ID, 1))
	found, err = s.holdings.FindByCustomerAndType(s.ctx, s.testDB.Database, customerID, plantTypeID)
	s.NoError(err)
	s.Equal(1, found.Quantity)

	// Reducing to zero removes the row rather than persisting quantity 0
	s.NoError(s.holdings.Delete(s.ctx, s.testDB.Database, holding.ID))
	found, err = s.holdings.FindByCustomerAndType(s.ctx, s.testDB.Database, customerID, plantTypeID)
	s.NoError(err)
	s.Nil(found)
}

func (s *ExchangeRepositorySuite) TestClaimCompletionIsTerminal() {
	exchangeID := uuid.New()
	customerID := uuid.New()
	userID := uuid.New()
	helpers.SeedExchangeRequest(s.T(), s.testDB.PgxPool, exchangeID, customerID, domain.ExchangeScheduled)

	claimed, err := s.requests.ClaimCompletion(s.ctx, s.testDB.Database,
		exchangeID, userID, "first visit", time.Now())
	s.NoError(err)
	s.True(claimed)

	// Second claim finds no claimable row
	claimed, err = s.requests.ClaimCompletion(s.ctx, s.testDB.Database,
		exchangeID, userID, "repeat", time.Now())
	s.NoError(err)
	s.False(claimed)

	found, err := s.requests.FindByID(s.ctx, s.testDB.Database, exchangeID)
	s.NoError(err)
	s.Equal(domain.ExchangeCompleted, found.Status)
	s.NotNil(found.CompletedAt)
	s.Equal(userID, *found.CompletedBy)
	s.Equal("first visit", found.CompletionNotes)
}

func (s *ExchangeRepositorySuite) TestCompletionRollsBackAtomically() {
	customerID := uuid.New()
	exchangeID := uuid.New()

	ficus := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.PlantName = "Ficus Benjamina"
		r.AvailableStock = 10
		r.RentedStock = 3
	})
	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, []*domain.StockRecord{ficus})
	helpers.SeedExchangeRequest(s.T(), s.testDB.PgxPool, exchangeID, customerID, domain.ExchangeScheduled)
	helpers.SeedHolding(s.T(), s.testDB.PgxPool, helpers.CreateTestHolding(func(h *domain.HoldingRecord) {
		h.CustomerID = customerID
		h.PlantTypeID = ficus.PlantTypeID
		h.Quantity = 3
	}))

	// The removal line is valid but the install references an unknown plant
	// type, so the whole completion must roll back.
	err := s.service.CompleteExchange(s.ctx, &domain.ExchangeOutcome{
		ExchangeRequestID: exchangeID,
		CustomerID:        customerID,
		RemovedPlants: []domain.ExchangeLine{
			{PlantTypeID: ficus.PlantTypeID, Quantity: 2},
		},
		InstalledPlants: []domain.ExchangeLine{
			{PlantTypeID: uuid.New(), Quantity: 1},
		},
		CompletedByUserID: uuid.New(),
	})
	s.Error(err)

	var unknownType *domain.UnknownPlantTypeError
	s.ErrorAs(err, &unknownType)

	// Nothing moved: counters, holding, and request status are untouched
	found, err := s.stock.FindByID(s.ctx, s.testDB.Database, ficus.PlantTypeID)
	s.NoError(err)
	s.Equal(10, found.AvailableStock)
	s.Equal(3, found.RentedStock)

	holding, err := s.holdings.FindByCustomerAndType(s.ctx, s.testDB.Database, customerID, ficus.PlantTypeID)
	s.NoError(err)
	s.NotNil(holding)
	s.Equal(3, holding.Quantity)

	request, err := s.requests.FindByID(s.ctx, s.testDB.Database, exchangeID)
	s.NoError(err)
	s.Equal(domain.ExchangeScheduled, request.Status)
}

func (s *ExchangeRepositorySuite) TestLikeForLikeSwapMovesBothCounters() {
	customerID := uuid.New()
	exchangeID := uuid.New()

	// Availability only covers the install because the removal replenishes
	// it first.
	kentia := helpers.CreateTestStockRecord(func(r *domain.StockRecord) {
		r.PlantName = "Kentia Palm"
		r.AvailableStock = 0
		r.RentedStock = 2
	})
	helpers.SeedStockRecords(s.T(), s.testDB.PgxPool, []*domain.StockRecord{kentia})
	helpers.SeedExchangeRequest(s.T(), s.testDB.PgxPool, exchangeID, customerID, domain.ExchangeScheduled)
	helpers.SeedHolding(s.T(), s.testDB.PgxPool, helpers.CreateTestHolding(func(h *domain.HoldingRecord) {
		h.CustomerID = customerID
		h.PlantTypeID = kentia.PlantTypeID
		h.Quantity = 2
	}))

	err := s.service.CompleteExchange(s.ctx, &domain.ExchangeOutcome{
		ExchangeRequestID: exchangeID,
		CustomerID:        customerID,
		RemovedPlants: []domain.ExchangeLine{
			{PlantTypeID: kentia.PlantTypeID, Quantity: 2},
		},
		InstalledPlants: []domain.ExchangeLine{
			{PlantTypeID: kentia.PlantTypeID, Quantity: 2},
		},
		CompletedByUserID: uuid.New(),
	})
	s.NoError(err)

	found, err := s.stock.FindByID(s.ctx, s.testDB.Database, kentia.PlantTypeID)
	s.NoError(err)
	s.Equal(0, found.AvailableStock)
	s.Equal(2, found.RentedStock)

	holding, err := s.holdings.FindByCustomerAndType(s.ctx, s.testDB.Database, customerID, kentia.PlantTypeID)
	s.NoError(err)
	s.NotNil(holding)
	s.Equal(2, holding.Quantity)
}

func TestExchangeRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ExchangeRepositorySuite))
}
