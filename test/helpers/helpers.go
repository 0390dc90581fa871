// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/verdeo/plantrent-be/internal/adapters/db"
	"github.com/verdeo/plantrent-be/internal/core/domain"
	"github.com/verdeo/plantrent-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_plantrent",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_plantrent",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_plantrent",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Photos: config.PhotoConfig{
			MaxSizeMB:     20,
			UploadTimeout: time.Minute,
		},
		Audit: config.AuditConfig{
			RetentionDays:   365,
			CleanupInterval: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret",
			JWTExpiration:     24 * time.Hour,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestStockRecord creates a test stock record
func CreateTestStockRecord(overrides ...func(*domain.StockRecord)) *domain.StockRecord {
	record := &domain.StockRecord{
		PlantTypeID:    uuid.New(),
		PlantName:      "Ficus Benjamina",
		AvailableStock: 10,
		RentedStock:    5,
		MonthlyRate:    decimal.NewFromFloat(24.50),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	for _, override := range overrides {
		override(record)
	}

	return record
}

// CreateTestHolding creates a test customer holding
func CreateTestHolding(overrides ...func(*domain.HoldingRecord)) *domain.HoldingRecord {
	holding := &domain.HoldingRecord{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		PlantTypeID: uuid.New(),
		Quantity:    3,
		Status:      domain.HoldingActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, override := range overrides {
		override(holding)
	}

	return holding
}

// CreateTestOutcome creates a test exchange outcome
func CreateTestOutcome(overrides ...func(*domain.ExchangeOutcome)) *domain.ExchangeOutcome {
	outcome := &domain.ExchangeOutcome{
		ExchangeRequestID: uuid.New(),
		CustomerID:        uuid.New(),
		RemovedPlants: []domain.ExchangeLine{
			{PlantTypeID: uuid.New(), Quantity: 2},
		},
		InstalledPlants: []domain.ExchangeLine{
			{PlantTypeID: uuid.New(), Quantity: 2},
		},
		CompletionNotes:   "routine rotation",
		CompletedByUserID: uuid.New(),
	}

	for _, override := range overrides {
		override(outcome)
	}

	return outcome
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"audit_log",
		"exchange_requests",
		"customer_holdings",
		"plant_stock",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedStockRecords seeds the database with stock records
func SeedStockRecords(t *testing.T, db *pgxpool.Pool, records []*domain.StockRecord) {
	t.Helper()

	ctx := context.Background()

	for _, record := range records {
		query := `
			INSERT INTO plant_stock (
				plant_type_id, plant_name, available_stock, rented_stock,
				monthly_rate, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		_, err := db.Exec(ctx, query,
			record.PlantTypeID, record.PlantName, record.AvailableStock,
			record.RentedStock, record.MonthlyRate, record.CreatedAt, record.UpdatedAt,
		)
		require.NoError(t, err, "Failed to seed stock record")
	}
}

// SeedExchangeRequest inserts a schedulable exchange request
func SeedExchangeRequest(t *testing.T, db *pgxpool.Pool, id, customerID uuid.UUID, status domain.ExchangeStatus) {
	t.Helper()

	ctx := context.Background()
	query := `
		INSERT INTO exchange_requests (id, customer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := db.Exec(ctx, query, id, customerID, status)
	require.NoError(t, err, "Failed to seed exchange request")
}

// SeedHolding inserts a customer holding
func SeedHolding(t *testing.T, db *pgxpool.Pool, holding *domain.HoldingRecord) {
	t.Helper()

	ctx := context.Background()
	query := `
		INSERT INTO customer_holdings (
			id, customer_id, plant_type_id, quantity, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Exec(ctx, query,
		holding.ID, holding.CustomerID, holding.PlantTypeID,
		holding.Quantity, holding.Status, holding.CreatedAt, holding.UpdatedAt,
	)
	require.NoError(t, err, "Failed to seed holding")
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
