// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/stock_repository.go -destination=stock_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/holding_repository.go -destination=holding_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/exchange_repository.go -destination=exchange_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/audit_log.go -destination=audit_log_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/exchange_service.go -destination=exchange_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
