package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
)

// CatalogEntry is one plant type from the supplier catalog spreadsheet.
type CatalogEntry struct {
	PlantTypeID uuid.UUID
	PlantName   string
	MonthlyRate decimal.Decimal
}

// DeliveryLine is one parsed line of a supplier delivery manifest.
type DeliveryLine struct {
	PlantName string
	Quantity  int
}

// StockSeeder loads the plant catalog and books delivery manifests into
// the stock ledger.
type StockSeeder struct {
	catalog map[string]CatalogEntry // keyed by normalized plant name
	logger  *slog.Logger
	db      *pgxpool.Pool
}

func NewStockSeeder(db *pgxpool.Pool, logger *slog.Logger) *StockSeeder {
	return &StockSeeder{
		catalog: make(map[string]CatalogEntry),
		logger:  logger,
		db:      db,
	}
}

// LoadCatalog loads plant types and monthly rates from the Excel catalog.
// Expected columns: plant name, monthly rate, optional stable UUID.
func (s *StockSeeder) LoadCatalog(path string) error {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return fmt.Errorf("no sheets found in catalog file")
	}
	sheet := file.Sheets[0]

	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		// Skip header
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if v, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(v)
			}
			return strings.TrimSpace(c.String())
		}

		name := get(0)
		if name == "" {
			return nil
		}

		rate, err := decimal.NewFromString(strings.TrimPrefix(get(1), "$"))
		if err != nil {
			s.logger.Warn("skipping catalog row with bad rate",
				slog.String("plant_name", name),
				slog.String("rate", get(1)))
			return nil
		}

		entry := CatalogEntry{
			PlantTypeID: uuid.New(),
			PlantName:   name,
			MonthlyRate: rate,
		}
		if id, err := uuid.Parse(get(2)); err == nil {
			entry.PlantTypeID = id
		}

		s.catalog[normalizeName(name)] = entry
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate catalog rows: %w", err)
	}

	s.logger.Info("loaded plant catalog", slog.Int("count", len(s.catalog)))
	return nil
}

// ExtractDeliveryLines parses a supplier delivery manifest PDF. Manifest
// lines look like "Ficus Benjamina .... 12" with the quantity at the end
// of the line; header and totals rows are skipped.
func (s *StockSeeder) ExtractDeliveryLines(path string) ([]DeliveryLine, error) {
	textLines, err := extractTextLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	headerRe := regexp.MustCompile(`(?i)(PLANT.*QTY|DESCRIPTION.*QUANTITY)`)
	footerRe := regexp.MustCompile(`(?i)(TOTAL UNITS|DELIVERED BY|SIGNATURE)`)
	qtyRe := regexp.MustCompile(`\b(\d{1,4})\s*$`)
	fillerRe := regexp.MustCompile(`[.\-]{3,}`)

	start := 0
	for idx, line := range textLines {
		if headerRe.MatchString(line) {
			start = idx + 1
			break
		}
	}
	if start == 0 {
		s.logger.Warn("no manifest header found, starting from beginning",
			slog.String("file", path))
	}

	var lines []DeliveryLine
	for i := start; i < len(textLines); i++ {
		line := strings.TrimSpace(textLines[i])
		if line == "" {
			continue
		}
		if footerRe.MatchString(line) {
			break
		}

		m := qtyRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty <= 0 {
			continue
		}

		name := strings.TrimSpace(qtyRe.ReplaceAllString(line, ""))
		name = strings.TrimSpace(fillerRe.ReplaceAllString(name, " "))
		if name == "" {
			continue
		}

		lines = append(lines, DeliveryLine{PlantName: name, Quantity: qty})
	}

	s.logger.Info("extracted delivery lines",
		slog.String("file", path),
		slog.Int("count", len(lines)))
	return lines, nil
}

func extractTextLines(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var textLines []string
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textLines = append(textLines, strings.Split(text, "\n")...)
	}

	return textLines, nil
}

// BookDelivery applies one manifest's lines to the stock ledger in a
// single transaction. Plant types missing from the catalog are skipped
// and reported; known types are upserted with the delivered quantity
// added to available stock.
func (s *StockSeeder) BookDelivery(ctx context.Context, lines []DeliveryLine) (int, []string, error) {
	if len(lines) == 0 {
		return 0, nil, nil
	}

	var skipped []string

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	booked := 0

	for _, line := range lines {
		entry, ok := s.catalog[normalizeName(line.PlantName)]
		if !ok {
			skipped = append(skipped, line.PlantName)
			continue
		}

		batch.Queue(`
			INSERT INTO plant_stock (
				plant_type_id, plant_name, available_stock, rented_stock,
				monthly_rate, created_at, updated_at
			) VALUES ($1, $2, $3, 0, $4, NOW(), NOW())
			ON CONFLICT (plant_type_id) DO UPDATE SET
				available_stock = plant_stock.available_stock + EXCLUDED.available_stock,
				monthly_rate = EXCLUDED.monthly_rate,
				updated_at = NOW()`,
			entry.PlantTypeID, entry.PlantName, line.Quantity, entry.MonthlyRate,
		)
		booked++
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < booked; i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, skipped, fmt.Errorf("failed to book delivery line: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, skipped, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, skipped, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return booked, skipped, nil
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// SeederState tracks which manifests have already been booked so reruns
// don't double-count deliveries.
type SeederState struct {
	ProcessedManifests []string  `json:"processed_manifests"`
	ProcessedCount     int       `json:"processed_count"`
	LastUpdate         time.Time `json:"last_update"`
}

func main() {
	var (
		manifestsDir = flag.String("manifests", "./manifests", "Directory containing PDF delivery manifests")
		catalogFile  = flag.String("catalog", "./catalog.xlsx", "Excel file with the plant catalog")
		stateFile    = flag.String("state", "./.seed_state.json", "State file for tracking progress")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun       = flag.Bool("dry-run", false, "Preview changes without modifying database")
		force        = flag.Bool("force", false, "Reprocess all manifests")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "plantrent"),
		getEnv("DB_PASSWORD", "plantrent_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "plantrent"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	seeder := NewStockSeeder(db, logger)

	if err := seeder.LoadCatalog(*catalogFile); err != nil {
		logger.Error("failed to load plant catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var state SeederState
	if !*force {
		if stateData, err := os.ReadFile(*stateFile); err == nil {
			json.Unmarshal(stateData, &state)
		}
	}

	pdfFiles, err := filepath.Glob(filepath.Join(*manifestsDir, "*.pdf"))
	if err != nil {
		logger.Error("failed to find manifest files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	totalProcessed := 0
	totalLines := 0
	failedManifests := []string{}

	for i, pdfFile := range pdfFiles {
		manifestID := strings.TrimSuffix(filepath.Base(pdfFile), ".pdf")

		fmt.Printf("PROGRESS: Processing %d/%d: %s\n", i+1, len(pdfFiles), manifestID)

		if !*force {
			processed := false
			for _, pid := range state.ProcessedManifests {
				if pid == manifestID {
					processed = true
					break
				}
			}
			if processed {
				logger.Info("skipping already booked manifest", slog.String("manifest_id", manifestID))
				continue
			}
		}

		lines, err := seeder.ExtractDeliveryLines(pdfFile)
		if err != nil {
			logger.Error("failed to parse manifest",
				slog.String("manifest_id", manifestID),
				slog.String("error", err.Error()))
			failedManifests = append(failedManifests, manifestID)
			continue
		}

		if len(lines) == 0 {
			logger.Warn("no delivery lines found", slog.String("manifest_id", manifestID))
			failedManifests = append(failedManifests, fmt.Sprintf("%s (0 lines)", manifestID))
			continue
		}

		if !*dryRun {
			booked, skipped, err := seeder.BookDelivery(ctx, lines)
			if err != nil {
				logger.Error("failed to book delivery",
					slog.String("manifest_id", manifestID),
					slog.String("error", err.Error()))
				failedManifests = append(failedManifests, manifestID)
				continue
			}
			if len(skipped) > 0 {
				logger.Warn("skipped plants not in catalog",
					slog.String("manifest_id", manifestID),
					slog.Any("plants", skipped))
			}
			totalLines += booked
		} else {
			totalLines += len(lines)
		}

		totalProcessed++

		state.ProcessedManifests = append(state.ProcessedManifests, manifestID)
		state.ProcessedCount = len(state.ProcessedManifests)
		state.LastUpdate = time.Now()

		if !*dryRun && i%10 == 0 {
			stateData, _ := json.MarshalIndent(state, "", "  ")
			os.WriteFile(*stateFile, stateData, 0644)
		}
	}

	if !*dryRun {
		stateData, _ := json.MarshalIndent(state, "", "  ")
		os.WriteFile(*stateFile, stateData, 0644)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Manifests Booked: %d\n", totalProcessed)
	fmt.Printf("Delivery Lines Applied: %d\n", totalLines)

	if len(failedManifests) > 0 {
		fmt.Printf("\nFailed/Empty Manifests (%d):\n", len(failedManifests))
		for _, m := range failedManifests {
			fmt.Printf("  - %s\n", m)
		}
	}

	logger.Info("seed operation completed",
		slog.Int("manifests_processed", totalProcessed),
		slog.Int("lines_applied", totalLines),
		slog.Int("failed_manifests", len(failedManifests)))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
