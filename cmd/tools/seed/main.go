// cmd/tools/seed/main.go
//
// Creates the assistant's tables and loads the sample fleet plus the company
// knowledge text. The embedded seed data is validated against a JSON schema
// before anything touches the database.
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"carassist/internal/common/config"
	"carassist/internal/common/database"
	"carassist/internal/common/logger"
)

//go:embed seed-data.json
var seedData []byte

//go:embed seed-schema.json
var seedSchema []byte

type seedFile struct {
	Cars []struct {
		Brand     string  `json:"brand"`
		Model     string  `json:"model"`
		Category  string  `json:"category"`
		DailyRate float64 `json:"dailyRate"`
		Seats     int     `json:"seats"`
		FuelType  string  `json:"fuelType"`
		Available bool    `json:"available"`
	} `json:"cars"`
	Company struct {
		Name string `json:"name"`
		Info string `json:"info"`
	} `json:"company"`
}

const createTables = `
CREATE TABLE IF NOT EXISTS cars (
    id SERIAL PRIMARY KEY,
    brand TEXT NOT NULL,
    model TEXT NOT NULL,
    category TEXT NOT NULL,
    daily_rate DOUBLE PRECISION NOT NULL,
    seats INTEGER NOT NULL,
    fuel_type TEXT NOT NULL,
    available BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS business_info (
    id SERIAL PRIMARY KEY,
    company_name TEXT NOT NULL,
    info_text TEXT NOT NULL
);
`

func main() {
	resetCars := flag.Bool("reset", false, "delete existing cars before seeding")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	if err := run(context.Background(), zapLog, *resetCars); err != nil {
		zapLog.Error("seed failed", zap.Error(err))
		os.Exit(1)
	}
	zapLog.Info("database seeded")
}

func run(ctx context.Context, log *zap.Logger, resetCars bool) error {
	seed, err := loadSeed()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return err
	}
	defer pg.Close()
	if err := pg.Ping(ctx); err != nil {
		return fmt.Errorf("postgres unreachable: %w", err)
	}

	if _, err := pg.Exec(ctx, createTables); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	if resetCars {
		if _, err := pg.Exec(ctx, `DELETE FROM cars`); err != nil {
			return fmt.Errorf("reset cars: %w", err)
		}
	}

	for _, car := range seed.Cars {
		_, err := pg.Exec(ctx,
			`INSERT INTO cars (brand, model, category, daily_rate, seats, fuel_type, available)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			car.Brand, car.Model, car.Category, car.DailyRate, car.Seats, car.FuelType, car.Available,
		)
		if err != nil {
			return fmt.Errorf("insert car %s %s: %w", car.Brand, car.Model, err)
		}
	}
	log.Info("cars inserted", zap.Int("count", len(seed.Cars)))

	// The company row is a singleton: only insert into an empty table.
	var count int
	if err := pg.QueryRow(ctx, `SELECT COUNT(*) FROM business_info`).Scan(&count); err != nil {
		return fmt.Errorf("count business_info: %w", err)
	}
	if count == 0 {
		_, err := pg.Exec(ctx,
			`INSERT INTO business_info (company_name, info_text) VALUES ($1, $2)`,
			seed.Company.Name, seed.Company.Info,
		)
		if err != nil {
			return fmt.Errorf("insert company info: %w", err)
		}
		log.Info("company info inserted", zap.String("company", seed.Company.Name))
	}

	return nil
}

// loadSeed validates the embedded data against the embedded schema and
// unmarshals it.
func loadSeed() (*seedFile, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(seedSchema),
		gojsonschema.NewBytesLoader(seedData),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		for _, desc := range result.Errors() {
			fmt.Fprintf(os.Stderr, "seed data invalid: %s\n", desc)
		}
		return nil, fmt.Errorf("seed data does not match schema")
	}

	var seed seedFile
	if err := json.Unmarshal(seedData, &seed); err != nil {
		return nil, fmt.Errorf("unmarshal seed data: %w", err)
	}
	return &seed, nil
}
