// internal/inventory/store.go
package inventory

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "carassist/internal/common/errors"
	"carassist/internal/common/logger"
)

const (
	carsCacheKey    = "inventory:cars"
	companyCacheKey = "inventory:company"
)

// Store reads the fleet and company info from Postgres, with an optional
// cache-aside Redis layer in front. A nil redis client disables caching.
// Freshness is per read call: a session never pins a snapshot.
type Store struct {
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

func NewStore(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration, log logger.Logger) *Store {
	return &Store{
		db:       db,
		redis:    rdb,
		cacheTTL: cacheTTL,
		logger:   log.WithFields(map[string]interface{}{"component": "inventory"}),
	}
}

// ListAvailableCars returns every available car in stable id order. Only
// available rows ever leave the store, so the filter downstream can take the
// availability invariant for granted.
func (s *Store) ListAvailableCars(ctx context.Context) ([]Car, error) {
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, carsCacheKey).Result(); err == nil {
			var cars []Car
			if err := json.Unmarshal([]byte(val), &cars); err == nil {
				return cars, nil
			}
		}
	}

	query := `SELECT id, brand, model, category, daily_rate, seats, fuel_type, available
	          FROM cars WHERE available = TRUE ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, "list cars query failed", err)
	}
	defer rows.Close()

	var cars []Car
	for rows.Next() {
		var c Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Model, &c.Category, &c.DailyRate, &c.Seats, &c.FuelType, &c.Available); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, "scan car row failed", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, "iterate car rows failed", err)
	}

	s.cache(ctx, carsCacheKey, cars)
	return cars, nil
}

// GetCompanyInfo returns the single company record.
func (s *Store) GetCompanyInfo(ctx context.Context) (CompanyInfo, error) {
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, companyCacheKey).Result(); err == nil {
			var info CompanyInfo
			if err := json.Unmarshal([]byte(val), &info); err == nil {
				return info, nil
			}
		}
	}

	var info CompanyInfo
	query := `SELECT company_name, info_text FROM business_info LIMIT 1`
	err := s.db.QueryRowContext(ctx, query).Scan(&info.Name, &info.Info)
	if err != nil {
		if err == sql.ErrNoRows {
			return CompanyInfo{}, apperrors.New(apperrors.ErrCodeEmptyResult, "company info not found")
		}
		return CompanyInfo{}, apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, "company info query failed", err)
	}

	s.cache(ctx, companyCacheKey, info)
	return info, nil
}

// cache best-effort stores v under key; cache failures only get logged.
func (s *Store) cache(ctx context.Context, key string, v interface{}) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
