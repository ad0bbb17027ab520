package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// payoutRatesKey is the settings key holding the author → RateEntry mapping
// as a JSON object.
const payoutRatesKey = "payoutRates"

// GetRates returns the persisted payout-rate mapping. A mapping that has
// never been written reads as empty, not as an error.
func (s *Store) GetRates(ctx context.Context) (map[string]models.RateEntry, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, payoutRatesKey,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return map[string]models.RateEntry{}, nil
		}
		return nil, fmt.Errorf("getting payout rates: %w", mapUnavailable(err))
	}

	rates := make(map[string]models.RateEntry)
	if err := json.Unmarshal([]byte(raw), &rates); err != nil {
		return nil, fmt.Errorf("unmarshaling payout rates: %w", err)
	}
	return rates, nil
}

// ReplaceRates overwrites the whole payout-rate mapping. Replacement is
// last-writer-wins with no merge, but it runs in a single transaction so a
// failed write leaves the previously persisted mapping untouched.
func (s *Store) ReplaceRates(ctx context.Context, rates map[string]models.RateEntry) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("marshaling payout rates: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rates transaction: %w", mapUnavailable(err))
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at)
		 VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at`,
		payoutRatesKey, string(data),
	); err != nil {
		return fmt.Errorf("writing payout rates: %w", mapUnavailable(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing payout rates: %w", mapUnavailable(err))
	}
	return nil
}

// GetSetting retrieves an arbitrary setting by key and JSON-unmarshals it
// into dest. Returns ErrNotFound if the key does not exist.
func (s *Store) GetSetting(ctx context.Context, key string, dest any) error {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("getting setting %q: %w", key, mapUnavailable(err))
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("unmarshaling setting %q: %w", key, err)
	}
	return nil
}

// SetSetting JSON-marshals value and stores it under the given key,
// overwriting any existing value.
func (s *Store) SetSetting(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling setting %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at)
		 VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, mapUnavailable(err))
	}
	return nil
}
