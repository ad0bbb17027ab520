package payout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// Persistence is the slice of the storage layer the rate store needs.
type Persistence interface {
	GetRates(ctx context.Context) (map[string]models.RateEntry, error)
	ReplaceRates(ctx context.Context, rates map[string]models.RateEntry) error
}

// RateStore is the single service through which callers read and update the
// payout-rate mapping. It keeps an in-memory copy that stays authoritative
// for the session even when the backing store is unavailable, so the UI
// never blocks on persistence success.
//
// Replacement is whole-mapping, last-writer-wins. That clobbering behavior
// is the accepted contract, not a bug.
type RateStore struct {
	persistence Persistence
	defaultRate models.RateEntry

	mu     sync.Mutex
	rates  map[string]models.RateEntry
	loaded bool
}

// NewRateStore creates a RateStore over the given persistence with the
// configured default rate applied to authors without an override.
func NewRateStore(p Persistence, defaultRate models.RateEntry) *RateStore {
	return &RateStore{
		persistence: p,
		defaultRate: defaultRate,
		rates:       map[string]models.RateEntry{},
	}
}

// DefaultRate returns the fallback rate for authors without an override.
func (rs *RateStore) DefaultRate() models.RateEntry {
	return rs.defaultRate
}

// Rates returns a copy of the current rate mapping. The persisted mapping is
// loaded on first use; if loading fails the in-memory mapping (possibly
// empty) is returned along with no error, because the session state is the
// source of truth once persistence is unreachable.
func (rs *RateStore) Rates(ctx context.Context) map[string]models.RateEntry {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if !rs.loaded {
		persisted, err := rs.persistence.GetRates(ctx)
		if err != nil {
			slog.Warn("could not load persisted payout rates, using in-memory state", "error", err)
		} else {
			rs.rates = persisted
		}
		rs.loaded = true
	}

	out := make(map[string]models.RateEntry, len(rs.rates))
	for k, v := range rs.rates {
		out[k] = v
	}
	return out
}

// Replace overwrites the whole rate mapping. The in-memory copy is updated
// first and stays authoritative; a persistence failure is returned (wrapped
// around storage.ErrUnavailable) so the caller can surface it, but does not
// roll back the session state.
func (rs *RateStore) Replace(ctx context.Context, rates map[string]models.RateEntry) error {
	if err := ValidateRates(rates); err != nil {
		return err
	}

	rs.mu.Lock()
	rs.rates = make(map[string]models.RateEntry, len(rates))
	for k, v := range rates {
		rs.rates[k] = v
	}
	rs.loaded = true
	rs.mu.Unlock()

	if err := rs.persistence.ReplaceRates(ctx, rates); err != nil {
		return fmt.Errorf("persisting payout rates: %w", err)
	}
	return nil
}

// ValidateRates rejects malformed rate input: empty author keys and
// negative rates.
func ValidateRates(rates map[string]models.RateEntry) error {
	for author, entry := range rates {
		if author == "" {
			return fmt.Errorf("rate entry with empty author key")
		}
		if entry.NewsRate < 0 || entry.BlogRate < 0 {
			return fmt.Errorf("rates for %q must not be negative", author)
		}
	}
	return nil
}
