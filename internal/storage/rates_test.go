package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestRates_EmptyBeforeFirstWrite(t *testing.T) {
	store := newTestStore(t)

	rates, err := store.GetRates(context.Background())
	if err != nil {
		t.Fatalf("GetRates() error: %v", err)
	}
	if len(rates) != 0 {
		t.Errorf("got %d rates, want 0", len(rates))
	}
}

func TestRates_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := map[string]models.RateEntry{
		"John Smith":    {NewsRate: 10, BlogRate: 15},
		"Sarah Johnson": {NewsRate: 12.5, BlogRate: 20},
	}
	if err := store.ReplaceRates(ctx, want); err != nil {
		t.Fatalf("ReplaceRates() error: %v", err)
	}

	got, err := store.GetRates(ctx)
	if err != nil {
		t.Fatalf("GetRates() error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rates, want %d", len(got), len(want))
	}
	for author, entry := range want {
		if got[author] != entry {
			t.Errorf("rates[%q] = %+v, want %+v", author, got[author], entry)
		}
	}
}

func TestRates_ReplaceIsLastWriterWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := map[string]models.RateEntry{
		"A": {NewsRate: 1, BlogRate: 2},
		"B": {NewsRate: 3, BlogRate: 4},
	}
	if err := store.ReplaceRates(ctx, first); err != nil {
		t.Fatalf("first ReplaceRates() error: %v", err)
	}

	// The second write replaces the whole mapping: B disappears, no merge.
	second := map[string]models.RateEntry{
		"A": {NewsRate: 9, BlogRate: 9},
	}
	if err := store.ReplaceRates(ctx, second); err != nil {
		t.Fatalf("second ReplaceRates() error: %v", err)
	}

	got, err := store.GetRates(ctx)
	if err != nil {
		t.Fatalf("GetRates() error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d rates, want 1", len(got))
	}
	if got["A"] != (models.RateEntry{NewsRate: 9, BlogRate: 9}) {
		t.Errorf("rates[A] = %+v, want {9 9}", got["A"])
	}
}

func TestRates_FailedWriteLeavesPreviousValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := map[string]models.RateEntry{"A": {NewsRate: 10, BlogRate: 15}}
	if err := store.ReplaceRates(ctx, want); err != nil {
		t.Fatalf("ReplaceRates() error: %v", err)
	}

	// Simulate storage unavailability by closing the connection, then
	// verify the write fails with ErrUnavailable.
	brokenDB := newTestDB(t)
	broken := NewStore(brokenDB)
	if err := broken.ReplaceRates(ctx, want); err != nil {
		t.Fatalf("ReplaceRates() on fresh store error: %v", err)
	}
	brokenDB.Close()

	err := broken.ReplaceRates(ctx, map[string]models.RateEntry{"B": {NewsRate: 1, BlogRate: 1}})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable after close, got: %v", err)
	}

	// The original store is untouched.
	got, err := store.GetRates(ctx)
	if err != nil {
		t.Fatalf("GetRates() error: %v", err)
	}
	if got["A"] != want["A"] {
		t.Errorf("rates[A] = %+v, want %+v", got["A"], want["A"])
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetSetting(ctx, "theme", "dark"); err != nil {
		t.Fatalf("SetSetting() error: %v", err)
	}

	var got string
	if err := store.GetSetting(ctx, "theme", &got); err != nil {
		t.Fatalf("GetSetting() error: %v", err)
	}
	if got != "dark" {
		t.Errorf("got %q, want %q", got, "dark")
	}
}

func TestSettings_NotFound(t *testing.T) {
	store := newTestStore(t)

	var got string
	err := store.GetSetting(context.Background(), "missing", &got)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}
