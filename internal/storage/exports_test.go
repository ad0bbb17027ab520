package storage

import (
	"context"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestExportRecords_InsertAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recs := []models.ExportRecord{
		{ID: "rec-1", Kind: "csv", ReportName: "news-payout-report", RowCount: 3, TotalPayout: 105.5, Status: "ok"},
		{ID: "rec-2", Kind: "pdf", ReportName: "news-payout-report", RowCount: 3, TotalPayout: 105.5, Status: "ok"},
		{ID: "rec-3", Kind: "sheets", ReportName: "news-payout-report", RowCount: 3, TotalPayout: 105.5, Status: "fallback", Detail: "credentials not configured"},
	}
	for i := range recs {
		if err := store.InsertExportRecord(ctx, &recs[i]); err != nil {
			t.Fatalf("InsertExportRecord(%s) error: %v", recs[i].ID, err)
		}
	}

	got, err := store.ListExportRecords(ctx, 10)
	if err != nil {
		t.Fatalf("ListExportRecords() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}

	byID := make(map[string]models.ExportRecord)
	for _, r := range got {
		byID[r.ID] = r
	}
	if byID["rec-3"].Status != "fallback" {
		t.Errorf("rec-3 status = %q, want %q", byID["rec-3"].Status, "fallback")
	}
	if byID["rec-3"].Detail != "credentials not configured" {
		t.Errorf("rec-3 detail = %q, want the fallback reason", byID["rec-3"].Detail)
	}
}

func TestExportRecords_Limit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		rec := models.ExportRecord{ID: id, Kind: "csv", ReportName: "r", RowCount: 0, TotalPayout: 0, Status: "ok"}
		if err := store.InsertExportRecord(ctx, &rec); err != nil {
			t.Fatalf("InsertExportRecord(%s) error: %v", id, err)
		}
	}

	got, err := store.ListExportRecords(ctx, 2)
	if err != nil {
		t.Fatalf("ListExportRecords() error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}
}
