package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/export"
	"github.com/harshavardhan-9/news-blog/internal/models"
)

func TestExportCSV_Download(t *testing.T) {
	store := newTestStore(t)
	rates := newTestRates(store)
	seedArticle(t, store, "Doe, John", models.TypeNews, "https://example.com/n1")

	r := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	w := httptest.NewRecorder()
	ExportCSV(store, rates, "News Payout Report")(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "news-payout-report-") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	rows, err := export.ParseCSV(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("parsing exported csv: %v", err)
	}
	if len(rows) != 1 || rows[0].Author != "Doe, John" || rows[0].Payout != 10 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestExportCSV_RecordsHistory(t *testing.T) {
	store := newTestStore(t)
	rates := newTestRates(store)
	seedArticle(t, store, "Alice", models.TypeBlog, "https://example.com/b1")

	r := httptest.NewRequest(http.MethodGet, "/api/export/csv", nil)
	w := httptest.NewRecorder()
	ExportCSV(store, rates, "News Payout Report")(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("export failed: %s", w.Body.String())
	}

	r = httptest.NewRequest(http.MethodGet, "/api/export/history", nil)
	w = httptest.NewRecorder()
	ListExports(store)(w, r)

	var body struct {
		Exports []models.ExportRecord `json:"exports"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Exports) != 1 {
		t.Fatalf("got %d export records, want 1", len(body.Exports))
	}

	rec := body.Exports[0]
	if rec.Kind != "csv" || rec.Status != "ok" {
		t.Errorf("record = %+v", rec)
	}
	if rec.RowCount != 1 || rec.TotalPayout != 15 {
		t.Errorf("record totals = %d/%v, want 1/15", rec.RowCount, rec.TotalPayout)
	}
}

func TestExportPDF_Download(t *testing.T) {
	store := newTestStore(t)
	rates := newTestRates(store)
	seedArticle(t, store, "Alice", models.TypeNews, "https://example.com/n1")

	r := httptest.NewRequest(http.MethodGet, "/api/export/pdf", nil)
	w := httptest.NewRecorder()
	ExportPDF(store, rates, "News Payout Report")(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
}

func TestExportCSV_BadFilter(t *testing.T) {
	store := newTestStore(t)
	rates := newTestRates(store)

	r := httptest.NewRequest(http.MethodGet, "/api/export/csv?type=bogus", nil)
	w := httptest.NewRecorder()
	ExportCSV(store, rates, "News Payout Report")(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListExports_Empty(t *testing.T) {
	store := newTestStore(t)

	r := httptest.NewRequest(http.MethodGet, "/api/export/history", nil)
	w := httptest.NewRecorder()
	ListExports(store)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Exports []models.ExportRecord `json:"exports"`
		Count   int                   `json:"count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Count != 0 {
		t.Errorf("Count = %d, want 0", body.Count)
	}
}
