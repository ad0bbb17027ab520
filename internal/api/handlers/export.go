package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/harshavardhan-9/news-blog/internal/export"
	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/payout"
	"github.com/harshavardhan-9/news-blog/internal/storage"
)

// summaryRows loads the filtered article set and aggregates it against the
// current rates. Shared by every export handler so a download always matches
// what GET /api/payouts shows for the same filters.
func summaryRows(ctx context.Context, r *http.Request, store *storage.Store, rates *payout.RateStore) ([]models.SummaryRow, int, error) {
	filter, err := filterFromQuery(r)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	articles, err := store.ListArticles(ctx, filter)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	rows, err := payout.Aggregate(articles, rates.Rates(ctx), rates.DefaultRate())
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return rows, http.StatusOK, nil
}

// recordExport writes the audit-trail row for one export run. Failures are
// logged, not surfaced: the export itself already succeeded or failed on its
// own terms.
func recordExport(ctx context.Context, store *storage.Store, kind, reportName string, rows []models.SummaryRow, status, detail string) {
	rec := &models.ExportRecord{
		ID:          uuid.New().String(),
		Kind:        kind,
		ReportName:  reportName,
		RowCount:    len(rows),
		TotalPayout: payout.Total(rows),
		Status:      status,
		Detail:      detail,
	}
	if err := store.InsertExportRecord(ctx, rec); err != nil {
		slog.Warn("failed to record export", "kind", kind, "error", err)
	}
}

// serveArtifact writes a generated document as a download.
func serveArtifact(w http.ResponseWriter, artifact *export.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}

// ExportCSV handles GET /api/export/csv. It serves the current payout
// summary as a CSV download.
func ExportCSV(store *storage.Store, rates *payout.RateStore, reportName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, status, err := summaryRows(ctx, r, store, rates)
		if err != nil {
			if status == http.StatusBadRequest {
				writeError(w, status, err.Error())
			} else {
				slog.Error("csv export failed", "error", err)
				writeError(w, status, "Export failed")
			}
			return
		}

		artifact, err := export.ExportCSV(rows, reportName, time.Now())
		if err != nil {
			slog.Error("csv render failed", "error", err)
			recordExport(ctx, store, "csv", reportName, rows, "failed", err.Error())
			writeError(w, http.StatusInternalServerError, "Failed to generate CSV")
			return
		}

		recordExport(ctx, store, "csv", reportName, rows, "ok", "")
		serveArtifact(w, artifact)
	}
}

// ExportPDF handles GET /api/export/pdf. It serves the current payout
// summary as a PDF report download.
func ExportPDF(store *storage.Store, rates *payout.RateStore, reportName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, status, err := summaryRows(ctx, r, store, rates)
		if err != nil {
			if status == http.StatusBadRequest {
				writeError(w, status, err.Error())
			} else {
				slog.Error("pdf export failed", "error", err)
				writeError(w, status, "Export failed")
			}
			return
		}

		artifact, err := export.ExportPDF(rows, reportName, time.Now())
		if err != nil {
			slog.Error("pdf render failed", "error", err)
			recordExport(ctx, store, "pdf", reportName, rows, "failed", err.Error())
			writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
			return
		}

		recordExport(ctx, store, "pdf", reportName, rows, "ok", "")
		serveArtifact(w, artifact)
	}
}

// ExportSheets handles POST /api/export/sheets (admin only). It hands the
// current payout summary to Google Sheets, degrading to a clipboard copy
// when the API is not reachable.
func ExportSheets(store *storage.Store, rates *payout.RateStore, exporter *export.SheetsExporter, reportName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, status, err := summaryRows(ctx, r, store, rates)
		if err != nil {
			if status == http.StatusBadRequest {
				writeError(w, status, err.Error())
			} else {
				slog.Error("sheets export failed", "error", err)
				writeError(w, status, "Export failed")
			}
			return
		}

		result, err := exporter.Export(ctx, rows, reportName, time.Now())
		if err != nil {
			slog.Error("sheets handoff failed", "error", err)
			recordExport(ctx, store, "sheets", reportName, rows, "failed", err.Error())
			writeError(w, http.StatusBadGateway, "Sheets export failed and clipboard fallback failed")
			return
		}

		recStatus := "ok"
		if result.Fallback {
			recStatus = "fallback"
		}
		recordExport(ctx, store, "sheets", reportName, rows, recStatus, result.Detail)
		writeJSON(w, http.StatusOK, result)
	}
}

// ListExports handles GET /api/export/history. It returns the most recent
// export audit-trail rows, newest first.
func ListExports(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			limit = n
		}

		records, err := store.ListExportRecords(ctx, limit)
		if err != nil {
			slog.Error("failed to list export records", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list exports")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"exports": records,
			"count":   len(records),
		})
	}
}
