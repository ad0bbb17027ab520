package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// InsertExportRecord writes one row of the export audit trail.
func (s *Store) InsertExportRecord(ctx context.Context, rec *models.ExportRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO export_records (id, kind, report_name, row_count, total_payout, status, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.ReportName, rec.RowCount, rec.TotalPayout,
		rec.Status, nullableString(rec.Detail),
	)
	if err != nil {
		return fmt.Errorf("inserting export record: %w", mapUnavailable(err))
	}
	return nil
}

// ListExportRecords returns the most recent export records, newest first.
func (s *Store) ListExportRecords(ctx context.Context, limit int) ([]models.ExportRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, report_name, row_count, total_payout, status, detail, created_at
		 FROM export_records
		 ORDER BY created_at DESC, id
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing export records: %w", err)
	}
	defer rows.Close()

	var records []models.ExportRecord
	for rows.Next() {
		var (
			rec       models.ExportRecord
			detail    sql.NullString
			createdAt string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Kind, &rec.ReportName, &rec.RowCount,
			&rec.TotalPayout, &rec.Status, &detail, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning export record: %w", err)
		}
		rec.Detail = detail.String
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating export records: %w", err)
	}

	if records == nil {
		records = []models.ExportRecord{}
	}
	return records, nil
}
