package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// csvHeader is the fixed CSV header row.
var csvHeader = []string{"Author", "Articles", "Payout ($)"}

// WriteCSV serializes summary rows as RFC 4180 CSV. Fields containing
// delimiters or quotes are quoted with internal quotes doubled, so an author
// like `Doe, John` survives as one field. Payouts are formatted to two
// decimal places at this boundary only.
func WriteCSV(w io.Writer, rows []models.SummaryRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: writing csv header: %v", ErrRender, err)
	}
	for _, row := range rows {
		record := []string{
			row.Author,
			strconv.Itoa(row.TotalCount),
			strconv.FormatFloat(row.TotalPayout, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: writing csv row for %q: %v", ErrRender, row.Author, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flushing csv: %v", ErrRender, err)
	}
	return nil
}

// ExportCSV renders summary rows into a CSV artifact. Zero rows produce a
// valid header-only document.
func ExportCSV(rows []models.SummaryRow, reportName string, now time.Time) (*Artifact, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}

	return &Artifact{
		Filename:    Filename(reportName, "csv", now),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// CSVRow is one parsed line of an exported CSV.
type CSVRow struct {
	Author   string
	Articles int
	Payout   float64
}

// ParseCSV reads an exported payout CSV back into rows, validating the
// header. It is the inverse of WriteCSV for the fields CSV carries.
func ParseCSV(r io.Reader) ([]CSVRow, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected csv header column %d: %q", i, header[i])
		}
	}

	var rows []CSVRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		articles, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("parsing article count %q: %w", record[1], err)
		}
		payout, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing payout %q: %w", record[2], err)
		}

		rows = append(rows, CSVRow{Author: record[0], Articles: articles, Payout: payout})
	}
	return rows, nil
}
