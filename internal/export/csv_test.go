package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

var exportNow = time.Date(2024, 6, 13, 10, 30, 0, 0, time.UTC)

func sampleRows() []models.SummaryRow {
	return []models.SummaryRow{
		{Author: "Alice", NewsCount: 2, BlogCount: 1, TotalCount: 3, TotalPayout: 35},
		{Author: "Doe, John", NewsCount: 1, BlogCount: 0, TotalCount: 1, TotalPayout: 10},
		{Author: `Quote "Q"`, NewsCount: 0, BlogCount: 2, TotalCount: 2, TotalPayout: 30},
	}
}

func TestExportCSV_RoundTrip(t *testing.T) {
	artifact, err := ExportCSV(sampleRows(), "News Payout Report", exportNow)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	rows, err := ParseCSV(bytes.NewReader(artifact.Data))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("parsed %d rows, want 3", len(rows))
	}

	if rows[1].Author != "Doe, John" {
		t.Errorf("author with comma = %q, want %q", rows[1].Author, "Doe, John")
	}
	if rows[2].Author != `Quote "Q"` {
		t.Errorf("author with quote = %q, want %q", rows[2].Author, `Quote "Q"`)
	}
	if rows[0].Articles != 3 || rows[0].Payout != 35 {
		t.Errorf("row 0 = %+v, want 3 articles, payout 35", rows[0])
	}
}

func TestWriteCSV_QuotesDelimiters(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"Doe, John"`) {
		t.Errorf("output does not quote comma author:\n%s", out)
	}
	if !strings.Contains(out, `"Quote ""Q"""`) {
		t.Errorf("output does not double internal quotes:\n%s", out)
	}
}

func TestWriteCSV_TwoDecimalPayouts(t *testing.T) {
	rows := []models.SummaryRow{
		{Author: "A", TotalCount: 1, TotalPayout: 10.5},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if !strings.Contains(buf.String(), "A,1,10.50") {
		t.Errorf("payout not rendered with two decimals:\n%s", buf.String())
	}
}

func TestExportCSV_EmptyRows(t *testing.T) {
	artifact, err := ExportCSV(nil, "Payout Report", exportNow)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	rows, err := ParseCSV(bytes.NewReader(artifact.Data))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("parsed %d rows from empty export, want 0", len(rows))
	}
}

func TestParseCSV_BadHeader(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("Name,Count\nA,1\n")); err == nil {
		t.Error("ParseCSV() accepted a wrong header")
	}
}

func TestFilename(t *testing.T) {
	got := Filename("News Payout Report", "csv", exportNow)
	want := "news-payout-report-2024-06-13.csv"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
