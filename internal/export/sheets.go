package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

const (
	defaultSheetsTimeout = 20 * time.Second

	// Where to paste manually when the API handoff is unavailable.
	sheetsCreateURL = "https://docs.google.com/spreadsheets/u/0/create"
)

// sheetsHeader is the header row written to the spreadsheet.
var sheetsHeader = []any{"Author", "Articles", "Total Payout"}

// SheetsClient is the slice of the Google Sheets API the exporter needs.
type SheetsClient interface {
	CreateSpreadsheet(ctx context.Context, title string) (string, error)
	WriteRows(ctx context.Context, spreadsheetID string, values [][]any) error
}

// googleSheetsClient implements SheetsClient against the real Sheets v4 API.
type googleSheetsClient struct {
	svc *sheets.Service
}

// NewGoogleSheetsClient builds a SheetsClient from service-account
// credentials JSON.
func NewGoogleSheetsClient(ctx context.Context, credentialsJSON []byte) (SheetsClient, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}
	return &googleSheetsClient{svc: svc}, nil
}

func (c *googleSheetsClient) CreateSpreadsheet(ctx context.Context, title string) (string, error) {
	resp, err := c.svc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("creating spreadsheet: %w", err)
	}
	return resp.SpreadsheetId, nil
}

func (c *googleSheetsClient) WriteRows(ctx context.Context, spreadsheetID string, values [][]any) error {
	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, "Sheet1!A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("writing spreadsheet values: %w", err)
	}
	return nil
}

// SheetsResult reports how a handoff ended: either the URL of the created
// spreadsheet, or a clipboard fallback with the reason.
type SheetsResult struct {
	SpreadsheetURL string `json:"spreadsheet_url"`
	Fallback       bool   `json:"fallback"`
	Detail         string `json:"detail,omitempty"`
}

// SheetsExporter hands summary rows to Google Sheets. When the API is not
// configured or not reachable it degrades: the CSV text goes on the
// clipboard and the caller gets the service URL to open and paste into.
type SheetsExporter struct {
	client  SheetsClient // nil when credentials are not configured
	timeout time.Duration

	// writeClipboard is swapped out in tests.
	writeClipboard func(string) error
}

// NewSheetsExporter creates a SheetsExporter. client may be nil, in which
// case every export takes the clipboard path.
func NewSheetsExporter(client SheetsClient) *SheetsExporter {
	return &SheetsExporter{
		client:         client,
		timeout:        defaultSheetsTimeout,
		writeClipboard: clipboard.WriteAll,
	}
}

// Export creates a spreadsheet named after the report and writes the header
// plus one row per author. API failures degrade to the clipboard fallback;
// only a failure of the fallback itself is an error.
func (e *SheetsExporter) Export(ctx context.Context, rows []models.SummaryRow, reportName string, now time.Time) (*SheetsResult, error) {
	if e.client == nil {
		return e.fallback(rows, "google sheets credentials not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	title := fmt.Sprintf("%s - %s", reportName, now.Format("2006-01-02"))

	id, err := e.client.CreateSpreadsheet(ctx, title)
	if err != nil {
		slog.Warn("sheets handoff failed, falling back to clipboard", "error", err)
		return e.fallback(rows, err.Error())
	}

	values := make([][]any, 0, len(rows)+1)
	values = append(values, sheetsHeader)
	for _, row := range rows {
		values = append(values, []any{row.Author, row.TotalCount, row.TotalPayout})
	}

	if err := e.client.WriteRows(ctx, id, values); err != nil {
		slog.Warn("sheets write failed, falling back to clipboard", "error", err)
		return e.fallback(rows, err.Error())
	}

	return &SheetsResult{
		SpreadsheetURL: "https://docs.google.com/spreadsheets/d/" + id,
	}, nil
}

// fallback puts the CSV text on the clipboard so the user can paste it into
// a sheet by hand.
func (e *SheetsExporter) fallback(rows []models.SummaryRow, reason string) (*SheetsResult, error) {
	var sb strings.Builder
	if err := WriteCSV(&sb, rows); err != nil {
		return nil, err
	}

	if err := e.writeClipboard(sb.String()); err != nil {
		return nil, fmt.Errorf("%w: sheets handoff failed (%s) and clipboard fallback failed: %v", ErrExternal, reason, err)
	}

	return &SheetsResult{
		SpreadsheetURL: sheetsCreateURL,
		Fallback:       true,
		Detail:         "copied CSV to clipboard: " + reason,
	}, nil
}
