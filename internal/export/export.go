// Package export renders payout summary rows into downloadable artifacts
// (CSV, PDF) or hands them off to Google Sheets. Exporters are terminal:
// they consume rows and never feed back into aggregation.
package export

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrRender is returned when local document generation fails. The operation
// aborts; nothing already rendered or persisted is touched.
var ErrRender = errors.New("render error")

// ErrExternal is returned when the external spreadsheet handoff fails and
// the clipboard fallback fails too.
var ErrExternal = errors.New("external service error")

// Artifact is a generated downloadable document.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

var nonWord = regexp.MustCompile(`\s+`)

// Filename builds the artifact filename: the report name lowercased and
// kebab-cased, the ISO date, and the extension.
// "News Payout Report" → "news-payout-report-2024-06-13.csv".
func Filename(reportName, ext string, now time.Time) string {
	name := nonWord.ReplaceAllString(strings.ToLower(strings.TrimSpace(reportName)), "-")
	return name + "-" + now.Format("2006-01-02") + "." + ext
}
