package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/harshavardhan-9/news-blog/internal/models"
	"github.com/harshavardhan-9/news-blog/internal/payout"
)

// Table geometry in millimeters on A4 portrait.
const (
	pdfMarginLeft   = 14.0
	pdfAuthorColW   = 97.0
	pdfArticlesColW = 40.0
	pdfPayoutColW   = 45.0
	pdfRowH         = 8.0
	pdfPageBreakY   = 265.0
)

// ExportPDF renders summary rows into a paginated PDF report: a centered
// title, a generation date, a totals summary computed by summing the rows,
// then a striped table with a running "Page N of M" footer. Values are
// formatted to two decimal places at render time only.
func ExportPDF(rows []models.SummaryRow, reportName string, now time.Time) (*Artifact, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(reportName, true)
	doc.AliasNbPages("")

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	// Title and generation date, centered.
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, reportName, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, "Generated on: "+now.Format("2006-01-02"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	// Totals are a summation over the rows, computed here, not copied from
	// any single row.
	doc.CellFormat(0, 7, fmt.Sprintf("Total Articles: %d", payout.TotalArticles(rows)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("Total Payout: $%.2f", payout.Total(rows)), "", 1, "L", false, 0, "")
	doc.Ln(4)

	drawTableHeader(doc)

	fill := false
	for _, row := range rows {
		if doc.GetY() > pdfPageBreakY {
			doc.AddPage()
			drawTableHeader(doc)
			fill = false
		}

		doc.SetFillColor(245, 245, 245)
		doc.SetTextColor(0, 0, 0)
		doc.SetFont("Helvetica", "", 10)
		doc.SetX(pdfMarginLeft)
		doc.CellFormat(pdfAuthorColW, pdfRowH, row.Author, "1", 0, "L", fill, 0, "")
		doc.CellFormat(pdfArticlesColW, pdfRowH, fmt.Sprintf("%d", row.TotalCount), "1", 0, "R", fill, 0, "")
		doc.CellFormat(pdfPayoutColW, pdfRowH, fmt.Sprintf("%.2f", row.TotalPayout), "1", 1, "R", fill, 0, "")
		fill = !fill
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: generating pdf: %v", ErrRender, err)
	}

	return &Artifact{
		Filename:    Filename(reportName, "pdf", now),
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

// drawTableHeader draws the dark header band above the table columns.
func drawTableHeader(doc *fpdf.Fpdf) {
	doc.SetFillColor(51, 51, 51)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetX(pdfMarginLeft)
	doc.CellFormat(pdfAuthorColW, pdfRowH, "Author", "1", 0, "L", true, 0, "")
	doc.CellFormat(pdfArticlesColW, pdfRowH, "Articles", "1", 0, "R", true, 0, "")
	doc.CellFormat(pdfPayoutColW, pdfRowH, "Payout ($)", "1", 1, "R", true, 0, "")
}
