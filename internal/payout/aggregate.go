// Package payout computes per-author payout summaries from cached articles
// and the configured rate mapping, and manages rate persistence.
package payout

import (
	"fmt"
	"sort"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// Aggregate joins article counts per author against the rate mapping and
// produces one summary row per distinct author, sorted by author ascending.
//
// It is a pure function: same inputs produce identical output, nothing is
// mutated, and no persistence is touched. Authors are grouped by exact
// string equality. Authors missing from rates fall back to defaultRate.
// Arithmetic is exact; rounding happens only at display time.
//
// Callers must validate articles at ingestion: Aggregate assumes the type
// enum holds and returns an error rather than miscounting if it does not.
func Aggregate(articles []models.Article, rates map[string]models.RateEntry, defaultRate models.RateEntry) ([]models.SummaryRow, error) {
	type counts struct {
		news int
		blog int
	}
	byAuthor := make(map[string]*counts)

	for i := range articles {
		a := &articles[i]
		c, ok := byAuthor[a.Author]
		if !ok {
			c = &counts{}
			byAuthor[a.Author] = c
		}
		switch a.Type {
		case models.TypeNews:
			c.news++
		case models.TypeBlog:
			c.blog++
		default:
			return nil, fmt.Errorf("article %q: unknown type %q reached aggregation", a.URL, a.Type)
		}
	}

	rows := make([]models.SummaryRow, 0, len(byAuthor))
	for author, c := range byAuthor {
		rate, ok := rates[author]
		if !ok {
			rate = defaultRate
		}

		newsPayout := float64(c.news) * rate.NewsRate
		blogPayout := float64(c.blog) * rate.BlogRate

		rows = append(rows, models.SummaryRow{
			Author:      author,
			NewsCount:   c.news,
			BlogCount:   c.blog,
			TotalCount:  c.news + c.blog,
			NewsRate:    rate.NewsRate,
			BlogRate:    rate.BlogRate,
			NewsPayout:  newsPayout,
			BlogPayout:  blogPayout,
			TotalPayout: newsPayout + blogPayout,
		})
	}

	// Map iteration order is random; sort so output is deterministic.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Author < rows[j].Author
	})

	return rows, nil
}

// Total sums TotalPayout across rows. Exporters use this for the report
// totals line; it is a summation over the rows, not a formatting detail.
func Total(rows []models.SummaryRow) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.TotalPayout
	}
	return sum
}

// TotalArticles sums TotalCount across rows.
func TotalArticles(rows []models.SummaryRow) int {
	var sum int
	for _, r := range rows {
		sum += r.TotalCount
	}
	return sum
}
