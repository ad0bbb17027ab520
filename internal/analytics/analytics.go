// Package analytics computes the aggregate series behind the dashboard
// charts. Like the payout aggregator, everything here is a pure pass over
// whatever articles are currently loaded.
package analytics

import (
	"sort"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

// CategoryCount is one bar of the articles-per-category chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DayCount is one point of the articles-per-day series.
type DayCount struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// Summary holds every chart series the dashboard renders.
type Summary struct {
	TotalArticles int             `json:"total_articles"`
	NewsCount     int             `json:"news_count"`
	BlogCount     int             `json:"blog_count"`
	AuthorCount   int             `json:"author_count"`
	ByCategory    []CategoryCount `json:"by_category"`
	ByDay         []DayCount      `json:"by_day"`
}

// Summarize builds the chart series from the given articles. Categories are
// ordered by count descending (ties by name), days ascending. Articles with
// no category are grouped under "uncategorized"; articles with no publication
// date are omitted from the per-day series only.
func Summarize(articles []models.Article) Summary {
	s := Summary{TotalArticles: len(articles)}

	byCategory := make(map[string]int)
	byDay := make(map[string]int)
	authors := make(map[string]struct{})

	for i := range articles {
		a := &articles[i]

		switch a.Type {
		case models.TypeNews:
			s.NewsCount++
		case models.TypeBlog:
			s.BlogCount++
		}

		category := a.Category
		if category == "" {
			category = "uncategorized"
		}
		byCategory[category]++

		if a.PublishedAt != nil {
			byDay[a.PublishedAt.UTC().Format("2006-01-02")]++
		}

		authors[a.Author] = struct{}{}
	}

	s.AuthorCount = len(authors)

	s.ByCategory = make([]CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		s.ByCategory = append(s.ByCategory, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		if s.ByCategory[i].Count != s.ByCategory[j].Count {
			return s.ByCategory[i].Count > s.ByCategory[j].Count
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	s.ByDay = make([]DayCount, 0, len(byDay))
	for day, count := range byDay {
		s.ByDay = append(s.ByDay, DayCount{Day: day, Count: count})
	}
	sort.Slice(s.ByDay, func(i, j int) bool {
		return s.ByDay[i].Day < s.ByDay[j].Day
	})

	return s
}
