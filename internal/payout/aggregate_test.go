package payout

import (
	"reflect"
	"testing"

	"github.com/harshavardhan-9/news-blog/internal/models"
)

var testDefaultRate = models.RateEntry{NewsRate: 10, BlogRate: 15}

func article(author string, typ models.ArticleType) models.Article {
	return models.Article{
		Title:      "t",
		URL:        "https://example.com/" + author,
		Author:     author,
		SourceName: "src",
		Type:       typ,
	}
}

func TestAggregate_ConcreteScenario(t *testing.T) {
	// Two news + one blog for author A at rates 10/15 → 20 + 15 = 35.
	articles := []models.Article{
		article("A", models.TypeNews),
		article("A", models.TypeNews),
		article("A", models.TypeBlog),
	}
	rates := map[string]models.RateEntry{
		"A": {NewsRate: 10, BlogRate: 15},
	}

	rows, err := Aggregate(articles, rates, testDefaultRate)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	want := models.SummaryRow{
		Author: "A", NewsCount: 2, BlogCount: 1, TotalCount: 3,
		NewsRate: 10, BlogRate: 15,
		NewsPayout: 20, BlogPayout: 15, TotalPayout: 35,
	}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	rows, err := Aggregate(nil, map[string]models.RateEntry{}, testDefaultRate)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestAggregate_DefaultRateFallback(t *testing.T) {
	articles := []models.Article{
		article("Known", models.TypeNews),
		article("Unknown", models.TypeNews),
	}
	rates := map[string]models.RateEntry{
		"Known": {NewsRate: 100, BlogRate: 200},
	}

	rows, err := Aggregate(articles, rates, testDefaultRate)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Rows are sorted by author ascending: Known, Unknown.
	if rows[0].NewsPayout != 100 {
		t.Errorf("Known payout = %v, want 100", rows[0].NewsPayout)
	}
	if rows[1].NewsPayout != testDefaultRate.NewsRate {
		t.Errorf("Unknown payout = %v, want default %v", rows[1].NewsPayout, testDefaultRate.NewsRate)
	}
}

func TestAggregate_ExactAuthorGrouping(t *testing.T) {
	// "A" and "a " are distinct authors: no trimming or case-folding.
	articles := []models.Article{
		article("A", models.TypeNews),
		article("a ", models.TypeNews),
	}

	rows, err := Aggregate(articles, nil, testDefaultRate)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2 distinct authors", len(rows))
	}
}

func TestAggregate_Pure(t *testing.T) {
	articles := []models.Article{
		article("B", models.TypeBlog),
		article("A", models.TypeNews),
		article("B", models.TypeNews),
	}
	rates := map[string]models.RateEntry{"B": {NewsRate: 1, BlogRate: 2}}

	first, err := Aggregate(articles, rates, testDefaultRate)
	if err != nil {
		t.Fatalf("first Aggregate() error: %v", err)
	}
	second, err := Aggregate(articles, rates, testDefaultRate)
	if err != nil {
		t.Fatalf("second Aggregate() error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAggregate_SortedByAuthor(t *testing.T) {
	articles := []models.Article{
		article("Charlie", models.TypeNews),
		article("Alice", models.TypeNews),
		article("Bob", models.TypeNews),
	}

	rows, err := Aggregate(articles, nil, testDefaultRate)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}

	want := []string{"Alice", "Bob", "Charlie"}
	for i, w := range want {
		if rows[i].Author != w {
			t.Errorf("rows[%d].Author = %q, want %q", i, rows[i].Author, w)
		}
	}
}

func TestAggregate_TotalInvariant(t *testing.T) {
	articles := []models.Article{
		article("A", models.TypeNews),
		article("A", models.TypeBlog),
		article("B", models.TypeBlog),
		article("C", models.TypeNews),
	}
	rates := map[string]models.RateEntry{
		"A": {NewsRate: 12.25, BlogRate: 7.75},
		"B": {NewsRate: 3, BlogRate: 9.5},
	}

	rows, err := Aggregate(articles, rates, testDefaultRate)
	if err != nil {
		t.Fatalf("Aggregate() error: %v", err)
	}

	var wantTotal float64
	for _, r := range rows {
		if r.TotalPayout != r.NewsPayout+r.BlogPayout {
			t.Errorf("row %q: TotalPayout %v != NewsPayout %v + BlogPayout %v",
				r.Author, r.TotalPayout, r.NewsPayout, r.BlogPayout)
		}
		if r.NewsPayout != float64(r.NewsCount)*r.NewsRate {
			t.Errorf("row %q: NewsPayout %v != %d * %v", r.Author, r.NewsPayout, r.NewsCount, r.NewsRate)
		}
		wantTotal += r.NewsPayout + r.BlogPayout
	}

	if got := Total(rows); got != wantTotal {
		t.Errorf("Total() = %v, want %v", got, wantTotal)
	}
	if got := TotalArticles(rows); got != 4 {
		t.Errorf("TotalArticles() = %d, want 4", got)
	}
}

func TestAggregate_UnknownTypeFails(t *testing.T) {
	articles := []models.Article{
		{Author: "A", URL: "https://example.com/x", Type: models.ArticleType("video")},
	}

	if _, err := Aggregate(articles, nil, testDefaultRate); err == nil {
		t.Fatal("expected error for unknown article type, got nil")
	}
}
