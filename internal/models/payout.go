package models

// RateEntry holds the per-type payout rates for one author. This is the
// canonical rate shape; a single flat per-type rate is expressed as a
// RateEntry applied as the default for authors without an override.
type RateEntry struct {
	NewsRate float64 `json:"news_rate"`
	BlogRate float64 `json:"blog_rate"`
}

// SummaryRow is the aggregated payout figure for one author. It is derived
// data: computed fresh on every aggregation, never persisted or mutated.
//
// Invariants: NewsPayout = NewsCount*NewsRate, BlogPayout = BlogCount*BlogRate,
// TotalPayout = NewsPayout+BlogPayout, all exact (rounding happens only at
// display time in the exporters).
type SummaryRow struct {
	Author      string  `json:"author"`
	NewsCount   int     `json:"news_count"`
	BlogCount   int     `json:"blog_count"`
	TotalCount  int     `json:"total_count"`
	NewsRate    float64 `json:"news_rate"`
	BlogRate    float64 `json:"blog_rate"`
	NewsPayout  float64 `json:"news_payout"`
	BlogPayout  float64 `json:"blog_payout"`
	TotalPayout float64 `json:"total_payout"`
}
