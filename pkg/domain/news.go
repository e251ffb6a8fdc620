package domain

import "time"

// NewsItem represents one normalized news entry from any feed source
type NewsItem struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"published_at"`
	Summary     string     `json:"summary"`
	Source      string     `json:"source"`
}

// NewsCache is the per-day persisted news document
type NewsCache struct {
	Date  string     `json:"date"` // YYYY-MM-DD
	Items []NewsItem `json:"items"`
}
