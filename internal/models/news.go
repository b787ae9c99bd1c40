package models

import "time"

// Article is a single news item. Fields missing upstream stay null.
// swagger:model Article
type Article struct {
	// Headline
	// example: City marathon closes downtown streets
	Title *string `json:"title"`

	// Link to the full article
	// example: https://example.com/marathon
	URL *string `json:"url"`

	// Lead image
	// example: https://example.com/marathon.jpg
	Image *string `json:"image"`
}

// NewsCacheEntry is the cached result of one upstream search.
type NewsCacheEntry struct {
	Articles  []Article `json:"articles"`  // Up to ten articles, in upstream order
	Timestamp time.Time `json:"timestamp"` // Fetch time
}

// FreshAt reports whether the entry is still inside the freshness window at now.
func (e *NewsCacheEntry) FreshAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.Timestamp) < ttl
}
