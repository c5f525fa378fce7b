package feed

import "time"

// Source is one static catalog entry describing an upstream feed.
// The catalog is immutable for the process lifetime.
type Source struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

// Article is the normalized shape of a single feed entry.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	Published   time.Time `json:"published"`
	Domain      string    `json:"domain"`
}

// SourceSummary identifies a source in a feed response envelope.
type SourceSummary struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

// Response is the aggregated article envelope. Sources lists every source in
// scope for the requested categories, including ones that returned nothing.
type Response struct {
	Articles    []Article       `json:"articles"`
	TotalCount  int             `json:"total_count"`
	Categories  []string        `json:"categories"`
	LastUpdated time.Time       `json:"last_updated"`
	Sources     []SourceSummary `json:"sources"`
}

// TrendingTopic is one counted keyword.
type TrendingTopic struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TrendingResponse is the keyword analysis envelope.
type TrendingResponse struct {
	TrendingTopics []TrendingTopic `json:"trending_topics"`
	AnalysisPeriod string          `json:"analysis_period"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// CategoriesResponse summarizes the catalog per category.
type CategoriesResponse struct {
	Categories   []string       `json:"categories"`
	SourcesCount map[string]int `json:"sources_count"`
	TotalSources int            `json:"total_sources"`
}

// SourcesResponse is the full catalog dump.
type SourcesResponse struct {
	Sources         map[string][]Source `json:"sources"`
	TotalCategories int                 `json:"total_categories"`
	TotalSources    int                 `json:"total_sources"`
	LastUpdated     time.Time           `json:"last_updated"`
}

// RefreshResponse reports the outcome of a forced cache refresh.
type RefreshResponse struct {
	Message         string    `json:"message"`
	ArticlesFetched int       `json:"articles_fetched"`
	Categories      []string  `json:"categories"`
	RefreshTime     time.Time `json:"refresh_time"`
}
