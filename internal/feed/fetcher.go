package feed

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	userAgent = "dashboard-api/0.1 (feed aggregator)"

	// Per-source article cap applied before aggregation.
	maxArticlesPerSource = 10

	// Description length cap in characters.
	descriptionLimit = 200
)

var domainRe = regexp.MustCompile(`https?://([^/]+)`)

// Fetcher retrieves and normalizes articles from one upstream source.
type Fetcher interface {
	Fetch(ctx context.Context, source Source) ([]Article, error)
}

// RSSFetcher fetches RSS/Atom feeds over HTTP with a bounded timeout.
type RSSFetcher struct {
	parser *gofeed.Parser
}

func NewRSSFetcher(client *http.Client) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent
	return &RSSFetcher{parser: parser}
}

// Fetch returns at most maxArticlesPerSource normalized articles. Any HTTP
// or parse failure is returned to the caller; it contributes zero articles
// and must not disturb sibling fetches.
func (f *RSSFetcher) Fetch(ctx context.Context, source Source) ([]Article, error) {
	parsed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.Name, err)
	}

	items := parsed.Items
	if len(items) > maxArticlesPerSource {
		items = items[:maxArticlesPerSource]
	}

	now := time.Now().UTC()
	articles := make([]Article, 0, len(items))
	for _, item := range items {
		published := now
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC()
		} else if item.UpdatedParsed != nil {
			published = item.UpdatedParsed.UTC()
		}

		raw := item.Description
		if raw == "" {
			raw = item.Content
		}

		title := item.Title
		if title == "" {
			title = "No Title"
		}

		articles = append(articles, Article{
			Title:       title,
			Description: normalizeDescription(raw),
			URL:         item.Link,
			Source:      source.Name,
			Category:    source.Category,
			Published:   published,
			Domain:      extractDomain(item.Link),
		})
	}

	return articles, nil
}

// normalizeDescription strips markup, trims whitespace, and caps the text at
// descriptionLimit characters. The ellipsis marker is appended whether or
// not truncation happened; only entries with no description at all skip it.
func normalizeDescription(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.TrimSpace(stripHTML(raw))
	runes := []rune(text)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + "..."
}

// stripHTML drops tags and collapses whitespace runs to single spaces.
func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// extractDomain pulls the host out of an article URL, empty if unparseable.
func extractDomain(url string) string {
	m := domainRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
