package feed

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dulc3/dashboard-api/internal/cache"
	"github.com/dulc3/dashboard-api/internal/config"
	"github.com/dulc3/dashboard-api/internal/logging"
)

// trendingSampleSize is how many recent articles the keyword analysis pulls,
// independent of the normal feed limit.
const trendingSampleSize = 100

var titleWordRe = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// trendingVocabulary is the fixed keyword set counted by the trending
// analysis. Title tokens outside this set are ignored.
var trendingVocabulary = map[string]bool{
	"security": true, "vulnerability": true, "malware": true, "breach": true,
	"hack": true, "attack": true, "kubernetes": true, "docker": true,
	"cloud": true, "ai": true, "ml": true, "devops": true, "api": true,
	"zero-day": true, "ransomware": true, "phishing": true, "exploit": true,
}

// Service aggregates articles across the source catalog with per-key TTL
// caching. All per-source failures are swallowed into zero contributions;
// the aggregate call itself never fails.
type Service struct {
	store   *cache.Store
	cfg     *config.AppConfig
	fetcher Fetcher
}

func NewService(store *cache.Store, cfg *config.AppConfig, fetcher Fetcher) *Service {
	return &Service{
		store:   store,
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// cacheKey builds a composite key from the category set. Categories are
// sorted first so logically equal requests share an entry.
func cacheKey(prefix string, categories []string) string {
	sorted := append([]string(nil), categories...)
	sort.Strings(sorted)
	return prefix + ":" + strings.Join(sorted, ",")
}

// sourcesFor returns the catalog sources in scope for the requested
// categories, in catalog order.
func sourcesFor(categories []string) []Source {
	var out []Source
	for _, cat := range categories {
		out = append(out, Catalog[cat]...)
	}
	return out
}

type fetchResult struct {
	source   Source
	articles []Article
	err      error
}

// Articles aggregates the feeds for the requested categories.
//
// On a cache miss every in-scope source is fetched concurrently; each branch
// records a result or an error without cancelling its siblings. The combined
// articles are sorted newest-first (stable, so ties keep source encounter
// order) and truncated to limit.
func (s *Service) Articles(ctx context.Context, categories []string, limit int) Response {
	key := cacheKey("articles", categories)
	if s.store.Fresh(key, s.cfg.FeedCacheTTL) {
		if e, ok := s.store.Get(key); ok {
			return e.Payload.(Response)
		}
	}

	sources := sourcesFor(categories)
	results := make([]fetchResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()

			fctx, cancel := context.WithTimeout(ctx, s.cfg.HTTPTimeout)
			defer cancel()

			articles, err := s.fetcher.Fetch(fctx, src)
			results[i] = fetchResult{source: src, articles: articles, err: err}
		}(i, src)
	}
	wg.Wait()

	var all []Article
	for _, r := range results {
		if r.err != nil {
			logging.Logger.Error("feed fetch failed", "source", r.source.Name,
				"category", r.source.Category, "err", r.err)
			continue
		}
		all = append(all, r.articles...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Published.After(all[j].Published)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	if all == nil {
		all = []Article{}
	}

	response := Response{
		Articles:    all,
		TotalCount:  len(all),
		Categories:  categories,
		LastUpdated: time.Now().UTC(),
		Sources:     summarize(sources),
	}

	s.store.Put(key, response)
	return response
}

// summarize lists every in-scope source, not only ones that returned data.
func summarize(sources []Source) []SourceSummary {
	out := make([]SourceSummary, 0, len(sources))
	for _, src := range sources {
		out = append(out, SourceSummary{
			Name:     src.Name,
			Category: src.Category,
			Type:     src.Type,
		})
	}
	return out
}

// Trending counts vocabulary keywords across recent article titles and
// returns the top ten. Cached independently of the article feed.
func (s *Service) Trending(ctx context.Context, categories []string) TrendingResponse {
	key := cacheKey("trending", categories)
	if s.store.Fresh(key, s.cfg.FeedCacheTTL) {
		if e, ok := s.store.Get(key); ok {
			return e.Payload.(TrendingResponse)
		}
	}

	feed := s.Articles(ctx, categories, trendingSampleSize)

	counts := make(map[string]int)
	var order []string // first-encounter order, for deterministic ties
	for _, article := range feed.Articles {
		for _, word := range titleWordRe.FindAllString(strings.ToLower(article.Title), -1) {
			if !trendingVocabulary[word] {
				continue
			}
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	topics := make([]TrendingTopic, 0, len(order))
	for _, word := range order {
		topics = append(topics, TrendingTopic{Keyword: word, Count: counts[word]})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Count > topics[j].Count
	})
	if len(topics) > 10 {
		topics = topics[:10]
	}

	response := TrendingResponse{
		TrendingTopics: topics,
		AnalysisPeriod: "last_100_articles",
		LastUpdated:    time.Now().UTC(),
	}

	s.store.Put(key, response)
	return response
}

// Categories summarizes the catalog per category.
func (s *Service) Categories() CategoriesResponse {
	counts := make(map[string]int, len(Catalog))
	total := 0
	for cat, sources := range Catalog {
		counts[cat] = len(sources)
		total += len(sources)
	}

	return CategoriesResponse{
		Categories:   CategoryOrder,
		SourcesCount: counts,
		TotalSources: total,
	}
}

// Sources returns the full catalog.
func (s *Service) Sources() SourcesResponse {
	total := 0
	for _, sources := range Catalog {
		total += len(sources)
	}

	return SourcesResponse{
		Sources:         Catalog,
		TotalCategories: len(Catalog),
		TotalSources:    total,
		LastUpdated:     time.Now().UTC(),
	}
}

// Refresh clears the feed cache and force-refetches every category.
func (s *Service) Refresh(ctx context.Context) RefreshResponse {
	s.store.Clear()

	fresh := s.Articles(ctx, CategoryOrder, 50)

	return RefreshResponse{
		Message:         "Feed cache refreshed successfully",
		ArticlesFetched: fresh.TotalCount,
		Categories:      fresh.Categories,
		RefreshTime:     time.Now().UTC(),
	}
}
