package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulc3/dashboard-api/internal/cache"
	"github.com/dulc3/dashboard-api/internal/config"
	"github.com/dulc3/dashboard-api/internal/feed"
	"github.com/dulc3/dashboard-api/internal/weather"
)

// emptyFetcher fails every source, exercising the zero-contribution path
// without touching the network.
type emptyFetcher struct{}

func (emptyFetcher) Fetch(_ context.Context, _ feed.Source) ([]feed.Article, error) {
	return nil, assert.AnError
}

func newTestApp() *fiber.App {
	cfg := &config.AppConfig{
		WeatherCacheTTL: time.Minute,
		FeedCacheTTL:    time.Minute,
		HTTPTimeout:     time.Second,
		Environment:     "test",
	}
	client := &http.Client{Timeout: time.Second}

	weatherSvc := weather.NewService(cache.New(), cfg,
		weather.NewOpenWeatherClient(client, ""),
		weather.NewOpenMeteoClient(client),
	)
	feedSvc := feed.NewService(cache.New(), cfg, emptyFetcher{})

	app := fiber.New()
	RegisterRoutes(app, weatherSvc, feedSvc, cfg.Environment)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestForecastDaysValidation(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{
		"/api/weather/forecast?city=Paris&country=FR&days=8",
		"/api/weather/forecast?city=Paris&country=FR&days=0",
		"/api/weather/forecast?city=Paris&country=FR&days=abc",
	} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}

	resp := get(t, app, "/api/weather/forecast?city=Paris&country=FR&days=3")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Forecasts []struct {
			MaxTemp float64 `json:"max_temp"`
		} `json:"forecasts"`
		Source string `json:"source"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "mock", body.Source, "no credential configured means mock data")
	assert.Len(t, body.Forecasts, 3)
}

func TestFeedLimitValidation(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{
		"/api/social/feed?limit=0",
		"/api/social/feed?limit=101",
		"/api/social/feed?limit=x",
	} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestFeedInvalidCategoriesFallBackToDefaults(t *testing.T) {
	app := newTestApp()

	resp := get(t, app, "/api/social/feed?categories=bogus,unknown")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Articles   []any    `json:"articles"`
		TotalCount int      `json:"total_count"`
		Categories []string `json:"categories"`
		Sources    []any    `json:"sources"`
	}
	decode(t, resp, &body)

	assert.Equal(t, []string{"security", "tech"}, body.Categories)
	assert.Equal(t, 0, body.TotalCount, "all sources failing still yields 200")
	assert.NotEmpty(t, body.Sources, "summary lists in-scope sources even with no data")
}

func TestCurrentWeatherDefaults(t *testing.T) {
	app := newTestApp()

	resp := get(t, app, "/api/weather")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		City   string `json:"city"`
		Source string `json:"source"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "London", body.City)
	assert.Equal(t, "mock", body.Source)
}

func TestLocalWeatherUnknownLocation(t *testing.T) {
	app := newTestApp()

	resp := get(t, app, "/api/weather/local?location=nowhere")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	resp := get(t, app, "/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status      string `json:"status"`
		Version     string `json:"version"`
		Environment string `json:"environment"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, version, body.Version)
	assert.Equal(t, "test", body.Environment)
}

func TestStaticEndpoints(t *testing.T) {
	app := newTestApp()

	resp := get(t, app, "/api/weather/cities")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/social/feed/categories")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cats struct {
		Categories   []string       `json:"categories"`
		SourcesCount map[string]int `json:"sources_count"`
		TotalSources int            `json:"total_sources"`
	}
	decode(t, resp, &cats)
	assert.Contains(t, cats.Categories, "devops")
	assert.Equal(t, 12, cats.TotalSources)

	resp = get(t, app, "/api/social/feed/sources")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFeedRefresh(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/social/feed/refresh", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Message         string   `json:"message"`
		ArticlesFetched int      `json:"articles_fetched"`
		Categories      []string `json:"categories"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 0, body.ArticlesFetched)
	assert.Equal(t, []string{"security", "tech", "devops"}, body.Categories)
}
