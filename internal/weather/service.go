package weather

import (
	"context"
	"fmt"

	"github.com/dulc3/dashboard-api/internal/cache"
	"github.com/dulc3/dashboard-api/internal/config"
	"github.com/dulc3/dashboard-api/internal/logging"
)

// Service answers weather queries through the cache, falling back to mock
// data when no credential is configured or an upstream call fails. Weather
// endpoints never propagate upstream errors to callers.
type Service struct {
	store       *cache.Store
	cfg         *config.AppConfig
	openWeather *OpenWeatherClient
	openMeteo   *OpenMeteoClient
}

func NewService(store *cache.Store, cfg *config.AppConfig, ow *OpenWeatherClient, om *OpenMeteoClient) *Service {
	return &Service{
		store:       store,
		cfg:         cfg,
		openWeather: ow,
		openMeteo:   om,
	}
}

// Current returns current conditions for a city. Failures fall back to mock
// data without a cache write, so the next request retries upstream.
func (s *Service) Current(ctx context.Context, city, country string) CurrentWeather {
	key := fmt.Sprintf("current:%s,%s", city, country)
	if s.store.Fresh(key, s.cfg.WeatherCacheTTL) {
		if e, ok := s.store.Get(key); ok {
			return e.Payload.(CurrentWeather)
		}
	}

	if !s.openWeather.Configured() {
		return mockCurrent(city, country)
	}

	current, err := s.openWeather.Current(ctx, city, country)
	if err != nil {
		logging.Logger.Error("current weather fetch failed", "city", city, "country", country, "err", err)
		return mockCurrent(city, country)
	}

	s.store.Put(key, current)
	return current
}

// Forecast returns an up-to-`days`-day forecast for a city.
func (s *Service) Forecast(ctx context.Context, city, country string, days int) ForecastResponse {
	key := fmt.Sprintf("forecast:%s,%s", city, country)
	if s.store.Fresh(key, s.cfg.WeatherCacheTTL) {
		if e, ok := s.store.Get(key); ok {
			return e.Payload.(ForecastResponse)
		}
	}

	if !s.openWeather.Configured() {
		return mockForecast(city, country, days)
	}

	forecast, err := s.openWeather.Forecast(ctx, city, country, days)
	if err != nil {
		logging.Logger.Error("forecast fetch failed", "city", city, "country", country, "err", err)
		return mockForecast(city, country, days)
	}

	s.store.Put(key, forecast)
	return forecast
}

// Local returns the reading for one of the predefined coordinates. Unknown
// location keys are the only error this service surfaces.
func (s *Service) Local(ctx context.Context, locationKey string) (LocalWeather, error) {
	loc, ok := LocalLocations[locationKey]
	if !ok {
		return LocalWeather{}, fmt.Errorf("unknown location: %s", locationKey)
	}

	key := "local:" + locationKey
	if s.store.Fresh(key, s.cfg.WeatherCacheTTL) {
		if e, ok := s.store.Get(key); ok {
			return e.Payload.(LocalWeather), nil
		}
	}

	reading, err := s.openMeteo.Current(ctx, loc)
	if err != nil {
		logging.Logger.Error("local weather fetch failed", "location", locationKey, "err", err)
		return mockLocal(loc), nil
	}

	s.store.Put(key, reading)
	return reading, nil
}

// Cities returns the static suggested-city list.
func (s *Service) Cities() []City {
	return SuggestedCities
}
