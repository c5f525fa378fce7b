package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	errUnexpectedStatus = errors.New("unexpected status code")
	errNoAPIKey         = errors.New("openweather api key is not configured")
)

// titleCase capitalizes each word of a provider description.
// A cases.Caser is stateful, so one is created per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// OpenWeatherClient fetches current conditions and 5-day/3-hour forecasts
// from OpenWeatherMap. Every call is a single attempt behind a circuit
// breaker; there are no retries.
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherClient(client *http.Client, apiKey string) *OpenWeatherClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		client:  client,
		circuit: cb,
	}
}

// Configured reports whether a credential is available. Without one the
// client must never be invoked.
func (c *OpenWeatherClient) Configured() bool {
	return c != nil && c.apiKey != ""
}

func (c *OpenWeatherClient) get(ctx context.Context, path string, values url.Values, out any) error {
	if c.apiKey == "" {
		return errNoAPIKey
	}

	values.Set("appid", c.apiKey)
	values.Set("units", "metric")
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())

	result, err := c.circuit.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return err
	}

	body, ok := result.([]byte)
	if !ok {
		return fmt.Errorf("unexpected result type from circuit breaker")
	}
	return json.Unmarshal(body, out)
}

type currentPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility int `json:"visibility"` // meters
	Timezone   int `json:"timezone"`   // shift from UTC in seconds
}

// Current fetches and normalizes current conditions for a city.
func (c *OpenWeatherClient) Current(ctx context.Context, city, country string) (CurrentWeather, error) {
	values := url.Values{}
	values.Set("q", fmt.Sprintf("%s,%s", city, country))

	var payload currentPayload
	if err := c.get(ctx, "/weather", values, &payload); err != nil {
		return CurrentWeather{}, err
	}

	return normalizeCurrent(payload), nil
}

func normalizeCurrent(p currentPayload) CurrentWeather {
	description, icon := "", ""
	if len(p.Weather) > 0 {
		description = titleCase(p.Weather[0].Description)
		icon = p.Weather[0].Icon
	}

	visibility := p.Visibility
	if visibility == 0 {
		visibility = 10000
	}

	zone := time.FixedZone("", p.Timezone)

	return CurrentWeather{
		City:          p.Name,
		Country:       p.Sys.Country,
		Temperature:   int(math.Round(p.Main.Temp)),
		FeelsLike:     int(math.Round(p.Main.FeelsLike)),
		Humidity:      p.Main.Humidity,
		Pressure:      p.Main.Pressure,
		Description:   description,
		Icon:          icon,
		WindSpeed:     p.Wind.Speed,
		WindDirection: p.Wind.Deg,
		Visibility:    float64(visibility) / 1000,
		Sunrise:       time.Unix(p.Sys.Sunrise, 0).In(zone).Format("15:04"),
		Sunset:        time.Unix(p.Sys.Sunset, 0).In(zone).Format("15:04"),
		LastUpdated:   time.Now().UTC(),
		Source:        SourceOpenWeather,
	}
}

type forecastPayload struct {
	List []forecastSample `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

type forecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Forecast fetches the 3-hour-interval forecast and folds it into at most
// `days` calendar days.
func (c *OpenWeatherClient) Forecast(ctx context.Context, city, country string, days int) (ForecastResponse, error) {
	values := url.Values{}
	values.Set("q", fmt.Sprintf("%s,%s", city, country))
	values.Set("cnt", fmt.Sprintf("%d", days*8)) // 8 samples per day

	var payload forecastPayload
	if err := c.get(ctx, "/forecast", values, &payload); err != nil {
		return ForecastResponse{}, err
	}

	return ForecastResponse{
		City:        payload.City.Name,
		Country:     payload.City.Country,
		Forecasts:   groupForecastDays(payload.List, days),
		LastUpdated: time.Now().UTC(),
		Source:      SourceOpenWeather,
	}, nil
}

// groupForecastDays folds consecutive 3-hour samples sharing a calendar date
// into one ForecastDay. Max/min are taken over the day's samples; the
// description and icon come from the last sample seen for that date.
func groupForecastDays(samples []forecastSample, days int) []ForecastDay {
	if len(samples) > days*8 {
		samples = samples[:days*8]
	}

	var (
		out     []ForecastDay
		current ForecastDay
		open    bool
	)

	flush := func() {
		if open {
			out = append(out, current)
			open = false
		}
	}

	for _, s := range samples {
		date := time.Unix(s.Dt, 0).UTC().Format("2006-01-02")
		if !open || current.Date != date {
			flush()
			current = ForecastDay{
				Date:    date,
				MaxTemp: s.Main.Temp,
				MinTemp: s.Main.Temp,
			}
			open = true
		} else {
			current.MaxTemp = math.Max(current.MaxTemp, s.Main.Temp)
			current.MinTemp = math.Min(current.MinTemp, s.Main.Temp)
		}
		if len(s.Weather) > 0 {
			current.Description = titleCase(s.Weather[0].Description)
			current.Icon = s.Weather[0].Icon
		}
	}
	flush()

	if len(out) > days {
		out = out[:days]
	}
	return out
}
