package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

// OpenMeteoClient serves the local weather feature for the fixed coordinate
// catalog. Open-Meteo requires no credential.
type OpenMeteoClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoClient(client *http.Client) *OpenMeteoClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoClient{
		baseURL: "https://api.open-meteo.com/v1/forecast",
		client:  client,
		circuit: cb,
	}
}

// Current fetches the current reading for a predefined location.
// Temperatures are Fahrenheit, wind is km/h.
func (c *OpenMeteoClient) Current(ctx context.Context, loc LocalLocation) (LocalWeather, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	values.Set("current_weather", "true")
	values.Set("temperature_unit", "fahrenheit")
	values.Set("windspeed_unit", "kmh")
	values.Set("timezone", "auto")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())

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
		return LocalWeather{}, err
	}

	var payload struct {
		CurrentWeather struct {
			Temperature   float64 `json:"temperature"`
			WindSpeed     float64 `json:"windspeed"`
			WindDirection float64 `json:"winddirection"`
			WeatherCode   int     `json:"weathercode"`
			Time          string  `json:"time"`
		} `json:"current_weather"`
	}
	if err := json.Unmarshal(result.([]byte), &payload); err != nil {
		return LocalWeather{}, err
	}

	cw := payload.CurrentWeather
	return LocalWeather{
		Location:      loc.Name,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		Temperature:   cw.Temperature,
		WindSpeed:     cw.WindSpeed,
		WindDirection: cw.WindDirection,
		WeatherCode:   cw.WeatherCode,
		Time:          cw.Time,
		LastUpdated:   time.Now().UTC(),
		Source:        SourceOpenMeteo,
	}, nil
}
