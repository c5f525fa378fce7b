package weather

import "time"

// Source values reported in every response. Callers rely on the mock
// sentinel to tell live readings from synthetic ones.
const (
	SourceOpenWeather = "openweathermap"
	SourceOpenMeteo   = "open-meteo"
	SourceMock        = "mock"
)

// CurrentWeather is the normalized current-conditions view for a city.
type CurrentWeather struct {
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Temperature   int       `json:"temperature"`
	FeelsLike     int       `json:"feels_like"`
	Humidity      int       `json:"humidity"`
	Pressure      int       `json:"pressure"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection int       `json:"wind_direction"`
	Visibility    float64   `json:"visibility"` // kilometers
	Sunrise       string    `json:"sunrise"`    // HH:MM, provider-local time
	Sunset        string    `json:"sunset"`
	LastUpdated   time.Time `json:"last_updated"`
	Source        string    `json:"source"`
}

// ForecastDay is a single calendar day of a multi-day forecast.
type ForecastDay struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	MaxTemp     float64 `json:"max_temp"`
	MinTemp     float64 `json:"min_temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// ForecastResponse wraps an ascending-by-date forecast for a city.
type ForecastResponse struct {
	City        string        `json:"city"`
	Country     string        `json:"country"`
	Forecasts   []ForecastDay `json:"forecasts"`
	LastUpdated time.Time     `json:"last_updated"`
	Source      string        `json:"source"`
}

// LocalWeather is the reading for one of the predefined local coordinates,
// served by the credential-free backend. Imperial temperature, km/h wind.
type LocalWeather struct {
	Location      string    `json:"location"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Temperature   float64   `json:"temperature"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection float64   `json:"wind_direction"`
	WeatherCode   int       `json:"weather_code"`
	Time          string    `json:"time"`
	LastUpdated   time.Time `json:"last_updated"`
	Source        string    `json:"source"`
}

// City is a suggested lookup target for clients.
type City struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Code    string `json:"code"`
}

// LocalLocation is a predefined coordinate pair for the local weather
// feature, untied to the city/country query path.
type LocalLocation struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocalLocations is the fixed catalog of local coordinates.
var LocalLocations = map[string]LocalLocation{
	"san_bernardino": {
		Key:       "san_bernardino",
		Name:      "San Bernardino, CA",
		Latitude:  34.1083,
		Longitude: -117.2898,
	},
	"hesperia": {
		Key:       "hesperia",
		Name:      "Hesperia, CA",
		Latitude:  34.4264,
		Longitude: -117.3001,
	},
}

// SuggestedCities is the static list served by the cities endpoint.
var SuggestedCities = []City{
	{Name: "London", Country: "GB", Code: "london,gb"},
	{Name: "New York", Country: "US", Code: "new-york,us"},
	{Name: "Tokyo", Country: "JP", Code: "tokyo,jp"},
	{Name: "Sydney", Country: "AU", Code: "sydney,au"},
	{Name: "Berlin", Country: "DE", Code: "berlin,de"},
	{Name: "Paris", Country: "FR", Code: "paris,fr"},
	{Name: "Toronto", Country: "CA", Code: "toronto,ca"},
	{Name: "Amsterdam", Country: "NL", Code: "amsterdam,nl"},
}
