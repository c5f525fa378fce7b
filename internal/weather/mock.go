package weather

import "time"

// Fallback readings served when no credential is configured or an upstream
// call fails. Values are fixed placeholders; Source is always the mock
// sentinel. The generators never touch the network or the cache.

func mockCurrent(city, country string) CurrentWeather {
	return CurrentWeather{
		City:          city,
		Country:       country,
		Temperature:   18,
		FeelsLike:     16,
		Humidity:      65,
		Pressure:      1013,
		Description:   "Partly Cloudy",
		Icon:          "02d",
		WindSpeed:     3.2,
		WindDirection: 225,
		Visibility:    10.0,
		Sunrise:       "07:30",
		Sunset:        "18:45",
		LastUpdated:   time.Now().UTC(),
		Source:        SourceMock,
	}
}

// mockForecast generates one entry per requested day. Temperatures climb by
// one degree per day index so consecutive days are visibly distinct.
func mockForecast(city, country string, days int) ForecastResponse {
	base := time.Now().UTC()
	forecasts := make([]ForecastDay, 0, days)

	for i := 0; i < days; i++ {
		forecasts = append(forecasts, ForecastDay{
			Date:        base.AddDate(0, 0, i).Format("2006-01-02"),
			MaxTemp:     float64(20 + i),
			MinTemp:     float64(12 + i),
			Description: "Partly Cloudy",
			Icon:        "02d",
		})
	}

	return ForecastResponse{
		City:        city,
		Country:     country,
		Forecasts:   forecasts,
		LastUpdated: time.Now().UTC(),
		Source:      SourceMock,
	}
}

func mockLocal(loc LocalLocation) LocalWeather {
	now := time.Now().UTC()
	return LocalWeather{
		Location:      loc.Name,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		Temperature:   72,
		WindSpeed:     5.0,
		WindDirection: 225,
		WeatherCode:   1,
		Time:          now.Format(time.RFC3339),
		LastUpdated:   now,
		Source:        SourceMock,
	}
}
