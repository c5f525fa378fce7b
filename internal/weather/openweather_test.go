package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(ts time.Time, temp float64, description, icon string) forecastSample {
	s := forecastSample{Dt: ts.Unix()}
	s.Main.Temp = temp
	s.Weather = []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{{Description: description, Icon: icon}}
	return s
}

func TestGroupForecastDays(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Two days of eight 3-hour samples each.
	var samples []forecastSample
	for day := 0; day < 2; day++ {
		for i := 0; i < 8; i++ {
			ts := base.AddDate(0, 0, day).Add(time.Duration(i) * 3 * time.Hour)
			temp := float64(10+day*10) + float64(i)
			desc := "scattered clouds"
			if i == 7 {
				desc = "light rain"
			}
			samples = append(samples, sample(ts, temp, desc, "10d"))
		}
	}

	days := groupForecastDays(samples, 2)
	require.Len(t, days, 2)

	assert.Equal(t, "2026-03-01", days[0].Date)
	assert.Equal(t, 17.0, days[0].MaxTemp)
	assert.Equal(t, 10.0, days[0].MinTemp)
	assert.Equal(t, "2026-03-02", days[1].Date)
	assert.Equal(t, 27.0, days[1].MaxTemp)
	assert.Equal(t, 20.0, days[1].MinTemp)

	// Description and icon come from the day's last sample.
	assert.Equal(t, "Light Rain", days[0].Description)
	assert.Equal(t, "10d", days[0].Icon)
}

func TestGroupForecastDaysTruncatesToRequestedDays(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var samples []forecastSample
	for day := 0; day < 3; day++ {
		for i := 0; i < 8; i++ {
			ts := base.AddDate(0, 0, day).Add(time.Duration(i) * 3 * time.Hour)
			samples = append(samples, sample(ts, 15, "clear sky", "01d"))
		}
	}

	days := groupForecastDays(samples, 2)
	assert.Len(t, days, 2)
	assert.Equal(t, "2026-03-01", days[0].Date)
	assert.Equal(t, "2026-03-02", days[1].Date)
}

func TestNormalizeCurrent(t *testing.T) {
	var p currentPayload
	p.Name = "London"
	p.Sys.Country = "GB"
	p.Main.Temp = 17.6
	p.Main.FeelsLike = 16.2
	p.Main.Humidity = 65
	p.Main.Pressure = 1013
	p.Weather = []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{{Description: "broken clouds", Icon: "04d"}}
	p.Wind.Speed = 3.2
	p.Wind.Deg = 225
	p.Visibility = 8000
	p.Timezone = 3600
	// 06:30 UTC; with the +1h shift the local sunrise reads 07:30.
	p.Sys.Sunrise = time.Date(2026, 3, 1, 6, 30, 0, 0, time.UTC).Unix()
	p.Sys.Sunset = time.Date(2026, 3, 1, 17, 45, 0, 0, time.UTC).Unix()

	w := normalizeCurrent(p)

	assert.Equal(t, "London", w.City)
	assert.Equal(t, 18, w.Temperature, "temperature rounds to nearest degree")
	assert.Equal(t, 16, w.FeelsLike)
	assert.Equal(t, "Broken Clouds", w.Description)
	assert.Equal(t, 8.0, w.Visibility, "visibility converts meters to km")
	assert.Equal(t, "07:30", w.Sunrise)
	assert.Equal(t, "18:45", w.Sunset)
	assert.Equal(t, SourceOpenWeather, w.Source)
}

func TestNormalizeCurrentDefaultsVisibility(t *testing.T) {
	var p currentPayload
	w := normalizeCurrent(p)
	assert.Equal(t, 10.0, w.Visibility)
}
