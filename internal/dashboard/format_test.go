package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

func TestDailySummaries(t *testing.T) {
	fc := loadFixture[models.Forecast](t, "owm_forecast.json")

	days := DailySummaries(fc)
	require.Len(t, days, 5)

	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Label
	}
	assert.Equal(t, []string{"Today", "Sat", "Sun", "Mon", "Tue"}, labels)

	assert.Equal(t, DaySummary{Label: "Today", Category: Clear, Humidity: 60, High: 20, Low: 16}, days[0])
}

func TestDailySummaries_Short(t *testing.T) {
	fc := &models.Forecast{List: make([]models.ForecastEntry, 9)}
	assert.Len(t, DailySummaries(fc), 2)

	assert.Empty(t, DailySummaries(&models.Forecast{}))
	assert.Nil(t, DailySummaries(nil))
}

func TestAQIDescription(t *testing.T) {
	want := map[int]string{0: "Unknown", 1: "Good", 2: "Fair", 3: "Moderate", 4: "Poor", 5: "Very Poor", 6: "Unknown"}
	for aqi, desc := range want {
		assert.Equal(t, desc, AQIDescription(aqi), "aqi %d", aqi)
	}
}

func TestFeelsComparison(t *testing.T) {
	assert.Equal(t, "warmer", FeelsComparison(20.4, 21.6))
	assert.Equal(t, "cooler", FeelsComparison(21.4, 21.1))
	// equal after rounding reads as cooler
	assert.Equal(t, "cooler", FeelsComparison(20.6, 20.9))
	assert.Equal(t, "warmer", FeelsComparison(-3.6, -2.5))
}

func TestSunTime(t *testing.T) {
	cw := loadFixture[models.CurrentWeather](t, "owm_current.json")

	assert.Equal(t, "06:56", SunTime(cw.Sys.Sunrise, cw.Timezone))
	assert.Equal(t, "18:02", SunTime(cw.Sys.Sunset, cw.Timezone))
	assert.Equal(t, "03:56", SunTime(cw.Sys.Sunrise, 0))
}
