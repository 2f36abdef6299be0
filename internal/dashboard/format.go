package dashboard

import (
	"math"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	entriesPerDay = 8
	maxDays       = 5
)

// DaySummary is one row of the five day forecast
type DaySummary struct {
	Label    string
	Category Category
	Humidity int
	High     int
	Low      int
}

// DailySummaries samples one entry per day from the 3-hourly forecast.
// The first row is labelled "Today", the rest by short weekday.
func DailySummaries(fc *models.Forecast) []DaySummary {
	if fc == nil {
		return nil
	}
	var days []DaySummary
	for i := 0; i < len(fc.List) && len(days) < maxDays; i += entriesPerDay {
		entry := fc.List[i]
		label := "Today"
		if len(days) > 0 {
			label = localTime(entry.Dt, fc.City.Timezone).Format("Mon")
		}
		days = append(days, DaySummary{
			Label:    label,
			Category: ParseCategory(entry.Primary().Main),
			Humidity: entry.Main.Humidity,
			High:     round(entry.Main.TempMax),
			Low:      round(entry.Main.TempMin),
		})
	}
	return days
}

var aqiDescriptions = [...]string{"Good", "Fair", "Moderate", "Poor", "Very Poor"}

// AQIDescription names the 1-5 air quality index
func AQIDescription(aqi int) string {
	if aqi < 1 || aqi > len(aqiDescriptions) {
		return "Unknown"
	}
	return aqiDescriptions[aqi-1]
}

// FeelsComparison reports whether it feels warmer or cooler than measured
func FeelsComparison(temp, feelsLike float64) string {
	if round(feelsLike) > round(temp) {
		return "warmer"
	}
	return "cooler"
}

// SunTime formats a unix timestamp as HH:MM at the location's UTC offset
func SunTime(unix int64, offsetSeconds int) string {
	return localTime(unix, offsetSeconds).Format("15:04")
}

func localTime(unix int64, offsetSeconds int) time.Time {
	return time.Unix(unix, 0).In(time.FixedZone("", offsetSeconds))
}

// round rounds halves up, so -2.5 becomes -2
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
