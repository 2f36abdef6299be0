package dashboard

import "math"

// UVBand is the risk band for a UV index value
type UVBand struct {
	Level       string
	Description string
	Advice      string
	Color       string
}

// Upper bounds are inclusive
var uvBands = []struct {
	max  float64
	band UVBand
}{
	{2, UVBand{Level: "Low", Description: "Low risk", Advice: "No sunscreen needed.", Color: "#4CAF50"}},
	{5, UVBand{Level: "Moderate", Description: "Moderate risk", Advice: "Use sunscreen between 10:00 and 16:00.", Color: "#FFC107"}},
	{7, UVBand{Level: "High", Description: "High risk", Advice: "Use sunscreen and stay in the shade.", Color: "#FF9800"}},
	{10, UVBand{Level: "Very High", Description: "Very high risk", Advice: "Use high factor sunscreen and try to stay indoors.", Color: "#F44336"}},
}

var extremeUV = UVBand{Level: "Extreme", Description: "Extreme risk", Advice: "Avoid going outside. If you must, take full protective measures.", Color: "#9C27B0"}

func UVBandFor(value float64) UVBand {
	for _, b := range uvBands {
		if value <= b.max {
			return b.band
		}
	}
	return extremeUV
}

// MeterPercent is the fill of the UV meter, 10% per index point, capped at 100
func MeterPercent(value float64) float64 {
	return math.Max(0, math.Min(value*10, 100))
}
