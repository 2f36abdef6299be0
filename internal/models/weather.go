package models

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Condition is one entry of the upstream "weather" array
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`        // e.g. "Clear", "Rain"
	Description string `json:"description"` // localized, e.g. "açık"
	Icon        string `json:"icon"`        // upstream icon code, e.g. "01d"
}

// MainReadings holds the temperature block of a current weather response
type MainReadings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"` // hPa
	Humidity  int     `json:"humidity"` // %
}

// Wind holds wind conditions
type Wind struct {
	Speed float64  `json:"speed"`          // m/s in metric units
	Deg   int      `json:"deg"`            // meteorological degrees
	Gust  *float64 `json:"gust,omitempty"` // absent when calm
}

// Sys carries country and sun times (unix seconds)
type Sys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// CurrentWeather is the /weather response, kept as returned by the API
type CurrentWeather struct {
	Coord      *Coordinates `json:"coord,omitempty"`
	Weather    []Condition  `json:"weather"`
	Main       MainReadings `json:"main"`
	Visibility int          `json:"visibility"` // meters
	Wind       Wind         `json:"wind"`
	Dt         int64        `json:"dt"`
	Sys        Sys          `json:"sys"`
	Timezone   int          `json:"timezone"` // offset from UTC in seconds
	Name       string       `json:"name"`
}

// Primary returns the first weather condition, or the zero value if the
// response carried none
func (c *CurrentWeather) Primary() Condition {
	if c == nil || len(c.Weather) == 0 {
		return Condition{}
	}
	return c.Weather[0]
}

// ForecastMain is the temperature block of a forecast entry
type ForecastMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
}

// Clouds is cloud cover in percent
type Clouds struct {
	All int `json:"all"`
}

// ForecastEntry is one 3-hour step of the 5-day forecast
type ForecastEntry struct {
	Dt      int64        `json:"dt"`
	Main    ForecastMain `json:"main"`
	Weather []Condition  `json:"weather"`
	Clouds  Clouds       `json:"clouds"`
	Wind    Wind         `json:"wind"`
	DtTxt   string       `json:"dt_txt"` // "2006-01-02 15:04:05" UTC
}

// Primary returns the first weather condition of the entry
func (e ForecastEntry) Primary() Condition {
	if len(e.Weather) == 0 {
		return Condition{}
	}
	return e.Weather[0]
}

// ForecastCity is the city block of a forecast response
type ForecastCity struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// Forecast is the /forecast response: 40 entries at 3-hour spacing
type Forecast struct {
	List []ForecastEntry `json:"list"`
	City ForecastCity    `json:"city"`
}

// AQI is the upstream air quality index, 1 (good) to 5 (very poor)
type AQI struct {
	AQI int `json:"aqi"`
}

// Pollutants are concentrations in μg/m³
type Pollutants struct {
	CO   float64 `json:"co"`
	NO2  float64 `json:"no2"`
	O3   float64 `json:"o3"`
	SO2  float64 `json:"so2"`
	PM25 float64 `json:"pm2_5"`
	PM10 float64 `json:"pm10"`
}

// PollutionReading is one air pollution sample
type PollutionReading struct {
	Dt         int64      `json:"dt"`
	Main       AQI        `json:"main"`
	Components Pollutants `json:"components"`
}

// AirPollution is the /air_pollution response
type AirPollution struct {
	List []PollutionReading `json:"list"`
}

// Latest returns the current reading, or nil when the list is empty
func (a *AirPollution) Latest() *PollutionReading {
	if a == nil || len(a.List) == 0 {
		return nil
	}
	return &a.List[0]
}

// UVIndex is the /uvi response
type UVIndex struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	DateISO string  `json:"date_iso,omitempty"`
	Date    int64   `json:"date"`
	Value   float64 `json:"value"`
}
