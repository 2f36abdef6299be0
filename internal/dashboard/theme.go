package dashboard

// Category is the closed set of primary weather conditions the dashboard
// styles differently.
type Category int

const (
	Unknown Category = iota
	Clear
	Clouds
	Rain
	Snow
	Thunderstorm
	Drizzle
	Mist
)

var categoryNames = map[string]Category{
	"Clear":        Clear,
	"Clouds":       Clouds,
	"Rain":         Rain,
	"Snow":         Snow,
	"Thunderstorm": Thunderstorm,
	"Drizzle":      Drizzle,
	"Mist":         Mist,
}

// ParseCategory maps an upstream condition name to a Category. Matching is
// exact; anything else is Unknown.
func ParseCategory(main string) Category {
	if c, ok := categoryNames[main]; ok {
		return c
	}
	return Unknown
}

func (c Category) String() string {
	for name, cat := range categoryNames {
		if cat == c {
			return name
		}
	}
	return "Unknown"
}

// Theme is the icon and background gradient for a category
type Theme struct {
	Icon     string
	Glyph    string
	Gradient [2]string
}

var defaultTheme = Theme{Icon: "partly-sunny", Glyph: "⛅", Gradient: [2]string{"#FF7B54", "#FF7B54"}}

var themes = map[Category]Theme{
	Clear:        {Icon: "sunny", Glyph: "☀", Gradient: [2]string{"#FF7B54", "#FFA954"}},
	Clouds:       {Icon: "cloudy", Glyph: "☁", Gradient: [2]string{"#54A6FF", "#82C0FF"}},
	Rain:         {Icon: "rainy", Glyph: "☂", Gradient: [2]string{"#4B6CB7", "#182848"}},
	Snow:         {Icon: "snow", Glyph: "❄", Gradient: [2]string{"#E6DADA", "#274046"}},
	Thunderstorm: {Icon: "thunderstorm", Glyph: "⚡", Gradient: [2]string{"#283E51", "#4B79A1"}},
	Drizzle:      {Icon: "rainy", Glyph: "☂", Gradient: [2]string{"#89F7FE", "#66A6FF"}},
	Mist:         {Icon: "cloud", Glyph: "≋", Gradient: [2]string{"#757F9A", "#D7DDE8"}},
}

// ThemeFor always returns a theme; Unknown gets the default
func ThemeFor(c Category) Theme {
	if t, ok := themes[c]; ok {
		return t
	}
	return defaultTheme
}

// ThemeForCondition is ThemeFor(ParseCategory(main))
func ThemeForCondition(main string) Theme {
	return ThemeFor(ParseCategory(main))
}
