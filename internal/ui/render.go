package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

const uvMeterCells = 20

// viewSplash renders the first load, before any data exists
func (m Model) viewSplash() string {
	title := splashTitleStyle.Render("⛅  Weather Terminal")
	status := fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("Loading weather..."))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, title, "", status))
}

// viewError renders the single failure line in place of the dashboard
func (m Model) viewError(err error) string {
	message := "Weather data unavailable"
	var dErr *dashboard.Error
	if errors.As(err, &dErr) {
		message = dErr.Message()
	} else if err != nil {
		message = err.Error()
	}

	help := helpStyle.Render("R: Retry current location • C: Choose a city • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render("✗ "+message),
		help,
	)
}

// viewCityModal renders the city list over an empty screen
func (m Model) viewCityModal() string {
	help := mutedStyle.Render("Enter: Select • /: Search • X: Remove added city • Esc: Close")

	var sections []string
	sections = append(sections, m.cityList.View())
	if m.status != "" {
		sections = append(sections, m.renderStatus())
	}
	sections = append(sections, help)

	modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// viewDashboard renders header, location line, scrolling content and help
func (m Model) viewDashboard(snap dashboard.Snapshot, loading bool) string {
	theme := dashboard.ThemeForCondition(snap.Current.Primary().Main)

	header := headerStyle(theme).
		Width(m.width).
		Render(fmt.Sprintf("Weather Forecast, %s", m.opts.Now().Format("Mon, 1/2/2006")))

	location := titleStyle.Render(fmt.Sprintf("⌖ %s ▾", locationLabel(snap)))
	if loading {
		location = lipgloss.JoinHorizontal(lipgloss.Center, location, "  ",
			loaderStyle.Render(m.spinner.View()+" Loading weather..."))
	}

	footer := helpStyle.Render("C: Cities • R: My location • A: Save city • ↑/↓: Scroll • Q: Quit")
	if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.renderStatus(), footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		location,
		m.viewport.View(),
		footer,
	)
}

func (m Model) renderStatus() string {
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return successStyle.Render(m.status)
}

func locationLabel(snap dashboard.Snapshot) string {
	if snap.Current == nil || snap.Current.Name == "" {
		return "Select Location"
	}
	return snap.Current.Name
}

// renderDashboard renders the scrollable body for one snapshot
func (m Model) renderDashboard(snap dashboard.Snapshot, width int) string {
	boxWidth := max(width-2, 30)

	sections := []string{
		m.renderCurrent(snap.Current),
		sectionBoxStyle.Width(boxWidth).Render(m.renderForecast(snap.Forecast)),
		sectionBoxStyle.Width(boxWidth).Render(m.renderDetails(snap)),
		sectionBoxStyle.Width(boxWidth).Render(renderAirQuality(snap.AirPollution)),
		sectionBoxStyle.Width(boxWidth).Render(renderUV(snap.UV)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderCurrent(cw *models.CurrentWeather) string {
	if cw == nil {
		return mutedStyle.Render("No weather data available")
	}
	theme := dashboard.ThemeForCondition(cw.Primary().Main)

	temp := bigValueStyle.Render(fmt.Sprintf("%s  %s", theme.Glyph, m.temperature(cw.Main.Temp)))
	place := valueStyle.Render(fmt.Sprintf("%s, %s", cw.Name, cw.Primary().Description))
	sun := mutedStyle.Render(fmt.Sprintf("↑ %s  ↓ %s",
		dashboard.SunTime(cw.Sys.Sunrise, cw.Timezone),
		dashboard.SunTime(cw.Sys.Sunset, cw.Timezone)))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, temp, place, sun))
}

func (m Model) renderForecast(fc *models.Forecast) string {
	var b strings.Builder
	b.WriteString(boxHeaderStyle.Render("5-Day Forecast"))
	b.WriteString("\n")

	days := dashboard.DailySummaries(fc)
	if len(days) == 0 {
		b.WriteString(mutedStyle.Render("No forecast available"))
		return b.String()
	}

	for _, d := range days {
		theme := dashboard.ThemeFor(d.Category)
		fmt.Fprintf(&b, "%-6s %s  %3d%%   %s %s\n",
			d.Label,
			theme.Glyph,
			d.Humidity,
			valueStyle.Render(fmt.Sprintf("↑ %d°", d.High)),
			mutedStyle.Render(fmt.Sprintf("↓ %d°", d.Low)),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderDetails(snap dashboard.Snapshot) string {
	cw := snap.Current
	if cw == nil {
		return mutedStyle.Render("No details available")
	}

	var lines []string
	lines = append(lines, boxHeaderStyle.Render("Details"))
	lines = append(lines, detail("Average", m.temperature(cw.Main.Temp), "Current temperature"))
	lines = append(lines, detail("Feels Like", m.temperature(cw.Main.FeelsLike),
		fmt.Sprintf("Feels %s than the actual temperature", dashboard.FeelsComparison(cw.Main.Temp, cw.Main.FeelsLike))))
	lines = append(lines, detail("Humidity", fmt.Sprintf("%d%%", cw.Main.Humidity), "Current humidity level"))

	// Wind shows the nearest forecast slot when there is one
	wind := cw.Wind.Speed
	if snap.Forecast != nil && len(snap.Forecast.List) > 0 {
		wind = snap.Forecast.List[0].Wind.Speed
	}
	windNote := "Current wind conditions"
	if cw.Wind.Gust != nil {
		windNote = fmt.Sprintf("Gusts %.0f %s", *cw.Wind.Gust, m.speedUnit())
	}
	lines = append(lines, detail("Wind Speed", fmt.Sprintf("%.0f %s", wind, m.speedUnit()), windNote))
	lines = append(lines, detail("Pressure", fmt.Sprintf("%d hPa", cw.Main.Pressure), ""))
	lines = append(lines, detail("Visibility", fmt.Sprintf("%.1f km", float64(cw.Visibility)/1000), ""))

	return strings.Join(lines, "\n")
}

func detail(label, value, note string) string {
	line := fmt.Sprintf("%s %s", labelStyle.Width(12).Render(label), valueStyle.Render(value))
	if note != "" {
		line += "  " + mutedStyle.Render(note)
	}
	return line
}

func renderAirQuality(ap *models.AirPollution) string {
	var lines []string
	lines = append(lines, boxHeaderStyle.Render("Air Quality"))

	reading := ap.Latest()
	if reading == nil {
		lines = append(lines, mutedStyle.Render("No air quality data available"))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, fmt.Sprintf("AQI %s  %s",
		bigValueStyle.Render(fmt.Sprintf("%d", reading.Main.AQI)),
		valueStyle.Render(dashboard.AQIDescription(reading.Main.AQI))))

	c := reading.Components
	for _, p := range []struct {
		label string
		value float64
	}{
		{"PM2.5", c.PM25},
		{"O₃", c.O3},
		{"NO₂", c.NO2},
		{"SO₂", c.SO2},
	} {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Width(6).Render(p.label),
			valueStyle.Render(fmt.Sprintf("%6.1f", p.value)),
			mutedStyle.Render("μg/m³")))
	}
	return strings.Join(lines, "\n")
}

func renderUV(uv *models.UVIndex) string {
	var lines []string
	lines = append(lines, boxHeaderStyle.Render("UV Index"))

	var value float64
	if uv != nil {
		value = uv.Value
	}
	band := dashboard.UVBandFor(value)

	lines = append(lines, fmt.Sprintf("%s %s  %s",
		uvMeter(value, band.Color),
		bigValueStyle.Render(fmt.Sprintf("%.1f", value)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(band.Color)).Bold(true).Render(band.Level)))
	lines = append(lines, valueStyle.Render(band.Description))
	lines = append(lines, mutedStyle.Render(band.Advice))
	return strings.Join(lines, "\n")
}

func uvMeter(value float64, color string) string {
	filled := int(dashboard.MeterPercent(value)/100*uvMeterCells + 0.5)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", filled))
	return "[" + bar + mutedStyle.Render(strings.Repeat("░", uvMeterCells-filled)) + "]"
}

func (m Model) temperature(v float64) string {
	suffix := "°C"
	switch m.opts.Units {
	case "imperial":
		suffix = "°F"
	case "standard":
		suffix = " K"
	}
	return fmt.Sprintf("%.0f%s", v, suffix)
}

func (m Model) speedUnit() string {
	if m.opts.Units == "imperial" {
		return "mph"
	}
	return "m/s"
}
