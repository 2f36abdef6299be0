package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// cityItem wraps a City for use in a list
type cityItem struct {
	city    models.City
	current bool
}

// FilterValue implements list.Item
func (c cityItem) FilterValue() string {
	return c.city.Name
}

// Title implements list.DefaultItem
func (c cityItem) Title() string {
	if c.current {
		return c.city.Name + " ✓"
	}
	return c.city.Name
}

// Description implements list.DefaultItem
func (c cityItem) Description() string {
	desc := c.city.Country
	if !c.city.Builtin {
		if desc != "" {
			desc += " • "
		}
		desc += "added"
	}
	return desc
}

func cityItems(cities []models.City, current string) []list.Item {
	items := make([]list.Item, len(cities))
	for i, city := range cities {
		items[i] = cityItem{city: city, current: strings.EqualFold(city.Name, current)}
	}
	return items
}

// createCityList creates the filterable city modal list
func createCityList(cities []models.City, current string, width, height int) list.Model {
	l := list.New(cityItems(cities, current), list.NewDefaultDelegate(), width, height)
	l.Title = "Select City"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	return l
}
