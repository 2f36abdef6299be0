package database

import (
	"path/filepath"
	"testing"
)

func TestDBPath(t *testing.T) {
	expected := filepath.Join("data", "weather-terminal.db")
	if got := DBPath(); got != expected {
		t.Errorf("DBPath() = %v, want %v", got, expected)
	}
}

func TestBuiltinCities(t *testing.T) {
	if len(BuiltinCities) != 10 {
		t.Fatalf("len(BuiltinCities) = %d, want 10", len(BuiltinCities))
	}
	if BuiltinCities[0].Name != "Istanbul" {
		t.Errorf("first city = %s, want Istanbul", BuiltinCities[0].Name)
	}

	seen := make(map[string]bool)
	for _, c := range BuiltinCities {
		if seen[c.Name] {
			t.Errorf("duplicate city %s", c.Name)
		}
		seen[c.Name] = true
		if c.Country != "Turkey" {
			t.Errorf("%s country = %s, want Turkey", c.Name, c.Country)
		}
	}
}
