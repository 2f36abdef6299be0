package models

import "time"

// City is an entry of the selectable city list.
// Built-in cities are seeded on first run and cannot be removed.
type City struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`    // Query value sent to the API (e.g. "Istanbul")
	Country   string    `json:"country"` // Display only (e.g. "Turkey")
	Builtin   bool      `json:"builtin"`
	CreatedAt time.Time `json:"created_at"`
}
