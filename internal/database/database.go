package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// BuiltinCity is a seeded entry of the city list
type BuiltinCity struct {
	Name    string
	Country string
}

// BuiltinCities are seeded in this order and listed first
var BuiltinCities = []BuiltinCity{
	{"Istanbul", "Turkey"},
	{"Ankara", "Turkey"},
	{"Izmir", "Turkey"},
	{"Bursa", "Turkey"},
	{"Antalya", "Turkey"},
	{"Adana", "Turkey"},
	{"Konya", "Turkey"},
	{"Gaziantep", "Turkey"},
	{"Eskisehir", "Turkey"},
	{"Mersin", "Turkey"},
}

// DBPath returns the default location of the database
func DBPath() string {
	return filepath.Join("data", "weather-terminal.db")
}

// Open opens the SQLite database at dbPath
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the cities table and seeds the built-in cities.
// Safe to call on every start.
func EnsureSchema(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS cities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL COLLATE NOCASE,
			country TEXT NOT NULL DEFAULT '',
			builtin INTEGER NOT NULL DEFAULT 0,
			position INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_cities_name ON cities(name);
	`)
	if err != nil {
		return fmt.Errorf("creating cities table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO cities (name, country, builtin, position)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(name) DO UPDATE SET builtin = 1, position = excluded.position
	`)
	if err != nil {
		return fmt.Errorf("preparing seed: %w", err)
	}
	defer stmt.Close()

	for i, c := range BuiltinCities {
		if _, err := stmt.Exec(c.Name, c.Country, i); err != nil {
			return fmt.Errorf("seeding %s: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
