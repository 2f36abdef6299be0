package cities

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

var (
	ErrBuiltin  = errors.New("built-in cities cannot be removed")
	ErrNotFound = errors.New("city not in list")
	ErrEmpty    = errors.New("city name cannot be empty")
)

// Repository persists the selectable city list
type Repository struct {
	dbPath string
}

// NewRepository returns a repository backed by the database at dbPath.
// The schema is created on first use.
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

func (r *Repository) open() (*sql.DB, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}
	return database.Open(r.dbPath)
}

// List returns built-in cities in seed order, then added cities by name
func (r *Repository) List() ([]models.City, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, name, country, builtin, created_at
		FROM cities
		ORDER BY builtin DESC, position, name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer rows.Close()

	var list []models.City
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cities: %w", err)
	}
	return list, nil
}

// Add inserts a city, or updates the country of an existing one with the
// same name (case-insensitive). Built-in status is never changed.
func (r *Repository) Add(name, country string) (models.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.City{}, ErrEmpty
	}

	db, err := r.open()
	if err != nil {
		return models.City{}, err
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO cities (name, country) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET country = excluded.country
	`, name, strings.TrimSpace(country))
	if err != nil {
		return models.City{}, fmt.Errorf("saving city: %w", err)
	}

	row := db.QueryRow(`SELECT id, name, country, builtin, created_at FROM cities WHERE name = ?`, name)
	return scanCity(row)
}

// Delete removes an added city by name
func (r *Repository) Delete(name string) error {
	db, err := r.open()
	if err != nil {
		return err
	}
	defer db.Close()

	var builtin bool
	err = db.QueryRow(`SELECT builtin FROM cities WHERE name = ?`, strings.TrimSpace(name)).Scan(&builtin)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("looking up city: %w", err)
	}
	if builtin {
		return fmt.Errorf("%s: %w", name, ErrBuiltin)
	}

	if _, err := db.Exec(`DELETE FROM cities WHERE name = ? AND builtin = 0`, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("deleting city: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCity(s scanner) (models.City, error) {
	var c models.City
	var createdAt sql.NullTime
	if err := s.Scan(&c.ID, &c.Name, &c.Country, &c.Builtin, &createdAt); err != nil {
		return models.City{}, fmt.Errorf("scanning city: %w", err)
	}
	c.CreatedAt = createdAt.Time
	return c, nil
}
