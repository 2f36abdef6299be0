package database

import (
	"path/filepath"
	"testing"
)

func TestEnsureSchema_Seeds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM cities WHERE builtin = 1").Scan(&count); err != nil {
		t.Fatalf("Failed to count cities: %v", err)
	}
	if count != len(BuiltinCities) {
		t.Errorf("Expected %d built-in cities, got %d", len(BuiltinCities), count)
	}
}

func TestEnsureSchema_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// 1. Initialize schema
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("First EnsureSchema failed: %v", err)
	}

	// 2. Insert a user city
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	_, err = db.Exec(`INSERT INTO cities (name, country) VALUES ('Trabzon', 'Turkey')`)
	db.Close()
	if err != nil {
		t.Fatalf("Failed to insert record: %v", err)
	}

	// 3. Initialize schema again (must not drop or duplicate)
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("Second EnsureSchema failed: %v", err)
	}

	// 4. Verify rows
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	var total, user int
	if err := db.QueryRow("SELECT COUNT(*) FROM cities").Scan(&total); err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cities WHERE name = 'trabzon' AND builtin = 0").Scan(&user); err != nil {
		t.Fatalf("Failed to query record: %v", err)
	}

	if total != len(BuiltinCities)+1 {
		t.Errorf("Expected %d rows, got %d. Seeding is not idempotent.", len(BuiltinCities)+1, total)
	}
	if user != 1 {
		t.Errorf("Expected user city to survive, got %d", user)
	}
}
