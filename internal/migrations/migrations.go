package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the tables backing the dashboard collections. Ids are not
// unique: seq keeps insertion order and addresses rows.
func Run(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS inventory (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL,
            code TEXT NOT NULL,
            description TEXT NOT NULL,
            category TEXT NOT NULL,
            stock INTEGER NOT NULL,
            min_stock INTEGER NOT NULL,
            status TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS inventory_id_idx ON inventory(id);`,
		`CREATE TABLE IF NOT EXISTS shipments (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL,
            destination TEXT NOT NULL,
            status TEXT NOT NULL,
            date TEXT NOT NULL,
            notes TEXT NOT NULL DEFAULT ''
        );`,
		`CREATE TABLE IF NOT EXISTS production_orders (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL,
            product TEXT NOT NULL,
            line TEXT NOT NULL,
            progress INTEGER NOT NULL DEFAULT 0,
            efficiency REAL NOT NULL DEFAULT 0,
            quantity INTEGER NOT NULL DEFAULT 0,
            priority TEXT NOT NULL DEFAULT ''
        );`,
		`CREATE TABLE IF NOT EXISTS quality_inspections (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL,
            product TEXT NOT NULL,
            status TEXT NOT NULL,
            date TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS maintenance_tasks (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL,
            equipment TEXT NOT NULL,
            date TEXT NOT NULL,
            type TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
