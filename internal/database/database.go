package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Open opens a SQLite database using the provided DSN. A single connection
// is kept open, which also keeps an in-memory database alive for the life
// of the process.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// Connect is Open for process startup: it exits on failure.
func Connect(dsn string) *sqlx.DB {
	db, err := Open(dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}
