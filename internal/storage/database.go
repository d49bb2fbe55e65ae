package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is the sqlite-backed persistence mirror. Sessions and profiles are
// whole-record JSON upserts; there are no partial-field updates.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to connect to database: %w", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" TEXT PRIMARY KEY,
			"username" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL
	);`
	createProfilesTable := `
	CREATE TABLE IF NOT EXISTS profiles (
			"user_id" TEXT PRIMARY KEY,
			"data" TEXT NOT NULL
	);`
	createSessionsTable := `
	CREATE TABLE IF NOT EXISTS sessions (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"data" TEXT NOT NULL,
			"last_updated" INTEGER NOT NULL
	);`

	if _, err := db.Exec(createUsersTable); err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to create users table: %w", err)
	}
	if _, err := db.Exec(createProfilesTable); err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to create profiles table: %w", err)
	}
	if _, err := db.Exec(createSessionsTable); err != nil {
		return nil, fmt.Errorf("storage.Open(): failed to create sessions table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
