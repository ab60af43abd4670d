package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	migrations := []struct {
		name  string
		query string
	}{
		{"users table", `
			CREATE TABLE IF NOT EXISTS users (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				username TEXT NOT NULL UNIQUE,
				password TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"students table", `
			CREATE TABLE IF NOT EXISTS students (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name TEXT NOT NULL,
				phone_number TEXT NOT NULL,
				email TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"archived_students table", `
			CREATE TABLE IF NOT EXISTS archived_students (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name TEXT NOT NULL,
				phone_number TEXT NOT NULL,
				email TEXT NOT NULL,
				archived_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
		{"sessions table", `
			CREATE TABLE IF NOT EXISTS sessions (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				expires_at TIMESTAMPTZ NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`},
	}

	for _, m := range migrations {
		if _, err := db.Exec(m.query); err != nil {
			log.Printf("Failed to run migration for %s: %v", m.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
