package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it is not there yet. Foreign keys are
// real: deleting a room takes its schedules and reservations with it, and
// renaming a room follows through to both tables.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			nickname TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL CHECK (role IN ('Student', 'Instructor', 'Admin')),
			student_num TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			avatar_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS instructors (
			user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			instructor_id TEXT NOT NULL DEFAULT '',
			office TEXT NOT NULL DEFAULT '',
			faculty_rank TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			room_number TEXT PRIMARY KEY,
			capacity INTEGER NOT NULL CHECK (capacity > 0),
			room_type TEXT NOT NULL CHECK (room_type IN ('classroom', 'laboratory', 'conference-room')),
			status TEXT NOT NULL DEFAULT 'Available',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS schedules (
			timeslot_id UUID PRIMARY KEY,
			room_num TEXT NOT NULL REFERENCES rooms(room_number) ON DELETE CASCADE ON UPDATE CASCADE,
			regular BOOLEAN NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			days TEXT[] NOT NULL DEFAULT '{}',
			date DATE
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			reservation_id UUID PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			room_num TEXT NOT NULL REFERENCES rooms(room_number) ON DELETE CASCADE ON UPDATE CASCADE,
			date DATE NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			reason TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			admin_notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL CHECK (status IN ('Pending', 'Confirmed', 'Rejected')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_schedules_room ON schedules(room_num)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_room_date ON reservations(room_num, date)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_user ON reservations(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
