package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // Driver postgres
)

// ConnectDB opens the reservation database and verifies the connection
// before handing it to the repositories.
func ConnectDB(username, password, dbname, host string, port int) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, username, password, dbname)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open reservation database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping reservation database: %w", err)
	}
	log.Printf("connected to %s on %s:%d", dbname, host, port)
	return db, nil
}
