package common

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// SetupDB loads the env file and opens the Postgres connection named by dbEnv.
func SetupDB(envPath string, dbEnv string) (*sql.DB, error) {
	err := godotenv.Load(envPath)
	if err != nil {
		return nil, err
	}
	dbURL := os.Getenv(dbEnv)
	return sql.Open("postgres", dbURL)
}

func CloseDB(db *sql.DB) {
	err := db.Close()
	if err != nil {
		log.Print("Failed to close db: ", err)
	}
}

func CloseRows(rows *sql.Rows) {
	err := rows.Close()
	if err != nil {
		log.Print("Failed to close rows: ", err)
	}
}
