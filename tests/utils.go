package tests

import (
	"database/sql"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tayeblagha/library-managememnt-demo/internal/common"
	"github.com/tayeblagha/library-managememnt-demo/internal/database"
	"github.com/tayeblagha/library-managememnt-demo/internal/library"
	"github.com/tayeblagha/library-managememnt-demo/internal/server"

	_ "github.com/lib/pq"
)

const (
	deleteReadingActivities = "DELETE FROM reading_activities"
	deleteBooks             = "DELETE FROM books"
	deleteMembers           = "DELETE FROM members"
)

func setupDB(t *testing.T) *sql.DB {
	db, err := common.SetupDB("../.env", "TEST_DB_URL")
	if err != nil {
		t.Skip("Skipping, test db is not configured: ", err)
	}
	if pingErr := db.Ping(); pingErr != nil {
		t.Skip("Skipping, test db is unreachable: ", pingErr)
	}
	return db
}

func cleanupDB(db *sql.DB) {
	_, err := db.Query(deleteReadingActivities)
	if err != nil {
		log.Print("Failed to cleanup reading activities: ", err)
	}
	_, err = db.Query(deleteBooks)
	if err != nil {
		log.Print("Failed to cleanup books: ", err)
	}
	_, err = db.Query(deleteMembers)
	if err != nil {
		log.Print("Failed to cleanup members: ", err)
	}
}

func setupTestServer(db *sql.DB) *httptest.Server {
	sm := http.NewServeMux()
	apiCfg := server.ApiConfig{
		DB:          database.New(db),
		Coordinator: library.NewCoordinator(library.NewPGStore(db)),
	}
	server.Handle(sm, &apiCfg)
	return httptest.NewServer(sm)
}
