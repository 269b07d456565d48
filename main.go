package main

import (
	"context"
	"log"
	"net/http"

	"github.com/tayeblagha/library-managememnt-demo/internal/common"
	"github.com/tayeblagha/library-managememnt-demo/internal/config"
	"github.com/tayeblagha/library-managememnt-demo/internal/database"
	"github.com/tayeblagha/library-managememnt-demo/internal/library"
	"github.com/tayeblagha/library-managememnt-demo/internal/server"

	_ "github.com/lib/pq"
)

// @title Library Management API
// @version 1.0
// @description Catalog, lending and reservation arbitration for library books.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	db, err := common.SetupDB("./.env", "DB_URL")
	if err != nil {
		log.Fatal("Failed setup db ", err)
	}

	cfg := config.Load()
	coordinator := library.NewCoordinator(library.NewPGStore(db))

	ticker := library.NewTicker(cfg.Expiry.CheckPeriod)
	defer ticker.Stop()
	go coordinator.RunExpiryMonitor(context.Background(), cfg.Expiry.AutoRelease, ticker)

	sm := http.NewServeMux()
	apiCfg := server.ApiConfig{DB: database.New(db), Coordinator: coordinator}
	server.Handle(sm, &apiCfg)

	s := http.Server{
		Addr:    cfg.ServerAddress,
		Handler: common.CORSMiddleware(common.LoggingMiddleware(sm)),
	}
	serverErr := s.ListenAndServe()
	if serverErr != nil {
		log.Fatal("Failed starting server: ", serverErr)
	}
}
