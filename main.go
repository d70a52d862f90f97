package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/23F3001886/CleanEarth/internal/config"
	"github.com/23F3001886/CleanEarth/internal/database"
	"github.com/23F3001886/CleanEarth/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := http.ListenAndServe(addr, router.WithCORS(cfg, r)); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
