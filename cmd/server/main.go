package main

import (
	"log"
	"net/http"
	"os"

	"tarot-scores/internal/config"
	"tarot-scores/internal/db"
	"tarot-scores/internal/server"
	"tarot-scores/internal/store"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	// Nothing works without durable storage, so any failure here is fatal.
	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("storage unavailable: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("storage unavailable: %v", err)
	}
	if cfg.SeedFixtures {
		if err := db.Seed(conn); err != nil {
			log.Fatalf("seed fixtures: %v", err)
		}
	}

	srv := server.New(store.New(conn), cfg)
	log.Printf("tarot-scores server listening on %s db=%s", addr, cfg.DBPath)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
