package main

import (
	"log"

	"tarot-scores/internal/config"
	"tarot-scores/internal/db"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("%v", err)
	}
	log.Println("database migrations applied")
}
