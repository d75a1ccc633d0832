package main

import (
	"log"

	"github.com/asfiqazi/expense-tracker/internal/config"
	"github.com/asfiqazi/expense-tracker/internal/storage"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	log.Println("Applying migrations...")
	if err := storage.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("error applying migrations: %v", err)
	}
	log.Println("Migrations applied successfully")
}
