package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/chicodelphi/nutricaoBRL/storage"
)

var Store storage.Store

// LoadEnv reads .env if present. Missing file is fine in containers where
// everything comes from real environment variables.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
}

// InitStore opens the persistence backend selected by STORAGE_DRIVER
// (badger by default, postgres when a database is available).
func InitStore() {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "badger"
	}

	var err error
	switch driver {
	case "badger":
		path := os.Getenv("BADGER_PATH")
		if path == "" {
			path = "./data"
		}
		Store, err = storage.OpenBadger(path, false)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		Store, err = storage.OpenPostgres(dsn)
	case "memory":
		Store = storage.NewMemoryStore()
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", driver)
	}
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", driver, err)
	}
}
