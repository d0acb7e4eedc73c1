package main

import (
	"database/sql"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/valyala/fasthttp"

	"compass-engine/internal/careers"
	"compass-engine/internal/catalog"
	"compass-engine/internal/handler"
	"compass-engine/internal/scenario"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg := loadConfig()

	careers.Configure(cfg.CareerAPIURL)

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Fatalf("Open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	cat, err := catalog.New(db)
	if err != nil {
		log.Fatalf("Init school catalog: %v", err)
	}
	store, err := scenario.New(db)
	if err != nil {
		log.Fatalf("Init scenario store: %v", err)
	}

	h := handler.New(cat, store)

	log.Printf("Compass engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
