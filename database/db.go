package database

import (
	"context"
	"database/sql"
	_ "embed"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/MazaSebastian/crop-crm-sub000/config"
)

//go:embed migrations.sql
var migrations string

// DB is the global Postgres connection pool.
var DB *sql.DB

// InitDB initializes the Postgres connection and applies migrations.
func InitDB() {
	db, err := sql.Open("postgres", config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open Postgres connection: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping Postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, migrations); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	DB = db
	log.Println("Connected to Postgres successfully!")
}
