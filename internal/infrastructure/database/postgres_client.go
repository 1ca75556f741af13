package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const maxPoolConns = 5

// ConnectPostgres opens the shared connection pool from environment variables.
//
// Supported env vars:
//   - DATABASE_URL (takes precedence)
//   - DB_HOST, DB_PORT (default 5432), DB_USER, DB_PASSWORD, DB_NAME,
//     DB_SSLMODE (default disable)
//
// An unreachable database is not fatal: auth falls back to the fixed operator
// and the completion ledger degrades, so the process must boot anyway.
func ConnectPostgres() *sql.DB {
	db, err := sql.Open("pgx", dsnFromEnv())
	if err != nil {
		log.Fatalf("[database][postgres] failed opening pool: %v", err)
	}

	db.SetMaxOpenConns(maxPoolConns)
	db.SetMaxIdleConns(maxPoolConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Printf("[database][postgres] ping failed, serving degraded: %v", err)
	} else {
		log.Printf("[database][postgres] connection pool ready (max=%d)", maxPoolConns)
	}
	return db
}

func dsnFromEnv() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenvDefault("DB_HOST", "localhost"),
		getenvDefault("DB_PORT", "5432"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getenvDefault("DB_SSLMODE", "disable"),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
