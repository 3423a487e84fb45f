//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"

	"smartexpire/internal/config"
	"smartexpire/internal/database"

	"github.com/jackc/pgx/v5"
)

// Applies the embedded migrations to the database described by the DB_*
// environment variables and reports the connected database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Database.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid database configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger := config.NewLogger(cfg.Logger)
	connString := cfg.Database.ConnectionString()

	if err := database.Migrate(ctx, connString, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	var dbName string
	var entries int
	err = conn.QueryRow(ctx, "SELECT current_database(), (SELECT count(*) FROM inventory_entries)").Scan(&dbName, &entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database %s is up to date (%d inventory entries)\n", dbName, entries)
}
