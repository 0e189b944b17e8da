// Package migrations embeds the goose schema migrations for both sides of
// the system: the client's SQLite database and the server's PostgreSQL one.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// SQLite applies the client schema migrations.
func SQLite(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting sqlite dialect: %w", err)
	}

	if err := goose.Up(db, "client"); err != nil {
		return fmt.Errorf("client migration error: %w", err)
	}

	return nil
}

// Postgres applies the server schema migrations.
func Postgres(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting pgx dialect: %w", err)
	}

	if err := goose.Up(db, "server"); err != nil {
		return fmt.Errorf("server migration error: %w", err)
	}

	return nil
}
