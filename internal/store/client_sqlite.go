package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/stefpopov/go-wine-cellar/internal/config"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/migrations"
)

// ClientDB wraps the client SQLite connection together with the process-wide
// store mutex. A single global lock keeps upsert/status/delete sequences from
// the sync engine and the push client mutually exclusive; per-identifier
// locking would be an optimization, not a requirement.
type ClientDB struct {
	*sql.DB

	mu     sync.Mutex
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if necessary) the client database file,
// verifies the connection, and applies pending schema migrations.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientDB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DBPath); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.SQLite(conn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("migration failed")
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local database successfully")

	return &ClientDB{DB: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
