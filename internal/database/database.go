package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations
var migrations embed.FS

// goose keeps its dialect and filesystem in package state.
var gooseMu sync.Mutex

// InitDB opens a local SQLite file, or the Turso database at primaryURL when
// one is given, and runs the migrations. The returned teardown closes the
// connection.
func InitDB(dbPath string, primaryURL string, authToken string) (*sqlx.DB, func(), error) {
	var (
		db  *sqlx.DB
		err error
	)
	if primaryURL == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		db, err = sqlx.Open("sqlite3", dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local database: %w", err)
		}
		if dbPath == ":memory:" {
			// Every new connection would see its own empty in-memory database.
			db.SetMaxOpenConns(1)
		}
	} else {
		log.Info("Initializing Turso database", "url", primaryURL)
		db, err = sqlx.Open("libsql", primaryURL+"?authToken="+authToken)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open db %s: %w", primaryURL, err)
		}
	}

	if err := migrate(db.DB, "sqlite3", "migrations/sqlite"); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, teardown(db), nil
}

// InitPostgres opens the Postgres database at dsn and runs the migrations.
func InitPostgres(dsn string) (*sqlx.DB, func(), error) {
	log.Info("Initializing Postgres database")
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	if err := migrate(db.DB, "postgres", "migrations/postgres"); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, teardown(db), nil
}

func migrate(db *sql.DB, dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database initialized successfully", "dialect", dialect)
	return nil
}

func teardown(db *sqlx.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
}
