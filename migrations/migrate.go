package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed notes/*.sql session/*.sql
var embedMigrations embed.FS

// Set names one migration directory and the goose dialect it is written for.
type Set struct {
	Dialect string
	Dir     string
}

var (
	// NotesSet creates the notes table on Postgres.
	NotesSet = Set{Dialect: "pgx", Dir: "notes"}
	// SessionSet creates the local sqlite session table.
	SessionSet = Set{Dialect: "sqlite3", Dir: "session"}
)

func Migrate(db *sql.DB, set Set) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(set.Dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, set.Dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
