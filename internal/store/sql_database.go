package store

import (
	"database/sql"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// DB is a database handle that knows which migration set belongs to it.
type DB struct {
	*sql.DB
	migrations migrations.Set
	logger     *logger.Logger
}

// Migrate applies the pending migrations of the database's set.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.migrations)
}
