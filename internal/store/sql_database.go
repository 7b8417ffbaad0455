package store

import (
	"database/sql"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/migrations"
)

// DB wraps the raw database handle together with the driver-specific error
// classifier and a logger. All repositories share one *DB.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Classify reports whether err is worth retrying on this backend.
// With no classifier configured every error is NonRetryable.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
