package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/logger"
)

// Repositories bundles every repository the service layer needs, all backed
// by one shared [*DB] connection.
type Repositories struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository
	NoteRepository       NoteRepository
	ActivityRepository   ActivityRepository

	db *DB
}

// NewRepositories opens the database selected by cfg.DB.Driver, applies all
// pending migrations and constructs the repository set.
//
// Supported drivers are "pgx" and "sqlite3"; any other value is rejected by
// config validation before this point, but is reported here too.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
		NoteRepository:       NewNoteRepository(db, log),
		ActivityRepository:   NewActivityRepository(db, log),
		db:                   db,
	}, nil
}

// Classify exposes the backend's retryability classification for a failed
// operation. Used by background writers to decide whether to retry.
func (r *Repositories) Classify(err error) ErrorClassification {
	return r.db.Classify(err)
}

// Close closes the underlying database connection.
func (r *Repositories) Close() error {
	return r.db.Close()
}
