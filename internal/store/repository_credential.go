// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository]. It reads and writes the "credentials" table and
// never touches plaintext secrets: the *_encrypted columns carry opaque
// ciphertext tokens produced by the service layer.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared column scans.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCredential reads one row of [credentialColumns] into a
// [models.Credential].
func scanCredential(row rowScanner) (models.Credential, error) {
	var credential models.Credential
	var lastAccessed sql.NullTime

	err := row.Scan(
		&credential.ID,
		&credential.UserID,
		&credential.Label,
		&credential.Type,
		&credential.WebsiteURL,
		&credential.Username,
		&credential.Email,
		&credential.PasswordEncrypted,
		&credential.SecretKeyEncrypted,
		&credential.Note,
		&credential.IsFavorite,
		&credential.Tags,
		&credential.CreatedAt,
		&credential.UpdatedAt,
		&lastAccessed,
	)
	if err != nil {
		return models.Credential{}, err
	}

	if lastAccessed.Valid {
		credential.LastAccessed = &lastAccessed.Time
	}

	return credential, nil
}

// Create persists a new credential and returns it with server-assigned
// fields (ID, CreatedAt, UpdatedAt) populated via the RETURNING clause.
func (r *credentialRepository) Create(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCredential,
		credential.UserID,
		credential.Label,
		credential.Type,
		credential.WebsiteURL,
		credential.Username,
		credential.Email,
		credential.PasswordEncrypted,
		credential.SecretKeyEncrypted,
		credential.Note,
		credential.IsFavorite,
		credential.Tags,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Create").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := scanCredential(row)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Create").Msg("error: scanning error")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetByID returns the credential with the given id owned by userID, or
// [ErrCredentialNotFound].
func (r *credentialRepository) GetByID(ctx context.Context, userID, id int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getCredentialByID, userID, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.GetByID").Msg("error querying credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	credential, err := scanCredential(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.GetByID").Msg("error: scanning error")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credential, nil
}

// List returns one page of the user's credentials matching the filter,
// most recently updated first.
func (r *credentialRepository) List(ctx context.Context, userID int64, filter models.ListFilter) ([]models.Credential, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	query, args, err := buildCredentialListQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0, filter.PerPage)
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			log.Err(err).Str("func", "*credentialRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials = append(credentials, credential)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// Count returns the number of the user's credentials matching the filter
// across all pages.
func (r *credentialRepository) Count(ctx context.Context, userID int64, filter models.ListFilter) (int64, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	query, args, err := buildCredentialCountQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Count").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Count").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// AllByUser returns every credential of the user ordered by label. Used by
// the CSV export, which is not paginated.
func (r *credentialRepository) AllByUser(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCredentialsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.AllByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var credentials []models.Credential
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			log.Err(err).Str("func", "*credentialRepository.AllByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials = append(credentials, credential)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.AllByUser").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// Update overwrites the editable columns of an existing credential and
// returns the stored row. Returns [ErrCredentialNotFound] when no row with
// the given id belongs to the user.
func (r *credentialRepository) Update(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCredential,
		credential.Label,
		credential.Type,
		credential.WebsiteURL,
		credential.Username,
		credential.Email,
		credential.PasswordEncrypted,
		credential.SecretKeyEncrypted,
		credential.Note,
		credential.Tags,
		credential.UserID,
		credential.ID,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Update").Msg("error updating credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanCredential(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.Update").Msg("error: scanning error")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// Delete removes the user's credential with the given id. Returns
// [ErrCredentialNotFound] when nothing was deleted.
func (r *credentialRepository) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCredential, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Delete").Msg("error deleting credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Delete").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// ToggleFavorite flips the credential's favorite flag and returns the new
// value. Returns [ErrCredentialNotFound] when no row matched.
func (r *credentialRepository) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var isFavorite bool
	err := r.db.QueryRowContext(ctx, toggleCredentialFavorite, userID, id).Scan(&isFavorite)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.ToggleFavorite").Msg("error toggling favorite")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return isFavorite, nil
}

// TouchAccess stamps last_accessed with the current time. A missing row is
// not an error: the caller has already fetched the record.
func (r *credentialRepository) TouchAccess(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchCredentialAccess, userID, id); err != nil {
		log.Err(err).Str("func", "*credentialRepository.TouchAccess").Msg("error touching last_accessed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CountByUser returns the user's total credential count, or the favorite
// count when favoritesOnly is set.
func (r *credentialRepository) CountByUser(ctx context.Context, userID int64, favoritesOnly bool) (int64, error) {
	log := logger.FromContext(ctx)

	query := countCredentialsByUser
	if favoritesOnly {
		query = countFavoriteCredentialsByUser
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CountByUser").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// TypeCounts returns the user's credential types ordered by descending
// count, at most limit entries.
func (r *credentialRepository) TypeCounts(ctx context.Context, userID int64, limit int) ([]models.TypeCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, credentialTypeCounts, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.TypeCounts").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var counts []models.TypeCount
	for rows.Next() {
		var tc models.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			log.Err(err).Str("func", "*credentialRepository.TypeCounts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.TypeCounts").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}
