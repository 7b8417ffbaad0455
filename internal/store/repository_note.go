package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It reads and writes the "secure_notes" table; the content_encrypted
// column carries opaque ciphertext tokens produced by the service layer.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating secure note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// scanNote reads one row of [noteColumns] into a [models.SecureNote].
func scanNote(row rowScanner) (models.SecureNote, error) {
	var note models.SecureNote
	var lastAccessed sql.NullTime

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Type,
		&note.ContentEncrypted,
		&note.IsFavorite,
		&note.Tags,
		&note.CreatedAt,
		&note.UpdatedAt,
		&lastAccessed,
	)
	if err != nil {
		return models.SecureNote{}, err
	}

	if lastAccessed.Valid {
		note.LastAccessed = &lastAccessed.Time
	}

	return note, nil
}

// Create persists a new secure note and returns it with server-assigned
// fields populated via the RETURNING clause.
func (r *noteRepository) Create(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote,
		note.UserID,
		note.Title,
		note.Type,
		note.ContentEncrypted,
		note.IsFavorite,
		note.Tags,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.Create").Msg("error inserting note")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	saved, err := scanNote(row)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Create").Msg("error: scanning error")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetByID returns the note with the given id owned by userID, or
// [ErrNoteNotFound].
func (r *noteRepository) GetByID(ctx context.Context, userID, id int64) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getNoteByID, userID, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("error querying note")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SecureNote{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetByID").Msg("error: scanning error")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// List returns one page of the user's notes matching the filter, most
// recently updated first.
func (r *noteRepository) List(ctx context.Context, userID int64, filter models.ListFilter) ([]models.SecureNote, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	query, args, err := buildNoteListQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.SecureNote, 0, filter.PerPage)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// Count returns the number of the user's notes matching the filter across
// all pages.
func (r *noteRepository) Count(ctx context.Context, userID int64, filter models.ListFilter) (int64, error) {
	log := logger.FromContext(ctx)
	filter = filter.Normalize()

	query, args, err := buildNoteCountQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Count").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*noteRepository.Count").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Update overwrites the editable columns of an existing note and returns
// the stored row. Returns [ErrNoteNotFound] when no row with the given id
// belongs to the user.
func (r *noteRepository) Update(ctx context.Context, note models.SecureNote) (models.SecureNote, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateNote,
		note.Title,
		note.Type,
		note.ContentEncrypted,
		note.Tags,
		note.UserID,
		note.ID,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.Update").Msg("error updating note")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	updated, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SecureNote{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.Update").Msg("error: scanning error")
		return models.SecureNote{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// Delete removes the user's note with the given id. Returns
// [ErrNoteNotFound] when nothing was deleted.
func (r *noteRepository) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, userID, id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.Delete").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ToggleFavorite flips the note's favorite flag and returns the new value.
// Returns [ErrNoteNotFound] when no row matched.
func (r *noteRepository) ToggleFavorite(ctx context.Context, userID, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var isFavorite bool
	err := r.db.QueryRowContext(ctx, toggleNoteFavorite, userID, id).Scan(&isFavorite)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.ToggleFavorite").Msg("error toggling favorite")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return isFavorite, nil
}

// TouchAccess stamps last_accessed with the current time.
func (r *noteRepository) TouchAccess(ctx context.Context, userID, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchNoteAccess, userID, id); err != nil {
		log.Err(err).Str("func", "*noteRepository.TouchAccess").Msg("error touching last_accessed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// CountByUser returns the user's total note count, or the favorite count
// when favoritesOnly is set.
func (r *noteRepository) CountByUser(ctx context.Context, userID int64, favoritesOnly bool) (int64, error) {
	log := logger.FromContext(ctx)

	query := countNotesByUser
	if favoritesOnly {
		query = countFavoriteNotesByUser
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Err(err).Str("func", "*noteRepository.CountByUser").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
