package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/models"
)

// activityRepository is the SQL-backed implementation of
// [ActivityRepository] over the append-only "activity_log" table.
type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewActivityRepository constructs an [ActivityRepository] backed by the
// provided database connection and logger.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity log repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// Save appends one activity log entry. Entries are never updated or
// deleted afterwards.
func (r *activityRepository) Save(ctx context.Context, entry models.ActivityLog) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveActivity,
		entry.UserID,
		entry.Action,
		entry.Description,
		entry.IPAddress,
		entry.UserAgent,
	)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.Save").Msg("error inserting activity entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Recent returns the user's newest activity entries, at most limit of them.
func (r *activityRepository) Recent(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, recentActivity, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.Recent").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.ActivityLog
	for rows.Next() {
		var entry models.ActivityLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Description,
			&entry.IPAddress,
			&entry.UserAgent,
			&entry.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*activityRepository.Recent").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*activityRepository.Recent").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
