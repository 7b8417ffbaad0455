package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/models"
)

// activityService is the concrete implementation of ActivityService.
// Writes go through the background recorder queue so request latency never
// depends on the activity log; reads go straight to the repository.
type activityService struct {
	activityRepository store.ActivityRepository
	recorder           ActivityRecorder
	logger             *logger.Logger
}

// NewActivityService constructs an ActivityService wired to the given
// repository and background recorder.
func NewActivityService(activityRepository store.ActivityRepository, recorder ActivityRecorder, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		recorder:           recorder,
		logger:             logger,
	}
}

// Record queues one activity entry for background persistence. A full queue
// drops the entry with a warning; the originating request is never failed
// over activity logging.
func (s *activityService) Record(ctx context.Context, entry models.ActivityLog) {
	log := logger.FromContext(ctx)

	if entry.UserID == 0 || entry.Action == "" {
		log.Warn().Str("action", entry.Action).Msg("skipping activity entry with missing user or action")
		return
	}

	if !s.recorder.Enqueue(entry) {
		log.Warn().
			Int64("user_id", entry.UserID).
			Str("action", entry.Action).
			Msg("activity queue is full, entry dropped")
	}
}

// Recent returns the user's newest activity entries, at most limit of them.
func (s *activityService) Recent(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	log := logger.FromContext(ctx)

	entries, err := s.activityRepository.Recent(ctx, userID, limit)
	if err != nil {
		log.Err(err).Msg("activity history lookup failed")
		return nil, fmt.Errorf("activity history lookup failed: %w", err)
	}

	return entries, nil
}
