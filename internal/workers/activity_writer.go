// Package workers holds the background goroutine pools of the server.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/models"
)

const (
	// saveAttempts bounds how often one entry is offered to the repository.
	saveAttempts = 3

	// saveTimeout bounds one repository write.
	saveTimeout = 5 * time.Second

	// retryBackoff is the pause before attempt N+1, multiplied by N.
	retryBackoff = 100 * time.Millisecond
)

// ActivityWriter persists activity log entries in the background so request
// handling never waits on the activity table. Entries are taken from a
// bounded queue by a fixed pool of workers; transient database failures are
// retried according to the store's error classification.
type ActivityWriter struct {
	activityRepository store.ActivityRepository
	classifier         store.ErrorClassificator
	logger             *logger.Logger

	queue   chan models.ActivityLog
	workers int

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewActivityWriter constructs an ActivityWriter with the pool size and
// queue capacity taken from cfg.
func NewActivityWriter(activityRepository store.ActivityRepository, classifier store.ErrorClassificator, cfg config.Workers, logger *logger.Logger) *ActivityWriter {
	return &ActivityWriter{
		activityRepository: activityRepository,
		classifier:         classifier,
		logger:             logger,
		queue:              make(chan models.ActivityLog, cfg.ActivityQueueSize),
		workers:            cfg.ActivityWorkers,
	}
}

// Enqueue offers one entry to the writer queue without blocking. Returns
// false when the queue is full and the entry was dropped.
func (w *ActivityWriter) Enqueue(entry models.ActivityLog) bool {
	select {
	case w.queue <- entry:
		return true
	default:
		return false
	}
}

// Run starts the worker pool. Safe to call once; subsequent calls are no-ops.
func (w *ActivityWriter) Run() {
	w.startOnce.Do(func() {
		w.logger.Info().
			Int("workers", w.workers).
			Int("queue_size", cap(w.queue)).
			Str("func", "*ActivityWriter.Run").
			Msg("starting activity writers")

		for i := 0; i < w.workers; i++ {
			w.wg.Add(1)
			go w.work()
		}
	})
}

// Close stops accepting entries, drains the queue, and waits for all
// workers to finish.
func (w *ActivityWriter) Close() {
	w.stopOnce.Do(func() {
		close(w.queue)
	})
	w.wg.Wait()
}

func (w *ActivityWriter) work() {
	defer w.wg.Done()

	for entry := range w.queue {
		w.save(entry)
	}
}

// save writes one entry, retrying transient failures a bounded number of
// times. A permanently failed entry is logged and dropped.
func (w *ActivityWriter) save(entry models.ActivityLog) {
	var err error

	for attempt := 1; attempt <= saveAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err = w.activityRepository.Save(ctx, entry)
		cancel()

		if err == nil {
			return
		}

		if w.classifier.Classify(err) != store.Retryable {
			break
		}

		w.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int64("user_id", entry.UserID).
			Str("action", entry.Action).
			Msg("transient failure writing activity entry")

		time.Sleep(retryBackoff * time.Duration(attempt))
	}

	w.logger.Err(err).
		Int64("user_id", entry.UserID).
		Str("action", entry.Action).
		Msg("activity entry dropped after failed writes")
}
