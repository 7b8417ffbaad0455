package workers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/credstore/internal/config"
	"github.com/MKhiriev/credstore/internal/logger"
	"github.com/MKhiriev/credstore/internal/store"
	"github.com/MKhiriev/credstore/models"
)

type recordingActivityRepo struct {
	mu      sync.Mutex
	saved   []models.ActivityLog
	failFor int // number of leading Save calls that fail
	failErr error
	calls   int
}

func (r *recordingActivityRepo) Save(ctx context.Context, entry models.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.calls <= r.failFor {
		return r.failErr
	}
	r.saved = append(r.saved, entry)
	return nil
}

func (r *recordingActivityRepo) Recent(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	return nil, nil
}

type staticClassifier struct {
	result store.ErrorClassification
}

func (c staticClassifier) Classify(err error) store.ErrorClassification {
	return c.result
}

func testWorkersConfig() config.Workers {
	return config.Workers{ActivityWorkers: 2, ActivityQueueSize: 16}
}

func TestActivityWriter_SavesEnqueuedEntries(t *testing.T) {
	repo := &recordingActivityRepo{}
	writer := NewActivityWriter(repo, staticClassifier{store.NonRetryable}, testWorkersConfig(), logger.NewLogger("test"))
	writer.Run()

	for i := 0; i < 5; i++ {
		require.True(t, writer.Enqueue(models.ActivityLog{UserID: 1, Action: models.ActionLogin}))
	}
	writer.Close()

	assert.Len(t, repo.saved, 5)
}

func TestActivityWriter_RetriesTransientFailures(t *testing.T) {
	repo := &recordingActivityRepo{
		failFor: 2,
		failErr: errors.New("connection reset"),
	}
	writer := NewActivityWriter(repo, staticClassifier{store.Retryable}, config.Workers{ActivityWorkers: 1, ActivityQueueSize: 4}, logger.NewLogger("test"))
	writer.Run()

	require.True(t, writer.Enqueue(models.ActivityLog{UserID: 1, Action: models.ActionLogin}))
	writer.Close()

	// two failed attempts, then success on the third
	assert.Equal(t, 3, repo.calls)
	assert.Len(t, repo.saved, 1)
}

func TestActivityWriter_DoesNotRetryPermanentFailures(t *testing.T) {
	repo := &recordingActivityRepo{
		failFor: 100,
		failErr: errors.New("not-null violation"),
	}
	writer := NewActivityWriter(repo, staticClassifier{store.NonRetryable}, config.Workers{ActivityWorkers: 1, ActivityQueueSize: 4}, logger.NewLogger("test"))
	writer.Run()

	require.True(t, writer.Enqueue(models.ActivityLog{UserID: 1, Action: models.ActionLogin}))
	writer.Close()

	assert.Equal(t, 1, repo.calls)
	assert.Empty(t, repo.saved)
}

func TestActivityWriter_EnqueueFullQueue(t *testing.T) {
	repo := &recordingActivityRepo{}
	// writer never started, so nothing drains the queue
	writer := NewActivityWriter(repo, staticClassifier{store.NonRetryable}, config.Workers{ActivityWorkers: 1, ActivityQueueSize: 1}, logger.NewLogger("test"))

	assert.True(t, writer.Enqueue(models.ActivityLog{UserID: 1, Action: models.ActionLogin}))
	assert.False(t, writer.Enqueue(models.ActivityLog{UserID: 1, Action: models.ActionLogin}))
}
