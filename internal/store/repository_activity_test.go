package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/credstore/models"
)

func newTestActivityRepo(t *testing.T) (*activityRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	testDB, mock, raw := newTestDB(t)
	repo := &activityRepository{
		db:     testDB,
		logger: testDB.logger,
	}
	return repo, mock, raw
}

func TestActivitySave_Success(t *testing.T) {
	repo, mock, db := newTestActivityRepo(t)
	defer db.Close()

	ctx := context.Background()
	entry := models.ActivityLog{
		UserID:      1,
		Action:      models.ActionCreateCredential,
		Description: `Created credential "GitHub"`,
		IPAddress:   "203.0.113.7",
		UserAgent:   "curl/8.5.0",
	}

	mock.ExpectExec("INSERT INTO activity_log").
		WithArgs(entry.UserID, entry.Action, entry.Description, entry.IPAddress, entry.UserAgent).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(ctx, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActivitySave_ExecError(t *testing.T) {
	repo, mock, db := newTestActivityRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO activity_log").
		WillReturnError(errors.New("db network error"))

	err := repo.Save(ctx, models.ActivityLog{UserID: 1, Action: models.ActionLogin})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestActivityRecent_Success(t *testing.T) {
	repo, mock, db := newTestActivityRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "action", "description", "ip_address", "user_agent", "created_at"}).
		AddRow(2, 1, models.ActionViewCredential, `Viewed credential "GitHub"`, "203.0.113.7", "curl/8.5.0", now).
		AddRow(1, 1, models.ActionLogin, "Logged in", "203.0.113.7", "curl/8.5.0", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM activity_log").
		WithArgs(int64(1), 5).
		WillReturnRows(rows)

	entries, err := repo.Recent(ctx, 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != models.ActionViewCredential {
		t.Errorf("expected newest entry first, got %s", entries[0].Action)
	}
}
