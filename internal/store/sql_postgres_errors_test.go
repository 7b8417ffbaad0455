package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify_NilError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()
	if got := classifier.Classify(nil); got != NonRetryable {
		t.Errorf("expected NonRetryable for nil, got %v", got)
	}
}

func TestClassify_NonPostgresError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()
	if got := classifier.Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("expected NonRetryable for a non-pg error, got %v", got)
	}
}

func TestClassify_RetryableCodes(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	retryable := []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	}

	for _, code := range retryable {
		err := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: code})
		if got := classifier.Classify(err); got != Retryable {
			t.Errorf("code %s: expected Retryable, got %v", code, got)
		}
	}
}

func TestClassify_NonRetryableCodes(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	nonRetryable := []string{
		pgerrcode.UniqueViolation,
		pgerrcode.SyntaxError,
		pgerrcode.UndefinedTable,
		pgerrcode.NotNullViolation,
	}

	for _, code := range nonRetryable {
		if got := classifier.Classify(&pgconn.PgError{Code: code}); got != NonRetryable {
			t.Errorf("code %s: expected NonRetryable, got %v", code, got)
		}
	}
}
