package store

import (
	"context"

	"github.com/MKhiriev/credstore/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrLoginAlreadyExists when the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account with the given login, or
	// ErrNoUserWasFound.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// CredentialRepository executes all credential CRUD and query operations.
// It stores and returns ciphertext columns untouched: encryption and
// decryption happen in the service layer above.
type CredentialRepository interface {
	Create(ctx context.Context, credential models.Credential) (models.Credential, error)
	GetByID(ctx context.Context, userID, id int64) (models.Credential, error)
	List(ctx context.Context, userID int64, filter models.ListFilter) ([]models.Credential, error)
	Count(ctx context.Context, userID int64, filter models.ListFilter) (int64, error)
	AllByUser(ctx context.Context, userID int64) ([]models.Credential, error)
	Update(ctx context.Context, credential models.Credential) (models.Credential, error)
	Delete(ctx context.Context, userID, id int64) error

	// ToggleFavorite flips the favorite flag and returns the new value.
	ToggleFavorite(ctx context.Context, userID, id int64) (bool, error)

	// TouchAccess stamps last_accessed with the current time.
	TouchAccess(ctx context.Context, userID, id int64) error

	// CountByUser returns the user's credential count, optionally restricted
	// to favorites.
	CountByUser(ctx context.Context, userID int64, favoritesOnly bool) (int64, error)

	// TypeCounts returns the user's credential types ordered by descending
	// count, at most limit entries.
	TypeCounts(ctx context.Context, userID int64, limit int) ([]models.TypeCount, error)
}

// NoteRepository executes all secure-note CRUD and query operations.
// Ciphertext columns pass through untouched, as with CredentialRepository.
type NoteRepository interface {
	Create(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	GetByID(ctx context.Context, userID, id int64) (models.SecureNote, error)
	List(ctx context.Context, userID int64, filter models.ListFilter) ([]models.SecureNote, error)
	Count(ctx context.Context, userID int64, filter models.ListFilter) (int64, error)
	Update(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	Delete(ctx context.Context, userID, id int64) error
	ToggleFavorite(ctx context.Context, userID, id int64) (bool, error)
	TouchAccess(ctx context.Context, userID, id int64) error
	CountByUser(ctx context.Context, userID int64, favoritesOnly bool) (int64, error)
}

// ActivityRepository appends and reads the per-user activity log.
type ActivityRepository interface {
	Save(ctx context.Context, entry models.ActivityLog) error
	Recent(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying (e.g. after a transient connection loss) or must be abandoned.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
