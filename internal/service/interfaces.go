package service

import (
	"context"

	"github.com/MKhiriev/credstore/models"
)

// AuthService handles user registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialService owns the credential lifecycle. Secret fields are
// encrypted before any write and decrypted only where a single record is
// returned; listings never carry secrets.
type CredentialService interface {
	Create(ctx context.Context, credential models.Credential) (models.Credential, error)
	Get(ctx context.Context, userID, id int64) (models.Credential, error)
	List(ctx context.Context, userID int64, filter models.ListFilter) (models.CredentialList, error)
	Update(ctx context.Context, credential models.Credential) (models.Credential, error)
	Delete(ctx context.Context, userID, id int64) error
	ToggleFavorite(ctx context.Context, userID, id int64) (bool, error)
}

// NoteService owns the secure note lifecycle with the same encryption
// discipline as CredentialService.
type NoteService interface {
	Create(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	Get(ctx context.Context, userID, id int64) (models.SecureNote, error)
	List(ctx context.Context, userID int64, filter models.ListFilter) (models.SecureNoteList, error)
	Update(ctx context.Context, note models.SecureNote) (models.SecureNote, error)
	Delete(ctx context.Context, userID, id int64) error
	ToggleFavorite(ctx context.Context, userID, id int64) (bool, error)
}

// ActivityService records user actions and reads back the recent history.
// Record is fire-and-forget: entries are queued to a background writer and
// a full queue only drops the entry, never fails the request.
type ActivityService interface {
	Record(ctx context.Context, entry models.ActivityLog)
	Recent(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

// ActivityRecorder is the queue the activity service hands entries to.
// Implemented by the background activity writer.
type ActivityRecorder interface {
	// Enqueue offers the entry to the writer queue. Returns false when the
	// queue is full and the entry was dropped.
	Enqueue(entry models.ActivityLog) bool
}

// DashboardService aggregates the per-user numbers and recent items shown
// on the dashboard.
type DashboardService interface {
	Stats(ctx context.Context, userID int64) (models.DashboardStats, error)
}

// ExportService produces downloadable exports of the user's data.
// Exports carry metadata only; secret values are never included.
type ExportService interface {
	ExportCredentialsCSV(ctx context.Context, userID int64) ([]byte, error)
}

// AppInfoService exposes build information about the running application.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
