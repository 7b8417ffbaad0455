// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport used by the terminal
// client to talk to the credstore server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// screens from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/credstore/models"
)

// ServerAdapter defines transport-agnostic communication with the credstore
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success the bearer token from the
	// response is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates an existing account. On success the bearer token
	// from the response is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	// ListCredentials fetches one page of the user's credentials. Items
	// carry metadata only; secret fields are empty.
	ListCredentials(ctx context.Context, filter models.ListFilter) (models.CredentialList, error)

	// GetCredential fetches a single credential with its secret fields
	// decrypted by the server.
	GetCredential(ctx context.Context, id int64) (models.Credential, error)

	// CreateCredential stores a new credential.
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)

	// UpdateCredential replaces an existing credential.
	UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)

	// DeleteCredential removes a credential.
	DeleteCredential(ctx context.Context, id int64) error

	// ToggleCredentialFavorite flips the favorite flag and returns the new
	// value.
	ToggleCredentialFavorite(ctx context.Context, id int64) (bool, error)

	// ListNotes fetches one page of the user's secure notes, content not
	// decrypted.
	ListNotes(ctx context.Context, filter models.ListFilter) (models.SecureNoteList, error)

	// GetNote fetches a single note with its content decrypted by the server.
	GetNote(ctx context.Context, id int64) (models.SecureNote, error)

	// CreateNote stores a new secure note.
	CreateNote(ctx context.Context, note models.SecureNote) (models.SecureNote, error)

	// UpdateNote replaces an existing secure note.
	UpdateNote(ctx context.Context, note models.SecureNote) (models.SecureNote, error)

	// DeleteNote removes a secure note.
	DeleteNote(ctx context.Context, id int64) error

	// ToggleNoteFavorite flips the favorite flag and returns the new value.
	ToggleNoteFavorite(ctx context.Context, id int64) (bool, error)

	// Dashboard fetches the aggregated dashboard numbers and recent items.
	Dashboard(ctx context.Context) (models.DashboardStats, error)

	// RecentActivity fetches up to limit recent activity log entries.
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityLog, error)

	// ExportCredentialsCSV downloads the metadata-only CSV export of the
	// user's credentials.
	ExportCredentialsCSV(ctx context.Context) ([]byte, error)

	// GetAppInfo fetches the server build information.
	GetAppInfo(ctx context.Context) (models.AppInfo, error)
}
