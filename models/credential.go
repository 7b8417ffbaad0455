package models

import (
	"strings"
	"time"
)

// Credential type values accepted by the API. They mirror the categories a
// user can file a stored login under.
const (
	CredentialTypeWebsite  = "website"
	CredentialTypeEmail    = "email"
	CredentialTypeSocial   = "social"
	CredentialTypeBanking  = "banking"
	CredentialTypeWork     = "work"
	CredentialTypePersonal = "personal"
	CredentialTypeServer   = "server"
	CredentialTypeAPI      = "api"
	CredentialTypeOther    = "other"
)

// CredentialTypes lists every valid credential type value.
var CredentialTypes = []string{
	CredentialTypeWebsite,
	CredentialTypeEmail,
	CredentialTypeSocial,
	CredentialTypeBanking,
	CredentialTypeWork,
	CredentialTypePersonal,
	CredentialTypeServer,
	CredentialTypeAPI,
	CredentialTypeOther,
}

// ValidCredentialType reports whether t is one of the accepted
// credential type values.
func ValidCredentialType(t string) bool {
	for _, known := range CredentialTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Credential is a stored login record owned by a single user.
//
// Password and SecretKey are the transient plaintext values: they exist in
// memory on the way in (before encryption) and on the way out (after
// decryption) and are never persisted. PasswordEncrypted and
// SecretKeyEncrypted hold the ciphertext tokens actually written to the
// database; they never cross the API boundary.
type Credential struct {
	// ID is the internal unique identifier of the credential.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"-"`

	// Label is the user-facing descriptive name for this credential.
	Label string `json:"label"`

	// Type is one of the CredentialType* constants.
	Type string `json:"type"`

	// WebsiteURL is the associated site address, if any.
	WebsiteURL string `json:"website_url,omitempty"`

	// Username is the account name used for the login, if any.
	Username string `json:"username,omitempty"`

	// Email is the account e-mail used for the login, if any.
	Email string `json:"email,omitempty"`

	// Password is the plaintext password. Transient: encrypted before any
	// write, decrypted after any read, never stored.
	Password string `json:"password,omitempty"`

	// PasswordEncrypted is the ciphertext token persisted for Password.
	PasswordEncrypted string `json:"-"`

	// SecretKey is the plaintext secret key or 2FA seed. Transient, like
	// Password.
	SecretKey string `json:"secret_key,omitempty"`

	// SecretKeyEncrypted is the ciphertext token persisted for SecretKey.
	SecretKeyEncrypted string `json:"-"`

	// Note is a free-text remark attached to the credential. Stored as
	// plain text; it is searchable.
	Note string `json:"note,omitempty"`

	// IsFavorite marks the credential as pinned by the user.
	IsFavorite bool `json:"is_favorite"`

	// Tags is the comma-separated tag list as entered by the user.
	Tags string `json:"tags,omitempty"`

	// CreatedAt is the timestamp when the credential was first stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updated_at"`

	// LastAccessed is the timestamp of the most recent detail view,
	// nil until the credential has been opened at least once.
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// TagList splits the comma-separated Tags field into trimmed tag values.
// Returns nil when no tags are set.
func (c Credential) TagList() []string {
	return splitTags(c.Tags)
}

// splitTags turns a comma-separated tag string into trimmed non-empty values.
func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}

	parts := strings.Split(tags, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
