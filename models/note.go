package models

import "time"

// Secure note type values accepted by the API.
const (
	NoteTypePersonal  = "personal"
	NoteTypeWork      = "work"
	NoteTypeFinancial = "financial"
	NoteTypeMedical   = "medical"
	NoteTypeLegal     = "legal"
	NoteTypeTechnical = "technical"
	NoteTypeOther     = "other"
)

// NoteTypes lists every valid secure note type value.
var NoteTypes = []string{
	NoteTypePersonal,
	NoteTypeWork,
	NoteTypeFinancial,
	NoteTypeMedical,
	NoteTypeLegal,
	NoteTypeTechnical,
	NoteTypeOther,
}

// ValidNoteType reports whether t is one of the accepted note type values.
func ValidNoteType(t string) bool {
	for _, known := range NoteTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SecureNote is an encrypted free-text note owned by a single user.
//
// Content is the transient plaintext body; ContentEncrypted is the
// ciphertext token actually persisted. The plaintext never reaches the
// database and the ciphertext never crosses the API boundary.
type SecureNote struct {
	// ID is the internal unique identifier of the note.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"-"`

	// Title is the user-facing name of the note. Stored as plain text;
	// it is searchable.
	Title string `json:"title"`

	// Type is one of the NoteType* constants.
	Type string `json:"type"`

	// Content is the plaintext note body. Transient: encrypted before any
	// write, decrypted after any read, never stored.
	Content string `json:"content,omitempty"`

	// ContentEncrypted is the ciphertext token persisted for Content.
	ContentEncrypted string `json:"-"`

	// IsFavorite marks the note as pinned by the user.
	IsFavorite bool `json:"is_favorite"`

	// Tags is the comma-separated tag list as entered by the user.
	Tags string `json:"tags,omitempty"`

	// CreatedAt is the timestamp when the note was first stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent modification.
	UpdatedAt time.Time `json:"updated_at"`

	// LastAccessed is the timestamp of the most recent detail view,
	// nil until the note has been opened at least once.
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
}

// TableName returns the name of the database table
// associated with the SecureNote model.
func (n SecureNote) TableName() string {
	return "secure_notes"
}

// TagList splits the comma-separated Tags field into trimmed tag values.
// Returns nil when no tags are set.
func (n SecureNote) TagList() []string {
	return splitTags(n.Tags)
}
