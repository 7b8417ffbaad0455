package models

import "time"

// Activity action values recorded in the activity log.
const (
	ActionLogin            = "login"
	ActionCreateCredential = "create_credential"
	ActionViewCredential   = "view_credential"
	ActionUpdateCredential = "update_credential"
	ActionDeleteCredential = "delete_credential"
	ActionCreateNote       = "create_note"
	ActionViewNote         = "view_note"
	ActionUpdateNote       = "update_note"
	ActionDeleteNote       = "delete_note"
	ActionExportData       = "export_data"
)

// ActivityLog is one recorded user action, kept for security review.
// Entries are append-only; the application never updates or deletes them.
type ActivityLog struct {
	// ID is the internal unique identifier of the log entry.
	ID int64 `json:"id"`

	// UserID is the identifier of the user who performed the action.
	UserID int64 `json:"-"`

	// Action is one of the Action* constants.
	Action string `json:"action"`

	// Description is a short human-readable summary of the action,
	// e.g. `Created credential "GitHub"`.
	Description string `json:"description"`

	// IPAddress is the remote address the request came from, if known.
	IPAddress string `json:"ip_address,omitempty"`

	// UserAgent is the User-Agent header of the request, if known.
	UserAgent string `json:"user_agent,omitempty"`

	// CreatedAt is the timestamp when the action was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ActivityLog model.
func (a ActivityLog) TableName() string {
	return "activity_log"
}
