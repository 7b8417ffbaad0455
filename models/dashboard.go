package models

// TypeCount is one entry of the per-type credential breakdown shown on the
// dashboard.
type TypeCount struct {
	// Type is the credential type value being counted.
	Type string `json:"type"`

	// Count is the number of the user's credentials of that type.
	Count int64 `json:"count"`
}

// DashboardStats aggregates the per-user numbers and recent items rendered
// on the dashboard.
type DashboardStats struct {
	// TotalCredentials is the user's total credential count.
	TotalCredentials int64 `json:"total_credentials"`

	// TotalNotes is the user's total secure note count.
	TotalNotes int64 `json:"total_notes"`

	// FavoriteCredentials is the number of credentials marked favorite.
	FavoriteCredentials int64 `json:"favorite_credentials"`

	// FavoriteNotes is the number of notes marked favorite.
	FavoriteNotes int64 `json:"favorite_notes"`

	// RecentCredentials holds the five most recently updated credentials.
	// Secrets are not decrypted for the dashboard; Password and SecretKey
	// stay empty.
	RecentCredentials []Credential `json:"recent_credentials"`

	// RecentNotes holds the five most recently updated notes, content not
	// decrypted.
	RecentNotes []SecureNote `json:"recent_notes"`

	// RecentActivities holds the five most recent activity log entries.
	RecentActivities []ActivityLog `json:"recent_activities"`

	// CredentialTypes holds the top credential types by count, at most five.
	CredentialTypes []TypeCount `json:"credential_types"`
}
