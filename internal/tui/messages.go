package tui

import (
	"github.com/MKhiriev/credstore/models"
)

// NavigateTo switches the root model to another page. Payload, when set, is
// re-delivered to the target page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes the login screen's async command.
type LoginResult struct {
	Err      error
	Username string
	User     models.User
}

// RegisterResult finishes the registration screen's async command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type credentialsLoadedMsg struct {
	list models.CredentialList
	err  error
}

type notesLoadedMsg struct {
	list models.SecureNoteList
	err  error
}

type dashboardLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type credentialOpenedMsg struct {
	credential models.Credential
	err        error
}

type noteOpenedMsg struct {
	note models.SecureNote
	err  error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type favoriteToggledMsg struct {
	isFavorite bool
	err        error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	what string
}

type appInfoLoadedMsg struct {
	info models.AppInfo
	err  error
}
