package tui

import (
	"github.com/MKhiriev/go-book-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the attempt completes.
type LoginResult struct {
	Err error
}

// RegisterResult is produced by the register page once the attempt completes.
type RegisterResult struct {
	Err error
}

type authStateMsg struct {
	state models.AuthState
}

type connectionStateMsg struct {
	state models.ConnectionState
}

type syncResultMsg struct {
	result models.SyncResult
}

type booksMsg struct {
	books []models.Book
}

type syncDoneMsg struct {
	result models.SyncResult
}

type probeDoneMsg struct {
	err error
}

type bookSyncedMsg struct {
	title string
	ok    bool
}

// bookSavedMsg is sent back to the books page after the new book form.
type bookSavedMsg struct {
	book   models.Book
	synced bool
	err    error
}

// listen turns one receive from ch into a message. A closed channel yields
// nil, which ends the listening loop.
func listen[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}
