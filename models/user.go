package models

import "time"

// User is the identity record returned by the server after login,
// registration or a profile refresh. The client treats it as immutable:
// a refresh replaces the whole value instead of patching fields.
type User struct {
	// ID is the server-side identifier of the account.
	ID int64 `json:"id"`

	// Username is the unique public handle of the account.
	Username string `json:"username"`

	// Email is the e-mail address the account was registered with.
	Email string `json:"email"`

	// Role is the authorization role assigned by the server
	// (e.g. "user", "admin").
	Role string `json:"role"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// IsActive reports whether the server still considers the account enabled.
	IsActive bool `json:"is_active"`
}

// IsComplete reports whether u carries enough identity to be restored from
// the local session cache.
func (u User) IsComplete() bool {
	return u.ID != 0 && u.Username != ""
}
