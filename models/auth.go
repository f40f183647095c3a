package models

// LoginRequest is the body of POST /api/auth/login. Identifier is either a
// username or an e-mail address.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ErrorResponse is the JSON error envelope the server sends with non-2xx
// responses. Either field may be empty.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
