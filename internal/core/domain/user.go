package domain

import "time"

// Identity models a registered account. PasswordHash is never serialized
// back to clients.
type Identity struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthIdentity is the request-scoped authenticated actor attached by the
// auth middleware. It is derived fresh from the user store on every request,
// so privilege changes take effect on the next request.
type AuthIdentity struct {
	ID      string
	IsAdmin bool
}
