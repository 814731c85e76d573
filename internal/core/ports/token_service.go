package ports

// TokenService issues and verifies signed, time-limited identity tokens.
// Both operations are stateless and safe for concurrent use.
type TokenService interface {
	// Issue produces a signed token embedding subjectID with a fixed lifetime.
	Issue(subjectID string) (string, error)
	// Verify returns the subject id of a valid token. Failures are the
	// domain sentinels ErrTokenMissing, ErrTokenInvalid or ErrTokenExpired.
	Verify(token string) (string, error)
}
