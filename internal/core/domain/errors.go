package domain

import "errors"

// Credential and token errors. The HTTP layer collapses all token failures
// into a single opaque 401; the distinct sentinels exist for logging and
// metrics only.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// Resource and authorization errors.
var (
	ErrPostNotFound        = errors.New("post not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrContentRequired     = errors.New("content is required")
	ErrCommentTextRequired = errors.New("comment text is required")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrAdminOnly           = errors.New("admins only")
)
