package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pulsewire/social-api/internal/api/metrics"
	"github.com/pulsewire/social-api/internal/core/domain"
	"github.com/pulsewire/social-api/internal/core/ports"
)

// IdentityKey is the echo context key the authenticated actor is stored under.
const IdentityKey = "identity"

// rejectMessage is the single opaque body for every authentication failure.
// Clients must not be able to tell a malformed token from an expired one or
// from a token whose subject no longer exists.
const rejectMessage = "invalid or expired token"

// Auth authenticates the request: it extracts the bearer token, verifies it,
// resolves the acting identity from the user store and attaches it to the
// context. The identity is fetched fresh on every request so admin-flag
// changes apply immediately on the next request.
func Auth(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return reject(log, "missing", domain.ErrTokenMissing)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return reject(log, "missing", domain.ErrTokenMissing)
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return reject(log, "expired", err)
				}
				return reject(log, "invalid", err)
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// A token for a deleted user is invalid, not a distinct case.
					return reject(log, "unknown_subject", err)
				}
				return fmt.Errorf("resolve identity: %w", err)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(IdentityKey, domain.AuthIdentity{ID: user.ID, IsAdmin: user.IsAdmin})
			return next(c)
		}
	}
}

func reject(log zerolog.Logger, result string, cause error) error {
	metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()
	log.Debug().Err(cause).Str("result", result).Msg("request rejected by auth middleware")
	return echo.NewHTTPError(http.StatusUnauthorized, rejectMessage)
}
