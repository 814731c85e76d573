package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsewire/social-api/internal/api/middleware"
	"github.com/pulsewire/social-api/internal/core/domain"
)

// ctxIdentity extracts the authenticated actor injected by the Auth
// middleware. A missing identity means the route was registered without the
// middleware; reject rather than proceed unauthenticated.
func ctxIdentity(c echo.Context) (domain.AuthIdentity, error) {
	actor, ok := c.Get(middleware.IdentityKey).(domain.AuthIdentity)
	if !ok || actor.ID == "" {
		return domain.AuthIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return actor, nil
}
