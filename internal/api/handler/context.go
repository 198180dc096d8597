package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kyambogo/exam-permit-system/internal/api/middleware"
	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// identityFromContext extracts the authenticated identity from the session
// injected by the Session middleware. Handlers behind the gate should never
// see an anonymous session; fail fast with 401 if one slips through.
func identityFromContext(c echo.Context) (domain.Identity, error) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "no session")
	}
	identity := sess.Current()
	if identity == nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return *identity, nil
}
