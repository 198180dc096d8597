package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kyambogo/exam-permit-system/internal/api/metrics"
	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
)

// Gate enforces a route's access rule: an empty role list admits any
// authenticated session. The decision is evaluated fresh on every request.
func Gate(required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFromContext(c)
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no session")
			}

			decision := service.Decide(sess, required...)
			metrics.GateDecisionsTotal.WithLabelValues(decision.String()).Inc()

			switch decision {
			case service.DecisionPending:
				// Hydration is synchronous in this middleware chain, so this
				// only fires if the session was injected un-hydrated.
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session hydrating")
			case service.DecisionRedirectLogin:
				return c.Redirect(http.StatusSeeOther, service.LoginPath)
			case service.DecisionRedirectHome:
				return c.Redirect(http.StatusSeeOther, service.HomePath)
			}
			return next(c)
		}
	}
}
