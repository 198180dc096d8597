package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/api/metrics"
	"github.com/kyambogo/exam-permit-system/internal/api/middleware"
	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
)

// AuthHandler drives login and logout against the per-request session.
type AuthHandler struct {
	secret     string
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthHandler(secret string, sessionTTL time.Duration, log zerolog.Logger) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{secret: secret, sessionTTL: sessionTTL, log: log}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User       domain.Identity `json:"user"`
	RedirectTo string          `json:"redirect_to"`
	Degraded   bool            `json:"degraded,omitempty"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *domain.Identity `json:"user,omitempty"`
}

// Login authenticates against the credential directory and binds the
// session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "no session")
	}

	identity, err := sess.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	token, err := middleware.NewSessionToken(h.secret, sess.ID(), h.sessionTTL)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to sign session token")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	middleware.SetSessionCookie(c, token, h.sessionTTL)

	return c.JSON(http.StatusOK, loginResponse{
		User:       identity,
		RedirectTo: service.HomeRoute(identity.Role),
		Degraded:   sess.Degraded(),
	})
}

// Logout clears the session. Idempotent: logging out with no active
// session still returns 204.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess := middleware.SessionFromContext(c); sess != nil {
		sess.Logout(c.Request().Context())
	}
	middleware.ClearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// Me reports the current session state without gating.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess == nil || !sess.IsAuthenticated() {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		User:          sess.Current(),
	})
}
