package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/api/metrics"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
)

// CookieName is the fixed storage key the client keeps its session under.
const CookieName = "permit_session"

const sessionContextKey = "session"

// Session builds the per-request session: it reads the session cookie,
// verifies the signed token inside it, and hydrates the session from the
// repository before any gate decision runs. A missing or malformed cookie
// yields an anonymous session — logged, never surfaced.
func Session(secret string, dir ports.CredentialDirectory, verifier ports.SecretVerifier, repo ports.SessionRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess *service.Session

			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				sess = service.NewSession(dir, verifier, repo, log)
			} else {
				sid, parseErr := ParseSessionToken(secret, cookie.Value)
				if parseErr != nil {
					log.Debug().Err(parseErr).Msg("session cookie rejected, starting anonymous")
					metrics.SessionsHydratedTotal.WithLabelValues("corrupt").Inc()
					sess = service.NewSession(dir, verifier, repo, log)
				} else {
					sess = service.ResumeSession(sid, dir, verifier, repo, log)
				}
			}

			sess.Hydrate(c.Request().Context())
			if sess.IsAuthenticated() {
				metrics.SessionsHydratedTotal.WithLabelValues("restored").Inc()
			} else {
				metrics.SessionsHydratedTotal.WithLabelValues("anonymous").Inc()
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the request's session, or nil when the session
// middleware did not run.
func SessionFromContext(c echo.Context) *service.Session {
	sess, _ := c.Get(sessionContextKey).(*service.Session)
	return sess
}

// NewSessionToken signs a token carrying the session ID for the cookie.
func NewSessionToken(secret, sid string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies a session token and extracts the session ID.
func ParseSessionToken(secret, token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !tkn.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sid, nil
}

// SetSessionCookie attaches the signed session token to the response.
func SetSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
