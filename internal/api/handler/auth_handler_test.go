package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kyambogo/exam-permit-system/internal/api/middleware"
	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
	"github.com/kyambogo/exam-permit-system/internal/directory"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/db/memory"
)

const testSecret = "test-signing-secret"

// newAuthContext builds an echo context carrying a hydrated session, the way
// requests arrive after the session middleware has run.
func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder, *service.Session) {
	t.Helper()

	verifier := directory.NewBcryptVerifier(bcrypt.MinCost)
	dir, err := directory.New(directory.Seed(), verifier)
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}
	sess := service.NewSession(dir, verifier, memory.NewSessionRepository(), zerolog.Nop())

	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sess.Hydrate(req.Context())
	c.Set("session", sess)
	return c, rec, sess
}

func TestLogin_Success(t *testing.T) {
	c, rec, _ := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"mubirutimothy@gmail.com","password":"timothy"}`)
	h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		User       domain.Identity `json:"user"`
		RedirectTo string          `json:"redirect_to"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Role != domain.RoleStudent {
		t.Fatalf("expected student role, got %s", resp.User.Role)
	}
	if resp.User.RegNumber != "21/U/ITD/3925/PD" {
		t.Fatalf("unexpected reg number: %s", resp.User.RegNumber)
	}
	if resp.RedirectTo != service.HomePath {
		t.Fatalf("students land on %s, got %s", service.HomePath, resp.RedirectTo)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.CookieName {
		t.Fatalf("login must set the session cookie")
	}
	if _, err := middleware.ParseSessionToken(testSecret, cookies[0].Value); err != nil {
		t.Fatalf("session cookie must carry a valid token: %v", err)
	}
}

func TestLogin_InvigilatorLandsOnScanner(t *testing.T) {
	c, rec, _ := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"nakirayisophia@kyu.edu","password":"sophia"}`)
	h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	var resp struct {
		RedirectTo string `json:"redirect_to"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RedirectTo != service.ScanPath {
		t.Fatalf("invigilators land on %s, got %s", service.ScanPath, resp.RedirectTo)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	c, rec, sess := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@kyu.edu","password":"wrongpass"}`)
	h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sess.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate the session")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("failed login must not set a cookie")
	}
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	// Unknown email and wrong password are indistinguishable to the caller.
	c, _, _ := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)
	h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_RejectsMalformedPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"x"}`},
		{"missing password", `{"email":"a@b.com"}`},
		{"not an email", `{"email":"nope","password":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, _ := newAuthContext(t, http.MethodPost, "/auth/login", tc.body)
			h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

			err := h.Login(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestLogout_ClearsSessionAndCookie(t *testing.T) {
	c, rec, sess := newAuthContext(t, http.MethodPost, "/auth/logout", "")
	if _, err := sess.Login(c.Request().Context(), "admin@kyu.edu", "admin"); err != nil {
		t.Fatalf("login: %v", err)
	}
	h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if sess.IsAuthenticated() {
		t.Fatalf("logout must clear the session")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("logout must expire the session cookie")
	}
}

func TestLogout_IdempotentWithoutSession(t *testing.T) {
	c, rec, _ := newAuthContext(t, http.MethodPost, "/auth/logout", "")
	h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout on anonymous session: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestMe_ReportsSessionState(t *testing.T) {
	c, rec, sess := newAuthContext(t, http.MethodGet, "/auth/me", "")
	h := NewAuthHandler(testSecret, time.Hour, zerolog.Nop())

	if err := h.Me(c); err != nil {
		t.Fatalf("me: %v", err)
	}
	var anon sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &anon); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if anon.Authenticated || anon.User != nil {
		t.Fatalf("anonymous session must report unauthenticated")
	}

	if _, err := sess.Login(c.Request().Context(), "admin@kyu.edu", "admin"); err != nil {
		t.Fatalf("login: %v", err)
	}
	rec2 := httptest.NewRecorder()
	c2 := c.Echo().NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec2)
	c2.Set("session", sess)

	if err := h.Me(c2); err != nil {
		t.Fatalf("me: %v", err)
	}
	var authed sessionResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &authed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !authed.Authenticated || authed.User == nil || authed.User.Role != domain.RoleAdmin {
		t.Fatalf("authenticated session must report the identity")
	}
}
