package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
)

// gateRequest runs the session and gate middleware chain against one path
// and returns the recorded response.
func gateRequest(t *testing.T, cookie string, required ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	dir, verifier, repo := testDeps(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/manage-students", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(testSecret, dir, verifier, repo, zerolog.Nop())(
		Gate(required...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}),
	)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

// gateRequestAs seeds an authenticated session for the identity and runs the
// chain with its cookie.
func gateRequestAs(t *testing.T, identity domain.Identity, required ...domain.Role) *httptest.ResponseRecorder {
	t.Helper()
	dir, verifier, repo := testDeps(t)

	const sid = "gate-test-session"
	err := repo.Save(context.Background(), sid, domain.SessionRecord{
		Version:  domain.SessionRecordVersion,
		Identity: identity,
	})
	if err != nil {
		t.Fatalf("persist session: %v", err)
	}
	token, err := NewSessionToken(testSecret, sid, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/manage-students", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(testSecret, dir, verifier, repo, zerolog.Nop())(
		Gate(required...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}),
	)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestGate_AnonymousRedirectsToLogin(t *testing.T) {
	rec := gateRequest(t, "", domain.RoleAdmin)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != service.LoginPath {
		t.Fatalf("expected redirect to %s, got %s", service.LoginPath, loc)
	}
}

func TestGate_WrongRoleRedirectsHome(t *testing.T) {
	invigilator := domain.Identity{ID: "I789012", Name: "Ms. Nakirayi Sophia", Role: domain.RoleInvigilator}
	rec := gateRequestAs(t, invigilator, domain.RoleAdmin)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != service.HomePath {
		t.Fatalf("expected redirect to %s, got %s", service.HomePath, loc)
	}
}

func TestGate_MatchingRoleAllows(t *testing.T) {
	admin := domain.Identity{ID: "A456789", Name: "Admin User", Role: domain.RoleAdmin}
	rec := gateRequestAs(t, admin, domain.RoleAdmin)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_OpenRouteAdmitsAnyRole(t *testing.T) {
	student := domain.Identity{ID: "S234567", Name: "Mubiru Timothy", Role: domain.RoleStudent}
	rec := gateRequestAs(t, student)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestGate_UnhydratedSessionIsPending(t *testing.T) {
	dir, verifier, repo := testDeps(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/manage-students", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Inject a session that never hydrated; the gate must hold, not redirect.
	c.Set(sessionContextKey, service.NewSession(dir, verifier, repo, zerolog.Nop()))
	err := Gate(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for a hydrating session, got %d", rec.Code)
	}
}

func TestGate_MissingSessionRejected(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/manage-students", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Gate()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session middleware, got %d", rec.Code)
	}
}
