package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
	"github.com/kyambogo/exam-permit-system/internal/directory"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/db/memory"
)

const testSecret = "test-signing-secret"

func testDeps(t *testing.T) (ports.CredentialDirectory, ports.SecretVerifier, ports.SessionRepository) {
	t.Helper()
	verifier := directory.NewBcryptVerifier(bcrypt.MinCost)
	dir, err := directory.New(directory.Seed(), verifier)
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}
	return dir, verifier, memory.NewSessionRepository()
}

// persistSession stores an authenticated record and returns a signed cookie
// token bound to it.
func persistSession(t *testing.T, repo ports.SessionRepository, identity domain.Identity) string {
	t.Helper()
	const sid = "test-session-id"
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
	return token
}

func runSession(t *testing.T, repo ports.SessionRepository, cookie string) echo.Context {
	t.Helper()
	dir, verifier, _ := testDeps(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(testSecret, dir, verifier, repo, zerolog.Nop())
	err := mw(func(echo.Context) error { return nil })(c)
	if err != nil {
		t.Fatalf("session middleware: %v", err)
	}
	return c
}

func TestSession_NoCookieStartsAnonymous(t *testing.T) {
	_, _, repo := testDeps(t)
	c := runSession(t, repo, "")

	sess := SessionFromContext(c)
	if sess == nil {
		t.Fatalf("middleware must always attach a session")
	}
	if sess.IsLoading() {
		t.Fatalf("session must be hydrated by the time handlers run")
	}
	if sess.IsAuthenticated() {
		t.Fatalf("no cookie must yield an anonymous session")
	}
}

func TestSession_GarbageCookieStartsAnonymous(t *testing.T) {
	_, _, repo := testDeps(t)
	c := runSession(t, repo, "not-a-token")

	sess := SessionFromContext(c)
	if sess == nil || sess.IsAuthenticated() {
		t.Fatalf("garbage cookie must yield an anonymous session")
	}
}

func TestSession_ForgedTokenStartsAnonymous(t *testing.T) {
	_, _, repo := testDeps(t)
	forged, err := NewSessionToken("attacker-secret", "some-sid", time.Hour)
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}

	c := runSession(t, repo, forged)
	sess := SessionFromContext(c)
	if sess == nil || sess.IsAuthenticated() {
		t.Fatalf("token signed with the wrong secret must be rejected")
	}
}

func TestSession_ValidCookieRestoresIdentity(t *testing.T) {
	_, _, repo := testDeps(t)
	identity := domain.Identity{
		ID:        "S234567",
		Name:      "Mubiru Timothy",
		Email:     "mubirutimothy@gmail.com",
		Role:      domain.RoleStudent,
		RegNumber: "21/U/ITD/3925/PD",
	}
	token := persistSession(t, repo, identity)

	c := runSession(t, repo, token)
	sess := SessionFromContext(c)
	if sess == nil || !sess.IsAuthenticated() {
		t.Fatalf("valid cookie must restore the session")
	}
	restored := sess.Current()
	if restored == nil || *restored != identity {
		t.Fatalf("restored identity differs:\n got  %+v\n want %+v", restored, identity)
	}
}

func TestSession_CookieForMissingRecord(t *testing.T) {
	_, _, repo := testDeps(t)
	token, err := NewSessionToken(testSecret, "expired-session-id", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	c := runSession(t, repo, token)
	sess := SessionFromContext(c)
	if sess == nil || sess.IsAuthenticated() {
		t.Fatalf("a valid token for a deleted record must yield an anonymous session")
	}
}

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := NewSessionToken(testSecret, "abc-123", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sid, err := ParseSessionToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sid != "abc-123" {
		t.Fatalf("unexpected sid: %s", sid)
	}
}

func TestSessionToken_Expired(t *testing.T) {
	token, err := NewSessionToken(testSecret, "abc-123", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseSessionToken(testSecret, token); err == nil {
		t.Fatalf("expired token must not parse")
	}
}

func TestSessionCookie_SetAndClear(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	SetSessionCookie(c, "tok", time.Hour)
	ClearSessionCookie(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 Set-Cookie headers, got %d", len(cookies))
	}
	set, cleared := cookies[0], cookies[1]
	if set.Name != CookieName || set.Value != "tok" || !set.HttpOnly {
		t.Fatalf("unexpected set cookie: %+v", set)
	}
	if cleared.Name != CookieName || cleared.Value != "" || cleared.MaxAge != -1 {
		t.Fatalf("unexpected clearing cookie: %+v", cleared)
	}
}
