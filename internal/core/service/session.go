package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

// Session is the single source of truth for "who is logged in" within one
// client session. It starts in the hydrating state and moves to anonymous
// or authenticated once Hydrate has consulted the session repository.
//
// All mutation funnels through Hydrate, Login, and Logout; everything else
// is a pure read.
type Session struct {
	mu       sync.Mutex
	id       string
	identity *domain.Identity
	loading  bool
	hydrated bool
	degraded bool

	dir      ports.CredentialDirectory
	verifier ports.SecretVerifier
	repo     ports.SessionRepository
	log      zerolog.Logger
}

// NewSession creates a fresh session with no persisted state behind it.
func NewSession(dir ports.CredentialDirectory, verifier ports.SecretVerifier, repo ports.SessionRepository, log zerolog.Logger) *Session {
	return &Session{
		loading:  true,
		dir:      dir,
		verifier: verifier,
		repo:     repo,
		log:      log,
	}
}

// ResumeSession creates a session bound to an existing session ID, ready to
// hydrate whatever record that ID has persisted.
func ResumeSession(id string, dir ports.CredentialDirectory, verifier ports.SecretVerifier, repo ports.SessionRepository, log zerolog.Logger) *Session {
	s := NewSession(dir, verifier, repo, log)
	s.id = id
	return s
}

// Hydrate restores the persisted identity for this session, if any. It runs
// once; repeat calls are no-ops. Missing or corrupt records leave the
// session anonymous and are logged, never propagated — and the loading flag
// always drops so the gate can never hang on a pending decision.
func (s *Session) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	defer func() {
		s.hydrated = true
		s.loading = false
	}()

	if s.id == "" {
		return
	}

	rec, err := s.repo.Load(ctx, s.id)
	switch {
	case err == nil:
		if rec.Identity.Role.Valid() {
			identity := rec.Identity
			s.identity = &identity
			return
		}
		s.log.Warn().Str("session_id", s.id).Str("role", string(rec.Identity.Role)).Msg("hydration: persisted record has unknown role, discarding")
	case errors.Is(err, domain.ErrSessionNotFound):
		// Nothing persisted: stay anonymous.
	case errors.Is(err, domain.ErrSessionCorrupt):
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("hydration: corrupt session record, starting anonymous")
	default:
		s.degraded = true
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("hydration: session storage unavailable, starting anonymous")
	}
}

// Login checks email and password against the credential directory. On
// success the identity is held in memory and persisted; a persistence
// failure degrades the session to memory-only rather than failing the
// login. On failure nothing changes and ErrInvalidCredentials is returned —
// deliberately silent about which factor was wrong.
func (s *Session) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, secretHash, ok := s.dir.Lookup(email)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	if !s.verifier.Verify(secretHash, password) {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	if s.id == "" {
		s.id = uuid.NewString()
	}

	if err := s.repo.Save(ctx, s.id, domain.SessionRecord{
		Version:  domain.SessionRecordVersion,
		Identity: identity,
	}); err != nil {
		// In-memory session stays valid for this process lifetime, but a
		// reload will not restore it.
		s.degraded = true
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("login: session persistence failed, continuing memory-only")
	}

	s.identity = &identity

	s.log.Info().
		Str("session_id", s.id).
		Str("role", string(identity.Role)).
		Msg("login succeeded")

	return identity, nil
}

// Logout clears the in-memory identity and removes the persisted record.
// Calling it with no active session is a no-op.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil && s.id == "" {
		return
	}

	s.identity = nil
	if s.id == "" {
		return
	}
	if err := s.repo.Delete(ctx, s.id); err != nil {
		s.log.Warn().Err(err).Str("session_id", s.id).Msg("logout: failed to delete persisted session")
	}
}

// Current returns a copy of the authenticated identity, or nil when
// anonymous.
func (s *Session) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// IsAuthenticated reports whether an identity is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// IsLoading reports whether startup hydration has not yet completed.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ID returns the opaque session identifier, empty until first login.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Degraded reports whether session persistence has failed and the session
// survives in memory only.
func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}
