package handler

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/service"
	"github.com/kyambogo/exam-permit-system/internal/directory"
	"github.com/kyambogo/exam-permit-system/internal/infrastructure/db/memory"
)

// authenticatedSession builds a hydrated session already holding the given
// identity, the state handlers see behind the gate.
func authenticatedSession(t *testing.T, identity domain.Identity) *service.Session {
	t.Helper()

	verifier := directory.NewBcryptVerifier(bcrypt.MinCost)
	dir, err := directory.New(directory.Seed(), verifier)
	if err != nil {
		t.Fatalf("build directory: %v", err)
	}
	repo := memory.NewSessionRepository()

	const sid = "handler-test-session"
	err = repo.Save(context.Background(), sid, domain.SessionRecord{
		Version:  domain.SessionRecordVersion,
		Identity: identity,
	})
	if err != nil {
		t.Fatalf("persist session: %v", err)
	}

	sess := service.ResumeSession(sid, dir, verifier, repo, zerolog.Nop())
	sess.Hydrate(context.Background())
	if !sess.IsAuthenticated() {
		t.Fatalf("test session failed to hydrate")
	}
	return sess
}
