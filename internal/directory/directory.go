// Package directory holds the static credential directory: the unified,
// read-only mapping from email to a pre-provisioned identity and its secret
// hash. Role is determined by the entry itself, so login is a single lookup
// plus one opaque secret check.
package directory

import (
	"fmt"
	"strings"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

type entry struct {
	identity   domain.Identity
	secretHash string
}

// Directory is an immutable email-indexed credential directory.
type Directory struct {
	entries map[string]entry
}

// SeedEntry pairs a provisioned identity with its plaintext demo secret.
// Secrets are hashed during construction and never retained.
type SeedEntry struct {
	Identity domain.Identity
	Secret   string
}

// New builds a Directory from seed entries, hashing every secret with the
// given verifier. Duplicate emails and identities with unknown roles are
// construction errors: an email must resolve to exactly one role.
func New(seed []SeedEntry, verifier ports.SecretVerifier) (*Directory, error) {
	entries := make(map[string]entry, len(seed))
	for _, se := range seed {
		email := normalizeEmail(se.Identity.Email)
		if email == "" {
			return nil, fmt.Errorf("directory: entry %q has no email", se.Identity.ID)
		}
		if !se.Identity.Role.Valid() {
			return nil, fmt.Errorf("directory: entry %q: %w", email, domain.ErrUnknownRole)
		}
		if _, exists := entries[email]; exists {
			return nil, fmt.Errorf("directory: duplicate email %q", email)
		}

		hash, err := verifier.Hash(se.Secret)
		if err != nil {
			return nil, fmt.Errorf("directory: hash secret for %q: %w", email, err)
		}
		entries[email] = entry{identity: se.Identity, secretHash: hash}
	}
	return &Directory{entries: entries}, nil
}

// Lookup implements ports.CredentialDirectory.
func (d *Directory) Lookup(email string) (domain.Identity, string, bool) {
	e, ok := d.entries[normalizeEmail(email)]
	if !ok {
		return domain.Identity{}, "", false
	}
	return e.identity, e.secretHash, true
}

// Len returns the number of provisioned entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
