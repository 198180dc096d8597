package ports

import "github.com/kyambogo/exam-permit-system/internal/core/domain"

// CredentialDirectory is the static, read-only mapping from email to a
// pre-provisioned identity and its secret hash. Role is derived from the
// entry itself; an email appears in the directory at most once.
type CredentialDirectory interface {
	// Lookup returns the identity and secret hash registered for email.
	// ok is false when the email is not provisioned.
	Lookup(email string) (identity domain.Identity, secretHash string, ok bool)
}

// SecretVerifier is the opaque credential-check capability. Implementations
// decide the hashing scheme; callers never compare secrets directly.
type SecretVerifier interface {
	Hash(secret string) (string, error)
	Verify(hash, secret string) bool
}
