package directory

import "golang.org/x/crypto/bcrypt"

// BcryptVerifier implements ports.SecretVerifier with salted bcrypt hashes.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier returns a verifier using the given cost. Costs outside
// bcrypt's supported range fall back to the library default.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (v *BcryptVerifier) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v *BcryptVerifier) Verify(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
