package auth

import "golang.org/x/crypto/bcrypt"

// Verifier checks a submitted password against a stored credential. The
// comparison is one-way: the stored hash is never reversed and never
// rehashed at verification time.
type Verifier interface {
	Verify(hashedPassword, password string) error
}

// BcryptVerifier verifies passwords against stored bcrypt hashes.
type BcryptVerifier struct{}

// Verify returns nil when password matches the stored hash.
func (BcryptVerifier) Verify(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// HashPassword hashes a plaintext password for storage. Only used by seed
// tooling and tests; the service itself never writes user records.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
