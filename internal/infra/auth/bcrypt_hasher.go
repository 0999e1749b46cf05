package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ubishop/config"
	"ubishop/internal/domain/service"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// bcryptHasher implements PasswordHasher. Stored values that look like a bcrypt
// hash are compared with bcrypt, anything else as a trimmed clear-text secret.
type bcryptHasher struct {
	hashOnWrite bool
	cost        int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// New credentials are hashed only when auth.hashPasswords is enabled.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	hashOnWrite := false
	if cfg.Auth != nil {
		hashOnWrite = cfg.Auth.HashPasswords
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
	}

	return &bcryptHasher{
		hashOnWrite: hashOnWrite,
		cost:        cost,
	}
}

// Hash returns the trimmed secret, bcrypt-hashed when hashing is enabled.
func (h *bcryptHasher) Hash(password string) (string, error) {
	password = strings.TrimSpace(password)
	if !h.hashOnWrite {
		return password, nil
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext credential with the stored value.
func (h *bcryptHasher) Check(password, stored string) bool {
	password = strings.TrimSpace(password)
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(strings.TrimSpace(stored))) == 1
}

func isBcryptHash(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}
