// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential hashing and verification.
type PasswordHasher interface {
	// Hash prepares a plaintext credential for storage.
	Hash(password string) (string, error)

	// Check compares a plaintext credential with the stored value.
	Check(password, stored string) bool
}
