// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher abstracts the one-way hashing of account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
