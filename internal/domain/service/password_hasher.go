// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key-derivation function, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(ctx context.Context, password string) (string, error)

	// Verify compares a plaintext password with a stored hash in constant time.
	// Malformed hashes yield false with a nil error; an error is only returned
	// when ctx ends before the comparison could run.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
