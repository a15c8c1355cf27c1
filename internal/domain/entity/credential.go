// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Credential is a stored login identity. Username and Email are each unique
// across all records; the record is never deleted, only deactivated.
type Credential struct {
	ID           int64     // Store-assigned identifier, used as the token subject.
	Username     string    // Login identifier.
	Email        string    // Contact address.
	PasswordHash string    // base64(salt ‖ derived key), see infra/auth.
	Active       bool      // Inactive credentials cannot log in.
	CreatedAt    time.Time // Set once on registration.
	UpdatedAt    time.Time
}

// Identity is the verified view of a credential handed to the boundary layer.
type Identity struct {
	ID        int64
	Username  string
	Email     string
	ExpiresAt time.Time // Expiry a token issued now would carry.
}

// IdentityOf projects a credential onto the fields that may leave the core.
func IdentityOf(c *Credential, expiresAt time.Time) *Identity {
	return &Identity{
		ID:        c.ID,
		Username:  c.Username,
		Email:     c.Email,
		ExpiresAt: expiresAt,
	}
}
