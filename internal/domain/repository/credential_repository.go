// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"register/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no active credential matches a lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the persistence operations the credential core depends on.
// Implementations must enforce username and email uniqueness at the storage level and
// report violations as domainerrors.ErrDuplicateUsername / ErrDuplicateEmail; timeouts
// and unavailability are reported as domainerrors.ErrTransientStore.
type CredentialRepository interface {
	// FindActiveByUsername retrieves an active credential by username.
	FindActiveByUsername(ctx context.Context, username string) (*entity.Credential, error)

	// ExistsByUsername reports whether any credential, active or not, uses username.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether any credential, active or not, uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new credential and fills in its ID.
	Create(ctx context.Context, credential *entity.Credential) error
}
