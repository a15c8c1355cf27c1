// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"register/internal/domain/entity"
)

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput defines the data required to create a credential.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// CredentialUsecase verifies and creates credentials. It returns a verified
// identity; signing a token for it is the caller's job.
type CredentialUsecase interface {
	// Login fails with ErrInvalidCredentials for both unknown usernames and
	// wrong passwords.
	Login(ctx context.Context, input LoginInput) (*entity.Identity, error)

	// Register fails with ErrDuplicateUsername before it checks the email,
	// then with ErrDuplicateEmail.
	Register(ctx context.Context, input RegisterInput) (*entity.Identity, error)
}
