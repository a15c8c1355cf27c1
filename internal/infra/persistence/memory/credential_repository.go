package memory

import (
	"context"
	"time"

	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
)

type credentialRow = entity.Credential

type credentialRepository struct {
	store *Store
	inTx  bool
}

func (repo *credentialRepository) FindActiveByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var found *entity.Credential
	err := repo.store.view(ctx, repo.inTx, func(s *state) error {
		for _, row := range s.credentials {
			if row.Username == username && row.Active {
				c := row
				found = &c

				return nil
			}
		}

		return repository.ErrCredentialNotFound
	})

	return found, err
}

func (repo *credentialRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := repo.store.view(ctx, repo.inTx, func(s *state) error {
		exists = s.credentialWhere(func(c *credentialRow) bool { return c.Username == username })

		return nil
	})

	return exists, err
}

func (repo *credentialRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := repo.store.view(ctx, repo.inTx, func(s *state) error {
		exists = s.credentialWhere(func(c *credentialRow) bool { return c.Email == email })

		return nil
	})

	return exists, err
}

// Create enforces username then email uniqueness, mirroring the unique indexes.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	return repo.store.view(ctx, repo.inTx, func(s *state) error {
		if s.credentialWhere(func(c *credentialRow) bool { return c.Username == credential.Username }) {
			return domainerrors.ErrDuplicateUsername
		}
		if s.credentialWhere(func(c *credentialRow) bool { return c.Email == credential.Email }) {
			return domainerrors.ErrDuplicateEmail
		}

		now := time.Now().UTC()
		if credential.CreatedAt.IsZero() {
			credential.CreatedAt = now
		}
		if credential.UpdatedAt.IsZero() {
			credential.UpdatedAt = now
		}

		s.nextCredentialID++
		credential.ID = s.nextCredentialID
		s.credentials[credential.ID] = *credential

		return nil
	})
}

func (s *state) credentialWhere(match func(*credentialRow) bool) bool {
	for _, row := range s.credentials {
		if match(&row) {
			return true
		}
	}

	return false
}
