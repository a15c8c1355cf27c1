// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
	"register/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindActiveByUsername reads from the primary so a credential registered a
// moment ago can log in before replicas catch up.
func (repo *credentialRepository) FindActiveByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	var m model.CredentialModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("username = ? AND active = ?", username, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, translateError(err, nil, "find credential by username")
	}

	return toCredentialDomain(&m), nil
}

// ExistsByUsername checks every credential, active or not.
func (repo *credentialRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "username = ?", username)
}

// ExistsByEmail checks every credential, active or not.
func (repo *credentialRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

func (repo *credentialRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.CredentialModel{}).
		Where(query, arg).
		Count(&count).Error
	if err != nil {
		return false, translateError(err, nil, "check credential existence")
	}

	return count > 0, nil
}

// Create inserts the credential; the unique indexes decide concurrent registrations.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	m := fromCredentialDomain(credential)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, domainerrors.ErrDuplicateUsername, "create credential")
	}

	credential.ID = m.ID
	credential.CreatedAt = m.CreatedAt
	credential.UpdatedAt = m.UpdatedAt

	return nil
}

func toCredentialDomain(m *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCredentialDomain(c *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           c.ID,
		Username:     c.Username,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
