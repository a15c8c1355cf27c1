// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"register/config"
	deliverycontext "register/internal/delivery/context"
	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
	"register/internal/domain/service"
	"register/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRepositoryTimeout = 3 * time.Second

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	repoTimeout    time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	repoTimeout := defaultRepositoryTimeout
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.RepositoryTimeout > 0 {
		repoTimeout = params.Config.Auth.RepositoryTimeout
	}

	return &credentialService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		repoTimeout:    repoTimeout,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies a username/password pair against the active credential.
func (srv *credentialService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Identity, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	var credential *entity.Credential
	err := srv.withRepoTimeout(ctx, func(ctx context.Context) error {
		var findErr error
		credential, findErr = srv.credentialRepo.FindActiveByUsername(ctx, input.Username)

		return findErr
	})
	if errors.Is(err, repository.ErrCredentialNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "unknown username"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load credential", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(asTransient(err), "failed to find credential")
	}

	ok, err := srv.hasher.Verify(ctx, input.Password, credential.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Password verification aborted", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTransientStore.WithDetails(err.Error()), "failed to verify password")
	}
	if !ok {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("credentialID", credential.ID))

	return entity.IdentityOf(credential, srv.now().Add(service.TokenValidity)), nil
}

// Register creates an active credential after the uniqueness pre-checks.
// The storage unique indexes stay authoritative for concurrent registrations.
func (srv *credentialService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Identity, error) {
	srv.log(ctx).Debug("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	if err := srv.ensureAvailable(ctx, input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		if isContextError(err) {
			return nil, errors.Wrap(asTransient(err), "failed to hash password")
		}

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password")
	}

	now := srv.now().UTC()
	credential := &entity.Credential{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.withRepoTimeout(ctx, func(ctx context.Context) error {
		return srv.credentialRepo.Create(ctx, credential)
	}); err != nil {
		srv.log(ctx).Warn("Failed to create credential", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(asTransient(err), "failed to create credential")
	}

	srv.log(ctx).Info("Credential registered", slog.Int64("credentialID", credential.ID))

	return entity.IdentityOf(credential, now.Add(service.TokenValidity)), nil
}

// ensureAvailable checks the username strictly before the email.
func (srv *credentialService) ensureAvailable(ctx context.Context, input usecase.RegisterInput) error {
	var taken bool
	if err := srv.withRepoTimeout(ctx, func(ctx context.Context) error {
		var existsErr error
		taken, existsErr = srv.credentialRepo.ExistsByUsername(ctx, input.Username)

		return existsErr
	}); err != nil {
		return errors.Wrap(asTransient(err), "failed to check username")
	}
	if taken {
		srv.log(ctx).Warn("Registration rejected", slog.String("username", input.Username), slog.String("reason", "username taken"))

		return domainerrors.ErrDuplicateUsername.WrapMessage("registration failed")
	}

	if err := srv.withRepoTimeout(ctx, func(ctx context.Context) error {
		var existsErr error
		taken, existsErr = srv.credentialRepo.ExistsByEmail(ctx, input.Email)

		return existsErr
	}); err != nil {
		return errors.Wrap(asTransient(err), "failed to check email")
	}
	if taken {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", input.Email), slog.String("reason", "email taken"))

		return domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
	}

	return nil
}

func (srv *credentialService) withRepoTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, srv.repoTimeout)
	defer cancel()

	return fn(ctx)
}

// asTransient turns context expiry into ErrTransientStore and leaves every other error untouched.
func asTransient(err error) error {
	if isContextError(err) {
		return domainerrors.ErrTransientStore.WithDetails(err.Error())
	}

	return err
}

func isContextError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
