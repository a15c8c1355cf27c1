package impl

import (
	"context"
	"testing"
	"time"

	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
	mockRepo "register/internal/mocks/repository"
	mockSvc "register/internal/mocks/service"
	"register/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type credentialServiceFixtures struct {
	service        *credentialService
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	now            time.Time
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewCredentialService(CredentialServiceParams{
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		Config:         newTestConfig(time.Second),
		Logger:         newDiscardLogger(),
	}).(*credentialService)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return credentialServiceFixtures{
		service:        svc,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		now:            now,
	}
}

func TestCredentialService_Login_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	stored := &entity.Credential{ID: 1, Username: "testuser", Email: "test@example.com", PasswordHash: "blob", Active: true}
	fx.credentialRepo.EXPECT().FindActiveByUsername(mock.Anything, "testuser").Return(stored, nil).Once()
	fx.hasher.EXPECT().Verify(mock.Anything, "123456", "blob").Return(true, nil).Once()

	identity, err := fx.service.Login(ctx, usecase.LoginInput{Username: "testuser", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
	assert.Equal(t, "testuser", identity.Username)
	assert.Equal(t, "test@example.com", identity.Email)
	assert.Equal(t, fx.now.Add(24*time.Hour), identity.ExpiresAt)
}

func TestCredentialService_Login_UnknownUser(t *testing.T) {
	fx := createTestCredentialService(t)

	fx.credentialRepo.EXPECT().FindActiveByUsername(mock.Anything, "ghost").Return(nil, repository.ErrCredentialNotFound).Once()

	identity, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "ghost", Password: "x"})

	require.Error(t, err)
	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_Login_WrongPasswordMatchesUnknownUser(t *testing.T) {
	fx := createTestCredentialService(t)

	stored := &entity.Credential{ID: 1, Username: "testuser", PasswordHash: "blob", Active: true}
	fx.credentialRepo.EXPECT().FindActiveByUsername(mock.Anything, "testuser").Return(stored, nil).Once()
	fx.hasher.EXPECT().Verify(mock.Anything, "wrong", "blob").Return(false, nil).Once()

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "testuser", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), appErr.Message())
}

func TestCredentialService_Login_StoreTimeoutIsTransient(t *testing.T) {
	fx := createTestCredentialService(t)
	fx.service.repoTimeout = 10 * time.Millisecond

	fx.credentialRepo.EXPECT().FindActiveByUsername(mock.Anything, "testuser").
		RunAndReturn(func(ctx context.Context, _ string) (*entity.Credential, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		}).Once()

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "testuser", Password: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTransientStore))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_Login_StoreErrorPropagates(t *testing.T) {
	fx := createTestCredentialService(t)

	fx.credentialRepo.EXPECT().FindActiveByUsername(mock.Anything, "testuser").
		Return(nil, domainerrors.ErrTransientStore).Once()

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "testuser", Password: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrTransientStore))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_Login_VerifyAbortedIsNotInvalidCredentials(t *testing.T) {
	fx := createTestCredentialService(t)

	stored := &entity.Credential{ID: 1, Username: "testuser", PasswordHash: "blob", Active: true}
	fx.credentialRepo.EXPECT().FindActiveByUsername(mock.Anything, "testuser").Return(stored, nil).Once()
	fx.hasher.EXPECT().Verify(mock.Anything, "123456", "blob").Return(false, context.Canceled).Once()

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Username: "testuser", Password: "123456"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(err, domainerrors.ErrTransientStore))
}

func TestCredentialService_Register_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	input := usecase.RegisterInput{Username: "testuser", Email: "test@example.com", Password: "123456"}

	fx.credentialRepo.EXPECT().ExistsByUsername(mock.Anything, "testuser").Return(false, nil).Once()
	fx.credentialRepo.EXPECT().ExistsByEmail(mock.Anything, "test@example.com").Return(false, nil).Once()
	fx.hasher.EXPECT().Hash(mock.Anything, "123456").Return("blob", nil).Once()
	fx.credentialRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Username == "testuser" &&
				c.Email == "test@example.com" &&
				c.PasswordHash == "blob" &&
				c.Active &&
				c.CreatedAt.Equal(fx.now) &&
				c.UpdatedAt.Equal(fx.now)
		})).
		RunAndReturn(func(_ context.Context, c *entity.Credential) error {
			c.ID = 7

			return nil
		}).Once()

	identity, err := fx.service.Register(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.ID)
	assert.Equal(t, "testuser", identity.Username)
	assert.Equal(t, fx.now.Add(24*time.Hour), identity.ExpiresAt)
}

func TestCredentialService_Register_DuplicateUsernameCheckedFirst(t *testing.T) {
	fx := createTestCredentialService(t)
	input := usecase.RegisterInput{Username: "testuser", Email: "taken@example.com", Password: "123456"}

	// Both are taken; only the username check may run.
	fx.credentialRepo.EXPECT().ExistsByUsername(mock.Anything, "testuser").Return(true, nil).Once()

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
	assert.False(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	fx.credentialRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
}

func TestCredentialService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestCredentialService(t)
	input := usecase.RegisterInput{Username: "fresh", Email: "taken@example.com", Password: "123456"}

	fx.credentialRepo.EXPECT().ExistsByUsername(mock.Anything, "fresh").Return(false, nil).Once()
	fx.credentialRepo.EXPECT().ExistsByEmail(mock.Anything, "taken@example.com").Return(true, nil).Once()

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestCredentialService_Register_StoreViolationIsAuthoritative(t *testing.T) {
	fx := createTestCredentialService(t)
	input := usecase.RegisterInput{Username: "testuser", Email: "test@example.com", Password: "123456"}

	fx.credentialRepo.EXPECT().ExistsByUsername(mock.Anything, "testuser").Return(false, nil).Once()
	fx.credentialRepo.EXPECT().ExistsByEmail(mock.Anything, "test@example.com").Return(false, nil).Once()
	fx.hasher.EXPECT().Hash(mock.Anything, "123456").Return("blob", nil).Once()
	fx.credentialRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrDuplicateUsername).Once()

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestCredentialService_Register_HashFailure(t *testing.T) {
	fx := createTestCredentialService(t)
	input := usecase.RegisterInput{Username: "testuser", Email: "test@example.com", Password: "123456"}

	fx.credentialRepo.EXPECT().ExistsByUsername(mock.Anything, "testuser").Return(false, nil).Once()
	fx.credentialRepo.EXPECT().ExistsByEmail(mock.Anything, "test@example.com").Return(false, nil).Once()
	fx.hasher.EXPECT().Hash(mock.Anything, "123456").Return("", errors.New("entropy exhausted")).Once()

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.credentialRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCredentialService_Register_HashSlotTimeoutIsTransient(t *testing.T) {
	fx := createTestCredentialService(t)
	input := usecase.RegisterInput{Username: "testuser", Email: "test@example.com", Password: "123456"}

	fx.credentialRepo.EXPECT().ExistsByUsername(mock.Anything, "testuser").Return(false, nil).Once()
	fx.credentialRepo.EXPECT().ExistsByEmail(mock.Anything, "test@example.com").Return(false, nil).Once()
	fx.hasher.EXPECT().Hash(mock.Anything, "123456").
		Return("", errors.Wrap(context.DeadlineExceeded, "wait for hashing slot")).Once()

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTransientStore))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.credentialRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
