package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_UniqueConstraints(t *testing.T) {
	store := NewStore()
	repo := store.CredentialRepo()
	ctx := context.Background()

	first := &entity.Credential{Username: "alice", Email: "alice@example.com", PasswordHash: "h", Active: true}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	err := repo.Create(ctx, &entity.Credential{Username: "alice", Email: "other@example.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))

	err = repo.Create(ctx, &entity.Credential{Username: "bob", Email: "alice@example.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	exists, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCredentialRepository_InactiveIsHiddenFromLogin(t *testing.T) {
	store := NewStore()
	repo := store.CredentialRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Credential{Username: "dormant", Email: "d@example.com", Active: false}))

	_, err := repo.FindActiveByUsername(ctx, "dormant")
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	exists, err := repo.ExistsByUsername(ctx, "dormant")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCredentialRepository_ConcurrentCreateAdmitsOne(t *testing.T) {
	store := NewStore()
	repo := store.CredentialRepo()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := repo.Create(context.Background(), &entity.Credential{Username: "race", Email: "race@example.com", Active: true})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestPersonRepository_CRUD(t *testing.T) {
	store := NewStore()
	repo := store.PersonRepo()
	ctx := context.Background()

	person := &entity.Person{
		Name:      "Maria",
		CPF:       "20994179030",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Address:   &entity.Address{City: "Recife"},
	}
	require.NoError(t, repo.Create(ctx, person))

	// Stored rows are isolated from the caller's pointer.
	person.Address.City = "changed"
	got, err := repo.FindByCPF(ctx, "20994179030")
	require.NoError(t, err)
	assert.Equal(t, "Recife", got.Address.City)

	err = repo.Create(ctx, &entity.Person{Name: "Other", CPF: "20994179030"})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCPF))

	got.Name = "Maria Silva"
	require.NoError(t, repo.Update(ctx, got))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Maria Silva", list[0].Name)

	require.NoError(t, repo.Delete(ctx, got.ID))
	assert.ErrorIs(t, repo.Delete(ctx, got.ID), repository.ErrPersonNotFound)

	_, err = repo.FindByID(ctx, got.ID)
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	tm := store.TransactionManager()
	ctx := context.Background()

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.PersonRepo().Create(ctx, &entity.Person{Name: "Temp", CPF: "52998224725"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.PersonRepo().FindByCPF(ctx, "52998224725")
	assert.ErrorIs(t, err, repository.ErrPersonNotFound)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.PersonRepo().Create(ctx, &entity.Person{Name: "Kept", CPF: "52998224725"})
	})
	require.NoError(t, err)

	_, err = store.PersonRepo().FindByCPF(ctx, "52998224725")
	assert.NoError(t, err)
}

func TestStore_CancelledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.CredentialRepo().ExistsByUsername(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}
