package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	domainerrors "register/internal/domain/errors"
	"register/internal/infra/auth"
	"register/internal/infra/persistence/memory"
	"register/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialService_ConcurrentRegisterSameUsername(t *testing.T) {
	cfg := newTestConfig(5 * time.Second)
	store := memory.NewStore()

	svc := NewCredentialService(CredentialServiceParams{
		CredentialRepo: store.CredentialRepo(),
		Hasher:         auth.NewPBKDF2Hasher(cfg),
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	const attempts = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.Register(context.Background(), usecase.RegisterInput{
				Username: "racer",
				Email:    "racer@example.com",
				Password: "123456",
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrDuplicateUsername):
				duplicates++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, duplicates)

	identity, err := svc.Login(context.Background(), usecase.LoginInput{Username: "racer", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "racer", identity.Username)
}
