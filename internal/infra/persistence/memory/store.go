// Package memory is an in-process implementation of the repositories. It
// enforces the same uniqueness rules as the PostgreSQL schema and is used
// when no database is configured outside production.
package memory

import (
	"context"
	"maps"
	"sync"

	"register/internal/domain/repository"
)

// Store holds credentials and persons behind a single mutex.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	credentials      map[int64]credentialRow
	persons          map[int64]personRow
	nextCredentialID int64
	nextPersonID     int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

func newState() *state {
	return &state{
		credentials: make(map[int64]credentialRow),
		persons:     make(map[int64]personRow),
	}
}

func (s *state) clone() *state {
	return &state{
		credentials:      maps.Clone(s.credentials),
		persons:          maps.Clone(s.persons),
		nextCredentialID: s.nextCredentialID,
		nextPersonID:     s.nextPersonID,
	}
}

// view runs fn against the store state. Repositories bound to a transaction
// already hold the lock.
func (s *Store) view(ctx context.Context, inTx bool, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	return fn(s.state)
}

// CredentialRepo returns a credential repository over the store.
func (s *Store) CredentialRepo() repository.CredentialRepository {
	return &credentialRepository{store: s}
}

// PersonRepo returns a person repository over the store.
func (s *Store) PersonRepo() repository.PersonRepository {
	return &personRepository{store: s}
}

// TransactionManager returns a transaction manager over the store.
func (s *Store) TransactionManager() repository.TransactionManager {
	return &transactionManager{store: s}
}

type transactionManager struct {
	store *Store
}

type txFactory struct {
	store *Store
}

func (f *txFactory) PersonRepo() repository.PersonRepository {
	return &personRepository{store: f.store, inTx: true}
}

// Execute holds the store lock for the whole of fn and restores the previous
// state when fn fails. Repositories obtained outside fn must not be used
// inside it.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := tm.store
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
		if err != nil {
			s.state = snapshot
		}
	}()

	return fn(&txFactory{store: s})
}
