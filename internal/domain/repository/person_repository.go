package repository

import (
	"context"
	"errors"

	"register/internal/domain/entity"
)

// ErrPersonNotFound is returned when a person is not found.
var ErrPersonNotFound = errors.New("person not found")

// PersonRepository defines the persistence operations for person records.
type PersonRepository interface {
	// Create persists a new person and fills in its ID and timestamps.
	Create(ctx context.Context, person *entity.Person) error

	// Update overwrites an existing person.
	Update(ctx context.Context, person *entity.Person) error

	// Delete removes a person by ID. Returns ErrPersonNotFound if nothing was deleted.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a person by ID.
	FindByID(ctx context.Context, id int64) (*entity.Person, error)

	// FindByCPF retrieves a person by normalized CPF.
	FindByCPF(ctx context.Context, cpf string) (*entity.Person, error)

	// List returns every person ordered by ID.
	List(ctx context.Context) ([]*entity.Person, error)
}
