package memory

import (
	"context"
	"maps"
	"slices"
	"time"

	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
)

// personRow keeps its own copy of the address so callers cannot mutate stored rows.
type personRow struct {
	person  entity.Person
	address *entity.Address
}

func newPersonRow(p *entity.Person) personRow {
	row := personRow{person: *p}
	row.person.Address = nil
	if p.Address != nil {
		addr := *p.Address
		row.address = &addr
	}

	return row
}

func (row personRow) toEntity() *entity.Person {
	p := row.person
	if row.address != nil {
		addr := *row.address
		p.Address = &addr
	}

	return &p
}

type personRepository struct {
	store *Store
	inTx  bool
}

func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	return repo.store.view(ctx, repo.inTx, func(s *state) error {
		if s.cpfTaken(person.CPF, 0) {
			return domainerrors.ErrDuplicateCPF
		}

		now := time.Now().UTC()
		if person.CreatedAt.IsZero() {
			person.CreatedAt = now
		}
		if person.UpdatedAt.IsZero() {
			person.UpdatedAt = now
		}

		s.nextPersonID++
		person.ID = s.nextPersonID
		s.persons[person.ID] = newPersonRow(person)

		return nil
	})
}

func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	return repo.store.view(ctx, repo.inTx, func(s *state) error {
		existing, ok := s.persons[person.ID]
		if !ok {
			return repository.ErrPersonNotFound
		}
		if s.cpfTaken(person.CPF, person.ID) {
			return domainerrors.ErrDuplicateCPF
		}

		row := newPersonRow(person)
		row.person.CreatedAt = existing.person.CreatedAt
		s.persons[person.ID] = row

		return nil
	})
}

func (repo *personRepository) Delete(ctx context.Context, id int64) error {
	return repo.store.view(ctx, repo.inTx, func(s *state) error {
		if _, ok := s.persons[id]; !ok {
			return repository.ErrPersonNotFound
		}
		delete(s.persons, id)

		return nil
	})
}

func (repo *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	var found *entity.Person
	err := repo.store.view(ctx, repo.inTx, func(s *state) error {
		row, ok := s.persons[id]
		if !ok {
			return repository.ErrPersonNotFound
		}
		found = row.toEntity()

		return nil
	})

	return found, err
}

func (repo *personRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Person, error) {
	var found *entity.Person
	err := repo.store.view(ctx, repo.inTx, func(s *state) error {
		for _, row := range s.persons {
			if row.person.CPF == cpf {
				found = row.toEntity()

				return nil
			}
		}

		return repository.ErrPersonNotFound
	})

	return found, err
}

func (repo *personRepository) List(ctx context.Context) ([]*entity.Person, error) {
	var persons []*entity.Person
	err := repo.store.view(ctx, repo.inTx, func(s *state) error {
		ids := slices.Sorted(maps.Keys(s.persons))
		persons = make([]*entity.Person, 0, len(ids))
		for _, id := range ids {
			persons = append(persons, s.persons[id].toEntity())
		}

		return nil
	})

	return persons, err
}

func (s *state) cpfTaken(cpf string, ownerID int64) bool {
	for id, row := range s.persons {
		if row.person.CPF == cpf && id != ownerID {
			return true
		}
	}

	return false
}
