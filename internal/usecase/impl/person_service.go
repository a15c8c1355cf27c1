package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "register/internal/delivery/context"
	"register/internal/domain/cpf"
	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
	"register/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// personService implements the PersonUsecase interface.
type personService struct {
	txManager  repository.TransactionManager
	personRepo repository.PersonRepository
	validate   *validator.Validate
	now        func() time.Time
	logger     *slog.Logger
}

// PersonServiceParams holds dependencies for PersonService, injected by Fx.
type PersonServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	PersonRepo repository.PersonRepository
	Logger     *slog.Logger
}

// NewPersonService is the constructor for personService.
func NewPersonService(params PersonServiceParams) usecase.PersonUsecase {
	return &personService{
		txManager:  params.TxManager,
		personRepo: params.PersonRepo,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *personService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates input and stores a new person with a normalized CPF.
func (srv *personService) Create(ctx context.Context, input usecase.PersonInput) (*entity.Person, error) {
	person, err := srv.buildPerson(input)
	if err != nil {
		return nil, err
	}

	if err := srv.ensureCPFFree(ctx, srv.personRepo, person.CPF, 0); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	person.CreatedAt = now
	person.UpdatedAt = now

	if err := srv.personRepo.Create(ctx, person); err != nil {
		return nil, errors.Wrap(err, "failed to create person")
	}

	srv.log(ctx).Info("Person created", slog.Int64("personID", person.ID))

	return person, nil
}

// Update replaces the writable fields of an existing person. The CPF check
// and the write share one transaction.
func (srv *personService) Update(ctx context.Context, id int64, input usecase.PersonInput) (*entity.Person, error) {
	person, err := srv.buildPerson(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		personRepo := factory.PersonRepo()

		existing, findErr := personRepo.FindByID(ctx, id)
		if findErr != nil {
			return mapPersonNotFound(findErr)
		}

		if cpfErr := srv.ensureCPFFree(ctx, personRepo, person.CPF, id); cpfErr != nil {
			return cpfErr
		}

		person.ID = existing.ID
		person.CreatedAt = existing.CreatedAt
		person.UpdatedAt = srv.now().UTC()

		return personRepo.Update(ctx, person)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update person", slog.Int64("personID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update person")
	}

	return person, nil
}

// Delete removes a person by ID.
func (srv *personService) Delete(ctx context.Context, id int64) error {
	if err := srv.personRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(mapPersonNotFound(err), "failed to delete person")
	}

	srv.log(ctx).Info("Person deleted", slog.Int64("personID", id))

	return nil
}

// Get returns a single person.
func (srv *personService) Get(ctx context.Context, id int64) (*entity.Person, error) {
	person, err := srv.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(mapPersonNotFound(err), "failed to get person")
	}

	return person, nil
}

// List returns every person.
func (srv *personService) List(ctx context.Context) ([]*entity.Person, error) {
	persons, err := srv.personRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}

	return persons, nil
}

// buildPerson validates input and returns the entity with its CPF normalized.
func (srv *personService) buildPerson(input usecase.PersonInput) (*entity.Person, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	if strings.TrimSpace(input.CPF) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cpf is required")
	}
	if !cpf.IsValid(input.CPF) {
		return nil, domainerrors.ErrInvalidCPF
	}

	if input.BirthDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("birth date is required")
	}
	if input.BirthDate.After(srv.now()) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("birth date cannot be in the future")
	}

	email := strings.TrimSpace(input.Email)
	if email != "" {
		if err := srv.validate.Var(email, "email"); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("email is malformed")
		}
	}

	return &entity.Person{
		Name:        name,
		Gender:      strings.TrimSpace(input.Gender),
		Email:       email,
		BirthDate:   input.BirthDate,
		Birthplace:  strings.TrimSpace(input.Birthplace),
		Nationality: strings.TrimSpace(input.Nationality),
		CPF:         cpf.Normalize(input.CPF),
		Address:     input.Address,
	}, nil
}

// ensureCPFFree fails with ErrDuplicateCPF when the CPF belongs to a person other than ownerID.
func (srv *personService) ensureCPFFree(ctx context.Context, repo repository.PersonRepository, normalized string, ownerID int64) error {
	holder, err := repo.FindByCPF(ctx, normalized)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check cpf")
	}
	if holder.ID != ownerID {
		srv.log(ctx).Warn("CPF already registered", slog.Int64("holderID", holder.ID))

		return domainerrors.ErrDuplicateCPF
	}

	return nil
}

func mapPersonNotFound(err error) error {
	if errors.Is(err, repository.ErrPersonNotFound) {
		return domainerrors.ErrPersonNotFound
	}

	return err
}
