package postgres

import (
	"context"

	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
	"register/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// personRepository implements the domain.PersonRepository interface using GORM.
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	m := fromPersonDomain(person)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err, domainerrors.ErrDuplicateCPF, "create person")
	}

	person.ID = m.ID
	person.CreatedAt = m.CreatedAt
	person.UpdatedAt = m.UpdatedAt

	return nil
}

// Update overwrites every column, including zero values.
func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	m := fromPersonDomain(person)
	result := repo.db.WithContext(ctx).
		Model(&model.PersonModel{}).
		Where("id = ?", person.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return translateError(result.Error, domainerrors.ErrDuplicateCPF, "update person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

func (repo *personRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PersonModel{}, id)
	if result.Error != nil {
		return translateError(result.Error, nil, "delete person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

func (repo *personRepository) FindByID(ctx context.Context, id int64) (*entity.Person, error) {
	return repo.findOne(ctx, "find person by id", "id = ?", id)
}

func (repo *personRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Person, error) {
	return repo.findOne(ctx, "find person by cpf", "cpf = ?", cpf)
}

func (repo *personRepository) findOne(ctx context.Context, op, query string, arg any) (*entity.Person, error) {
	var m model.PersonModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, translateError(err, nil, op)
	}

	return toPersonDomain(&m), nil
}

func (repo *personRepository) List(ctx context.Context) ([]*entity.Person, error) {
	var models []model.PersonModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, translateError(err, nil, "list persons")
	}

	persons := make([]*entity.Person, 0, len(models))
	for i := range models {
		persons = append(persons, toPersonDomain(&models[i]))
	}

	return persons, nil
}

func toPersonDomain(m *model.PersonModel) *entity.Person {
	person := &entity.Person{
		ID:          m.ID,
		Name:        m.Name,
		Gender:      m.Gender,
		Email:       m.Email,
		BirthDate:   m.BirthDate,
		Birthplace:  m.Birthplace,
		Nationality: m.Nationality,
		CPF:         m.CPF,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.HasAddress {
		person.Address = &entity.Address{
			Street:  m.Address.Street,
			Number:  m.Address.Number,
			City:    m.Address.City,
			State:   m.Address.State,
			ZipCode: m.Address.ZipCode,
		}
	}

	return person
}

func fromPersonDomain(p *entity.Person) *model.PersonModel {
	m := &model.PersonModel{
		ID:          p.ID,
		Name:        p.Name,
		Gender:      p.Gender,
		Email:       p.Email,
		BirthDate:   p.BirthDate,
		Birthplace:  p.Birthplace,
		Nationality: p.Nationality,
		CPF:         p.CPF,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Address != nil {
		m.HasAddress = true
		m.Address = model.AddressColumns{
			Street:  p.Address.Street,
			Number:  p.Address.Number,
			City:    p.Address.City,
			State:   p.Address.State,
			ZipCode: p.Address.ZipCode,
		}
	}

	return m
}
