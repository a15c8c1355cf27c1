package impl

import (
	"context"
	"testing"
	"time"

	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/repository"
	mockRepo "register/internal/mocks/repository"
	"register/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type personServiceFixtures struct {
	service    *personService
	txManager  *mockRepo.MockTransactionManager
	personRepo *mockRepo.MockPersonRepository
	now        time.Time
}

func createTestPersonService(t *testing.T) personServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	personRepo := mockRepo.NewMockPersonRepository(t)

	svc := NewPersonService(PersonServiceParams{
		TxManager:  txManager,
		PersonRepo: personRepo,
		Logger:     newDiscardLogger(),
	}).(*personService)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return personServiceFixtures{service: svc, txManager: txManager, personRepo: personRepo, now: now}
}

// runInTx makes the mocked transaction manager call fn with a factory handing out repo.
func runInTx(t *testing.T, txManager *mockRepo.MockTransactionManager, repo repository.PersonRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PersonRepo().Return(repo).Maybe()

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
}

func validPersonInput() usecase.PersonInput {
	return usecase.PersonInput{
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		BirthDate: time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC),
		CPF:       "209.941.790-30",
		Address:   &entity.Address{City: "Recife", State: "PE"},
	}
}

func TestPersonService_Create_NormalizesCPF(t *testing.T) {
	fx := createTestPersonService(t)

	fx.personRepo.EXPECT().FindByCPF(mock.Anything, "20994179030").Return(nil, repository.ErrPersonNotFound).Once()
	fx.personRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(p *entity.Person) bool {
			return p.CPF == "20994179030" && p.Name == "Maria Silva" && p.CreatedAt.Equal(fx.now)
		})).
		RunAndReturn(func(_ context.Context, p *entity.Person) error {
			p.ID = 3

			return nil
		}).Once()

	person, err := fx.service.Create(context.Background(), validPersonInput())

	require.NoError(t, err)
	assert.Equal(t, int64(3), person.ID)
	assert.Equal(t, "Recife", person.Address.City)
}

func TestPersonService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.PersonInput)
		wantErr error
	}{
		{name: "missing name", mutate: func(in *usecase.PersonInput) { in.Name = "  " }, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing cpf", mutate: func(in *usecase.PersonInput) { in.CPF = "" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "repeated digits", mutate: func(in *usecase.PersonInput) { in.CPF = "111.111.111-11" }, wantErr: domainerrors.ErrInvalidCPF},
		{name: "bad check digit", mutate: func(in *usecase.PersonInput) { in.CPF = "123.456.789-00" }, wantErr: domainerrors.ErrInvalidCPF},
		{name: "missing birth date", mutate: func(in *usecase.PersonInput) { in.BirthDate = time.Time{} }, wantErr: domainerrors.ErrValidationFailed},
		{name: "future birth date", mutate: func(in *usecase.PersonInput) { in.BirthDate = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) }, wantErr: domainerrors.ErrValidationFailed},
		{name: "malformed email", mutate: func(in *usecase.PersonInput) { in.Email = "not-an-email" }, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPersonService(t)
			input := validPersonInput()
			tt.mutate(&input)

			person, err := fx.service.Create(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, person)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestPersonService_Create_DuplicateCPF(t *testing.T) {
	fx := createTestPersonService(t)

	fx.personRepo.EXPECT().FindByCPF(mock.Anything, "20994179030").Return(&entity.Person{ID: 9}, nil).Once()

	_, err := fx.service.Create(context.Background(), validPersonInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCPF))
}

func TestPersonService_Update_KeepsOwnCPF(t *testing.T) {
	fx := createTestPersonService(t)
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	runInTx(t, fx.txManager, fx.personRepo)
	fx.personRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.Person{ID: 5, CreatedAt: created}, nil).Once()
	fx.personRepo.EXPECT().FindByCPF(mock.Anything, "20994179030").Return(&entity.Person{ID: 5}, nil).Once()
	fx.personRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(p *entity.Person) bool {
			return p.ID == 5 && p.CreatedAt.Equal(created) && p.UpdatedAt.Equal(fx.now)
		})).
		Return(nil).Once()

	person, err := fx.service.Update(context.Background(), 5, validPersonInput())

	require.NoError(t, err)
	assert.Equal(t, int64(5), person.ID)
}

func TestPersonService_Update_CPFOwnedByAnother(t *testing.T) {
	fx := createTestPersonService(t)

	runInTx(t, fx.txManager, fx.personRepo)
	fx.personRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.Person{ID: 5}, nil).Once()
	fx.personRepo.EXPECT().FindByCPF(mock.Anything, "20994179030").Return(&entity.Person{ID: 6}, nil).Once()

	_, err := fx.service.Update(context.Background(), 5, validPersonInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCPF))
	fx.personRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPersonService_Update_NotFound(t *testing.T) {
	fx := createTestPersonService(t)

	runInTx(t, fx.txManager, fx.personRepo)
	fx.personRepo.EXPECT().FindByID(mock.Anything, int64(404)).Return(nil, repository.ErrPersonNotFound).Once()

	_, err := fx.service.Update(context.Background(), 404, validPersonInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_DeleteAndGet_NotFound(t *testing.T) {
	fx := createTestPersonService(t)

	fx.personRepo.EXPECT().Delete(mock.Anything, int64(1)).Return(repository.ErrPersonNotFound).Once()
	fx.personRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(nil, repository.ErrPersonNotFound).Once()

	err := fx.service.Delete(context.Background(), 1)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))

	_, err = fx.service.Get(context.Background(), 2)
	assert.True(t, errors.Is(err, domainerrors.ErrPersonNotFound))
}

func TestPersonService_List(t *testing.T) {
	fx := createTestPersonService(t)

	fx.personRepo.EXPECT().List(mock.Anything).Return([]*entity.Person{{ID: 1}, {ID: 2}}, nil).Once()

	persons, err := fx.service.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, persons, 2)
}
