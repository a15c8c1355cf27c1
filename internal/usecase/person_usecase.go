package usecase

import (
	"context"
	"time"

	"register/internal/domain/entity"
)

// PersonInput carries the writable fields of a person record.
type PersonInput struct {
	Name        string
	Gender      string
	Email       string
	BirthDate   time.Time
	Birthplace  string
	Nationality string
	CPF         string
	Address     *entity.Address
}

// PersonUsecase defines the person record operations. Every write is gated
// by CPF validation and CPF uniqueness.
type PersonUsecase interface {
	Create(ctx context.Context, input PersonInput) (*entity.Person, error)
	Update(ctx context.Context, id int64, input PersonInput) (*entity.Person, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*entity.Person, error)
	List(ctx context.Context) ([]*entity.Person, error)
}
