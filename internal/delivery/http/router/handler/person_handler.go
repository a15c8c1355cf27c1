package handler

import (
	"net/http"
	"strconv"
	"time"

	"register/internal/delivery/http/response"
	"register/internal/domain/cpf"
	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressPayload is the optional postal address on a person.
type AddressPayload struct {
	Street  string `json:"street" validate:"max=200"`
	Number  string `json:"number" validate:"max=20"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=50"`
	ZipCode string `json:"zipCode" validate:"max=20"`
}

// PersonRequest is the body of person create and update requests.
// BirthDate uses the YYYY-MM-DD layout.
type PersonRequest struct {
	Name        string          `json:"name" validate:"required,max=150"`
	Gender      string          `json:"gender" validate:"max=20"`
	Email       string          `json:"email" validate:"omitempty,email"`
	BirthDate   string          `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Birthplace  string          `json:"birthplace" validate:"max=100"`
	Nationality string          `json:"nationality" validate:"max=100"`
	CPF         string          `json:"cpf" validate:"required,cpf"`
	Address     *AddressPayload `json:"address,omitempty"`
}

// PersonResponse is the JSON view of a person.
type PersonResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Gender      string          `json:"gender,omitempty"`
	Email       string          `json:"email,omitempty"`
	BirthDate   string          `json:"birthDate"`
	Birthplace  string          `json:"birthplace,omitempty"`
	Nationality string          `json:"nationality,omitempty"`
	CPF         string          `json:"cpf"`
	Address     *AddressPayload `json:"address,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PersonHandler exposes person records.
type PersonHandler struct {
	persons usecase.PersonUsecase
}

// NewPersonHandler is the constructor for PersonHandler.
func NewPersonHandler(persons usecase.PersonUsecase) *PersonHandler {
	return &PersonHandler{persons: persons}
}

// Create handles POST /api/persons.
func (h *PersonHandler) Create(c echo.Context) error {
	input, err := bindPerson(c)
	if err != nil {
		return err
	}

	person, err := h.persons.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPersonResponse(person), "Person created")
}

// Update handles PUT /api/persons/:id.
func (h *PersonHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	input, err := bindPerson(c)
	if err != nil {
		return err
	}

	person, err := h.persons.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPersonResponse(person), "Person updated")
}

// Delete handles DELETE /api/persons/:id.
func (h *PersonHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.persons.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Get handles GET /api/persons/:id.
func (h *PersonHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	person, err := h.persons.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPersonResponse(person), "")
}

// List handles GET /api/persons.
func (h *PersonHandler) List(c echo.Context) error {
	persons, err := h.persons.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}

func bindPerson(c echo.Context) (usecase.PersonInput, error) {
	var req PersonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return usecase.PersonInput{}, err
	}

	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return usecase.PersonInput{}, domainerrors.ErrValidationFailed.WithDetails("birthDate must use YYYY-MM-DD")
	}

	input := usecase.PersonInput{
		Name:        req.Name,
		Gender:      req.Gender,
		Email:       req.Email,
		BirthDate:   birthDate,
		Birthplace:  req.Birthplace,
		Nationality: req.Nationality,
		CPF:         req.CPF,
	}
	if req.Address != nil {
		input.Address = &entity.Address{
			Street:  req.Address.Street,
			Number:  req.Address.Number,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		}
	}

	return input, nil
}

func toPersonResponse(p *entity.Person) PersonResponse {
	out := PersonResponse{
		ID:          p.ID,
		Name:        p.Name,
		Gender:      p.Gender,
		Email:       p.Email,
		BirthDate:   p.BirthDate.Format(time.DateOnly),
		Birthplace:  p.Birthplace,
		Nationality: p.Nationality,
		CPF:         cpf.Format(p.CPF),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Address != nil {
		out.Address = &AddressPayload{
			Street:  p.Address.Street,
			Number:  p.Address.Number,
			City:    p.Address.City,
			State:   p.Address.State,
			ZipCode: p.Address.ZipCode,
		}
	}

	return out
}
