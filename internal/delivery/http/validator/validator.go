// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"register/internal/domain/cpf"
	domainerrors "register/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// customTags are registered on every validator built by New.
// The "cpf" tag accepts punctuated or bare CPF strings with valid check digits.
var customTags = map[string]validator.Func{
	"cpf": func(fl validator.FieldLevel) bool {
		return cpf.IsValid(fl.Field().String())
	},
}

// New returns a validator with the project's custom tags registered. It
// panics when a tag cannot be registered, since requests would otherwise
// skip that rule.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := registerTags(v, customTags); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: v}
}

func registerTags(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.Wrapf(err, "register validation tag %q", tag)
		}
	}

	return nil
}

// Validate runs struct validation. Failures become ErrValidationFailed, or
// ErrInvalidCPF when the only broken rule is the cpf tag.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	onlyCPF := true
	for _, fe := range fieldErrs {
		if fe.Tag() != "cpf" {
			onlyCPF = false
		}
		details = append(details, describe(fe))
	}

	if onlyCPF {
		return domainerrors.ErrInvalidCPF.WithDetails(strings.Join(details, "; "))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "cpf":
		return field + " is not a valid CPF"
	default:
		return field + " failed " + fe.Tag()
	}
}
