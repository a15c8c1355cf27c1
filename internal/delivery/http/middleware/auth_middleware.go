package middleware

import (
	"strconv"
	"strings"

	deliverycontext "register/internal/delivery/context"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	validator service.TokenValidator
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(validator service.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// Authenticate validates the bearer token and stores the caller on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must use the Bearer scheme")
		}

		claims, err := m.validator.Validate(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return err
		}

		subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WithDetails("token subject is not a credential id")
		}

		deliverycontext.SetSubject(c, deliverycontext.Subject{
			ID:       subjectID,
			Username: claims.Name,
			Email:    claims.Email,
		})

		return next(c)
	}
}
