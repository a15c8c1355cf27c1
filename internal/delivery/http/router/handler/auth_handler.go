// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"register/internal/delivery/http/response"
	"register/internal/domain/entity"
	domainerrors "register/internal/domain/errors"
	"register/internal/domain/service"
	"register/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthHandler verifies credentials through the use case and then asks the
// token issuer to sign a token for the verified identity.
type AuthHandler struct {
	credentials usecase.CredentialUsecase
	issuer      service.TokenIssuer
	logger      *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Credentials usecase.CredentialUsecase
	Issuer      service.TokenIssuer
	Logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		credentials: params.Credentials,
		issuer:      params.Issuer,
		logger:      params.Logger,
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := h.credentials.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithToken(c, http.StatusOK, identity, "Login successful")
}

// Register handles the registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := h.credentials.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithToken(c, http.StatusCreated, identity, "Registration successful")
}

func (h *AuthHandler) respondWithToken(c echo.Context, status int, identity *entity.Identity, message string) error {
	issued, err := h.issuer.Issue(identity.ID, identity.Username, identity.Email)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	return response.Success(c, status, AuthResponse{
		ID:        identity.ID,
		Username:  identity.Username,
		Email:     identity.Email,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, message)
}

// bindAndValidate decodes the body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is malformed")
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}
