package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"register/config"
	"register/internal/delivery/http/middleware"
	"register/internal/delivery/http/router"
	"register/internal/delivery/http/router/handler"
	"register/internal/infra/auth"
	"register/internal/infra/persistence/memory"
	"register/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Token: config.TokenConfig{SecretKey: "S", Issuer: "RegisterAPI", Audience: "RegisterAPI"},
		Auth:  &config.AuthConfig{MaxConcurrentHashes: 2},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()

	jwtService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	credentials := impl.NewCredentialService(impl.CredentialServiceParams{
		CredentialRepo: store.CredentialRepo(),
		Hasher:         auth.NewPBKDF2Hasher(cfg),
		Config:         cfg,
		Logger:         logger,
	})
	persons := impl.NewPersonService(impl.PersonServiceParams{
		TxManager:  store.TransactionManager(),
		PersonRepo: store.PersonRepo(),
		Logger:     logger,
	})

	return newEcho(cfg, logger, middleware.NewErrorMiddleware(logger), router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{Credentials: credentials, Issuer: jwtService, Logger: logger}),
		PersonHandler:  handler.NewPersonHandler(persons),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	})
}

func do(t *testing.T, e *echo.Echo, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestServer_AuthFlow(t *testing.T) {
	e := newTestEcho(t)

	rec, env := do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"testuser","email":"test@example.com","password":"123456"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var registered handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &registered))
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, "testuser", registered.Username)
	assert.NotEmpty(t, registered.Token)

	rec, env = do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"testuser","email":"other@example.com","password":"123456"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_USERNAME", env.Error.Code)

	rec, env = do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"another","email":"test@example.com","password":"123456"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_EMAIL", env.Error.Code)

	rec, wrongPassword := do(t, e, http.MethodPost, "/api/auth/login", `{"username":"testuser","password":"nope!!"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, unknownUser := do(t, e, http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"123456"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, wrongPassword.Message, unknownUser.Message)
	assert.Equal(t, wrongPassword.Error.Code, unknownUser.Error.Code)

	rec, env = do(t, e, http.MethodPost, "/api/auth/login", `{"username":"testuser","password":"123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var loggedIn handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &loggedIn))
	assert.Equal(t, "test@example.com", loggedIn.Email)
	assert.NotEqual(t, registered.Token, loggedIn.Token)
}

func TestServer_RegisterValidation(t *testing.T) {
	e := newTestEcho(t)

	tests := map[string]string{
		"short username": `{"username":"ab","email":"a@example.com","password":"123456"}`,
		"bad email":      `{"username":"abc","email":"nope","password":"123456"}`,
		"short password": `{"username":"abc","email":"a@example.com","password":"12345"}`,
		"malformed body": `{"username":`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec, env := do(t, e, http.MethodPost, "/api/auth/register", body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestServer_PersonsRequireToken(t *testing.T) {
	e := newTestEcho(t)

	rec, env := do(t, e, http.MethodGet, "/api/persons", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", env.Error.Code)

	rec, _ = do(t, e, http.MethodGet, "/api/persons", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_PersonLifecycle(t *testing.T) {
	e := newTestEcho(t)

	_, env := do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"clerk","email":"clerk@example.com","password":"123456"}`, "")
	var clerk handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &clerk))
	token := clerk.Token

	rec, env := do(t, e, http.MethodPost, "/api/persons",
		`{"name":"Maria Silva","birthDate":"1990-03-10","cpf":"20994179030","address":{"city":"Recife","state":"PE"}}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created handler.PersonResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "209.941.790-30", created.CPF)
	assert.Equal(t, "Recife", created.Address.City)

	rec, env = do(t, e, http.MethodPost, "/api/persons",
		`{"name":"Clone","birthDate":"1990-03-10","cpf":"209.941.790-30"}`, token)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_CPF", env.Error.Code)

	rec, env = do(t, e, http.MethodPost, "/api/persons",
		`{"name":"Bad","birthDate":"1990-03-10","cpf":"111.111.111-11"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CPF", env.Error.Code)

	rec, env = do(t, e, http.MethodPut, "/api/persons/1",
		`{"name":"Maria Souza","birthDate":"1990-03-10","cpf":"209.941.790-30"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated handler.PersonResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Maria Souza", updated.Name)
	assert.Nil(t, updated.Address)

	rec, env = do(t, e, http.MethodGet, "/api/persons", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []handler.PersonResponse
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Len(t, listed, 1)

	rec, _ = do(t, e, http.MethodDelete, "/api/persons/1", "", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = do(t, e, http.MethodGet, "/api/persons/1", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PERSON_NOT_FOUND", env.Error.Code)

	rec, _ = do(t, e, http.MethodGet, "/api/persons/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Health(t *testing.T) {
	e := newTestEcho(t)

	rec, env := do(t, e, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}
