package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := RequestIDFromEcho(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", RequestIDFromEcho(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.NewTextHandler(nil, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestSubject(t *testing.T) {
	c := newEchoContext()

	_, ok := SubjectFromEcho(c)
	assert.False(t, ok)

	SetSubject(c, Subject{ID: 7, Username: "alice"})

	subject, ok := SubjectFromEcho(c)
	assert.True(t, ok)
	assert.Equal(t, int64(7), subject.ID)
	assert.Equal(t, "alice", subject.Username)
}
