package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"register/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RedactsSensitiveAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "register"
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("login attempt",
		slog.String("username", "testuser"),
		slog.String("password", "hunter22"),
		slog.String("token", "eyJhbGciOi..."),
		slog.String("email", "test@example.com"),
	)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "register", entry["service"])
	assert.Equal(t, "testuser", entry["username"])
	assert.Equal(t, redacted, entry["password"])
	assert.Equal(t, redacted, entry["token"])
	assert.Equal(t, "te***@example.com", entry["email"])
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "te***@example.com", maskEmail("test@example.com"))
	assert.Equal(t, "***@example.com", maskEmail("ab@example.com"))
	assert.Equal(t, "***", maskEmail("not-an-email"))
}
