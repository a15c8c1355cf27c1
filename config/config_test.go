package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	domainerrors "register/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevConfig() *Config {
	cfg := &Config{}
	cfg.Env.Env = "development"
	cfg.JWT = TokenConfig{SecretKey: "file-secret", Issuer: "file-issuer", Audience: "file-audience"}

	return cfg
}

func TestResolve_DevelopmentUsesFileValues(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "env-secret")

	cfg := newDevConfig()
	require.NoError(t, cfg.resolve())

	assert.Equal(t, "file-secret", cfg.Token.SecretKey)
	assert.Equal(t, "file-issuer", cfg.Token.Issuer)
	assert.Equal(t, "file-audience", cfg.Token.Audience)
}

func TestResolve_DefaultsIssuerAndAudience(t *testing.T) {
	cfg := newDevConfig()
	cfg.JWT.Issuer = ""
	cfg.JWT.Audience = " "

	require.NoError(t, cfg.resolve())

	assert.Equal(t, DefaultIssuer, cfg.Token.Issuer)
	assert.Equal(t, DefaultAudience, cfg.Token.Audience)
}

func TestResolve_MissingSecretIsFatal(t *testing.T) {
	cfg := newDevConfig()
	cfg.JWT.SecretKey = ""

	err := cfg.resolve()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
	assert.Empty(t, cfg.Token.SecretKey)
}

func TestResolve_ProductionReadsEnvironmentOnly(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "env-secret")
	t.Setenv("JWT_ISSUER", "env-issuer")
	t.Setenv("JWT_AUDIENCE", "env-audience")

	cfg := newDevConfig()
	cfg.Env.Env = "Production"
	cfg.Postgres = &postgres.DBConn{}

	require.NoError(t, cfg.resolve())

	assert.Equal(t, "env-secret", cfg.Token.SecretKey)
	assert.Equal(t, "env-issuer", cfg.Token.Issuer)
	assert.Equal(t, "env-audience", cfg.Token.Audience)
}

func TestResolve_ProductionIgnoresFileSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	cfg := newDevConfig()
	cfg.Env.Env = EnvProduction
	cfg.Postgres = &postgres.DBConn{}

	err := cfg.resolve()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestResolve_ProductionRequiresPostgres(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "env-secret")

	cfg := newDevConfig()
	cfg.Env.Env = EnvProduction

	err := cfg.resolve()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestResolve_AuthDefaults(t *testing.T) {
	cfg := newDevConfig()

	require.NoError(t, cfg.resolve())

	require.NotNil(t, cfg.Auth)
	assert.Positive(t, cfg.Auth.MaxConcurrentHashes)
	assert.Equal(t, defaultRepositoryTimeout, cfg.Auth.RepositoryTimeout)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestLoadWithEnv_ReadsYAMLAndOverrides(t *testing.T) {
	// The working directory is searched first and holds config.yaml, so the
	// temp file needs a name that only exists in the temp directory.
	dir := t.TempDir()
	content := []byte(`
env:
  env: development
  serviceName: register
  log:
    level: debug
http:
  port: 8080
jwt:
  secretKey: from-file
auth:
  repositoryTimeout: 2s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loadtest.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("loadtest", rel)
	require.NoError(t, err)

	assert.Equal(t, "register", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "from-file", cfg.JWT.SecretKey)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Second, cfg.Auth.RepositoryTimeout)
}

func TestLoadWithEnv_WorkingDirectoryWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("jwt:\n  secretKey: shadowed\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("config", rel)
	require.NoError(t, err)

	assert.NotEqual(t, "shadowed", cfg.JWT.SecretKey)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")

	assert.Error(t, err)
}
