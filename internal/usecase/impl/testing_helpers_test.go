package impl

import (
	"io"
	"log/slog"
	"time"

	"register/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(repoTimeout time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			MaxConcurrentHashes: 2,
			RepositoryTimeout:   repoTimeout,
		},
	}
}
