// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"register/config"
	"register/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/sync/semaphore"
)

const (
	saltSize   = 16
	keySize    = 32
	iterations = 10000
	blobSize   = saltSize + keySize
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-HMAC-SHA256. Derivations are CPU bound, so the number running
// at once is capped by a weighted semaphore.
type pbkdf2Hasher struct {
	slots *semaphore.Weighted
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	limit := 1
	if cfg.Auth != nil && cfg.Auth.MaxConcurrentHashes > 0 {
		limit = cfg.Auth.MaxConcurrentHashes
	}

	return &pbkdf2Hasher{slots: semaphore.NewWeighted(int64(limit))}
}

// Hash returns base64(salt ‖ key) for a freshly generated salt.
func (h *pbkdf2Hasher) Hash(ctx context.Context, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to read salt")
	}

	key, err := h.derive(ctx, password, salt)
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, blobSize)
	blob = append(blob, salt...)
	blob = append(blob, key...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Verify re-derives the key with the stored salt and compares in constant time.
func (h *pbkdf2Hasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	blob, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(blob) != blobSize {
		return false, nil
	}

	key, err := h.derive(ctx, password, blob[:saltSize])
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(key, blob[saltSize:]) == 1, nil
}

func (h *pbkdf2Hasher) derive(ctx context.Context, password string, salt []byte) ([]byte, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return nil, errors.Wrap(err, "waiting for hashing slot")
	}
	defer h.slots.Release(1)

	return pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New), nil
}
