// Package apikey issues and manages the keys that guard the public v1 API.
// Keys are shown to the owner exactly once; only their sha256 hash is kept.
package apikey

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"assetpipe/internal/domain"

	"github.com/google/uuid"
)

const keyPrefix = "ap_"

var ErrKeyNotFound = errors.New("api key not found")

type Repository interface {
	Create(ctx context.Context, k *domain.APIKey) error
	ListByUser(ctx context.Context, userID string) ([]domain.APIKey, error)
	Deactivate(ctx context.Context, id, userID string) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Issue creates a key and returns the plaintext alongside the stored
// record. The plaintext is not recoverable afterwards.
func (s *Service) Issue(ctx context.Context, userID, name string) (string, *domain.APIKey, error) {
	plaintext := keyPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")

	key := &domain.APIKey{
		UserID:   userID,
		KeyHash:  HashKey(plaintext),
		Name:     strings.TrimSpace(name),
		IsActive: true,
	}
	if err := s.repo.Create(ctx, key); err != nil {
		return "", nil, err
	}
	return plaintext, key, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.APIKey, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Revoke deactivates a key the caller owns.
func (s *Service) Revoke(ctx context.Context, id, userID string) error {
	rows, err := s.repo.Deactivate(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrKeyNotFound
	}
	return nil
}

// HashKey maps a plaintext key to its stored form.
func HashKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
