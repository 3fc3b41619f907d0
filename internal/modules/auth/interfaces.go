package auth

import (
	"context"

	"assetpipe/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}
