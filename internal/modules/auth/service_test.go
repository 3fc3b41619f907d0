package auth

import (
	"context"
	"testing"
	"time"

	"assetpipe/internal/database"
	"assetpipe/internal/pkg/jwt"
	"assetpipe/internal/repository"

	"github.com/stretchr/testify/require"
)

func setupAuth(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	return NewService(repository.NewUserRepository(db), jwt.New("test-secret", time.Hour))
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := setupAuth(t)

	reg, err := svc.Register(ctx, RegisterRequest{
		Email:    "Alex@Example.COM",
		Password: "correct-horse",
		Name:     "Alex",
	})
	require.NoError(t, err)
	require.Equal(t, "alex@example.com", reg.User.Email)
	require.Equal(t, "user", string(reg.User.Role))
	require.NotEmpty(t, reg.Token)
	require.NotEqual(t, "correct-horse", reg.User.PasswordHash)

	login, err := svc.Login(ctx, LoginRequest{Email: "alex@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, login.User.ID)

	_, err = svc.Login(ctx, LoginRequest{Email: "alex@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := setupAuth(t)

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.co", Password: "short"})
	require.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register(ctx, RegisterRequest{Email: "not-an-email", Password: "long-enough"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@b.co", Password: "long-enough"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "A@b.co", Password: "long-enough"})
	require.ErrorIs(t, err, ErrEmailTaken)
}
