package apikey

import (
	"context"
	"strings"
	"testing"

	"assetpipe/internal/database"
	"assetpipe/internal/repository"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *repository.APIKeyRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	repo := repository.NewAPIKeyRepository(db)
	return NewService(repo), repo
}

func TestIssueStoresHashOnly(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	plaintext, key, err := svc.Issue(ctx, "user-1", "ci key")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(plaintext, "ap_"))
	require.NotEqual(t, plaintext, key.KeyHash)
	require.True(t, key.IsActive)
	require.Equal(t, "ci key", key.Name)

	stored, err := repo.GetByHash(ctx, HashKey(plaintext))
	require.NoError(t, err)
	require.Equal(t, key.ID, stored.ID)

	// the plaintext itself must not resolve
	_, err = repo.GetByHash(ctx, plaintext)
	require.Error(t, err)
}

func TestRevoke(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	plaintext, key, err := svc.Issue(ctx, "user-1", "")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, key.ID, "user-1"))

	stored, err := repo.GetByHash(ctx, HashKey(plaintext))
	require.NoError(t, err)
	require.False(t, stored.IsActive)

	// revoking someone else's key is a not-found, not a silent success
	_, other, err := svc.Issue(ctx, "user-2", "")
	require.NoError(t, err)
	require.ErrorIs(t, svc.Revoke(ctx, other.ID, "user-1"), ErrKeyNotFound)
}

func TestListIsScopedToOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Issue(ctx, "user-1", "a")
	require.NoError(t, err)
	_, _, err = svc.Issue(ctx, "user-1", "b")
	require.NoError(t, err)
	_, _, err = svc.Issue(ctx, "user-2", "c")
	require.NoError(t, err)

	keys, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, keys, 2)
	for _, k := range keys {
		require.Equal(t, "user-1", k.UserID)
	}
}
