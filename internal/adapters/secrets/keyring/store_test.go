package keyring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/packfox/chanauth/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	keyring.MockInit()
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "chanauth::basic::repo.example.com/main", "ada", "hunter2"))

	secret, err := store.Get(ctx, "chanauth::basic::repo.example.com/main", "ada")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)

	require.NoError(t, store.Delete(ctx, "chanauth::basic::repo.example.com/main", "ada"))

	_, err = store.Get(ctx, "chanauth::basic::repo.example.com/main", "ada")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetMissingEntry(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	_, err := store.Get(context.Background(), "chanauth::token::repo.example.com/main", "token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteMissingEntry(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	err := store.Delete(context.Background(), "chanauth::token::repo.example.com/main", "token")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	keyring.MockInit()
	store := NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "chanauth::basic::repo.example.com/main", "ada")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Set(ctx, "chanauth::basic::repo.example.com/main", "ada", "x"), context.Canceled)
	require.ErrorIs(t, store.Delete(ctx, "chanauth::basic::repo.example.com/main", "ada"), context.Canceled)
}
