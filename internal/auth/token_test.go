package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports/mocks"
)

func TestTokenStorePersistsNoIdentity(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSecretStore(t)
	manager := NewTokenManager(store, mocks.NewMockPrompter(t))

	store.EXPECT().Set(mock.Anything, "chanauth::token::private-chan", "token", "tok-123").Return(nil).Once()

	identity, err := manager.Store(context.Background(), domain.NewChannel("private-chan"), domain.ChannelSettings{domain.SettingToken: "tok-123"})
	require.NoError(t, err)
	assert.Empty(t, identity)
}

func TestTokenStorePromptsWhenTokenWithheld(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSecretStore(t)
	prompter := mocks.NewMockPrompter(t)
	manager := NewTokenManager(store, prompter)

	prompter.EXPECT().Secret(mock.Anything, "Token: ").Return("typed-token", nil).Once()
	store.EXPECT().Set(mock.Anything, "chanauth::token::private-chan", "token", "typed-token").Return(nil).Once()

	_, err := manager.Store(context.Background(), domain.NewChannel("private-chan"), domain.ChannelSettings{})
	require.NoError(t, err)
}

func TestTokenGetSecretRoundTrip(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSecretStore(t)
	manager := NewTokenManager(store, mocks.NewMockPrompter(t))

	store.EXPECT().Get(mock.Anything, "chanauth::token::private-chan", "token").Return("tok-123", nil).Once()

	identity, secret, err := manager.GetSecret(context.Background(), "private-chan", nil)
	require.NoError(t, err)
	assert.Equal(t, "token", identity)
	assert.Equal(t, "tok-123", secret)
}

func TestTokenRemoveSecretSurfacesMissingEntry(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSecretStore(t)
	manager := NewTokenManager(store, mocks.NewMockPrompter(t))

	store.EXPECT().Delete(mock.Anything, "chanauth::token::private-chan", "token").Return(domain.ErrSecretNotFound).Once()

	err := manager.RemoveSecret(context.Background(), domain.NewChannel("private-chan"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}
