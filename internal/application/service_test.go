package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/packfox/chanauth/internal/auth"
	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports/mocks"
)

type serviceFixture struct {
	store    *mocks.MockSecretStore
	prompter *mocks.MockPrompter
	config   *mocks.MockChannelConfigStore
	service  *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	store := mocks.NewMockSecretStore(t)
	prompter := mocks.NewMockPrompter(t)
	config := mocks.NewMockChannelConfigStore(t)

	return &serviceFixture{
		store:    store,
		prompter: prompter,
		config:   config,
		service:  NewService(auth.NewRegistry(store, prompter), config),
	}
}

func TestServiceLoginStoresAndRecords(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("https://repo.example.com/main")

	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").
		Return(nil, domain.ErrChannelNotConfigured)
	fx.store.EXPECT().
		Set(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "ada", "hunter2").
		Return(nil)
	fx.config.EXPECT().Update(mock.Anything, "repo.example.com/main", auth.BasicAuthName, "ada").Return(nil)
	fx.config.EXPECT().Save(mock.Anything).Return(nil)

	overrides := domain.ChannelSettings{
		domain.SettingUsername: "ada",
		domain.SettingPassword: "hunter2",
	}
	result, err := fx.service.Login(context.Background(), channel, overrides, auth.Provided{Username: true, Password: true})

	require.NoError(t, err)
	assert.Equal(t, auth.BasicAuthName, result.AuthType)
	assert.Equal(t, "ada", result.Identity)
}

func TestServiceLoginPersistedSchemeWins(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("repo.example.com/main")

	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").
		Return(domain.ChannelSettings{
			domain.SettingChannel: "repo.example.com/main",
			domain.SettingAuth:    auth.TokenAuthName,
		}, nil)
	fx.prompter.EXPECT().Secret(mock.Anything, "Token: ").Return("tok-123", nil)
	fx.store.EXPECT().
		Set(mock.Anything, auth.KeyringService(auth.TokenAuthName, "repo.example.com/main"), "token", "tok-123").
		Return(nil)
	fx.config.EXPECT().Update(mock.Anything, "repo.example.com/main", auth.TokenAuthName, "").Return(nil)
	fx.config.EXPECT().Save(mock.Anything).Return(nil)

	result, err := fx.service.Login(context.Background(), channel, nil, auth.Provided{})

	require.NoError(t, err)
	assert.Equal(t, auth.TokenAuthName, result.AuthType)
	assert.Empty(t, result.Identity)
}

func TestServiceLoginSchemeChangeRemovesOldSecret(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("repo.example.com/main")

	persisted := domain.ChannelSettings{
		domain.SettingChannel: "repo.example.com/main",
		domain.SettingAuth:    auth.TokenAuthName,
	}
	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").Return(persisted, nil)

	overrides := domain.ChannelSettings{
		domain.SettingAuth:     auth.BasicAuthName,
		domain.SettingUsername: "ada",
		domain.SettingPassword: "hunter2",
	}
	fx.store.EXPECT().
		Set(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "ada", "hunter2").
		Return(nil)
	fx.store.EXPECT().
		Delete(mock.Anything, auth.KeyringService(auth.TokenAuthName, "repo.example.com/main"), "token").
		Return(nil)
	fx.config.EXPECT().Update(mock.Anything, "repo.example.com/main", auth.BasicAuthName, "ada").Return(nil)
	fx.config.EXPECT().Save(mock.Anything).Return(nil)

	_, err := fx.service.Login(context.Background(), channel, overrides, auth.Provided{Username: true, Password: true})

	require.NoError(t, err)
}

func TestServiceLoginCleanupFailureIsIgnored(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("repo.example.com/main")

	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").
		Return(domain.ChannelSettings{
			domain.SettingChannel:  "repo.example.com/main",
			domain.SettingAuth:     auth.BasicAuthName,
			domain.SettingUsername: "old-user",
		}, nil)
	fx.store.EXPECT().
		Set(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "ada", "hunter2").
		Return(nil)
	fx.store.EXPECT().
		Delete(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "old-user").
		Return(errors.New("keychain locked"))
	fx.config.EXPECT().Update(mock.Anything, "repo.example.com/main", auth.BasicAuthName, "ada").Return(nil)
	fx.config.EXPECT().Save(mock.Anything).Return(nil)

	overrides := domain.ChannelSettings{
		domain.SettingUsername: "ada",
		domain.SettingPassword: "hunter2",
	}
	_, err := fx.service.Login(context.Background(), channel, overrides, auth.Provided{Username: true, Password: true})

	require.NoError(t, err)
}

func TestServiceLoginRecordFailureIsPartial(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("repo.example.com/main")

	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").
		Return(nil, domain.ErrChannelNotConfigured)
	fx.store.EXPECT().
		Set(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "ada", "hunter2").
		Return(nil)
	fx.config.EXPECT().Update(mock.Anything, "repo.example.com/main", auth.BasicAuthName, "ada").
		Return(errors.New("read-only filesystem"))

	overrides := domain.ChannelSettings{
		domain.SettingUsername: "ada",
		domain.SettingPassword: "hunter2",
	}
	result, err := fx.service.Login(context.Background(), channel, overrides, auth.Provided{Username: true, Password: true})

	var partial PartialLoginError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "repo.example.com/main", partial.Channel)
	assert.Equal(t, "ada", result.Identity)
	assert.Contains(t, err.Error(), "recording the auth scheme failed")
}

func TestServiceLoginStoreFailureAborts(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("repo.example.com/main")

	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").
		Return(nil, domain.ErrChannelNotConfigured)
	fx.store.EXPECT().
		Set(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "ada", "hunter2").
		Return(errors.New("keychain locked"))

	overrides := domain.ChannelSettings{
		domain.SettingUsername: "ada",
		domain.SettingPassword: "hunter2",
	}
	_, err := fx.service.Login(context.Background(), channel, overrides, auth.Provided{Username: true, Password: true})

	var storeErr domain.SecretStoreError
	require.ErrorAs(t, err, &storeErr)
	fx.config.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceLogoutRemovesSecret(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("repo.example.com/main")

	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").
		Return(domain.ChannelSettings{
			domain.SettingChannel:  "repo.example.com/main",
			domain.SettingAuth:     auth.BasicAuthName,
			domain.SettingUsername: "ada",
		}, nil)
	fx.store.EXPECT().
		Delete(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "ada").
		Return(nil)

	require.NoError(t, fx.service.Logout(context.Background(), channel))
}

func TestServiceLogoutUnknownChannel(t *testing.T) {
	fx := newServiceFixture(t)
	channel := domain.NewChannel("repo.example.com/main")

	fx.config.EXPECT().Read(mock.Anything, "repo.example.com/main").
		Return(nil, domain.ErrChannelNotConfigured)

	err := fx.service.Logout(context.Background(), channel)

	require.ErrorIs(t, err, domain.ErrNoSession)
	fx.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestServiceStatusProbesEachChannel(t *testing.T) {
	fx := newServiceFixture(t)

	fx.config.EXPECT().List(mock.Anything).Return([]domain.ChannelSettings{
		{
			domain.SettingChannel:  "repo.example.com/main",
			domain.SettingAuth:     auth.BasicAuthName,
			domain.SettingUsername: "ada",
		},
		{
			domain.SettingChannel: "repo.example.com/dev",
			domain.SettingAuth:    auth.TokenAuthName,
		},
		{
			// No recorded scheme, skipped.
			domain.SettingChannel: "repo.example.com/stale",
		},
	}, nil)
	fx.store.EXPECT().
		Get(mock.Anything, auth.KeyringService(auth.BasicAuthName, "repo.example.com/main"), "ada").
		Return("hunter2", nil)
	fx.store.EXPECT().
		Get(mock.Anything, auth.KeyringService(auth.TokenAuthName, "repo.example.com/dev"), "token").
		Return("", domain.ErrSecretNotFound)

	statuses, err := fx.service.Status(context.Background())

	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, ChannelStatus{Channel: "repo.example.com/main", AuthType: auth.BasicAuthName, Identity: "ada", LoggedIn: true}, statuses[0])
	assert.Equal(t, ChannelStatus{Channel: "repo.example.com/dev", AuthType: auth.TokenAuthName, LoggedIn: false}, statuses[1])
}
