package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

// BasicManager implements HTTP basic authentication: the identity is the
// username, the secret is the password.
type BasicManager struct {
	store    ports.SecretStore
	prompter ports.Prompter
}

var _ Manager = (*BasicManager)(nil)

func NewBasicManager(store ports.SecretStore, prompter ports.Prompter) *BasicManager {
	return &BasicManager{store: store, prompter: prompter}
}

func (m *BasicManager) AuthType() string {
	return BasicAuthName
}

func (m *BasicManager) RequiredConfigParameters() []string {
	return nil
}

// Store resolves the username (prompting when it was not supplied) and the
// password. When no new password is supplied an already stored secret for
// the same username is reused, so a login can update the username record
// without retyping the password.
func (m *BasicManager) Store(ctx context.Context, channel domain.Channel, settings domain.ChannelSettings) (string, error) {
	if err := checkRequiredParameters(m, channel, settings); err != nil {
		return "", err
	}

	username, ok := settings.Get(domain.SettingUsername)
	if !ok {
		prompted, err := m.prompter.Input(ctx, "Username: ")
		if err != nil {
			return "", fmt.Errorf("prompt username: %w", err)
		}
		if prompted == "" {
			return "", domain.ConfigurationError{Field: domain.SettingUsername, Channel: channel.CanonicalName(), AuthType: m.AuthType()}
		}
		username = prompted
	}

	service := KeyringService(m.AuthType(), channel.CanonicalName())

	password, ok := settings.Get(domain.SettingPassword)
	if !ok {
		existing, err := m.store.Get(ctx, service, username)
		switch {
		case err == nil:
			password = existing
		case errors.Is(err, domain.ErrSecretNotFound):
			prompted, promptErr := m.prompter.Secret(ctx, "Password: ")
			if promptErr != nil {
				return "", fmt.Errorf("prompt password: %w", promptErr)
			}
			if prompted == "" {
				return "", domain.ConfigurationError{Field: domain.SettingPassword, Channel: channel.CanonicalName(), AuthType: m.AuthType()}
			}
			password = prompted
		default:
			return "", domain.SecretStoreError{Op: "read", Channel: channel.CanonicalName(), Err: err}
		}
	}

	if err := m.store.Set(ctx, service, username, password); err != nil {
		return "", domain.SecretStoreError{Op: "store", Channel: channel.CanonicalName(), Err: err}
	}

	return username, nil
}

func (m *BasicManager) RemoveSecret(ctx context.Context, channel domain.Channel, settings domain.ChannelSettings) error {
	username, ok := settings.Get(domain.SettingUsername)
	if !ok {
		return domain.CredentialNotFoundError{Channel: channel.CanonicalName()}
	}

	service := KeyringService(m.AuthType(), channel.CanonicalName())
	if err := m.store.Delete(ctx, service, username); err != nil {
		return domain.SecretStoreError{Op: "remove", Channel: channel.CanonicalName(), Err: err}
	}

	return nil
}

func (m *BasicManager) GetSecret(ctx context.Context, channelName string, settings domain.ChannelSettings) (string, string, error) {
	username, ok := settings.Get(domain.SettingUsername)
	if !ok {
		return "", "", domain.CredentialNotFoundError{Channel: channelName}
	}

	secret, err := m.store.Get(ctx, KeyringService(m.AuthType(), channelName), username)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", "", domain.CredentialNotFoundError{Channel: channelName}
		}
		return "", "", domain.SecretStoreError{Op: "read", Channel: channelName, Err: err}
	}

	return username, secret, nil
}
