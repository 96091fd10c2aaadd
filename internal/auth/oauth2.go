package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

// OAuth2Manager implements bearer authentication with an interactive
// bootstrap: when no secret is stored yet, the user is pointed at the
// channel's login_url and the token they paste back is stored as-is. There
// is no code exchange and no refresh.
type OAuth2Manager struct {
	store    ports.SecretStore
	prompter ports.Prompter
}

var _ Manager = (*OAuth2Manager)(nil)

func NewOAuth2Manager(store ports.SecretStore, prompter ports.Prompter) *OAuth2Manager {
	return &OAuth2Manager{store: store, prompter: prompter}
}

func (m *OAuth2Manager) AuthType() string {
	return OAuth2Name
}

func (m *OAuth2Manager) RequiredConfigParameters() []string {
	return []string{domain.SettingLoginURL}
}

// Store resolves the secret by checking the keychain first and falling back
// to the interactive prompt. login_url is validated before any keychain
// call.
func (m *OAuth2Manager) Store(ctx context.Context, channel domain.Channel, settings domain.ChannelSettings) (string, error) {
	if err := checkRequiredParameters(m, channel, settings); err != nil {
		return "", err
	}
	loginURL, _ := settings.Get(domain.SettingLoginURL)

	service := KeyringService(m.AuthType(), channel.CanonicalName())

	token, err := m.store.Get(ctx, service, tokenPlaceholder)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return "", domain.SecretStoreError{Op: "read", Channel: channel.CanonicalName(), Err: err}
		}

		prompted, promptErr := m.prompter.Token(ctx, loginURL)
		if promptErr != nil {
			return "", fmt.Errorf("prompt login token: %w", promptErr)
		}
		if prompted == "" {
			return "", domain.ConfigurationError{Field: domain.SettingToken, Channel: channel.CanonicalName(), AuthType: m.AuthType()}
		}
		token = prompted
	}

	if err := m.store.Set(ctx, service, tokenPlaceholder, token); err != nil {
		return "", domain.SecretStoreError{Op: "store", Channel: channel.CanonicalName(), Err: err}
	}

	return "", nil
}

func (m *OAuth2Manager) RemoveSecret(ctx context.Context, channel domain.Channel, _ domain.ChannelSettings) error {
	service := KeyringService(m.AuthType(), channel.CanonicalName())
	if err := m.store.Delete(ctx, service, tokenPlaceholder); err != nil {
		return domain.SecretStoreError{Op: "remove", Channel: channel.CanonicalName(), Err: err}
	}

	return nil
}

func (m *OAuth2Manager) GetSecret(ctx context.Context, channelName string, _ domain.ChannelSettings) (string, string, error) {
	secret, err := m.store.Get(ctx, KeyringService(m.AuthType(), channelName), tokenPlaceholder)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", "", domain.CredentialNotFoundError{Channel: channelName}
		}
		return "", "", domain.SecretStoreError{Op: "read", Channel: channelName, Err: err}
	}

	return tokenPlaceholder, secret, nil
}
