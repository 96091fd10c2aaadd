package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

// TokenManager implements bearer token authentication. There is no username
// concept; the secret is stored under a fixed placeholder account and the
// persisted record never carries an identity.
type TokenManager struct {
	store    ports.SecretStore
	prompter ports.Prompter
}

var _ Manager = (*TokenManager)(nil)

func NewTokenManager(store ports.SecretStore, prompter ports.Prompter) *TokenManager {
	return &TokenManager{store: store, prompter: prompter}
}

func (m *TokenManager) AuthType() string {
	return TokenAuthName
}

func (m *TokenManager) RequiredConfigParameters() []string {
	return nil
}

func (m *TokenManager) Store(ctx context.Context, channel domain.Channel, settings domain.ChannelSettings) (string, error) {
	if err := checkRequiredParameters(m, channel, settings); err != nil {
		return "", err
	}

	token, ok := settings.Get(domain.SettingToken)
	if !ok {
		prompted, err := m.prompter.Secret(ctx, "Token: ")
		if err != nil {
			return "", fmt.Errorf("prompt token: %w", err)
		}
		if prompted == "" {
			return "", domain.ConfigurationError{Field: domain.SettingToken, Channel: channel.CanonicalName(), AuthType: m.AuthType()}
		}
		token = prompted
	}

	service := KeyringService(m.AuthType(), channel.CanonicalName())
	if err := m.store.Set(ctx, service, tokenPlaceholder, token); err != nil {
		return "", domain.SecretStoreError{Op: "store", Channel: channel.CanonicalName(), Err: err}
	}

	return "", nil
}

func (m *TokenManager) RemoveSecret(ctx context.Context, channel domain.Channel, _ domain.ChannelSettings) error {
	service := KeyringService(m.AuthType(), channel.CanonicalName())
	if err := m.store.Delete(ctx, service, tokenPlaceholder); err != nil {
		return domain.SecretStoreError{Op: "remove", Channel: channel.CanonicalName(), Err: err}
	}

	return nil
}

func (m *TokenManager) GetSecret(ctx context.Context, channelName string, _ domain.ChannelSettings) (string, string, error) {
	secret, err := m.store.Get(ctx, KeyringService(m.AuthType(), channelName), tokenPlaceholder)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", "", domain.CredentialNotFoundError{Channel: channelName}
		}
		return "", "", domain.SecretStoreError{Op: "read", Channel: channelName, Err: err}
	}

	return tokenPlaceholder, secret, nil
}
