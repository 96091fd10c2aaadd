// Package auth holds the authentication strategies a channel can use and the
// selector that picks one from channel settings.
package auth

import (
	"context"
	"sort"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

const (
	// Namespace prefixes every keyring service string so entries never
	// collide with unrelated keychain consumers.
	Namespace = "chanauth"

	BasicAuthName = "basic"
	TokenAuthName = "token"
	OAuth2Name    = "oauth2"

	// tokenPlaceholder is the keyring account used by schemes that have no
	// username concept.
	tokenPlaceholder = "token"
)

// Manager is one authentication strategy. Managers turn user-supplied
// settings into a stored secret on login, retrieve it at request time, and
// remove it on logout. They are stateless and re-instantiated freely.
type Manager interface {
	// AuthType returns the stable discriminator persisted in channel
	// settings and accepted by the "auth" setting.
	AuthType() string

	// RequiredConfigParameters lists setting keys that must be configured
	// before Store can run.
	RequiredConfigParameters() []string

	// Store derives the identity/secret pair from settings, writes the
	// secret to the keychain, and returns the identity to persist ("" for
	// schemes with no stable identity).
	Store(ctx context.Context, channel domain.Channel, settings domain.ChannelSettings) (string, error)

	// RemoveSecret deletes the keychain entry for this channel and scheme.
	// A missing entry is surfaced as a domain.SecretStoreError, not
	// swallowed.
	RemoveSecret(ctx context.Context, channel domain.Channel, settings domain.ChannelSettings) error

	// GetSecret reads the keychain entry for an already logged-in channel
	// and returns the identity and secret.
	GetSecret(ctx context.Context, channelName string, settings domain.ChannelSettings) (identity string, secret string, err error)
}

// KeyringService renders the composite keyring identity
// (namespace, scheme, channel) as the service string handed to the keychain.
func KeyringService(authType, channelName string) string {
	return Namespace + "::" + authType + "::" + channelName
}

// Registry is the closed set of known managers keyed by auth type.
type Registry struct {
	managers map[string]Manager
}

// NewRegistry wires the three built-in strategies against the given secret
// store and prompter.
func NewRegistry(store ports.SecretStore, prompter ports.Prompter) *Registry {
	registry := &Registry{managers: make(map[string]Manager)}
	registry.register(NewBasicManager(store, prompter))
	registry.register(NewTokenManager(store, prompter))
	registry.register(NewOAuth2Manager(store, prompter))

	return registry
}

func (r *Registry) register(manager Manager) {
	r.managers[manager.AuthType()] = manager
}

// Manager resolves an auth type to its strategy, failing with
// domain.InvalidSchemeError for unknown types.
func (r *Registry) Manager(authType string) (Manager, error) {
	manager, ok := r.managers[authType]
	if !ok {
		return nil, domain.InvalidSchemeError{Scheme: authType, Valid: r.ValidTypes()}
	}

	return manager, nil
}

// ValidTypes returns the known auth type names, sorted for stable error
// messages.
func (r *Registry) ValidTypes() []string {
	types := make([]string, 0, len(r.managers))
	for authType := range r.managers {
		types = append(types, authType)
	}
	sort.Strings(types)

	return types
}

func checkRequiredParameters(manager Manager, channel domain.Channel, settings domain.ChannelSettings) error {
	for _, key := range manager.RequiredConfigParameters() {
		if _, ok := settings.Get(key); !ok {
			return domain.ConfigurationError{
				Field:    key,
				Channel:  channel.CanonicalName(),
				AuthType: manager.AuthType(),
			}
		}
	}

	return nil
}
