// Package application orchestrates the login, logout, and status flows over
// the auth strategies and the channel config store.
package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/packfox/chanauth/internal/auth"
	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

type Service struct {
	registry *auth.Registry
	config   ports.ChannelConfigStore
}

func NewService(registry *auth.Registry, config ports.ChannelConfigStore) *Service {
	return &Service{registry: registry, config: config}
}

// LoginResult reports which scheme was used and the identity that was
// recorded, if any.
type LoginResult struct {
	AuthType string
	Identity string
}

// PartialLoginError reports a login whose secret was stored but whose scheme
// record could not be persisted. It is distinct from total failure: the
// secret exists, the scheme just wasn't remembered.
type PartialLoginError struct {
	Channel string
	Err     error
}

func (e PartialLoginError) Error() string {
	return fmt.Sprintf("credentials stored for channel %q, but recording the auth scheme failed: %v", e.Channel, e.Err)
}

func (e PartialLoginError) Unwrap() error {
	return e.Err
}

// Login merges persisted channel settings with CLI overrides (overrides
// win), selects the auth manager, stores the secret, and persists the
// channel record. A re-login overwrites the previous record; when the scheme
// or identity changed, the superseded keychain entry is removed so the old
// secret is no longer retrievable.
func (s *Service) Login(ctx context.Context, channel domain.Channel, overrides domain.ChannelSettings, provided auth.Provided) (LoginResult, error) {
	persisted, err := s.config.Read(ctx, channel.CanonicalName())
	if err != nil && !errors.Is(err, domain.ErrChannelNotConfigured) {
		return LoginResult{}, err
	}

	settings := persisted.Merge(overrides)

	authType, manager, err := s.registry.Select(settings, provided)
	if err != nil {
		return LoginResult{}, err
	}

	identity, err := manager.Store(ctx, channel, settings)
	if err != nil {
		return LoginResult{}, err
	}

	s.removeSupersededSecret(ctx, channel, persisted, authType, identity)

	result := LoginResult{AuthType: authType, Identity: identity}

	if err := s.config.Update(ctx, channel.CanonicalName(), authType, identity); err != nil {
		return result, PartialLoginError{Channel: channel.CanonicalName(), Err: err}
	}
	if err := s.config.Save(ctx); err != nil {
		return result, PartialLoginError{Channel: channel.CanonicalName(), Err: err}
	}

	return result, nil
}

// removeSupersededSecret deletes the keychain entry a previous login left
// under a different scheme or username. Best effort: the new credential is
// already stored, and the stale entry is unreachable through the updated
// record either way.
func (s *Service) removeSupersededSecret(ctx context.Context, channel domain.Channel, persisted domain.ChannelSettings, authType, identity string) {
	previousType, ok := persisted.Get(domain.SettingAuth)
	if !ok {
		return
	}
	previousIdentity, _ := persisted.Get(domain.SettingUsername)

	if previousType == authType && (previousType != auth.BasicAuthName || previousIdentity == identity) {
		return
	}

	manager, err := s.registry.Manager(previousType)
	if err != nil {
		return
	}
	_ = manager.RemoveSecret(ctx, channel, persisted)
}

// Logout removes the stored secret for the channel. The persisted channel
// record is intentionally left untouched, so a later unauthenticated request
// still resolves the recorded scheme and reports a missing credential.
func (s *Service) Logout(ctx context.Context, channel domain.Channel) error {
	settings, err := s.config.Read(ctx, channel.CanonicalName())
	if err != nil {
		if errors.Is(err, domain.ErrChannelNotConfigured) {
			return domain.ErrNoSession
		}
		return err
	}

	_, manager, err := s.registry.Select(settings, auth.Provided{})
	if err != nil {
		return err
	}

	return manager.RemoveSecret(ctx, channel, settings)
}

// ChannelStatus describes one configured channel: the recorded scheme and
// identity, and whether a secret is currently stored. It never carries the
// secret itself.
type ChannelStatus struct {
	Channel  string
	AuthType string
	Identity string
	LoggedIn bool
}

// Status reports every configured channel that records an auth scheme.
func (s *Service) Status(ctx context.Context) ([]ChannelStatus, error) {
	blocks, err := s.config.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]ChannelStatus, 0, len(blocks))
	for _, settings := range blocks {
		channelName, ok := settings.Get(domain.SettingChannel)
		if !ok {
			continue
		}
		authType, ok := settings.Get(domain.SettingAuth)
		if !ok {
			continue
		}

		status := ChannelStatus{Channel: channelName, AuthType: authType}
		status.Identity, _ = settings.Get(domain.SettingUsername)

		if manager, err := s.registry.Manager(authType); err == nil {
			if _, _, err := manager.GetSecret(ctx, channelName, settings); err == nil {
				status.LoggedIn = true
			}
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}
