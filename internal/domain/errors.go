package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSecretNotFound is reported by secret store adapters when no entry
	// exists for the requested service/account pair.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrChannelNotConfigured is reported by the channel config store when a
	// channel has no settings block.
	ErrChannelNotConfigured = errors.New("channel not configured")

	// ErrNoSession is reported on logout when no login was ever recorded for
	// the channel.
	ErrNoSession = errors.New("unable to find information about logged in session")
)

// ConfigurationError reports a required setting that is missing for an auth
// scheme. Nothing is persisted when it is returned.
type ConfigurationError struct {
	Field    string
	Channel  string
	AuthType string
}

func (e ConfigurationError) Error() string {
	msg := fmt.Sprintf("required setting %q is not set", e.Field)
	if e.Channel != "" {
		msg += fmt.Sprintf(" for channel %q", e.Channel)
	}
	if e.AuthType != "" {
		msg += fmt.Sprintf("; set this value in channel_settings before using the %s auth handler", e.AuthType)
	}
	return msg
}

// InvalidSchemeError reports an unknown auth scheme before any store or
// secret I/O happens.
type InvalidSchemeError struct {
	Scheme string
	Valid  []string
}

func (e InvalidSchemeError) Error() string {
	return fmt.Sprintf("invalid authentication type %q; valid types are: %s", e.Scheme, strings.Join(e.Valid, ", "))
}

// CredentialNotFoundError reports that no secret is stored for a channel at
// request time.
type CredentialNotFoundError struct {
	Channel string
}

func (e CredentialNotFoundError) Error() string {
	return fmt.Sprintf("no credential found for channel %q", e.Channel)
}

func (e CredentialNotFoundError) Unwrap() error {
	return ErrSecretNotFound
}

// SecretStoreError reports a keychain read/write/delete failure with the
// underlying cause appended.
type SecretStoreError struct {
	Op      string
	Channel string
	Err     error
}

func (e SecretStoreError) Error() string {
	return fmt.Sprintf("unable to %s credentials for channel %q: %v", e.Op, e.Channel, e.Err)
}

func (e SecretStoreError) Unwrap() error {
	return e.Err
}

// ChannelConfigStoreError reports a read/write failure on the channel
// configuration file.
type ChannelConfigStoreError struct {
	Path string
	Err  error
}

func (e ChannelConfigStoreError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("channel config store: %v", e.Err)
	}
	return fmt.Sprintf("channel config store %s: %v", e.Path, e.Err)
}

func (e ChannelConfigStoreError) Unwrap() error {
	return e.Err
}
