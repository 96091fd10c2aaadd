// Package keyring stores secrets in the operating system keychain through
// the platform keyring service.
package keyring

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

type Store struct{}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Get(ctx context.Context, service string, account string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	secret, err := keyring.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("keyring entry %q/%q: %w", service, account, domain.ErrSecretNotFound)
		}
		return "", fmt.Errorf("read keyring entry %q/%q: %w", service, account, err)
	}

	return secret, nil
}

func (s *Store) Set(ctx context.Context, service string, account string, secret string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := keyring.Set(service, account, secret); err != nil {
		return fmt.Errorf("write keyring entry %q/%q: %w", service, account, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, service string, account string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := keyring.Delete(service, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("keyring entry %q/%q: %w", service, account, domain.ErrSecretNotFound)
		}
		return fmt.Errorf("delete keyring entry %q/%q: %w", service, account, err)
	}

	return nil
}
