// Package chain composes two secret stores: a primary keychain backend and a
// file fallback for hosts where the keychain is unavailable.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/packfox/chanauth/internal/adapters/secrets/file"
	keyringstore "github.com/packfox/chanauth/internal/adapters/secrets/keyring"
	"github.com/packfox/chanauth/internal/ports"
)

type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewKeyringFirstWithFileFallback(secretsPath string) (*Store, error) {
	return NewStoreChecked(keyringstore.NewStore(), filestore.NewStore(secretsPath))
}

func (s *Store) Get(ctx context.Context, service string, account string) (string, error) {
	secret, err := s.primary.Get(ctx, service, account)
	if err == nil {
		return secret, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackSecret, fallbackErr := s.fallback.Get(ctx, service, account)
	if fallbackErr == nil {
		return fallbackSecret, nil
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

func (s *Store) Set(ctx context.Context, service string, account string, secret string) error {
	err := s.primary.Set(ctx, service, account, secret)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Set(ctx, service, account, secret)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend set failed: %w; fallback backend set failed: %w", err, fallbackErr)
}

func (s *Store) Delete(ctx context.Context, service string, account string) error {
	err := s.primary.Delete(ctx, service, account)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, service, account)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
