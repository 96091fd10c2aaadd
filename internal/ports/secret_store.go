package ports

import "context"

// SecretStore is the contract over an OS-level keychain. Service addresses
// the entry (namespace::scheme::channel), account is the identity the secret
// is stored under. Implementations report a missing entry by wrapping
// domain.ErrSecretNotFound.
type SecretStore interface {
	Get(ctx context.Context, service, account string) (string, error)
	Set(ctx context.Context, service, account, secret string) error
	Delete(ctx context.Context, service, account string) error
}
