package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/packfox/chanauth/internal/adapters/prompt"
	renderadapter "github.com/packfox/chanauth/internal/adapters/render/cli"
	yamlrepo "github.com/packfox/chanauth/internal/adapters/repo/yamlrc"
	chainstore "github.com/packfox/chanauth/internal/adapters/secrets/chain"
	filestore "github.com/packfox/chanauth/internal/adapters/secrets/file"
	keyringstore "github.com/packfox/chanauth/internal/adapters/secrets/keyring"
	"github.com/packfox/chanauth/internal/application"
	"github.com/packfox/chanauth/internal/auth"
	"github.com/packfox/chanauth/internal/ports"
)

type app struct {
	service  *application.Service
	renderer *renderadapter.Renderer
}

func wireApp() (*app, error) {
	repo, err := yamlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire channel config store: %w", err)
	}

	secretStore, err := newSecretStore()
	if err != nil {
		return nil, err
	}

	registry := auth.NewRegistry(secretStore, prompt.NewStdConsole())

	return &app{
		service:  application.NewService(registry, repo),
		renderer: renderadapter.NewRenderer(),
	}, nil
}

// newSecretStore picks the secret backend. The default chains the system
// keychain with a file fallback; CHANAUTH_SECRETS_BACKEND pins one backend,
// which headless hosts and tests use to avoid keychain access.
func newSecretStore() (ports.SecretStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	secretsPath := filepath.Join(homeDir, ".chanauth", "secrets.toml")

	switch backend := envOrDefault("CHANAUTH_SECRETS_BACKEND", "chain"); backend {
	case "keyring":
		return keyringstore.NewStore(), nil
	case "file":
		return filestore.NewStore(secretsPath), nil
	case "chain":
		store, err := chainstore.NewKeyringFirstWithFileFallback(secretsPath)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q", backend)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
