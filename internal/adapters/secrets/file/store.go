// Package file stores secrets in a mode-0600 TOML file. It is the fallback
// backend for hosts without a usable keychain.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

const (
	secretsFileMode = 0o600
	secretsDirMode  = 0o700
	tempFilePattern = ".secrets-*.toml.tmp"

	currentSchemaVersion = 1
)

type fileSchema struct {
	Version int            `toml:"version"`
	Secrets []secretSchema `toml:"secrets"`
}

type secretSchema struct {
	Service string `toml:"service"`
	Account string `toml:"account"`
	Secret  string `toml:"secret"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported secrets schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type Store struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SecretStore = (*Store)(nil)

func NewStore(path string) *Store {
	path = filepath.Clean(path)
	return &Store{path: path, mu: lockForPath(path)}
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (s *Store) Get(ctx context.Context, service string, account string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	for _, entry := range file.Secrets {
		if entry.Service == service && entry.Account == account {
			return entry.Secret, nil
		}
	}

	return "", fmt.Errorf("file secret %q/%q: %w", service, account, domain.ErrSecretNotFound)
}

func (s *Store) Set(ctx context.Context, service string, account string, secret string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	updated := false
	for i := range file.Secrets {
		if file.Secrets[i].Service == service && file.Secrets[i].Account == account {
			file.Secrets[i].Secret = secret
			updated = true
			break
		}
	}
	if !updated {
		file.Secrets = append(file.Secrets, secretSchema{Service: service, Account: account, Secret: secret})
	}

	return s.writeSchema(file)
}

func (s *Store) Delete(ctx context.Context, service string, account string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	kept := file.Secrets[:0]
	found := false
	for _, entry := range file.Secrets {
		if entry.Service == service && entry.Account == account {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return fmt.Errorf("file secret %q/%q: %w", service, account, domain.ErrSecretNotFound)
	}
	file.Secrets = kept

	return s.writeSchema(file)
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read secrets file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode secrets file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return file, nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), secretsDirMode); err != nil {
		return fmt.Errorf("create secrets directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode secrets file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp secrets file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp secrets file: %w", err)
	}

	if err := tempFile.Chmod(secretsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp secrets file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp secrets file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace secrets file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.path, secretsFileMode); err != nil {
		return fmt.Errorf("chmod secrets file: %w", err)
	}

	return nil
}
