// Package yamlrc persists per-channel authentication settings in the user's
// channels file. Updates are applied as node edits so comments and unrelated
// blocks survive a rewrite.
package yamlrc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/packfox/chanauth/internal/domain"
	"github.com/packfox/chanauth/internal/ports"
)

const (
	configName       = "config"
	configType       = "yaml"
	channelsPathKey  = "channels.path"
	channelsFileMode = 0o600
	channelsDirMode  = 0o700
	channelsConfDir  = ".chanauth"
	channelsConfFile = "channels.yaml"
	tempFilePattern  = ".channels-*.yaml.tmp"

	settingsKey = "channel_settings"
)

type Repository struct {
	path string
	mu   *sync.RWMutex

	// pending holds the parsed document with staged updates until Save
	// rewrites the file.
	pending *yaml.Node
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ChannelConfigStore = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, channelsConfDir, channelsConfFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, channelsConfDir))
	cfg.SetDefault(channelsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(channelsPathKey)
	if path == "" {
		return nil, errors.New("channels path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

// NewRepositoryForPath bypasses config resolution and binds the repository
// to an explicit channels file.
func NewRepositoryForPath(path string) (*Repository, error) {
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve channels path: %w", err)
	}

	return filepath.Clean(absPath), nil
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

type rcSchema struct {
	ChannelSettings []map[string]string `yaml:"channel_settings"`
}

// Read returns the settings block recorded for channelName, failing with
// domain.ErrChannelNotConfigured when the file or the block is absent.
func (r *Repository) Read(ctx context.Context, channelName string) (domain.ChannelSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, block := range blocks {
		if name, ok := block.Get(domain.SettingChannel); ok && name == channelName {
			return block, nil
		}
	}

	return nil, fmt.Errorf("channel %q: %w", channelName, domain.ErrChannelNotConfigured)
}

// List returns every settings block in file order. A missing file is an
// empty configuration, not an error.
func (r *Repository) List(ctx context.Context) ([]domain.ChannelSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.ChannelConfigStoreError{Path: r.path, Err: err}
	}

	var file rcSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("decode channels file: %w", err)}
	}

	blocks := make([]domain.ChannelSettings, 0, len(file.ChannelSettings))
	for _, raw := range file.ChannelSettings {
		blocks = append(blocks, domain.ChannelSettings(raw))
	}

	return blocks, nil
}

// Update stages the auth scheme and identity for channelName, replacing any
// existing block for the same channel. The file must already exist; Update
// never creates a channels file the user did not. Changes are not visible
// until Save.
func (r *Repository) Update(ctx context.Context, channelName string, authType string, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		doc, err := r.loadDocument()
		if err != nil {
			return err
		}
		r.pending = doc
	}

	root := documentRoot(r.pending)

	sequence := mappingValue(root, settingsKey)
	if sequence == nil {
		sequence = &yaml.Node{Kind: yaml.SequenceNode}
		appendMappingEntry(root, settingsKey, sequence)
	}

	block := findChannelBlock(sequence, channelName)
	if block == nil {
		block = &yaml.Node{Kind: yaml.MappingNode}
		appendMappingEntry(block, domain.SettingChannel, scalarNode(channelName))
		sequence.Content = append(sequence.Content, block)
	}

	setMappingValue(block, domain.SettingAuth, authType)
	if username == "" {
		removeMappingKey(block, domain.SettingUsername)
	} else {
		setMappingValue(block, domain.SettingUsername, username)
	}

	return nil
}

// Save rewrites the channels file with the staged updates. Without a prior
// Update it is a no-op.
func (r *Repository) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		return nil
	}

	if err := r.writeDocument(r.pending); err != nil {
		return err
	}
	r.pending = nil

	return nil
}

func (r *Repository) loadDocument() (*yaml.Node, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("channels file does not exist: %w", err)}
		}
		return nil, domain.ChannelConfigStoreError{Path: r.path, Err: err}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("decode channels file: %w", err)}
	}

	// An empty file parses to a bare document; give it a mapping root so
	// edits have somewhere to land.
	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}

	return &doc, nil
}

func (r *Repository) writeDocument(doc *yaml.Node) error {
	if err := os.MkdirAll(filepath.Dir(r.path), channelsDirMode); err != nil {
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("create channels directory: %w", err)}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("encode channels file: %w", err)}
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("create temp channels file: %w", err)}
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
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("write temp channels file: %w", err)}
	}

	if err := tempFile.Chmod(channelsFileMode); err != nil {
		_ = tempFile.Close()
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("chmod temp channels file: %w", err)}
	}

	if err := tempFile.Close(); err != nil {
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("close temp channels file: %w", err)}
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("replace channels file: %w", err)}
	}

	cleanup = false

	if err := os.Chmod(r.path, channelsFileMode); err != nil {
		return domain.ChannelConfigStoreError{Path: r.path, Err: fmt.Errorf("chmod channels file: %w", err)}
	}

	return nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func appendMappingEntry(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalarNode(key), value)
}

func setMappingValue(mapping *yaml.Node, key string, value string) {
	if existing := mappingValue(mapping, key); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = "!!str"
		existing.Value = value
		return
	}
	appendMappingEntry(mapping, key, scalarNode(value))
}

func removeMappingKey(mapping *yaml.Node, key string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content = append(mapping.Content[:i], mapping.Content[i+2:]...)
			return
		}
	}
}

func findChannelBlock(sequence *yaml.Node, channelName string) *yaml.Node {
	for _, item := range sequence.Content {
		if name := mappingValue(item, domain.SettingChannel); name != nil && name.Value == channelName {
			return item
		}
	}
	return nil
}
