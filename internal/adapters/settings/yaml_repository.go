// Package settings persists the shop-level preferences to a local yaml
// file, the server-side stand-in for the dashboard's local storage.
package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	"gopkg.in/yaml.v3"
)

// YamlRepository stores settings in a single yaml file.
type YamlRepository struct {
	mu   sync.Mutex
	path string
}

// NewYamlRepository creates a repository backed by the given file path.
// The file is created on first save.
func NewYamlRepository(path string) *YamlRepository {
	return &YamlRepository{path: path}
}

var _ portsrepo.SettingsRepositoryFacade = (*YamlRepository)(nil)

// LoadSettings reads the settings file, falling back to the defaults when
// the file does not exist yet.
func (r *YamlRepository) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", r.path, err)
	}

	var s domain.Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", r.path, err)
	}
	return &s, nil
}

// SaveSettings writes the settings file, replacing any previous contents.
func (r *YamlRepository) SaveSettings(ctx context.Context, s domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", r.path, err)
	}
	return nil
}
