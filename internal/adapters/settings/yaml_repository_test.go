package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsReturnsDefaultsWhenFileMissing(t *testing.T) {
	repo := NewYamlRepository(filepath.Join(t.TempDir(), "settings.yaml"))

	s, err := repo.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *s)
}

func TestSaveAndLoadSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewYamlRepository(filepath.Join(t.TempDir(), "settings.yaml"))

	saved := domain.Settings{
		ShopName: "Tony's Retail",
		Logo:     "data:image/png;base64,iVBORw0KGgo=",
		Theme:    "light",
		DarkMode: false,
	}
	require.NoError(t, repo.SaveSettings(ctx, saved))

	loaded, err := repo.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, *loaded)
}
