package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// SettingsRepositoryFacade persists the shop-level preferences.
// Unlike the domain collections, settings survive restarts.
type SettingsRepositoryFacade interface {
	// LoadSettings returns the persisted settings, or the defaults when
	// nothing has been saved yet.
	LoadSettings(ctx context.Context) (*domain.Settings, error)

	// SaveSettings persists the given settings, replacing any previous value.
	SaveSettings(ctx context.Context, s domain.Settings) error
}
