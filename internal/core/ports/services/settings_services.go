package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// SettingsSvcFacade manages the locally persisted shop preferences.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
