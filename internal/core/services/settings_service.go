package services

import (
	"context"
	"log/slog"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// settingsService implements the SettingsSvcFacade interface
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: repo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.LoadSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	settings := domain.Settings{
		ShopName: req.ShopName,
		Logo:     req.Logo,
		Theme:    req.Theme,
		DarkMode: req.DarkMode,
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, err
	}

	s.LogInfo(ctx, "Settings updated successfully",
		slog.String("shop_name", settings.ShopName),
		slog.String("theme", settings.Theme))
	return &settings, nil
}
