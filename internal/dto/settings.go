package dto

import "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"

// UpdateSettingsRequest carries the full shop preferences from the settings
// screen. Logo is a data URL produced by the dashboard's uploader.
type UpdateSettingsRequest struct {
	ShopName string `json:"shopName" binding:"required"`
	Logo     string `json:"logo" binding:"omitempty,dataurl"`
	Theme    string `json:"theme" binding:"required,oneof=dark light"`
	DarkMode bool   `json:"darkMode"`
}

// SettingsResponse defines the data returned for the shop preferences.
type SettingsResponse struct {
	ShopName string `json:"shopName"`
	Logo     string `json:"logo,omitempty"`
	Theme    string `json:"theme"`
	DarkMode bool   `json:"darkMode"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		ShopName: s.ShopName,
		Logo:     s.Logo,
		Theme:    s.Theme,
		DarkMode: s.DarkMode,
	}
}
