package domain

// Settings holds the shop-level preferences persisted locally.
// Logo is stored as a data URL, matching what the dashboard uploads.
type Settings struct {
	ShopName string `json:"shopName" yaml:"shopName"`
	Logo     string `json:"logo" yaml:"logo"`
	Theme    string `json:"theme" yaml:"theme"`
	DarkMode bool   `json:"darkMode" yaml:"darkMode"`
}

// DefaultSettings returns the settings used before the shop owner has
// customised anything.
func DefaultSettings() Settings {
	return Settings{
		ShopName: "My Shop",
		Theme:    "dark",
		DarkMode: true,
	}
}
