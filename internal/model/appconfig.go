package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default pallet applied to new projects
	DefaultPallet    string  `json:"default_pallet"`     // preset name
	DefaultMaxHeight float64 `json:"default_max_height"` // cm, 0 = use preset value

	// Output preferences
	LogLevel     string `json:"log_level"`     // "debug", "info", "warn", "error"
	OutputFormat string `json:"output_format"` // "table" or "json"
	PaperSize    string `json:"paper_size"`    // "A4" or "Letter" for PDF exports

	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultPallet:    DefaultInventory().Pallets[0].Name,
		DefaultMaxHeight: 0,
		LogLevel:         "info",
		OutputFormat:     "table",
		PaperSize:        "A4",
		RecentProjects:   []string{},
	}
}

// ResolvePallet returns the configured default pallet from the inventory,
// applying DefaultMaxHeight when set. The second return value is false when
// the preset name is not in the inventory.
func (c AppConfig) ResolvePallet(inv Inventory) (Pallet, bool) {
	preset := inv.FindPalletByName(c.DefaultPallet)
	if preset == nil {
		return Pallet{}, false
	}
	p := preset.ToPallet()
	if c.DefaultMaxHeight > 0 {
		p.MaxHeight = c.DefaultMaxHeight
	}
	return p, true
}

// AddRecentProject moves path to the front of the recent list, keeping at
// most limit entries.
func (c *AppConfig) AddRecentProject(path string, limit int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentProjects = recent
}
