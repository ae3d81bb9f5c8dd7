package project

import "github.com/piwi3910/PalletLoad/internal/model"

// DefaultConfigPath returns ~/.palletload/config.json.
func DefaultConfigPath() string {
	return dataFile("config.json")
}

// SaveAppConfig writes the application settings.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSONFile(path, "config", config)
}

// LoadAppConfig reads the application settings. Fields absent from the file,
// or the whole file when it does not exist, take their DefaultAppConfig values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	if _, err := readJSONFile(path, "config", &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentProjects == nil {
		config.RecentProjects = []string{}
	}
	return config, nil
}
