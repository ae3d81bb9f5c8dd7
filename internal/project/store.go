package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// dataDirName is the per-user directory holding config, presets and templates.
const dataDirName = ".palletload"

// DefaultConfigDir returns ~/.palletload, or ./.palletload when the home
// directory cannot be determined.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, dataDirName)
}

// dataFile names a file inside the default config directory.
func dataFile(name string) string {
	return filepath.Join(DefaultConfigDir(), name)
}

// writeJSONFile stores v as indented JSON, creating parent directories.
// what names the content in error messages.
func writeJSONFile(path, what string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", what, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", what, err)
	}
	return nil
}

// readJSONFile decodes path into v. A missing file is not an error: it
// reports false and leaves v untouched.
func readJSONFile(path, what string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s file: %w", what, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s file %s: %w", what, path, err)
	}
	return true, nil
}
