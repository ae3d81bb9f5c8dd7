// Package project persists projects, application settings, pallet presets
// and templates on disk.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PalletLoad/internal/model"
	"gopkg.in/yaml.v3"
)

// IsYAML reports whether path names a YAML file.
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// SaveProject writes a project as YAML when the path ends in .yaml or .yml
// and as indented JSON otherwise.
func SaveProject(path string, proj model.Project) error {
	var (
		data []byte
		err  error
	)
	if IsYAML(path) {
		data, err = yaml.Marshal(proj)
	} else {
		data, err = json.MarshalIndent(proj, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// LoadProject reads a project written by SaveProject. Nil box lists come
// back empty.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	var proj model.Project
	if IsYAML(path) {
		err = yaml.Unmarshal(data, &proj)
	} else {
		err = json.Unmarshal(data, &proj)
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}

	if proj.Boxes == nil {
		proj.Boxes = []model.BoxSpec{}
	}
	if proj.Result != nil {
		if proj.Result.Placed == nil {
			proj.Result.Placed = []model.PlacedBox{}
		}
		if proj.Result.Unplaced == nil {
			proj.Result.Unplaced = []model.BoxSpec{}
		}
	}
	return proj, nil
}
