package project

import "github.com/piwi3910/PalletLoad/internal/model"

// DefaultTemplatePath returns ~/.palletload/templates.json.
func DefaultTemplatePath() string {
	return dataFile("templates.json")
}

// SaveTemplates writes the template store.
func SaveTemplates(path string, store model.TemplateStore) error {
	return writeJSONFile(path, "templates", store)
}

// LoadTemplates reads the template store; a missing file is an empty store.
func LoadTemplates(path string) (model.TemplateStore, error) {
	store := model.NewTemplateStore()
	if _, err := readJSONFile(path, "templates", &store); err != nil {
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.ProjectTemplate{}
	}
	return store, nil
}
