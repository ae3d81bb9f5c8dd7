package model

import "time"

// ProjectTemplate is a reusable box list with its pallet, such as a recurring
// order. It never carries a placement result.
type ProjectTemplate struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	CreatedAt   string    `json:"created_at" yaml:"created_at"`
	UpdatedAt   string    `json:"updated_at" yaml:"updated_at"`
	Pallet      Pallet    `json:"pallet" yaml:"pallet"`
	Boxes       []BoxSpec `json:"boxes" yaml:"boxes"`
}

// NewProjectTemplate creates a new template from the given project data.
func NewProjectTemplate(name, description string, pallet Pallet, boxes []BoxSpec) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          NewID(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Pallet:      pallet,
		Boxes:       copyBoxes(boxes),
	}
}

// ToProject creates a new Project from this template.
// Boxes get fresh IDs so they are independent of the template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	boxes := make([]BoxSpec, len(t.Boxes))
	for i, b := range t.Boxes {
		boxes[i] = NewBox(b.Name, b.Length, b.Width, b.Height, b.Weight)
		boxes[i].Color = b.Color
	}

	return Project{
		Name:   projectName,
		Pallet: t.Pallet,
		Boxes:  boxes,
	}
}

// TemplateStore holds a collection of project templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ProjectTemplate{},
	}
}

// Add adds a template to the store, replacing any template with the same name.
func (ts *TemplateStore) Add(t ProjectTemplate) {
	for i := range ts.Templates {
		if ts.Templates[i].Name == t.Name {
			t.CreatedAt = ts.Templates[i].CreatedAt
			ts.Templates[i] = t
			return
		}
	}
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// copyBoxes returns an independent copy of a box slice, never nil.
func copyBoxes(boxes []BoxSpec) []BoxSpec {
	if boxes == nil {
		return []BoxSpec{}
	}
	cp := make([]BoxSpec, len(boxes))
	copy(cp, boxes)
	return cp
}
