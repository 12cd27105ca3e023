package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// DirSource loads template JSON files from a directory.
type DirSource struct {
	Dir string
}

// LoadAll parses every *.json file in the directory, sorted by file
// name so load order is reproducible. A missing directory is reported
// as ErrNoTemplates.
func (s DirSource) LoadAll() ([]domain.Template, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("template directory %s: %w", s.Dir, ErrNoTemplates)
		}
		return nil, fmt.Errorf("reading template directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var templates []domain.Template
	for _, name := range names {
		path := filepath.Join(s.Dir, name)
		t, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading template %s: %w", path, err)
		}
		templates = append(templates, t)
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("template directory %s has no *.json files: %w", s.Dir, ErrNoTemplates)
	}
	return templates, nil
}

func loadFile(path string) (domain.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Template{}, err
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return domain.Template{}, fmt.Errorf("parsing template: %w", err)
	}
	if schema.TaskType == "" {
		return domain.Template{}, fmt.Errorf("template has no task_type")
	}
	if schema.Template == "" {
		return domain.Template{}, fmt.Errorf("template %q has an empty body", schema.TaskType)
	}

	return domain.Template{
		Category:    domain.Category(schema.TaskType),
		Name:        schema.Name,
		Description: schema.Description,
		Body:        schema.Template,
	}, nil
}

// BuiltinSource serves the compiled-in default templates, used when no
// template directory is configured.
type BuiltinSource struct{}

func (BuiltinSource) LoadAll() ([]domain.Template, error) {
	return Builtin(), nil
}
