// Package template loads and indexes the prompt templates consumed by
// synthesis. Templates are opaque records: one active template per
// category, loaded once at startup and read-only afterwards.
package template

import (
	"errors"
	"fmt"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

var (
	// ErrNoTemplates indicates an empty template source, a fatal
	// configuration error: nothing can be synthesized without at least
	// the default category's template.
	ErrNoTemplates = errors.New("template source is empty")

	// ErrDuplicateCategory indicates two templates claiming the same
	// category. Duplicates are rejected at load time rather than
	// silently overwritten.
	ErrDuplicateCategory = errors.New("duplicate template category")
)

// Schema is the on-disk JSON template format.
type Schema struct {
	TaskType    string `json:"task_type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Template    string `json:"template"`
}

// Source provides template records. Implementations do not interpret
// bodies; they only deliver them.
type Source interface {
	LoadAll() ([]domain.Template, error)
}

// Set is the immutable per-category template index used by synthesis.
type Set struct {
	byCategory map[domain.Category]domain.Template
	order      []domain.Category
}

// NewSet indexes templates by category. An empty input or a repeated
// category is a configuration error.
func NewSet(templates []domain.Template) (*Set, error) {
	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	s := &Set{byCategory: make(map[domain.Category]domain.Template, len(templates))}
	for _, t := range templates {
		if _, exists := s.byCategory[t.Category]; exists {
			return nil, fmt.Errorf("category %q: %w", t.Category, ErrDuplicateCategory)
		}
		s.byCategory[t.Category] = t
		s.order = append(s.order, t.Category)
	}
	return s, nil
}

// Get returns the template for a category.
func (s *Set) Get(c domain.Category) (domain.Template, bool) {
	t, ok := s.byCategory[c]
	return t, ok
}

// List returns all templates in load order.
func (s *Set) List() []domain.Template {
	out := make([]domain.Template, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, s.byCategory[c])
	}
	return out
}

// Categories returns the covered category labels in load order.
func (s *Set) Categories() []domain.Category {
	return append([]domain.Category(nil), s.order...)
}
