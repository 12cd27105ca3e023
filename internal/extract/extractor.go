// Package extract produces template variables from raw request text.
// Each category has its own extractor built from small phrase-to-value
// lookup tables; extraction is best-effort string matching and never
// fails. Every slot resolves to some value, with domain.Unspecified as
// the floor.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// ErrNoExtractor indicates a category with no registered extractor, a
// configuration gap detected at startup rather than per request.
var ErrNoExtractor = errors.New("no extractor registered for category")

// Input carries everything an extractor may draw on. Context and
// Instructions are caller-supplied free text passed through verbatim.
type Input struct {
	Text         string
	Style        domain.StyleAttributes
	Context      string
	Instructions string
}

// CategoryExtractor fills the variable slots of one category's template.
type CategoryExtractor interface {
	Category() domain.Category
	Extract(in Input) domain.PromptVariables
}

// Registry dispatches extraction by category label.
type Registry struct {
	extractors map[domain.Category]CategoryExtractor
}

// NewRegistry builds a registry from the given extractors. A duplicate
// category keeps the last registration.
func NewRegistry(extractors ...CategoryExtractor) *Registry {
	m := make(map[domain.Category]CategoryExtractor, len(extractors))
	for _, e := range extractors {
		m[e.Category()] = e
	}
	return &Registry{extractors: m}
}

// DefaultRegistry returns a registry covering the built-in categories.
func DefaultRegistry() *Registry {
	return NewRegistry(
		VisualExtractor{},
		TextualExtractor{},
		TechnicalExtractor{},
	)
}

// Validate checks that every given category has an extractor, so a
// template set referencing an uncovered category fails at startup.
func (r *Registry) Validate(categories []domain.Category) error {
	for _, c := range categories {
		if _, ok := r.extractors[c]; !ok {
			return fmt.Errorf("category %q: %w", c, ErrNoExtractor)
		}
	}
	return nil
}

// Extract dispatches to the category's extractor and adds the shared
// context/instructions slots. Empty caller fields resolve to the
// unspecified marker.
func (r *Registry) Extract(label domain.Category, in Input) (domain.PromptVariables, error) {
	ex, ok := r.extractors[label]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", label, ErrNoExtractor)
	}

	vars := ex.Extract(in)
	vars["context"] = orUnspecified(in.Context)
	vars["instructions"] = orUnspecified(in.Instructions)
	return vars, nil
}

// phrase maps a source-language fragment to its canonical English value.
type phrase struct {
	match string
	value string
}

// lookup returns the value of the first phrase found in text, or the
// unspecified marker. Matching is case-insensitive; table order decides
// between overlapping phrases.
func lookup(text string, table []phrase) string {
	lower := strings.ToLower(text)
	for _, p := range table {
		if strings.Contains(lower, p.match) {
			return p.value
		}
	}
	return domain.Unspecified
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return domain.Unspecified
	}
	return s
}
