package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the on-disk lexicon format, allowing the built-in Hebrew
// tables to be swapped for another locale without rebuilding.
type File struct {
	Categories []CategoryEntry `json:"categories"`
	Style      *StyleLexicon   `json:"style,omitempty"`
}

// Load reads a lexicon JSON file. Missing style tables fall back to the
// built-in defaults; the category table must be present and well-formed.
func Load(path string) (*CategoryLexicon, *StyleLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading lexicon file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parsing lexicon file: %w", err)
	}

	if len(f.Categories) == 0 {
		return nil, nil, fmt.Errorf("lexicon file %s declares no categories", path)
	}
	for i, e := range f.Categories {
		if e.Category == "" {
			return nil, nil, fmt.Errorf("lexicon entry %d has an empty category", i)
		}
		if len(e.Keywords) == 0 {
			return nil, nil, fmt.Errorf("lexicon category %q has no keywords", e.Category)
		}
		if e.Weight <= 0 || e.Weight > 1 {
			return nil, nil, fmt.Errorf("lexicon category %q has weight %v outside (0,1]", e.Category, e.Weight)
		}
	}

	style := f.Style
	if style == nil {
		style = DefaultStyle()
	}

	return &CategoryLexicon{Entries: f.Categories}, style, nil
}
