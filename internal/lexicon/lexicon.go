// Package lexicon holds the static keyword tables driving classification
// and style detection. Tables are plain data constructed once and injected
// into the classifier; they carry no behavior beyond lookup.
package lexicon

import (
	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// CategoryEntry scores one category: each keyword that occurs in the
// input adds Weight to the category's score.
type CategoryEntry struct {
	Category domain.Category `json:"category"`
	Keywords []string        `json:"keywords"`
	Weight   float64         `json:"weight"`
}

// CategoryLexicon is the ordered category table. Slice order is the
// tie-break order: when two categories score equally, the one declared
// first wins.
type CategoryLexicon struct {
	Entries []CategoryEntry `json:"categories"`
}

// ToneEntry lists the indicator keywords for one tone value.
type ToneEntry struct {
	Tone       domain.Tone `json:"tone"`
	Indicators []string    `json:"indicators"`
}

// LengthEntry lists the indicator keywords for one length value.
type LengthEntry struct {
	Length     domain.Length `json:"length"`
	Indicators []string      `json:"indicators"`
}

// StyleLexicon holds the indicator tables for the three style
// dimensions. Each dimension resolves independently: highest indicator
// count wins, ties and zero matches keep the neutral default.
type StyleLexicon struct {
	Formal  []string      `json:"formal"`
	Casual  []string      `json:"casual"`
	Tones   []ToneEntry   `json:"tones"`
	Lengths []LengthEntry `json:"lengths"`
}

// Categories returns the declared category labels in tie-break order.
func (l *CategoryLexicon) Categories() []domain.Category {
	out := make([]domain.Category, 0, len(l.Entries))
	for _, e := range l.Entries {
		out = append(out, e.Category)
	}
	return out
}
