// Package classify scores raw request text against injected keyword
// lexicons. Classification is a pure function of the text and the
// tables: no I/O, no shared mutable state, safe for concurrent use.
package classify

import (
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/lexicon"
)

// FallbackConfidence is reported when no category matches any keyword.
const FallbackConfidence = 0.5

// Classifier assigns a category label to request text by weighted
// keyword matching.
type Classifier struct {
	lex   *lexicon.CategoryLexicon
	style *StyleDetector
}

// New creates a Classifier over the given category table and style
// detector.
func New(lex *lexicon.CategoryLexicon, style *StyleDetector) *Classifier {
	return &Classifier{lex: lex, style: style}
}

// Classify scores text against every category lexicon and returns the
// winning label with confidence and matched-keyword evidence.
//
// Each keyword occurring as a case-insensitive substring adds the
// category's weight; per-category scores are clamped to 1.0. Categories
// with zero matches are excluded entirely. If nothing matches anywhere,
// the fallback label is returned with FallbackConfidence and empty
// evidence. Ties are broken by lexicon declaration order.
func (c *Classifier) Classify(text string) domain.Classification {
	lower := strings.ToLower(text)

	label := domain.CategoryFallback
	confidence := FallbackConfidence
	var matched []string
	evidence := make(map[domain.Category]float64)

	best := 0.0
	for _, entry := range c.lex.Entries {
		score := 0.0
		var hits []string
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score += entry.Weight
				hits = append(hits, kw)
			}
		}
		if len(hits) == 0 {
			continue
		}
		if score > 1.0 {
			score = 1.0
		}
		evidence[entry.Category] = score

		// Strictly-greater keeps the first-declared category on ties.
		if score > best {
			best = score
			label = entry.Category
			confidence = score
			matched = hits
		}
	}

	return domain.Classification{
		Label:           label,
		Confidence:      confidence,
		Style:           c.style.Detect(lower, label),
		MatchedKeywords: matched,
		Evidence:        evidence,
	}
}
