package classify

import (
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/lexicon"
)

// StyleDetector resolves the formality, tone and length dimensions of a
// request, each from its own indicator table. Dimensions resolve
// independently: the value with the strictly highest indicator count
// wins, and a tie or zero matches keeps the neutral default.
type StyleDetector struct {
	lex      *lexicon.StyleLexicon
	styleFor map[domain.Category]bool
}

// NewStyleDetector creates a detector that performs indicator matching
// only for the given categories; all other labels short-circuit to the
// neutral defaults. With no categories given, every label is detected.
func NewStyleDetector(lex *lexicon.StyleLexicon, styleFor ...domain.Category) *StyleDetector {
	var set map[domain.Category]bool
	if len(styleFor) > 0 {
		set = make(map[domain.Category]bool, len(styleFor))
		for _, c := range styleFor {
			set[c] = true
		}
	}
	return &StyleDetector{lex: lex, styleFor: set}
}

// Detect resolves the style attributes of text classified as label.
// The text is expected to be lowercased by the caller.
func (d *StyleDetector) Detect(text string, label domain.Category) domain.StyleAttributes {
	style := domain.NeutralStyle()

	if d.styleFor != nil && !d.styleFor[label] {
		return style
	}

	formal := countIndicators(text, d.lex.Formal)
	casual := countIndicators(text, d.lex.Casual)
	switch {
	case formal > casual:
		style.Formality = domain.FormalityFormal
	case casual > formal:
		style.Formality = domain.FormalityCasual
	}

	if tone, ok := d.detectTone(text); ok {
		style.Tone = tone
	}
	if length, ok := d.detectLength(text); ok {
		style.Length = length
	}

	return style
}

func (d *StyleDetector) detectTone(text string) (domain.Tone, bool) {
	best, count, unique := domain.ToneNeutral, 0, false
	for _, entry := range d.lex.Tones {
		n := countIndicators(text, entry.Indicators)
		switch {
		case n > count:
			best, count, unique = entry.Tone, n, true
		case n == count && n > 0:
			unique = false
		}
	}
	return best, count > 0 && unique
}

func (d *StyleDetector) detectLength(text string) (domain.Length, bool) {
	best, count, unique := domain.LengthModerate, 0, false
	for _, entry := range d.lex.Lengths {
		n := countIndicators(text, entry.Indicators)
		switch {
		case n > count:
			best, count, unique = entry.Length, n, true
		case n == count && n > 0:
			unique = false
		}
	}
	return best, count > 0 && unique
}

// countIndicators counts how many distinct indicators occur in text.
// Multiple occurrences of one indicator count once.
func countIndicators(text string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(text, strings.ToLower(ind)) {
			n++
		}
	}
	return n
}
