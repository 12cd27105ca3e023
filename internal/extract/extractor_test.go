package extract

import (
	"testing"

	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ValidateDetectsMissingExtractor(t *testing.T) {
	r := NewRegistry(TextualExtractor{})

	err := r.Validate([]domain.Category{domain.CategoryTextual, domain.CategoryVisual})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoExtractor)
	assert.Contains(t, err.Error(), "visual")
}

func TestRegistry_ValidatePassesWithFullCoverage(t *testing.T) {
	r := DefaultRegistry()

	err := r.Validate([]domain.Category{
		domain.CategoryVisual, domain.CategoryTextual, domain.CategoryTechnical,
	})

	assert.NoError(t, err)
}

func TestRegistry_ExtractUnknownCategory(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Extract(domain.Category("music"), Input{Text: "something"})

	assert.ErrorIs(t, err, ErrNoExtractor)
}

func TestRegistry_ContextAndInstructionsPassThrough(t *testing.T) {
	r := DefaultRegistry()

	vars, err := r.Extract(domain.CategoryTextual, Input{
		Text:         "כתוב מכתב",
		Style:        domain.NeutralStyle(),
		Context:      "quarterly report",
		Instructions: "keep it short",
	})

	require.NoError(t, err)
	assert.Equal(t, "quarterly report", vars["context"])
	assert.Equal(t, "keep it short", vars["instructions"])
}

func TestRegistry_EmptyCallerFieldsBecomeUnspecified(t *testing.T) {
	r := DefaultRegistry()

	vars, err := r.Extract(domain.CategoryTextual, Input{Text: "כתוב מכתב", Style: domain.NeutralStyle()})

	require.NoError(t, err)
	assert.Equal(t, domain.Unspecified, vars["context"])
	assert.Equal(t, domain.Unspecified, vars["instructions"])
}

func TestVisualExtractor_SubjectStripsInstructionWords(t *testing.T) {
	vars := VisualExtractor{}.Extract(Input{Text: "צור תמונה של חתול בחלל"})

	assert.Equal(t, "חתול בחלל", vars["subject"])
}

func TestVisualExtractor_StyleAndQuality(t *testing.T) {
	vars := VisualExtractor{}.Extract(Input{Text: "ציור ריאליסטי באיכות 4k"})

	assert.Equal(t, "Photo-realistic", vars["visual_style"])
	assert.Equal(t, "4K, Ultra Detailed", vars["quality"])
	assert.Equal(t, domain.Unspecified, vars["lighting"])
	assert.Equal(t, domain.Unspecified, vars["composition"])
}

func TestVisualExtractor_EmptySubject(t *testing.T) {
	vars := VisualExtractor{}.Extract(Input{Text: "צור תמונה"})

	assert.Equal(t, domain.Unspecified, vars["subject"])
}

func TestTextualExtractor_PurposeAndRecipient(t *testing.T) {
	vars := TextualExtractor{}.Extract(Input{
		Text:  "בקש חופשה מהמנהל",
		Style: domain.NeutralStyle(),
	})

	assert.Equal(t, "Request", vars["purpose"])
	assert.Equal(t, "Boss/Manager", vars["recipient"])
	assert.Equal(t, "בקש חופשה מהמנהל", vars["key_points"])
}

func TestTextualExtractor_ToneMapping(t *testing.T) {
	tests := []struct {
		name  string
		style domain.StyleAttributes
		want  string
	}{
		{"detected tone wins", domain.StyleAttributes{Tone: domain.ToneUrgent, Formality: domain.FormalityFormal, Length: domain.LengthModerate}, "Urgent"},
		{"neutral tone falls back to formality", domain.StyleAttributes{Tone: domain.ToneNeutral, Formality: domain.FormalityFormal, Length: domain.LengthModerate}, "Formal"},
		{"casual formality", domain.StyleAttributes{Tone: domain.ToneNeutral, Formality: domain.FormalityCasual, Length: domain.LengthModerate}, "Casual"},
		{"fully neutral reads professional", domain.NeutralStyle(), "Professional"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := TextualExtractor{}.Extract(Input{Text: "כתוב", Style: tt.style})
			assert.Equal(t, tt.want, vars["tone"])
		})
	}
}

func TestTextualExtractor_LengthMapping(t *testing.T) {
	style := domain.NeutralStyle()
	style.Length = domain.LengthConcise

	vars := TextualExtractor{}.Extract(Input{Text: "כתוב", Style: style})

	assert.Equal(t, "Concise (1-2 paragraphs)", vars["length"])
}

func TestTechnicalExtractor_LanguageAndEnvironment(t *testing.T) {
	vars := TechnicalExtractor{}.Extract(Input{Text: "תכנת פונקציה בפייתון עבור django"})

	assert.Equal(t, "Python", vars["language"])
	assert.Equal(t, "Django", vars["environment"])
	assert.Equal(t, "תכנת פונקציה בפייתון עבור django", vars["functionality"])
}

func TestTechnicalExtractor_OptimizationDefaultsToReadability(t *testing.T) {
	vars := TechnicalExtractor{}.Extract(Input{Text: "כתוב קוד"})

	assert.Equal(t, "Optimize for readability", vars["optimization"])
}

func TestTechnicalExtractor_SpeedOptimization(t *testing.T) {
	vars := TechnicalExtractor{}.Extract(Input{Text: "קוד מהיר במיוחד"})

	assert.Equal(t, "Optimize for speed", vars["optimization"])
}
