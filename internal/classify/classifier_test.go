package classify

import (
	"testing"

	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultClassifier() *Classifier {
	return New(
		lexicon.DefaultCategories(),
		NewStyleDetector(lexicon.DefaultStyle(), domain.CategoryTextual),
	)
}

func TestClassify_FormalEmailRequest(t *testing.T) {
	c := defaultClassifier()

	result := c.Classify("כתוב מייל רשמי למנהל לבקש חופשה")

	assert.Equal(t, domain.CategoryTextual, result.Label)
	assert.InDelta(t, 0.6, result.Confidence, 1e-9, "two textual keywords at 0.3 each")
	assert.Equal(t, []string{"כתוב", "מייל"}, result.MatchedKeywords)
	assert.Equal(t, domain.FormalityFormal, result.Style.Formality)
}

func TestClassify_EmptyInputFallsBack(t *testing.T) {
	c := defaultClassifier()

	result := c.Classify("")

	assert.Equal(t, domain.CategoryFallback, result.Label)
	assert.Equal(t, FallbackConfidence, result.Confidence)
	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.Evidence)
	assert.Equal(t, domain.NeutralStyle(), result.Style)
}

func TestClassify_NoKeywordHitsFallsBack(t *testing.T) {
	c := defaultClassifier()

	result := c.Classify("xyzzy plugh")

	assert.Equal(t, domain.CategoryFallback, result.Label)
	assert.Equal(t, FallbackConfidence, result.Confidence)
	assert.Empty(t, result.Evidence)
}

func TestClassify_ConfidenceClampedToOne(t *testing.T) {
	c := defaultClassifier()

	// Four technical keywords at 0.4 each would sum to 1.6.
	result := c.Classify("python code function api")

	assert.Equal(t, domain.CategoryTechnical, result.Label)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Len(t, result.MatchedKeywords, 4)
}

func TestClassify_ConfidenceAlwaysInRange(t *testing.T) {
	c := defaultClassifier()

	inputs := []string{
		"",
		"תמונה",
		"python code function api sql react django debug json html css git regex",
		"כתוב מכתב אימייל מייל סיכום מאמר דוח הצעה תיאור סיפור",
		"random unrelated text",
	}
	for _, text := range inputs {
		result := c.Classify(text)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "input %q", text)
		assert.LessOrEqual(t, result.Confidence, 1.0, "input %q", text)
	}
}

func TestClassify_ZeroMatchCategoriesExcludedFromEvidence(t *testing.T) {
	c := defaultClassifier()

	result := c.Classify("צור תמונה של חתול")

	require.Contains(t, result.Evidence, domain.CategoryVisual)
	assert.NotContains(t, result.Evidence, domain.CategoryTechnical)
}

func TestClassify_CaseInsensitiveMatching(t *testing.T) {
	c := defaultClassifier()

	result := c.Classify("PYTHON Code")

	assert.Equal(t, domain.CategoryTechnical, result.Label)
}

func TestClassify_TieBreakIsDeclarationOrder(t *testing.T) {
	lex := &lexicon.CategoryLexicon{Entries: []lexicon.CategoryEntry{
		{Category: domain.CategoryVisual, Keywords: []string{"foo"}, Weight: 0.4},
		{Category: domain.CategoryTechnical, Keywords: []string{"bar"}, Weight: 0.4},
	}}
	c := New(lex, NewStyleDetector(lexicon.DefaultStyle()))

	for i := 0; i < 50; i++ {
		result := c.Classify("foo bar")
		require.Equal(t, domain.CategoryVisual, result.Label, "first-declared category must win ties")
		require.Equal(t, 0.4, result.Confidence)
	}
}

func TestClassify_HigherScoreBeatsDeclarationOrder(t *testing.T) {
	lex := &lexicon.CategoryLexicon{Entries: []lexicon.CategoryEntry{
		{Category: domain.CategoryVisual, Keywords: []string{"foo"}, Weight: 0.4},
		{Category: domain.CategoryTechnical, Keywords: []string{"bar", "baz"}, Weight: 0.4},
	}}
	c := New(lex, NewStyleDetector(lexicon.DefaultStyle()))

	result := c.Classify("foo bar baz")

	assert.Equal(t, domain.CategoryTechnical, result.Label)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
}
