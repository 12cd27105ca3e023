package classify

import (
	"testing"

	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/lexicon"
	"github.com/stretchr/testify/assert"
)

func textualStyleDetector() *StyleDetector {
	return NewStyleDetector(lexicon.DefaultStyle(), domain.CategoryTextual)
}

func TestDetect_AllDimensionsDefaultWithoutIndicators(t *testing.T) {
	d := textualStyleDetector()

	style := d.Detect("שלום", domain.CategoryTextual)

	assert.Equal(t, domain.NeutralStyle(), style)
}

func TestDetect_FormalIndicator(t *testing.T) {
	d := textualStyleDetector()

	style := d.Detect("מכתב רשמי", domain.CategoryTextual)

	assert.Equal(t, domain.FormalityFormal, style.Formality)
}

func TestDetect_CasualWinsByCount(t *testing.T) {
	d := textualStyleDetector()

	// Two casual indicators against zero formal ones.
	style := d.Detect("משהו קליל ונינוח", domain.CategoryTextual)

	assert.Equal(t, domain.FormalityCasual, style.Formality)
}

func TestDetect_FormalityTieKeepsNeutral(t *testing.T) {
	d := textualStyleDetector()

	// "לא רשמי" contains the formal indicator "רשמי" as a substring,
	// so both sides count one and the dimension stays neutral.
	style := d.Detect("טקסט לא רשמי", domain.CategoryTextual)

	assert.Equal(t, domain.FormalityNeutral, style.Formality)
}

func TestDetect_ToneAndLength(t *testing.T) {
	d := textualStyleDetector()

	style := d.Detect("משהו דחוף וקצר מאוד", domain.CategoryTextual)

	assert.Equal(t, domain.ToneUrgent, style.Tone)
	assert.Equal(t, domain.LengthConcise, style.Length)
}

func TestDetect_ExtensiveLength(t *testing.T) {
	d := textualStyleDetector()

	style := d.Detect("מסמך ארוך ומפורט", domain.CategoryTextual)

	assert.Equal(t, domain.LengthExtensive, style.Length)
}

func TestDetect_ShortCircuitsForOtherCategories(t *testing.T) {
	d := textualStyleDetector()

	// Indicators are present but the category is outside the style set.
	style := d.Detect("תמונה רשמית ארוכה ודחופה", domain.CategoryVisual)

	assert.Equal(t, domain.NeutralStyle(), style)
}

func TestDetect_NoStyleSetDetectsEveryCategory(t *testing.T) {
	d := NewStyleDetector(lexicon.DefaultStyle())

	style := d.Detect("מכתב רשמי", domain.CategoryVisual)

	assert.Equal(t, domain.FormalityFormal, style.Formality)
}
