package extract

import (
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// VisualExtractor fills the image/video template slots: subject, visual
// style and quality from the text, lighting and composition left for
// the user to refine.
type VisualExtractor struct{}

func (VisualExtractor) Category() domain.Category { return domain.CategoryVisual }

var visualStyles = []phrase{
	{"ריאליסטי", "Photo-realistic"},
	{"אמנות דיגיטלית", "Digital Art"},
	{"סקיצה", "Concept Sketch"},
	{"3d", "3D Render"},
	{"צבעי מים", "Watercolor"},
	{"מינימליסטי", "Minimalist"},
}

var qualities = []phrase{
	{"4k", "4K, Ultra Detailed"},
	{"גבוהה", "4K, Ultra Detailed"},
	{"קולנועי", "Cinematic, Professional Grade"},
	{"cinematic", "Cinematic, Professional Grade"},
}

// instructionWords are stripped from the text when deriving the subject.
var instructionWords = []string{"צור", "תמונה", "של"}

func (VisualExtractor) Extract(in Input) domain.PromptVariables {
	return domain.PromptVariables{
		"subject":      extractSubject(in.Text),
		"visual_style": lookup(in.Text, visualStyles),
		"lighting":     domain.Unspecified,
		"composition":  domain.Unspecified,
		"quality":      lookup(in.Text, qualities),
	}
}

// extractSubject strips the common instruction words and returns what
// remains as the image subject.
func extractSubject(text string) string {
	clean := text
	for _, w := range instructionWords {
		clean = strings.ReplaceAll(clean, w, "")
	}
	clean = strings.Join(strings.Fields(clean), " ")
	return orUnspecified(clean)
}
