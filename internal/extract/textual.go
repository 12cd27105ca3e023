package extract

import (
	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// TextualExtractor fills the writing template slots: purpose, recipient,
// tone and length (mapped from the detected style) and the key points
// to cover.
type TextualExtractor struct{}

func (TextualExtractor) Category() domain.Category { return domain.CategoryTextual }

var purposes = []phrase{
	{"סכם", "Summarize"},
	{"הסבר", "Explain"},
	{"בקש", "Request"},
	{"דווח", "Report"},
	{"שכנע", "Persuade"},
	{"מידע", "Inform"},
}

var recipients = []phrase{
	{"מורה", "Teacher"},
	{"מנהל", "Boss/Manager"},
	{"עמית", "Colleague"},
	{"לקוח", "Customer"},
	{"קהל", "General Audience"},
}

func (TextualExtractor) Extract(in Input) domain.PromptVariables {
	return domain.PromptVariables{
		"purpose":    lookup(in.Text, purposes),
		"recipient":  lookup(in.Text, recipients),
		"tone":       mapTone(in.Style),
		"length":     mapLength(in.Style.Length),
		"key_points": orUnspecified(in.Text),
	}
}

// mapTone prefers the detected tone; a neutral tone falls back to the
// formality dimension, and a fully neutral style reads as professional.
func mapTone(style domain.StyleAttributes) string {
	switch style.Tone {
	case domain.ToneProfessional:
		return "Professional"
	case domain.ToneFriendly:
		return "Friendly"
	case domain.ToneUrgent:
		return "Urgent"
	case domain.TonePersuasive:
		return "Persuasive"
	case domain.ToneInformative:
		return "Informative"
	}

	switch style.Formality {
	case domain.FormalityFormal:
		return "Formal"
	case domain.FormalityCasual:
		return "Casual"
	}
	return "Professional"
}

func mapLength(length domain.Length) string {
	switch length {
	case domain.LengthConcise:
		return "Concise (1-2 paragraphs)"
	case domain.LengthExtensive:
		return "Extensive (1000+ words)"
	default:
		return "Moderate (3-5 paragraphs)"
	}
}
