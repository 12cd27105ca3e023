package domain

// Category is the task label a request classifies into. Exactly one
// template is active per category.
type Category string

const (
	CategoryVisual    Category = "visual"
	CategoryTextual   Category = "textual"
	CategoryTechnical Category = "technical"
)

// CategoryFallback is used when no lexicon keyword matches and when a
// caller override names an unknown category.
const CategoryFallback = CategoryTextual

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryVisual: true, CategoryTextual: true, CategoryTechnical: true,
}

// IsValidCategory returns true if the given label is a known category.
func IsValidCategory(c Category) bool {
	return ValidCategories[c]
}

type Formality string

const (
	FormalityFormal  Formality = "formal"
	FormalityCasual  Formality = "casual"
	FormalityNeutral Formality = "neutral"
)

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneUrgent       Tone = "urgent"
	TonePersuasive   Tone = "persuasive"
	ToneInformative  Tone = "informative"
	ToneNeutral      Tone = "neutral"
)

type Length string

const (
	LengthConcise   Length = "concise"
	LengthModerate  Length = "moderate"
	LengthExtensive Length = "extensive"
)

// Feedback is a user's verdict on a generated prompt.
type Feedback string

const (
	FeedbackGood    Feedback = "good"
	FeedbackBad     Feedback = "bad"
	FeedbackNeutral Feedback = "neutral"
)

// ValidFeedback is the canonical set of accepted feedback strings.
var ValidFeedback = map[Feedback]bool{
	FeedbackGood: true, FeedbackBad: true, FeedbackNeutral: true,
}
