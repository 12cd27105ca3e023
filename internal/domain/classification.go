package domain

// StyleAttributes are the stylistic dimensions detected from a request.
// Every dimension has a neutral default so an empty detection is still
// a complete value.
type StyleAttributes struct {
	Formality Formality
	Tone      Tone
	Length    Length
}

// NeutralStyle returns the default style used when no indicator matches.
func NeutralStyle() StyleAttributes {
	return StyleAttributes{
		Formality: FormalityNeutral,
		Tone:      ToneNeutral,
		Length:    LengthModerate,
	}
}

// Classification is the immutable outcome of scoring a request against
// the category lexicons.
type Classification struct {
	Label      Category
	Confidence float64 // always within [0,1]
	Style      StyleAttributes

	// MatchedKeywords lists the winning category's matched keywords in
	// lexicon declaration order.
	MatchedKeywords []string

	// Evidence holds the clamped score of every category that matched
	// at least one keyword. Categories with zero matches are absent.
	Evidence map[Category]float64
}
