package domain

// Synthesis is the packaged result of one classify→extract→render run,
// carrying enough provenance for display and persistence.
type Synthesis struct {
	Prompt       string
	TemplateUsed string
	Label        Category
	Confidence   float64
	Variables    PromptVariables

	Style           StyleAttributes
	MatchedKeywords []string
	OriginalText    string

	// OverrideRejected is set when the caller named a category with no
	// registered template and the synthesis fell back to the default.
	OverrideRejected bool
}
