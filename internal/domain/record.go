package domain

import "time"

// PromptRecord is one persisted synthesis with optional user feedback.
type PromptRecord struct {
	ID           string
	InputText    string
	Category     Category
	Style        StyleAttributes
	Prompt       string
	Feedback     Feedback // empty until the user rates the prompt
	Rating       *float64 // 1-5, nil until rated
	MetadataJSON string
	CreatedAt    time.Time
}

// Statistics summarizes the stored prompt history.
type Statistics struct {
	TotalPrompts  int
	AverageRating float64 // over rated records only; 0 when none are rated
	Categories    []Category
}
