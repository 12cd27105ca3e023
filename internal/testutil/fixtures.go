package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// RecordOption customizes a test prompt record.
type RecordOption func(*domain.PromptRecord)

func WithCategory(c domain.Category) RecordOption {
	return func(r *domain.PromptRecord) {
		r.Category = c
	}
}

func WithRating(rating float64, feedback domain.Feedback) RecordOption {
	return func(r *domain.PromptRecord) {
		r.Rating = &rating
		r.Feedback = feedback
	}
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.PromptRecord) {
		r.CreatedAt = t
	}
}

func WithStyle(s domain.StyleAttributes) RecordOption {
	return func(r *domain.PromptRecord) {
		r.Style = s
	}
}

// NewTestRecord builds a textual prompt record with sensible defaults.
func NewTestRecord(inputText string, opts ...RecordOption) *domain.PromptRecord {
	r := &domain.PromptRecord{
		ID:        uuid.New().String(),
		InputText: inputText,
		Category:  domain.CategoryTextual,
		Style:     domain.NeutralStyle(),
		Prompt:    "Write a text with the following specification:\n\nKey points to cover:\n" + inputText,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
