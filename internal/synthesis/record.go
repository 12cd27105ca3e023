package synthesis

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// recordMetadata is the provenance serialized alongside a saved prompt.
type recordMetadata struct {
	Style           domain.StyleAttributes `json:"style"`
	MatchedKeywords []string               `json:"matched_keywords"`
	OriginalText    string                 `json:"original_text"`
	TemplateUsed    string                 `json:"template_used"`
	Confidence      float64                `json:"confidence"`
}

// NewRecord converts a synthesis result into a persistable record with
// a fresh ID and serialized provenance.
func NewRecord(s *domain.Synthesis) (*domain.PromptRecord, error) {
	meta, err := json.Marshal(recordMetadata{
		Style:           s.Style,
		MatchedKeywords: s.MatchedKeywords,
		OriginalText:    s.OriginalText,
		TemplateUsed:    s.TemplateUsed,
		Confidence:      s.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("serializing record metadata: %w", err)
	}

	return &domain.PromptRecord{
		ID:           uuid.New().String(),
		InputText:    s.OriginalText,
		Category:     s.Label,
		Style:        s.Style,
		Prompt:       s.Prompt,
		MetadataJSON: string(meta),
		CreatedAt:    time.Now().UTC(),
	}, nil
}
