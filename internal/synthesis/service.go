// Package synthesis composes classification, extraction and rendering
// into the single entry point callers use to turn request text into a
// finished prompt.
package synthesis

import (
	"context"
	"fmt"

	"github.com/shkomig/Engineered-prompt/internal/classify"
	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/shkomig/Engineered-prompt/internal/extract"
	"github.com/shkomig/Engineered-prompt/internal/render"
	"github.com/shkomig/Engineered-prompt/internal/template"
)

// Request is one synthesis call. Context and Instructions are optional
// caller-supplied free text; Override, when non-empty, replaces the
// classified label.
type Request struct {
	Text         string
	Context      string
	Instructions string
	Override     domain.Category
}

type Service interface {
	// Synthesize runs classify → extract → render and packages the
	// result with full provenance. It is total over request text: any
	// input, including the empty string, produces a well-formed result.
	Synthesize(ctx context.Context, req Request) (*domain.Synthesis, error)

	// Templates lists the loaded templates in load order.
	Templates(ctx context.Context) []domain.Template
}

type service struct {
	classifier *classify.Classifier
	extractors *extract.Registry
	templates  *template.Set
	fallback   domain.Category
}

// NewService wires the pipeline. Construction fails when the template
// set has no template for the fallback category or when any loaded
// template's category has no registered extractor; both are
// configuration errors surfaced at startup, not per request.
func NewService(classifier *classify.Classifier, extractors *extract.Registry, templates *template.Set, fallback domain.Category) (Service, error) {
	if _, ok := templates.Get(fallback); !ok {
		return nil, fmt.Errorf("fallback category %q has no template", fallback)
	}
	if err := extractors.Validate(templates.Categories()); err != nil {
		return nil, err
	}

	return &service{
		classifier: classifier,
		extractors: extractors,
		templates:  templates,
		fallback:   fallback,
	}, nil
}

func (s *service) Synthesize(ctx context.Context, req Request) (*domain.Synthesis, error) {
	classification := s.classifier.Classify(req.Text)

	label := classification.Label
	if req.Override != "" {
		label = req.Override
	}

	// A label with no template, whether from an unknown override or a
	// lexicon category without one, falls back to the default category.
	// The fallback is recorded rather than raised.
	overrideRejected := false
	tmpl, ok := s.templates.Get(label)
	if !ok {
		overrideRejected = req.Override != "" && label == req.Override
		label = s.fallback
		tmpl, _ = s.templates.Get(label)
	}

	vars, err := s.extractors.Extract(label, extract.Input{
		Text:         req.Text,
		Style:        classification.Style,
		Context:      req.Context,
		Instructions: req.Instructions,
	})
	if err != nil {
		// Unreachable when construction validated extractor coverage.
		return nil, fmt.Errorf("extracting variables: %w", err)
	}

	return &domain.Synthesis{
		Prompt:           render.Render(tmpl.Body, vars),
		TemplateUsed:     tmpl.Name,
		Label:            label,
		Confidence:       classification.Confidence,
		Variables:        vars,
		Style:            classification.Style,
		MatchedKeywords:  classification.MatchedKeywords,
		OriginalText:     req.Text,
		OverrideRejected: overrideRejected,
	}, nil
}

func (s *service) Templates(ctx context.Context) []domain.Template {
	return s.templates.List()
}
