package template

import "github.com/shkomig/Engineered-prompt/internal/domain"

// Builtin returns the default template set covering the three built-in
// categories. Bodies use $$name$$ placeholders; each slot is filled by
// the matching category extractor or left as the unspecified marker.
func Builtin() []domain.Template {
	return []domain.Template{
		{
			Category:    domain.CategoryVisual,
			Name:        "Visual Creation Template",
			Description: "Image, video and graphic generation prompts",
			Body: `Create a high-quality visual with the following specification:

Subject: $$subject$$
Style: $$visual_style$$
Lighting: $$lighting$$
Composition: $$composition$$
Quality: $$quality$$

Additional context: $$context$$
Special instructions: $$instructions$$`,
		},
		{
			Category:    domain.CategoryTextual,
			Name:        "Textual Writing Template",
			Description: "Letters, emails, summaries and other written content",
			Body: `Write a text with the following specification:

Purpose: $$purpose$$
Recipient: $$recipient$$
Tone: $$tone$$
Length: $$length$$

Key points to cover:
$$key_points$$

Additional context: $$context$$
Special instructions: $$instructions$$`,
		},
		{
			Category:    domain.CategoryTechnical,
			Name:        "Technical Coding Template",
			Description: "Code, scripts and technical problem solving",
			Body: `Write code with the following specification:

Language: $$language$$
Environment: $$environment$$

Required functionality:
$$functionality$$

Optimization goal: $$optimization$$

Additional context: $$context$$
Special instructions: $$instructions$$`,
		},
	}
}
