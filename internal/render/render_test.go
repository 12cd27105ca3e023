package render

import (
	"strings"
	"testing"

	"github.com/shkomig/Engineered-prompt/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRender_SubstitutesVariables(t *testing.T) {
	body := "Subject: $$subject$$, Style: $$visual_style$$"
	vars := domain.PromptVariables{
		"subject":      "a cat in space",
		"visual_style": domain.Unspecified,
	}

	out := Render(body, vars)

	assert.Equal(t, "Subject: a cat in space, Style: [to be specified]", out)
	assert.NotContains(t, out, "$$")
}

func TestRender_UnknownSlotBecomesUnspecified(t *testing.T) {
	out := Render("Lighting: $$lighting$$", domain.PromptVariables{})

	assert.Equal(t, "Lighting: "+domain.Unspecified, out)
}

func TestRender_Idempotent(t *testing.T) {
	body := "A: $$a$$ B: $$b$$ C: $$missing$$"
	vars := domain.PromptVariables{"a": "one", "b": "two"}

	once := Render(body, vars)
	twice := Render(once, vars)

	assert.Equal(t, once, twice)
}

func TestRender_NoPlaceholderLeaks(t *testing.T) {
	bodies := []string{
		"$$a$$$$b$$",
		"start $$one$$ middle $$two$$ end",
		"$$nested$$ text $$another_slot$$",
	}
	for _, body := range bodies {
		out := Render(body, domain.PromptVariables{"a": "x"})
		for _, slot := range Slots(body) {
			assert.NotContains(t, out, "$$"+slot+"$$", "body %q", body)
		}
	}
}

func TestRender_UnbalancedMarkerIsLiteral(t *testing.T) {
	out := Render("price is $$ unknown", domain.PromptVariables{})

	assert.Equal(t, "price is $$ unknown", out)
}

func TestRender_SimilarSlotNamesDoNotCollide(t *testing.T) {
	body := "$$style$$ and $$style_extra$$"
	vars := domain.PromptVariables{
		"style":       "minimal",
		"style_extra": "ornate",
	}

	assert.Equal(t, "minimal and ornate", Render(body, vars))
}

func TestRender_ValueContainingDollarSigns(t *testing.T) {
	out := Render("Cost: $$cost$$", domain.PromptVariables{"cost": "US$ 5"})

	assert.Equal(t, "Cost: US$ 5", out)
}

func TestSlots_ReturnsDeclaredNamesInOrder(t *testing.T) {
	body := "$$b$$ then $$a$$ then $$b$$ again"

	assert.Equal(t, []string{"b", "a"}, Slots(body))
}

func TestSlots_EmptyBody(t *testing.T) {
	assert.Empty(t, Slots("no placeholders here"))
}

func TestRender_LongBodyAllSlotsResolved(t *testing.T) {
	var b strings.Builder
	for _, slot := range []string{"subject", "visual_style", "lighting", "composition", "quality", "context", "instructions"} {
		b.WriteString(slot + ": $$" + slot + "$$\n")
	}

	out := Render(b.String(), domain.PromptVariables{"subject": "a fox"})

	assert.Contains(t, out, "subject: a fox")
	assert.Contains(t, out, "lighting: "+domain.Unspecified)
	assert.NotContains(t, out, "$$")
}
