// Package render substitutes prompt variables into template bodies.
// Placeholders use the $$name$$ form. Rendering is a single left-to-right
// scan: each placeholder span is resolved against the variable map
// exactly once, so similarly named slots cannot collide and repeated
// whole-string replacement is avoided.
package render

import (
	"strings"

	"github.com/shkomig/Engineered-prompt/internal/domain"
)

const marker = "$$"

// Render substitutes vars into body. Placeholders with no entry in vars
// resolve to domain.Unspecified, so the output never contains an
// unresolved $$name$$ span. A $$ without a matching closing $$ is
// literal text. Rendering an already-rendered body is a no-op as long
// as no variable value itself contains placeholder syntax.
func Render(body string, vars domain.PromptVariables) string {
	var b strings.Builder
	b.Grow(len(body))

	i := 0
	for i < len(body) {
		open := strings.Index(body[i:], marker)
		if open < 0 {
			b.WriteString(body[i:])
			break
		}
		open += i
		b.WriteString(body[i:open])

		end := strings.Index(body[open+2:], marker)
		if end < 0 {
			// Unbalanced opener: keep the rest verbatim.
			b.WriteString(body[open:])
			break
		}

		name := body[open+2 : open+2+end]
		if name == "" {
			// "$$$$" is not a placeholder; emit one marker and rescan
			// from the second so "$$$$x$$" still finds the x slot.
			b.WriteString(marker)
			i = open + 2
			continue
		}

		if v, ok := vars[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteString(domain.Unspecified)
		}
		i = open + 2 + end + 2
	}

	return b.String()
}

// Slots returns the distinct placeholder names declared in body, in
// order of first appearance.
func Slots(body string) []string {
	var names []string
	seen := make(map[string]bool)

	i := 0
	for i < len(body) {
		open := strings.Index(body[i:], marker)
		if open < 0 {
			break
		}
		open += i
		end := strings.Index(body[open+2:], marker)
		if end < 0 {
			break
		}
		name := body[open+2 : open+2+end]
		if name == "" {
			i = open + 2
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i = open + 2 + end + 2
	}

	return names
}
