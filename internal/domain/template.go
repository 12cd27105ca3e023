package domain

// Unspecified is the literal substituted for any slot without an
// extracted or caller-supplied value. It also replaces unresolved
// placeholders so rendered output never leaks $$...$$ syntax.
const Unspecified = "[to be specified]"

// Template is a prompt scaffold for one category. The body contains
// zero or more $$name$$ placeholders.
type Template struct {
	Category    Category
	Name        string
	Description string
	Body        string
}

// PromptVariables maps slot names to filled values. Every slot resolves
// to some string; missing information resolves to Unspecified.
type PromptVariables map[string]string
