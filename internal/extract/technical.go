package extract

import (
	"github.com/shkomig/Engineered-prompt/internal/domain"
)

// TechnicalExtractor fills the code template slots: programming
// language, environment, the requested functionality and the
// optimization goal.
type TechnicalExtractor struct{}

func (TechnicalExtractor) Category() domain.Category { return domain.CategoryTechnical }

var languages = []phrase{
	{"פייתון", "Python"},
	{"python", "Python"},
	{"javascript", "JavaScript"},
	{"js", "JavaScript"},
	{"java", "Java"},
	{"sql", "SQL"},
	{"c++", "C++"},
	{"bash", "Bash"},
	{"latex", "LaTeX"},
}

var environments = []phrase{
	{"react", "React"},
	{"django", "Django"},
	{"flask", "Flask"},
	{"node", "Node.js"},
	{"jupyter", "Jupyter Notebook"},
	{"console", "Console Only"},
}

var optimizations = []phrase{
	{"מהיר", "Optimize for speed"},
	{"קריא", "Optimize for readability"},
	{"זיכרון", "Optimize for low memory usage"},
	{"ביצועים", "Optimize for performance"},
}

func (TechnicalExtractor) Extract(in Input) domain.PromptVariables {
	optimization := lookup(in.Text, optimizations)
	if optimization == domain.Unspecified {
		optimization = "Optimize for readability"
	}

	return domain.PromptVariables{
		"language":      lookup(in.Text, languages),
		"environment":   lookup(in.Text, environments),
		"functionality": orUnspecified(in.Text),
		"optimization":  optimization,
	}
}
