package matching

import (
	"regexp"
	"strings"
)

// vocabulary is the closed set of skill tokens recognized in resume text.
// Tokens are lowercase; matching is whole-token against this list only.
var vocabulary = []string{
	"python",
	"java",
	"javascript",
	"typescript",
	"go",
	"golang",
	"c",
	"c++",
	"c#",
	"rust",
	"sql",
	"nosql",
	"html",
	"css",
	"react",
	"angular",
	"vue",
	"node.js",
	"express",
	"django",
	"flask",
	"fastapi",
	"spring",
	"docker",
	"kubernetes",
	"aws",
	"azure",
	"gcp",
	"git",
	"linux",
	"rest",
	"api",
	"graphql",
	"ci/cd",
	"redis",
	"mongodb",
	"postgresql",
	"mysql",
	"kafka",
	"terraform",
	"pandas",
	"numpy",
	"tensorflow",
	"pytorch",
	"scikit-learn",
	"machine learning",
	"deep learning",
	"nlp",
	"data analysis",
	"statistics",
	"power bi",
	"tableau",
	"excel",
	"swift",
	"kotlin",
	"flutter",
	"react native",
	"agile",
	"communication",
}

// Characters that can appear inside a skill token. A vocabulary token only
// matches where the adjoining text characters fall outside this class, so
// "c" never matches inside "car" or "c++".
const tokenCharClass = `a-z0-9+#`

type vocabularyMatcher struct {
	token   string
	pattern *regexp.Regexp
}

var vocabularyMatchers = compileVocabulary(vocabulary)

func compileVocabulary(tokens []string) []vocabularyMatcher {
	out := make([]vocabularyMatcher, 0, len(tokens))
	for _, tok := range tokens {
		expr := `(?:^|[^` + tokenCharClass + `])` + regexp.QuoteMeta(tok) + `(?:[^` + tokenCharClass + `]|$)`
		out = append(out, vocabularyMatcher{token: tok, pattern: regexp.MustCompile(expr)})
	}
	return out
}

// ExtractSkills scans free-form text for vocabulary tokens and returns the
// set of tokens present. Empty input yields an empty, non-nil set.
func ExtractSkills(text string) SkillSet {
	found := make(SkillSet)
	if strings.TrimSpace(text) == "" {
		return found
	}
	lowered := strings.ToLower(text)
	for _, m := range vocabularyMatchers {
		if m.pattern.MatchString(lowered) {
			found[m.token] = struct{}{}
		}
	}
	return found
}

// Vocabulary returns a copy of the skill vocabulary.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}
