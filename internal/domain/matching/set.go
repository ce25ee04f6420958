package matching

import "sort"

// SkillSet is a deduplicated set of canonical skill tokens.
type SkillSet map[string]struct{}

func NewSkillSet(tokens ...string) SkillSet {
	s := make(SkillSet, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

func (s SkillSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Sorted returns the tokens in lexicographic order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
