package matching

// Scoring policy for the deterministic gap engine.
const (
	emptyRequirementsRaw = 50
	curveBonus           = 30
	maxScore             = 95
	maxMissingSkills     = 5
)

type GapResult struct {
	Score   int
	Matched []string
	Missing []string
}

// ScoreGap computes skill coverage of mine against required and applies the
// fixed curve. Matched and Missing are lexicographically sorted; Missing is
// capped at maxMissingSkills entries. It always produces a result.
func ScoreGap(mine, required SkillSet) GapResult {
	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, tok := range required.Sorted() {
		if mine.Has(tok) {
			matched = append(matched, tok)
		} else {
			missing = append(missing, tok)
		}
	}

	raw := emptyRequirementsRaw
	if len(required) > 0 {
		raw = 100 * len(matched) / len(required)
	}
	score := raw + curveBonus
	if score > maxScore {
		score = maxScore
	}

	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}

	return GapResult{Score: score, Matched: matched, Missing: missing}
}
