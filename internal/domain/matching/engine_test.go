package matching

import (
	"sort"
	"testing"
)

func TestScoreGap_EmptyRequired(t *testing.T) {
	res := ScoreGap(NewSkillSet("python", "sql"), NewSkillSet())
	// raw 50 for an empty requirement set, then the +30 curve.
	if res.Score != 80 {
		t.Fatalf("expected score 80, got %d", res.Score)
	}
	if len(res.Missing) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.Missing)
	}
}

func TestScoreGap_FullCoverage(t *testing.T) {
	req := NewSkillSet("python", "sql", "docker")
	mine := NewSkillSet("python", "sql", "docker", "redis")
	res := ScoreGap(mine, req)
	if res.Score != 95 {
		t.Fatalf("expected capped score 95, got %d", res.Score)
	}
	if len(res.Missing) != 0 {
		t.Fatalf("expected empty missing, got %v", res.Missing)
	}
	if len(res.Matched) != len(req) {
		t.Fatalf("expected %d matched, got %v", len(req), res.Matched)
	}
}

func TestScoreGap_NoCoverage(t *testing.T) {
	res := ScoreGap(NewSkillSet(), NewSkillSet("python", "sql"))
	// Curve floor: 0 raw + 30.
	if res.Score != 30 {
		t.Fatalf("expected score 30, got %d", res.Score)
	}
}

func TestScoreGap_BoundsForNonEmptyRequired(t *testing.T) {
	req := NewSkillSet("python", "sql", "docker", "redis", "api", "git", "aws")
	mine := NewSkillSet()
	for _, tok := range req.Sorted() {
		res := ScoreGap(mine, req)
		if res.Score < 30 || res.Score > 95 {
			t.Fatalf("score %d outside [30,95]", res.Score)
		}
		mine[tok] = struct{}{}
	}
}

func TestScoreGap_PartialCoverageFloors(t *testing.T) {
	// 2 of 3 matched: floor(200/3)=66, +30 = 96 capped to 95.
	res := ScoreGap(NewSkillSet("python", "sql"), NewSkillSet("python", "sql", "docker"))
	if res.Score != 95 {
		t.Fatalf("expected 95, got %d", res.Score)
	}

	// 1 of 3 matched: floor(100/3)=33, +30 = 63.
	res = ScoreGap(NewSkillSet("python"), NewSkillSet("python", "sql", "docker"))
	if res.Score != 63 {
		t.Fatalf("expected 63, got %d", res.Score)
	}
}

func TestScoreGap_Partition(t *testing.T) {
	mine := NewSkillSet("python", "docker", "git")
	req := NewSkillSet("python", "sql", "redis", "api")
	res := ScoreGap(mine, req)

	for _, tok := range res.Missing {
		if mine.Has(tok) {
			t.Fatalf("missing skill %q is present in mine", tok)
		}
	}
	union := NewSkillSet(append(append([]string{}, res.Matched...), res.Missing...)...)
	if len(union) != len(req) {
		t.Fatalf("matched+missing does not partition required: %v + %v vs %v", res.Matched, res.Missing, req.Sorted())
	}
	for tok := range req {
		if !union.Has(tok) {
			t.Fatalf("required skill %q neither matched nor missing", tok)
		}
	}
}

func TestScoreGap_MissingSortedAndCapped(t *testing.T) {
	req := NewSkillSet("python", "sql", "redis", "api", "docker", "kubernetes", "aws", "git")
	res := ScoreGap(NewSkillSet(), req)
	if len(res.Missing) != 5 {
		t.Fatalf("expected missing capped at 5, got %d", len(res.Missing))
	}
	if !sort.StringsAreSorted(res.Missing) {
		t.Fatalf("missing not sorted: %v", res.Missing)
	}
}
