package matching

import "testing"

func TestClassifyRole_SubstringMatch(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Full-Stack Developer", "full-stack"},
		{"Backend Developer", "backend"},
		{"Frontend Engineer", "frontend"},
		{"Lead DevOps Engineer", "devops"},
		{"Machine Learning Engineer", "machine learning"},
		{"Data Analyst - Marketing", "data analyst"},
		{"Senior Data Scientist", "data scientist"},
		{"Mobile Engineer", "mobile"},
	}
	for _, tc := range cases {
		if got := ClassifyRole(tc.title); got != tc.want {
			t.Fatalf("ClassifyRole(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestClassifyRole_DefaultForUnknown(t *testing.T) {
	if got := ClassifyRole("Astronaut"); got != DefaultRoleKey {
		t.Fatalf("ClassifyRole(Astronaut) = %q, want %q", got, DefaultRoleKey)
	}
	if got := ClassifyRole(""); got != DefaultRoleKey {
		t.Fatalf("ClassifyRole(empty) = %q, want %q", got, DefaultRoleKey)
	}
}

func TestClassifyRole_TitleContainedInKey(t *testing.T) {
	// A bare fragment of a catalog key still resolves to that key.
	if got := ClassifyRole("full-st"); got != "full-stack" {
		t.Fatalf("ClassifyRole(full-st) = %q, want full-stack", got)
	}
}

func TestClassifyRole_FirstMatchWins(t *testing.T) {
	// "full-stack" precedes "backend" in the catalog.
	if got := ClassifyRole("Full-Stack Backend Developer"); got != "full-stack" {
		t.Fatalf("expected first catalog match full-stack, got %q", got)
	}
}

func TestClassifyRole_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := ClassifyRole("Senior Full-Stack Developer"); got != "full-stack" {
			t.Fatalf("classification changed between runs: %q", got)
		}
	}
}

func TestProfileFor_UnknownKeyFallsBack(t *testing.T) {
	p := ProfileFor("no-such-role")
	if p.Key != DefaultRoleKey {
		t.Fatalf("expected default profile, got %q", p.Key)
	}
	if len(p.RequiredSkills) == 0 || len(p.Improvements) == 0 || len(p.Roadmap) == 0 {
		t.Fatalf("default profile incomplete")
	}
}

func TestCatalog_ProfilesComplete(t *testing.T) {
	vocab := NewSkillSet(Vocabulary()...)
	for _, p := range roleCatalog {
		if len(p.RequiredSkills) == 0 {
			t.Fatalf("role %q has no required skills", p.Key)
		}
		if len(p.Improvements) == 0 || len(p.Roadmap) == 0 {
			t.Fatalf("role %q missing tips or roadmap", p.Key)
		}
		for tok := range p.RequiredSkills {
			if !vocab.Has(tok) {
				t.Fatalf("role %q requires %q which is outside the vocabulary", p.Key, tok)
			}
		}
	}
}
