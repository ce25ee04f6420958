package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_SaveGeneratesUniqueNames(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	first, err := s.Save("resume.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := s.Save("resume.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Fatalf("same original filename must not collide: %q", first)
	}

	path, err := s.Resolve(first)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(b) != "one" {
		t.Fatalf("stored content mismatch: %q", b)
	}
}

func TestStore_ResolveStripsPathElements(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	path, err := s.Resolve("../../etc/passwd")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("resolved path escaped upload dir: %q", path)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Resume.pdf", "My_Resume.pdf"},
		{"../evil.pdf", "evil.pdf"},
		{"r\x00esume?.pdf", "resume.pdf"},
		{"///", "resume.pdf"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
