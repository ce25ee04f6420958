package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store keeps uploaded resume files under a single local directory.
// Stored names carry a generated token prefix so concurrent uploads of the
// same filename never overwrite each other.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the upload and returns the stored filename clients use to
// reference it later.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + "_" + sanitizeFilename(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}

// Resolve maps a stored filename back to its path inside the upload dir.
// Path elements are stripped so a crafted filename cannot escape the dir.
func (s *Store) Resolve(name string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename %q", name)
	}
	return filepath.Join(s.dir, base), nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "resume.pdf"
	}
	return out
}
