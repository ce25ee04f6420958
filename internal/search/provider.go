package search

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"resume-match/internal/domain/job"
)

// Query carries the user-supplied job-search terms.
type Query struct {
	Role     string
	Location string
	Company  string
}

// Provider is one external job-listing source. Implementations must honor
// the context deadline and return an error instead of partial garbage;
// callers treat any error as "no results from this provider".
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) ([]job.Listing, error)
}

const maxSnippetRunes = 300

// webQuery builds the search-engine query string used to surface job boards.
func webQuery(q Query) string {
	parts := make([]string, 0, 4)
	if v := strings.TrimSpace(q.Role); v != "" {
		parts = append(parts, v)
	}
	if v := strings.TrimSpace(q.Company); v != "" {
		parts = append(parts, v)
	}
	parts = append(parts, "jobs")
	if v := strings.TrimSpace(q.Location); v != "" {
		parts = append(parts, "in "+v)
	}
	return strings.Join(parts, " ") + " site:linkedin.com/jobs OR site:naukri.com"
}

// detectSource classifies a listing link by its host.
func detectSource(link string) job.Source {
	lowered := strings.ToLower(link)
	switch {
	case strings.Contains(lowered, "linkedin.com"):
		return job.SourceLinkedIn
	case strings.Contains(lowered, "naukri.com"):
		return job.SourceNaukri
	case strings.Contains(lowered, "adzuna"):
		return job.SourceAdzuna
	default:
		return job.SourceOther
	}
}

func truncateSnippet(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxSnippetRunes {
		return s
	}
	return strings.TrimSpace(string(runes[:maxSnippetRunes])) + "..."
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	return u.String()
}

func statusError(name string, code int) error {
	return fmt.Errorf("%s: unexpected status %d", name, code)
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}
