package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-match/internal/domain/job"
)

const ddgFixture = `<!DOCTYPE html>
<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fjobs%2Fview%2F123&rut=abc">Backend Developer - Acme</a>
  <a class="result__snippet">Acme is hiring a backend developer with Python and SQL.</a>
</div>
<div class="result">
  <a class="result__a" href="https://www.naukri.com/job-listings-456">Backend Engineer - Initech</a>
  <a class="result__snippet">Urgent opening in Mumbai.</a>
</div>
<div class="result">
  <a class="result__a" href="https://www.naukri.com/job-listings-456">Duplicate entry</a>
</div>
<div class="result">
  <a class="result__a" href="">No link</a>
</div>
</body></html>`

func TestDuckDuckGo_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if q := r.FormValue("q"); q == "" {
			t.Errorf("empty search query")
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(ddgFixture))
	}))
	defer srv.Close()

	s := NewDuckDuckGo()
	s.endpoint = srv.URL + "/html/"

	listings, err := s.Search(context.Background(), Query{Role: "Backend Developer", Location: "Mumbai"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings after dedup, got %d", len(listings))
	}

	first := listings[0]
	if first.Link != "https://www.linkedin.com/jobs/view/123" {
		t.Fatalf("redirect not unwrapped: %q", first.Link)
	}
	if first.Source != job.SourceLinkedIn {
		t.Fatalf("expected LinkedIn source, got %q", first.Source)
	}
	if first.ID == "" || first.Title == "" {
		t.Fatalf("incomplete listing: %+v", first)
	}

	if listings[1].Source != job.SourceNaukri {
		t.Fatalf("expected Naukri source, got %q", listings[1].Source)
	}
}

func TestDuckDuckGo_SearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewDuckDuckGo()
	s.endpoint = srv.URL + "/html/"

	if _, err := s.Search(context.Background(), Query{Role: "dev"}); err == nil {
		t.Fatalf("expected error on 429 response")
	}
}

func TestUnwrapRedirect(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fjob&rut=x", "https://example.com/job"},
		{"https://example.com/direct", "https://example.com/direct"},
		{"/relative/path", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := unwrapRedirect(tc.in); got != tc.want {
			t.Fatalf("unwrapRedirect(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
