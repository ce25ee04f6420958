package search

import (
	"strings"

	"resume-match/internal/domain/job"
)

// DemoListings is the deterministic fallback served when every provider
// fails or returns nothing, so callers never see an empty result set.
func DemoListings(q Query) []job.Listing {
	role := strings.TrimSpace(q.Role)
	if role == "" {
		role = "Software Engineer"
	}
	location := strings.TrimSpace(q.Location)
	if location == "" {
		location = "Mumbai"
	}

	return []job.Listing{
		{
			ID:      "demo-1",
			Title:   "Senior " + role + " (Demo Result)",
			Source:  job.SourceDemo,
			Link:    "https://www.linkedin.com/jobs",
			Snippet: "We are looking for an experienced candidate in " + location + "...",
		},
		{
			ID:      "demo-2",
			Title:   role + " Developer (Demo Result)",
			Source:  job.SourceDemo,
			Link:    "https://www.naukri.com",
			Snippet: "Urgent hiring for top companies in " + location + "...",
		},
	}
}
