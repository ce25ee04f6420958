package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resume-match/internal/domain/job"
)

// Adzuna queries the Adzuna job-board REST API. Requires an app id and key;
// the container only wires this provider when both are configured.
type Adzuna struct {
	client     *http.Client
	apiBase    string
	appID      string
	appKey     string
	country    string
	maxResults int
}

func NewAdzuna(appID, appKey, country string) *Adzuna {
	country = strings.TrimSpace(strings.ToLower(country))
	if country == "" {
		country = "in"
	}
	return &Adzuna{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiBase:    "https://api.adzuna.com/v1/api",
		appID:      strings.TrimSpace(appID),
		appKey:     strings.TrimSpace(appKey),
		country:    country,
		maxResults: 10,
	}
}

func (s *Adzuna) Name() string { return "adzuna" }

type adzunaResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	RedirectURL string `json:"redirect_url"`
	Description string `json:"description"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
}

type adzunaSearchResponse struct {
	Results []adzunaResult `json:"results"`
}

func (s *Adzuna) Search(ctx context.Context, q Query) ([]job.Listing, error) {
	if s.appID == "" || s.appKey == "" {
		return nil, fmt.Errorf("adzuna: missing credentials")
	}

	params := url.Values{}
	params.Set("app_id", s.appID)
	params.Set("app_key", s.appKey)
	params.Set("results_per_page", fmt.Sprintf("%d", s.maxResults))
	params.Set("what", strings.TrimSpace(q.Role))
	if loc := strings.TrimSpace(q.Location); loc != "" {
		params.Set("where", loc)
	}
	params.Set("content-type", "application/json")

	endpoint := fmt.Sprintf("%s/jobs/%s/search/1?%s", s.apiBase, s.country, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("adzuna", resp.StatusCode)
	}

	body, err := readAllLimit(resp.Body, 4<<20)
	if err != nil {
		return nil, err
	}

	var parsed adzunaSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("adzuna: decode response: %w", err)
	}

	listings := make([]job.Listing, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		link := normalizeURL(r.RedirectURL)
		if link == "" {
			continue
		}
		id := strings.TrimSpace(r.ID)
		if id == "" {
			id = link
		}
		title := strings.TrimSpace(r.Title)
		if company := strings.TrimSpace(r.Company.DisplayName); company != "" && title != "" {
			title = title + " at " + company
		}
		listings = append(listings, job.Listing{
			ID:      id,
			Title:   title,
			Source:  job.SourceAdzuna,
			Link:    link,
			Snippet: truncateSnippet(r.Description),
		})
		if len(listings) >= s.maxResults {
			break
		}
	}
	return listings, nil
}
