package search

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"resume-match/internal/domain/job"
)

// DuckDuckGo surfaces job-board postings through the DuckDuckGo HTML lite
// endpoint, which serves static markup and needs no API key.
type DuckDuckGo struct {
	endpoint   string
	timeout    time.Duration
	maxResults int
}

func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		endpoint:   "https://html.duckduckgo.com/html/",
		timeout:    15 * time.Second,
		maxResults: 10,
	}
}

func (s *DuckDuckGo) Name() string { return "duckduckgo" }

func (s *DuckDuckGo) Search(ctx context.Context, q Query) ([]job.Listing, error) {
	allowed := hostFromURL(s.endpoint)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	c.SetRequestTimeout(s.timeout)

	listings := make([]job.Listing, 0, s.maxResults)
	dedup := map[string]struct{}{}

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML(".result, .web-result", func(e *colly.HTMLElement) {
		if len(listings) >= s.maxResults {
			return
		}
		title := strings.TrimSpace(e.ChildText("a.result__a"))
		href := unwrapRedirect(strings.TrimSpace(e.ChildAttr("a.result__a", "href")))
		if title == "" || href == "" {
			return
		}
		href = normalizeURL(href)
		if _, ok := dedup[href]; ok {
			return
		}
		dedup[href] = struct{}{}

		listings = append(listings, job.Listing{
			ID:      href,
			Title:   title,
			Source:  detectSource(href),
			Link:    href,
			Snippet: truncateSnippet(e.ChildText(".result__snippet")),
		})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.Post(s.endpoint, map[string]string{
		"q":  webQuery(q),
		"kl": "wt-wt",
	}); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return listings, nil
}

// unwrapRedirect resolves DuckDuckGo redirect links of the form
// //duckduckgo.com/l/?uddg=<encoded url>&rut=... to the target URL.
func unwrapRedirect(href string) string {
	if strings.Contains(href, "duckduckgo.com/l/") || strings.Contains(href, "uddg=") {
		if u, err := url.Parse(href); err == nil {
			if uddg := u.Query().Get("uddg"); uddg != "" {
				return uddg
			}
		}
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return ""
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}
}
