// Package sources provides search provider implementations for the research agent.
//
// Available providers:
//
//   - Wikipedia: MediaWiki search API, no key required
//   - DuckDuckGo: Instant Answer API, no key required
//   - Reddit: public search.json endpoint, no key required
//   - NewsAPI: newsapi.org, requires NEWS_API_KEY
//
// All providers share the same shape: a fixed-timeout HTTP client, a
// context-aware request, and best-effort parsing that caps the number of
// results returned per call.
package sources

import (
	"context"
	"net/http"
	"time"
)

// Source identifies which backend produced a result.
type Source string

const (
	SourceWikipedia  Source = "wikipedia"
	SourceDuckDuckGo Source = "duckduckgo"
	SourceReddit     Source = "reddit"
	SourceNewsAPI    Source = "newsapi"
)

// Result represents a single search result.
type Result struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
	Source  Source `json:"source"`
}

// Provider is implemented by each search backend.
type Provider interface {
	// Name reports which source this provider queries.
	Name() Source
	// Search runs the query and returns up to maxResults results.
	Search(ctx context.Context, query string) ([]Result, error)
}

const (
	// maxSummaryLen caps result summaries, in runes.
	maxSummaryLen = 300

	// maxResults caps how many results a single provider call returns.
	maxResults = 5
)

func defaultClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// Truncate shortens s to maxSummaryLen runes, appending an ellipsis when
// anything was cut. Truncation is rune-safe to avoid splitting UTF-8.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxSummaryLen {
		return s
	}
	return string(runes[:maxSummaryLen]) + "..."
}
