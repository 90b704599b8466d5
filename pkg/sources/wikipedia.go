package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Wikipedia searches articles through the MediaWiki search API.
type Wikipedia struct {
	client  *http.Client
	baseURL string
}

// NewWikipedia creates a Wikipedia provider with a modest timeout.
func NewWikipedia() *Wikipedia {
	return NewWikipediaWithClient(defaultClient())
}

// NewWikipediaWithClient creates a Wikipedia provider using the supplied
// HTTP client. This is useful for overriding the default timeout.
func NewWikipediaWithClient(client *http.Client) *Wikipedia {
	return &Wikipedia{client: client, baseURL: "https://en.wikipedia.org"}
}

// Name implements Provider.
func (w *Wikipedia) Name() Source { return SourceWikipedia }

// Search queries the MediaWiki search API and returns article results.
func (w *Wikipedia) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(maxResults))
	params.Set("format", "json")
	params.Set("utf8", "1")

	endpoint := w.baseURL + "/w/api.php?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia http %d", resp.StatusCode)
	}

	var payload struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
			} `json:"search"`
		} `json:"query"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]Result, 0, len(payload.Query.Search))
	for _, item := range payload.Query.Search {
		if item.Title == "" {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			Summary: Truncate(cleanHTML(item.Snippet)),
			URL:     w.articleURL(item.Title),
			Source:  SourceWikipedia,
		})
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}

func (w *Wikipedia) articleURL(title string) string {
	return w.baseURL + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// cleanHTML strips tags and decodes entities. MediaWiki snippets wrap the
// matched terms in <span class="searchmatch"> markers.
func cleanHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}
