package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const redditUserAgent = "research-agent/1.0 (educational CLI)"

// Reddit queries the public search.json endpoint. Reddit blocks the default
// Go user agent, so every request carries a descriptive one.
type Reddit struct {
	client  *http.Client
	baseURL string
}

// NewReddit creates a Reddit provider with a modest timeout.
func NewReddit() *Reddit {
	return NewRedditWithClient(defaultClient())
}

// NewRedditWithClient creates a Reddit provider using the supplied HTTP client.
func NewRedditWithClient(client *http.Client) *Reddit {
	return &Reddit{client: client, baseURL: "https://www.reddit.com"}
}

// Name implements Provider.
func (r *Reddit) Name() Source { return SourceReddit }

// Search fetches matching posts sorted by relevance.
func (r *Reddit) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(maxResults))
	params.Set("sort", "relevance")

	endpoint := r.baseURL + "/search.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit http %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Children []struct {
				Data struct {
					Title     string `json:"title"`
					Selftext  string `json:"selftext"`
					Permalink string `json:"permalink"`
					Subreddit string `json:"subreddit"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]Result, 0, len(payload.Data.Children))
	for _, child := range payload.Data.Children {
		post := child.Data
		if post.Title == "" {
			continue
		}
		summary := post.Selftext
		if summary == "" {
			summary = fmt.Sprintf("Discussion in r/%s", post.Subreddit)
		}
		results = append(results, Result{
			Title:   post.Title,
			Summary: Truncate(summary),
			URL:     "https://www.reddit.com" + post.Permalink,
			Source:  SourceReddit,
		})
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}
