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

// NewsAPI queries newsapi.org. An API key is required via the X-Api-Key
// header; without one every search fails (and the caller treats that as
// zero results from this source).
type NewsAPI struct {
	APIKey  string
	client  *http.Client
	baseURL string
}

// NewNewsAPI creates a NewsAPI provider with a modest timeout.
func NewNewsAPI(apiKey string) *NewsAPI {
	return NewNewsAPIWithClient(apiKey, defaultClient())
}

// NewNewsAPIWithClient creates a NewsAPI provider using the supplied HTTP client.
func NewNewsAPIWithClient(apiKey string, client *http.Client) *NewsAPI {
	return &NewsAPI{APIKey: apiKey, client: client, baseURL: "https://newsapi.org"}
}

// Name implements Provider.
func (n *NewsAPI) Name() Source { return SourceNewsAPI }

// Search fetches recent articles matching the query.
func (n *NewsAPI) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(n.APIKey) == "" {
		return nil, errors.New("newsapi: API key is missing")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", strconv.Itoa(maxResults))
	params.Set("language", "en")
	params.Set("sortBy", "relevancy")

	endpoint := n.baseURL + "/v2/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", n.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi http %d", resp.StatusCode)
	}

	var payload struct {
		Status   string `json:"status"`
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", payload.Status)
	}

	results := make([]Result, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		if article.Title == "" || article.URL == "" {
			continue
		}
		summary := article.Description
		if summary == "" {
			summary = article.Source.Name
		}
		results = append(results, Result{
			Title:   article.Title,
			Summary: Truncate(summary),
			URL:     article.URL,
			Source:  SourceNewsAPI,
		})
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}
