package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DuckDuckGo queries the Instant Answer API, which returns a topic abstract
// and a list of related topics rather than classic web results.
type DuckDuckGo struct {
	client  *http.Client
	baseURL string
}

// NewDuckDuckGo creates a DuckDuckGo provider with a modest timeout.
func NewDuckDuckGo() *DuckDuckGo {
	return NewDuckDuckGoWithClient(defaultClient())
}

// NewDuckDuckGoWithClient creates a DuckDuckGo provider using the supplied
// HTTP client.
func NewDuckDuckGoWithClient(client *http.Client) *DuckDuckGo {
	return &DuckDuckGo{client: client, baseURL: "https://api.duckduckgo.com"}
}

// Name implements Provider.
func (d *DuckDuckGo) Name() Source { return SourceDuckDuckGo }

type ddgTopic struct {
	Text     string     `json:"Text"`
	FirstURL string     `json:"FirstURL"`
	Topics   []ddgTopic `json:"Topics"`
}

// Search fetches the instant answer for the query. The abstract, when
// present, comes first; related topics fill the remaining slots.
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")

	endpoint := d.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http %d", resp.StatusCode)
	}

	var payload struct {
		Heading       string     `json:"Heading"`
		AbstractText  string     `json:"AbstractText"`
		AbstractURL   string     `json:"AbstractURL"`
		RelatedTopics []ddgTopic `json:"RelatedTopics"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var results []Result
	if payload.AbstractText != "" {
		title := payload.Heading
		if title == "" {
			title = query
		}
		results = append(results, Result{
			Title:   title,
			Summary: Truncate(payload.AbstractText),
			URL:     payload.AbstractURL,
			Source:  SourceDuckDuckGo,
		})
	}

	for _, topic := range flattenTopics(payload.RelatedTopics) {
		if topic.Text == "" || topic.FirstURL == "" {
			continue
		}
		results = append(results, Result{
			Title:   topicTitle(topic.Text),
			Summary: Truncate(topic.Text),
			URL:     topic.FirstURL,
			Source:  SourceDuckDuckGo,
		})
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}

// flattenTopics unnests grouped related topics. Category groups carry their
// entries in a nested Topics list.
func flattenTopics(topics []ddgTopic) []ddgTopic {
	var flat []ddgTopic
	for _, t := range topics {
		if len(t.Topics) > 0 {
			flat = append(flat, flattenTopics(t.Topics)...)
			continue
		}
		flat = append(flat, t)
	}
	return flat
}

// topicTitle derives a short title from a related-topic text, which usually
// reads "Subject - description".
func topicTitle(text string) string {
	if idx := strings.Index(text, " - "); idx > 0 {
		return text[:idx]
	}
	return text
}
