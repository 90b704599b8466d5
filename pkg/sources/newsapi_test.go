package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewsAPISearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("X-Api-Key = %q, want %q", got, "test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{"title": "Go 2 announced", "description": "Big changes ahead.", "url": "https://news.example.com/go2", "source": {"name": "Example News"}},
				{"title": "No description", "description": "", "url": "https://news.example.com/other", "source": {"name": "Other Wire"}},
				{"title": "", "description": "skipped", "url": "https://news.example.com/skip", "source": {"name": "X"}}
			]
		}`))
	}))
	defer srv.Close()

	provider := NewNewsAPIWithClient("test-key", srv.Client())
	provider.baseURL = srv.URL

	results, err := provider.Search(context.Background(), "go release")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (untitled article skipped)", len(results))
	}
	if results[0].Summary != "Big changes ahead." {
		t.Errorf("summary = %q", results[0].Summary)
	}
	// Empty description falls back to the outlet name.
	if results[1].Summary != "Other Wire" {
		t.Errorf("fallback summary = %q", results[1].Summary)
	}
	if results[0].Source != SourceNewsAPI {
		t.Errorf("source = %q", results[0].Source)
	}
}

func TestNewsAPISearchMissingKey(t *testing.T) {
	provider := NewNewsAPI("")
	if _, err := provider.Search(context.Background(), "anything"); err == nil {
		t.Error("expected error when API key is missing")
	}
}

func TestNewsAPISearchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "articles": []}`))
	}))
	defer srv.Close()

	provider := NewNewsAPIWithClient("test-key", srv.Client())
	provider.baseURL = srv.URL

	if _, err := provider.Search(context.Background(), "anything"); err == nil {
		t.Error("expected error for non-ok payload status")
	}
}
