package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDuckDuckGoSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Heading": "Go",
			"AbstractText": "Go is a programming language designed at Google.",
			"AbstractURL": "https://en.wikipedia.org/wiki/Go",
			"RelatedTopics": [
				{"Text": "Gopher - the Go mascot", "FirstURL": "https://example.com/gopher"},
				{"Name": "Languages", "Topics": [
					{"Text": "Plan 9 - an influence on Go", "FirstURL": "https://example.com/plan9"}
				]},
				{"Text": "No URL here", "FirstURL": ""}
			]
		}`))
	}))
	defer srv.Close()

	provider := NewDuckDuckGoWithClient(srv.Client())
	provider.baseURL = srv.URL

	results, err := provider.Search(context.Background(), "go")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Title != "Go" || results[0].URL != "https://en.wikipedia.org/wiki/Go" {
		t.Errorf("abstract result = %+v", results[0])
	}
	if results[1].Title != "Gopher" {
		t.Errorf("topic title = %q, want %q", results[1].Title, "Gopher")
	}
	if results[2].Title != "Plan 9" {
		t.Errorf("nested topic title = %q, want %q", results[2].Title, "Plan 9")
	}
	for _, r := range results {
		if r.Source != SourceDuckDuckGo {
			t.Errorf("source = %q", r.Source)
		}
	}
}

func TestDuckDuckGoSearchNoAbstract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Heading": "", "AbstractText": "", "AbstractURL": "", "RelatedTopics": []}`))
	}))
	defer srv.Close()

	provider := NewDuckDuckGoWithClient(srv.Client())
	provider.baseURL = srv.URL

	results, err := provider.Search(context.Background(), "something obscure")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestTopicTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Subject - description here", "Subject"},
		{"No separator at all", "No separator at all"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := topicTitle(tt.input); got != tt.want {
			t.Errorf("topicTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
