package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codedlribeiro/research-agent/pkg/memory"
	"github.com/codedlribeiro/research-agent/pkg/research"
	"github.com/codedlribeiro/research-agent/pkg/sources"
)

func TestResultsGroupsBySource(t *testing.T) {
	out := Results([]sources.Result{
		{Title: "Wiki one", Summary: "s1", URL: "https://w1.example", Source: sources.SourceWikipedia},
		{Title: "Reddit one", Summary: "s2", URL: "https://r1.example", Source: sources.SourceReddit},
		{Title: "Wiki two", Summary: "s3", URL: "https://w2.example", Source: sources.SourceWikipedia},
	})

	for _, want := range []string{"wikipedia", "reddit", "Wiki one", "Wiki two", "Reddit one"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Wikipedia appears first and only once as a group heading.
	if strings.Count(out, "── wikipedia ──") != 1 {
		t.Errorf("wikipedia group rendered more than once:\n%s", out)
	}
}

func TestResultsEmpty(t *testing.T) {
	if out := Results(nil); !strings.Contains(out, "No results") {
		t.Errorf("empty output = %q", out)
	}
}

func TestReportWithoutAnalysis(t *testing.T) {
	report := &research.RoundReport{
		Round: memory.Round{
			ID:       uuid.New(),
			Question: "q",
			Category: "general",
		},
		Queries: []string{"q"},
	}

	out := Report(report)
	if !strings.Contains(out, "AI analysis unavailable") {
		t.Errorf("report missing unavailable notice:\n%s", out)
	}
}

func TestHistory(t *testing.T) {
	rounds := []memory.Round{
		{Question: "first", Category: "general", ResultCount: 3, StartedAt: time.Now()},
		{Question: "second", Category: "science", ResultCount: 0, Analysis: "done", StartedAt: time.Now()},
	}

	out := History(rounds)
	for _, want := range []string{"2 rounds", "first", "second", "science"} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}

	if out := History(nil); !strings.Contains(out, "No research rounds") {
		t.Errorf("empty history = %q", out)
	}
}
