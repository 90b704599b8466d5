package memory

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/codedlribeiro/research-agent/pkg/sources"
)

func testRound(question string) Round {
	return Round{
		ID:        uuid.New(),
		Question:  question,
		Category:  "general",
		StartedAt: time.Now(),
	}
}

func TestMemoryRecordAndReaders(t *testing.T) {
	m := New()

	if m.Len() != 0 {
		t.Fatalf("new memory has %d rounds", m.Len())
	}

	r1 := testRound("first question")
	r1.ResultCount = 2
	m.Record(r1, []sources.Result{
		{Title: "a", URL: "https://a.example", Source: sources.SourceWikipedia},
		{Title: "b", URL: "https://b.example", Source: sources.SourceReddit},
	})

	r2 := testRound("second question")
	r2.Analysis = "some synthesis"
	m.Record(r2, []sources.Result{
		{Title: "c", URL: "https://c.example", Source: sources.SourceNewsAPI},
	})

	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	rounds := m.Rounds()
	if rounds[0].Question != "first question" || rounds[1].Question != "second question" {
		t.Errorf("rounds out of order: %+v", rounds)
	}

	if got := m.AllResults(); len(got) != 3 {
		t.Errorf("AllResults() has %d entries, want 3", len(got))
	}

	if got, ok := m.RoundByID(r2.ID); !ok || got.Analysis != "some synthesis" {
		t.Errorf("RoundByID(%s) = %+v, %v", r2.ID, got, ok)
	}
	if _, ok := m.RoundByID(uuid.New()); ok {
		t.Error("RoundByID found a round for an unknown id")
	}
}

func TestMemoryRoundsReturnsCopy(t *testing.T) {
	m := New()
	m.Record(testRound("original"), nil)

	rounds := m.Rounds()
	rounds[0].Question = "mutated"

	if got := m.Rounds()[0].Question; got != "original" {
		t.Errorf("stored round was mutated through the copy: %q", got)
	}
}

func TestWriteReport(t *testing.T) {
	m := New()

	analyzed := testRound("what is go")
	analyzed.Category = "technology"
	analyzed.ResultCount = 1
	analyzed.Analysis = "Go is a language."
	m.Record(analyzed, []sources.Result{
		{Title: "Go", URL: "https://go.dev", Source: sources.SourceWikipedia},
	})

	plain := testRound("unanalyzed question")
	m.Record(plain, nil)

	var b strings.Builder
	if err := m.WriteReport(&b); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	report := b.String()

	for _, want := range []string{
		"# Research Session Report",
		"## Round 1: what is go",
		"Category: technology",
		"Go is a language.",
		"## Round 2: unanalyzed question",
		"_No analysis available for this round._",
		"[wikipedia] Go — https://go.dev",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n---\n%s", want, report)
		}
	}
}
