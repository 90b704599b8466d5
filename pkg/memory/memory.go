// Package memory holds the session state of the research agent: an ordered,
// append-only history of research rounds plus a flat list of every result
// seen. State lives for one process run only.
package memory

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codedlribeiro/research-agent/pkg/sources"
)

// Round records one completed research round. Analysis is empty when the
// LLM was disabled or failed for that round.
type Round struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Category    string    `json:"category"`
	ResultCount int       `json:"result_count"`
	Analysis    string    `json:"analysis,omitempty"`
	StartedAt   time.Time `json:"started_at"`
}

// Memory owns the session history. Rounds are never mutated or removed once
// recorded. The mutex exists because the HTTP server handles requests
// concurrently; the research pipeline itself is sequential.
type Memory struct {
	mu      sync.Mutex
	rounds  []Round
	results []sources.Result
}

// New creates an empty session memory.
func New() *Memory {
	return &Memory{}
}

// Record appends a completed round and its deduplicated results.
func (m *Memory) Record(round Round, results []sources.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds = append(m.rounds, round)
	m.results = append(m.results, results...)
}

// Rounds returns a copy of the round history in recording order.
func (m *Memory) Rounds() []Round {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Round, len(m.rounds))
	copy(out, m.rounds)
	return out
}

// RoundByID looks up a round by its identifier.
func (m *Memory) RoundByID(id uuid.UUID) (Round, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rounds {
		if r.ID == id {
			return r, true
		}
	}
	return Round{}, false
}

// AllResults returns a copy of every result recorded this session.
func (m *Memory) AllResults() []sources.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sources.Result, len(m.results))
	copy(out, m.results)
	return out
}

// Len reports the number of recorded rounds.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rounds)
}

// WriteReport renders the session as a markdown report: one section per
// round followed by the full source list.
func (m *Memory) WriteReport(w io.Writer) error {
	rounds := m.Rounds()
	results := m.AllResults()

	if _, err := fmt.Fprintf(w, "# Research Session Report\n\nRounds: %d\n", len(rounds)); err != nil {
		return err
	}

	for i, r := range rounds {
		fmt.Fprintf(w, "\n## Round %d: %s\n\n", i+1, r.Question)
		fmt.Fprintf(w, "- Category: %s\n", r.Category)
		fmt.Fprintf(w, "- Results: %d\n", r.ResultCount)
		fmt.Fprintf(w, "- Started: %s\n", r.StartedAt.Format(time.RFC3339))
		if r.Analysis != "" {
			fmt.Fprintf(w, "\n%s\n", r.Analysis)
		} else {
			fmt.Fprintf(w, "\n_No analysis available for this round._\n")
		}
	}

	if len(results) > 0 {
		fmt.Fprintf(w, "\n## Sources\n\n")
		for _, res := range results {
			if _, err := fmt.Fprintf(w, "- [%s] %s — %s\n", res.Source, res.Title, res.URL); err != nil {
				return err
			}
		}
	}

	return nil
}
