package research

import (
	"fmt"
	"strings"

	"github.com/codedlribeiro/research-agent/pkg/memory"
	"github.com/codedlribeiro/research-agent/pkg/sources"
)

// Analysis is the structured synthesis the LLM produces for one round.
type Analysis struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
	FollowUp  []string `json:"follow_up"`
}

// Text renders the analysis as plain text for storage and reports.
func (a Analysis) Text() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(a.Summary))
	if len(a.KeyPoints) > 0 {
		b.WriteString("\n\nKey points:\n")
		for _, p := range a.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	if len(a.FollowUp) > 0 {
		b.WriteString("\nWorth exploring next:\n")
		for _, q := range a.FollowUp {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RoundReport is everything a single research round produced.
type RoundReport struct {
	Round    memory.Round     `json:"round"`
	Queries  []string         `json:"queries"`
	Results  []sources.Result `json:"results"`
	Analysis *Analysis        `json:"analysis,omitempty"`
}
