// Package render formats agent output for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codedlribeiro/research-agent/pkg/memory"
	"github.com/codedlribeiro/research-agent/pkg/research"
	"github.com/codedlribeiro/research-agent/pkg/sources"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	sourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	analysisStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("39")).
			PaddingLeft(1)
)

// Banner renders the startup header.
func Banner(name, version string) string {
	return bannerStyle.Render(fmt.Sprintf("%s v%s — ask me anything, I'll go look it up", name, version))
}

// Report renders one research round for the console.
func Report(report *research.RoundReport) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(fmt.Sprintf("Category: %s", report.Round.Category)))
	b.WriteString("\n")
	if len(report.Queries) > 1 {
		b.WriteString(noticeStyle.Render(fmt.Sprintf("Searched as: %s", strings.Join(report.Queries, " | "))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Results(report.Results))

	if report.Analysis != nil {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Analysis"))
		b.WriteString("\n")
		b.WriteString(analysisStyle.Render(report.Analysis.Text()))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render("AI analysis unavailable for this round."))
		b.WriteString("\n")
	}

	return b.String()
}

// Results renders a result list grouped by source.
func Results(results []sources.Result) string {
	if len(results) == 0 {
		return noticeStyle.Render("No results found.") + "\n"
	}

	bySource := make(map[sources.Source][]sources.Result)
	var order []sources.Source
	for _, r := range results {
		if _, ok := bySource[r.Source]; !ok {
			order = append(order, r.Source)
		}
		bySource[r.Source] = append(bySource[r.Source], r)
	}

	var b strings.Builder
	for _, src := range order {
		b.WriteString(sourceStyle.Render(fmt.Sprintf("── %s ──", src)))
		b.WriteString("\n")
		for _, r := range bySource[src] {
			fmt.Fprintf(&b, "  • %s\n", r.Title)
			if r.Summary != "" {
				fmt.Fprintf(&b, "    %s\n", r.Summary)
			}
			if r.URL != "" {
				b.WriteString("    " + urlStyle.Render(r.URL) + "\n")
			}
		}
	}
	return b.String()
}

// History renders the session history table.
func History(rounds []memory.Round) string {
	if len(rounds) == 0 {
		return noticeStyle.Render("No research rounds yet this session.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Session history (%d rounds)", len(rounds))))
	b.WriteString("\n")
	for i, r := range rounds {
		marker := " "
		if r.Analysis != "" {
			marker = "✓"
		}
		fmt.Fprintf(&b, "  %2d. [%s] %s (%s, %d results, analysis: %s)\n",
			i+1, r.StartedAt.Format("15:04:05"), r.Question, r.Category, r.ResultCount, marker)
	}
	return b.String()
}

// Notice renders an informational line.
func Notice(msg string) string {
	return noticeStyle.Render(msg)
}

// Error renders an error line.
func Error(msg string) string {
	return errorStyle.Render(msg)
}
