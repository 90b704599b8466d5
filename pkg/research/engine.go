// Package research runs the agent pipeline: classify the question, expand it
// into search queries, fetch every source, deduplicate, synthesize an
// analysis, and record the round in session memory.
package research

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/codedlribeiro/research-agent/pkg/classify"
	"github.com/codedlribeiro/research-agent/pkg/memory"
	"github.com/codedlribeiro/research-agent/pkg/sources"
)

// maxExtraQueries caps how many additional queries expansion may add.
const maxExtraQueries = 2

// Config holds the engine's collaborators. Providers and Memory are
// required; a nil LLM disables query expansion and analysis.
type Config struct {
	Providers           []sources.Provider
	LLM                 llms.Model
	Memory              *memory.Memory
	Logger              *slog.Logger
	MaxResultsPerSource int
}

// Engine coordinates one research round at a time. All source and LLM calls
// are sequential and best-effort: a failure is logged and skipped, never
// retried.
type Engine struct {
	providers    []sources.Provider
	llm          llms.Model
	mem          *memory.Memory
	logger       *slog.Logger
	maxPerSource int
}

// NewEngine creates an engine, filling in defaults for optional fields.
func NewEngine(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	mem := cfg.Memory
	if mem == nil {
		mem = memory.New()
	}
	maxPerSource := cfg.MaxResultsPerSource
	if maxPerSource <= 0 {
		maxPerSource = 5
	}
	return &Engine{
		providers:    cfg.Providers,
		llm:          cfg.LLM,
		mem:          mem,
		logger:       logger,
		maxPerSource: maxPerSource,
	}
}

// Memory exposes the session memory shared with the CLI and server.
func (e *Engine) Memory() *memory.Memory { return e.mem }

// AIEnabled reports whether an LLM is configured.
func (e *Engine) AIEnabled() bool { return e.llm != nil }

// Research runs one full round for the question and records it in memory.
// The only error it returns is an empty question; everything downstream
// degrades to fewer results or a missing analysis.
func (e *Engine) Research(ctx context.Context, question string) (*RoundReport, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New("question is empty")
	}

	startedAt := time.Now()
	category := classify.Categorize(question)
	e.logger.Info("starting research round", "question", question, "category", category)

	queries := e.expandQueries(ctx, question)

	var merged []sources.Result
	for _, q := range queries {
		merged = append(merged, e.searchAll(ctx, q)...)
	}
	results := dedupeByURL(merged)
	e.logger.Info("search complete", "queries", len(queries), "raw", len(merged), "deduped", len(results))

	var analysis *Analysis
	if e.llm != nil {
		a, err := e.analyze(ctx, question, category, results)
		if err != nil {
			e.logger.Warn("analysis unavailable", "error", err)
		} else {
			analysis = a
		}
	}

	round := memory.Round{
		ID:          uuid.New(),
		Question:    question,
		Category:    category,
		ResultCount: len(results),
		StartedAt:   startedAt,
	}
	if analysis != nil {
		round.Analysis = analysis.Text()
	}
	e.mem.Record(round, results)

	return &RoundReport{
		Round:    round,
		Queries:  queries,
		Results:  results,
		Analysis: analysis,
	}, nil
}

// searchAll queries every provider in order. A failing provider contributes
// zero results.
func (e *Engine) searchAll(ctx context.Context, query string) []sources.Result {
	var all []sources.Result
	for _, p := range e.providers {
		results, err := p.Search(ctx, query)
		if err != nil {
			e.logger.Warn("source search failed", "source", p.Name(), "query", query, "error", err)
			continue
		}
		if len(results) > e.maxPerSource {
			results = results[:e.maxPerSource]
		}
		e.logger.Info("source search done", "source", p.Name(), "query", query, "count", len(results))
		all = append(all, results...)
	}
	return all
}

// dedupeByURL drops repeated URLs, keeping the first occurrence. Results
// without a URL are kept as-is.
func dedupeByURL(results []sources.Result) []sources.Result {
	unique := make([]sources.Result, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if r.URL != "" {
			if seen[r.URL] {
				continue
			}
			seen[r.URL] = true
		}
		unique = append(unique, r)
	}
	return unique
}

// expandQueries asks the LLM for additional search queries, feeding it the
// questions from prior rounds. Any failure falls back to the original
// question alone.
func (e *Engine) expandQueries(ctx context.Context, question string) []string {
	queries := []string{question}
	if e.llm == nil {
		return queries
	}

	systemPrompt := fmt.Sprintf(`You are a research planner.
Given a research question, propose up to %d additional search queries that
would surface complementary information. Avoid repeating earlier questions.

Return the JSON object directly without any formatting or additional text:
{"queries": ["...", "..."]}`, maxExtraQueries)

	var input strings.Builder
	fmt.Fprintf(&input, "Question: %s\n", question)
	if prior := recentQuestions(e.mem.Rounds(), 5); len(prior) > 0 {
		input.WriteString("Earlier questions this session:\n")
		for _, q := range prior {
			fmt.Fprintf(&input, "- %s\n", q)
		}
	}

	resp, err := e.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, input.String()),
	}, llms.WithJSONMode())
	if err != nil {
		e.logger.Warn("query expansion failed", "error", err)
		return queries
	}
	if len(resp.Choices) == 0 {
		e.logger.Warn("query expansion returned no choices")
		return queries
	}

	var parsed struct {
		Queries []string `json:"queries"`
	}
	if err := json.Unmarshal([]byte(stripFences(resp.Choices[0].Content)), &parsed); err != nil {
		e.logger.Warn("query expansion returned invalid JSON", "error", err)
		return queries
	}

	for _, q := range parsed.Queries {
		q = strings.TrimSpace(q)
		if q == "" || strings.EqualFold(q, question) {
			continue
		}
		queries = append(queries, q)
		if len(queries) > maxExtraQueries {
			break
		}
	}

	e.logger.Info("expanded queries", "queries", queries)
	return queries
}

// analyze asks the LLM for a structured synthesis of the round's results,
// with a digest of prior rounds as context.
func (e *Engine) analyze(ctx context.Context, question, category string, results []sources.Result) (*Analysis, error) {
	systemPrompt := `You are a research analyst.
Synthesize the search results into a concise analysis of the question.
Only use information from the results and the session context.

Return the JSON object directly without any formatting or additional text:
{"summary": "...", "key_points": ["..."], "follow_up": ["..."]}`

	var input strings.Builder
	fmt.Fprintf(&input, "Question: %s\nCategory: %s\n", question, category)

	if digest := sessionDigest(e.mem.Rounds(), 5); digest != "" {
		input.WriteString("\nSession context (earlier rounds):\n")
		input.WriteString(digest)
	}

	input.WriteString("\nSearch results:\n")
	if len(results) == 0 {
		input.WriteString("(no results found)\n")
	}
	for i, r := range results {
		fmt.Fprintf(&input, "%d. [%s] %s\n   %s\n   %s\n", i+1, r.Source, r.Title, r.Summary, r.URL)
	}

	resp, err := e.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, input.String()),
	}, llms.WithJSONMode())
	if err != nil {
		return nil, fmt.Errorf("llm generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("llm returned no choices")
	}

	content := strings.TrimSpace(stripFences(resp.Choices[0].Content))
	var analysis Analysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		// Keep the raw text rather than losing the round's analysis.
		e.logger.Warn("analysis was not valid JSON, keeping raw text", "error", err)
		return &Analysis{Summary: content}, nil
	}
	return &analysis, nil
}

// recentQuestions lists the questions of up to n most recent rounds.
func recentQuestions(rounds []memory.Round, n int) []string {
	if len(rounds) > n {
		rounds = rounds[len(rounds)-n:]
	}
	questions := make([]string, 0, len(rounds))
	for _, r := range rounds {
		questions = append(questions, r.Question)
	}
	return questions
}

// sessionDigest summarizes up to n most recent rounds for prompting.
func sessionDigest(rounds []memory.Round, n int) string {
	if len(rounds) == 0 {
		return ""
	}
	if len(rounds) > n {
		rounds = rounds[len(rounds)-n:]
	}
	var b strings.Builder
	for _, r := range rounds {
		fmt.Fprintf(&b, "- Q: %s (category: %s, results: %d)\n", r.Question, r.Category, r.ResultCount)
		if r.Analysis != "" {
			fmt.Fprintf(&b, "  A: %s\n", firstLine(r.Analysis))
		}
	}
	return b.String()
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// stripFences removes a markdown code fence wrapper, which some models emit
// even in JSON mode.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
