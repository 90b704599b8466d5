package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms"

	"github.com/codedlribeiro/research-agent/pkg/clients"
	"github.com/codedlribeiro/research-agent/pkg/config"
	"github.com/codedlribeiro/research-agent/pkg/render"
	"github.com/codedlribeiro/research-agent/pkg/research"
	"github.com/codedlribeiro/research-agent/pkg/sources"
)

const (
	agentName = "ResearchBot"
	version   = "1.0.0"
)

var (
	question string
	noAI     bool
)

func main() {
	// It's okay if .env doesn't exist, as long as env vars are set
	_ = godotenv.Load()

	cfg := config.Load()
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "research-agent",
		Short: "An interactive research assistant for the terminal",
		Long: `research-agent accepts a natural-language question, searches Wikipedia,
DuckDuckGo, Reddit, and NewsAPI, and optionally asks an LLM to synthesize the
results into an analysis. Each round is remembered for the rest of the
session and fed back into later analyses.`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			engine := buildEngine(cfg)

			if question != "" {
				runOnce(engine, question)
				return
			}
			runInteractive(engine)
		},
	}

	rootCmd.Flags().StringVarP(&question, "question", "q", "", "run a single research round and exit")
	rootCmd.Flags().BoolVar(&noAI, "no-ai", false, "disable LLM analysis and query expansion")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

func buildEngine(cfg config.Config) *research.Engine {
	client := &http.Client{Timeout: cfg.RequestTimeout}
	providers := []sources.Provider{
		sources.NewWikipediaWithClient(client),
		sources.NewDuckDuckGoWithClient(client),
		sources.NewRedditWithClient(client),
		sources.NewNewsAPIWithClient(cfg.NewsAPIKey, client),
	}

	return research.NewEngine(research.Config{
		Providers:           providers,
		LLM:                 buildLLM(cfg),
		MaxResultsPerSource: cfg.MaxResults,
	})
}

func buildLLM(cfg config.Config) llms.Model {
	if noAI {
		slog.Info("AI analysis disabled by flag")
		return nil
	}
	llm, err := clients.NewModel(context.Background(), cfg)
	if err != nil {
		slog.Warn("AI analysis disabled", "error", err)
		return nil
	}
	return llm
}

func runOnce(engine *research.Engine, q string) {
	report, err := engine.Research(context.Background(), q)
	if err != nil {
		fmt.Println(render.Error(err.Error()))
		os.Exit(1)
	}
	fmt.Println(render.Report(report))
}

func runInteractive(engine *research.Engine) {
	fmt.Println(render.Banner(agentName, version))
	if !engine.AIEnabled() {
		fmt.Println(render.Notice("Running without AI analysis. Set an LLM API key to enable it."))
	}
	fmt.Println(render.Notice("Type a question, or 'help' for commands."))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("? ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			slog.Error("failed to read input", "error", err)
			return
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			fmt.Println(render.Notice("You didn't enter a question. Try again!"))

		case input == "help":
			printHelp()

		case input == "quit" || input == "exit":
			fmt.Println(render.Notice(fmt.Sprintf("Goodbye! %d rounds this session.", engine.Memory().Len())))
			return

		case input == "history":
			fmt.Print(render.History(engine.Memory().Rounds()))

		case input == "sources":
			fmt.Print(render.Results(engine.Memory().AllResults()))

		case strings.HasPrefix(input, "export"):
			exportReport(engine, strings.TrimSpace(strings.TrimPrefix(input, "export")))

		default:
			report, err := engine.Research(context.Background(), input)
			if err != nil {
				fmt.Println(render.Error(err.Error()))
				continue
			}
			fmt.Println(render.Report(report))
		}
	}
}

func exportReport(engine *research.Engine, path string) {
	if path == "" {
		path = "research-session.md"
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Println(render.Error(fmt.Sprintf("failed to create %s: %v", path, err)))
		return
	}
	defer f.Close()

	if err := engine.Memory().WriteReport(f); err != nil {
		fmt.Println(render.Error(fmt.Sprintf("failed to write report: %v", err)))
		return
	}
	fmt.Println(render.Notice("Session report written to " + path))
}

func printHelp() {
	fmt.Println(render.Notice(`Commands:
  <question>      research a question
  history         show this session's rounds
  sources         show every result seen this session
  export [file]   write a markdown session report (default research-session.md)
  quit / exit     leave`))
}
