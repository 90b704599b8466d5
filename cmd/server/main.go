package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/codedlribeiro/research-agent/pkg/clients"
	"github.com/codedlribeiro/research-agent/pkg/config"
	"github.com/codedlribeiro/research-agent/pkg/research"
	"github.com/codedlribeiro/research-agent/pkg/server"
	"github.com/codedlribeiro/research-agent/pkg/sources"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()
	slog.SetDefault(logger)

	client := &http.Client{Timeout: cfg.RequestTimeout}
	providers := []sources.Provider{
		sources.NewWikipediaWithClient(client),
		sources.NewDuckDuckGoWithClient(client),
		sources.NewRedditWithClient(client),
		sources.NewNewsAPIWithClient(cfg.NewsAPIKey, client),
	}

	llm, err := clients.NewModel(context.Background(), cfg)
	if err != nil {
		slog.Warn("AI analysis disabled", "error", err)
		llm = nil
	}

	engine := research.NewEngine(research.Config{
		Providers:           providers,
		LLM:                 llm,
		Logger:              logger,
		MaxResultsPerSource: cfg.MaxResults,
	})

	svc := server.NewService(engine)
	handler := server.NewHandler(svc)

	r := gin.Default()

	// CORS open for dev use.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(r)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
