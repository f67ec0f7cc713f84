package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"charchat/internal/catalog"
	"charchat/internal/config"
	"charchat/internal/llm"
	"charchat/internal/service"
	"charchat/internal/store"
	handler "charchat/internal/transport/http"
)

const storeTimeout = 15 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:          "charchat",
		Short:        "Character chat backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve() error {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	log.Info().
		Int("port", cfg.HTTPPort).
		Bool("supabase", cfg.UseSupabase()).
		Bool("groq_key_set", cfg.GroqAPIKey != "").
		Msg("starting charchat")

	cat := catalog.Load(cfg.CharactersFile)

	var st store.Store
	if cfg.UseSupabase() {
		st = store.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, storeTimeout)
	} else {
		var err error
		st, err = store.NewSQLiteStore(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
	}
	defer st.Close()

	var completion llm.CompletionClient
	if cfg.GroqAPIKey != "" || os.Getenv(llm.EnvMode) == llm.ModeMock {
		completion = llm.NewCompletionClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.LLMTimeout)
	} else {
		log.Warn().Msg("GROQ_API_KEY not set; message turns will return a fixed apology reply")
	}

	svc := service.New(st, completion, cat, cfg.GroqModel)
	h := handler.NewHandler(svc)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	h.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.HTTPPort).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down gracefully")
	}
	return nil
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
