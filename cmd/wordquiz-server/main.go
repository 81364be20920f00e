package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/assessment"
	"github.com/at-ishikawa/wordquiz/internal/bootstrap"
	"github.com/at-ishikawa/wordquiz/internal/config"
	"github.com/at-ishikawa/wordquiz/internal/database"
	"github.com/at-ishikawa/wordquiz/internal/record"
	"github.com/at-ishikawa/wordquiz/internal/server"
	"github.com/at-ishikawa/wordquiz/internal/speech"
	"github.com/at-ishikawa/wordquiz/internal/user"
	"github.com/at-ishikawa/wordquiz/internal/word"
	"github.com/at-ishikawa/wordquiz/internal/wordlist"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "wordquiz-server",
		Short:         "Vocabulary quiz HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func run(ctx context.Context) error {
	app := bootstrap.New(0)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.OnShutdown(func(ctx context.Context) error {
		return db.Close()
	})

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("database.Migrate() > %w", err)
	}

	words := word.NewDBWordRepository(db)
	users := user.NewDBUserRepository(db)
	records := record.NewDBRecordRepository(db)

	var synthesizer server.SpeechSynthesizer
	if cfg.Speech.Enabled && cfg.Speech.Script != "" {
		synthesizer = speech.NewSynthesizer(speech.Config{
			PythonBinary: cfg.Speech.PythonBinary,
			Script:       cfg.Speech.Script,
			TempDir:      cfg.Speech.TempDir,
		})
	}

	handler := server.NewHandler(
		users,
		words,
		records,
		assessment.NewService(words, records, nil),
		wordlist.NewImporter(words),
		synthesizer,
		slog.Default(),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.NewRouter(handler, cfg.Server.CORS.AllowedOrigins),
	}
	app.OnShutdown(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
