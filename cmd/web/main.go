package main

import (
	"context"
	"github.com/joho/godotenv"
	"github.com/myrjola/pitwall/internal/ai"
	"github.com/myrjola/pitwall/internal/envstruct"
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/myrjola/pitwall/internal/game"
	"github.com/myrjola/pitwall/internal/logging"
	"github.com/myrjola/pitwall/internal/pprofserver"
	"github.com/myrjola/pitwall/internal/random"
	"github.com/myrjola/pitwall/internal/repositories"
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// gameEngine is the part of [game.Engine] the handlers depend on.
type gameEngine interface {
	Ask(ctx context.Context, sessionID string, question string) (game.Answer, error)
	Hint(ctx context.Context, sessionID string) (string, error)
}

type application struct {
	logger         *slog.Logger
	engine         gameEngine
	handlerTimeout time.Duration
}

type config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `env:"PITWALL_ADDR" envDefault:"localhost:4000"`
	// PprofAddr enables the pprof server when set, e.g. localhost:6060.
	PprofAddr         string        `env:"PITWALL_PPROF_ADDR" envDefault:""`
	LLMAPIKey         string        `env:"GEMINI_API_KEY" envDefault:""`
	LLMBaseURL        string        `env:"PITWALL_LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`
	LLMModel          string        `env:"PITWALL_LLM_MODEL" envDefault:"gemma-3-27b-it"`
	CompletionTimeout time.Duration `env:"PITWALL_COMPLETION_TIMEOUT" envDefault:"20s"`
	MaxQuestions      int           `env:"PITWALL_MAX_QUESTIONS" envDefault:"10"`
}

// serverTimeoutMargin leaves room for request parsing and response writing around the text generation call.
const serverTimeoutMargin = 5 * time.Second

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if cfg.LLMAPIKey == "" {
		logger.LogAttrs(ctx, slog.LevelWarn, "GEMINI_API_KEY not set, answers will fall back to apologies")
	}

	if cfg.PprofAddr != "" {
		pprofserver.Launch(ctx, cfg.PprofAddr, logger)
	}

	rand := random.Global()
	sessions := repositories.NewSessionRepository(rand, logger)
	completer := ai.NewClient(ai.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
	})
	engine := game.NewEngine(sessions, completer, rand, logger, game.Config{
		MaxQuestions:      cfg.MaxQuestions,
		CompletionTimeout: cfg.CompletionTimeout,
	})

	writeTimeout := cfg.CompletionTimeout + serverTimeoutMargin
	app := application{
		logger:         logger,
		engine:         engine,
		handlerTimeout: handlerTimeout(writeTimeout),
	}

	if err := app.configureAndStartServer(ctx, cfg.Addr, writeTimeout); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	// The .env file is optional, configuration can come from the real environment as well.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failure loading .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
