package main

import (
	"context"
	"github.com/myrjola/pitwall/internal/e2etest"
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/myrjola/pitwall/internal/logging"
	"log/slog"
	"os"
	"time"
)

// TestGame plays a short game: two hints in one session and a question.
func TestGame(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second) //nolint:mnd // 30 seconds, the answer comes from an LLM
	defer cancel()

	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		return errors.Wrap(err, "wait for ready")
	}

	first, err := client.Hint(ctx, "")
	if err != nil {
		return errors.Wrap(err, "first hint")
	}
	if first.SessionID == "" || first.Hint == "" {
		return errors.New("empty hint response")
	}
	second, err := client.Hint(ctx, first.SessionID)
	if err != nil {
		return errors.Wrap(err, "second hint")
	}
	if second.SessionID != first.SessionID {
		return errors.New("session not kept", slog.String("want", first.SessionID), slog.String("got", second.SessionID))
	}

	answer, err := client.Ask(ctx, first.SessionID, "What happened at the chicane?")
	if err != nil {
		return errors.Wrap(err, "ask question")
	}
	if answer.Answer == "" || answer.GameOver {
		return errors.New("unexpected answer", slog.String("answer", answer.Answer),
			slog.Bool("game_over", answer.GameOver))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if err := TestGame(ctx, e2etest.NewClient(url)); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing game", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
