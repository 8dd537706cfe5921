package play

import (
	"bufio"
	"context"
	"fmt"
	"github.com/myrjola/pitwall/internal/ai"
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/myrjola/pitwall/internal/game"
	"github.com/myrjola/pitwall/internal/logging"
	"github.com/myrjola/pitwall/internal/random"
	"github.com/myrjola/pitwall/internal/repositories"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"strings"
)

var Group = &cobra.Group{
	ID:    "game",
	Title: "Game",
}

func init() {
	Play.Flags().String("model", ai.DefaultModel, "text generation model")
	Play.Flags().String("base-url", ai.DefaultBaseURL, "OpenAI compatible API base URL")
	Play.Flags().Int("max-questions", game.DefaultMaxQuestions, "question budget")
	Play.Flags().Bool("verbose", false, "log to stderr")
}

const sessionID = "cli"

var Play = &cobra.Command{
	Use:     "play",
	GroupID: "game",
	Short:   "Play in the terminal",
	Long: `Starts an investigation in the terminal.

Type a question and press enter. /hint asks for a hint and /quit ends the session.
The GEMINI_API_KEY environment variable is used to authenticate to the text generation API.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		model, err := flags.GetString("model")
		if err != nil {
			return errors.Wrap(err, "model flag")
		}
		baseURL, err := flags.GetString("base-url")
		if err != nil {
			return errors.Wrap(err, "base-url flag")
		}
		maxQuestions, err := flags.GetInt("max-questions")
		if err != nil {
			return errors.Wrap(err, "max-questions flag")
		}
		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return errors.Wrap(err, "verbose flag")
		}

		logSink := io.Discard
		if verbose {
			logSink = cmd.ErrOrStderr()
		}
		logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
			AddSource:   false,
			Level:       slog.LevelDebug,
			ReplaceAttr: nil,
		})))

		rand := random.Global()
		engine := game.NewEngine(
			repositories.NewSessionRepository(rand, logger),
			ai.NewClient(ai.Config{APIKey: os.Getenv("GEMINI_API_KEY"), BaseURL: baseURL, Model: model}),
			rand,
			logger,
			game.Config{MaxQuestions: maxQuestions, CompletionTimeout: 0},
		)
		return Loop(cmd.Context(), engine, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Loop reads questions line by line from in and writes the answers to out until the game is over, the input ends,
// or /quit is entered.
func Loop(ctx context.Context, engine *game.Engine, in io.Reader, out io.Writer) error {
	_, _ = fmt.Fprintln(out, "The leading car crashed at the SymbiTech Circuit. Find the AI saboteur!")
	_, _ = fmt.Fprint(out, "> ")
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "/quit":
			return nil
		case "/hint":
			hint, err := engine.Hint(ctx, sessionID)
			if err != nil {
				return errors.Wrap(err, "hint")
			}
			_, _ = fmt.Fprintln(out, hint)
		default:
			answer, err := engine.Ask(ctx, sessionID, line)
			if err != nil {
				return errors.Wrap(err, "ask")
			}
			_, _ = fmt.Fprintln(out, answer.Text)
			if answer.GameOver {
				return nil
			}
		}
		_, _ = fmt.Fprint(out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read input")
	}
	return nil
}
