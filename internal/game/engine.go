// Package game implements the rules of the sabotage investigation.
//
// Every session may ask a fixed number of questions. A question that names a suspect is a guess: naming the culprit
// solves the case, naming anyone else is answered with a fixed denial. Other questions are answered by a text
// generator that knows the case facts. Guesses are unlimited but consume a question.
package game

import (
	"context"
	"fmt"
	"github.com/myrjola/pitwall/internal/ai"
	"github.com/myrjola/pitwall/internal/casefile"
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/myrjola/pitwall/internal/logging"
	"github.com/myrjola/pitwall/internal/models"
	"github.com/myrjola/pitwall/internal/random"
	"github.com/myrjola/pitwall/internal/repositories"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultMaxQuestions      = 10
	DefaultCompletionTimeout = 20 * time.Second
)

const (
	answerTemperature = 0.35
	answerTopP        = 0.9
)

const (
	FallbackAnswer = "I'm having trouble accessing the case files at the moment."
	NoHintAnswer   = "I can't seem to find a good hint right now."
	IncorrectGuess = "No, that AI did not sabotage the car."
)

// Answer is the response to a question. GameOver is true when the game ended with or before this answer.
type Answer struct {
	Text     string
	GameOver bool
}

type Config struct {
	// MaxQuestions is the question budget per session. Non-positive values fall back to DefaultMaxQuestions.
	MaxQuestions int
	// CompletionTimeout bounds the wait for the text generator. Non-positive values fall back to
	// DefaultCompletionTimeout.
	CompletionTimeout time.Duration
}

type Engine struct {
	sessions          repositories.SessionStore
	completer         ai.Completer
	rand              random.Source
	logger            *slog.Logger
	maxQuestions      int
	completionTimeout time.Duration
}

func NewEngine(
	sessions repositories.SessionStore,
	completer ai.Completer,
	rand random.Source,
	logger *slog.Logger,
	cfg Config,
) *Engine {
	if cfg.MaxQuestions <= 0 {
		cfg.MaxQuestions = DefaultMaxQuestions
	}
	if cfg.CompletionTimeout <= 0 {
		cfg.CompletionTimeout = DefaultCompletionTimeout
	}
	return &Engine{
		sessions:          sessions,
		completer:         completer,
		rand:              rand,
		logger:            logger.With("source", "Engine"),
		maxQuestions:      cfg.MaxQuestions,
		completionTimeout: cfg.CompletionTimeout,
	}
}

// Ask evaluates question in the session's game.
//
// Failures of the text generator are never returned. They are logged and replaced with FallbackAnswer. The returned
// error is reserved for failures of the session store.
func (e *Engine) Ask(ctx context.Context, sessionID string, question string) (Answer, error) {
	ctx = logging.WithAttrs(ctx, slog.String("session_id", sessionID))
	session, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return Answer{}, errors.Wrap(err, "get or create session")
	}

	var (
		answer Answer
		prompt string
	)
	session.Update(func(game *models.GameState) {
		answer, prompt = e.evaluate(ctx, game, question)
	})
	if prompt == "" {
		return answer, nil
	}

	// The session lock is not held while waiting for the text generator.
	answer.Text = e.complete(ctx, prompt)
	return answer, nil
}

// evaluate applies the rules to the game. If the question has to be answered by the text generator, the prompt is
// returned and the answer text is left empty.
func (e *Engine) evaluate(ctx context.Context, game *models.GameState, question string) (Answer, string) {
	culprit := game.Culprit()

	if game.GameOver() {
		return Answer{
			Text:     fmt.Sprintf("The game is over. The saboteur was %s. Motive: %s", culprit.Name, culprit.Motive),
			GameOver: true,
		}, ""
	}

	if game.QuestionsAsked() >= e.maxQuestions {
		game.Finish()
		e.logger.LogAttrs(ctx, slog.LevelInfo, "question budget exhausted",
			slog.Int("questions_asked", game.QuestionsAsked()))
		return Answer{
			Text: fmt.Sprintf(
				"GAME OVER! You've reached the maximum number of questions. The saboteur was %s. Motive: %s",
				culprit.Name, culprit.Motive,
			),
			GameOver: true,
		}, ""
	}

	game.CountQuestion()

	if guess, ok := casefile.DetectGuess(question); ok {
		if guess.Name == culprit.Name {
			game.Finish()
			e.logger.LogAttrs(ctx, slog.LevelInfo, "case solved", slog.Int("questions_asked", game.QuestionsAsked()))
			return Answer{
				Text: fmt.Sprintf(
					"CASE SOLVED! Yes, that is correct! The saboteur is %s. Motive: %s", culprit.Name, culprit.Motive,
				),
				GameOver: true,
			}, ""
		}
		e.logger.LogAttrs(ctx, slog.LevelDebug, "incorrect guess", slog.String("guess", guess.Name))
		return Answer{Text: IncorrectGuess, GameOver: false}, ""
	}

	return Answer{Text: "", GameOver: false}, casefile.Prompt(culprit.Name, question)
}

func (e *Engine) complete(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, e.completionTimeout)
	defer cancel()

	start := time.Now()
	text, err := e.completer.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		Temperature: answerTemperature,
		TopP:        answerTopP,
	})
	if err != nil {
		err = errors.Wrap(err, "complete answer", slog.Duration("elapsed", time.Since(start)))
		e.logger.LogAttrs(ctx, slog.LevelError, "text generation failed", errors.SlogError(err))
		return FallbackAnswer
	}
	text = strings.TrimSpace(text)
	if text == "" {
		e.logger.LogAttrs(ctx, slog.LevelWarn, "text generation returned empty answer")
		return FallbackAnswer
	}
	return text
}

// Hint returns the next hint about the session's culprit.
//
// The culprit's hints are shuffled once per session and then served in a repeating cycle.
func (e *Engine) Hint(ctx context.Context, sessionID string) (string, error) {
	ctx = logging.WithAttrs(ctx, slog.String("session_id", sessionID))
	session, err := e.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return "", errors.Wrap(err, "get or create session")
	}

	var (
		hint string
		ok   bool
	)
	session.Update(func(game *models.GameState) {
		hint, ok = game.NextHint(func(hints []string) []string {
			return random.Shuffled(e.rand, hints)
		})
	})
	if !ok {
		e.logger.LogAttrs(ctx, slog.LevelWarn, "culprit has no hints")
		return NoHintAnswer, nil
	}
	return hint, nil
}
