package game_test

import (
	"context"
	"fmt"
	"github.com/myrjola/pitwall/internal/ai"
	"github.com/myrjola/pitwall/internal/casefile"
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/myrjola/pitwall/internal/game"
	"github.com/myrjola/pitwall/internal/models"
	"github.com/myrjola/pitwall/internal/random"
	"github.com/myrjola/pitwall/internal/repositories"
	"github.com/myrjola/pitwall/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"io"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeCompleter struct {
	mu       sync.Mutex
	requests []ai.CompletionRequest
	answer   string
	err      error
}

func (f *fakeCompleter) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.answer, f.err
}

func (f *fakeCompleter) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type blockingCompleter struct{}

func (blockingCompleter) Complete(ctx context.Context, _ ai.CompletionRequest) (string, error) {
	<-ctx.Done()
	return "", errors.Wrap(ctx.Err(), "wait for completion")
}

// fixedStore hands out a single session regardless of the session ID.
type fixedStore struct {
	session *repositories.Session
	err     error
}

func (s fixedStore) GetOrCreate(_ context.Context, _ string) (*repositories.Session, error) {
	return s.session, s.err
}

type testGame struct {
	engine    *game.Engine
	sessions  *repositories.SessionRepository
	completer *fakeCompleter
}

func newTestGame(t *testing.T, cfg game.Config) testGame {
	t.Helper()
	logger := testhelpers.NewLogger(io.Discard)
	src := random.NewSeeded(7, 11)
	sessions := repositories.NewSessionRepository(src, logger)
	completer := &fakeCompleter{answer: "  The car crashed at the chicane.\n", err: nil}
	return testGame{
		engine:    game.NewEngine(sessions, completer, src, logger, cfg),
		sessions:  sessions,
		completer: completer,
	}
}

func (g testGame) culprit(t *testing.T, sessionID string) casefile.Suspect {
	t.Helper()
	session, err := g.sessions.GetOrCreate(context.Background(), sessionID)
	require.NoError(t, err)
	var culprit casefile.Suspect
	session.Update(func(game *models.GameState) {
		culprit = game.Culprit()
	})
	return culprit
}

func (g testGame) questionsAsked(t *testing.T, sessionID string) int {
	t.Helper()
	session, err := g.sessions.GetOrCreate(context.Background(), sessionID)
	require.NoError(t, err)
	var n int
	session.Update(func(game *models.GameState) {
		n = game.QuestionsAsked()
	})
	return n
}

func innocentSuspect(culprit casefile.Suspect) casefile.Suspect {
	for _, s := range casefile.Suspects() {
		if s.Name != culprit.Name {
			return s
		}
	}
	panic("no innocent suspects")
}

func TestEngine_Ask_SolveCase(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, game.Config{})
	culprit := g.culprit(t, "x")
	innocent := innocentSuspect(culprit)

	for range 2 {
		answer, err := g.engine.Ask(ctx, "x", fmt.Sprintf("Was it %s?", innocent.Name))
		require.NoError(t, err)
		require.Equal(t, game.Answer{Text: game.IncorrectGuess, GameOver: false}, answer)
	}

	answer, err := g.engine.Ask(ctx, "x", strings.ToLower(culprit.Name))
	require.NoError(t, err)
	require.True(t, answer.GameOver)
	require.Equal(t,
		fmt.Sprintf("CASE SOLVED! Yes, that is correct! The saboteur is %s. Motive: %s", culprit.Name, culprit.Motive),
		answer.Text)
	require.Equal(t, 3, g.questionsAsked(t, "x"))

	// The game stays over and the counters stop advancing.
	disclosure := fmt.Sprintf("The game is over. The saboteur was %s. Motive: %s", culprit.Name, culprit.Motive)
	for _, question := range []string{"What happened?", culprit.Name, innocent.Name} {
		answer, err = g.engine.Ask(ctx, "x", question)
		require.NoError(t, err)
		require.Equal(t, game.Answer{Text: disclosure, GameOver: true}, answer)
	}
	require.Equal(t, 3, g.questionsAsked(t, "x"))
	require.Zero(t, g.completer.calls(), "guesses must not reach the text generator")
}

func TestEngine_Ask_QuestionBudget(t *testing.T) {
	ctx := context.Background()
	const budget = 3
	g := newTestGame(t, game.Config{MaxQuestions: budget})
	culprit := g.culprit(t, "x")

	for i := range budget {
		answer, err := g.engine.Ask(ctx, "x", "What happened at the chicane?")
		require.NoError(t, err)
		require.Equal(t, game.Answer{Text: "The car crashed at the chicane.", GameOver: false}, answer, "question %d", i+1)
	}

	answer, err := g.engine.Ask(ctx, "x", "One more?")
	require.NoError(t, err)
	require.True(t, answer.GameOver)
	require.Equal(t, fmt.Sprintf(
		"GAME OVER! You've reached the maximum number of questions. The saboteur was %s. Motive: %s",
		culprit.Name, culprit.Motive,
	), answer.Text)

	// Even the correct name does not help after the game has ended.
	answer, err = g.engine.Ask(ctx, "x", culprit.Name)
	require.NoError(t, err)
	require.Equal(t, game.Answer{
		Text:     fmt.Sprintf("The game is over. The saboteur was %s. Motive: %s", culprit.Name, culprit.Motive),
		GameOver: true,
	}, answer)

	require.Equal(t, budget, g.completer.calls())
	require.Equal(t, budget, g.questionsAsked(t, "x"))
}

func TestEngine_Ask_GuessesConsumeQuestions(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, game.Config{MaxQuestions: 2})
	innocent := innocentSuspect(g.culprit(t, "x"))

	for range 2 {
		answer, err := g.engine.Ask(ctx, "x", innocent.Name)
		require.NoError(t, err)
		require.False(t, answer.GameOver)
	}
	answer, err := g.engine.Ask(ctx, "x", innocent.Name)
	require.NoError(t, err)
	require.True(t, answer.GameOver)
	require.True(t, strings.HasPrefix(answer.Text, "GAME OVER!"))
}

func TestEngine_Ask_Prompt(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, game.Config{})
	culprit := g.culprit(t, "x")

	_, err := g.engine.Ask(ctx, "x", "Who controlled the radio?")
	require.NoError(t, err)

	require.Len(t, g.completer.requests, 1)
	req := g.completer.requests[0]
	require.Equal(t, casefile.Prompt(culprit.Name, "Who controlled the radio?"), req.Prompt)
	require.InDelta(t, 0.35, req.Temperature, 0.0001)
	require.InDelta(t, 0.9, req.TopP, 0.0001)
}

func TestEngine_Ask_CompleterFailures(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		err    error
	}{
		{name: "provider error", answer: "", err: errors.New("401 unauthorized")},
		{name: "empty answer", answer: " \n ", err: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			logger, logs := testhelpers.NewBufferLogger()
			sessions := repositories.NewSessionRepository(random.NewSeeded(7, 11), logger)
			completer := &fakeCompleter{}
			g := testGame{
				engine:    game.NewEngine(sessions, completer, random.NewSeeded(7, 11), logger, game.Config{}),
				sessions:  sessions,
				completer: completer,
			}
			g.completer.answer = tt.answer
			g.completer.err = tt.err

			answer, err := g.engine.Ask(ctx, "x", "What happened?")
			require.NoError(t, err, "text generator failures must be absorbed")
			require.Equal(t, game.Answer{Text: game.FallbackAnswer, GameOver: false}, answer)
			require.Equal(t, 1, g.questionsAsked(t, "x"))
			require.Contains(t, logs.String(), "session_id=x", "failures are logged for operators")

			// The session keeps working after a failure.
			g.completer.answer = "Recovered."
			g.completer.err = nil
			answer, err = g.engine.Ask(ctx, "x", "What happened?")
			require.NoError(t, err)
			require.Equal(t, "Recovered.", answer.Text)
		})
	}
}

func TestEngine_Ask_CompletionTimeout(t *testing.T) {
	logger := testhelpers.NewLogger(io.Discard)
	sessions := repositories.NewSessionRepository(random.NewSeeded(1, 1), logger)
	engine := game.NewEngine(sessions, blockingCompleter{}, random.NewSeeded(1, 1), logger, game.Config{
		MaxQuestions:      0,
		CompletionTimeout: 10 * time.Millisecond,
	})

	start := time.Now()
	answer, err := engine.Ask(context.Background(), "x", "What happened?")
	require.NoError(t, err)
	require.Equal(t, game.FallbackAnswer, answer.Text)
	require.False(t, answer.GameOver)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestEngine_Ask_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, game.Config{MaxQuestions: 1})

	_, err := g.engine.Ask(ctx, "a", "What happened?")
	require.NoError(t, err)
	answer, err := g.engine.Ask(ctx, "a", "What happened?")
	require.NoError(t, err)
	require.True(t, answer.GameOver)

	answer, err = g.engine.Ask(ctx, "b", "What happened?")
	require.NoError(t, err)
	require.False(t, answer.GameOver)
}

func TestEngine_Ask_Concurrent(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, game.Config{MaxQuestions: 100})

	const workers = 50
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.engine.Ask(ctx, "x", "What happened?"); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, workers, g.questionsAsked(t, "x"))
	require.Equal(t, workers, g.completer.calls())
}

func TestEngine_Hint(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, game.Config{})

	for _, sessionID := range []string{"a", "b", "c", "d", "e"} {
		culprit := g.culprit(t, sessionID)
		n := len(culprit.Hints)

		var cycle []string
		for range n {
			hint, err := g.engine.Hint(ctx, sessionID)
			require.NoError(t, err)
			cycle = append(cycle, hint)
		}
		require.ElementsMatch(t, culprit.Hints, cycle, "one full cycle must be a permutation of the hints")

		// The cycle repeats in the same order.
		for i := range n + 1 {
			hint, err := g.engine.Hint(ctx, sessionID)
			require.NoError(t, err)
			require.Equal(t, cycle[i%n], hint)
		}
	}
	require.Zero(t, g.completer.calls(), "hints never use the text generator")
	require.Zero(t, g.questionsAsked(t, "a"), "hints are free")
}

func TestEngine_HintWithoutHints(t *testing.T) {
	logger := testhelpers.NewLogger(io.Discard)
	session := repositories.NewSession("x", models.NewGameState(casefile.Suspect{Name: "Nobody"}))
	engine := game.NewEngine(fixedStore{session: session, err: nil}, &fakeCompleter{}, random.Global(), logger,
		game.Config{})

	for range 2 {
		hint, err := engine.Hint(context.Background(), "x")
		require.NoError(t, err)
		require.Equal(t, game.NoHintAnswer, hint)
	}
}

func TestEngine_StoreFailure(t *testing.T) {
	logger := testhelpers.NewLogger(io.Discard)
	storeErr := errors.NewSentinel("store unavailable")
	engine := game.NewEngine(fixedStore{session: nil, err: storeErr}, &fakeCompleter{}, random.Global(), logger,
		game.Config{})

	_, err := engine.Ask(context.Background(), "x", "What happened?")
	require.ErrorIs(t, err, storeErr)

	_, err = engine.Hint(context.Background(), "x")
	require.ErrorIs(t, err, storeErr)
}
