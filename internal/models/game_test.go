package models_test

import (
	"github.com/myrjola/pitwall/internal/casefile"
	"github.com/myrjola/pitwall/internal/models"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

func reverse(hints []string) []string {
	out := slices.Clone(hints)
	slices.Reverse(out)
	return out
}

func TestGameState_NextHint(t *testing.T) {
	culprit := casefile.Suspect{Name: "A", Hints: []string{"one", "two", "three"}}
	game := models.NewGameState(culprit)

	shuffles := 0
	shuffle := func(hints []string) []string {
		shuffles++
		return reverse(hints)
	}

	var got []string
	for range 7 {
		hint, ok := game.NextHint(shuffle)
		require.True(t, ok)
		got = append(got, hint)
	}
	require.Equal(t, []string{"three", "two", "one", "three", "two", "one", "three"}, got)
	require.Equal(t, 1, shuffles, "hints must be shuffled only once per session")
}

func TestGameState_NextHintWithoutHints(t *testing.T) {
	game := models.NewGameState(casefile.Suspect{Name: "A"})
	shuffle := func(_ []string) []string {
		t.Fatal("shuffle called without hints")
		return nil
	}
	for range 2 {
		hint, ok := game.NextHint(shuffle)
		require.False(t, ok)
		require.Empty(t, hint)
	}
}

func TestGameState_Counters(t *testing.T) {
	culprit := casefile.Suspects()[0]
	game := models.NewGameState(culprit)
	require.Equal(t, culprit.Name, game.Culprit().Name)
	require.Zero(t, game.QuestionsAsked())
	require.False(t, game.GameOver())

	game.CountQuestion()
	game.CountQuestion()
	require.Equal(t, 2, game.QuestionsAsked())

	game.Finish()
	game.Finish()
	require.True(t, game.GameOver())
}
