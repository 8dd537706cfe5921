package models

import "github.com/myrjola/pitwall/internal/casefile"

// GameState is the bookkeeping of one investigation session.
//
// The culprit is fixed at creation, the question counter only grows, and once the game is over it stays over.
// GameState is not safe for concurrent use; see repositories.Session for the locking wrapper.
type GameState struct {
	culprit        casefile.Suspect
	questionsAsked int
	gameOver       bool
	shuffledHints  []string
	hintIndex      int
}

// NewGameState starts a game with the given culprit and zeroed counters.
func NewGameState(culprit casefile.Suspect) *GameState {
	return &GameState{
		culprit:        culprit,
		questionsAsked: 0,
		gameOver:       false,
		shuffledHints:  nil,
		hintIndex:      0,
	}
}

func (g *GameState) Culprit() casefile.Suspect {
	return g.culprit
}

func (g *GameState) QuestionsAsked() int {
	return g.questionsAsked
}

func (g *GameState) GameOver() bool {
	return g.gameOver
}

// CountQuestion consumes one question from the budget.
func (g *GameState) CountQuestion() {
	g.questionsAsked++
}

// Finish ends the game. There is no way back.
func (g *GameState) Finish() {
	g.gameOver = true
}

// NextHint returns the next hint of the culprit's hint cycle.
//
// On first use, shuffle produces the permutation that is kept for the rest of the session. The cursor wraps lazily
// so that the hints repeat in the same order forever. It returns false if the culprit has no hints.
func (g *GameState) NextHint(shuffle func([]string) []string) (string, bool) {
	if g.shuffledHints == nil {
		if len(g.culprit.Hints) == 0 {
			return "", false
		}
		g.shuffledHints = shuffle(g.culprit.Hints)
		g.hintIndex = 0
	}
	if g.hintIndex >= len(g.shuffledHints) {
		g.hintIndex = 0
	}
	hint := g.shuffledHints[g.hintIndex]
	g.hintIndex++
	return hint, true
}
