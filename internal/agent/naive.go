package agent

import (
	"math/rand"

	"goban/internal/engine"
)

// RandomBot plays a uniformly random legal move, refusing only to fill one
// of its own true eyes, and passes once nothing else remains. Weak by any
// standard, but enough to finish a game.
type RandomBot struct {
	rnd *rand.Rand
}

// NewRandomBot seeds the bot's generator; two bots with the same seed play
// identical games against identical opponents.
func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rnd: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) SelectMove(state *engine.GameState) engine.Move {
	var candidates []engine.Point
	for row := 1; row <= state.Board.Rows; row++ {
		for col := 1; col <= state.Board.Cols; col++ {
			candidate := engine.Point{Row: row, Col: col}
			if state.IsValidMove(engine.Play(candidate)) &&
				!isPointAnEye(state.Board, candidate, state.NextPlayer) {
				candidates = append(candidates, candidate)
			}
		}
	}
	if len(candidates) == 0 {
		return engine.Pass()
	}
	return engine.Play(candidates[b.rnd.Intn(len(candidates))])
}
