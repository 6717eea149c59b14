// Package agent provides move selection for the bot side of a game. Agents
// are collaborators of the rules engine: they read a GameState and return a
// move the engine itself never validates, so an Agent must only produce
// moves that pass IsValidMove.
package agent

import "goban/internal/engine"

// Agent picks a move for the side to play in the given state.
type Agent interface {
	SelectMove(state *engine.GameState) engine.Move
}
