package engine

// Result is the outcome of a finished game as reported by a scoring
// collaborator.
type Result struct {
	Winner Player
	Margin float64
}

// Scorer decides a game that ended with two consecutive passes. Scoring is a
// collaborator rather than part of the engine, so the engine carries no
// territory arithmetic (internal/scoring provides the real one).
type Scorer func(*GameState) Result

// GameState is one node of a game's history. Each applied move produces a
// fresh child state pointing back at its parent, so the chain is append-only
// and a published state is never mutated. Branches may share any common
// ancestor prefix.
type GameState struct {
	Board      *Board
	NextPlayer Player
	previous   *GameState
	lastMove   *Move
}

// NewGame starts a game on an empty square board with black to move.
func NewGame(size int) *GameState {
	return NewGameRect(size, size)
}

// NewGameRect starts a game on an empty rows-by-cols board.
func NewGameRect(rows, cols int) *GameState {
	return &GameState{
		Board:      NewBoard(rows, cols),
		NextPlayer: Black,
	}
}

// Previous returns the parent state, or nil for the root.
func (s *GameState) Previous() *GameState {
	return s.previous
}

// LastMove returns the move that produced this state; ok is false on the
// root state.
func (s *GameState) LastMove() (Move, bool) {
	if s.lastMove == nil {
		return Move{}, false
	}
	return *s.lastMove, true
}

// ApplyMove returns the successor state. A Play is placed on an independent
// clone of the current board; Pass and Resign reuse the board untouched.
// ApplyMove performs no legality checks beyond PlaceStone's preconditions:
// callers must have asked IsValidMove first, or the resulting board is
// undefined.
func (s *GameState) ApplyMove(move Move) *GameState {
	move.mustBeValid()
	board := s.Board
	if move.IsPlay {
		board = s.Board.Clone()
		board.PlaceStone(s.NextPlayer, move.Point)
	}
	applied := move
	return &GameState{
		Board:      board,
		NextPlayer: s.NextPlayer.Other(),
		previous:   s,
		lastMove:   &applied,
	}
}

// IsMoveSelfCapture simulates the placement on a throwaway clone and checks
// the placed group's liberties. Captures resolve inside PlaceStone before
// the check, so a move that kills an adjacent enemy group and inherits its
// liberties is not self-capture.
func (s *GameState) IsMoveSelfCapture(player Player, move Move) bool {
	if !move.IsPlay {
		return false
	}
	board := s.Board.Clone()
	board.PlaceStone(player, move.Point)
	return board.GroupAt(move.Point).NumLiberties() == 0
}

// situation pairs a board position with the player to move; ko compares
// situations structurally.
type situation struct {
	player Player
	board  *Board
}

func (s *GameState) situation() situation {
	return situation{player: s.NextPlayer, board: s.Board}
}

// DoesMoveViolateKo simulates the placement and walks the whole ancestor
// chain looking for a repeat of the resulting situation. This is positional
// superko: recreating any earlier (position, player-to-move) pair of the
// game is illegal, not just the immediately preceding one. Costs
// O(history depth * board size) per check.
func (s *GameState) DoesMoveViolateKo(player Player, move Move) bool {
	if !move.IsPlay {
		return false
	}
	board := s.Board.Clone()
	board.PlaceStone(player, move.Point)
	next := situation{player: player.Other(), board: board}
	for past := s.previous; past != nil; past = past.previous {
		sit := past.situation()
		if sit.player == next.player && sit.board.Equal(next.board) {
			return true
		}
	}
	return false
}

// IsValidMove reports whether move is legal in this state. Pass and Resign
// are always legal while the game runs; a Play needs an on-grid empty target
// that is neither self-capture nor a ko violation.
func (s *GameState) IsValidMove(move Move) bool {
	move.mustBeValid()
	if s.IsOver() {
		return false
	}
	if move.IsPass || move.IsResign {
		return true
	}
	return s.Board.IsOnGrid(move.Point) &&
		s.Board.Get(move.Point) == None &&
		!s.IsMoveSelfCapture(s.NextPlayer, move) &&
		!s.DoesMoveViolateKo(s.NextPlayer, move)
}

// IsOver reports game termination: a resignation, or two passes in a row.
func (s *GameState) IsOver() bool {
	if s.lastMove == nil {
		return false
	}
	if s.lastMove.IsResign {
		return true
	}
	secondLast := s.previous.lastMove
	if secondLast == nil {
		return false
	}
	return s.lastMove.IsPass && secondLast.IsPass
}

// LegalMoves enumerates the legal plays in row-major order, followed by Pass
// and Resign, which are appended unconditionally.
func (s *GameState) LegalMoves() []Move {
	var moves []Move
	for row := 1; row <= s.Board.Rows; row++ {
		for col := 1; col <= s.Board.Cols; col++ {
			move := Play(Point{Row: row, Col: col})
			if s.IsValidMove(move) {
				moves = append(moves, move)
			}
		}
	}
	moves = append(moves, Pass(), Resign())
	return moves
}

// Winner returns None while the game runs. After a resignation the winner is
// the side left to move: NextPlayer has already flipped past the resigner.
// After a double pass the scoring collaborator decides.
func (s *GameState) Winner(score Scorer) Player {
	if !s.IsOver() {
		return None
	}
	if s.lastMove.IsResign {
		return s.NextPlayer
	}
	return score(s).Winner
}
