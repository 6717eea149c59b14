package engine

import "fmt"

// Move is one action a player can take on their turn: place a stone, pass,
// or resign. Build moves through the Play, Pass and Resign constructors; a
// zero Move carries no action and is rejected on use.
type Move struct {
	Point    Point
	IsPlay   bool
	IsPass   bool
	IsResign bool
}

// Play places a stone at the given point.
func Play(p Point) Move {
	return Move{Point: p, IsPlay: true}
}

// Pass gives up the turn without placing a stone.
func Pass() Move {
	return Move{IsPass: true}
}

// Resign concedes the game.
func Resign() Move {
	return Move{IsResign: true}
}

// mustBeValid panics unless exactly one action is set. Failing here means a
// collaborator handed over a move it never constructed properly; it is not a
// rule violation.
func (m Move) mustBeValid() {
	actions := 0
	if m.IsPlay {
		actions++
	}
	if m.IsPass {
		actions++
	}
	if m.IsResign {
		actions++
	}
	if actions != 1 {
		panic(fmt.Sprintf("engine: malformed move %+v", m))
	}
}

func (m Move) String() string {
	switch {
	case m.IsPass:
		return "pass"
	case m.IsResign:
		return "resign"
	case m.IsPlay:
		return fmt.Sprintf("play (%d,%d)", m.Point.Row, m.Point.Col)
	}
	return "invalid move"
}
