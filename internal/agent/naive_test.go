package agent

import (
	"testing"

	"goban/internal/engine"
)

func TestIsPointAnEye(t *testing.T) {
	// Black ring around (2,2) plus the diagonals.
	ring := engine.NewBoard(5, 5)
	for _, p := range []engine.Point{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	} {
		ring.PlaceStone(engine.Black, p)
	}

	// Same ring with one diagonal missing: still an eye (3 of 4 corners).
	threeCorners := engine.NewBoard(5, 5)
	for _, p := range []engine.Point{
		{Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	} {
		threeCorners.PlaceStone(engine.Black, p)
	}

	// Two diagonals missing: the eye can be falsified.
	twoCorners := engine.NewBoard(5, 5)
	for _, p := range []engine.Point{
		{Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2},
	} {
		twoCorners.PlaceStone(engine.Black, p)
	}

	// Corner eye at (1,1): both neighbors and the single on-board diagonal.
	corner := engine.NewBoard(5, 5)
	for _, p := range []engine.Point{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}} {
		corner.PlaceStone(engine.Black, p)
	}

	// Corner point whose diagonal is empty: not an eye.
	openCorner := engine.NewBoard(5, 5)
	for _, p := range []engine.Point{{Row: 1, Col: 2}, {Row: 2, Col: 1}} {
		openCorner.PlaceStone(engine.Black, p)
	}

	// A white neighbor breaks the eye outright.
	broken := ring.Clone()
	broken.PlaceStone(engine.White, engine.Point{Row: 2, Col: 2})

	cases := []struct {
		name  string
		board *engine.Board
		point engine.Point
		color engine.Player
		want  bool
	}{
		{"full ring", ring, engine.Point{Row: 2, Col: 2}, engine.Black, true},
		{"full ring, wrong color", ring, engine.Point{Row: 2, Col: 2}, engine.White, false},
		{"three corners", threeCorners, engine.Point{Row: 2, Col: 2}, engine.Black, true},
		{"two corners", twoCorners, engine.Point{Row: 2, Col: 2}, engine.Black, false},
		{"board corner", corner, engine.Point{Row: 1, Col: 1}, engine.Black, true},
		{"board corner, open diagonal", openCorner, engine.Point{Row: 1, Col: 1}, engine.Black, false},
		{"occupied point", broken, engine.Point{Row: 2, Col: 2}, engine.Black, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isPointAnEye(tc.board, tc.point, tc.color); got != tc.want {
				t.Fatalf("isPointAnEye = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRandomBotPlaysValidMoves(t *testing.T) {
	bot := NewRandomBot(1)
	state := engine.NewGame(5)
	for i := 0; i < 20 && !state.IsOver(); i++ {
		move := bot.SelectMove(state)
		if !state.IsValidMove(move) {
			t.Fatalf("bot returned invalid move %v at ply %d", move, i)
		}
		state = state.ApplyMove(move)
	}
}

func TestRandomBotDeterministicPerSeed(t *testing.T) {
	state := engine.NewGame(9)
	a := NewRandomBot(42).SelectMove(state)
	b := NewRandomBot(42).SelectMove(state)
	if a != b {
		t.Fatalf("same seed chose different moves: %v vs %v", a, b)
	}
}

func TestRandomBotPassesWhenOnlyEyesRemain(t *testing.T) {
	// Black owns the whole 2x2 board except its last eye at (1,1); the only
	// non-eye candidate left would also be self-capture. The bot passes.
	state := engine.NewGame(2)
	for _, p := range []engine.Point{{Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}} {
		state = state.ApplyMove(engine.Play(p))
		state = state.ApplyMove(engine.Pass())
	}
	if state.NextPlayer != engine.Black {
		t.Fatalf("setup left %v to move, want black", state.NextPlayer)
	}
	move := NewRandomBot(7).SelectMove(state)
	if !move.IsPass {
		t.Fatalf("bot played %v, want pass", move)
	}
}
