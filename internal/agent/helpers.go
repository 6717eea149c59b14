package agent

import "goban/internal/engine"

// isPointAnEye reports whether p is a true eye for color: an empty point
// whose on-grid neighbors are all friendly and whose diagonal corners are
// friendly enough that the eye cannot be falsified. In the interior three of
// the four corners must be friendly; on the edge or in a corner of the board
// every on-grid corner must be.
func isPointAnEye(board *engine.Board, p engine.Point, color engine.Player) bool {
	if board.Get(p) != engine.None {
		return false
	}
	for _, neighbor := range p.Neighbors() {
		if board.IsOnGrid(neighbor) && board.Get(neighbor) != color {
			return false
		}
	}

	friendlyCorners := 0
	offBoardCorners := 0
	corners := [4]engine.Point{
		{Row: p.Row - 1, Col: p.Col - 1},
		{Row: p.Row - 1, Col: p.Col + 1},
		{Row: p.Row + 1, Col: p.Col - 1},
		{Row: p.Row + 1, Col: p.Col + 1},
	}
	for _, corner := range corners {
		if !board.IsOnGrid(corner) {
			offBoardCorners++
			continue
		}
		if board.Get(corner) == color {
			friendlyCorners++
		}
	}
	if offBoardCorners > 0 {
		return offBoardCorners+friendlyCorners == 4
	}
	return friendlyCorners >= 3
}
