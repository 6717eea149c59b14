// Package display renders board positions as text and translates between
// engine points and human board coordinates like "D4". It reads engine state
// and feeds nothing back into the rules.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"goban/internal/engine"
	"goban/internal/errors"
)

// Column letters skip I, following board convention.
const colLetters = "ABCDEFGHJKLMNOPQRST"

var stoneChars = map[engine.Player]string{
	engine.None:  " . ",
	engine.Black: " x ",
	engine.White: " o ",
}

// BoardString renders a position with row numbers on the left, highest row
// first, and column letters underneath.
func BoardString(board *engine.Board) string {
	var sb strings.Builder
	for row := board.Rows; row >= 1; row-- {
		if row <= 9 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(row))
		for col := 1; col <= board.Cols; col++ {
			sb.WriteString(stoneChars[board.Get(engine.Point{Row: row, Col: col})])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < board.Cols && col < len(colLetters); col++ {
		sb.WriteByte(' ')
		sb.WriteByte(colLetters[col])
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}

// PointFromCoords parses a coordinate like "C3" or "d16". It does not bounds
// check against any particular board.
func PointFromCoords(coords string) (engine.Point, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(coords))
	if len(trimmed) < 2 {
		return engine.Point{}, fmt.Errorf("%w: %q", errors.ErrBadCoordinates, coords)
	}
	col := strings.IndexByte(colLetters, trimmed[0])
	if col < 0 {
		return engine.Point{}, fmt.Errorf("%w: bad column in %q", errors.ErrBadCoordinates, coords)
	}
	row, err := strconv.Atoi(trimmed[1:])
	if err != nil || row < 1 {
		return engine.Point{}, fmt.Errorf("%w: bad row in %q", errors.ErrBadCoordinates, coords)
	}
	return engine.Point{Row: row, Col: col + 1}, nil
}

// CoordsFromPoint is the inverse of PointFromCoords.
func CoordsFromPoint(p engine.Point) string {
	return fmt.Sprintf("%c%d", colLetters[p.Col-1], p.Row)
}

// MoveString renders a move without its player: coordinates for a play,
// "pass" or "resign" otherwise.
func MoveString(move engine.Move) string {
	switch {
	case move.IsPass:
		return "pass"
	case move.IsResign:
		return "resign"
	}
	return CoordsFromPoint(move.Point)
}

// FormatMove renders a move together with the player making it, for logs and
// the terminal driver.
func FormatMove(player engine.Player, move engine.Move) string {
	switch {
	case move.IsPass:
		return fmt.Sprintf("%s passes", player)
	case move.IsResign:
		return fmt.Sprintf("%s resigns", player)
	}
	return fmt.Sprintf("%s %s", player, CoordsFromPoint(move.Point))
}
