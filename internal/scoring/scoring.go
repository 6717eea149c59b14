// Package scoring settles a finished game by area counting: stones on the
// board plus surrounded empty territory. It assumes dead stones were already
// captured during play; no life-and-death judgement is attempted.
package scoring

import (
	"math"

	"goban/internal/engine"
)

// DefaultKomi compensates white for moving second.
const DefaultKomi = 7.5

// Territory breaks a final position down by owner.
type Territory struct {
	BlackTerritory int
	BlackStones    int
	WhiteTerritory int
	WhiteStones    int
	Dame           int
	DamePoints     []engine.Point
}

// Result is the final area count for both sides.
type Result struct {
	Black int
	White int
	Komi  float64
}

// Winner reports who holds the larger area once komi is added to white.
func (r Result) Winner() engine.Player {
	if float64(r.Black) > float64(r.White)+r.Komi {
		return engine.Black
	}
	return engine.White
}

// WinningMargin reports the winner's lead in points.
func (r Result) WinningMargin() float64 {
	return math.Abs(float64(r.Black) - (float64(r.White) + r.Komi))
}

// EvaluateTerritory classifies every point of a final board. An empty region
// whose border shows a single color is that color's territory; a region
// touching both colors is dame and belongs to nobody.
func EvaluateTerritory(board *engine.Board) Territory {
	var t Territory
	visited := make(map[engine.Point]bool)
	for row := 1; row <= board.Rows; row++ {
		for col := 1; col <= board.Cols; col++ {
			p := engine.Point{Row: row, Col: col}
			switch board.Get(p) {
			case engine.Black:
				t.BlackStones++
				continue
			case engine.White:
				t.WhiteStones++
				continue
			}
			if visited[p] {
				continue
			}
			region, borders := collectRegion(board, p, visited)
			switch {
			case len(borders) == 1 && borders[engine.Black]:
				t.BlackTerritory += len(region)
			case len(borders) == 1 && borders[engine.White]:
				t.WhiteTerritory += len(region)
			default:
				t.Dame += len(region)
				t.DamePoints = append(t.DamePoints, region...)
			}
		}
	}
	return t
}

// collectRegion flood-fills the empty region containing start and reports
// the stone colors found on its border.
func collectRegion(board *engine.Board, start engine.Point, visited map[engine.Point]bool) ([]engine.Point, map[engine.Player]bool) {
	var region []engine.Point
	borders := make(map[engine.Player]bool)
	frontier := []engine.Point{start}
	visited[start] = true
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		region = append(region, p)
		for _, neighbor := range p.Neighbors() {
			if !board.IsOnGrid(neighbor) || visited[neighbor] {
				continue
			}
			if color := board.Get(neighbor); color != engine.None {
				borders[color] = true
				continue
			}
			visited[neighbor] = true
			frontier = append(frontier, neighbor)
		}
	}
	return region, borders
}

// Evaluate counts both sides' areas on a final board.
func Evaluate(board *engine.Board, komi float64) Result {
	t := EvaluateTerritory(board)
	return Result{
		Black: t.BlackTerritory + t.BlackStones,
		White: t.WhiteTerritory + t.WhiteStones,
		Komi:  komi,
	}
}

// GameResult scores a finished game with the default komi. It satisfies
// engine.Scorer, which is how GameState.Winner consumes it.
func GameResult(gs *engine.GameState) engine.Result {
	return WithKomi(DefaultKomi)(gs)
}

// WithKomi builds an engine.Scorer for a specific komi.
func WithKomi(komi float64) engine.Scorer {
	return func(gs *engine.GameState) engine.Result {
		r := Evaluate(gs.Board, komi)
		return engine.Result{Winner: r.Winner(), Margin: r.WinningMargin()}
	}
}
