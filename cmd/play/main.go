// Command play runs a human-versus-bot game in the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"goban/internal/agent"
	"goban/internal/display"
	"goban/internal/engine"
	"goban/internal/scoring"
)

func main() {
	size := flag.Int("size", 9, "board size (2-19)")
	color := flag.String("color", "black", "human color: black or white")
	komi := flag.Float64("komi", scoring.DefaultKomi, "compensation points for white")
	seed := flag.Int64("seed", 0, "bot seed, 0 for time-based")
	flag.Parse()

	if *size < 2 || *size > 19 {
		fmt.Fprintf(os.Stderr, "bad board size %d\n", *size)
		os.Exit(1)
	}
	var human engine.Player
	switch *color {
	case "black":
		human = engine.Black
	case "white":
		human = engine.White
	default:
		fmt.Fprintf(os.Stderr, "bad color %q\n", *color)
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	bot := agent.NewRandomBot(*seed)
	state := engine.NewGame(*size)
	reader := bufio.NewScanner(os.Stdin)

	for !state.IsOver() {
		fmt.Print(display.BoardString(state.Board))

		var move engine.Move
		if state.NextPlayer == human {
			var ok bool
			move, ok = readHumanMove(reader, state)
			if !ok {
				return
			}
		} else {
			move = bot.SelectMove(state)
		}
		fmt.Println(display.FormatMove(state.NextPlayer, move))
		state = state.ApplyMove(move)
	}

	fmt.Print(display.BoardString(state.Board))
	winner := state.Winner(scoring.WithKomi(*komi))
	if last, ok := state.LastMove(); ok && last.IsResign {
		fmt.Printf("%s wins by resignation\n", winner)
		return
	}
	score := scoring.Evaluate(state.Board, *komi)
	fmt.Printf("%s wins, black %d : white %.1f (komi %.1f)\n",
		winner, score.Black, float64(score.White)+score.Komi, score.Komi)
}

// readHumanMove prompts until it gets a legal move. Returns ok=false on EOF.
func readHumanMove(reader *bufio.Scanner, state *engine.GameState) (engine.Move, bool) {
	for {
		fmt.Printf("%s to move (coordinates, pass or resign): ", state.NextPlayer)
		if !reader.Scan() {
			return engine.Move{}, false
		}
		input := strings.TrimSpace(strings.ToLower(reader.Text()))

		var move engine.Move
		switch input {
		case "pass":
			move = engine.Pass()
		case "resign":
			move = engine.Resign()
		default:
			point, err := display.PointFromCoords(input)
			if err != nil {
				fmt.Println(err)
				continue
			}
			move = engine.Play(point)
		}
		if !state.IsValidMove(move) {
			fmt.Printf("illegal move %s\n", display.MoveString(move))
			continue
		}
		return move, true
	}
}
