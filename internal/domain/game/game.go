package game

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"goban/internal/engine"
)

const (
	StatusActive   = "active"
	StatusFinished = "finished"
)

// Game is one live human-versus-bot session. The engine state inside it is
// immutable; the session just swaps in each new state as moves are applied.
type Game struct {
	ID         string            `json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	Status     string            `json:"status"`
	BoardSize  int               `json:"board_size"`
	Komi       float64           `json:"komi"`
	HumanColor string            `json:"human_color"`
	State      *engine.GameState `json:"-"`
	HumanWS    *websocket.Conn   `json:"-"`

	mu sync.Mutex
}

// Lock serializes move handling for one session; HTTP and websocket
// deliveries may race on the same game.
func (g *Game) Lock() { g.mu.Lock() }

func (g *Game) Unlock() { g.mu.Unlock() }

// HumanPlayer maps the stored color string onto an engine side.
func (g *Game) HumanPlayer() engine.Player {
	if g.HumanColor == engine.White.String() {
		return engine.White
	}
	return engine.Black
}

type CreateGameRequest struct {
	BoardSize  int     `json:"board_size,omitempty"`
	Komi       float64 `json:"komi,omitempty"`
	HumanColor string  `json:"human_color,omitempty"`
}

type CreateGameResponse struct {
	GameID     string `json:"game_id"`
	Board      string `json:"board"`
	NextPlayer string `json:"next_player"`
}

// MoveRequest carries one human action: board coordinates like "D4", or one
// of the pass/resign flags.
type MoveRequest struct {
	Coordinates string `json:"coordinates,omitempty"`
	Pass        bool   `json:"pass,omitempty"`
	Resign      bool   `json:"resign,omitempty"`
}

// MoveResponse reports the applied human move, the bot's answer and the
// resulting position.
type MoveResponse struct {
	HumanMove  string `json:"human_move"`
	BotMove    string `json:"bot_move,omitempty"`
	Board      string `json:"board"`
	NextPlayer string `json:"next_player"`
	Over       bool   `json:"over"`
	Winner     string `json:"winner,omitempty"`
}

type LegalMovesResponse struct {
	Moves []string `json:"moves"`
}

type GameStateResponse struct {
	GameID     string `json:"game_id"`
	Status     string `json:"status"`
	Board      string `json:"board"`
	NextPlayer string `json:"next_player"`
	Over       bool   `json:"over"`
	Winner     string `json:"winner,omitempty"`
}
