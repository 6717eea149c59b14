package game

import (
	stderrors "errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	domain "goban/internal/domain/game"
	"goban/internal/engine"
	"goban/internal/errors"
	repo "goban/internal/repository"
)

// scriptedBot replays a fixed move sequence and passes once it runs out.
type scriptedBot struct {
	moves []engine.Move
}

func (b *scriptedBot) SelectMove(_ *engine.GameState) engine.Move {
	if len(b.moves) == 0 {
		return engine.Pass()
	}
	next := b.moves[0]
	b.moves = b.moves[1:]
	return next
}

func newUseCase(t *testing.T, bot *scriptedBot) *GameUseCase {
	t.Helper()
	log := zap.NewNop().Sugar()
	return NewGameUseCase(repo.NewGameRepository(log), bot, log)
}

func TestCreateGameValidation(t *testing.T) {
	uc := newUseCase(t, &scriptedBot{})

	if _, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 1}); !stderrors.Is(err, errors.ErrBadBoardSize) {
		t.Fatalf("size 1: got %v, want ErrBadBoardSize", err)
	}
	if _, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 20}); !stderrors.Is(err, errors.ErrBadBoardSize) {
		t.Fatalf("size 20: got %v, want ErrBadBoardSize", err)
	}
	if _, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 9, HumanColor: "green"}); !stderrors.Is(err, errors.ErrBadColor) {
		t.Fatalf("bad color: got %v, want ErrBadColor", err)
	}

	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 9})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if play.HumanColor != "black" {
		t.Fatalf("default human color = %q, want black", play.HumanColor)
	}
	if play.Status != domain.StatusActive {
		t.Fatalf("status = %q, want active", play.Status)
	}
	if _, err := uc.GetGameByID(play.ID); err != nil {
		t.Fatalf("created game not stored: %v", err)
	}
}

func TestCreateGameBotOpensForWhiteHuman(t *testing.T) {
	bot := &scriptedBot{moves: []engine.Move{engine.Play(engine.Point{Row: 3, Col: 3})}}
	uc := newUseCase(t, bot)

	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 5, HumanColor: "white"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if got := play.State.Board.Get(engine.Point{Row: 3, Col: 3}); got != engine.Black {
		t.Fatalf("opening point holds %v, want black", got)
	}
	if play.State.NextPlayer != engine.White {
		t.Fatalf("next player = %v, want white (the human)", play.State.NextPlayer)
	}
}

func TestPlayMove(t *testing.T) {
	bot := &scriptedBot{moves: []engine.Move{engine.Play(engine.Point{Row: 5, Col: 5})}}
	uc := newUseCase(t, bot)
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 5, Komi: 7.5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := uc.PlayMove(play.ID, domain.MoveRequest{Coordinates: "C3"})
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if resp.HumanMove != "black C3" {
		t.Fatalf("human move = %q, want %q", resp.HumanMove, "black C3")
	}
	if resp.BotMove != "white E5" {
		t.Fatalf("bot move = %q, want %q", resp.BotMove, "white E5")
	}
	if resp.Over {
		t.Fatal("game reported over after two opening moves")
	}
	if resp.NextPlayer != "black" {
		t.Fatalf("next player = %q, want black", resp.NextPlayer)
	}
	if !strings.Contains(resp.Board, "x") || !strings.Contains(resp.Board, "o") {
		t.Fatalf("board rendering missing stones:\n%s", resp.Board)
	}
}

func TestPlayMoveErrors(t *testing.T) {
	uc := newUseCase(t, &scriptedBot{moves: []engine.Move{engine.Play(engine.Point{Row: 5, Col: 5})}})
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := uc.PlayMove("no-such-game", domain.MoveRequest{Pass: true}); !stderrors.Is(err, errors.ErrGameNotFound) {
		t.Fatalf("unknown game: got %v, want ErrGameNotFound", err)
	}
	if _, err := uc.PlayMove(play.ID, domain.MoveRequest{Coordinates: "ZZ"}); !stderrors.Is(err, errors.ErrBadCoordinates) {
		t.Fatalf("bad coordinates: got %v, want ErrBadCoordinates", err)
	}
	// "A10" parses fine but lies outside a 5x5 board: an error, not a panic.
	if _, err := uc.PlayMove(play.ID, domain.MoveRequest{Coordinates: "A10"}); !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Fatalf("off-board coordinates: got %v, want ErrIllegalMove", err)
	}

	if _, err := uc.PlayMove(play.ID, domain.MoveRequest{Coordinates: "C3"}); err != nil {
		t.Fatalf("setup move failed: %v", err)
	}
	// C3 is occupied by the human's own stone now.
	if _, err := uc.PlayMove(play.ID, domain.MoveRequest{Coordinates: "C3"}); !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Fatalf("occupied point: got %v, want ErrIllegalMove", err)
	}
}

func TestPlayMoveWrongTurn(t *testing.T) {
	uc := newUseCase(t, &scriptedBot{})
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Force the position to white's turn while the human holds black.
	play.State = play.State.ApplyMove(engine.Play(engine.Point{Row: 1, Col: 1}))

	if _, err := uc.PlayMove(play.ID, domain.MoveRequest{Coordinates: "C3"}); !stderrors.Is(err, errors.ErrWrongTurn) {
		t.Fatalf("got %v, want ErrWrongTurn", err)
	}
}

func TestPlayMoveResignation(t *testing.T) {
	uc := newUseCase(t, &scriptedBot{})
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := uc.PlayMove(play.ID, domain.MoveRequest{Resign: true})
	if err != nil {
		t.Fatalf("resign failed: %v", err)
	}
	if !resp.Over {
		t.Fatal("game not over after resignation")
	}
	if resp.Winner != "white" {
		t.Fatalf("winner = %q, want white", resp.Winner)
	}
	if _, err := uc.PlayMove(play.ID, domain.MoveRequest{Pass: true}); !stderrors.Is(err, errors.ErrGameOver) {
		t.Fatalf("move after resignation: got %v, want ErrGameOver", err)
	}
}

func TestPlayMoveDoublePassScoresTheGame(t *testing.T) {
	// Empty board, everything is dame: komi decides for white.
	uc := newUseCase(t, &scriptedBot{})
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 5, Komi: 7.5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := uc.PlayMove(play.ID, domain.MoveRequest{Pass: true})
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if !resp.Over {
		t.Fatal("game not over after both sides passed")
	}
	if resp.Winner != "white" {
		t.Fatalf("winner = %q, want white on an empty board with komi", resp.Winner)
	}
	if play.Status != domain.StatusFinished {
		t.Fatalf("status = %q, want finished", play.Status)
	}
}

func TestLegalMoves(t *testing.T) {
	uc := newUseCase(t, &scriptedBot{})
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	moves, err := uc.LegalMoves(play.ID)
	if err != nil {
		t.Fatalf("legal moves failed: %v", err)
	}
	if len(moves) != 6 {
		t.Fatalf("got %d legal moves on an empty 2x2 board, want 6: %v", len(moves), moves)
	}
	last := moves[len(moves)-2:]
	if last[0] != "pass" || last[1] != "resign" {
		t.Fatalf("pass/resign not listed last: %v", moves)
	}

	if _, err := uc.LegalMoves("no-such-game"); !stderrors.Is(err, errors.ErrGameNotFound) {
		t.Fatalf("unknown game: got %v, want ErrGameNotFound", err)
	}
}

func TestDeleteGame(t *testing.T) {
	uc := newUseCase(t, &scriptedBot{})
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.DeleteGame(play.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := uc.GetGameByID(play.ID); !stderrors.Is(err, errors.ErrGameNotFound) {
		t.Fatalf("deleted game still retrievable: %v", err)
	}
	if err := uc.DeleteGame(play.ID); !stderrors.Is(err, errors.ErrGameNotFound) {
		t.Fatalf("double delete: got %v, want ErrGameNotFound", err)
	}
}

func TestStateResponse(t *testing.T) {
	uc := newUseCase(t, &scriptedBot{})
	play, err := uc.CreateGame(domain.CreateGameRequest{BoardSize: 3})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := uc.StateResponse(play.ID)
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if resp.GameID != play.ID || resp.Status != domain.StatusActive {
		t.Fatalf("unexpected snapshot: %+v", resp)
	}
	if resp.Over || resp.Winner != "" {
		t.Fatalf("fresh game reported finished: %+v", resp)
	}
	if resp.NextPlayer != "black" {
		t.Fatalf("next player = %q, want black", resp.NextPlayer)
	}
}
