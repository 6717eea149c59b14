package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"goban/internal/agent"
	"goban/internal/display"
	domain "goban/internal/domain/game"
	"goban/internal/engine"
	"goban/internal/errors"
	"goban/internal/scoring"
)

// GameStore is what the usecase needs from a session store.
type GameStore interface {
	GenerateGameKey() string
	PutGame(g *domain.Game)
	GetGameByID(id string) (*domain.Game, bool)
	DeleteGame(id string)
}

type GameUseCase struct {
	store GameStore
	bot   agent.Agent
	log   *zap.SugaredLogger
}

func NewGameUseCase(store GameStore, bot agent.Agent, log *zap.SugaredLogger) *GameUseCase {
	return &GameUseCase{
		store: store,
		bot:   bot,
		log:   log,
	}
}

// CreateGame opens a human-versus-bot session. When the human takes white,
// the bot makes the opening move right away.
func (g *GameUseCase) CreateGame(req domain.CreateGameRequest) (*domain.Game, error) {
	if req.BoardSize < 2 || req.BoardSize > 19 {
		return nil, fmt.Errorf("%w: %d", errors.ErrBadBoardSize, req.BoardSize)
	}
	humanColor := req.HumanColor
	if humanColor == "" {
		humanColor = engine.Black.String()
	}
	if humanColor != engine.Black.String() && humanColor != engine.White.String() {
		return nil, fmt.Errorf("%w: %q", errors.ErrBadColor, req.HumanColor)
	}

	play := &domain.Game{
		ID:         g.store.GenerateGameKey(),
		CreatedAt:  time.Now(),
		Status:     domain.StatusActive,
		BoardSize:  req.BoardSize,
		Komi:       req.Komi,
		HumanColor: humanColor,
		State:      engine.NewGame(req.BoardSize),
	}
	if play.HumanPlayer() == engine.White {
		opening := g.bot.SelectMove(play.State)
		g.log.Infof("bot opens game %s with %s", play.ID, display.MoveString(opening))
		play.State = play.State.ApplyMove(opening)
	}
	g.store.PutGame(play)
	return play, nil
}

func (g *GameUseCase) GetGameByID(id string) (*domain.Game, error) {
	play, ok := g.store.GetGameByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrGameNotFound, id)
	}
	return play, nil
}

// DeleteGame drops a session from the store. Finished games are kept until
// deleted so their final position stays queryable.
func (g *GameUseCase) DeleteGame(gameID string) error {
	if _, err := g.GetGameByID(gameID); err != nil {
		return err
	}
	g.store.DeleteGame(gameID)
	return nil
}

// PlayMove applies the human's move and, while the game continues, the
// bot's reply. Rule rejections come back as sentinel errors, never panics:
// the usecase always checks IsValidMove before ApplyMove.
func (g *GameUseCase) PlayMove(gameID string, req domain.MoveRequest) (domain.MoveResponse, error) {
	play, err := g.GetGameByID(gameID)
	if err != nil {
		return domain.MoveResponse{}, err
	}

	play.Lock()
	defer play.Unlock()

	if play.Status == domain.StatusFinished || play.State.IsOver() {
		return domain.MoveResponse{}, errors.ErrGameOver
	}

	humanMove, err := moveFromRequest(req)
	if err != nil {
		return domain.MoveResponse{}, err
	}
	human := play.HumanPlayer()
	if play.State.NextPlayer != human {
		return domain.MoveResponse{}, errors.ErrWrongTurn
	}
	if !play.State.IsValidMove(humanMove) {
		return domain.MoveResponse{}, fmt.Errorf("%w: %s", errors.ErrIllegalMove, display.FormatMove(human, humanMove))
	}

	play.State = play.State.ApplyMove(humanMove)
	resp := domain.MoveResponse{HumanMove: display.FormatMove(human, humanMove)}

	if !play.State.IsOver() {
		botMove := g.bot.SelectMove(play.State)
		resp.BotMove = display.FormatMove(play.State.NextPlayer, botMove)
		play.State = play.State.ApplyMove(botMove)
	}

	resp.Board = display.BoardString(play.State.Board)
	resp.NextPlayer = play.State.NextPlayer.String()
	if play.State.IsOver() {
		play.Status = domain.StatusFinished
		resp.Over = true
		resp.Winner = play.State.Winner(scoring.WithKomi(play.Komi)).String()
		g.log.Infof("game %s finished, winner: %s", play.ID, resp.Winner)
	}
	return resp, nil
}

// LegalMoves lists the legal moves of the current position in board
// coordinates, pass and resign included.
func (g *GameUseCase) LegalMoves(gameID string) ([]string, error) {
	play, err := g.GetGameByID(gameID)
	if err != nil {
		return nil, err
	}
	play.Lock()
	defer play.Unlock()

	legal := play.State.LegalMoves()
	moves := make([]string, 0, len(legal))
	for _, m := range legal {
		moves = append(moves, display.MoveString(m))
	}
	return moves, nil
}

// StateResponse snapshots a session for the read-only endpoint.
func (g *GameUseCase) StateResponse(gameID string) (domain.GameStateResponse, error) {
	play, err := g.GetGameByID(gameID)
	if err != nil {
		return domain.GameStateResponse{}, err
	}
	play.Lock()
	defer play.Unlock()

	resp := domain.GameStateResponse{
		GameID:     play.ID,
		Status:     play.Status,
		Board:      display.BoardString(play.State.Board),
		NextPlayer: play.State.NextPlayer.String(),
		Over:       play.State.IsOver(),
	}
	if resp.Over {
		resp.Winner = play.State.Winner(scoring.WithKomi(play.Komi)).String()
	}
	return resp, nil
}

func moveFromRequest(req domain.MoveRequest) (engine.Move, error) {
	switch {
	case req.Resign:
		return engine.Resign(), nil
	case req.Pass:
		return engine.Pass(), nil
	}
	point, err := display.PointFromCoords(req.Coordinates)
	if err != nil {
		return engine.Move{}, err
	}
	return engine.Play(point), nil
}
