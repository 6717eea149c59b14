package game

import (
	stderrors "errors"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	domain "goban/internal/domain/game"
	"goban/internal/errors"
	"goban/internal/httpresponse"
	gameuc "goban/internal/usecase/game"
	"goban/internal/utils"
)

type GameHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *GameHandler {
	return &GameHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
	}
}

func (g *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGameRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Error("new game: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	if req.BoardSize == 0 {
		req.BoardSize = g.cfg.DefaultBoardSize
	}
	if req.Komi == 0 {
		req.Komi = g.cfg.DefaultKomi
	}

	play, err := g.gameUC.CreateGame(req)
	if err != nil {
		g.log.Error("new game: ", err)
		httpresponse.WriteResponseWithStatus(w, statusForError(err),
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	state, err := g.gameUC.StateResponse(play.ID)
	if err != nil {
		g.log.Error("new game: ", err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	g.log.Infof("new game %s created (%dx%d, human %s)", play.ID, play.BoardSize, play.BoardSize, play.HumanColor)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, domain.CreateGameResponse{
		GameID:     play.ID,
		Board:      state.Board,
		NextPlayer: state.NextPlayer,
	})
}

func (g *GameHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "game_id query parameter is required"})
		return
	}

	var req domain.MoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		g.log.Error("move: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	resp, err := g.gameUC.PlayMove(gameID, req)
	if err != nil {
		g.log.Infof("move rejected for game %s: %v", gameID, err)
		httpresponse.WriteResponseWithStatus(w, statusForError(err),
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleLegalMoves(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	moves, err := g.gameUC.LegalMoves(gameID)
	if err != nil {
		httpresponse.WriteResponseWithStatus(w, statusForError(err),
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, domain.LegalMovesResponse{Moves: moves})
}

func (g *GameHandler) HandleGameState(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	resp, err := g.gameUC.StateResponse(gameID)
	if err != nil {
		httpresponse.WriteResponseWithStatus(w, statusForError(err),
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if err := g.gameUC.DeleteGame(gameID); err != nil {
		httpresponse.WriteResponseWithStatus(w, statusForError(err),
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	g.log.Infof("game %s deleted", gameID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

// HandleStartGame upgrades to a websocket and plays the game live: each
// message is one human MoveRequest, each reply the applied move with the
// bot's answer. Rule rejections are reported in-band and the loop continues.
func (g *GameHandler) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	play, err := g.gameUC.GetGameByID(gameID)
	if err != nil {
		g.log.Error("start game: ", err)
		httpresponse.WriteResponseWithStatus(w, statusForError(err),
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("websocket upgrade: ", err)
		return
	}

	play.Lock()
	if play.HumanWS != nil {
		// A reconnect replaces the previous connection.
		_ = play.HumanWS.WriteMessage(websocket.TextMessage, []byte("disconnected: a new connection was opened"))
		_ = play.HumanWS.Close()
	}
	play.HumanWS = conn
	play.Unlock()

	defer func() {
		conn.Close()
		play.Lock()
		if play.HumanWS == conn {
			play.HumanWS = nil
		}
		play.Unlock()
	}()

	for {
		var req domain.MoveRequest
		if err := conn.ReadJSON(&req); err != nil {
			g.log.Info("websocket read: ", err)
			return
		}

		resp, err := g.gameUC.PlayMove(gameID, req)
		if err != nil {
			if writeErr := conn.WriteJSON(httpresponse.ErrorResponse{ErrorDescription: err.Error()}); writeErr != nil {
				g.log.Error("websocket write: ", writeErr)
				return
			}
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			g.log.Error("websocket write: ", err)
			return
		}
		if resp.Over {
			return
		}
	}
}

// statusForError maps usecase sentinels onto HTTP statuses. Anything
// unrecognized is a server fault.
func statusForError(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrIllegalMove),
		stderrors.Is(err, errors.ErrWrongTurn),
		stderrors.Is(err, errors.ErrGameOver),
		stderrors.Is(err, errors.ErrBadCoordinates),
		stderrors.Is(err, errors.ErrBadBoardSize),
		stderrors.Is(err, errors.ErrBadColor):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
