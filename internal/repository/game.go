package repo

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goban/internal/domain/game"
)

// GameRepository keeps live sessions in memory, keyed by game id. Games are
// deliberately not persisted anywhere: a session lives from creation until
// the process exits.
type GameRepository struct {
	log *zap.SugaredLogger

	mu    sync.RWMutex
	games map[string]*game.Game
}

func NewGameRepository(log *zap.SugaredLogger) *GameRepository {
	return &GameRepository{
		log:   log,
		games: make(map[string]*game.Game),
	}
}

// GenerateGameKey returns a fresh session key.
func (r *GameRepository) GenerateGameKey() string {
	return uuid.New().String()
}

func (r *GameRepository) PutGame(g *game.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID] = g
	r.log.Infof("game stored with key %s (%d active)", g.ID, len(r.games))
}

func (r *GameRepository) GetGameByID(id string) (*game.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	return g, ok
}

func (r *GameRepository) DeleteGame(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
	r.log.Infof("game %s deleted (%d active)", id, len(r.games))
}
