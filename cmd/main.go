package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"goban/internal/agent"
	"goban/internal/bootstrap"
	gameDelivery "goban/internal/delivery/game"
	ownMiddleware "goban/internal/middleware"
	repo "goban/internal/repository"
	gameUsecase "goban/internal/usecase/game"
)

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	seed := cfg.BotSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bot := agent.NewRandomBot(seed)
	games := repo.NewGameRepository(logger)
	gameUC := gameUsecase.NewGameUseCase(games, bot, logger)
	gameHandler := gameDelivery.NewGameHandler(*cfg, logger, gameUC)

	r := chi.NewRouter()
	Router(r, gameHandler, cfg.IsLocalCors)

	port := ":" + cfg.ServerPort
	server := &http.Server{Addr: port, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down server", zap.Error(err))
		}
	}()

	logger.Infof("Server is running on port %s", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func Router(r *chi.Mux, game *gameDelivery.GameHandler, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Post("/newGame", game.HandleNewGame)
	r.Post("/move", game.HandleMove)
	r.Get("/legalMoves", game.HandleLegalMoves)
	r.Get("/game", game.HandleGameState)
	r.Delete("/game", game.HandleDeleteGame)
	r.Get("/startGame", game.HandleStartGame)
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
