package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	NewGame(ctx context.Context) (tictactoe.View, error)
	GetGame(ctx context.Context, id string) (tictactoe.View, error)
	SelectCell(ctx context.Context, id string, cell int) (tictactoe.View, error)
	JumpTo(ctx context.Context, id string, step int) (tictactoe.View, error)
	EndGame(ctx context.Context, id string) error
}

// NewRouter - builds the HTTP routes of the game API.
func NewRouter(logger *slog.Logger, uGame uGame) http.Handler {
	gameHandlers := NewHandlers(logger, uGame)

	router := mux.NewRouter()
	router.HandleFunc("/ping", NewPingHandler().PingHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/games", gameHandlers.CreateGame).Methods(http.MethodPost)
	router.HandleFunc("/api/games/{id}", gameHandlers.GetGame).Methods(http.MethodGet)
	router.HandleFunc("/api/games/{id}", gameHandlers.DeleteGame).Methods(http.MethodDelete)
	router.HandleFunc("/api/games/{id}/cells/{cell}", gameHandlers.SelectCell).Methods(http.MethodPost)
	router.HandleFunc("/api/games/{id}/steps/{step}", gameHandlers.JumpTo).Methods(http.MethodPost)

	return router
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
