package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/theme"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type Handlers interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	SelectCell(w http.ResponseWriter, r *http.Request)
	JumpTo(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger *slog.Logger
	uGame  uGame
}

// GameResponse is a game view together with its display styles.
type GameResponse struct {
	tictactoe.View
	Styles theme.ViewStyles `json:"styles"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHandlers(logger *slog.Logger, uGame uGame) Handlers {
	return &handlers{
		logger: logger,
		uGame:  uGame,
	}
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.uGame.NewGame(r.Context())
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	that.writeView(w, http.StatusCreated, view)
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.uGame.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeView(w, http.StatusOK, view)
}

func (that *handlers) SelectCell(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cell, err := strconv.Atoi(vars["cell"])
	if err != nil {
		that.writeError(w, "SelectCell", fmt.Errorf("%w: %q", apperror.ErrInvalidCell, vars["cell"]))
		return
	}

	view, err := that.uGame.SelectCell(r.Context(), vars["id"], cell)
	if err != nil {
		that.writeError(w, "SelectCell", err)
		return
	}

	that.writeView(w, http.StatusOK, view)
}

func (that *handlers) JumpTo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	step, err := strconv.Atoi(vars["step"])
	if err != nil {
		that.writeError(w, "JumpTo", fmt.Errorf("%w: %q", apperror.ErrStepOutOfRange, vars["step"]))
		return
	}

	view, err := that.uGame.JumpTo(r.Context(), vars["id"], step)
	if err != nil {
		that.writeError(w, "JumpTo", err)
		return
	}

	that.writeView(w, http.StatusOK, view)
}

func (that *handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.EndGame(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, "DeleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NewGameResponse attaches display styles to view.
func NewGameResponse(view tictactoe.View) GameResponse {
	return GameResponse{
		View:   view,
		Styles: theme.ForView(view.Board, view.Outcome, len(view.History), view.Step),
	}
}

func (that *handlers) writeView(w http.ResponseWriter, status int, view tictactoe.View) {
	that.writeJSON(w, status, NewGameResponse(view))
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFromError(err)

	log := that.logger.With("method", method)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})

		return
	}

	log.Info("request rejected", "error", err)
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrStepOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
