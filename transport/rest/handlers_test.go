package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/theme"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository())

	return NewRouter(logger, manager)
}

func do(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	return rec
}

func decodeGame(t *testing.T, rec *httptest.ResponseRecorder) GameResponse {
	t.Helper()

	var resp GameResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func createGame(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/games")
	require.Equal(t, http.StatusCreated, rec.Code)

	return decodeGame(t, rec).GameID
}

func TestPing(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_CreateGame(t *testing.T) {
	// When: a game is created
	rec := do(t, newTestRouter(), http.MethodPost, "/api/games")

	// Then: an empty board with X to play is returned
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeGame(t, rec)
	assert.NotEmpty(t, resp.GameID)
	assert.Equal(t, "Next player: X", resp.Status)
	assert.Equal(t, entity.PlayerX, resp.NextMark)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "Go to game start", resp.History[0].Label)
	assert.Equal(t, []theme.Style{{Background: theme.LightGreen, Border: theme.FullGreen}}, resp.Styles.History)
}

func TestHandlers_SelectCell(t *testing.T) {
	t.Run("Plays the next mark", func(t *testing.T) {
		// Given: a new game
		router := newTestRouter()
		id := createGame(t, router)

		// When: X plays the center
		rec := do(t, router, http.MethodPost, "/api/games/"+id+"/cells/4")

		// Then: the board and styles reflect the move
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeGame(t, rec)
		assert.Equal(t, entity.PlayerX, resp.Board[4])
		assert.Equal(t, "Next player: O", resp.Status)
		assert.Equal(t, theme.Style{Color: theme.FullBlue}, resp.Styles.Cells[4])
		assert.Equal(t, "Go to move #1 - X (2,2)", resp.History[1].Label)
	})

	t.Run("Winning line is styled", func(t *testing.T) {
		// Given: a new game
		router := newTestRouter()
		id := createGame(t, router)

		// When: X completes the top row
		var rec *httptest.ResponseRecorder
		for _, cell := range []string{"0", "3", "1", "4", "2"} {
			rec = do(t, router, http.MethodPost, "/api/games/"+id+"/cells/"+cell)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		// Then: the winner is announced and the row is highlighted
		resp := decodeGame(t, rec)
		assert.Equal(t, "Winner: X", resp.Status)
		assert.Empty(t, resp.NextMark)
		for _, cell := range []int{0, 1, 2} {
			assert.Equal(t, theme.LightYellow, resp.Styles.Cells[cell].Background)
		}
	})

	t.Run("Bad cells", func(t *testing.T) {
		router := newTestRouter()
		id := createGame(t, router)

		for _, cell := range []string{"9", "-1", "abc"} {
			rec := do(t, router, http.MethodPost, "/api/games/"+id+"/cells/"+cell)
			assert.Equal(t, http.StatusBadRequest, rec.Code, cell)
		}
	})

	t.Run("Unknown game", func(t *testing.T) {
		rec := do(t, newTestRouter(), http.MethodPost, "/api/games/missing/cells/0")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "game not found")
	})
}

func TestHandlers_JumpTo(t *testing.T) {
	// Given: a game after two moves
	router := newTestRouter()
	id := createGame(t, router)
	do(t, router, http.MethodPost, "/api/games/"+id+"/cells/0")
	do(t, router, http.MethodPost, "/api/games/"+id+"/cells/8")

	// When: jumping back to the start
	rec := do(t, router, http.MethodPost, "/api/games/"+id+"/steps/0")

	// Then: the board is empty but the history is kept
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeGame(t, rec)
	assert.Equal(t, entity.Board{}, resp.Board)
	assert.Len(t, resp.History, 3)
	assert.True(t, resp.History[0].Current)
	assert.Equal(t, theme.LightGreen, resp.Styles.History[0].Background)

	// When: jumping past the end
	rec = do(t, router, http.MethodPost, "/api/games/"+id+"/steps/3")

	// Then: the request is rejected
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_GetAndDeleteGame(t *testing.T) {
	// Given: a stored game
	router := newTestRouter()
	id := createGame(t, router)

	// Then: it can be fetched
	rec := do(t, router, http.MethodGet, "/api/games/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decodeGame(t, rec).GameID)

	// When: it is deleted
	rec = do(t, router, http.MethodDelete, "/api/games/"+id)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Then: it is gone
	rec = do(t, router, http.MethodGet, "/api/games/"+id)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/games/"+id)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
