package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/theme"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const (
	actionConnect    = "connect"
	actionGameNew    = "game:new"
	actionGameSelect = "game:select"
	actionGameJump   = "game:jump"
	actionGameLeave  = "game:leave"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID string    `json:"game_id,omitempty"`
	Cell   *int      `json:"cell,omitempty"`
	Step   *int      `json:"step,omitempty"`
	Game   *GameView `json:"game,omitempty"`
	Error  string    `json:"error,omitempty"`
}

// GameView is a game view together with its display styles.
type GameView struct {
	tictactoe.View
	Styles theme.ViewStyles `json:"styles"`
}

// session is the state of one connection.
type session struct {
	conn   *websocket.Conn
	gameID string
}

func newGameView(view tictactoe.View) *GameView {
	return &GameView{
		View:   view,
		Styles: theme.ForView(view.Board, view.Outcome, len(view.History), view.Step),
	}
}

func (that *Server) sendMessage(sess *session, action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = sess.conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendView(sess *session, action string, view tictactoe.View) error {
	sess.gameID = view.GameID

	return that.sendMessage(sess, action, Payload{GameID: view.GameID, Game: newGameView(view)})
}

func (that *Server) sendErrorResponse(sess *session, action, errorMsg string) error {
	if err := that.sendMessage(sess, action, Payload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
