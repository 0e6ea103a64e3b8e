package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

// handleConnect resumes the game named in the payload, or starts a new one.
func (that *Server) handleConnect(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		log.Error("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "malformed payload")
	}

	view, err := that.uGame.GetOrCreateGame(ctx, payloadReq.GameID)
	if err != nil {
		log.Error("failed to create or get game", "gameID", payloadReq.GameID, "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to get the game")
	}

	log.Info("successfully connected", "gameID", view.GameID)

	return that.sendView(sess, msg.Action, view)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleNewGame")

	view, err := that.uGame.NewGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to create a new game")
	}

	return that.sendView(sess, msg.Action, view)
}

func (that *Server) handleSelectCell(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleSelectCell", "gameID", sess.gameID)

	payloadReq, err := decodePayload(msg)
	if err != nil {
		log.Error("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "malformed payload")
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(sess, msg.Action, "cell is required")
	}

	if sess.gameID == "" {
		return that.sendErrorResponse(sess, msg.Action, "no game in progress")
	}

	view, err := that.uGame.SelectCell(ctx, sess.gameID, *payloadReq.Cell)
	if err != nil {
		log.Error("failed to select cell", "cell", *payloadReq.Cell, "error", err)
		return that.sendErrorResponse(sess, msg.Action, errorMessage(err, "failed to select cell"))
	}

	return that.sendView(sess, msg.Action, view)
}

func (that *Server) handleJumpTo(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleJumpTo", "gameID", sess.gameID)

	payloadReq, err := decodePayload(msg)
	if err != nil {
		log.Error("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "malformed payload")
	}

	if payloadReq.Step == nil {
		return that.sendErrorResponse(sess, msg.Action, "step is required")
	}

	if sess.gameID == "" {
		return that.sendErrorResponse(sess, msg.Action, "no game in progress")
	}

	view, err := that.uGame.JumpTo(ctx, sess.gameID, *payloadReq.Step)
	if err != nil {
		log.Error("failed to jump", "step", *payloadReq.Step, "error", err)
		return that.sendErrorResponse(sess, msg.Action, errorMessage(err, "failed to jump"))
	}

	return that.sendView(sess, msg.Action, view)
}

// handleLeave drops the session's game.
func (that *Server) handleLeave(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleLeave", "gameID", sess.gameID)

	if sess.gameID == "" {
		return that.sendErrorResponse(sess, msg.Action, "no game in progress")
	}

	gameID := sess.gameID
	sess.gameID = ""

	if err := that.uGame.EndGame(ctx, gameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to end game", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to end game")
	}

	log.Info("game left")

	return that.sendMessage(sess, msg.Action, Payload{GameID: gameID})
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

// errorMessage shows the cause of client mistakes and hides everything else.
func errorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrStepOutOfRange),
		errors.Is(err, apperror.ErrGameNotFound):
		return err.Error()
	default:
		return fallback
	}
}
