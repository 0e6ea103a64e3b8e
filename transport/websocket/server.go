package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const (
	sessionCookieName = "user_session"
	sessionCookieTTL  = 24 * time.Hour

	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type uGame interface {
	NewGame(ctx context.Context) (tictactoe.View, error)
	GetOrCreateGame(ctx context.Context, id string) (tictactoe.View, error)
	SelectCell(ctx context.Context, id string, cell int) (tictactoe.View, error)
	JumpTo(ctx context.Context, id string, step int) (tictactoe.View, error)
	EndGame(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, msg *Message, sess *session) error

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger,
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionGameNew] = server.handleNewGame
	server.handlers[actionGameSelect] = server.handleSelectCell
	server.handlers[actionGameJump] = server.handleJumpTo
	server.handlers[actionGameLeave] = server.handleLeave

	return server
}

// Handler - returns the /ws route. Open connections are closed when ctx is done.
func (that *Server) Handler(ctx context.Context) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return router
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(ctx),
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

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, that.sessionCookieHeader(req))
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(ctx, &session{conn: conn}); err != nil {
		log.Info("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, sess *session) error {
	log := that.logger.With("method", "HandleMessages")

	for {
		var message Message
		if err := sess.conn.ReadJSON(&message); err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return fmt.Errorf("client closed connection: %w", err)
			}

			if !isDecodeError(err) {
				return fmt.Errorf("failed to read message: %w", err)
			}

			log.Error("failed to unmarshal message", "error", err)

			if err = that.sendErrorResponse(sess, "", "malformed message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err := that.sendErrorResponse(sess, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err := handler(ctx, &message, sess); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

// sessionCookieHeader - returns a Set-Cookie header when the client has no session yet.
func (that *Server) sessionCookieHeader(req *http.Request) http.Header {
	log := that.logger.With("method", "setSessionCookie")

	cookie, err := req.Cookie(sessionCookieName)
	if err == nil {
		log.Info("session cookie found", "cookie", cookie.Value)
		return nil
	}

	cookie = &http.Cookie{
		Name:     sessionCookieName,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(sessionCookieTTL),
		Path:     "/ws",
		HttpOnly: true,
	}

	log.Info("session cookie not found, new one created", "cookie", cookie.Value)

	return http.Header{"Set-Cookie": []string{cookie.String()}}
}
