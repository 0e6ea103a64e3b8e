// tui plays Tic Tac Toe with time travel in the terminal.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/ui"
)

const logFile = "tictactoe/tui.log"

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()

	logger, closeLog := initLogger(conf)
	defer closeLog()

	app := tview.NewApplication()
	gameUI := ui.NewGameUI(logger, app.Stop)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		return gameUI.HandleInput(event, func(p tview.Primitive) { app.SetFocus(p) })
	})

	if err := app.SetRoot(gameUI.Root(), true).EnableMouse(true).Run(); err != nil {
		panic(fmt.Errorf("tui run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(config.Locate(filepath.Join(baseDir, "config.yml")))
}

// initialize logger. The terminal belongs to the UI, so logs go to the XDG state dir.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var out io.Writer = io.Discard
	closeLog := func() {}

	if path, err := xdg.StateFile(logFile); err == nil {
		if file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			out = file
			closeLog = func() { _ = file.Close() }
		}
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: config.ParseLogLevel(conf.LogLevel)}))

	return logger, closeLog
}
