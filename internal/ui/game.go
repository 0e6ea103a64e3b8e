// Package ui is the terminal front end: a 3x3 grid of buttons, the move
// history and a status line.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/theme"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const hintText = "  [dimgray]1-9[-] play  [dimgray]tab[-] history  [dimgray]n[-] new game  [dimgray]q[-] quit"

// GameUI owns one game and advances it with the reducer.
type GameUI struct {
	logger *slog.Logger
	game   entity.Game

	flex    *tview.Flex
	cells   [entity.BoardSize]*tview.Button
	history *tview.List
	status  *tview.TextView

	onQuit func()
}

func NewGameUI(logger *slog.Logger, onQuit func()) *GameUI {
	that := &GameUI{
		logger: logger,
		game:   entity.NewGame(pkg.GenerateGameID()),
		onQuit: onQuit,
	}

	grid := tview.NewGrid().
		SetRows(3, 3, 3).
		SetColumns(7, 7, 7).
		SetGap(1, 1)
	grid.SetBorder(true).SetTitle(" Board ")

	for i := range that.cells {
		cell := i
		col, row := entity.CellToColRow(cell)

		that.cells[cell] = tview.NewButton("").SetSelectedFunc(func() {
			that.SelectCell(cell)
		})
		grid.AddItem(that.cells[cell], row-1, col-1, 1, 1, 0, 0, cell == 0)
	}

	that.history = tview.NewList().ShowSecondaryText(false)
	that.history.SetBorder(true).SetTitle(" History ")
	that.history.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		that.JumpTo(index)
	})

	that.status = tview.NewTextView().SetDynamicColors(true)

	hint := tview.NewTextView().SetDynamicColors(true).SetText(hintText)

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(grid, 27, 0, true).
		AddItem(that.history, 0, 1, false)

	that.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 15, 0, true).
		AddItem(that.status, 1, 0, false).
		AddItem(hint, 1, 0, false)

	that.refresh()

	return that
}

// Root returns the top level primitive.
func (that *GameUI) Root() tview.Primitive {
	return that.flex
}

// View projects the game as currently shown.
func (that *GameUI) View() tictactoe.View {
	return tictactoe.NewView(that.game)
}

func (that *GameUI) SelectCell(cell int) {
	that.dispatch(tictactoe.SelectCell{Cell: cell})
}

func (that *GameUI) JumpTo(step int) {
	that.dispatch(tictactoe.JumpTo{Step: step})
}

// NewGame drops the history and starts over.
func (that *GameUI) NewGame() {
	that.game = entity.NewGame(pkg.GenerateGameID())
	that.logger.Info("game created", "gameID", that.game.ID)

	that.refresh()
}

// HandleInput maps keys to game actions. focus is called to move focus
// between the board and the history.
func (that *GameUI) HandleInput(event *tcell.EventKey, focus func(tview.Primitive)) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab:
		if that.history.HasFocus() {
			focus(that.cells[0])
		} else {
			focus(that.history)
		}

		return nil
	case tcell.KeyEscape:
		that.quit()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		that.SelectCell(int(r - '1'))
	case r == 'n':
		that.NewGame()
	case r == 'q':
		that.quit()
	default:
		return event
	}

	return nil
}

func (that *GameUI) dispatch(event tictactoe.Event) {
	next := tictactoe.Reduce(that.game, event)
	if !tictactoe.Applied(that.game, next) {
		that.logger.Debug("event ignored", "event", fmt.Sprintf("%T", event), "step", that.game.Step)
		return
	}

	that.game = next
	that.logger.Debug("event applied", "event", fmt.Sprintf("%T", event), "step", next.Step)

	that.refresh()
}

func (that *GameUI) refresh() {
	view := that.View()
	styles := theme.ForView(view.Board, view.Outcome, len(view.History), view.Step)

	for i, button := range that.cells {
		style := styles.Cells[i]

		button.SetLabel(cellLabel(view.Board[i]))
		button.SetLabelColor(color(style.Color, tview.Styles.PrimaryTextColor))
		button.SetBackgroundColor(color(style.Background, tview.Styles.ContrastBackgroundColor))
	}

	that.history.Clear()
	for _, entry := range view.History {
		that.history.AddItem(historyText(entry, styles.History[entry.Step]), "", 0, nil)
	}
	that.history.SetCurrentItem(view.Step)

	that.status.SetText(statusText(view))
}

func (that *GameUI) quit() {
	if that.onQuit != nil {
		that.onQuit()
	}
}

func cellLabel(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return string(mark)
}

func historyText(entry tictactoe.HistoryEntry, style theme.Style) string {
	if style.Border == "" {
		return "  " + entry.Label
	}

	return fmt.Sprintf("[%s]> %s[-]", style.Border, entry.Label)
}

func statusText(view tictactoe.View) string {
	mark := view.NextMark
	if view.Outcome.IsWin() {
		mark = view.Outcome.Winner
	}

	if hex := theme.MarkColor(mark); hex != "" {
		return fmt.Sprintf(" [%s]%s[-]", hex, view.Status)
	}

	return " " + view.Status
}

// color parses a hex style color, falling back when it is unset.
func color(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}

	return tcell.GetColor(hex)
}
