package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const labelGameStart = "Go to game start"

// HistoryEntry is one navigable history item.
type HistoryEntry struct {
	Step       int                `json:"step"`
	Label      string             `json:"label"`
	Descriptor *entity.Descriptor `json:"descriptor,omitempty"`
	Current    bool               `json:"current"`
}

// View is the read-only projection rendered by presentation clients.
type View struct {
	GameID   string         `json:"game_id"`
	Board    entity.Board   `json:"board"`
	Outcome  entity.Outcome `json:"outcome"`
	Step     int            `json:"step"`
	NextMark entity.Mark    `json:"next_mark,omitempty"`
	Status   string         `json:"status"`
	History  []HistoryEntry `json:"history"`
}

// NewView projects game. The board at the cursor is evaluated once.
func NewView(game entity.Game) View {
	current := game.Current()
	outcome := entity.Evaluate(current.Board)

	view := View{
		GameID:  game.ID,
		Board:   current.Board,
		Outcome: outcome,
		Step:    game.Step,
		Status:  statusLine(game, outcome),
		History: make([]HistoryEntry, 0, len(game.History)),
	}

	if outcome.IsOngoing() {
		view.NextMark = game.NextMark()
	}

	for step, move := range game.History {
		view.History = append(view.History, HistoryEntry{
			Step:       step,
			Label:      historyLabel(step, move),
			Descriptor: move.Descriptor,
			Current:    step == game.Step,
		})
	}

	return view
}

func statusLine(game entity.Game, outcome entity.Outcome) string {
	switch {
	case outcome.IsWin():
		return fmt.Sprintf("Winner: %s", outcome.Winner)
	case outcome.IsDraw():
		return "Draw!"
	default:
		return fmt.Sprintf("Next player: %s", game.NextMark())
	}
}

func historyLabel(step int, move entity.Move) string {
	if step == 0 {
		return labelGameStart
	}

	label := fmt.Sprintf("Go to move #%d", step)
	if move.Descriptor != nil {
		label += " - " + move.Descriptor.String()
	}

	return label
}
