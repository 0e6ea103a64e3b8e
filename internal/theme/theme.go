// Package theme maps board state to display styles. It knows nothing about
// how a game is stored or advanced.
package theme

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

// UI colors
const (
	LightBlue   = "#ABFCFB"
	LightPink   = "#FDD6FF"
	LightYellow = "#FFFFC9"
	LightGreen  = "#C5FFEA"
	FullBlue    = "#2DF8F5"
	FullPink    = "#FB98FE"
	FullYellow  = "#FFFF78"
	FullGreen   = "#6DFECA"
)

// Style holds hex colors; an empty field means the client default.
type Style struct {
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	Border     string `json:"border,omitempty"`
}

// MarkColor returns the foreground color for a placed mark.
func MarkColor(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return FullBlue
	case entity.PlayerO:
		return FullPink
	default:
		return ""
	}
}

// Cell styles one board cell: the mark color plus a highlight when the
// cell is part of the winning line.
func Cell(board entity.Board, outcome entity.Outcome, cell int) Style {
	style := Style{Color: MarkColor(board[cell])}

	if outcome.OnLine(cell) {
		style.Background = LightYellow
	}

	return style
}

// Cells styles the whole board in index order.
func Cells(board entity.Board, outcome entity.Outcome) [entity.BoardSize]Style {
	var styles [entity.BoardSize]Style
	for i := range styles {
		styles[i] = Cell(board, outcome, i)
	}

	return styles
}

// HistoryEntry highlights the entry at the cursor.
func HistoryEntry(step, cursor int) Style {
	if step != cursor {
		return Style{}
	}

	return Style{Background: LightGreen, Border: FullGreen}
}

// ViewStyles is the styling of a rendered game: one entry per cell and
// one per history step.
type ViewStyles struct {
	Cells   [entity.BoardSize]Style `json:"cells"`
	History []Style                 `json:"history"`
}

// ForView styles a board at cursor within a history of the given length.
func ForView(board entity.Board, outcome entity.Outcome, steps, cursor int) ViewStyles {
	styles := ViewStyles{
		Cells:   Cells(board, outcome),
		History: make([]Style, steps),
	}

	for step := range styles.History {
		styles.History[step] = HistoryEntry(step, cursor)
	}

	return styles
}
