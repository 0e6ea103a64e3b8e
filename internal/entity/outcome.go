package entity

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusDraw    Status = "draw"
)

// Outcome is derived from a board and never stored alongside it.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
	Line   *Line  `json:"line,omitempty"`
}

// Evaluate reports the first winning line in WinCombos order, Draw for a
// full board without one, and Ongoing otherwise. It accepts any board,
// including positions unreachable by legal play.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			line := combo
			return Outcome{Status: StatusWin, Winner: a, Line: &line}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Status: StatusOngoing}
	}

	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// OnLine reports whether cell belongs to the winning line.
func (that Outcome) OnLine(cell int) bool {
	if that.Line == nil {
		return false
	}

	for _, idx := range that.Line {
		if idx == cell {
			return true
		}
	}

	return false
}
