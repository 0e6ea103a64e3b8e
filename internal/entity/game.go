package entity

import "fmt"

// Descriptor describes the mark placed by a move, for display only.
type Descriptor struct {
	Mark Mark `json:"mark"`
	Cell int  `json:"cell"`
	Col  int  `json:"col"`
	Row  int  `json:"row"`
}

func NewDescriptor(mark Mark, cell int) *Descriptor {
	col, row := CellToColRow(cell)

	return &Descriptor{
		Mark: mark,
		Cell: cell,
		Col:  col,
		Row:  row,
	}
}

func (that Descriptor) String() string {
	return fmt.Sprintf("%s (%d,%d)", that.Mark, that.Col, that.Row)
}

// Move is an immutable snapshot of the board after a move. The first
// history entry has no descriptor.
type Move struct {
	Board      Board       `json:"board"`
	Descriptor *Descriptor `json:"descriptor,omitempty"`
}

// Game is one session's move history and the step currently viewed.
type Game struct {
	ID      string `json:"id"`
	History []Move `json:"history"`
	Step    int    `json:"step"`
}

func NewGame(id string) Game {
	return Game{
		ID:      id,
		History: []Move{{}},
		Step:    0,
	}
}

func (that Game) Current() Move {
	return that.History[that.Step]
}

func (that Game) LastStep() int {
	return len(that.History) - 1
}

func (that Game) HasStep(step int) bool {
	return step >= 0 && step < len(that.History)
}

// NextMark is derived from the parity of the viewed step: X moves from even steps.
func (that Game) NextMark() Mark {
	if that.Step%2 == 0 {
		return PlayerX
	}

	return PlayerO
}

func (that Game) Outcome() Outcome {
	return Evaluate(that.Current().Board)
}
