package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

func TestCell(t *testing.T) {
	t.Run("Marks get their own color", func(t *testing.T) {
		// Given: a board with one X and one O
		board := entity.Board{0: entity.PlayerX, 1: entity.PlayerO}
		outcome := entity.Evaluate(board)

		// Then: X is blue, O is pink and empty cells are unstyled
		assert.Equal(t, Style{Color: FullBlue}, Cell(board, outcome, 0))
		assert.Equal(t, Style{Color: FullPink}, Cell(board, outcome, 1))
		assert.Equal(t, Style{}, Cell(board, outcome, 2))
	})

	t.Run("Winning line is highlighted", func(t *testing.T) {
		// Given: X won on the left column
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		}
		outcome := entity.Evaluate(board)

		// When: styling the board
		styles := Cells(board, outcome)

		// Then: only the column cells get the yellow background
		for _, cell := range []int{0, 3, 6} {
			assert.Equal(t, Style{Color: FullBlue, Background: LightYellow}, styles[cell])
		}
		assert.Equal(t, Style{Color: FullPink}, styles[4])
		assert.Equal(t, Style{}, styles[8])
	})
}

func TestHistoryEntry(t *testing.T) {
	assert.Equal(t, Style{Background: LightGreen, Border: FullGreen}, HistoryEntry(2, 2))
	assert.Equal(t, Style{}, HistoryEntry(1, 2))
}

func TestForView(t *testing.T) {
	// Given: a board after one move, viewed at the start of a two-step history
	board := entity.Board{4: entity.PlayerX}

	// When: styling the view
	styles := ForView(board, entity.Evaluate(board), 2, 0)

	// Then: the start entry is highlighted and the center is blue
	assert.Equal(t, []Style{{Background: LightGreen, Border: FullGreen}, {}}, styles.History)
	assert.Equal(t, Style{Color: FullBlue}, styles.Cells[4])
}
