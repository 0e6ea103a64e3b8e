package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGame(t *testing.T) {
	// When: creating a new game
	game := NewGame("123")

	// Then: history holds only the empty board and the cursor is at the start
	expectedGame := Game{
		ID:      "123",
		History: []Move{{Board: Board{}}},
		Step:    0,
	}

	assert.Equal(t, expectedGame, game)
	assert.Equal(t, PlayerX, game.NextMark())
	assert.True(t, game.Outcome().IsOngoing())
}

func TestGame_NextMark(t *testing.T) {
	t.Run("X moves from even steps", func(t *testing.T) {
		// Given: a game viewed at step 2
		game := Game{History: make([]Move, 3), Step: 2}

		// Then: X is next
		assert.Equal(t, PlayerX, game.NextMark())
	})

	t.Run("O moves from odd steps", func(t *testing.T) {
		// Given: a game viewed at step 1
		game := Game{History: make([]Move, 3), Step: 1}

		// Then: O is next
		assert.Equal(t, PlayerO, game.NextMark())
	})
}

func TestGame_HasStep(t *testing.T) {
	// Given: a game with three recorded steps
	game := Game{History: make([]Move, 3)}

	// Then: only steps 0..2 exist
	assert.True(t, game.HasStep(0))
	assert.True(t, game.HasStep(2))
	assert.False(t, game.HasStep(3))
	assert.False(t, game.HasStep(-1))
	assert.Equal(t, 2, game.LastStep())
}

func TestCellToColRow(t *testing.T) {
	tests := []struct {
		cell int
		col  int
		row  int
	}{
		{cell: 0, col: 1, row: 1},
		{cell: 4, col: 2, row: 2},
		{cell: 5, col: 3, row: 2},
		{cell: 6, col: 1, row: 3},
		{cell: 8, col: 3, row: 3},
	}

	for _, tt := range tests {
		col, row := CellToColRow(tt.cell)

		assert.Equal(t, tt.col, col, "cell %d", tt.cell)
		assert.Equal(t, tt.row, row, "cell %d", tt.cell)
	}
}

func TestDescriptor_String(t *testing.T) {
	// Given: an O placed in the bottom-right cell
	descriptor := NewDescriptor(PlayerO, 8)

	// Then: it renders mark and 1-based column,row
	assert.Equal(t, "O (3,3)", descriptor.String())
}

func TestBoard_Place(t *testing.T) {
	// Given: an empty board
	board := Board{}

	// When: placing X in the center
	next := board.Place(4, PlayerX)

	// Then: only the copy changes
	assert.Equal(t, PlayerX, next[4])
	assert.True(t, board.IsEmptyAt(4))
	assert.False(t, next.IsEmptyAt(4))
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}
