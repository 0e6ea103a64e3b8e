package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

func TestNewView(t *testing.T) {
	t.Run("New game", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: projecting it
		view := NewView(game)

		// Then: X is next and only the start entry is listed
		expectedView := View{
			GameID:   "123",
			Board:    entity.Board{},
			Outcome:  entity.Outcome{Status: entity.StatusOngoing},
			Step:     0,
			NextMark: entity.PlayerX,
			Status:   "Next player: X",
			History: []HistoryEntry{
				{Step: 0, Label: "Go to game start", Current: true},
			},
		}

		require.Equal(t, expectedView, view)
	})

	t.Run("History labels carry mark and coordinates", func(t *testing.T) {
		// Given: a game after two moves
		game := play(entity.NewGame("123"), 4, 8)

		// When: projecting it
		view := NewView(game)

		// Then: every entry is labelled and the last one is current
		require.Len(t, view.History, 3)
		assert.Equal(t, "Go to game start", view.History[0].Label)
		assert.Equal(t, "Go to move #1 - X (2,2)", view.History[1].Label)
		assert.Equal(t, "Go to move #2 - O (3,3)", view.History[2].Label)
		assert.False(t, view.History[1].Current)
		assert.True(t, view.History[2].Current)
	})

	t.Run("Winner status", func(t *testing.T) {
		// Given: X won on the top row
		game := play(entity.NewGame("123"), 0, 3, 1, 4, 2)

		// When: projecting it
		view := NewView(game)

		// Then: the winner is announced and nobody is next
		assert.Equal(t, "Winner: X", view.Status)
		assert.Equal(t, entity.EmptyCell, view.NextMark)
		assert.True(t, view.Outcome.IsWin())
	})

	t.Run("Draw status", func(t *testing.T) {
		// Given: a drawn game
		game := play(entity.NewGame("123"), 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// When: projecting it
		view := NewView(game)

		// Then: the draw is announced
		assert.Equal(t, "Draw!", view.Status)
		assert.Equal(t, entity.EmptyCell, view.NextMark)
	})

	t.Run("Viewing a past step", func(t *testing.T) {
		// Given: a finished game rewound to step 3
		game := play(entity.NewGame("123"), 0, 3, 1, 4, 2)
		game = Reduce(game, JumpTo{Step: 3})

		// When: projecting it
		view := NewView(game)

		// Then: the past board is shown with O to play
		assert.Equal(t, "Next player: O", view.Status)
		assert.Equal(t, 3, view.Step)
		assert.Equal(t, entity.Board{0: entity.PlayerX, 1: entity.PlayerX, 3: entity.PlayerO}, view.Board)
		assert.Len(t, view.History, 6)
		assert.True(t, view.History[3].Current)
	})
}
