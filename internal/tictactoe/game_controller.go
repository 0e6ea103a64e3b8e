package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// Event is an input to Reduce.
type Event interface {
	apply(game entity.Game) entity.Game
}

// SelectCell places the next mark at Cell.
type SelectCell struct {
	Cell int
}

// JumpTo moves the cursor to an already recorded Step.
type JumpTo struct {
	Step int
}

// Reduce returns the game that results from event. The input game is never
// modified; rejected events return it unchanged.
func Reduce(game entity.Game, event Event) entity.Game {
	return event.apply(game)
}

// Applied reports whether Reduce accepted the event that turned prev into next.
func Applied(prev, next entity.Game) bool {
	return prev.Step != next.Step || len(prev.History) != len(next.History)
}

func (that SelectCell) apply(game entity.Game) entity.Game {
	if !canSelect(game, that.Cell) {
		return game
	}

	current := game.Current()
	mark := game.NextMark()

	// playing from a past step drops every later step
	history := make([]entity.Move, game.Step+1, game.Step+2)
	copy(history, game.History[:game.Step+1])

	history = append(history, entity.Move{
		Board:      current.Board.Place(that.Cell, mark),
		Descriptor: entity.NewDescriptor(mark, that.Cell),
	})

	return entity.Game{
		ID:      game.ID,
		History: history,
		Step:    len(history) - 1,
	}
}

func (that JumpTo) apply(game entity.Game) entity.Game {
	if !game.HasStep(that.Step) {
		return game
	}

	game.Step = that.Step

	return game
}

// canSelect - checks the move against the board at the cursor.
func canSelect(game entity.Game, cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	current := game.Current()
	if !entity.Evaluate(current.Board).IsOngoing() {
		return false
	}

	return current.Board.IsEmptyAt(cell)
}
