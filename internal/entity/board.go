package entity

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

const BoardSize = 9

// Line is a triple of cell indices that wins the game when identically marked.
type Line [3]int

// WinCombos are checked in this order: rows, columns, diagonals.
var WinCombos = [...]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major 3x3 grid, index = 3*row + col.
type Board [BoardSize]Mark

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that Board) IsEmptyAt(cell int) bool {
	return that[cell] == EmptyCell
}

// Place returns a copy of the board with mark set at cell.
func (that Board) Place(cell int, mark Mark) Board {
	that[cell] = mark
	return that
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// CellToColRow maps a cell index to 1-based column and row.
func CellToColRow(cell int) (int, int) {
	return cell%3 + 1, cell/3 + 1
}

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}
