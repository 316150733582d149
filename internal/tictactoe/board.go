package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the fixed edge length of the board.
const Size = 3

type Cell int

const (
	Empty Cell = iota
	PlayerMark
	OpponentMark
)

func (c Cell) String() string {
	switch c {
	case PlayerMark:
		return "X"
	case OpponentMark:
		return "O"
	default:
		return "."
	}
}

var ErrInvalidCell = errors.New("invalid cell index")

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Board [Size][Size]Cell

// NewBoard - returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

func (that Board) At(row, col int) (Cell, error) {
	move := Move{Row: row, Col: col}
	if !move.Valid() {
		return Empty, fmt.Errorf("%w: %s", ErrInvalidCell, move)
	}

	return that[row][col], nil
}

// EmptyCells - returns the free cells in row-major order.
func (that Board) EmptyCells() []Move {
	cells := make([]Move, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if that[r][c] == Empty {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}

func (that Board) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that[r][c].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
