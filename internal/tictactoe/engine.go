package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

type Result int

const (
	InProgress Result = iota
	PlayerWin
	OpponentWin
	Draw
)

func (r Result) String() string {
	switch r {
	case PlayerWin:
		return "player_win"
	case OpponentWin:
		return "opponent_win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (r Result) IsTerminal() bool {
	return r != InProgress
}

// Cell codes used by the line-sum win check. The empty code is large enough
// that a line holding an empty cell never sums to a winning total.
const (
	playerCode   = 1
	opponentCode = 2
	emptyCode    = 20

	playerLineSum   = 3 * playerCode
	opponentLineSum = 3 * opponentCode
)

// Lines holds every row, column and diagonal of the board.
var Lines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// ApplyPlayerMove - places the player's mark at (row, col).
func ApplyPlayerMove(board *Board, row, col int) error {
	cell, err := board.At(row, col)
	if err != nil {
		return err
	}

	if cell != Empty {
		return apperror.ErrCellOccupied
	}

	board[row][col] = PlayerMark

	return nil
}

// ApplyOpponentMove - places the opponent's mark on a uniformly chosen empty cell.
func ApplyOpponentMove(board *Board, rnd Rand) (Move, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return Move{}, apperror.ErrNoMovesAvailable
	}

	idx := rnd.Intn(len(available))
	if idx < 0 || idx >= len(available) {
		return Move{}, fmt.Errorf("random source returned %d for %d cells: %w", idx, len(available), ErrInvalidCell)
	}

	chosen := available[idx]
	board[chosen.Row][chosen.Col] = OpponentMark

	return chosen, nil
}

// EvaluateResult - classifies the board. A player line is checked before an opponent line.
func EvaluateResult(board Board) Result {
	sums := lineSums(board)

	for _, sum := range sums {
		if sum == playerLineSum {
			return PlayerWin
		}
	}

	for _, sum := range sums {
		if sum == opponentLineSum {
			return OpponentWin
		}
	}

	if board.IsFull() {
		return Draw
	}

	return InProgress
}

func lineSums(board Board) [len(Lines)]int {
	var sums [len(Lines)]int
	for i, line := range Lines {
		for _, m := range line {
			sums[i] += cellCode(board[m.Row][m.Col])
		}
	}

	return sums
}

func cellCode(c Cell) int {
	switch c {
	case PlayerMark:
		return playerCode
	case OpponentMark:
		return opponentCode
	default:
		return emptyCode
	}
}
