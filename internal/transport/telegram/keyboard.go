package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

const (
	symbolEmpty    = "."
	symbolPlayer   = "✖"
	symbolOpponent = "O"
)

var ErrBadCallbackData = errors.New("bad callback data")

func cellSymbol(cell tictactoe.Cell) string {
	switch cell {
	case tictactoe.PlayerMark:
		return symbolPlayer
	case tictactoe.OpponentMark:
		return symbolOpponent
	default:
		return symbolEmpty
	}
}

// renderKeyboard - one button per cell; the callback data is the row and column digits.
func renderKeyboard(board tictactoe.Board) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, tictactoe.Size)
	for r := range tictactoe.Size {
		row := make([]tgbotapi.InlineKeyboardButton, 0, tictactoe.Size)
		for c := range tictactoe.Size {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(cellSymbol(board[r][c]), callbackData(r, c)))
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func callbackData(row, col int) string {
	return fmt.Sprintf("%d%d", row, col)
}

func parseCallbackData(data string) (tictactoe.Move, error) {
	if len(data) != 2 {
		return tictactoe.Move{}, fmt.Errorf("%w: %q", ErrBadCallbackData, data)
	}

	move := tictactoe.Move{Row: int(data[0]) - '0', Col: int(data[1]) - '0'}
	if !move.Valid() {
		return tictactoe.Move{}, fmt.Errorf("%w: %q", ErrBadCallbackData, data)
	}

	return move, nil
}
