package telegram

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

const (
	occupiedText   = "You have placed a cross in an occupied cell. Place in the free one."
	occupiedMarker = "occupied cell"
	playAgainText  = "Play again with /start"
)

func turnText(firstName string) string {
	return fmt.Sprintf("%s, your turn! Please, put X to the free place", firstName)
}

func resultText(result tictactoe.Result) string {
	switch result {
	case tictactoe.PlayerWin:
		return "Congratulations! You won! " + playAgainText
	case tictactoe.OpponentWin:
		return "Oh :( Unfortunately you lost. " + playAgainText
	default:
		return "We ended up in a draw! " + playAgainText
	}
}
