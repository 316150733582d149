package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

type BotService interface {
	MakeTurn(board *tictactoe.Board) (tictactoe.Move, error)
}

type botService struct {
	rnd tictactoe.Rand
}

func NewBotService(rnd tictactoe.Rand) BotService {
	return &botService{
		rnd: rnd,
	}
}

// MakeTurn - places the bot's mark on a random free cell.
func (that *botService) MakeTurn(board *tictactoe.Board) (tictactoe.Move, error) {
	move, err := tictactoe.ApplyOpponentMove(board, that.rnd)
	if err != nil {
		return tictactoe.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
