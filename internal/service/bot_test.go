package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-bot/testing/fake"
)

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Bot takes the picked free cell", func(t *testing.T) {
		// Given: a board with the center taken and a scripted pick
		board := tictactoe.NewBoard()
		board[1][1] = tictactoe.PlayerMark
		bot := NewBotService(fake.NewRand(4))

		// When: the bot moves
		move, err := bot.MakeTurn(&board)

		// Then: the fifth free cell in row-major order is taken
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Move{Row: 1, Col: 2}, move)
		assert.Equal(t, tictactoe.OpponentMark, board[1][2])
	})

	t.Run("Bot cannot move on a full board", func(t *testing.T) {
		// Given: a full board
		board := tictactoe.Board{
			{tictactoe.PlayerMark, tictactoe.OpponentMark, tictactoe.PlayerMark},
			{tictactoe.PlayerMark, tictactoe.OpponentMark, tictactoe.OpponentMark},
			{tictactoe.OpponentMark, tictactoe.PlayerMark, tictactoe.PlayerMark},
		}
		bot := NewBotService(fake.NewRand())

		// When: the bot tries to move
		_, err := bot.MakeTurn(&board)

		// Then: ErrNoMovesAvailable is returned
		require.ErrorIs(t, err, apperror.ErrNoMovesAvailable)
	})
}
