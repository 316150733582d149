package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

// TurnOutcome describes one player move and the bot's answer to it.
type TurnOutcome struct {
	Result       tictactoe.Result
	PlayerMove   tictactoe.Move
	OpponentMove *tictactoe.Move
}

type GamePlayService interface {
	MakeTurn(session *entity.Session, row, col int) (*TurnOutcome, error)
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger,
		botService: botService,
	}
}

// MakeTurn - applies the player's move, then the bot's, and records a terminal result on the session.
// On error the session board is left as it was.
func (that *gamePlayService) MakeTurn(session *entity.Session, row, col int) (*TurnOutcome, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", session.ID)

	if session.IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	board := session.Board

	if err := tictactoe.ApplyPlayerMove(&board, row, col); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	outcome := &TurnOutcome{
		PlayerMove: tictactoe.Move{Row: row, Col: col},
		Result:     tictactoe.EvaluateResult(board),
	}

	if outcome.Result == tictactoe.PlayerWin {
		that.commit(session, board, outcome.Result)
		return outcome, nil
	}

	move, err := that.botService.MakeTurn(&board)
	if errors.Is(err, apperror.ErrNoMovesAvailable) {
		log.Debug("bot has no free cell left")

		outcome.Result = tictactoe.Draw
		that.commit(session, board, outcome.Result)

		return outcome, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to make bot turn: %w", err)
	}

	log.Debug("bot made turn", "move", move.String())

	outcome.OpponentMove = &move
	outcome.Result = tictactoe.EvaluateResult(board)
	that.commit(session, board, outcome.Result)

	return outcome, nil
}

func (that *gamePlayService) commit(session *entity.Session, board tictactoe.Board, result tictactoe.Result) {
	session.Board = board

	if result.IsTerminal() {
		session.Finish(result)
	}
}
