package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

type GameUseCase interface {
	StartGame(ctx context.Context, player entity.Player, chatID int64) (*entity.Session, error)
	MakeTurn(ctx context.Context, playerID int64, row, col int) (*entity.Session, *service.TurnOutcome, error)
	GetSession(ctx context.Context, playerID int64) (*entity.Session, error)
	EndGame(ctx context.Context, playerID int64) error
}

type sessionRepoDep interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByPlayerID(ctx context.Context, playerID int64) (*entity.Session, error)
	DeleteByPlayerID(ctx context.Context, playerID int64) error
}

type gamePlayDep interface {
	MakeTurn(session *entity.Session, row, col int) (*service.TurnOutcome, error)
}

type gameUseCase struct {
	logger *slog.Logger

	sessionRepo sessionRepoDep
	gamePlay    gamePlayDep

	now func() time.Time
}

func NewGameUseCase(logger *slog.Logger, sessionRepo sessionRepoDep, gamePlay gamePlayDep) GameUseCase {
	return &gameUseCase{
		logger:      logger.With("component", "game"),
		sessionRepo: sessionRepo,
		gamePlay:    gamePlay,
		now:         time.Now,
	}
}

// StartGame - opens a fresh game for the player, replacing whatever session was there.
func (that *gameUseCase) StartGame(ctx context.Context, player entity.Player, chatID int64) (*entity.Session, error) {
	session := entity.NewSession(uuid.NewString(), player, chatID, that.now().UTC())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("game started", "gameID", session.ID, "playerID", player.ID, "chatID", chatID)

	return session, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID int64, row, col int) (*entity.Session, *service.TurnOutcome, error) {
	log := that.logger.With("method", "MakeTurn", "playerID", playerID)

	session, err := that.GetSession(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}

	if session.IsFinished() {
		return session, nil, apperror.ErrGameFinished
	}

	outcome, err := that.gamePlay.MakeTurn(session, row, col)
	if errors.Is(err, apperror.ErrCellOccupied) {
		log.Debug("cell is occupied", "gameID", session.ID, "row", row, "col", col)
		return session, nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to update session: %w", err)
	}

	if outcome.Result.IsTerminal() {
		log.Info("game finished", "gameID", session.ID, "result", outcome.Result.String(), "board", session.Board.String())
	}

	return session, outcome, nil
}

func (that *gameUseCase) GetSession(ctx context.Context, playerID int64) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByPlayerID(ctx, playerID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return nil, fmt.Errorf("%w: player %d", apperror.ErrNoActiveGames, playerID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// EndGame - drops the player's session. Ending a game that is already gone is not an error.
func (that *gameUseCase) EndGame(ctx context.Context, playerID int64) error {
	err := that.sessionRepo.DeleteByPlayerID(ctx, playerID)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
