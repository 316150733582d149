package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-bot/mocks/usecase"
)

const (
	playerID int64 = 42
	chatID   int64 = 7
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

func newUseCase(t *testing.T) (GameUseCase, *mockedUseCase.MocksessionRepoDep, *mockedUseCase.MockgamePlayDep) {
	t.Helper()

	mockSessionRepo := mockedUseCase.NewMocksessionRepoDep(t)
	mockGamePlay := mockedUseCase.NewMockgamePlayDep(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGameUseCase(logger, mockSessionRepo, mockGamePlay), mockSessionRepo, mockGamePlay
}

func playingSession() *entity.Session {
	return entity.NewSession("game-1", entity.Player{ID: playerID, FirstName: "Ann"}, chatID, time.Unix(0, 0).UTC())
}

func TestGameUseCase_StartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a fresh session for the player", func(t *testing.T) {
		// Given: a session repository that accepts writes
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)
		player := entity.Player{ID: playerID, FirstName: "Ann"}

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
				return s.Player == player && s.ChatID == chatID && s.Board == tictactoe.NewBoard() && s.IsPlaying()
			})).
			Return(nil).
			Once()

		// When: the player starts a game
		session, err := useCaseInstance.StartGame(ctx, player, chatID)

		// Then: a new session with an id and an empty board is returned
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, tictactoe.InProgress, session.Result)
		assert.Equal(t, tictactoe.InProgress, tictactoe.EvaluateResult(session.Board))
	})

	t.Run("Every game gets its own id", func(t *testing.T) {
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)
		player := entity.Player{ID: playerID}

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Session")).
			Return(nil).
			Twice()

		first, err := useCaseInstance.StartGame(ctx, player, chatID)
		require.NoError(t, err)
		second, err := useCaseInstance.StartGame(ctx, player, chatID)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Returns error if sessionRepo.CreateOrUpdate fails", func(t *testing.T) {
		// Given: a session repository that fails on write
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Session")).
			Return(errStorageIsFull).
			Once()

		// When: the player starts a game
		session, err := useCaseInstance.StartGame(ctx, entity.Player{ID: playerID}, chatID)

		// Then: the error is returned and no session
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, session)
	})
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves the session after a valid turn", func(t *testing.T) {
		// Given: a playing session and a turn the bot answers
		useCaseInstance, mockSessionRepo, mockGamePlay := newUseCase(t)
		session := playingSession()
		outcome := &service.TurnOutcome{Result: tictactoe.InProgress, PlayerMove: tictactoe.Move{Row: 1, Col: 1}}

		mockSessionRepo.EXPECT().
			GetByPlayerID(mock.Anything, playerID).
			Return(session, nil).
			Once()

		mockGamePlay.EXPECT().
			MakeTurn(session, 1, 1).
			Return(outcome, nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(nil).
			Once()

		// When: the player moves
		gotSession, gotOutcome, err := useCaseInstance.MakeTurn(ctx, playerID, 1, 1)

		// Then: the session and outcome are returned
		require.NoError(t, err)
		assert.Same(t, session, gotSession)
		assert.Same(t, outcome, gotOutcome)
	})

	t.Run("Saves a finished game", func(t *testing.T) {
		useCaseInstance, mockSessionRepo, mockGamePlay := newUseCase(t)
		session := playingSession()

		mockSessionRepo.EXPECT().
			GetByPlayerID(mock.Anything, playerID).
			Return(session, nil).
			Once()

		mockGamePlay.EXPECT().
			MakeTurn(session, 0, 2).
			RunAndReturn(func(s *entity.Session, row, col int) (*service.TurnOutcome, error) {
				s.Finish(tictactoe.PlayerWin)
				return &service.TurnOutcome{Result: tictactoe.PlayerWin, PlayerMove: tictactoe.Move{Row: row, Col: col}}, nil
			}).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool { return s.IsFinished() })).
			Return(nil).
			Once()

		gotSession, outcome, err := useCaseInstance.MakeTurn(ctx, playerID, 0, 2)

		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerWin, outcome.Result)
		assert.True(t, gotSession.IsFinished())
	})

	t.Run("Returns ErrNoActiveGames when there is no session", func(t *testing.T) {
		// Given: no stored session
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)

		mockSessionRepo.EXPECT().
			GetByPlayerID(mock.Anything, playerID).
			Return((*entity.Session)(nil), apperror.ErrSessionNotFound).
			Once()

		// When: the player moves
		session, outcome, err := useCaseInstance.MakeTurn(ctx, playerID, 0, 0)

		// Then: ErrNoActiveGames is returned
		require.ErrorIs(t, err, apperror.ErrNoActiveGames)
		assert.Nil(t, session)
		assert.Nil(t, outcome)
	})

	t.Run("Returns error if sessionRepo.GetByPlayerID fails", func(t *testing.T) {
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)

		mockSessionRepo.EXPECT().
			GetByPlayerID(mock.Anything, playerID).
			Return((*entity.Session)(nil), errRedisDown).
			Once()

		_, _, err := useCaseInstance.MakeTurn(ctx, playerID, 0, 0)

		require.ErrorIs(t, err, errRedisDown)
		assert.NotErrorIs(t, err, apperror.ErrNoActiveGames)
	})

	t.Run("Returns ErrGameFinished without touching the board", func(t *testing.T) {
		// Given: a finished session
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)
		session := playingSession()
		session.Finish(tictactoe.Draw)

		mockSessionRepo.EXPECT().
			GetByPlayerID(mock.Anything, playerID).
			Return(session, nil).
			Once()

		// When: the player clicks again
		gotSession, outcome, err := useCaseInstance.MakeTurn(ctx, playerID, 0, 0)

		// Then: ErrGameFinished is returned with the session and game play is never called
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Same(t, session, gotSession)
		assert.Nil(t, outcome)
	})

	t.Run("Returns ErrCellOccupied without saving", func(t *testing.T) {
		// Given: a move onto an occupied cell
		useCaseInstance, mockSessionRepo, mockGamePlay := newUseCase(t)
		session := playingSession()
		session.Board[0][0] = tictactoe.OpponentMark

		mockSessionRepo.EXPECT().
			GetByPlayerID(mock.Anything, playerID).
			Return(session, nil).
			Once()

		mockGamePlay.EXPECT().
			MakeTurn(session, 0, 0).
			Return((*service.TurnOutcome)(nil), fmt.Errorf("failed to make turn: %w", apperror.ErrCellOccupied)).
			Once()

		// When: the player moves
		gotSession, outcome, err := useCaseInstance.MakeTurn(ctx, playerID, 0, 0)

		// Then: ErrCellOccupied is returned along with the unchanged session
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Same(t, session, gotSession)
		assert.Nil(t, outcome)
	})

	t.Run("Returns error if sessionRepo.CreateOrUpdate fails", func(t *testing.T) {
		useCaseInstance, mockSessionRepo, mockGamePlay := newUseCase(t)
		session := playingSession()

		mockSessionRepo.EXPECT().
			GetByPlayerID(mock.Anything, playerID).
			Return(session, nil).
			Once()

		mockGamePlay.EXPECT().
			MakeTurn(session, 2, 2).
			Return(&service.TurnOutcome{Result: tictactoe.InProgress}, nil).
			Once()

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, session).
			Return(errRedisDown).
			Once()

		gotSession, outcome, err := useCaseInstance.MakeTurn(ctx, playerID, 2, 2)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, gotSession)
		assert.Nil(t, outcome)
	})
}

func TestGameUseCase_EndGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the session", func(t *testing.T) {
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)

		mockSessionRepo.EXPECT().
			DeleteByPlayerID(mock.Anything, playerID).
			Return(nil).
			Once()

		require.NoError(t, useCaseInstance.EndGame(ctx, playerID))
	})

	t.Run("Missing session is not an error", func(t *testing.T) {
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)

		mockSessionRepo.EXPECT().
			DeleteByPlayerID(mock.Anything, playerID).
			Return(apperror.ErrSessionNotFound).
			Once()

		require.NoError(t, useCaseInstance.EndGame(ctx, playerID))
	})

	t.Run("Returns error if sessionRepo.DeleteByPlayerID fails", func(t *testing.T) {
		useCaseInstance, mockSessionRepo, _ := newUseCase(t)

		mockSessionRepo.EXPECT().
			DeleteByPlayerID(mock.Anything, playerID).
			Return(errRedisDown).
			Once()

		require.ErrorIs(t, useCaseInstance.EndGame(ctx, playerID), errRedisDown)
	})
}
