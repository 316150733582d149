package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

func (that *Server) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	log := that.logger.With("method", "handleStart")

	if msg.From == nil || msg.Chat == nil {
		log.Debug("start command without sender, ignored")
		return nil
	}

	player := entity.Player{ID: msg.From.ID, FirstName: msg.From.FirstName}

	session, err := that.gameUseCase.StartGame(ctx, player, msg.Chat.ID)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, turnText(player.FirstName))
	reply.ReplyMarkup = renderKeyboard(session.Board)

	if _, err = that.bot.Send(reply); err != nil {
		return fmt.Errorf("failed to send board: %w", err)
	}

	return nil
}

func (that *Server) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	log := that.logger.With("method", "handleCallback")

	if _, err := that.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}

	if query.From == nil || query.Message == nil || query.Message.Chat == nil {
		log.Debug("callback without sender or message, ignored")
		return nil
	}

	move, err := parseCallbackData(query.Data)
	if err != nil {
		log.Warn("callback rejected", "error", err)
		return nil
	}

	session, outcome, err := that.gameUseCase.MakeTurn(ctx, query.From.ID, move.Row, move.Col)

	switch {
	case errors.Is(err, apperror.ErrNoActiveGames):
		log.Debug("no active game for player", "playerID", query.From.ID)
		return nil
	case errors.Is(err, apperror.ErrGameFinished):
		if err = that.gameUseCase.EndGame(ctx, query.From.ID); err != nil {
			return fmt.Errorf("failed to end game: %w", err)
		}
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		return that.warnOccupied(query, session)
	case err != nil:
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if outcome.Result.IsTerminal() {
		return that.showResult(query, session, outcome.Result)
	}

	return that.sendNextTurn(query, session)
}

// warnOccupied - edits the board message into a warning. A message that already carries the warning is left alone.
func (that *Server) warnOccupied(query *tgbotapi.CallbackQuery, session *entity.Session) error {
	if strings.Contains(query.Message.Text, occupiedMarker) {
		return nil
	}

	markup := renderKeyboard(session.Board)
	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, occupiedText)
	edit.ReplyMarkup = &markup

	if _, err := that.bot.Request(edit); err != nil {
		return fmt.Errorf("failed to show occupied warning: %w", err)
	}

	return nil
}

// sendNextTurn - replaces the old board message with a fresh one so the turn prompt lands at the bottom of the chat.
func (that *Server) sendNextTurn(query *tgbotapi.CallbackQuery, session *entity.Session) error {
	chatID := query.Message.Chat.ID

	if _, err := that.bot.Request(tgbotapi.NewDeleteMessage(chatID, query.Message.MessageID)); err != nil {
		that.logger.Warn("failed to delete previous board", "chatID", chatID, "error", err)
	}

	msg := tgbotapi.NewMessage(chatID, turnText(query.From.FirstName))
	msg.ReplyMarkup = renderKeyboard(session.Board)

	if _, err := that.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send board: %w", err)
	}

	return nil
}

// showResult - freezes the final board and announces the result.
// The finished session stays until the player's next click or /start.
func (that *Server) showResult(query *tgbotapi.CallbackQuery, session *entity.Session, result tictactoe.Result) error {
	chatID := query.Message.Chat.ID

	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, query.Message.MessageID, renderKeyboard(session.Board))
	if _, err := that.bot.Request(edit); err != nil {
		return fmt.Errorf("failed to show final board: %w", err)
	}

	if _, err := that.bot.Send(tgbotapi.NewMessage(chatID, resultText(result))); err != nil {
		return fmt.Errorf("failed to send result: %w", err)
	}

	return nil
}
