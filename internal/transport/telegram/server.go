package telegram

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

var ErrUpdatesClosed = errors.New("telegram updates channel closed")

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type gameUseCase interface {
	StartGame(ctx context.Context, player entity.Player, chatID int64) (*entity.Session, error)
	MakeTurn(ctx context.Context, playerID int64, row, col int) (*entity.Session, *service.TurnOutcome, error)
	EndGame(ctx context.Context, playerID int64) error
}

type Server struct {
	logger *slog.Logger

	bot         botAPI
	gameUseCase gameUseCase
	pollTimeout int

	commands map[string]func(ctx context.Context, msg *tgbotapi.Message) error
}

func New(logger *slog.Logger, bot botAPI, gameUseCase gameUseCase, pollTimeout int) *Server {
	server := &Server{
		logger:      logger.With("component", "telegram"),
		bot:         bot,
		gameUseCase: gameUseCase,
		pollTimeout: pollTimeout,

		commands: make(map[string]func(context.Context, *tgbotapi.Message) error),
	}

	server.commands["start"] = server.handleStart

	return server
}

// Start - long-polls Telegram until ctx is cancelled.
// Updates are handled one at a time, so a player's session never sees two overlapping turns.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = that.pollTimeout
	updateConfig.AllowedUpdates = []string{"message", "callback_query"}

	updates := that.bot.GetUpdatesChan(updateConfig)
	defer that.bot.StopReceivingUpdates()

	log.Info("Telegram bot is polling for updates")

	for {
		select {
		case <-ctx.Done():
			log.Info("Telegram bot context canceled, stopping")
			return nil
		case update, ok := <-updates:
			if !ok {
				return ErrUpdatesClosed
			}

			that.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate - routes one update to its handler. Errors are logged, never returned.
func (that *Server) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	log := that.logger.With("method", "HandleUpdate", "updateID", update.UpdateID)

	var err error

	switch {
	case update.CallbackQuery != nil:
		err = that.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		handler, ok := that.commands[update.Message.Command()]
		if !ok {
			log.Debug("unknown command", "command", update.Message.Command())
			return
		}

		err = handler(ctx, update.Message)
	default:
		return
	}

	if err != nil {
		log.Error("error processing update", "error", err)
	}
}
