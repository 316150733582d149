package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-bot/internal/transport/rest"
	"github.com/rocketscienceinc/tictactoe-bot/internal/transport/telegram"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeStore, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStore()

	botService := service.NewBotService(tictactoe.NewRandomSource(conf.RandomSeed))
	gamePlayService := service.NewGamePlayService(logger, botService)
	gameUseCase := usecase.NewGameUseCase(logger, sessionRepo, gamePlayService)

	botAPI, err := tgbotapi.NewBotAPI(conf.Telegram.Token)
	if err != nil {
		return fmt.Errorf("could not connect to telegram: %w", err)
	}
	botAPI.Debug = conf.Telegram.Debug

	log.Info("Authorized on telegram", "account", botAPI.Self.UserName)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		if httpErr := rest.New(logger, conf.HTTPPort).Start(ctx); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Telegram bot
	tgErrCh := make(chan error, 1)
	go func() {
		tgServer := telegram.New(logger, botAPI, gameUseCase, conf.Telegram.PollTimeout)
		if tgErr := tgServer.Start(ctx); tgErr != nil {
			log.Error("Telegram bot error", "error", tgErr)
			tgErrCh <- tgErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-tgErrCh:
		return fmt.Errorf("telegram bot error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newSessionRepository - picks the session store named in the config. The returned func releases it.
func newSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	if conf.SessionStore != config.SessionStoreRedis {
		log.Info("Sessions are kept in memory", "ttl", conf.SessionTTL)
		return repository.NewMemorySessionRepository(conf.SessionTTL), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisAddrString := conf.Redis.GetRedisAddr()

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Sessions are kept in redis", "addr", redisAddrString, "ttl", conf.SessionTTL)

	closeStore := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.SessionTTL), closeStore, nil
}
