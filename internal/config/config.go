package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogDir       string        `yaml:"log-dir" env:"LOG_DIR"`
	HTTPPort     string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SessionStore string        `yaml:"session-store" env:"SESSION_STORE" env-default:"memory"`
	SessionTTL   time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
	RandomSeed   int64         `yaml:"random-seed" env:"RANDOM_SEED"`
	Redis        Redis         `yaml:"redis"`
	Telegram     Telegram      `yaml:"telegram"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Telegram struct {
	Token       string `yaml:"token" env:"TG_TOKEN"`
	PollTimeout int    `yaml:"poll-timeout" env:"TG_POLL_TIMEOUT" env-default:"60"`
	Debug       bool   `yaml:"debug" env:"TG_DEBUG"`
}

var ErrTokenNotSet = errors.New("telegram token is empty")

// MustLoad - load all configurations from the config file and the environment.
// A missing file is not an error; the environment alone is used then.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Telegram.Token == "" {
		return ErrTokenNotSet
	}

	switch that.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("%w %q: must be %s or %s", apperror.ErrUnknownSessionStore, that.SessionStore, SessionStoreMemory, SessionStoreRedis)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
