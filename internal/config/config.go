package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	// PlainOutput disables clearing the terminal between prompts.
	PlainOutput bool    `yaml:"plain-output" env:"PLAIN_OUTPUT"`
	Machine     Machine `yaml:"machine"`
	Redis       Redis   `yaml:"redis"`
}

type Machine struct {
	// MaxRedraws 0 draws straight from the empty cells, negative falls back to the default.
	MaxRedraws int   `yaml:"max-redraws" env:"MACHINE_MAX_REDRAWS" env-default:"32"`
	// Seed 0 means seeded from the clock.
	Seed       int64 `yaml:"seed" env:"MACHINE_SEED" env-default:"0"`
}

// Redis holds the optional live scoreboard mirror.
type Redis struct {
	Enabled  bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ScoreTTL time.Duration `yaml:"score-ttl" env:"REDIS_SCORE_TTL" env-default:"24h"`
}

// MustLoad - load configuration from the yml file when it exists, environment variables otherwise.
// Environment variables always win over the file.
func MustLoad(path string) *Config {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from env: %w", err))
		}
	default:
		panic(fmt.Errorf("unable to stat config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
