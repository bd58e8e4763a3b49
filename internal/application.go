package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one console session on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the session to the given streams. Closed input or an interrupt end the session quietly.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	sessionID, err := pkg.GenerateSessionID()
	if err != nil {
		return fmt.Errorf("could not generate session id: %w", err)
	}

	var recorder *repository.ScoreRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		recorder = repository.NewScoreRepository(redisStorage.Connection, conf.Redis.ScoreTTL)
		log.Info("live scoreboard enabled", "addr", redisAddrString, "session_id", sessionID)
	}

	seed := conf.Machine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	machine := tictactoe.NewMachineMoveSource(rand.New(rand.NewSource(seed)), conf.Machine.MaxRedraws) //nolint: gosec // it's ok

	terminal := console.New(in, out, !conf.PlainOutput)
	defer terminal.Close()

	session := newSession(logger, sessionID, terminal, machine, recorder)

	err = session.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		log.Info("session interrupted", "reason", err)
		return nil
	default:
		return fmt.Errorf("session failed: %w", err)
	}
}

// newSession keeps a nil *ScoreRepository from turning into a non-nil interface.
func newSession(
	logger *slog.Logger,
	sessionID string,
	terminal *console.Console,
	machine tictactoe.MoveSource,
	recorder *repository.ScoreRepository,
) *usecase.Session {
	if recorder == nil {
		return usecase.NewSession(logger, sessionID, terminal, terminal, machine, nil)
	}

	return usecase.NewSession(logger, sessionID, terminal, terminal, machine, recorder)
}
