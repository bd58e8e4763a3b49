package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:    "error",
		PlainOutput: true,
		Machine:     config.Machine{MaxRedraws: 8, Seed: 7},
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Two players play one match", func(t *testing.T) {
		// Given: P1 takes X, wins on the top row and declines a rematch
		in := strings.NewReader("2\nx\n1\n4\n2\n5\n3\nn\n")
		out := &bytes.Buffer{}

		// When: the app runs
		err := Run(ctx, logger, testConfig(), in, out)

		// Then: the win and the score are shown
		require.NoError(t, err)
		assert.Contains(t, out.String(), "PLAYER 1 WINS!!")
		assert.Contains(t, out.String(), "SCORE:\n  P1: 1\n  P2: 0")
		assert.Contains(t, out.String(), "Thanks for playing!")
		assert.NotContains(t, out.String(), "\033[H\033[2J")
	})

	t.Run("Player against machine always finishes", func(t *testing.T) {
		// Given: the human walks the tiles in order, skipping taken ones
		in := strings.NewReader("1\no\n1\n2\n3\n4\n5\n6\n7\n8\n9\nn\n")
		out := &bytes.Buffer{}

		err := Run(ctx, logger, testConfig(), in, out)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "AI's turn!")
		assert.Contains(t, out.String(), "  AI: ")
		assert.Contains(t, out.String(), "Thanks for playing!")
	})

	t.Run("Rejected answers are corrected before each repeated prompt", func(t *testing.T) {
		// Given: a bad player count, a bad symbol and a tile outside the board
		in := strings.NewReader("7\n2\nq\nx\n12\n1\n4\n2\n5\n3\nn\n")
		out := &bytes.Buffer{}

		err := Run(ctx, logger, testConfig(), in, out)

		// Then: each repeat follows a one-line correction
		require.NoError(t, err)
		text := out.String()
		assert.Contains(t, text, "Please enter 1 or 2.\nHow many players?")
		assert.Contains(t, text, "Please choose X or O.\nP1, Choose X or O: ")
		assert.Contains(t, text, "Please choose a number from 1 to 9\nP1 Choose an available tile number: ")
		assert.Contains(t, text, "PLAYER 1 WINS!!")
	})

	t.Run("Closed input ends quietly", func(t *testing.T) {
		err := Run(ctx, logger, testConfig(), strings.NewReader(""), io.Discard)

		require.NoError(t, err)
	})
}
