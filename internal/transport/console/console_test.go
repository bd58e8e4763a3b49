package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestConsole_ReadInteger(t *testing.T) {
	ctx := context.Background()

	t.Run("Re-prompts until a number is typed", func(t *testing.T) {
		// Given: garbage followed by a number
		out := &bytes.Buffer{}
		console := New(strings.NewReader("abc\n\n 7 \n"), out, false)

		// When: reading an integer
		number, err := console.ReadInteger(ctx, "tile: ")

		// Then: the number is returned after two corrections
		require.NoError(t, err)
		assert.Equal(t, 7, number)
		assert.Equal(t, 3, strings.Count(out.String(), "tile: "))
		assert.Equal(t, 2, strings.Count(out.String(), msgNotANumber))
	})

	t.Run("EOF is returned when input ends", func(t *testing.T) {
		console := New(strings.NewReader("x\n"), io.Discard, false)

		_, err := console.ReadInteger(ctx, "tile: ")

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Canceled context interrupts the read", func(t *testing.T) {
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := New(reader, io.Discard, false).ReadInteger(canceled, "tile: ")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_ReadLine(t *testing.T) {
	console := New(strings.NewReader("o\ny\n"), io.Discard, false)

	first, err := console.ReadLine(context.Background(), "symbol: ")
	require.NoError(t, err)
	second, err := console.ReadLine(context.Background(), "again: ")
	require.NoError(t, err)

	assert.Equal(t, "o", first)
	assert.Equal(t, "y", second)
}

func TestConsole_Close(t *testing.T) {
	// Given: input with lines nobody will read
	console := New(strings.NewReader("a\nb\nc\n"), io.Discard, false)
	first, err := console.ReadLine(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "a", first)

	// When: the console is closed
	console.Close()
	console.Close()

	// Then: the line pump stops and closes its channel instead of blocking on a send
	require.Eventually(t, func() bool {
		_, ok := <-console.lines
		return !ok
	}, time.Second, time.Millisecond)
}

func TestConsole_Rendering(t *testing.T) {
	cells := [entity.BoardSize]entity.Symbol{
		entity.SymbolX, entity.Empty, entity.Empty,
		entity.Empty, entity.SymbolO, entity.Empty,
		entity.Empty, entity.Empty, entity.SymbolX,
	}

	t.Run("Board shows symbols", func(t *testing.T) {
		out := &bytes.Buffer{}
		New(strings.NewReader(""), out, false).RenderBoard(cells)

		assert.Contains(t, out.String(), "|  X  |     |     |")
		assert.Contains(t, out.String(), "|     |  O  |     |")
		assert.Contains(t, out.String(), "|     |     |  X  |")
	})

	t.Run("Choices blank occupied tiles", func(t *testing.T) {
		out := &bytes.Buffer{}
		New(strings.NewReader(""), out, false).RenderChoices(cells)

		assert.Contains(t, out.String(), "|   | 2 | 3 |")
		assert.Contains(t, out.String(), "| 4 |   | 6 |")
		assert.Contains(t, out.String(), "| 7 | 8 |   |")
	})

	t.Run("Clear is a no-op when disabled", func(t *testing.T) {
		out := &bytes.Buffer{}
		New(strings.NewReader(""), out, false).Clear()
		assert.Empty(t, out.String())

		New(strings.NewReader(""), out, true).Clear()
		New(strings.NewReader(""), out, true).Clear()
		assert.Equal(t, clearSequence+clearSequence, out.String())
	})
}
