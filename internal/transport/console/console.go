package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	clearSequence = "\033[H\033[2J"
	msgNotANumber = "Please enter a number."
)

type line struct {
	text string
	err  error
}

// Console reads answers line by line and draws the board as plain text.
type Console struct {
	in          io.Reader
	out         io.Writer
	clearScreen bool

	startOnce sync.Once
	closeOnce sync.Once
	lines     chan line
	done      chan struct{}
}

func New(in io.Reader, out io.Writer, clearScreen bool) *Console {
	return &Console{
		in:          in,
		out:         out,
		clearScreen: clearScreen,
		lines:       make(chan line),
		done:        make(chan struct{}),
	}
}

// Close - releases the line pump. A read blocked inside the underlying reader still finishes first.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// ReadLine - prints prompt and waits for one line of input.
func (that *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	that.print(prompt)

	return that.next(ctx)
}

// ReadInteger - prompts until the answer parses as an integer.
func (that *Console) ReadInteger(ctx context.Context, prompt string) (int, error) {
	for {
		text, err := that.ReadLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		number, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			that.println(msgNotANumber)
			continue
		}

		return number, nil
	}
}

func (that *Console) RenderBoard(cells [entity.BoardSize]entity.Symbol) {
	var builder strings.Builder

	builder.WriteString("  -------------------\n")
	for row := range 3 {
		if row > 0 {
			builder.WriteString("  |-----|-----|-----|\n")
		}
		builder.WriteString("  |     |     |     |\n")
		fmt.Fprintf(&builder, "  |  %s  |  %s  |  %s  |\n", cells[row*3], cells[row*3+1], cells[row*3+2])
		builder.WriteString("  |     |     |     |\n")
	}
	builder.WriteString("  -------------------")

	that.println(builder.String())
}

// RenderChoices - numbered grid of open tiles, occupied ones blanked.
func (that *Console) RenderChoices(cells [entity.BoardSize]entity.Symbol) {
	var builder strings.Builder

	builder.WriteString("\n\n-------------\n")
	for row := range 3 {
		if row > 0 {
			builder.WriteString("|---|---|---|\n")
		}
		builder.WriteString("|")
		for col := range 3 {
			index := row*3 + col
			label := " "
			if cells[index] == entity.Empty {
				label = strconv.Itoa(index + 1)
			}
			fmt.Fprintf(&builder, " %s |", label)
		}
		builder.WriteString("\n")
	}
	builder.WriteString("-------------")

	that.println(builder.String())
}

func (that *Console) RenderStatus(message string) {
	that.println(message)
}

func (that *Console) Clear() {
	if that.clearScreen {
		that.print(clearSequence)
	}
}

func (that *Console) next(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input interrupted: %w", ctx.Err())
	case l, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// scan pumps lines so reads can be abandoned when ctx is canceled.
func (that *Console) scan() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		if !that.send(line{text: scanner.Text()}) {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		that.send(line{err: fmt.Errorf("failed to read input: %w", err)})
	}
}

func (that *Console) send(l line) bool {
	select {
	case <-that.done:
		return false
	case that.lines <- l:
		return true
	}
}

func (that *Console) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Console) println(text string) {
	_, _ = io.WriteString(that.out, text+"\n")
}
