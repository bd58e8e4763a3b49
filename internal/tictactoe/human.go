package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgCellTaken  = "That space has already been taken. Please try again"
	msgOutOfRange = "There is no such tile. Please choose a number from 1 to 9"
)

type inputSource interface {
	ReadInteger(ctx context.Context, prompt string) (int, error)
}

type choiceDisplay interface {
	RenderChoices(cells [entity.BoardSize]entity.Symbol)
	RenderStatus(message string)
}

// HumanMoveSource asks a human for a tile until an empty one in range is given.
type HumanMoveSource struct {
	prompt  string
	input   inputSource
	display choiceDisplay
}

func NewHumanMoveSource(playerNumber int, input inputSource, display choiceDisplay) *HumanMoveSource {
	return &HumanMoveSource{
		prompt:  fmt.Sprintf("P%d Choose an available tile number: ", playerNumber),
		input:   input,
		display: display,
	}
}

func (that *HumanMoveSource) NextMove(ctx context.Context, board *entity.Board) (int, error) {
	that.display.RenderChoices(board.Cells())

	for {
		position, err := that.input.ReadInteger(ctx, that.prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read tile: %w", err)
		}

		if position < entity.MinPosition || position > entity.MaxPosition {
			that.display.RenderStatus(msgOutOfRange)
			continue
		}

		if !board.IsEmpty(position) {
			that.display.RenderStatus(msgCellTaken)
			continue
		}

		return position, nil
	}
}
