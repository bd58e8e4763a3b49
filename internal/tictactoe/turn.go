package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MoveSource supplies the next position (1-9) for a participant.
type MoveSource interface {
	NextMove(ctx context.Context, board *entity.Board) (int, error)
}

// PlayTurn - applies one move of participant and re-evaluates the board.
func PlayTurn(
	ctx context.Context,
	participant *entity.Participant,
	source MoveSource,
	board *entity.Board,
	participants []*entity.Participant,
) (entity.Outcome, error) {
	if len(board.EmptyPositions()) == 0 {
		return entity.Ongoing, fmt.Errorf("%w: %w", apperror.ErrInvariantViolation, apperror.ErrNoEmptyCells)
	}

	position, err := source.NextMove(ctx, board)
	if err != nil {
		return entity.Ongoing, fmt.Errorf("failed to get move: %w", err)
	}

	if err = board.ApplyMove(position, participant.Symbol); err != nil {
		return entity.Ongoing, fmt.Errorf("invalid turn: %w", err)
	}

	participant.SelectTile(position)

	return board.Evaluate(participants), nil
}
