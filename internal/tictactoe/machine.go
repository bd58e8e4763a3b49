package tictactoe

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const DefaultMaxRedraws = 32

// MachineMoveSource picks a uniformly random empty tile.
// It redraws on occupied tiles up to maxRedraws times, then draws from the empty list directly.
type MachineMoveSource struct {
	rnd        *rand.Rand
	maxRedraws int
}

func NewMachineMoveSource(rnd *rand.Rand, maxRedraws int) *MachineMoveSource {
	if maxRedraws < 0 {
		maxRedraws = DefaultMaxRedraws
	}

	return &MachineMoveSource{
		rnd:        rnd,
		maxRedraws: maxRedraws,
	}
}

func (that *MachineMoveSource) NextMove(_ context.Context, board *entity.Board) (int, error) {
	available := board.EmptyPositions()
	if len(available) == 0 {
		return 0, fmt.Errorf("%w: %w", apperror.ErrInvariantViolation, apperror.ErrNoEmptyCells)
	}

	for range that.maxRedraws {
		position := that.rnd.Intn(entity.BoardSize) + 1
		if board.IsEmpty(position) {
			return position, nil
		}
	}

	return available[that.rnd.Intn(len(available))], nil
}
