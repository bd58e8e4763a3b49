package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	BoardSize = 9

	MinPosition = 1
	MaxPosition = BoardSize
)

// WinningLines are 1-based positions: rows, diagonals, columns.
var WinningLines = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 5, 9},
	{3, 5, 7},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
}

type Board struct {
	cells [BoardSize]Symbol
}

func NewBoard() *Board {
	return &Board{}
}

// Cells - returns a copy of the grid, index 0 is position 1.
func (that *Board) Cells() [BoardSize]Symbol {
	return that.cells
}

func (that *Board) IsEmpty(position int) bool {
	return validPosition(position) && that.cells[position-1] == Empty
}

func (that *Board) EmptyPositions() []int {
	positions := make([]int, 0, BoardSize)
	for i, cell := range that.cells {
		if cell == Empty {
			positions = append(positions, i+1)
		}
	}
	return positions
}

func (that *Board) Occupied() int {
	return BoardSize - len(that.EmptyPositions())
}

// ApplyMove - puts symbol on an empty cell.
func (that *Board) ApplyMove(position int, symbol Symbol) error {
	if !validPosition(position) {
		return fmt.Errorf("%w: position %d out of range", apperror.ErrInvalidMove, position)
	}

	if that.cells[position-1] != Empty {
		return fmt.Errorf("%w: position %d is occupied", apperror.ErrInvalidMove, position)
	}

	that.cells[position-1] = symbol

	return nil
}

// Evaluate - checks participants in order against their claimed positions.
// The first one owning a complete line wins, so participant 0 wins ties.
func (that *Board) Evaluate(participants []*Participant) Outcome {
	for i, participant := range participants {
		if !ownsLine(participant) {
			continue
		}

		switch {
		case i == 0:
			return Player1Wins
		case participant.Machine:
			return MachineWins
		default:
			return Player2Wins
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that.cells {
		if cell == Empty {
			return Ongoing
		}
	}

	return Draw
}

func (that *Board) Reset() {
	that.cells = [BoardSize]Symbol{}
}

func ownsLine(participant *Participant) bool {
	for _, line := range WinningLines {
		if participant.Owns(line[0]) && participant.Owns(line[1]) && participant.Owns(line[2]) {
			return true
		}
	}
	return false
}

func validPosition(position int) bool {
	return position >= MinPosition && position <= MaxPosition
}
