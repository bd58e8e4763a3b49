package entity

import "slices"

// Participant is one side of a match: a human player or the machine agent.
type Participant struct {
	Symbol  Symbol
	Score   int
	Claimed []int
	Machine bool
}

func NewPlayer(symbol Symbol) *Participant {
	return &Participant{Symbol: symbol}
}

// NewMachine - creates the machine agent playing against the human holding humanSymbol.
func NewMachine(humanSymbol Symbol) *Participant {
	return &Participant{Symbol: humanSymbol.Complement(), Machine: true}
}

// SelectTile records a claimed position. Validation belongs to the turn resolver.
func (that *Participant) SelectTile(position int) {
	that.Claimed = append(that.Claimed, position)
}

func (that *Participant) Owns(position int) bool {
	return slices.Contains(that.Claimed, position)
}

func (that *Participant) AddWin() {
	that.Score++
}

// Reset - clears per-match state, score and symbol are kept.
func (that *Participant) Reset() {
	that.Claimed = that.Claimed[:0]
}
