package entity

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Symbol string

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"

	Empty Symbol = ""
)

// ParseSymbol - accepts "x"/"o" in any case, surrounding spaces ignored.
func ParseSymbol(raw string) (Symbol, error) {
	switch Symbol(strings.ToUpper(strings.TrimSpace(raw))) {
	case SymbolX:
		return SymbolX, nil
	case SymbolO:
		return SymbolO, nil
	default:
		return Empty, fmt.Errorf("%w: symbol %q", apperror.ErrInvalidInput, raw)
	}
}

// Complement returns the opposite symbol.
func (that Symbol) Complement() Symbol {
	if that == SymbolX {
		return SymbolO
	}
	return SymbolX
}

func (that Symbol) String() string {
	if that == Empty {
		return " "
	}
	return string(that)
}

// SymbolRegistry tracks which symbols are already held by a human participant in the session.
type SymbolRegistry struct {
	taken map[Symbol]bool
}

func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{taken: make(map[Symbol]bool, 2)}
}

func (that *SymbolRegistry) IsTaken(symbol Symbol) bool {
	return that.taken[symbol]
}

// Remaining - returns unclaimed symbols, X first.
func (that *SymbolRegistry) Remaining() []Symbol {
	remaining := make([]Symbol, 0, 2)
	for _, symbol := range []Symbol{SymbolX, SymbolO} {
		if !that.IsTaken(symbol) {
			remaining = append(remaining, symbol)
		}
	}
	return remaining
}

// Claim - marks symbol as taken.
func (that *SymbolRegistry) Claim(symbol Symbol) error {
	if symbol != SymbolX && symbol != SymbolO {
		return fmt.Errorf("%w: symbol %q", apperror.ErrInvalidInput, string(symbol))
	}

	if that.IsTaken(symbol) {
		return fmt.Errorf("%w: %s already claimed", apperror.ErrInvariantViolation, symbol)
	}

	that.taken[symbol] = true

	return nil
}

// SymbolChooser asks a human which symbol they want. Raw answers are validated by AssignSymbol.
type SymbolChooser func(ctx context.Context) (string, error)

// AssignSymbol - runs the symbol selection protocol for the next human participant.
// With both symbols free the chooser is asked until it answers X or O,
// with one free it is assigned without asking.
func AssignSymbol(ctx context.Context, registry *SymbolRegistry, choose SymbolChooser) (Symbol, error) {
	remaining := registry.Remaining()

	switch len(remaining) {
	case 0:
		return Empty, fmt.Errorf("%w: %w", apperror.ErrInvariantViolation, apperror.ErrSymbolsExhausted)
	case 1:
		if err := registry.Claim(remaining[0]); err != nil {
			return Empty, err
		}
		return remaining[0], nil
	}

	for {
		raw, err := choose(ctx)
		if err != nil {
			return Empty, fmt.Errorf("failed to choose symbol: %w", err)
		}

		symbol, err := ParseSymbol(raw)
		if err != nil {
			continue
		}

		if err = registry.Claim(symbol); err != nil {
			return Empty, err
		}

		return symbol, nil
	}
}
