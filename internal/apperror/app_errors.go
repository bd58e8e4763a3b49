package apperror

import "errors"

var (
	ErrInvalidMove        = errors.New("invalid move")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrSymbolsExhausted   = errors.New("both symbols are already claimed")
	ErrNoEmptyCells       = errors.New("no empty cells left")
	ErrWrongMatchState    = errors.New("operation not allowed in current match state")
)
