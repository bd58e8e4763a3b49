package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const participantsPerMatch = 2

var ErrBadLineup = errors.New("a match needs two participants with distinct symbols and one move source each")

type MatchState int

const (
	StateAwaitingMove MatchState = iota
	StateEvaluating
	StateRematchPrompt
	StateSessionEnd
)

func (that MatchState) String() string {
	switch that {
	case StateAwaitingMove:
		return "awaiting_move"
	case StateEvaluating:
		return "evaluating"
	case StateRematchPrompt:
		return "rematch_prompt"
	case StateSessionEnd:
		return "session_end"
	default:
		return "unknown"
	}
}

// MatchController sequences turns between two participants and drives rematches.
// It owns the board and participants for the whole session.
type MatchController struct {
	logger *slog.Logger

	board        *entity.Board
	participants []*entity.Participant
	sources      []tictactoe.MoveSource

	state   MatchState
	turn    int
	outcome entity.Outcome
	matches int
}

func NewMatchController(
	logger *slog.Logger,
	board *entity.Board,
	participants []*entity.Participant,
	sources []tictactoe.MoveSource,
) (*MatchController, error) {
	if len(participants) != participantsPerMatch || len(sources) != participantsPerMatch {
		return nil, fmt.Errorf("%w: got %d participants, %d sources", ErrBadLineup, len(participants), len(sources))
	}

	if participants[0].Symbol == participants[1].Symbol {
		return nil, fmt.Errorf("%w: both hold %s", ErrBadLineup, participants[0].Symbol)
	}

	controller := &MatchController{
		logger:       logger.With("component", "match"),
		board:        board,
		participants: participants,
		sources:      sources,
	}
	controller.startMatch()

	return controller, nil
}

func (that *MatchController) State() MatchState {
	return that.state
}

func (that *MatchController) Board() *entity.Board {
	return that.board
}

func (that *MatchController) Participants() []*entity.Participant {
	return that.participants
}

// Outcome - result of the last evaluated turn.
func (that *MatchController) Outcome() entity.Outcome {
	return that.outcome
}

// CurrentIndex - index of the participant holding the turn.
func (that *MatchController) CurrentIndex() int {
	return that.turn
}

func (that *MatchController) Current() *entity.Participant {
	return that.participants[that.turn]
}

// PlayTurn - lets the turn holder move once and advances the state machine.
func (that *MatchController) PlayTurn(ctx context.Context) (entity.Outcome, error) {
	if that.state != StateAwaitingMove {
		return that.outcome, fmt.Errorf("%w: %w: play turn in %s", apperror.ErrInvariantViolation, apperror.ErrWrongMatchState, that.state)
	}

	holder := that.participants[that.turn]

	that.state = StateEvaluating
	outcome, err := tictactoe.PlayTurn(ctx, holder, that.sources[that.turn], that.board, that.participants)
	if err != nil {
		that.state = StateAwaitingMove
		return that.outcome, fmt.Errorf("failed to play turn: %w", err)
	}

	that.outcome = outcome

	if !outcome.IsTerminal() {
		that.turn = 1 - that.turn
		that.state = StateAwaitingMove
		return outcome, nil
	}

	if winner := outcome.WinnerIndex(); winner >= 0 {
		that.participants[winner].AddWin()
	}

	that.state = StateRematchPrompt
	that.logger.Info("match finished", "match", that.matches, "outcome", outcome.String(), "moves", that.board.Occupied())

	return outcome, nil
}

// PlayMatch - plays turns until the match reaches a terminal outcome.
func (that *MatchController) PlayMatch(ctx context.Context) (entity.Outcome, error) {
	for that.state == StateAwaitingMove {
		if _, err := that.PlayTurn(ctx); err != nil {
			return that.outcome, err
		}
	}

	return that.outcome, nil
}

// Rematch - answers the rematch prompt. Accepting resets the board and claims,
// symbols and scores are kept. Declining ends the session.
func (that *MatchController) Rematch(accept bool) error {
	if that.state != StateRematchPrompt {
		return fmt.Errorf("%w: %w: rematch in %s", apperror.ErrInvariantViolation, apperror.ErrWrongMatchState, that.state)
	}

	if !accept {
		that.state = StateSessionEnd
		that.logger.Info("session ended", "matches", that.matches)
		return nil
	}

	that.board.Reset()
	for _, participant := range that.participants {
		participant.Reset()
	}

	that.startMatch()

	return nil
}

// startMatch - X always moves first.
func (that *MatchController) startMatch() {
	that.turn = 0
	for i, participant := range that.participants {
		if participant.Symbol == entity.SymbolX {
			that.turn = i
			break
		}
	}

	that.matches++
	that.outcome = entity.Ongoing
	that.state = StateAwaitingMove

	that.logger.Debug("match started", "match", that.matches, "first", that.turn)
}
