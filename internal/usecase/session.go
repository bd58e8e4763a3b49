package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	gameLogo = `
 ____  __  ___    ____  __    ___    ____  __  ____
(_  _)(  )/ __)  (_  _)/ _\  / __)  (_  _)/  \(  __)
  )(   )(( (__     )( /    \( (__     )( (  O )) _)
 (__) (__)\___)   (__)\_/\_/ \___)   (__) \__/(____)
`

	promptPlayers = "How many players?\n[1] - player vs machine\n[2] - player vs player\n:  "
	promptSymbol  = "P1, Choose X or O: "
	promptRematch = "\nWould you like to play another game? (y) : "

	msgWelcome        = "\nLet's play!!\n"
	msgBadPlayerCount = "Please enter 1 or 2."
	msgBadSymbol      = "Please choose X or O."
	msgAITurn         = "AI's turn!"
	msgGoodbye        = "\nThanks for playing!"

	rematchYes = "y"

	vsMachine = 1
	vsPlayer  = 2
)

type inputSource interface {
	ReadInteger(ctx context.Context, prompt string) (int, error)
	ReadLine(ctx context.Context, prompt string) (string, error)
}

type display interface {
	RenderBoard(cells [entity.BoardSize]entity.Symbol)
	RenderChoices(cells [entity.BoardSize]entity.Symbol)
	RenderStatus(message string)
	Clear()
}

type scoreRecorder interface {
	SaveScores(ctx context.Context, sessionID string, scores entity.Scoreboard) error
	GetScores(ctx context.Context, sessionID string) (entity.Scoreboard, error)
	DeleteScores(ctx context.Context, sessionID string) error
}

// Session is the console loop around the match controller: setup, matches, rematch prompt.
type Session struct {
	logger *slog.Logger

	id       string
	input    inputSource
	display  display
	machine  tictactoe.MoveSource
	recorder scoreRecorder
}

// NewSession - recorder may be nil when the live scoreboard is disabled.
func NewSession(
	logger *slog.Logger,
	id string,
	input inputSource,
	display display,
	machine tictactoe.MoveSource,
	recorder scoreRecorder,
) *Session {
	return &Session{
		logger:   logger.With("component", "session", "session_id", id),
		id:       id,
		input:    input,
		display:  display,
		machine:  machine,
		recorder: recorder,
	}
}

// Run - plays matches until the rematch offer is declined.
func (that *Session) Run(ctx context.Context) error {
	that.display.Clear()
	that.display.RenderStatus(gameLogo)
	that.display.RenderStatus(msgWelcome)

	controller, err := that.setup(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up session: %w", err)
	}

	defer that.forgetScores(ctx)

	for controller.State() != StateSessionEnd {
		outcome, err := that.playMatch(ctx, controller)
		if err != nil {
			return err
		}

		that.display.RenderStatus(announcement(outcome))
		that.renderScores(controller.Participants())
		that.recordScores(ctx, controller.Participants())

		answer, err := that.input.ReadLine(ctx, promptRematch)
		if err != nil {
			return fmt.Errorf("failed to read rematch answer: %w", err)
		}

		accept := strings.EqualFold(strings.TrimSpace(answer), rematchYes)
		if err = controller.Rematch(accept); err != nil {
			return fmt.Errorf("failed to answer rematch: %w", err)
		}

		if accept {
			that.display.Clear()
		}
	}

	that.display.RenderStatus(msgGoodbye)

	return nil
}

func (that *Session) setup(ctx context.Context) (*MatchController, error) {
	humans, err := that.readPlayerCount(ctx)
	if err != nil {
		return nil, err
	}

	registry := entity.NewSymbolRegistry()
	choose := func(ctx context.Context) (string, error) {
		for {
			answer, err := that.input.ReadLine(ctx, promptSymbol)
			if err != nil {
				return "", err
			}

			if _, err = entity.ParseSymbol(answer); err != nil {
				that.display.RenderStatus(msgBadSymbol)
				continue
			}

			return answer, nil
		}
	}

	participants := make([]*entity.Participant, 0, participantsPerMatch)
	sources := make([]tictactoe.MoveSource, 0, participantsPerMatch)

	for i := range humans {
		symbol, err := entity.AssignSymbol(ctx, registry, choose)
		if err != nil {
			return nil, fmt.Errorf("failed to assign symbol: %w", err)
		}

		participants = append(participants, entity.NewPlayer(symbol))
		sources = append(sources, tictactoe.NewHumanMoveSource(i+1, that.input, that.display))
	}

	if humans == vsMachine {
		participants = append(participants, entity.NewMachine(participants[0].Symbol))
		sources = append(sources, that.machine)
	}

	that.logger.Info("session started", "humans", humans, "p1", participants[0].Symbol.String())

	return NewMatchController(that.logger, entity.NewBoard(), participants, sources)
}

func (that *Session) readPlayerCount(ctx context.Context) (int, error) {
	for {
		count, err := that.input.ReadInteger(ctx, promptPlayers)
		if err != nil {
			return 0, fmt.Errorf("failed to read player count: %w", err)
		}

		if count == vsMachine || count == vsPlayer {
			return count, nil
		}

		that.display.RenderStatus(msgBadPlayerCount)
	}
}

func (that *Session) playMatch(ctx context.Context, controller *MatchController) (entity.Outcome, error) {
	for controller.State() == StateAwaitingMove {
		if controller.Current().Machine {
			that.display.RenderStatus(msgAITurn)
		}

		if _, err := controller.PlayTurn(ctx); err != nil {
			return entity.Ongoing, err
		}

		that.display.Clear()
		that.display.RenderBoard(controller.Board().Cells())
	}

	return controller.Outcome(), nil
}

func (that *Session) renderScores(participants []*entity.Participant) {
	var builder strings.Builder

	builder.WriteString("\nSCORE:")
	for i, participant := range participants {
		fmt.Fprintf(&builder, "\n  %s: %d", entity.Label(i, participant), participant.Score)
	}

	that.display.RenderStatus(builder.String())
}

func (that *Session) recordScores(ctx context.Context, participants []*entity.Participant) {
	if that.recorder == nil {
		return
	}

	if err := that.recorder.SaveScores(ctx, that.id, entity.NewScoreboard(participants)); err != nil {
		that.logger.Warn("could not record scores", "error", err)
		return
	}

	mirrored, err := that.recorder.GetScores(ctx, that.id)
	if err != nil {
		that.logger.Warn("could not read back scores", "error", err)
		return
	}

	that.logger.Debug("scores mirrored", "scores", mirrored)
}

func (that *Session) forgetScores(ctx context.Context) {
	if that.recorder == nil {
		return
	}

	if err := that.recorder.DeleteScores(context.WithoutCancel(ctx), that.id); err != nil {
		that.logger.Warn("could not delete scores", "error", err)
	}
}

func announcement(outcome entity.Outcome) string {
	switch outcome {
	case entity.Player1Wins:
		return "PLAYER 1 WINS!!"
	case entity.Player2Wins:
		return "PLAYER 2 WINS!!"
	case entity.MachineWins:
		return "A.I. WINS!!"
	case entity.Draw:
		return "DRAW!!"
	default:
		return ""
	}
}
