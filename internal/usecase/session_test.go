package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	mockedConsole "github.com/rocketscienceinc/tictactoe-cli/mocks/console"
)

var errRecorderDown = errors.New("recorder down")

type fakeRecorder struct {
	saved   []entity.Scoreboard
	deleted []string
	reads   int
	saveErr error
}

func (that *fakeRecorder) SaveScores(_ context.Context, _ string, scores entity.Scoreboard) error {
	that.saved = append(that.saved, scores)
	return that.saveErr
}

func (that *fakeRecorder) GetScores(_ context.Context, _ string) (entity.Scoreboard, error) {
	that.reads++
	return that.saved[len(that.saved)-1], nil
}

func (that *fakeRecorder) DeleteScores(_ context.Context, sessionID string) error {
	that.deleted = append(that.deleted, sessionID)
	return nil
}

// allowRendering lets any rendering call through; register specific expectations before it.
func allowRendering(display *mockedConsole.MockDisplay) {
	display.EXPECT().Clear().Return().Maybe()
	display.EXPECT().RenderBoard(mock.Anything).Return().Maybe()
	display.EXPECT().RenderChoices(mock.Anything).Return().Maybe()
	display.EXPECT().RenderStatus(mock.Anything).Return().Maybe()
}

func TestSession_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Two players, one match won by P1", func(t *testing.T) {
		// Given: an invalid then a valid player count, P1 choosing X after a typo
		input := mockedConsole.NewMockInputSource(t)
		display := mockedConsole.NewMockDisplay(t)
		recorder := &fakeRecorder{}

		input.EXPECT().ReadInteger(mock.Anything, promptPlayers).Return(3, nil).Once()
		input.EXPECT().ReadInteger(mock.Anything, promptPlayers).Return(2, nil).Once()
		input.EXPECT().ReadLine(mock.Anything, promptSymbol).Return("q", nil).Once()
		input.EXPECT().ReadLine(mock.Anything, promptSymbol).Return("x", nil).Once()
		for _, move := range []struct {
			prompt   string
			position int
		}{
			{"P1 Choose an available tile number: ", 1},
			{"P2 Choose an available tile number: ", 4},
			{"P1 Choose an available tile number: ", 2},
			{"P2 Choose an available tile number: ", 5},
			{"P1 Choose an available tile number: ", 3},
		} {
			input.EXPECT().ReadInteger(mock.Anything, move.prompt).Return(move.position, nil).Once()
		}
		input.EXPECT().ReadLine(mock.Anything, promptRematch).Return("n", nil).Once()

		display.EXPECT().RenderStatus(msgBadPlayerCount).Return().Once()
		display.EXPECT().RenderStatus(msgBadSymbol).Return().Once()
		display.EXPECT().RenderStatus("PLAYER 1 WINS!!").Return().Once()
		display.EXPECT().RenderStatus("\nSCORE:\n  P1: 1\n  P2: 0").Return().Once()
		display.EXPECT().RenderStatus(msgGoodbye).Return().Once()
		allowRendering(display)

		session := NewSession(discardLogger(), "s1", input, display, &scriptedSource{}, recorder)

		// When: the session runs
		err := session.Run(ctx)

		// Then: each rejected answer was corrected once, the score was mirrored once and dropped at the end
		require.NoError(t, err)
		require.Len(t, recorder.saved, 1)
		assert.Equal(t, 1, recorder.reads)
		assert.Equal(t, entity.Scoreboard{"P1": 1, "P2": 0}, recorder.saved[0])
		assert.Equal(t, []string{"s1"}, recorder.deleted)
	})

	t.Run("Against the machine with a rematch", func(t *testing.T) {
		// Given: the human picks O, so the machine plays X and starts both matches
		input := mockedConsole.NewMockInputSource(t)
		display := mockedConsole.NewMockDisplay(t)
		machine := &scriptedSource{positions: []int{3, 5, 7, 1, 2, 3}}

		input.EXPECT().ReadInteger(mock.Anything, promptPlayers).Return(1, nil).Once()
		input.EXPECT().ReadLine(mock.Anything, promptSymbol).Return("o", nil).Once()
		for _, position := range []int{1, 2, 4, 5} {
			input.EXPECT().ReadInteger(mock.Anything, "P1 Choose an available tile number: ").Return(position, nil).Once()
		}
		input.EXPECT().ReadLine(mock.Anything, promptRematch).Return("Y", nil).Once()
		input.EXPECT().ReadLine(mock.Anything, promptRematch).Return("no", nil).Once()

		display.EXPECT().RenderStatus(msgAITurn).Return().Times(6)
		display.EXPECT().RenderStatus("A.I. WINS!!").Return().Times(2)
		display.EXPECT().RenderStatus("\nSCORE:\n  P1: 0\n  AI: 1").Return().Once()
		display.EXPECT().RenderStatus("\nSCORE:\n  P1: 0\n  AI: 2").Return().Once()
		allowRendering(display)

		session := NewSession(discardLogger(), "s2", input, display, machine, nil)

		// When: the session runs
		err := session.Run(ctx)

		// Then: both matches were played by the machine source
		require.NoError(t, err)
		assert.Equal(t, 6, machine.next)
	})

	t.Run("Closed input ends the session with an error", func(t *testing.T) {
		input := mockedConsole.NewMockInputSource(t)
		display := mockedConsole.NewMockDisplay(t)

		input.EXPECT().ReadInteger(mock.Anything, promptPlayers).Return(2, nil).Once()
		input.EXPECT().ReadLine(mock.Anything, promptSymbol).Return("", io.EOF).Once()
		allowRendering(display)

		err := NewSession(discardLogger(), "s3", input, display, &scriptedSource{}, nil).Run(ctx)

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Recorder failures do not stop the session", func(t *testing.T) {
		input := mockedConsole.NewMockInputSource(t)
		display := mockedConsole.NewMockDisplay(t)
		recorder := &fakeRecorder{saveErr: errRecorderDown}

		input.EXPECT().ReadInteger(mock.Anything, promptPlayers).Return(1, nil).Once()
		input.EXPECT().ReadLine(mock.Anything, promptSymbol).Return("x", nil).Once()
		for _, position := range []int{1, 2, 3} {
			input.EXPECT().ReadInteger(mock.Anything, mock.Anything).Return(position, nil).Once()
		}
		input.EXPECT().ReadLine(mock.Anything, promptRematch).Return("", nil).Once()
		allowRendering(display)

		machine := &scriptedSource{positions: []int{7, 8}}
		err := NewSession(discardLogger(), "s4", input, display, machine, recorder).Run(ctx)

		require.NoError(t, err)
		assert.Len(t, recorder.saved, 1)
		assert.Equal(t, entity.Scoreboard{"P1": 1, "AI": 0}, recorder.saved[0])
		assert.Zero(t, recorder.reads)
	})
}

func TestAnnouncement(t *testing.T) {
	assert.Equal(t, "PLAYER 1 WINS!!", announcement(entity.Player1Wins))
	assert.Equal(t, "PLAYER 2 WINS!!", announcement(entity.Player2Wins))
	assert.Equal(t, "A.I. WINS!!", announcement(entity.MachineWins))
	assert.Equal(t, "DRAW!!", announcement(entity.Draw))
	assert.Empty(t, announcement(entity.Ongoing))
}
