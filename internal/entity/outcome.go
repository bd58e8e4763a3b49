package entity

type Outcome int

const (
	Ongoing Outcome = iota
	Player1Wins
	Player2Wins
	MachineWins
	Draw
)

func (that Outcome) IsTerminal() bool {
	return that != Ongoing
}

// WinnerIndex - returns the index of the winning participant, -1 when nobody won.
func (that Outcome) WinnerIndex() int {
	switch that {
	case Player1Wins:
		return 0
	case Player2Wins, MachineWins:
		return 1
	default:
		return -1
	}
}

func (that Outcome) String() string {
	switch that {
	case Ongoing:
		return "ongoing"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	case MachineWins:
		return "machine wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}
