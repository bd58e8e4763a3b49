package entity

import "fmt"

const MachineLabel = "AI"

// Scoreboard - cumulative session scores keyed by participant label.
type Scoreboard map[string]int

// Label - "P1", "P2" for humans and "AI" for the machine agent.
func Label(index int, participant *Participant) string {
	if participant.Machine {
		return MachineLabel
	}
	return fmt.Sprintf("P%d", index+1)
}

func NewScoreboard(participants []*Participant) Scoreboard {
	scores := make(Scoreboard, len(participants))
	for i, participant := range participants {
		scores[Label(i, participant)] = participant.Score
	}
	return scores
}
