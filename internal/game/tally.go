package game

import "fmt"

// ScoreTally counts finished rounds across a session.
type ScoreTally struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

// Record adds a finished round to the tally. Rounds still in progress are
// ignored.
func (t *ScoreTally) Record(o Outcome) {
	switch o.Kind {
	case Win:
		if o.Winner == PlayerX {
			t.XWins++
		} else {
			t.OWins++
		}
	case Draw:
		t.Draws++
	}
}

// Add merges other into t.
func (t *ScoreTally) Add(other ScoreTally) {
	t.XWins += other.XWins
	t.OWins += other.OWins
	t.Draws += other.Draws
}

// Rounds is the number of finished rounds recorded.
func (t ScoreTally) Rounds() int {
	return t.XWins + t.OWins + t.Draws
}

func (t ScoreTally) String() string {
	return fmt.Sprintf("X Wins: %d | O Wins: %d | Draws: %d", t.XWins, t.OWins, t.Draws)
}
