package domain

import "peppa/internal/config"

// PassDirection says where each seat's three discards travel this round.
type PassDirection string

const (
	PassLeft   PassDirection = "left"
	PassRight  PassDirection = "right"
	PassAcross PassDirection = "across"
	PassNone   PassDirection = "none"
)

var (
	cycleDSC  = [4]PassDirection{PassRight, PassLeft, PassAcross, PassNone}
	cycleDSnC = [4]PassDirection{PassRight, PassLeft, PassNone, PassAcross}
)

// DirectionForRound maps a 1-based round number onto the configured cycle.
// Pure: querying any past or future round gives the same answer. Round 1 is
// right in both cycles, which is also enforced at game start.
func DirectionForRound(round int, seq config.PassSequence) PassDirection {
	i := (round - 1) % 4
	if seq == config.SequenceDSnC {
		return cycleDSnC[i]
	}
	return cycleDSC[i]
}

// SourceSeat returns the seat whose discards seat i receives under dir.
func SourceSeat(i int, dir PassDirection) int {
	switch dir {
	case PassLeft:
		return (i + 1) % 4
	case PassRight:
		return (i + 3) % 4
	case PassAcross:
		return (i + 2) % 4
	}
	return i
}
