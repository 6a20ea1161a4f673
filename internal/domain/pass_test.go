package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"peppa/internal/config"
)

func TestDirectionForRound(t *testing.T) {
	tests := []struct {
		seq   config.PassSequence
		round int
		want  PassDirection
	}{
		{config.SequenceDSC, 1, PassRight},
		{config.SequenceDSC, 2, PassLeft},
		{config.SequenceDSC, 3, PassAcross},
		{config.SequenceDSC, 4, PassNone},
		{config.SequenceDSC, 5, PassRight},

		{config.SequenceDSnC, 1, PassRight},
		{config.SequenceDSnC, 2, PassLeft},
		{config.SequenceDSnC, 3, PassNone},
		{config.SequenceDSnC, 4, PassAcross},
		{config.SequenceDSnC, 5, PassRight},
	}
	for _, tt := range tests {
		got := DirectionForRound(tt.round, tt.seq)
		assert.Equal(t, tt.want, got, "seq %s round %d", tt.seq, tt.round)
	}
}

func TestDirectionForRoundIsPure(t *testing.T) {
	for round := 1; round <= 12; round++ {
		first := DirectionForRound(round, config.SequenceDSC)
		assert.Equal(t, first, DirectionForRound(round, config.SequenceDSC))
	}
}

func TestSourceSeat(t *testing.T) {
	for i := 0; i < 4; i++ {
		assert.Equal(t, (i+1)%4, SourceSeat(i, PassLeft), "left")
		assert.Equal(t, (i+3)%4, SourceSeat(i, PassRight), "right")
		assert.Equal(t, (i+2)%4, SourceSeat(i, PassAcross), "across")
		assert.Equal(t, i, SourceSeat(i, PassNone), "none")
	}

	// Each direction is a permutation of the seats.
	for _, dir := range []PassDirection{PassLeft, PassRight, PassAcross} {
		seen := map[int]bool{}
		for i := 0; i < 4; i++ {
			seen[SourceSeat(i, dir)] = true
		}
		assert.Len(t, seen, 4, string(dir))
	}
}
