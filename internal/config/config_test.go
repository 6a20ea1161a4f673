package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	def := Default()
	assert.Equal(t, "Charlie Bartom", def.PlayerName)
	assert.Equal(t, AIHal, def.AIType)
	assert.Equal(t, 8, def.MaxRounds)
	assert.Equal(t, 100, def.MaxScore)
	assert.Equal(t, SequenceDSC, def.PassSequence)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   GameConfig
		want GameConfig
	}{
		{
			name: "zero value becomes the default",
			in:   GameConfig{},
			want: Default(),
		},
		{
			name: "valid values survive",
			in: GameConfig{
				PlayerName:   "Ripley",
				AIType:       AIMixed,
				MaxRounds:    12,
				MaxScore:     50,
				PassSequence: SequenceDSnC,
			},
			want: GameConfig{
				PlayerName:   "Ripley",
				AIType:       AIMixed,
				MaxRounds:    12,
				MaxScore:     50,
				PassSequence: SequenceDSnC,
			},
		},
		{
			name: "out-of-set values are clamped individually",
			in: GameConfig{
				PlayerName:   "Ripley",
				AIType:       AIChoice("SHODAN"),
				MaxRounds:    7,
				MaxScore:     100,
				PassSequence: PassSequence("XYZ"),
			},
			want: GameConfig{
				PlayerName:   "Ripley",
				AIType:       AIHal,
				MaxRounds:    8,
				MaxScore:     100,
				PassSequence: SequenceDSC,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
