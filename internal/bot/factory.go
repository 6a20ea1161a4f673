package bot

import (
	"fmt"

	"peppa/internal/domain"
)

// New builds a strategy for the given tier.
func New(kind domain.AIType) (Strategy, error) {
	switch kind {
	case domain.AITypeHAL:
		return NewHAL(), nil
	case domain.AITypeGEM:
		return NewGEM(), nil
	case domain.AITypeGPT52:
		return NewGPT52(), nil
	default:
		return nil, fmt.Errorf("unknown ai type %q", kind)
	}
}
