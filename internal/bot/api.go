package bot

import (
	"errors"

	"peppa/internal/domain"
)

// Strategy errors are fatal for the single computation that raised them; the
// caller falls back to a deterministic safe choice instead of stalling.
var (
	ErrUnknownPlayer = errors.New("acting player not found in state")
	ErrEmptyHand     = errors.New("acting player has no cards")
)

// Strategy is the capability every bot personality implements. ComputePass
// picks exactly 3 card IDs to discard from a dealt hand. ComputeMove picks
// one card to play from the shared state; it computes the legal subset
// itself and must never return a card outside it.
type Strategy interface {
	ComputePass(hand []domain.Card) ([]string, error)
	ComputeMove(g *domain.Game, playerID int) (domain.Card, error)
}
