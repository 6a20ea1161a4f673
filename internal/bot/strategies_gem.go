package bot

import (
	"peppa/internal/domain"
)

// GEM is the positional strategy: it reads how protected its queen of spades
// is before passing, cashes clubs/diamonds honors early, and sacrifices the
// queen onto opponents' high spade leads.
type GEM struct{}

func NewGEM() *GEM {
	return &GEM{}
}

func (g *GEM) ComputePass(hand []domain.Card) ([]string, error) {
	if len(hand) == 0 {
		return nil, ErrEmptyHand
	}
	if len(hand) <= 3 {
		return cardIDs(hand), nil
	}

	spadeCount := domain.CountSuit(hand, domain.Spades)
	hasSpadeProtection := false
	for _, c := range hand {
		if c.Suit == domain.Spades && c.Value >= 13 {
			hasSpadeProtection = true
		}
	}
	holdsPeppa := domain.HasPeppa(hand)

	scores := make(map[string]int, len(hand))
	for _, c := range hand {
		var score int
		switch {
		case c.IsPeppa():
			if spadeCount < 4 && !hasSpadeProtection {
				score = gemTuning.PeppaUnprotected
			} else {
				score = gemTuning.PeppaProtected
			}
		case c.Suit == domain.Spades && c.Value >= 13:
			// Aces and kings of spades guard the queen. Keep them only
			// while the queen is ours to guard.
			if holdsPeppa {
				score = gemTuning.SpadeHonorKeep
			} else {
				score = gemTuning.SpadeHonorDump
			}
		case c.Suit == domain.Hearts && c.Value >= 11:
			score = c.Value * gemTuning.HighHeartFactor
		case isMoneyHonor(c):
			score = gemTuning.MoneyHonorKeep
		case c.Value >= 7 && c.Value <= 10:
			score = gemTuning.MidCardDump
		case c.Value <= 3:
			score = gemTuning.ParachuteKeep
		}
		scores[c.ID] = score
	}

	return cardIDs(sortByPassScore(hand, scores)[:3]), nil
}

func (g *GEM) ComputeMove(game *domain.Game, playerID int) (domain.Card, error) {
	p := game.PlayerByID(playerID)
	if p == nil {
		return domain.Card{}, ErrUnknownPlayer
	}
	hand := p.Hand
	if len(hand) == 0 {
		return domain.Card{}, ErrEmptyHand
	}
	trick := game.CurrentTrick
	leadSuit := game.LeadSuit
	legal := domain.LegalMoves(hand, trick, leadSuit)
	if len(legal) == 1 {
		return legal[0], nil
	}

	if len(trick) == 0 {
		return g.lead(game, hand, legal), nil
	}
	if domain.CountSuit(hand, leadSuit) == 0 {
		return g.discard(legal), nil
	}
	return g.follow(game, legal), nil
}

func (g *GEM) lead(game *domain.Game, hand, legal []domain.Card) domain.Card {
	pool := filterCards(legal, func(c domain.Card) bool { return !c.IsPeppa() })
	if len(pool) == 0 {
		pool = legal
	}
	if !game.HeartsBroken {
		noHighSpades := filterCards(pool, func(c domain.Card) bool {
			return !(c.Suit == domain.Spades && c.Value >= 13)
		})
		if len(noHighSpades) > 0 {
			pool = noHighSpades
		}
	}
	if len(hand) > 8 {
		moneyMakers := byValueDesc(filterCards(pool, isMoneyHonor))
		if len(moneyMakers) > 0 {
			return moneyMakers[0]
		}
	}
	return byValueAsc(pool)[0]
}

func (g *GEM) follow(game *domain.Game, legal []domain.Card) domain.Card {
	trick := game.CurrentTrick
	leadSuit := game.LeadSuit
	winVal := domain.CurrentWinningValue(trick, leadSuit)

	// High spade trick in progress: unload the queen onto it.
	if leadSuit == domain.Spades && winVal >= 13 {
		if q, ok := findPeppa(legal); ok {
			return q
		}
	}

	net := domain.TrickValue(domain.TrickCards(trick))
	asc := byValueAsc(legal)
	if net >= gemTakeThreshold && leadSuit != domain.Spades {
		for _, c := range asc {
			if c.Value > winVal {
				return c
			}
		}
		return asc[0]
	}

	desc := byValueDesc(legal)
	for _, c := range desc {
		if c.Value < winVal {
			return c
		}
	}
	// Forced to win a bad trick; shed the biggest load with it.
	return desc[0]
}

func (g *GEM) discard(legal []domain.Card) domain.Card {
	if q, ok := findPeppa(legal); ok {
		return q
	}
	highHearts := byValueDesc(filterCards(legal, func(c domain.Card) bool {
		return c.Suit == domain.Hearts && c.Value >= 12
	}))
	if len(highHearts) > 0 {
		return highHearts[0]
	}
	return byValueDesc(legal)[0]
}
