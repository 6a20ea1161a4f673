package bot

import (
	"peppa/internal/domain"
)

// HAL is the baseline strategy: fixed pass heuristics and a duck-first trick
// game. It is the only strategy that forbids itself from leading hearts
// before they are broken, and it doubles as the scheduler's timeout fallback.
type HAL struct{}

func NewHAL() *HAL {
	return &HAL{}
}

func (h *HAL) ComputePass(hand []domain.Card) ([]string, error) {
	if len(hand) == 0 {
		return nil, ErrEmptyHand
	}
	if len(hand) <= 3 {
		return cardIDs(hand), nil
	}

	scores := make(map[string]int, len(hand))
	for _, c := range hand {
		var score int
		switch {
		case c.Suit == domain.Hearts && c.Value <= 5:
			score = halTuning.LowHeartKeep
		case c.IsPeppa():
			score = halTuning.PeppaDump
		case c.Suit == domain.Hearts:
			score = halTuning.HighHeartBase + c.Value
		case c.Suit == domain.Spades && c.Value >= 13:
			score = halTuning.SpadeHonorDump
		default:
			score = c.Value * halTuning.HighCardFactor
			if domain.CountSuit(hand, c.Suit) <= 2 {
				score += halTuning.ShortSuitBonus
			}
		}
		scores[c.ID] = score
	}

	return cardIDs(sortByPassScore(hand, scores)[:3]), nil
}

func (h *HAL) ComputeMove(g *domain.Game, playerID int) (domain.Card, error) {
	p := g.PlayerByID(playerID)
	if p == nil {
		return domain.Card{}, ErrUnknownPlayer
	}
	hand := p.Hand
	if len(hand) == 0 {
		return domain.Card{}, ErrEmptyHand
	}
	trick := g.CurrentTrick
	leadSuit := g.LeadSuit

	var legal []domain.Card
	if len(trick) == 0 {
		legal = append([]domain.Card(nil), hand...)
		if !g.HeartsBroken {
			nonHearts := filterCards(hand, func(c domain.Card) bool { return c.Suit != domain.Hearts })
			if len(nonHearts) > 0 {
				legal = nonHearts
			}
		}
	} else {
		legal = domain.LegalMoves(hand, trick, leadSuit)
	}
	if len(legal) == 1 {
		return legal[0], nil
	}

	// Void in the led suit: shed the queen, then high hearts, then the
	// biggest liability.
	if len(trick) > 0 && domain.CountSuit(hand, leadSuit) == 0 {
		if q, ok := findPeppa(legal); ok {
			return q, nil
		}
		if hearts := byValueDesc(domain.FilterSuit(legal, domain.Hearts)); len(hearts) > 0 {
			return hearts[0], nil
		}
		return byValueDesc(legal)[0], nil
	}

	// Follow: stay just under the current winner, or dump high when forced
	// to take.
	if len(trick) > 0 {
		winVal := domain.CurrentWinningValue(trick, leadSuit)
		sorted := byValueDesc(legal)
		for _, c := range sorted {
			if c.Value < winVal {
				return c, nil
			}
		}
		return sorted[0], nil
	}

	// Lead: low and safe, keeping spade honors out of the firing line.
	safe := filterCards(legal, func(c domain.Card) bool {
		return !(c.Suit == domain.Spades && c.Value >= 12)
	})
	if len(safe) == 0 {
		safe = legal
	}
	return byValueAsc(safe)[0], nil
}
