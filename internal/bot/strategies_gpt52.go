package bot

import (
	"peppa/internal/bot/brain"
	"peppa/internal/domain"
)

// GPT52 is the top-tier strategy. It keeps a per-hand card memory, picks a
// posture (normal, cappotto hunt, or anti-cappotto) before every decision,
// and prices trick-taking against how many hearts are still loose.
type GPT52 struct {
	mem  *brain.Memory
	plan brain.Plan
}

func NewGPT52() *GPT52 {
	return &GPT52{mem: brain.NewMemory(), plan: brain.PlanNormal}
}

func (s *GPT52) ComputePass(hand []domain.Card) ([]string, error) {
	if len(hand) == 0 {
		return nil, ErrEmptyHand
	}
	if len(hand) <= 3 {
		return cardIDs(hand), nil
	}

	// Passing happens before any card is played, so the plan is read off
	// the raw hand alone. Scoring is additive: one card can be both a low
	// duck worth keeping and a heart worth shedding.
	cappotto := passCappottoViable(hand)
	counts := domain.SuitCounts(hand)

	scores := make(map[string]int, len(hand))
	for _, c := range hand {
		score := 0
		if c.Value <= 4 {
			score += gpt52Tuning.LowDuckKeep
		}
		if isMoneyHonor(c) {
			score += gpt52Tuning.MoneyHonorKeep
		}
		if c.IsPeppa() {
			if cappotto {
				score += gpt52Tuning.PeppaKeepCappotto
			} else {
				score += gpt52Tuning.PeppaDump
			}
		}
		if c.Suit == domain.Hearts {
			if cappotto {
				score += gpt52Tuning.HeartKeepCappotto
			} else {
				score += gpt52Tuning.HeartDumpBase + c.Value*gpt52Tuning.HeartDumpFactor
			}
		}
		if isTrapMid(c) {
			score += gpt52Tuning.TrapDump
		}

		// Going short in a suit enables later penalty sluffs, unless the
		// short card is a money honor worth more than the void.
		if counts[c.Suit] <= 2 && c.Suit != domain.Hearts && !isMoneyHonor(c) {
			score += gpt52Tuning.ShortSuitDump
			if c.Value >= 12 {
				score += gpt52Tuning.ShortSuitHighDump
			}
		}

		if c.Suit == domain.Spades && c.Value >= 13 {
			if counts[domain.Spades] <= 2 && !cappotto {
				score += gpt52Tuning.SpadeHonorTrap
			} else {
				score += gpt52Tuning.SpadeHonorKeep
			}
		}

		if cappotto {
			if isTrapMid(c) {
				score += gpt52Tuning.CappottoTrapDump
			}
			if counts[c.Suit] >= 7 {
				score += gpt52Tuning.CappottoLongKeep
			}
		}

		scores[c.ID] = score
	}

	return cardIDs(sortByPassScore(hand, scores)[:3]), nil
}

// passCappottoViable mirrors the in-play cappotto test without game state.
func passCappottoViable(hand []domain.Card) bool {
	counts := domain.SuitCounts(hand)
	longestSuit := domain.Hearts
	for _, suit := range []domain.Suit{domain.Spades, domain.Diamonds, domain.Clubs} {
		if counts[suit] > counts[longestSuit] {
			longestSuit = suit
		}
	}
	topHonors, honors, outsideTop := 0, 0, 0
	for _, c := range hand {
		if c.Value >= 13 {
			topHonors++
			if c.Suit != longestSuit {
				outsideTop++
			}
		}
		if c.Value >= 12 {
			honors++
		}
	}
	return counts[longestSuit] >= 7 && topHonors >= 3 && honors >= 4 && outsideTop >= 1
}

func (s *GPT52) ComputeMove(g *domain.Game, playerID int) (domain.Card, error) {
	p := g.PlayerByID(playerID)
	if p == nil {
		return domain.Card{}, ErrUnknownPlayer
	}
	hand := p.Hand
	if len(hand) == 0 {
		return domain.Card{}, ErrEmptyHand
	}

	s.mem.Observe(g, playerID)
	s.plan = brain.HandPlan(g, playerID, s.mem)
	risk := brain.PoisonRisk(len(hand))

	trick := g.CurrentTrick
	leadSuit := g.LeadSuit
	legal := domain.LegalMoves(hand, trick, leadSuit)
	if len(legal) == 1 {
		return legal[0], nil
	}

	if len(trick) == 0 {
		return s.lead(hand, legal, risk), nil
	}
	if domain.CountSuit(hand, leadSuit) == 0 {
		return s.discard(legal, risk), nil
	}
	return s.follow(g, legal, risk), nil
}

func (s *GPT52) lead(hand, legal []domain.Card, risk float64) domain.Card {
	if s.plan == brain.PlanCappotto {
		return s.leadCappotto(hand, legal)
	}

	// Cheap to win? Cash a clubs/diamonds honor while it is still safe.
	if risk <= gpt52LowRisk {
		if money := byValueDesc(filterCards(legal, isMoneyHonor)); len(money) > 0 {
			return money[0]
		}
	}

	// Work on going void: lead the shortest non-hearts suit.
	if c, ok := s.shortestSuitLead(hand, legal); ok {
		return c
	}

	nonTrap := filterCards(legal, func(c domain.Card) bool {
		return c.Suit != domain.Hearts && !isTrapMid(c)
	})
	if len(nonTrap) > 0 {
		return byValueAsc(nonTrap)[0]
	}
	return byValueAsc(legal)[0]
}

func (s *GPT52) leadCappotto(hand, legal []domain.Card) domain.Card {
	counts := domain.SuitCounts(hand)
	longestSuit := domain.Clubs
	for _, suit := range []domain.Suit{domain.Diamonds, domain.Spades, domain.Hearts} {
		if counts[suit] > counts[longestSuit] {
			longestSuit = suit
		}
	}
	if top := byValueDesc(filterCards(legal, func(c domain.Card) bool {
		return c.Suit == longestSuit && c.Value >= 12
	})); len(top) > 0 {
		return top[0]
	}
	if money := byValueDesc(filterCards(legal, isMoneyHonor)); len(money) > 0 {
		return money[0]
	}
	if hearts := byValueDesc(domain.FilterSuit(legal, domain.Hearts)); len(hearts) > 0 {
		return hearts[0]
	}
	return byValueDesc(legal)[0]
}

// shortestSuitLead picks the lowest card of the shortest non-hearts suit the
// hand is short in (two cards or fewer), preferring clubs over diamonds over
// spades on ties. A suit the hand is already void in wins the comparison but
// yields nothing to lead, so the caller falls through.
func (s *GPT52) shortestSuitLead(hand, legal []domain.Card) (domain.Card, bool) {
	counts := domain.SuitCounts(hand)
	best := domain.Suit("")
	for _, suit := range []domain.Suit{domain.Clubs, domain.Diamonds, domain.Spades} {
		if counts[suit] > 2 {
			continue
		}
		if best == "" || counts[suit] < counts[best] {
			best = suit
		}
	}
	if best == "" || counts[best] == 0 {
		return domain.Card{}, false
	}
	return byValueAsc(domain.FilterSuit(legal, best))[0], true
}

func (s *GPT52) follow(g *domain.Game, legal []domain.Card, risk float64) domain.Card {
	trick := g.CurrentTrick
	leadSuit := g.LeadSuit
	winVal := domain.CurrentWinningValue(trick, leadSuit)
	net := domain.TrickValue(domain.TrickCards(trick))

	threshold := gpt52TakeThresholdEarly
	if risk >= gpt52HighRisk {
		threshold = gpt52TakeThresholdLate
	}
	shouldTake := s.plan == brain.PlanCappotto || net >= threshold

	asc := byValueAsc(legal)
	if shouldTake {
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
	for _, c := range asc {
		if c.Value > winVal {
			return c
		}
	}
	return asc[0]
}

func (s *GPT52) discard(legal []domain.Card, risk float64) domain.Card {
	if s.plan == brain.PlanCappotto {
		// Keep points and winners; shed the junk.
		clean := filterCards(legal, func(c domain.Card) bool {
			return c.Suit != domain.Hearts && !c.IsPeppa()
		})
		if mids := byValueDesc(filterCards(clean, isTrapMid)); len(mids) > 0 {
			return mids[0]
		}
		if highs := byValueDesc(filterCards(clean, func(c domain.Card) bool {
			return c.Value == 12
		})); len(highs) > 0 {
			return highs[0]
		}
		if len(clean) > 0 {
			return byValueDesc(clean)[0]
		}
		return byValueDesc(legal)[0]
	}

	if q, ok := findPeppa(legal); ok {
		return q
	}
	if hearts := byValueDesc(domain.FilterSuit(legal, domain.Hearts)); len(hearts) > 0 {
		return hearts[0]
	}
	if mids := byValueDesc(filterCards(legal, isTrapMid)); len(mids) > 0 {
		return mids[0]
	}
	if risk >= gpt52HighRisk {
		// The spade honors are bait for the queen while it is loose.
		if honors := byValueAsc(filterCards(legal, func(c domain.Card) bool {
			return c.Suit == domain.Spades && c.Value >= 13
		})); len(honors) > 0 {
			return honors[0]
		}
	}
	return byValueDesc(legal)[0]
}
