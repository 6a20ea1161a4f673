package brain

import (
	"peppa/internal/domain"
)

// Plan is the posture GPT52 adopts for the rest of a hand.
type Plan string

const (
	// PlanNormal plays for low: duck, shed, avoid points.
	PlanNormal Plan = "normal"
	// PlanCappotto hunts the slam: win every trick, hoard entries.
	PlanCappotto Plan = "cappotto"
	// PlanAntiCappotto breaks an opponent's slam run by taking a trick
	// even at a cost.
	PlanAntiCappotto Plan = "antiCappotto"
)

// HandPlan decides the posture from the bot's own hand and what the memory
// says about the table. Cappotto needs a long suit plus enough top honors
// and side entries to actually run the hand.
func HandPlan(g *domain.Game, selfID int, mem *Memory) Plan {
	self := g.PlayerByID(selfID)
	if self == nil {
		return PlanNormal
	}
	hand := self.Hand

	counts := domain.SuitCounts(hand)
	longestSuit := domain.Hearts
	for _, suit := range []domain.Suit{domain.Spades, domain.Diamonds, domain.Clubs} {
		if counts[suit] > counts[longestSuit] {
			longestSuit = suit
		}
	}

	topHonors := 0 // aces and kings anywhere
	honors := 0    // queens and above
	outsideTop := 0
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

	if counts[longestSuit] >= 7 && topHonors >= 3 && honors >= 4 && outsideTop >= 1 {
		return PlanCappotto
	}

	// Three straight tricks by one seat, or six in total, reads as a table
	// under someone's control.
	if mem != nil && mem.StreakCount >= 3 {
		return PlanAntiCappotto
	}
	for _, p := range g.Players {
		if p.TricksWon >= 6 {
			return PlanAntiCappotto
		}
	}

	return PlanNormal
}

// PoisonRisk estimates how dangerous winning a trick is at this depth of the
// hand. Early tricks are usually clean; the fewer cards remain, the more
// likely a taken trick comes loaded with sluffed penalties.
func PoisonRisk(handSize int) float64 {
	switch {
	case handSize >= 11:
		return 0.15
	case handSize >= 8:
		return 0.35
	case handSize >= 5:
		return 0.60
	default:
		return 0.85
	}
}
