package domain

// Scoring constants of the variant. Every captured trick is worth the base
// value minus whatever penalty cards it contains.
const (
	TrickBaseValue = 10
	PeppaPenalty   = 26
	// SlamProduct is what tricksWon*10 - pointsThisRound equals after a
	// clean sweep of all 13 tricks: 130 base points earned, zero absorbed.
	SlamProduct = 130
	SlamBonus   = 45
	SlamMalus   = -15
)

// LegalMoves computes the playable subset of a hand against the trick in
// progress. On lead anything goes; otherwise the lead suit must be followed
// when held, and a void seat may sluff anything. Hearts-breaking is not
// enforced here: a strategy may impose it on itself, the engine does not.
func LegalMoves(hand []Card, trick []PlayedCard, leadSuit Suit) []Card {
	if len(trick) == 0 || leadSuit == "" {
		return append([]Card(nil), hand...)
	}
	follow := FilterSuit(hand, leadSuit)
	if len(follow) > 0 {
		return follow
	}
	return append([]Card(nil), hand...)
}

// IsLegalMove reports whether the card is playable from the hand now.
func IsLegalMove(hand []Card, trick []PlayedCard, leadSuit Suit, card Card) bool {
	if _, ok := FindCard(hand, card.ID); !ok {
		return false
	}
	for _, c := range LegalMoves(hand, trick, leadSuit) {
		if c.ID == card.ID {
			return true
		}
	}
	return false
}

// CurrentWinningValue returns the highest lead-suit value committed to the
// trick so far, or -1 when nothing of the lead suit has been played.
func CurrentWinningValue(trick []PlayedCard, leadSuit Suit) int {
	maxVal := -1
	for _, pc := range trick {
		if pc.Card.Suit == leadSuit && pc.Card.Value > maxVal {
			maxVal = pc.Card.Value
		}
	}
	return maxVal
}

// TrickWinner returns the seat that played the highest card of the lead
// suit. The leader always has a lead-suit card in the trick, so a winner
// always exists for a non-empty trick.
func TrickWinner(trick []PlayedCard, leadSuit Suit) int {
	winner := trick[0].PlayerID
	maxVal := -1
	for _, pc := range trick {
		if pc.Card.Suit == leadSuit && pc.Card.Value > maxVal {
			maxVal = pc.Card.Value
			winner = pc.PlayerID
		}
	}
	return winner
}

// TrickValue is the net worth of capturing the given cards: the base value
// minus heart values minus the penalty queen. It can be negative.
func TrickValue(cards []Card) int {
	pts := TrickBaseValue
	for _, c := range cards {
		pts -= c.PenaltyPoints()
	}
	return pts
}

// TrickCards extracts the card slice of a trick.
func TrickCards(trick []PlayedCard) []Card {
	out := make([]Card, len(trick))
	for i, pc := range trick {
		out[i] = pc.Card
	}
	return out
}
