package domain

import "sort"

// SortHand orders a hand by suit (alphabetical) then ascending value, the
// deterministic display order every dealt and exchanged hand keeps.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit != cards[j].Suit {
			return cards[i].Suit < cards[j].Suit
		}
		return cards[i].Value < cards[j].Value
	})
}

// FilterSuit returns the cards of the given suit, preserving order.
func FilterSuit(cards []Card, suit Suit) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// CountSuit returns how many cards of the suit the hand holds.
func CountSuit(cards []Card, suit Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

// SuitCounts returns the per-suit card counts of a hand.
func SuitCounts(cards []Card) map[Suit]int {
	counts := map[Suit]int{Clubs: 0, Diamonds: 0, Hearts: 0, Spades: 0}
	for _, c := range cards {
		counts[c.Suit]++
	}
	return counts
}

// FindCard returns the card with the given ID and whether it was found.
func FindCard(cards []Card, id string) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// RemoveCard returns the hand without the card of the given ID.
func RemoveCard(hand []Card, id string) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// RemoveCards returns the hand without any card whose ID is in ids.
func RemoveCards(hand []Card, ids []string) []Card {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if !drop[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// HasPeppa reports whether the hand holds the penalty queen.
func HasPeppa(hand []Card) bool {
	for _, c := range hand {
		if c.IsPeppa() {
			return true
		}
	}
	return false
}
