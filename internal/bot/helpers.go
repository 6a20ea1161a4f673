package bot

import (
	"sort"

	"peppa/internal/domain"
)

func byValueAsc(cards []domain.Card) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

func byValueDesc(cards []domain.Card) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

func cardIDs(cards []domain.Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func findPeppa(cards []domain.Card) (domain.Card, bool) {
	for _, c := range cards {
		if c.IsPeppa() {
			return c, true
		}
	}
	return domain.Card{}, false
}

func filterCards(cards []domain.Card, keep func(domain.Card) bool) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// isMoneyHonor marks the ace or king of a money suit (clubs/diamonds),
// the cards that command clean +10 tricks.
func isMoneyHonor(c domain.Card) bool {
	return (c.Suit == domain.Clubs || c.Suit == domain.Diamonds) && c.Value >= 13
}

// isTrapMid marks ranks 7..J, the cards that win tricks nobody wants.
func isTrapMid(c domain.Card) bool {
	return c.Value >= 7 && c.Value <= 11
}

// sortByPassScore orders a hand by descending pass desirability.
func sortByPassScore(hand []domain.Card, scores map[string]int) []domain.Card {
	out := append([]domain.Card(nil), hand...)
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].ID] > scores[out[j].ID]
	})
	return out
}
