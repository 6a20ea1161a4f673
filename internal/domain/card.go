package domain

import "fmt"

// Suit identifies one of the four French suits.
type Suit string

const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists the suits in hand-display order (alphabetical).
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Card is a single playing card. The ID is stable from deal to discard and
// is the only thing the selection surface refers to.
type Card struct {
	ID    string
	Suit  Suit
	Rank  string // "2".."10", "J", "Q", "K", "A"
	Value int    // 2..14, J=11 Q=12 K=13 A=14
}

var rankValues = []struct {
	Rank  string
	Value int
}{
	{"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}, {"6", 6}, {"7", 7}, {"8", 8},
	{"9", 9}, {"10", 10}, {"J", 11}, {"Q", 12}, {"K", 13}, {"A", 14},
}

// IsPeppa reports whether the card is the penalty queen (Q of spades).
func (c Card) IsPeppa() bool {
	return c.Suit == Spades && c.Rank == "Q"
}

// PenaltyPoints returns how many points the card costs whoever captures it.
func (c Card) PenaltyPoints() int {
	if c.IsPeppa() {
		return PeppaPenalty
	}
	if c.Suit == Hearts {
		return c.Value
	}
	return 0
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// NewDeck returns the 52-card deck in suit order. Exactly one physical card
// exists per (suit, rank); IDs are deterministic so they survive shuffling.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, rv := range rankValues {
			deck = append(deck, Card{
				ID:    fmt.Sprintf("%s-%s", s, rv.Rank),
				Suit:  s,
				Rank:  rv.Rank,
				Value: rv.Value,
			})
		}
	}
	return deck
}
