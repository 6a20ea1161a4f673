// Package brain holds the card memory and hand planning used by the GPT52
// strategy. Each bot owns its own Memory instance; nothing here is shared
// across sessions.
package brain

import (
	"peppa/internal/domain"
)

// Memory tracks the cards a bot has seen played this round plus a running
// winner streak across tricks. Observe is idempotent for a given game state:
// it rebuilds everything from the trick history and the live trick, so
// calling it twice in a row changes nothing.
type Memory struct {
	SeenIDs    map[string]bool
	SeenBySuit map[domain.Suit]int
	SeenPeppa  bool
	SeenHearts int
	SeenAces   int
	SeenKings  int

	LastWinnerID   int
	StreakWinnerID int
	StreakCount    int
}

func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears all round state, ready for a fresh deal.
func (m *Memory) Reset() {
	m.SeenIDs = make(map[string]bool)
	m.SeenBySuit = make(map[domain.Suit]int)
	m.SeenPeppa = false
	m.SeenHearts = 0
	m.SeenAces = 0
	m.SeenKings = 0
	m.LastWinnerID = -1
	m.StreakWinnerID = -1
	m.StreakCount = 0
}

// Note records a single played card.
func (m *Memory) Note(c domain.Card) {
	if m.SeenIDs[c.ID] {
		return
	}
	m.SeenIDs[c.ID] = true
	m.SeenBySuit[c.Suit]++
	if c.IsPeppa() {
		m.SeenPeppa = true
	}
	if c.Suit == domain.Hearts {
		m.SeenHearts++
	}
	switch c.Value {
	case 14:
		m.SeenAces++
	case 13:
		m.SeenKings++
	}
}

// Observe synchronizes the memory with the current game state. A full hand
// means a fresh deal, so the round state is rebuilt from scratch.
func (m *Memory) Observe(g *domain.Game, selfID int) {
	p := g.PlayerByID(selfID)
	if p != nil && len(p.Hand) == 13 {
		m.Reset()
	}

	for _, rec := range g.History {
		for _, play := range rec.Plays {
			m.Note(play.Card)
		}
	}
	for _, play := range g.CurrentTrick {
		m.Note(play.Card)
	}

	// Recompute the winner streak from history so repeated observations of
	// the same state stay stable.
	m.LastWinnerID = -1
	m.StreakWinnerID = -1
	m.StreakCount = 0
	for _, rec := range g.History {
		m.LastWinnerID = rec.WinnerID
		if rec.WinnerID == m.StreakWinnerID {
			m.StreakCount++
		} else {
			m.StreakWinnerID = rec.WinnerID
			m.StreakCount = 1
		}
	}
}

// Remaining returns how many cards of the suit are still unseen, not counting
// the bot's own holding.
func (m *Memory) Remaining(suit domain.Suit, ownHand []domain.Card) int {
	return 13 - m.SeenBySuit[suit] - domain.CountSuit(ownHand, suit)
}
