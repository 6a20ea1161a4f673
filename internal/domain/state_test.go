package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartingPlayerRotates(t *testing.T) {
	g := &Game{DealerOffset: 2}
	got := []int{}
	for round := 1; round <= 4; round++ {
		g.RoundNumber = round
		got = append(got, g.StartingPlayer())
	}
	assert.Equal(t, []int{3, 0, 1, 2}, got)

	g.RoundNumber = 1
	assert.Equal(t, 2, g.DealerIndex())
}

func TestRank(t *testing.T) {
	g := &Game{Players: []*Player{
		{ID: 0, Score: 40},
		{ID: 1, Score: 75},
		{ID: 2, Score: 40},
		{ID: 3, Score: -10},
	}}
	assert.Equal(t, 1, g.Rank(1))
	assert.Equal(t, 2, g.Rank(0))
	assert.Equal(t, 2, g.Rank(2), "tied scores share a rank")
	assert.Equal(t, 3, g.Rank(3))
}

func TestCloneIsDeep(t *testing.T) {
	deck := NewDeck()
	g := &Game{
		SessionID: "s",
		Players: []*Player{
			{ID: 0, Hand: deck[:13], SelectedToPass: []string{"clubs-2"}, ScoreHistory: []int{10}},
			{ID: 1}, {ID: 2}, {ID: 3},
		},
		CurrentTrick: []PlayedCard{{PlayerID: 0, Card: deck[0]}},
		History:      []TrickRecord{{Plays: []PlayedCard{{PlayerID: 1, Card: deck[1]}}, WinnerID: 1, Points: 10}},
	}

	cp := g.Clone()
	cp.Players[0].Hand[0] = deck[20]
	cp.Players[0].SelectedToPass[0] = "other"
	cp.Players[0].ScoreHistory[0] = 99
	cp.CurrentTrick[0].PlayerID = 3
	cp.History[0].Plays[0].PlayerID = 3

	assert.Equal(t, deck[0], g.Players[0].Hand[0])
	assert.Equal(t, "clubs-2", g.Players[0].SelectedToPass[0])
	assert.Equal(t, 10, g.Players[0].ScoreHistory[0])
	assert.Equal(t, 0, g.CurrentTrick[0].PlayerID)
	assert.Equal(t, 1, g.History[0].Plays[0].PlayerID)
}

func TestHasPlayedInTrick(t *testing.T) {
	deck := NewDeck()
	g := &Game{CurrentTrick: []PlayedCard{{PlayerID: 2, Card: deck[0]}}}
	assert.True(t, g.HasPlayedInTrick(2))
	assert.False(t, g.HasPlayedInTrick(0))
}
