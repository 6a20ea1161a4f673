package app

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"peppa/internal/config"
	"peppa/internal/domain"
)

func testService(seed int64) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(rand.New(rand.NewSource(seed)), log)
}

func mustCard(t *testing.T, id string) domain.Card {
	t.Helper()
	c, ok := domain.FindCard(domain.NewDeck(), id)
	if !ok {
		t.Fatalf("no such card %s", id)
	}
	return c
}

func TestNewGame(t *testing.T) {
	svc := testService(1)
	g, events := svc.NewGame(config.Default())

	assert.NotEmpty(t, g.SessionID)
	assert.Len(t, g.Players, 4)
	assert.True(t, g.Players[0].IsHuman)
	assert.Equal(t, "Charlie Bartom", g.Players[0].Name)
	assert.Equal(t, domain.PhaseDealing, g.Phase)
	assert.Equal(t, 1, g.RoundNumber)
	assert.Equal(t, domain.PassRight, g.PassDirection)

	names := map[string]bool{}
	for _, p := range g.Players[1:] {
		assert.False(t, p.IsHuman)
		assert.Equal(t, domain.AITypeHAL, p.AIType)
		assert.NotEmpty(t, p.Name)
		names[p.Name] = true
	}
	assert.Len(t, names, 3, "bot names are distinct")

	if assert.Len(t, events, 1) {
		assert.Equal(t, EventGameStarted, events[0].Kind)
	}
}

func TestNewGameMixedAssignsDistinctStrategies(t *testing.T) {
	svc := testService(7)
	cfg := config.Default()
	cfg.AIType = config.AIMixed
	g, _ := svc.NewGame(cfg)

	seen := map[domain.AIType]bool{}
	for _, p := range g.Players[1:] {
		seen[p.AIType] = true
	}
	assert.Equal(t, map[domain.AIType]bool{
		domain.AITypeHAL:   true,
		domain.AITypeGEM:   true,
		domain.AITypeGPT52: true,
	}, seen)
}

func TestStartRoundDealsFourSortedHands(t *testing.T) {
	svc := testService(2)
	g, _ := svc.NewGame(config.Default())

	events, ok := svc.StartRound(g)
	assert.True(t, ok)
	assert.Len(t, events, 1)
	assert.Equal(t, domain.PhasePassing, g.Phase)
	assert.Equal(t, g.StartingPlayer(), g.TurnIndex)
	assert.Equal(t, domain.PassRight, g.PassDirection)

	seen := map[string]bool{}
	for _, p := range g.Players {
		assert.Len(t, p.Hand, 13)
		for _, c := range p.Hand {
			assert.False(t, seen[c.ID], "card %s dealt twice", c.ID)
			seen[c.ID] = true
		}
		for i := 1; i < len(p.Hand); i++ {
			prev, cur := p.Hand[i-1], p.Hand[i]
			inOrder := prev.Suit < cur.Suit || (prev.Suit == cur.Suit && prev.Value < cur.Value)
			assert.True(t, inOrder, "hand not sorted at %d", i)
		}
	}
	assert.Len(t, seen, 52)
}

func TestStartRoundRejectedOutsideDealing(t *testing.T) {
	svc := testService(2)
	g, _ := svc.NewGame(config.Default())
	svc.StartRound(g)

	_, ok := svc.StartRound(g)
	assert.False(t, ok)
	assert.Equal(t, domain.PhasePassing, g.Phase)
}

func TestToggleSelectToPass(t *testing.T) {
	svc := testService(3)
	g, _ := svc.NewGame(config.Default())
	svc.StartRound(g)
	p := g.Players[0]

	for _, c := range p.Hand[:3] {
		assert.True(t, svc.ToggleSelectToPass(g, 0, c.ID))
	}
	assert.Len(t, p.SelectedToPass, 3)

	assert.False(t, svc.ToggleSelectToPass(g, 0, p.Hand[3].ID), "selection is capped at 3")
	assert.Len(t, p.SelectedToPass, 3)

	assert.True(t, svc.ToggleSelectToPass(g, 0, p.Hand[0].ID), "toggle off")
	assert.Len(t, p.SelectedToPass, 2)

	assert.False(t, svc.ToggleSelectToPass(g, 0, "clubs-bogus"), "unknown card")
}

func TestSetPassSelection(t *testing.T) {
	svc := testService(3)
	g, _ := svc.NewGame(config.Default())
	svc.StartRound(g)
	p := g.Players[1]

	ids := []string{p.Hand[0].ID, p.Hand[1].ID, p.Hand[2].ID}
	assert.True(t, svc.SetPassSelection(g, 1, ids))
	assert.Equal(t, ids, p.SelectedToPass)

	other := []string{p.Hand[3].ID, p.Hand[4].ID, p.Hand[5].ID}
	assert.False(t, svc.SetPassSelection(g, 1, other), "second selection is absorbed")
	assert.Equal(t, ids, p.SelectedToPass)

	p2 := g.Players[2]
	dup := []string{p2.Hand[0].ID, p2.Hand[0].ID, p2.Hand[1].ID}
	assert.False(t, svc.SetPassSelection(g, 2, dup), "duplicate ids rejected")
}

func selectFirstThree(t *testing.T, svc *Service, g *domain.Game) map[int][]string {
	t.Helper()
	chosen := map[int][]string{}
	for _, p := range g.Players {
		ids := []string{p.Hand[0].ID, p.Hand[1].ID, p.Hand[2].ID}
		if !svc.SetPassSelection(g, p.ID, ids) {
			t.Fatalf("selection rejected for seat %d", p.ID)
		}
		chosen[p.ID] = ids
	}
	return chosen
}

func TestExecutePassMovesCardsAlongDirection(t *testing.T) {
	svc := testService(4)
	g, _ := svc.NewGame(config.Default())
	svc.StartRound(g)
	chosen := selectFirstThree(t, svc, g)

	dir := g.PassDirection
	events, ok := svc.ExecutePass(g)
	assert.True(t, ok)
	assert.Len(t, events, 1)
	assert.Equal(t, domain.PhaseReceiving, g.Phase)

	for i, p := range g.Players {
		assert.Len(t, p.Hand, 13, "hand size conserved")
		assert.Empty(t, p.SelectedToPass)
		from := domain.SourceSeat(i, dir)
		for _, id := range chosen[from] {
			_, held := domain.FindCard(p.Hand, id)
			assert.True(t, held, "seat %d should hold %s from seat %d", i, id, from)
		}
		for _, id := range chosen[i] {
			if domain.SourceSeat(i, dir) == i {
				continue
			}
			_, held := domain.FindCard(p.Hand, id)
			assert.False(t, held, "seat %d still holds passed card %s", i, id)
		}
	}
	assert.ElementsMatch(t, chosen[domain.SourceSeat(0, dir)], cardIDsOf(g.ReceivedCards))
}

func cardIDsOf(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestExecutePassRequiresAllSelections(t *testing.T) {
	svc := testService(4)
	g, _ := svc.NewGame(config.Default())
	svc.StartRound(g)

	_, ok := svc.ExecutePass(g)
	assert.False(t, ok)
	assert.Equal(t, domain.PhasePassing, g.Phase)
}

func TestHoldRoundSkipsTheExchange(t *testing.T) {
	svc := testService(5)
	g, _ := svc.NewGame(config.Default())
	g.RoundNumber = 4 // fourth round of DSC- holds

	_, ok := svc.StartRound(g)
	assert.True(t, ok)
	assert.Equal(t, domain.PassNone, g.PassDirection)

	_, ok = svc.ExecutePass(g)
	assert.False(t, ok, "no exchange on a hold round")

	events, ok := svc.BeginPlay(g)
	assert.True(t, ok)
	assert.Equal(t, domain.PhasePlaying, g.Phase)
	assert.Len(t, events, 1)
}

func TestPlayCardGuards(t *testing.T) {
	svc := testService(6)
	g, _ := svc.NewGame(config.Default())
	svc.StartRound(g)
	selectFirstThree(t, svc, g)
	svc.ExecutePass(g)
	svc.BeginPlay(g)

	leader := g.TurnIndex
	wrongSeat := (leader + 1) % 4

	_, ok := svc.PlayCard(g, wrongSeat, g.Players[wrongSeat].Hand[0].ID)
	assert.False(t, ok, "out of turn")

	_, ok = svc.PlayCard(g, leader, "spades-bogus")
	assert.False(t, ok, "card not held")

	// Lead, then force the next seat to follow suit if it can.
	lead := g.Players[leader].Hand[0]
	_, ok = svc.PlayCard(g, leader, lead.ID)
	assert.True(t, ok)
	assert.Equal(t, lead.Suit, g.LeadSuit)

	next := g.TurnIndex
	hand := g.Players[next].Hand
	if domain.CountSuit(hand, g.LeadSuit) > 0 {
		for _, c := range hand {
			if c.Suit != g.LeadSuit {
				_, ok = svc.PlayCard(g, next, c.ID)
				assert.False(t, ok, "must follow suit")
				break
			}
		}
	}

	_, ok = svc.PlayCard(g, leader, g.Players[leader].Hand[0].ID)
	assert.False(t, ok, "leader already played this trick")
}

func TestPlayCardBreaksHearts(t *testing.T) {
	svc := testService(6)
	g, _ := svc.NewGame(config.Default())
	g.Phase = domain.PhasePlaying
	g.TurnIndex = 0
	g.Players[0].Hand = []domain.Card{mustCard(t, "hearts-9")}

	assert.False(t, g.HeartsBroken)
	_, ok := svc.PlayCard(g, 0, "hearts-9")
	assert.True(t, ok)
	assert.True(t, g.HeartsBroken)
}

func TestResolveTrickAwardsWinnerAndLead(t *testing.T) {
	svc := testService(6)
	g, _ := svc.NewGame(config.Default())
	g.Phase = domain.PhasePlaying
	g.LeadSuit = domain.Clubs
	g.CurrentTrick = []domain.PlayedCard{
		{PlayerID: 2, Card: mustCard(t, "clubs-5")},
		{PlayerID: 3, Card: mustCard(t, "clubs-K")},
		{PlayerID: 0, Card: mustCard(t, "hearts-4")},
		{PlayerID: 1, Card: mustCard(t, "clubs-2")},
	}
	for _, p := range g.Players {
		p.Hand = []domain.Card{mustCard(t, "diamonds-2")} // hands not yet drained
	}

	events, ok := svc.ResolveTrick(g)
	assert.True(t, ok)
	assert.Equal(t, 3, g.TurnIndex, "winner leads next")
	assert.Equal(t, 6, g.Players[3].PointsThisRound, "10 minus the 4 of hearts")
	assert.Equal(t, 1, g.Players[3].TricksWon)
	assert.Empty(t, g.CurrentTrick)
	assert.Equal(t, domain.Suit(""), g.LeadSuit)
	assert.Len(t, g.History, 1)
	assert.Equal(t, domain.PhasePlaying, g.Phase, "round continues while cards remain")

	if assert.Len(t, events, 1) {
		assert.Equal(t, EventTrickResolved, events[0].Kind)
	}
}

func TestResolveTrickRejectedOnPartialTrick(t *testing.T) {
	svc := testService(6)
	g, _ := svc.NewGame(config.Default())
	g.Phase = domain.PhasePlaying
	g.CurrentTrick = []domain.PlayedCard{{PlayerID: 0, Card: mustCard(t, "clubs-5")}}

	_, ok := svc.ResolveTrick(g)
	assert.False(t, ok)
}

// finalTrickGame builds a game one resolution away from settlement: every
// hand is empty and the four plays of the last trick sit on the table.
func finalTrickGame(t *testing.T, svc *Service) *domain.Game {
	t.Helper()
	g, _ := svc.NewGame(config.Default())
	g.Phase = domain.PhasePlaying
	g.LeadSuit = domain.Clubs
	g.CurrentTrick = []domain.PlayedCard{
		{PlayerID: 0, Card: mustCard(t, "clubs-5")},
		{PlayerID: 1, Card: mustCard(t, "clubs-A")},
		{PlayerID: 2, Card: mustCard(t, "clubs-2")},
		{PlayerID: 3, Card: mustCard(t, "clubs-3")},
	}
	return g
}

func TestRoundSettlement(t *testing.T) {
	svc := testService(8)
	g := finalTrickGame(t, svc)
	g.Players[0].PointsThisRound = 30
	g.Players[2].PointsThisRound = -16
	g.Players[3].PointsThisRound = 66

	events, ok := svc.ResolveTrick(g)
	assert.True(t, ok)
	assert.Equal(t, domain.PhaseScoring, g.Phase)
	assert.Equal(t, 30, g.Players[0].Score)
	assert.Equal(t, 10, g.Players[1].Score, "winner of the last trick")
	assert.Equal(t, -16, g.Players[2].Score)
	assert.Equal(t, 66, g.Players[3].Score)
	for _, p := range g.Players {
		assert.Equal(t, []int{p.Score}, p.ScoreHistory)
		assert.Zero(t, p.TricksWon)
	}

	kinds := eventKinds(events)
	assert.Contains(t, kinds, EventTrickResolved)
	assert.Contains(t, kinds, EventRoundEnded)
	assert.NotContains(t, kinds, EventGameEnded)
}

func eventKinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestSlamOverridesRoundPoints(t *testing.T) {
	svc := testService(9)
	g := finalTrickGame(t, svc)
	g.Players[1].Name = "Skynet"
	g.Players[1].TricksWon = 12
	g.Players[1].PointsThisRound = -10 // 120 base minus all 130 penalty points

	events, ok := svc.ResolveTrick(g)
	assert.True(t, ok)

	assert.Equal(t, domain.SlamBonus, g.Players[1].Score)
	for _, id := range []int{0, 2, 3} {
		assert.Equal(t, domain.SlamMalus, g.Players[id].Score)
	}
	assert.Equal(t, "CAPPOTTO DI SKYNET!", g.WinningMessage)
	assert.Contains(t, eventKinds(events), EventSlam)
}

func TestGameEndsAtMaxRounds(t *testing.T) {
	svc := testService(10)
	g := finalTrickGame(t, svc)
	g.RoundNumber = g.Config.MaxRounds

	events, ok := svc.ResolveTrick(g)
	assert.True(t, ok)
	assert.Equal(t, domain.PhaseGameOver, g.Phase)
	assert.Contains(t, eventKinds(events), EventGameEnded)
}

func TestGameEndsAtMaxScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
	}{
		{"positive runaway", 95},
		{"negative runaway", -110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testService(11)
			g := finalTrickGame(t, svc)
			g.Players[3].Score = tt.score

			_, ok := svc.ResolveTrick(g)
			assert.True(t, ok)
			assert.Equal(t, domain.PhaseGameOver, g.Phase)
		})
	}
}

func TestNextRound(t *testing.T) {
	svc := testService(12)
	g, _ := svc.NewGame(config.Default())

	assert.False(t, svc.NextRound(g), "only legal from scoring")

	g.Phase = domain.PhaseScoring
	g.RoundNumber = 1
	assert.True(t, svc.NextRound(g))
	assert.Equal(t, 2, g.RoundNumber)
	assert.Equal(t, domain.PhaseDealing, g.Phase)
	assert.Equal(t, domain.PassLeft, g.PassDirection)
}

// TestFullRoundByDrain drives a complete dealt round with the trivial
// "first legal card" policy and checks the bookkeeping holds up.
func TestFullRoundByDrain(t *testing.T) {
	svc := testService(13)
	g, _ := svc.NewGame(config.Default())
	_, ok := svc.StartRound(g)
	assert.True(t, ok)
	selectFirstThree(t, svc, g)
	_, ok = svc.ExecutePass(g)
	assert.True(t, ok)
	_, ok = svc.BeginPlay(g)
	assert.True(t, ok)

	tricks := 0
	for g.Phase == domain.PhasePlaying {
		if len(g.CurrentTrick) == 4 {
			_, ok := svc.ResolveTrick(g)
			if !assert.True(t, ok) {
				return
			}
			tricks++
			continue
		}
		p := g.Players[g.TurnIndex]
		legal := domain.LegalMoves(p.Hand, g.CurrentTrick, g.LeadSuit)
		if !assert.NotEmpty(t, legal, fmt.Sprintf("seat %d has no legal move", p.ID)) {
			return
		}
		_, ok := svc.PlayCard(g, p.ID, legal[0].ID)
		if !assert.True(t, ok) {
			return
		}
	}

	assert.Equal(t, 13, tricks)
	assert.Equal(t, domain.PhaseScoring, g.Phase)
	assert.Len(t, g.History, 13)

	totalPoints := 0
	for _, p := range g.Players {
		assert.Empty(t, p.Hand)
		totalPoints += p.Score
		assert.Len(t, p.ScoreHistory, 1)
	}
	// 130 base points minus 104 hearts minus the 26-point queen. A slam
	// settlement also sums to zero, so this holds for any seed.
	assert.Equal(t, 0, totalPoints)
}
