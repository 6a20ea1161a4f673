package bot

import (
	"github.com/sirupsen/logrus"

	"peppa/internal/domain"
)

// Agent binds a strategy to a seat and shields the rest of the system from
// strategy failures: any error degrades to a trivially legal decision
// instead of stalling the game.
type Agent struct {
	PlayerID int
	Strategy Strategy
	Log      logrus.FieldLogger
}

func NewAgent(playerID int, strategy Strategy, log logrus.FieldLogger) *Agent {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Agent{PlayerID: playerID, Strategy: strategy, Log: log}
}

// Pass returns the three card IDs the agent wants to give away. On strategy
// failure it falls back to the first three cards in hand.
func (a *Agent) Pass(g *domain.Game) []string {
	p := g.PlayerByID(a.PlayerID)
	if p == nil || len(p.Hand) == 0 {
		return nil
	}
	ids, err := a.Strategy.ComputePass(p.Hand)
	if err != nil || len(ids) != 3 {
		a.Log.WithError(err).WithField("player", a.PlayerID).
			Warn("pass computation failed, using fallback")
		n := 3
		if len(p.Hand) < n {
			n = len(p.Hand)
		}
		ids = make([]string, 0, n)
		for _, c := range p.Hand[:n] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Play returns the card the agent wants to play. On strategy failure it
// falls back to the first legal card.
func (a *Agent) Play(g *domain.Game) (domain.Card, bool) {
	p := g.PlayerByID(a.PlayerID)
	if p == nil || len(p.Hand) == 0 {
		return domain.Card{}, false
	}
	card, err := a.Strategy.ComputeMove(g, a.PlayerID)
	if err == nil && domain.IsLegalMove(p.Hand, g.CurrentTrick, g.LeadSuit, card) {
		return card, true
	}
	a.Log.WithError(err).WithField("player", a.PlayerID).
		Warn("move computation failed, using fallback")
	legal := domain.LegalMoves(p.Hand, g.CurrentTrick, g.LeadSuit)
	if len(legal) == 0 {
		return domain.Card{}, false
	}
	return legal[0], true
}
