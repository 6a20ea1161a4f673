package domain

import "peppa/internal/config"

// Phase represents the lifecycle stage of a session.
type Phase string

const (
	// PhaseSetup is the pre-game state while configuration is being chosen.
	PhaseSetup Phase = "setup"
	// PhaseDealing waits for the next round's deal to be triggered.
	PhaseDealing Phase = "dealing"
	// PhasePassing is the card-exchange selection window.
	PhasePassing Phase = "passing"
	// PhaseReceiving shows the human the cards they were handed.
	PhaseReceiving Phase = "receiving"
	// PhasePlaying is the active trick-play state.
	PhasePlaying Phase = "playing"
	// PhaseScoring is the between-rounds settlement screen.
	PhaseScoring Phase = "scoring"
	// PhaseGameOver is terminal.
	PhaseGameOver Phase = "gameOver"
)

// AIType tags which strategy a bot seat runs.
type AIType string

const (
	AITypeHAL   AIType = "HAL"
	AITypeGEM   AIType = "GEM"
	AITypeGPT52 AIType = "GPT52"
)

// Player holds the state of one seat. Seat 0 is the human.
type Player struct {
	ID              int
	Name            string
	IsHuman         bool
	AIType          AIType // empty for the human
	Hand            []Card
	Score           int // cumulative over rounds
	PointsThisRound int
	TricksWon       int
	SelectedToPass  []string // card IDs, at most 3
	ScoreHistory    []int    // one entry per settled round
}

// HasSelected reports whether the card ID is currently marked for passing.
func (p *Player) HasSelected(cardID string) bool {
	for _, id := range p.SelectedToPass {
		if id == cardID {
			return true
		}
	}
	return false
}

// PlayedCard is one entry of an in-progress trick.
type PlayedCard struct {
	PlayerID int
	Card     Card
}

// TrickRecord is a resolved trick kept in the session history. Bots may read
// it; it is the only cross-trick information legally visible to them.
type TrickRecord struct {
	Plays    []PlayedCard
	WinnerID int
	Points   int
}

// Game is the single source of truth for one session. It is created once at
// game start and mutated in place through its phases until PhaseGameOver.
type Game struct {
	SessionID      string
	Players        []*Player // always 4, indexed by Player.ID
	CurrentTrick   []PlayedCard
	TurnIndex      int
	LeadSuit       Suit // "" when no trick is in progress
	HeartsBroken   bool
	RoundNumber    int
	PassDirection  PassDirection
	Phase          Phase
	WinningMessage string
	ReceivedCards  []Card // what seat 0 got in the last exchange
	History        []TrickRecord
	// DealerOffset is fixed at game start and rotates deal and lead per round.
	DealerOffset int
	Config       config.GameConfig
}

// PlayerByID returns the player with the given seat, or nil.
func (g *Game) PlayerByID(id int) *Player {
	if id < 0 || id >= len(g.Players) {
		return nil
	}
	return g.Players[id]
}

// StartingPlayer returns the seat that leads the current round's first trick.
func (g *Game) StartingPlayer() int {
	return (g.RoundNumber + g.DealerOffset) % 4
}

// DealerIndex returns the display-only dealer seat for the current round.
func (g *Game) DealerIndex() int {
	return (g.RoundNumber - 1 + g.DealerOffset) % 4
}

// HasPlayedInTrick reports whether the seat already committed a card to the
// trick in progress.
func (g *Game) HasPlayedInTrick(playerID int) bool {
	for _, pc := range g.CurrentTrick {
		if pc.PlayerID == playerID {
			return true
		}
	}
	return false
}

// Rank returns the 1-based standing of a seat by score, ties sharing a rank.
// During scoring and game over the fresh round points are already folded
// into Score, so no adjustment is needed there.
func (g *Game) Rank(playerID int) int {
	p := g.PlayerByID(playerID)
	if p == nil {
		return 1
	}
	rank := 1
	seen := map[int]bool{}
	for _, other := range g.Players {
		if other.Score > p.Score && !seen[other.Score] {
			seen[other.Score] = true
			rank++
		}
	}
	return rank
}

// Clone returns a deep copy of the session for lock-free consumption by
// display layers. Strategy code receives the live value instead, under the
// scheduler's lock.
func (g *Game) Clone() *Game {
	out := *g
	out.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp := *p
		cp.Hand = append([]Card(nil), p.Hand...)
		cp.SelectedToPass = append([]string(nil), p.SelectedToPass...)
		cp.ScoreHistory = append([]int(nil), p.ScoreHistory...)
		out.Players[i] = &cp
	}
	out.CurrentTrick = append([]PlayedCard(nil), g.CurrentTrick...)
	out.ReceivedCards = append([]Card(nil), g.ReceivedCards...)
	out.History = make([]TrickRecord, len(g.History))
	for i, tr := range g.History {
		tr.Plays = append([]PlayedCard(nil), tr.Plays...)
		out.History[i] = tr
	}
	return &out
}
