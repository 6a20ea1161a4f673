package app

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"peppa/internal/config"
	"peppa/internal/domain"
)

// botNamePool is the roster the three bot seats draw their names from.
var botNamePool = []string{
	"Eto Demerzel", "Bomb #20", "HAL 9000", "Joshua WOPR",
	"MU-TH-UR 6000", "Skynet", "Nexus-6", "GERTY",
	"Robbie", "SAM-104", "T-800", "Roy Batty",
}

// Service contains the round state machine's use-cases, operating on a
// *domain.Game owned by the caller. Illegal intents are absorbed: every
// mutating method reports acceptance and leaves the state untouched when
// the intent does not fit the current phase, turn, or hand.
type Service struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// NewService constructs a Service with the provided rng or a time-seeded
// default, logging through the given logger.
func NewService(rng *rand.Rand, log logrus.FieldLogger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{rng: rng, log: log}
}

// NewGame creates a session from a confirmed configuration: four seats, bot
// strategy assignment, a fixed random dealer offset, and round 1 forced to
// pass right regardless of the configured cycle.
func (s *Service) NewGame(cfg config.GameConfig) (*domain.Game, []Event) {
	cfg = cfg.Normalize()

	var ais [3]domain.AIType
	if cfg.AIType == config.AIMixed {
		mixed := []domain.AIType{domain.AITypeHAL, domain.AITypeGEM, domain.AITypeGPT52}
		s.rng.Shuffle(len(mixed), func(i, j int) { mixed[i], mixed[j] = mixed[j], mixed[i] })
		copy(ais[:], mixed)
	} else {
		t := domain.AIType(cfg.AIType)
		ais = [3]domain.AIType{t, t, t}
	}

	names := append([]string(nil), botNamePool...)
	s.rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	g := &domain.Game{
		SessionID:     uuid.NewString(),
		TurnIndex:     0,
		RoundNumber:   1,
		PassDirection: domain.PassRight,
		Phase:         domain.PhaseDealing,
		DealerOffset:  s.rng.Intn(4),
		Config:        cfg,
	}
	g.Players = []*domain.Player{
		{ID: 0, Name: cfg.PlayerName, IsHuman: true},
		{ID: 1, Name: names[0], AIType: ais[0]},
		{ID: 2, Name: names[1], AIType: ais[1]},
		{ID: 3, Name: names[2], AIType: ais[2]},
	}

	s.log.WithFields(logrus.Fields{
		"session": g.SessionID,
		"ais":     ais,
	}).Info("new game created")

	return g, []Event{{Kind: EventGameStarted, Payload: GameStartedPayload{
		SessionID: g.SessionID,
		AITypes:   ais,
	}}}
}

// StartRound deals the next round: a fresh shuffled deck split into four
// sorted 13-card hands, per-round fields reset, pass direction computed for
// the round, and the lead handed to the rotating starting seat.
func (s *Service) StartRound(g *domain.Game) ([]Event, bool) {
	if g.Phase != domain.PhaseDealing {
		s.rejected(g, "start_round", nil)
		return nil, false
	}

	deck := domain.NewDeck()
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	for i, p := range g.Players {
		p.Hand = append([]domain.Card(nil), deck[i*13:(i+1)*13]...)
		domain.SortHand(p.Hand)
		p.PointsThisRound = 0
		p.TricksWon = 0
		p.SelectedToPass = nil
	}

	g.PassDirection = domain.DirectionForRound(g.RoundNumber, g.Config.PassSequence)
	g.Phase = domain.PhasePassing
	g.CurrentTrick = nil
	g.TurnIndex = g.StartingPlayer()
	g.HeartsBroken = false
	g.LeadSuit = ""
	g.ReceivedCards = nil
	g.WinningMessage = ""
	g.History = nil

	s.log.WithFields(logrus.Fields{
		"round":     g.RoundNumber,
		"direction": g.PassDirection,
		"dealer":    g.DealerIndex(),
	}).Info("round dealt")

	return []Event{{Kind: EventRoundStarted, Payload: RoundStartedPayload{
		Round:       g.RoundNumber,
		Direction:   g.PassDirection,
		DealerIndex: g.DealerIndex(),
	}}}, true
}

// ToggleSelectToPass flips a card in and out of a seat's pass selection.
// Attempts to grow the selection past 3 are absorbed.
func (s *Service) ToggleSelectToPass(g *domain.Game, playerID int, cardID string) bool {
	if g.Phase != domain.PhasePassing || g.PassDirection == domain.PassNone {
		return false
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return false
	}
	if _, ok := domain.FindCard(p.Hand, cardID); !ok {
		return false
	}
	if p.HasSelected(cardID) {
		next := make([]string, 0, len(p.SelectedToPass))
		for _, id := range p.SelectedToPass {
			if id != cardID {
				next = append(next, id)
			}
		}
		p.SelectedToPass = next
		return true
	}
	if len(p.SelectedToPass) >= 3 {
		return false
	}
	p.SelectedToPass = append(p.SelectedToPass, cardID)
	return true
}

// SetPassSelection installs a bot's full pass selection in one shot. A seat
// that already selected keeps its original choice, which also makes
// repeated or stale computations harmless.
func (s *Service) SetPassSelection(g *domain.Game, playerID int, cardIDs []string) bool {
	if g.Phase != domain.PhasePassing || g.PassDirection == domain.PassNone {
		return false
	}
	p := g.PlayerByID(playerID)
	if p == nil || len(p.SelectedToPass) > 0 || len(cardIDs) != 3 {
		return false
	}
	seen := map[string]bool{}
	for _, id := range cardIDs {
		if _, ok := domain.FindCard(p.Hand, id); !ok || seen[id] {
			return false
		}
		seen[id] = true
	}
	p.SelectedToPass = append([]string(nil), cardIDs...)
	return true
}

// AllSelected reports whether every seat has exactly 3 cards marked.
func (s *Service) AllSelected(g *domain.Game) bool {
	for _, p := range g.Players {
		if len(p.SelectedToPass) != 3 {
			return false
		}
	}
	return true
}

// ExecutePass performs the simultaneous exchange for the round's direction.
// Per seat i the three selected cards leave the hand and the cards selected
// by SourceSeat(i) arrive, so hand sizes are conserved at 13.
func (s *Service) ExecutePass(g *domain.Game) ([]Event, bool) {
	if g.Phase != domain.PhasePassing || g.PassDirection == domain.PassNone || !s.AllSelected(g) {
		s.rejected(g, "execute_pass", nil)
		return nil, false
	}

	outgoing := make([][]domain.Card, 4)
	for i, p := range g.Players {
		for _, id := range p.SelectedToPass {
			if c, ok := domain.FindCard(p.Hand, id); ok {
				outgoing[i] = append(outgoing[i], c)
			}
		}
	}

	for i, p := range g.Players {
		from := domain.SourceSeat(i, g.PassDirection)
		p.Hand = append(domain.RemoveCards(p.Hand, p.SelectedToPass), outgoing[from]...)
		domain.SortHand(p.Hand)
		p.SelectedToPass = nil
	}

	g.ReceivedCards = outgoing[domain.SourceSeat(0, g.PassDirection)]
	g.Phase = domain.PhaseReceiving
	g.TurnIndex = g.StartingPlayer()

	s.log.WithField("direction", g.PassDirection).Info("pass executed")

	return []Event{{Kind: EventPassExecuted, Payload: PassExecutedPayload{
		Direction:     g.PassDirection,
		ReceivedCards: g.ReceivedCards,
	}}}, true
}

// BeginPlay acknowledges the exchange (or the lack of one on a hold round)
// and opens trick play.
func (s *Service) BeginPlay(g *domain.Game) ([]Event, bool) {
	holdRound := g.Phase == domain.PhasePassing && g.PassDirection == domain.PassNone
	if g.Phase != domain.PhaseReceiving && !holdRound {
		s.rejected(g, "begin_play", nil)
		return nil, false
	}
	g.Phase = domain.PhasePlaying
	return []Event{{Kind: EventPlayStarted}}, true
}

// PlayCard commits one card to the current trick. The intent is absorbed
// unless it is the seat's turn, the seat has not already played, the card is
// held, and the card is legal against the lead suit.
func (s *Service) PlayCard(g *domain.Game, playerID int, cardID string) ([]Event, bool) {
	if g.Phase != domain.PhasePlaying || len(g.CurrentTrick) >= 4 {
		s.rejected(g, "play_card", logrus.Fields{"player": playerID, "card": cardID})
		return nil, false
	}
	if g.TurnIndex != playerID || g.HasPlayedInTrick(playerID) {
		s.rejected(g, "play_card", logrus.Fields{"player": playerID, "card": cardID})
		return nil, false
	}
	p := g.PlayerByID(playerID)
	if p == nil {
		return nil, false
	}
	card, ok := domain.FindCard(p.Hand, cardID)
	if !ok || !domain.IsLegalMove(p.Hand, g.CurrentTrick, g.LeadSuit, card) {
		s.rejected(g, "play_card", logrus.Fields{"player": playerID, "card": cardID})
		return nil, false
	}

	isLead := len(g.CurrentTrick) == 0
	p.Hand = domain.RemoveCard(p.Hand, card.ID)
	g.CurrentTrick = append(g.CurrentTrick, domain.PlayedCard{PlayerID: playerID, Card: card})
	g.TurnIndex = (g.TurnIndex + 1) % 4
	if isLead {
		g.LeadSuit = card.Suit
	}
	if card.Suit == domain.Hearts {
		g.HeartsBroken = true
	}

	events := []Event{{Kind: EventCardPlayed, Payload: CardPlayedPayload{
		PlayerID: playerID,
		Card:     card,
		NextTurn: g.TurnIndex,
		LeadSuit: g.LeadSuit,
	}}}
	if len(g.CurrentTrick) == 4 {
		events = append(events, Event{Kind: EventTrickComplete})
	}
	return events, true
}

// ResolveTrick commits a full trick: the winner takes the trick's value and
// the lead, and the round settles when the hands are drained. Resolution is
// pure given the four plays; any display delay happens before this call.
func (s *Service) ResolveTrick(g *domain.Game) ([]Event, bool) {
	if g.Phase != domain.PhasePlaying || len(g.CurrentTrick) != 4 {
		s.rejected(g, "resolve_trick", nil)
		return nil, false
	}

	winner := domain.TrickWinner(g.CurrentTrick, g.LeadSuit)
	cards := domain.TrickCards(g.CurrentTrick)
	points := domain.TrickValue(cards)

	wp := g.PlayerByID(winner)
	wp.PointsThisRound += points
	wp.TricksWon++
	g.History = append(g.History, domain.TrickRecord{
		Plays:    g.CurrentTrick,
		WinnerID: winner,
		Points:   points,
	})
	g.CurrentTrick = nil
	g.LeadSuit = ""
	g.TurnIndex = winner

	events := []Event{{Kind: EventTrickResolved, Payload: TrickResolvedPayload{
		WinnerID: winner,
		Points:   points,
		Cards:    cards,
	}}}

	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return events, true
		}
	}
	return append(events, s.settleRound(g)...), true
}

// settleRound applies slam override, folds round points into the cumulative
// scores, and decides between the scoring screen and game over.
func (s *Service) settleRound(g *domain.Game) []Event {
	var events []Event

	if slam := domain.SlamPlayer(g.Players); slam != nil {
		msg := fmt.Sprintf("CAPPOTTO DI %s!", strings.ToUpper(slam.Name))
		g.WinningMessage = msg
		for _, p := range g.Players {
			if p.ID == slam.ID {
				p.PointsThisRound = domain.SlamBonus
			} else {
				p.PointsThisRound = domain.SlamMalus
			}
		}
		s.log.WithField("player", slam.Name).Info("slam")
		events = append(events, Event{Kind: EventSlam, Payload: SlamPayload{
			PlayerID: slam.ID,
			Message:  msg,
		}})
	}

	var points, scores [4]int
	for i, p := range g.Players {
		p.Score += p.PointsThisRound
		p.ScoreHistory = append(p.ScoreHistory, p.PointsThisRound)
		p.TricksWon = 0
		points[i] = p.PointsThisRound
		scores[i] = p.Score
	}

	events = append(events, Event{Kind: EventRoundEnded, Payload: RoundEndedPayload{
		Round:  g.RoundNumber,
		Points: points,
		Scores: scores,
	}})

	if s.gameOver(g) {
		g.Phase = domain.PhaseGameOver
		s.log.WithField("rounds", g.RoundNumber).Info("game over")
		return append(events, Event{Kind: EventGameEnded, Payload: GameEndedPayload{
			Rounds: g.RoundNumber,
			Scores: scores,
		}})
	}
	g.Phase = domain.PhaseScoring
	return events
}

// gameOver checks the two termination conditions after settlement.
func (s *Service) gameOver(g *domain.Game) bool {
	if g.RoundNumber >= g.Config.MaxRounds {
		return true
	}
	for _, p := range g.Players {
		if abs(p.Score) >= g.Config.MaxScore {
			return true
		}
	}
	return false
}

// NextRound advances from the scoring screen into the next deal.
func (s *Service) NextRound(g *domain.Game) bool {
	if g.Phase != domain.PhaseScoring {
		s.rejected(g, "next_round", nil)
		return false
	}
	g.RoundNumber++
	g.PassDirection = domain.DirectionForRound(g.RoundNumber, g.Config.PassSequence)
	g.Phase = domain.PhaseDealing
	return true
}

func (s *Service) rejected(g *domain.Game, intent string, fields logrus.Fields) {
	entry := s.log.WithField("intent", intent).WithField("phase", g.Phase)
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Debug("intent rejected")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
