package app

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"peppa/internal/bot"
	"peppa/internal/domain"
)

// SchedulerConfig controls the timing of automated play. Zero delays are
// valid and make the scheduler run a game as fast as the goroutine scheduler
// allows, which is how the tests drive it.
type SchedulerConfig struct {
	HumanTurnTimeout time.Duration
	BotTurnTimeout   time.Duration
	BotMoveDelayMin  time.Duration
	BotMoveDelayMax  time.Duration
	BotPassDelayMin  time.Duration
	BotPassDelayMax  time.Duration
	ResolveDelay     time.Duration
}

// DefaultSchedulerConfig matches the interactive pacing: generous human
// clock, a shorter bot clock, humanizing delays on bot decisions, and a
// pause on the completed trick so it can be seen before it is swept.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		HumanTurnTimeout: 40 * time.Second,
		BotTurnTimeout:   20 * time.Second,
		BotMoveDelayMin:  1500 * time.Millisecond,
		BotMoveDelayMax:  3500 * time.Millisecond,
		BotPassDelayMin:  time.Second,
		BotPassDelayMax:  2 * time.Second,
		ResolveDelay:     2 * time.Second,
	}
}

// Scheduler drives a game forward: it executes intents through the Service,
// schedules bot decisions and trick resolution on timers, and enforces turn
// deadlines. All game access happens under its mutex.
//
// Every accepted intent bumps an epoch counter. Timer callbacks capture the
// epoch they were scheduled under and become no-ops once it moves, so a
// decision computed against a stale turn or phase can never land.
type Scheduler struct {
	mu       sync.Mutex
	svc      *Service
	game     *domain.Game
	agents   map[int]*bot.Agent
	cfg      SchedulerConfig
	rng      *rand.Rand
	log      logrus.FieldLogger
	listener func([]Event)
	epoch    uint64
	deadline *time.Timer
	done     chan struct{}
	closed   bool
}

// NewScheduler wraps a freshly created game. Agents maps seat IDs to bot
// agents; seats absent from the map are played externally through the intent
// methods. The listener, if set, receives each intent's events while the
// scheduler lock is held, so it must not call back in.
func NewScheduler(svc *Service, game *domain.Game, agents map[int]*bot.Agent,
	cfg SchedulerConfig, rng *rand.Rand, log logrus.FieldLogger, listener func([]Event)) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{
		svc:      svc,
		game:     game,
		agents:   agents,
		cfg:      cfg,
		rng:      rng,
		log:      log,
		listener: listener,
		done:     make(chan struct{}),
	}
}

// Run kicks the state machine. Subsequent progress comes from intents and
// timers; the returned channel closes when the game reaches its end.
func (sc *Scheduler) Run() <-chan struct{} {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.react()
	return sc.done
}

// Done reports game-over completion.
func (sc *Scheduler) Done() <-chan struct{} { return sc.done }

// Snapshot returns a deep copy of the game for display, safe to read without
// holding any lock.
func (sc *Scheduler) Snapshot() *domain.Game {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.game.Clone()
}

// StartRound, ToggleSelectToPass, ExecutePass, BeginPlay, PlayCard and
// NextRound are the externally driven intents, used by the human seat's UI.

func (sc *Scheduler) StartRound() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	events, ok := sc.svc.StartRound(sc.game)
	sc.accepted(ok, events)
	return ok
}

func (sc *Scheduler) ToggleSelectToPass(playerID int, cardID string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	ok := sc.svc.ToggleSelectToPass(sc.game, playerID, cardID)
	sc.accepted(ok, nil)
	return ok
}

func (sc *Scheduler) ExecutePass() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	events, ok := sc.svc.ExecutePass(sc.game)
	sc.accepted(ok, events)
	return ok
}

func (sc *Scheduler) BeginPlay() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	events, ok := sc.svc.BeginPlay(sc.game)
	sc.accepted(ok, events)
	return ok
}

func (sc *Scheduler) PlayCard(playerID int, cardID string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	events, ok := sc.svc.PlayCard(sc.game, playerID, cardID)
	sc.accepted(ok, events)
	return ok
}

func (sc *Scheduler) NextRound() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	ok := sc.svc.NextRound(sc.game)
	sc.accepted(ok, nil)
	return ok
}

// accepted is called with the lock held after every intent attempt. Accepted
// intents invalidate pending timers and trigger the next reaction.
func (sc *Scheduler) accepted(ok bool, events []Event) {
	if !ok {
		return
	}
	sc.epoch++
	if sc.listener != nil && len(events) > 0 {
		sc.listener(events)
	}
	sc.react()
}

// react inspects the state and schedules whatever automation it calls for.
// Called with the lock held.
func (sc *Scheduler) react() {
	if sc.closed {
		return
	}
	g := sc.game

	switch g.Phase {
	case domain.PhaseDealing:
		// A fully automated table deals itself; with a human seat the UI
		// triggers the deal.
		if sc.autopilot() {
			events, ok := sc.svc.StartRound(g)
			sc.accepted(ok, events)
		}

	case domain.PhasePassing:
		if g.PassDirection == domain.PassNone {
			events, ok := sc.svc.BeginPlay(g)
			sc.accepted(ok, events)
			return
		}
		for id, agent := range sc.agents {
			if p := g.PlayerByID(id); p != nil && len(p.SelectedToPass) == 0 {
				sc.scheduleBotPass(id, agent)
			}
		}
		if sc.svc.AllSelected(g) && sc.autopilot() {
			events, ok := sc.svc.ExecutePass(g)
			sc.accepted(ok, events)
		}

	case domain.PhaseReceiving:
		if sc.autopilot() {
			events, ok := sc.svc.BeginPlay(g)
			sc.accepted(ok, events)
		}

	case domain.PhasePlaying:
		if len(g.CurrentTrick) == 4 {
			sc.scheduleResolve()
			return
		}
		if agent, isBot := sc.agents[g.TurnIndex]; isBot {
			sc.scheduleBotMove(g.TurnIndex, agent)
		}
		sc.armDeadline(g.TurnIndex)

	case domain.PhaseScoring:
		if sc.autopilot() {
			ok := sc.svc.NextRound(g)
			sc.accepted(ok, nil)
		}

	case domain.PhaseGameOver:
		sc.stopDeadline()
		sc.closed = true
		close(sc.done)
	}
}

// autopilot reports whether every seat is agent-driven.
func (sc *Scheduler) autopilot() bool {
	return len(sc.agents) == len(sc.game.Players)
}

func (sc *Scheduler) scheduleBotPass(playerID int, agent *bot.Agent) {
	delay := sc.jitter(sc.cfg.BotPassDelayMin, sc.cfg.BotPassDelayMax)
	// No epoch guard here: SetPassSelection ignores a seat that already
	// selected, so a stale or duplicate computation lands as a no-op.
	time.AfterFunc(delay, func() {
		sc.mu.Lock()
		defer sc.mu.Unlock()
		if sc.closed || sc.game.Phase != domain.PhasePassing {
			return
		}
		ids := agent.Pass(sc.game)
		if sc.svc.SetPassSelection(sc.game, playerID, ids) {
			sc.accepted(true, nil)
		}
	})
}

func (sc *Scheduler) scheduleBotMove(playerID int, agent *bot.Agent) {
	epoch := sc.epoch
	delay := sc.jitter(sc.cfg.BotMoveDelayMin, sc.cfg.BotMoveDelayMax)
	time.AfterFunc(delay, func() {
		sc.mu.Lock()
		defer sc.mu.Unlock()
		if sc.closed || sc.epoch != epoch {
			return
		}
		card, ok := agent.Play(sc.game)
		if !ok {
			return
		}
		events, accepted := sc.svc.PlayCard(sc.game, playerID, card.ID)
		if !accepted {
			// Absorbed despite the legality check; a fallback card keeps
			// the table moving.
			sc.forceMove(playerID)
			return
		}
		sc.accepted(true, events)
	})
}

func (sc *Scheduler) scheduleResolve() {
	epoch := sc.epoch
	time.AfterFunc(sc.cfg.ResolveDelay, func() {
		sc.mu.Lock()
		defer sc.mu.Unlock()
		if sc.closed || sc.epoch != epoch {
			return
		}
		events, ok := sc.svc.ResolveTrick(sc.game)
		sc.accepted(ok, events)
	})
}

// armDeadline starts the turn clock for the seat to act. When it fires the
// scheduler plays for the seat, whoever it belongs to.
func (sc *Scheduler) armDeadline(playerID int) {
	sc.stopDeadline()
	timeout := sc.cfg.HumanTurnTimeout
	if _, isBot := sc.agents[playerID]; isBot {
		timeout = sc.cfg.BotTurnTimeout
	}
	if timeout <= 0 {
		return
	}
	epoch := sc.epoch
	sc.deadline = time.AfterFunc(timeout, func() {
		sc.mu.Lock()
		defer sc.mu.Unlock()
		if sc.closed || sc.epoch != epoch {
			return
		}
		sc.log.WithField("player", playerID).Warn("turn deadline expired")
		sc.forceMove(playerID)
	})
}

func (sc *Scheduler) stopDeadline() {
	if sc.deadline != nil {
		sc.deadline.Stop()
		sc.deadline = nil
	}
}

// forceMove plays the baseline strategy's choice for a stalled seat, falling
// back to the first legal card. Called with the lock held.
func (sc *Scheduler) forceMove(playerID int) {
	g := sc.game
	if g.Phase != domain.PhasePlaying || g.TurnIndex != playerID {
		return
	}
	p := g.PlayerByID(playerID)
	if p == nil || len(p.Hand) == 0 {
		return
	}
	card, err := bot.NewHAL().ComputeMove(g, playerID)
	if err != nil || !domain.IsLegalMove(p.Hand, g.CurrentTrick, g.LeadSuit, card) {
		legal := domain.LegalMoves(p.Hand, g.CurrentTrick, g.LeadSuit)
		if len(legal) == 0 {
			return
		}
		card = legal[0]
	}
	events, ok := sc.svc.PlayCard(g, playerID, card.ID)
	sc.accepted(ok, events)
}

func (sc *Scheduler) jitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(sc.rng.Int63n(int64(max-min)))
}
