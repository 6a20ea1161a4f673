package app

import "peppa/internal/domain"

// EventKind identifies state-machine events surfaced to the display layer.
type EventKind string

const (
	EventGameStarted   EventKind = "game_started"
	EventRoundStarted  EventKind = "round_started"
	EventPassExecuted  EventKind = "pass_executed"
	EventPlayStarted   EventKind = "play_started"
	EventCardPlayed    EventKind = "card_played"
	EventTrickComplete EventKind = "trick_complete"
	EventTrickResolved EventKind = "trick_resolved"
	EventSlam          EventKind = "slam"
	EventRoundEnded    EventKind = "round_ended"
	EventGameEnded     EventKind = "game_ended"
)

// Event is a state-machine event with a kind-specific payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type GameStartedPayload struct {
	SessionID string
	AITypes   [3]domain.AIType // seats 1..3
}

type RoundStartedPayload struct {
	Round       int
	Direction   domain.PassDirection
	DealerIndex int
}

type PassExecutedPayload struct {
	Direction     domain.PassDirection
	ReceivedCards []domain.Card // what seat 0 received
}

type CardPlayedPayload struct {
	PlayerID int
	Card     domain.Card
	NextTurn int
	LeadSuit domain.Suit
}

type TrickResolvedPayload struct {
	WinnerID int
	Points   int
	Cards    []domain.Card
}

type SlamPayload struct {
	PlayerID int
	Message  string
}

type RoundEndedPayload struct {
	Round  int
	Points [4]int // settled pointsThisRound per seat
	Scores [4]int // cumulative after settlement
}

type GameEndedPayload struct {
	Rounds int
	Scores [4]int
}
