package innovation

import "github.com/innovation-engine/innovation/cards"

// EventType names an observable state change.
type EventType string

const (
	EventGameStarted     EventType = "game_started"
	EventDrawn           EventType = "drawn"
	EventMelded          EventType = "melded"
	EventTucked          EventType = "tucked"
	EventScored          EventType = "scored"
	EventReturned        EventType = "returned"
	EventTransferred     EventType = "transferred"
	EventSplayed         EventType = "splayed"
	EventDogmaActivated  EventType = "dogma_activated"
	EventChoiceRequested EventType = "choice_requested"
	EventChoiceAnswered  EventType = "choice_answered"
	EventAchieved        EventType = "achieved"
	EventTurnAdvanced    EventType = "turn_advanced"
	EventGameEnd         EventType = "game_end"
)

// ZoneKind names a zone a card can occupy.
type ZoneKind string

const (
	ZoneHand         ZoneKind = "hand"
	ZoneBoard        ZoneKind = "board"
	ZoneScore        ZoneKind = "score"
	ZoneSupply       ZoneKind = "supply"
	ZoneAchievements ZoneKind = "achievements"
)

// ZoneRef names a concrete zone. Player is ignored for shared zones.
type ZoneRef struct {
	Player PlayerID `json:"player"`
	Kind   ZoneKind `json:"kind"`
}

// GameEvent is one immutable entry of the append-only event log. Each
// carries enough to reconstruct the transition for replay or UI. Flat value
// type: the log is safely shared by copy.
type GameEvent struct {
	Seq    int       `json:"seq"`
	Turn   int       `json:"turn"`
	Type   EventType `json:"type"`
	Player PlayerID  `json:"player"`

	Card cards.CardID `json:"card,omitempty"`
	Age  cards.Age    `json:"age,omitempty"`

	FromZone   ZoneKind `json:"from_zone,omitempty"`
	FromPlayer PlayerID `json:"from_player"`
	ToZone     ZoneKind `json:"to_zone,omitempty"`
	ToPlayer   PlayerID `json:"to_player"`

	// splay bookkeeping; Previous supports undo and audit
	Color     cards.Color    `json:"color"`
	Direction SplayDirection `json:"direction,omitempty"`
	Previous  SplayDirection `json:"previous,omitempty"`

	// game_end only
	Winner    *PlayerID `json:"winner,omitempty"`
	Condition string    `json:"condition,omitempty"`
}

// logEvent stamps sequence and turn and appends to the snapshot's log.
func (g *GameData) logEvent(e GameEvent) {
	e.Seq = len(g.EventLog)
	e.Turn = g.Phase.Turn
	g.EventLog = append(g.EventLog, e)
}
