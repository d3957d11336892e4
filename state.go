// Package innovation implements a deterministic two-player rules engine for
// the card game Innovation: the action/choice state machine, the dogma
// resolution protocol, the state-manipulation primitives, the icon
// visibility subsystem, and the checksummed serialization layer that makes
// replays exact.
package innovation

import (
	"github.com/innovation-engine/innovation/cards"
	"github.com/innovation-engine/innovation/rng"
)

// SchemaVersion is the persisted snapshot schema version.
const SchemaVersion = "1"

// AchievementsToWin is the claim count that ends a two-player game.
const AchievementsToWin = 6

// PlayerID identifies one of the two seats.
type PlayerID int

const (
	// Player0 moves first.
	Player0 PlayerID = 0
	// Player1 moves second.
	Player1 PlayerID = 1

	// NumPlayers is fixed; the engine is strictly two-player.
	NumPlayers = 2
)

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	return 1 - p
}

// Valid reports whether p names a seat.
func (p PlayerID) Valid() bool {
	return p == Player0 || p == Player1
}

// PhaseState is the top-level state machine position.
type PhaseState string

const (
	// AwaitingAction means the current player owes a normal action.
	AwaitingAction PhaseState = "awaiting_action"
	// AwaitingChoice means a dogma effect is suspended on a pending choice.
	AwaitingChoice PhaseState = "awaiting_choice"
	// GameOver is terminal; only read queries remain valid.
	GameOver PhaseState = "game_over"
)

// Phase tracks whose turn it is and what the engine is waiting for.
type Phase struct {
	Turn             int        `json:"turn"`
	Player           PlayerID   `json:"player"`
	ActionsRemaining int        `json:"actions_remaining"`
	State            PhaseState `json:"state"`
}

// SplayDirection is how a color stack is fanned out.
type SplayDirection string

const (
	SplayNone  SplayDirection = "none"
	SplayLeft  SplayDirection = "left"
	SplayRight SplayDirection = "right"
	SplayUp    SplayDirection = "up"
)

// ValidSplay reports whether d is a real direction (including none).
func ValidSplay(d SplayDirection) bool {
	switch d {
	case SplayNone, SplayLeft, SplayRight, SplayUp:
		return true
	}
	return false
}

// ColorStack is one color's pile on a player's board, ordered bottom to
// top; the top card is the most recently melded. The splay direction is
// retained for stacks that shrink below two cards but has no visibility
// effect until a second card arrives.
type ColorStack struct {
	Color cards.Color    `json:"color"`
	Cards []cards.CardID `json:"cards"`
	Splay SplayDirection `json:"splay"`
}

// Top returns the stack's top card.
func (s *ColorStack) Top() (cards.CardID, bool) {
	if len(s.Cards) == 0 {
		return 0, false
	}
	return s.Cards[len(s.Cards)-1], true
}

// PlayerBoard is everything one player owns.
type PlayerBoard struct {
	Hand                []cards.CardID               `json:"hand"`
	Stacks              [cards.ColorCount]ColorStack `json:"stacks"`
	Scores              []cards.CardID               `json:"scores"`
	NormalAchievements  []cards.CardID               `json:"normal_achievements"`
	SpecialAchievements []string                     `json:"special_achievements"`
}

// AchievementCount is the player's total claimed achievements.
func (b *PlayerBoard) AchievementCount() int {
	return len(b.NormalAchievements) + len(b.SpecialAchievements)
}

// TopCards returns the top card of every non-empty stack in color order.
func (b *PlayerBoard) TopCards() []cards.CardID {
	var out []cards.CardID
	for i := range b.Stacks {
		if id, ok := b.Stacks[i].Top(); ok {
			out = append(out, id)
		}
	}
	return out
}

// SupplyPile holds the undrawn cards of one age. Index 0 is the top of the
// pile, the next card drawn; returned cards go to the back.
type SupplyPile struct {
	Age   cards.Age      `json:"age"`
	Cards []cards.CardID `json:"cards"`
}

// SharedZones are the supply piles and the unclaimed achievements.
type SharedZones struct {
	Piles               []SupplyPile   `json:"piles"`
	Achievements        []cards.CardID `json:"achievements"`
	SpecialAchievements []string       `json:"special_achievements"`
}

// Pile returns the supply pile for an age in [1,MaxAge].
func (z *SharedZones) Pile(a cards.Age) *SupplyPile {
	if a < 1 || a > cards.MaxAge {
		return nil
	}
	return &z.Piles[a-1]
}

// VictoryResult names the winner and the condition that ended the game.
// A nil Winner with a non-empty Condition is an explicit draw.
type VictoryResult struct {
	Winner    *PlayerID `json:"winner"`
	Condition string    `json:"condition"`
}

// Victory condition names, in check priority order.
const (
	VictoryAchievements = "achievements"
	VictoryScore        = "score"
	VictoryDraw         = "draw"
)

// GameData is the entire authoritative state of one game. Every mutation
// produces a new logical snapshot via Clone; callers must never read a
// previous snapshot after passing it to a mutator.
type GameData struct {
	GameID        string                   `json:"game_id"`
	Version       int                      `json:"version"`
	CreatedAt     int64                    `json:"created_at"`
	Phase         Phase                    `json:"phase"`
	Rng           rng.Rng                  `json:"rng"`
	Players       [NumPlayers]PlayerBoard  `json:"players"`
	Shared        SharedZones              `json:"shared"`
	PendingChoice *Choice                  `json:"pending_choice,omitempty"`
	Result        *VictoryResult           `json:"result,omitempty"`
	EventLog      []GameEvent              `json:"event_log"`
}

// Player returns the board for a seat.
func (g *GameData) Player(p PlayerID) *PlayerBoard {
	return &g.Players[p]
}

// Clone produces a structurally independent copy of the snapshot. No text
// round-trips: copying is ownership-aware so numeric fidelity is exact.
func (g *GameData) Clone() *GameData {
	out := *g

	for p := range out.Players {
		b := &out.Players[p]
		b.Hand = cloneIDs(b.Hand)
		b.Scores = cloneIDs(b.Scores)
		b.NormalAchievements = cloneIDs(b.NormalAchievements)
		b.SpecialAchievements = cloneStrings(b.SpecialAchievements)
		for c := range b.Stacks {
			b.Stacks[c].Cards = cloneIDs(b.Stacks[c].Cards)
		}
	}

	out.Shared.Piles = make([]SupplyPile, len(g.Shared.Piles))
	for i, pile := range g.Shared.Piles {
		out.Shared.Piles[i] = SupplyPile{Age: pile.Age, Cards: cloneIDs(pile.Cards)}
	}
	out.Shared.Achievements = cloneIDs(g.Shared.Achievements)
	out.Shared.SpecialAchievements = cloneStrings(g.Shared.SpecialAchievements)

	if g.PendingChoice != nil {
		pc := g.PendingChoice.clone()
		out.PendingChoice = &pc
	}
	if g.Result != nil {
		r := *g.Result
		if g.Result.Winner != nil {
			w := *g.Result.Winner
			r.Winner = &w
		}
		out.Result = &r
	}

	out.EventLog = make([]GameEvent, len(g.EventLog))
	copy(out.EventLog, g.EventLog)

	return &out
}

func cloneIDs(xs []cards.CardID) []cards.CardID {
	if xs == nil {
		return nil
	}
	out := make([]cards.CardID, len(xs))
	copy(out, xs)
	return out
}

func cloneStrings(xs []string) []string {
	if xs == nil {
		return nil
	}
	out := make([]string, len(xs))
	copy(out, xs)
	return out
}

func cloneInts(xs []int) []int {
	if xs == nil {
		return nil
	}
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}
