package innovation

import (
	"fmt"

	"github.com/innovation-engine/innovation/cards"
)

// The state-manipulation primitives. Each mutates the given snapshot in
// place and appends events to its log; ProcessAction clones before calling
// them so the caller's previous snapshot is never touched. Each validates
// that the moved card is actually present in the claimed source zone --
// preconditions are the caller's responsibility, but the primitive is the
// last line of defense.

// DrawCard draws the top card of the requested age's pile into the
// player's hand. An empty pile falls forward to the next higher non-empty
// age. If no pile of age <= MaxAge can serve, the game ends immediately by
// score victory and the zero CardID is returned; callers must check the
// phase before continuing.
func (e *Engine) DrawCard(g *GameData, p PlayerID, age cards.Age) (cards.CardID, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("bad player %d: %w", p, ErrInvalidArgument)
	}
	if age < 1 {
		return 0, fmt.Errorf("draw age must be positive, got %d: %w", age, ErrInvalidArgument)
	}
	if g.Phase.State == GameOver {
		return 0, ErrGameOver
	}

	a := age
	for a <= cards.MaxAge && len(g.Shared.Pile(a).Cards) == 0 {
		a++
	}
	if a > cards.MaxAge {
		// the score-victory trigger, not a draw
		e.endByScore(g)
		return 0, nil
	}

	pile := g.Shared.Pile(a)
	id := pile.Cards[0]
	pile.Cards = pile.Cards[1:]
	board := g.Player(p)
	board.Hand = append(board.Hand, id)

	g.logEvent(GameEvent{
		Type:     EventDrawn,
		Player:   p,
		Card:     id,
		Age:      a,
		FromZone: ZoneSupply,
		ToZone:   ZoneHand,
		ToPlayer: p,
	})
	return id, nil
}

// MeldCard moves a card from the named zone to the top of its color stack.
func (e *Engine) MeldCard(g *GameData, p PlayerID, id cards.CardID, from ZoneKind) error {
	if err := e.removeCard(g, ZoneRef{Player: p, Kind: from}, id); err != nil {
		return err
	}
	card := e.card(id)
	stack := &g.Player(p).Stacks[card.Color]
	stack.Cards = append(stack.Cards, id)

	g.logEvent(GameEvent{
		Type:       EventMelded,
		Player:     p,
		Card:       id,
		Age:        card.Age,
		FromZone:   from,
		FromPlayer: p,
		ToZone:     ZoneBoard,
		ToPlayer:   p,
	})
	return nil
}

// TuckCard moves a card from the named zone to the bottom of its color
// stack.
func (e *Engine) TuckCard(g *GameData, p PlayerID, id cards.CardID, from ZoneKind) error {
	if err := e.removeCard(g, ZoneRef{Player: p, Kind: from}, id); err != nil {
		return err
	}
	card := e.card(id)
	stack := &g.Player(p).Stacks[card.Color]
	stack.Cards = append([]cards.CardID{id}, stack.Cards...)

	g.logEvent(GameEvent{
		Type:       EventTucked,
		Player:     p,
		Card:       id,
		Age:        card.Age,
		FromZone:   from,
		FromPlayer: p,
		ToZone:     ZoneBoard,
		ToPlayer:   p,
	})
	return nil
}

// ScoreCard moves a card from the named zone to the player's score pile.
func (e *Engine) ScoreCard(g *GameData, p PlayerID, id cards.CardID, from ZoneKind) error {
	if err := e.removeCard(g, ZoneRef{Player: p, Kind: from}, id); err != nil {
		return err
	}
	board := g.Player(p)
	board.Scores = append(board.Scores, id)

	g.logEvent(GameEvent{
		Type:       EventScored,
		Player:     p,
		Card:       id,
		Age:        e.card(id).Age,
		FromZone:   from,
		FromPlayer: p,
		ToZone:     ZoneScore,
		ToPlayer:   p,
	})
	return nil
}

// ReturnCard moves a card from the named zone to the bottom of its age's
// supply pile.
func (e *Engine) ReturnCard(g *GameData, p PlayerID, id cards.CardID, from ZoneKind) error {
	if err := e.removeCard(g, ZoneRef{Player: p, Kind: from}, id); err != nil {
		return err
	}
	card := e.card(id)
	pile := g.Shared.Pile(card.Age)
	pile.Cards = append(pile.Cards, id)

	g.logEvent(GameEvent{
		Type:       EventReturned,
		Player:     p,
		Card:       id,
		Age:        card.Age,
		FromZone:   from,
		FromPlayer: p,
		ToZone:     ZoneSupply,
	})
	return nil
}

// TransferCard moves a card between arbitrary named zones, preserving
// ordering rules: a transfer onto a board melds on top of the color stack,
// onto a supply pile goes to the bottom.
func (e *Engine) TransferCard(g *GameData, id cards.CardID, from, to ZoneRef) error {
	if err := e.removeCard(g, from, id); err != nil {
		return err
	}
	card := e.card(id)

	switch to.Kind {
	case ZoneHand:
		b := g.Player(to.Player)
		b.Hand = append(b.Hand, id)
	case ZoneScore:
		b := g.Player(to.Player)
		b.Scores = append(b.Scores, id)
	case ZoneBoard:
		stack := &g.Player(to.Player).Stacks[card.Color]
		stack.Cards = append(stack.Cards, id)
	case ZoneSupply:
		pile := g.Shared.Pile(card.Age)
		pile.Cards = append(pile.Cards, id)
	default:
		return fmt.Errorf("cannot transfer into zone %q: %w", to.Kind, ErrInvalidArgument)
	}

	g.logEvent(GameEvent{
		Type:       EventTransferred,
		Player:     to.Player,
		Card:       id,
		Age:        card.Age,
		FromZone:   from.Kind,
		FromPlayer: from.Player,
		ToZone:     to.Kind,
		ToPlayer:   to.Player,
	})
	return nil
}

// SplayColor sets the splay direction of a player's color stack. The stack
// must hold at least two cards; splaying a shorter stack is a contract
// violation, not a no-op.
func (e *Engine) SplayColor(g *GameData, p PlayerID, color cards.Color, dir SplayDirection) error {
	if !color.Valid() {
		return fmt.Errorf("bad color %d: %w", int(color), ErrInvalidArgument)
	}
	if !ValidSplay(dir) || dir == SplayNone {
		return fmt.Errorf("bad splay direction %q: %w", dir, ErrInvalidArgument)
	}

	stack := &g.Player(p).Stacks[color]
	if len(stack.Cards) < 2 {
		return fmt.Errorf("cannot splay %s stack of %d card(s): %w", color, len(stack.Cards), ErrPreconditionViolation)
	}

	prev := stack.Splay
	stack.Splay = dir

	g.logEvent(GameEvent{
		Type:      EventSplayed,
		Player:    p,
		Color:     color,
		Direction: dir,
		Previous:  prev,
	})
	return nil
}

// TopCard returns the top card of one color stack.
func (e *Engine) TopCard(g *GameData, p PlayerID, color cards.Color) (cards.CardID, bool) {
	if !color.Valid() {
		return 0, false
	}
	return g.Player(p).Stacks[color].Top()
}

// TopCards returns the top card of every non-empty stack in color order.
func (e *Engine) TopCards(g *GameData, p PlayerID) []cards.CardID {
	return g.Player(p).TopCards()
}

// ScoreTotal sums the ages of the cards in a player's score pile.
func (e *Engine) ScoreTotal(g *GameData, p PlayerID) int {
	total := 0
	for _, id := range g.Player(p).Scores {
		total += int(e.card(id).Age)
	}
	return total
}

// removeCard takes a card out of the claimed source zone, failing if it is
// not there.
func (e *Engine) removeCard(g *GameData, from ZoneRef, id cards.CardID) error {
	notPresent := func() error {
		return fmt.Errorf("card %d not in %s of player %d: %w", id, from.Kind, from.Player, ErrPreconditionViolation)
	}

	switch from.Kind {
	case ZoneHand:
		b := g.Player(from.Player)
		out, ok := removeID(b.Hand, id)
		if !ok {
			return notPresent()
		}
		b.Hand = out
	case ZoneScore:
		b := g.Player(from.Player)
		out, ok := removeID(b.Scores, id)
		if !ok {
			return notPresent()
		}
		b.Scores = out
	case ZoneBoard:
		card := e.card(id)
		stack := &g.Player(from.Player).Stacks[card.Color]
		out, ok := removeID(stack.Cards, id)
		if !ok {
			return notPresent()
		}
		stack.Cards = out
	case ZoneSupply:
		pile := g.Shared.Pile(e.card(id).Age)
		out, ok := removeID(pile.Cards, id)
		if !ok {
			return notPresent()
		}
		pile.Cards = out
	default:
		return fmt.Errorf("cannot remove from zone %q: %w", from.Kind, ErrInvalidArgument)
	}
	return nil
}

// removeID filters one occurrence of id out of xs into a fresh slice.
func removeID(xs []cards.CardID, id cards.CardID) ([]cards.CardID, bool) {
	for i, x := range xs {
		if x == id {
			out := make([]cards.CardID, 0, len(xs)-1)
			out = append(out, xs[:i]...)
			out = append(out, xs[i+1:]...)
			return out, true
		}
	}
	return xs, false
}
