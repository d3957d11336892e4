package innovation

import (
	"fmt"

	"github.com/innovation-engine/innovation/cards"
)

// Engine binds a card reference table to an effect registry. It holds no
// game state: every operation takes an explicit GameData snapshot, so one
// engine can serve any number of independent games.
type Engine struct {
	cards   *cards.Set
	effects *Registry
}

// NewEngine validates that every card in the set has a registered effect.
// An unregistered id is a startup wiring defect, reported here rather than
// surfacing mid-game.
func NewEngine(set *cards.Set, reg *Registry) (*Engine, error) {
	if set == nil {
		return nil, fmt.Errorf("nil card set: %w", ErrConfiguration)
	}
	if reg == nil {
		return nil, fmt.Errorf("nil effect registry: %w", ErrConfiguration)
	}
	for _, id := range set.IDs() {
		if !reg.Has(id) {
			c, _ := set.Card(id)
			return nil, fmt.Errorf("card %d (%s) has no registered effect: %w", id, c.Title, ErrConfiguration)
		}
	}
	return &Engine{cards: set, effects: reg}, nil
}

// Cards exposes the reference table for read-only use.
func (e *Engine) Cards() *cards.Set {
	return e.cards
}

// card looks up a definition for an id already present in game state.
// NewGame only ever deals ids from the injected set, so a miss here is a
// wiring defect, not a runtime condition.
func (e *Engine) card(id cards.CardID) cards.Card {
	c, ok := e.cards.Card(id)
	if !ok {
		panic(fmt.Sprintf("card %d in game state but not in card set", id))
	}
	return c
}
