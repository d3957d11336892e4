// Package cards holds the read-only card reference data the engine consumes.
// Cards are immutable global data keyed by id; game state only ever stores
// the ids.
package cards

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

var (
	// ErrInvalidCard means a card definition failed validation.
	ErrInvalidCard = errors.New("invalid card definition")
	// ErrDuplicateCard means two definitions share an id.
	ErrDuplicateCard = errors.New("duplicate card id")
)

// CardID identifies a card in the reference table. Zero is never a valid id.
type CardID int

// Age is a card's rank, 1 to 10, and names the matching supply pile.
type Age int

// MaxAge is the highest printed age. A draw that would need more than
// MaxAge is the score-victory trigger, not a pile lookup.
const MaxAge Age = 10

// Color is one of the five stack colors.
type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
	Purple

	// ColorCount is the number of stack colors on a board.
	ColorCount = 5
)

var colorNames = []string{"red", "yellow", "green", "blue", "purple"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// Valid reports whether c is one of the five colors.
func (c Color) Valid() bool {
	return c >= 0 && int(c) < ColorCount
}

// Icon is a symbol printed on a card. IconNone marks an empty position.
type Icon int

const (
	IconNone Icon = iota
	Castle
	Crown
	Leaf
	Lightbulb
	Factory
	Clock
)

var iconNames = []string{"none", "castle", "crown", "leaf", "lightbulb", "factory", "clock"}

func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return fmt.Sprintf("icon(%d)", int(i))
	}
	return iconNames[i]
}

// Valid reports whether i is a real symbol (not IconNone).
func (i Icon) Valid() bool {
	return i > IconNone && i <= Clock
}

// Position indexes the four icon positions on a card face.
type Position int

const (
	PosTop Position = iota
	PosLeft
	PosMiddle
	PosRight

	// PositionCount is the number of icon positions on a card.
	PositionCount = 4
)

// Dogma describes one printed dogma effect. The executable scripts live in
// the engine's effect registry; this is the reference text.
type Dogma struct {
	Demand bool   `json:"demand"`
	Text   string `json:"text"`
}

// Card is a single immutable card definition.
type Card struct {
	ID        CardID               `json:"id"`
	Title     string               `json:"title"`
	Age       Age                  `json:"age"`
	Color     Color                `json:"color"`
	Icons     [PositionCount]Icon  `json:"icons"`
	DogmaIcon Icon                 `json:"dogma_icon"`
	Dogmas    []Dogma              `json:"dogmas"`
}

// Set is a validated, id-keyed card table. It is immutable after
// construction; the engine receives one by injection.
type Set struct {
	byID  map[CardID]Card
	ids   []CardID
	byAge map[Age][]CardID
}

// NewSet validates the definitions and builds a Set.
func NewSet(list []Card) (*Set, error) {
	s := &Set{
		byID:  make(map[CardID]Card, len(list)),
		byAge: make(map[Age][]CardID),
	}

	for _, c := range list {
		if c.ID <= 0 {
			return nil, fmt.Errorf("card %q: id must be positive: %w", c.Title, ErrInvalidCard)
		}
		if c.Title == "" {
			return nil, fmt.Errorf("card %d: empty title: %w", c.ID, ErrInvalidCard)
		}
		if c.Age < 1 || c.Age > MaxAge {
			return nil, fmt.Errorf("card %q: age %d out of range: %w", c.Title, c.Age, ErrInvalidCard)
		}
		if !c.Color.Valid() {
			return nil, fmt.Errorf("card %q: bad color %d: %w", c.Title, int(c.Color), ErrInvalidCard)
		}
		if !c.DogmaIcon.Valid() {
			return nil, fmt.Errorf("card %q: bad dogma icon: %w", c.Title, ErrInvalidCard)
		}
		if len(c.Dogmas) > 3 {
			return nil, fmt.Errorf("card %q: more than three dogma effects: %w", c.Title, ErrInvalidCard)
		}
		if _, exists := s.byID[c.ID]; exists {
			return nil, fmt.Errorf("card id %d: %w", c.ID, ErrDuplicateCard)
		}

		s.byID[c.ID] = c
		s.ids = append(s.ids, c.ID)
		s.byAge[c.Age] = append(s.byAge[c.Age], c.ID)
	}

	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })
	for _, ids := range s.byAge {
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	return s, nil
}

// Card looks up a definition by id.
func (s *Set) Card(id CardID) (Card, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// IDs returns every card id in the set, ascending.
func (s *Set) IDs() []CardID {
	out := make([]CardID, len(s.ids))
	copy(out, s.ids)
	return out
}

// AgeIDs returns the ids of the given age, ascending. This is the canonical
// pre-shuffle pile order, so setup is deterministic for a given seed.
func (s *Set) AgeIDs(a Age) []CardID {
	ids := s.byAge[a]
	out := make([]CardID, len(ids))
	copy(out, ids)
	return out
}

// Len returns the number of cards in the set.
func (s *Set) Len() int {
	return len(s.ids)
}

// LoadJSON reads a card table produced by the data-extraction collaborator.
func LoadJSON(r io.Reader) (*Set, error) {
	var list []Card
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding card table: %w", err)
	}
	return NewSet(list)
}
