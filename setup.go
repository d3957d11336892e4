package innovation

import (
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/innovation-engine/innovation/cards"
	"github.com/innovation-engine/innovation/rng"
)

// GameOption adjusts a freshly created game. Replays and tests fix the id
// and clock so two games from the same seed serialize identically.
type GameOption func(*GameData)

func WithGameID(id string) GameOption {
	return func(g *GameData) { g.GameID = id }
}

func WithCreatedAt(ts int64) GameOption {
	return func(g *GameData) { g.CreatedAt = ts }
}

// NewGame builds the opening snapshot for a two-player game: supply piles
// shuffled from the seed, one achievement set aside per age 1 through 9,
// and two age-1 cards dealt to each player. The first player's opening
// turn has a single action.
func (e *Engine) NewGame(seed uint32, opts ...GameOption) (*GameData, error) {
	g := &GameData{
		GameID:    uuid.NewV4().String(),
		CreatedAt: time.Now().Unix(),
		Rng:       rng.New(seed).State(),
		Phase: Phase{
			Turn:             1,
			Player:           Player0,
			ActionsRemaining: 1,
			State:            AwaitingAction,
		},
		EventLog: []GameEvent{},
	}

	for p := range g.Players {
		b := &g.Players[p]
		b.Hand = []cards.CardID{}
		b.Scores = []cards.CardID{}
		b.NormalAchievements = []cards.CardID{}
		b.SpecialAchievements = []string{}
		for c := range b.Stacks {
			b.Stacks[c] = ColorStack{Color: cards.Color(c), Cards: []cards.CardID{}, Splay: SplayNone}
		}
	}

	g.Shared.Piles = make([]SupplyPile, cards.MaxAge)
	for age := cards.Age(1); age <= cards.MaxAge; age++ {
		ids := cloneIDs(e.cards.AgeIDs(age))
		g.Rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
		g.Shared.Piles[age-1] = SupplyPile{Age: age, Cards: ids}
	}

	g.Shared.Achievements = []cards.CardID{}
	g.Shared.SpecialAchievements = []string{}
	for age := cards.Age(1); age < cards.MaxAge; age++ {
		pile := g.Shared.Pile(age)
		g.Shared.Achievements = append(g.Shared.Achievements, pile.Cards[0])
		pile.Cards = pile.Cards[1:]
	}

	for _, opt := range opts {
		opt(g)
	}

	g.logEvent(GameEvent{Type: EventGameStarted})

	for p := Player0; p < NumPlayers; p++ {
		for i := 0; i < 2; i++ {
			if _, err := e.DrawCard(g, p, 1); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
