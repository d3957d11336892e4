package innovation

import (
	"testing"

	"github.com/innovation-engine/innovation/cards"
	utils "github.com/innovation-engine/innovation/internal"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := NewEngine(cards.BaseSet(), BaseRegistry())
	utils.AssertNoError(t, err)
	return e
}

// fixedGame pins the generated id and clock so serialized output depends
// only on the seed and the actions applied.
func fixedGame(t *testing.T, e *Engine, seed uint32) *GameData {
	t.Helper()

	g, err := e.NewGame(seed, WithGameID("fixed-game"), WithCreatedAt(1700000000))
	utils.AssertNoError(t, err)
	return g
}

// findCard locates a card anywhere in the game and reports its zone.
func findCard(g *GameData, id cards.CardID) (ZoneRef, bool) {
	for p := Player0; p < NumPlayers; p++ {
		b := g.Player(p)
		if containsID(b.Hand, id) {
			return ZoneRef{Player: p, Kind: ZoneHand}, true
		}
		if containsID(b.Scores, id) {
			return ZoneRef{Player: p, Kind: ZoneScore}, true
		}
		for c := range b.Stacks {
			if containsID(b.Stacks[c].Cards, id) {
				return ZoneRef{Player: p, Kind: ZoneBoard}, true
			}
		}
	}
	for i := range g.Shared.Piles {
		if containsID(g.Shared.Piles[i].Cards, id) {
			return ZoneRef{Kind: ZoneSupply}, true
		}
	}
	if containsID(g.Shared.Achievements, id) {
		return ZoneRef{Kind: ZoneAchievements}, true
	}
	return ZoneRef{}, false
}

// forceMeld moves a card from wherever setup shuffled it onto the top of
// the player's matching stack, so a test can stage a board position
// without replaying a whole game. Conservation is preserved.
func forceMeld(t *testing.T, e *Engine, g *GameData, p PlayerID, id cards.CardID) {
	t.Helper()

	from, ok := findCard(g, id)
	if !ok {
		t.Fatalf("card %d not found anywhere", id)
	}
	card, _ := e.Cards().Card(id)
	if from.Kind == ZoneAchievements {
		out, _ := removeID(g.Shared.Achievements, id)
		g.Shared.Achievements = out
		g.Player(p).Stacks[card.Color].Cards = append(g.Player(p).Stacks[card.Color].Cards, id)
		return
	}
	utils.AssertNoError(t, e.TransferCard(g, id, from, ZoneRef{Player: p, Kind: ZoneBoard}))
}

// forceHand moves a card into the player's hand the same way.
func forceHand(t *testing.T, e *Engine, g *GameData, p PlayerID, id cards.CardID) {
	t.Helper()

	from, ok := findCard(g, id)
	if !ok {
		t.Fatalf("card %d not found anywhere", id)
	}
	if from.Kind == ZoneAchievements {
		out, _ := removeID(g.Shared.Achievements, id)
		g.Shared.Achievements = out
		g.Player(p).Hand = append(g.Player(p).Hand, id)
		return
	}
	utils.AssertNoError(t, e.TransferCard(g, id, from, ZoneRef{Player: p, Kind: ZoneHand}))
}

// giveScore moves n cards from supply piles into the player's score pile.
func giveScore(t *testing.T, g *GameData, p PlayerID, age cards.Age, n int) {
	t.Helper()

	pile := g.Shared.Pile(age)
	if len(pile.Cards) < n {
		t.Fatalf("age %d pile has %d cards, need %d", age, len(pile.Cards), n)
	}
	b := g.Player(p)
	b.Scores = append(b.Scores, pile.Cards[:n]...)
	pile.Cards = pile.Cards[n:]
}

func eventTypes(g *GameData) []EventType {
	out := make([]EventType, len(g.EventLog))
	for i := range g.EventLog {
		out[i] = g.EventLog[i].Type
	}
	return out
}

func lastEvent(g *GameData) GameEvent {
	return g.EventLog[len(g.EventLog)-1]
}
