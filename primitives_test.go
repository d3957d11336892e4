package innovation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innovation-engine/innovation/cards"
	utils "github.com/innovation-engine/innovation/internal"
)

func TestDrawCard(t *testing.T) {
	e := testEngine(t)

	t.Run("draws the top of the requested pile", func(t *testing.T) {
		g := fixedGame(t, e, 1)
		p := g.Phase.Player
		want := g.Shared.Pile(1).Cards[0]
		before := len(g.Player(p).Hand)

		id, err := e.DrawCard(g, p, 1)
		utils.AssertNoError(t, err)
		assert.Equal(t, want, id)
		assert.Len(t, g.Player(p).Hand, before+1)
		assert.Equal(t, EventDrawn, lastEvent(g).Type)
		assert.Equal(t, cards.Age(1), lastEvent(g).Age)
	})

	t.Run("falls forward past an empty pile", func(t *testing.T) {
		g := fixedGame(t, e, 2)
		for len(g.Shared.Pile(1).Cards) > 0 {
			_, err := e.DrawCard(g, Player0, 1)
			utils.AssertNoError(t, err)
		}

		id, err := e.DrawCard(g, Player0, 1)
		utils.AssertNoError(t, err)
		c, _ := e.Cards().Card(id)
		assert.Equal(t, cards.Age(2), c.Age)
		assert.Equal(t, cards.Age(2), lastEvent(g).Age)
	})

	t.Run("exhausted supply is the score-victory trigger", func(t *testing.T) {
		g := fixedGame(t, e, 3)
		// strand every undrawn card in player 1's score pile
		for i := range g.Shared.Piles {
			pile := &g.Shared.Piles[i]
			g.Player(Player1).Scores = append(g.Player(Player1).Scores, pile.Cards...)
			pile.Cards = []cards.CardID{}
		}

		id, err := e.DrawCard(g, Player0, 1)
		utils.AssertNoError(t, err)
		assert.Equal(t, cards.CardID(0), id)
		assert.Equal(t, GameOver, g.Phase.State)
		assert.Equal(t, VictoryScore, g.Result.Condition)
		assert.Equal(t, Player1, *g.Result.Winner)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		g := fixedGame(t, e, 4)
		_, err := e.DrawCard(g, PlayerID(7), 1)
		utils.AssertErrorIs(t, err, ErrInvalidArgument)
		_, err = e.DrawCard(g, Player0, 0)
		utils.AssertErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestMeldAndTuckOrdering(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 5)

	forceHand(t, e, g, Player0, cards.Archery)  // red age 1
	forceHand(t, e, g, Player0, cards.Metalworking) // red age 1
	forceHand(t, e, g, Player0, cards.Gunpowder) // red age 4

	utils.AssertNoError(t, e.MeldCard(g, Player0, cards.Archery, ZoneHand))
	utils.AssertNoError(t, e.MeldCard(g, Player0, cards.Metalworking, ZoneHand))
	utils.AssertNoError(t, e.TuckCard(g, Player0, cards.Gunpowder, ZoneHand))

	stack := g.Player(Player0).Stacks[cards.Red]
	assert.Equal(t, []cards.CardID{cards.Gunpowder, cards.Archery, cards.Metalworking}, stack.Cards)

	top, ok := e.TopCard(g, Player0, cards.Red)
	utils.AssertTrue(t, ok)
	assert.Equal(t, cards.Metalworking, top)
}

func TestReturnCardGoesToPileBottom(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 6)

	forceHand(t, e, g, Player0, cards.Writing)
	utils.AssertNoError(t, e.ReturnCard(g, Player0, cards.Writing, ZoneHand))

	pile := g.Shared.Pile(1)
	assert.Equal(t, cards.Writing, pile.Cards[len(pile.Cards)-1])
	assert.Equal(t, EventReturned, lastEvent(g).Type)
}

func TestTransferCard(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 7)

	t.Run("onto a board melds on top", func(t *testing.T) {
		forceHand(t, e, g, Player0, cards.Clothing) // green
		err := e.TransferCard(g, cards.Clothing,
			ZoneRef{Player: Player0, Kind: ZoneHand},
			ZoneRef{Player: Player1, Kind: ZoneBoard})
		utils.AssertNoError(t, err)

		top, ok := e.TopCard(g, Player1, cards.Green)
		utils.AssertTrue(t, ok)
		assert.Equal(t, cards.Clothing, top)
	})

	t.Run("into a hand", func(t *testing.T) {
		before := len(g.Player(Player0).Hand)
		err := e.TransferCard(g, cards.Clothing,
			ZoneRef{Player: Player1, Kind: ZoneBoard},
			ZoneRef{Player: Player0, Kind: ZoneHand})
		utils.AssertNoError(t, err)
		assert.Len(t, g.Player(Player0).Hand, before+1)
	})

	t.Run("fails when the card is not in the claimed zone", func(t *testing.T) {
		err := e.TransferCard(g, cards.Clothing,
			ZoneRef{Player: Player1, Kind: ZoneScore},
			ZoneRef{Player: Player0, Kind: ZoneHand})
		utils.AssertErrorIs(t, err, ErrPreconditionViolation)
	})
}

func TestScoreCard(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 8)

	forceHand(t, e, g, Player0, cards.Writing)
	utils.AssertNoError(t, e.ScoreCard(g, Player0, cards.Writing, ZoneHand))
	assert.Equal(t, 1, e.ScoreTotal(g, Player0))

	forceHand(t, e, g, Player0, cards.Physics) // age 5
	utils.AssertNoError(t, e.ScoreCard(g, Player0, cards.Physics, ZoneHand))
	assert.Equal(t, 6, e.ScoreTotal(g, Player0))
}

func TestSplayColor(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 9)

	forceMeld(t, e, g, Player0, cards.Archery)

	t.Run("one-card stack cannot splay", func(t *testing.T) {
		err := e.SplayColor(g, Player0, cards.Red, SplayLeft)
		utils.AssertErrorIs(t, err, ErrPreconditionViolation)
	})

	forceMeld(t, e, g, Player0, cards.Metalworking)

	t.Run("two-card stack splays and logs the previous direction", func(t *testing.T) {
		utils.AssertNoError(t, e.SplayColor(g, Player0, cards.Red, SplayLeft))
		assert.Equal(t, SplayLeft, g.Player(Player0).Stacks[cards.Red].Splay)

		ev := lastEvent(g)
		assert.Equal(t, EventSplayed, ev.Type)
		assert.Equal(t, cards.Red, ev.Color)
		assert.Equal(t, SplayLeft, ev.Direction)
		assert.Equal(t, SplayNone, ev.Previous)

		utils.AssertNoError(t, e.SplayColor(g, Player0, cards.Red, SplayRight))
		assert.Equal(t, SplayLeft, lastEvent(g).Previous)
	})

	t.Run("events name the stack that moved", func(t *testing.T) {
		forceMeld(t, e, g, Player0, cards.Clothing)
		forceMeld(t, e, g, Player0, cards.Sailing) // second green card
		utils.AssertNoError(t, e.SplayColor(g, Player0, cards.Green, SplayLeft))
		green := lastEvent(g)

		utils.AssertNoError(t, e.SplayColor(g, Player0, cards.Red, SplayUp))
		red := lastEvent(g)

		assert.Equal(t, cards.Green, green.Color)
		assert.Equal(t, cards.Red, red.Color)
	})

	t.Run("rejects a bad direction", func(t *testing.T) {
		err := e.SplayColor(g, Player0, cards.Red, SplayNone)
		utils.AssertErrorIs(t, err, ErrInvalidArgument)
		err = e.SplayColor(g, Player0, cards.Red, SplayDirection("sideways"))
		utils.AssertErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRemoveCardLeavesStateAloneOnFailure(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 10)

	events := len(g.EventLog)
	hand := len(g.Player(Player0).Hand)

	err := e.ScoreCard(g, Player0, cards.TheInternet, ZoneHand)
	utils.AssertErrorIs(t, err, ErrPreconditionViolation)
	assert.Len(t, g.EventLog, events)
	assert.Len(t, g.Player(Player0).Hand, hand)
	assert.Len(t, g.Player(Player0).Scores, 0)
}
