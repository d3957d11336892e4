package innovation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innovation-engine/innovation/cards"
	utils "github.com/innovation-engine/innovation/internal"
)

// A tiny card table with hand-placed icons, so visibility sums are exact
// by construction rather than read off the real card data.
func iconFixture(t *testing.T) *Engine {
	t.Helper()

	n := cards.IconNone
	defs := []cards.Card{
		{ID: 1, Title: "LeftCastleA", Age: 1, Color: cards.Red, DogmaIcon: cards.Castle,
			Icons: [4]cards.Icon{n, cards.Castle, n, n}},
		{ID: 2, Title: "LeftCastleB", Age: 1, Color: cards.Red, DogmaIcon: cards.Castle,
			Icons: [4]cards.Icon{n, cards.Castle, n, n}},
		{ID: 3, Title: "LeftCastleC", Age: 1, Color: cards.Red, DogmaIcon: cards.Castle,
			Icons: [4]cards.Icon{n, cards.Castle, n, n}},
		{ID: 4, Title: "RightCastle", Age: 1, Color: cards.Red, DogmaIcon: cards.Castle,
			Icons: [4]cards.Icon{n, n, n, cards.Castle}},
		{ID: 5, Title: "TwinCrown", Age: 1, Color: cards.Blue, DogmaIcon: cards.Crown,
			Icons: [4]cards.Icon{cards.Crown, n, n, cards.Crown}},
	}
	set, err := cards.NewSet(defs)
	utils.AssertNoError(t, err)

	reg := NewRegistry()
	for _, d := range defs {
		utils.AssertNoError(t, reg.Register(d.ID, nil))
	}
	e, err := NewEngine(set, reg)
	utils.AssertNoError(t, err)
	return e
}

func stackOf(g *GameData, p PlayerID, color cards.Color, dir SplayDirection, ids ...cards.CardID) {
	g.Player(p).Stacks[color] = ColorStack{Color: color, Cards: ids, Splay: dir}
}

func TestCountIconsBySplay(t *testing.T) {
	e := iconFixture(t)

	t.Run("unsplayed counts only the top card", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayNone, 1, 2, 3)
		assert.Equal(t, 1, e.CountIcons(g, Player0, cards.Castle))
	})

	t.Run("right splay counts top, left and middle of every card", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayRight, 1, 2, 3)
		assert.Equal(t, 3, e.CountIcons(g, Player0, cards.Castle))

		// a right-position icon on a covered card stays hidden
		stackOf(g, Player0, cards.Red, SplayRight, 4, 1)
		assert.Equal(t, 1, e.CountIcons(g, Player0, cards.Castle))
	})

	t.Run("left splay shows the top card plus covered left icons", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayLeft, 4, 1) // covered right-icon invisible
		assert.Equal(t, 1, e.CountIcons(g, Player0, cards.Castle))

		stackOf(g, Player0, cards.Red, SplayLeft, 1, 2, 4) // two covered left castles
		assert.Equal(t, 3, e.CountIcons(g, Player0, cards.Castle))
	})

	t.Run("up splay shows everything", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayUp, 4, 1, 2, 3)
		assert.Equal(t, 4, e.CountIcons(g, Player0, cards.Castle))
	})

	t.Run("a single-card stack ignores its stored direction", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Blue, SplayRight, 5)
		// both crown positions of the lone top card count, right splay or not
		assert.Equal(t, 2, e.CountIcons(g, Player0, cards.Crown))
	})

	t.Run("sums across stacks", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayRight, 1, 2)
		stackOf(g, Player0, cards.Blue, SplayNone, 5)
		assert.Equal(t, 2, e.CountIcons(g, Player0, cards.Castle))
		assert.Equal(t, 2, e.CountIcons(g, Player0, cards.Crown))
		utils.AssertTrue(t, e.HasIcon(g, Player0, cards.Crown))
		assert.False(t, e.HasIcon(g, Player0, cards.Leaf))
	})
}

func TestDemandPreconditions(t *testing.T) {
	e := iconFixture(t)

	t.Run("strictly fewer icons means affected", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayRight, 1, 2)
		stackOf(g, Player1, cards.Red, SplayNone, 3)

		assert.Equal(t, 1, e.CompareIcons(g, Player0, Player1, cards.Castle))
		utils.AssertTrue(t, e.IsPlayerAffected(g, Player0, Player1, cards.Castle))
		assert.Equal(t, []PlayerID{Player1}, e.AffectedPlayers(g, Player0, cards.Castle))
	})

	t.Run("a tie exempts the defender", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayNone, 1)
		stackOf(g, Player1, cards.Red, SplayNone, 2)

		assert.False(t, e.IsPlayerAffected(g, Player0, Player1, cards.Castle))
		assert.Empty(t, e.AffectedPlayers(g, Player0, cards.Castle))
	})
}

func TestExtremeIconCounts(t *testing.T) {
	e := iconFixture(t)

	t.Run("distinct counts pick one side", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayRight, 1, 2)
		stackOf(g, Player1, cards.Red, SplayNone, 3)

		ids, count := e.HighestIconCount(g, cards.Castle)
		assert.Equal(t, []PlayerID{Player0}, ids)
		assert.Equal(t, 2, count)

		ids, count = e.LowestIconCount(g, cards.Castle)
		assert.Equal(t, []PlayerID{Player1}, ids)
		assert.Equal(t, 1, count)
	})

	t.Run("ties return every tied player in seat order", func(t *testing.T) {
		g := &GameData{}
		stackOf(g, Player0, cards.Red, SplayNone, 1)
		stackOf(g, Player1, cards.Red, SplayNone, 2)

		ids, count := e.HighestIconCount(g, cards.Castle)
		assert.Equal(t, []PlayerID{Player0, Player1}, ids)
		assert.Equal(t, 1, count)
	})
}
