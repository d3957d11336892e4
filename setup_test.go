package innovation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innovation-engine/innovation/cards"
	utils "github.com/innovation-engine/innovation/internal"
)

func TestNewGame(t *testing.T) {
	e := testEngine(t)
	g, err := e.NewGame(12345)
	utils.AssertNoError(t, err)

	t.Run("identity and phase", func(t *testing.T) {
		utils.AssertNotEmptyString(t, g.GameID)
		assert.Equal(t, 1, g.Phase.Turn)
		assert.Equal(t, Player0, g.Phase.Player)
		assert.Equal(t, 1, g.Phase.ActionsRemaining)
		assert.Equal(t, AwaitingAction, g.Phase.State)
	})

	t.Run("deal and piles", func(t *testing.T) {
		for p := Player0; p < NumPlayers; p++ {
			assert.Len(t, g.Player(p).Hand, 2)
			for _, id := range g.Player(p).Hand {
				c, _ := e.Cards().Card(id)
				assert.Equal(t, cards.Age(1), c.Age)
			}
		}

		// age 1: 15 minus one achievement minus four dealt
		assert.Len(t, g.Shared.Pile(1).Cards, 10)
		for age := cards.Age(2); age < cards.MaxAge; age++ {
			assert.Len(t, g.Shared.Pile(age).Cards, 9, "age %d", age)
		}
		assert.Len(t, g.Shared.Pile(cards.MaxAge).Cards, 10)
	})

	t.Run("one achievement per age below ten", func(t *testing.T) {
		assert.Len(t, g.Shared.Achievements, 9)
		seen := map[cards.Age]bool{}
		for _, id := range g.Shared.Achievements {
			c, _ := e.Cards().Card(id)
			assert.False(t, seen[c.Age], "two achievements of age %d", c.Age)
			seen[c.Age] = true
		}
	})

	t.Run("the snapshot validates", func(t *testing.T) {
		assert.Empty(t, e.ValidateGameData(g))
	})

	t.Run("setup is logged", func(t *testing.T) {
		types := eventTypes(g)
		assert.Equal(t, EventGameStarted, types[0])
		drawn := 0
		for _, ty := range types[1:] {
			if ty == EventDrawn {
				drawn++
			}
		}
		assert.Equal(t, 4, drawn)
	})
}

func TestNewGameDeterminism(t *testing.T) {
	e := testEngine(t)

	t.Run("same seed, same layout", func(t *testing.T) {
		a := fixedGame(t, e, 12345)
		b := fixedGame(t, e, 12345)
		rawA, err := e.SerializeGame(a)
		utils.AssertNoError(t, err)
		rawB, err := e.SerializeGame(b)
		utils.AssertNoError(t, err)
		assert.Equal(t, rawA, rawB)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a := fixedGame(t, e, 1)
		b := fixedGame(t, e, 2)
		assert.NotEqual(t, a.Shared.Pile(1).Cards, b.Shared.Pile(1).Cards)
	})
}

func TestGameOptions(t *testing.T) {
	e := testEngine(t)
	g, err := e.NewGame(7, WithGameID("replay-1"), WithCreatedAt(42))
	utils.AssertNoError(t, err)
	assert.Equal(t, "replay-1", g.GameID)
	assert.Equal(t, int64(42), g.CreatedAt)
}
