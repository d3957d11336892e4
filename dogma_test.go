package innovation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innovation-engine/innovation/cards"
	utils "github.com/innovation-engine/innovation/internal"
)

func TestDogmaRunsToCompletion(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 21)
	forceMeld(t, e, g, Player0, cards.Writing) // "draw a 2"

	before := len(g.Player(Player0).Hand)
	ng, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.Writing})
	utils.AssertNoError(t, err)

	// the input snapshot is untouched
	assert.Len(t, g.Player(Player0).Hand, before)

	assert.Equal(t, AwaitingAction, ng.Phase.State)
	assert.Equal(t, g.Version+1, ng.Version)
	assert.Len(t, ng.Player(Player0).Hand, before+1)
	drawn := ng.Player(Player0).Hand[len(ng.Player(Player0).Hand)-1]
	c, _ := e.Cards().Card(drawn)
	assert.Equal(t, cards.Age(2), c.Age)

	// the opening turn has a single action, so the turn passed
	assert.Equal(t, Player1, ng.Phase.Player)
	assert.Equal(t, 2, ng.Phase.ActionsRemaining)
}

func TestDogmaSuspendsOnChoice(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 22)
	forceMeld(t, e, g, Player0, cards.Agriculture) // "you may return a card..."

	hand := len(g.Player(Player0).Hand)
	ng, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.Agriculture})
	utils.AssertNoError(t, err)

	assert.Equal(t, AwaitingChoice, ng.Phase.State)
	pc := ng.PendingChoice
	if pc == nil {
		t.Fatal("expected a pending choice")
	}
	assert.Equal(t, ChoiceCards, pc.Kind)
	assert.Equal(t, Player0, pc.Player)
	assert.Equal(t, 0, pc.MinCount)
	assert.Equal(t, 1, pc.MaxCount)
	assert.Equal(t, idsToInts(ng.Player(Player0).Hand), pc.Options)
	assert.Equal(t, cards.Agriculture, pc.Resume.Card)

	// the action is not consumed while suspended
	assert.Equal(t, 1, ng.Phase.ActionsRemaining)
	assert.Equal(t, Player0, ng.Phase.Player)
	assert.Equal(t, EventChoiceRequested, lastEvent(ng).Type)

	t.Run("actions are rejected while suspended", func(t *testing.T) {
		_, err := e.ProcessAction(ng, Action{Type: ActionDraw, Player: Player0})
		utils.AssertErrorIs(t, err, ErrAwaitingChoice)
	})

	t.Run("malformed answers leave the state untouched", func(t *testing.T) {
		cases := []ChoiceAnswer{
			{Player: Player1, Picks: []int{pc.Options[0]}},
			{Player: Player0, Picks: []int{pc.Options[0], int(cards.TheInternet)}},
			{Player: Player0, Picks: []int{int(cards.TheInternet)}},
		}
		for _, ans := range cases {
			_, err := e.ProcessChoiceAnswer(ng, ans)
			utils.AssertErrored(t, err)
		}
		assert.Equal(t, AwaitingChoice, ng.Phase.State)
		assert.NotNil(t, ng.PendingChoice)
	})

	t.Run("answering resumes and settles the action", func(t *testing.T) {
		pick := pc.Options[0]
		done, err := e.ProcessChoiceAnswer(ng, ChoiceAnswer{Player: Player0, Picks: []int{pick}})
		utils.AssertNoError(t, err)

		// picked card returned, then a card one higher was drawn and scored
		assert.Len(t, done.Player(Player0).Hand, hand-1)
		assert.Equal(t, 2, e.ScoreTotal(done, Player0))
		assert.Nil(t, done.PendingChoice)

		// suspension resolved, so the opening action is consumed
		assert.Equal(t, Player1, done.Phase.Player)
		assert.Equal(t, 2, done.Phase.ActionsRemaining)
	})

	t.Run("declining skips the conditional follow-up", func(t *testing.T) {
		done, err := e.ProcessChoiceAnswer(ng, ChoiceAnswer{Player: Player0, Picks: []int{}})
		utils.AssertNoError(t, err)

		assert.Len(t, done.Player(Player0).Hand, hand)
		assert.Equal(t, 0, e.ScoreTotal(done, Player0))
		assert.Equal(t, Player1, done.Phase.Player)
	})
}

func TestDemandExecutesForAffectedOpponent(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 23)
	forceMeld(t, e, g, Player0, cards.Archery)

	theirs := len(g.Player(Player1).Hand)
	mine := len(g.Player(Player0).Hand)

	// player 1 shows no castles, so the demand lands: they draw a 1 and
	// must hand over their highest card
	ng, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.Archery})
	utils.AssertNoError(t, err)

	assert.Equal(t, AwaitingChoice, ng.Phase.State)
	pc := ng.PendingChoice
	assert.Equal(t, Player1, pc.Player)
	assert.Len(t, ng.Player(Player1).Hand, theirs+1) // demanded draw happened
	assert.Equal(t, 1, pc.MinCount)
	assert.Equal(t, 1, pc.MaxCount)

	done, err := e.ProcessChoiceAnswer(ng, ChoiceAnswer{Player: Player1, Picks: []int{pc.Options[0]}})
	utils.AssertNoError(t, err)

	// resuming re-enters the pick step without repeating the draw
	assert.Len(t, done.Player(Player1).Hand, theirs)
	assert.Len(t, done.Player(Player0).Hand, mine+1)
}

func TestDemandSkipsUnaffectedOpponent(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 24)
	forceMeld(t, e, g, Player0, cards.Archery)      // 2 visible castles
	forceMeld(t, e, g, Player1, cards.Metalworking) // 3 visible castles

	theirs := len(g.Player(Player1).Hand)
	ng, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.Archery})
	utils.AssertNoError(t, err)

	// no one is affected, so the whole activation is a no-op turn action
	assert.Equal(t, AwaitingAction, ng.Phase.State)
	assert.Nil(t, ng.PendingChoice)
	assert.Len(t, ng.Player(Player1).Hand, theirs)
	assert.Equal(t, Player1, ng.Phase.Player)
}

func TestSuspensionSurvivesSaveAndLoad(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 25)
	forceMeld(t, e, g, Player0, cards.Agriculture)

	suspended, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.Agriculture})
	utils.AssertNoError(t, err)
	assert.Equal(t, AwaitingChoice, suspended.Phase.State)

	raw, err := e.SerializeGame(suspended)
	utils.AssertNoError(t, err)
	loaded, err := e.DeserializeGame(raw)
	utils.AssertNoError(t, err)

	ans := ChoiceAnswer{Player: Player0, Picks: []int{suspended.PendingChoice.Options[0]}}
	a, err := e.ProcessChoiceAnswer(suspended, ans)
	utils.AssertNoError(t, err)
	b, err := e.ProcessChoiceAnswer(loaded, ans)
	utils.AssertNoError(t, err)

	rawA, err := e.SerializeGame(a)
	utils.AssertNoError(t, err)
	rawB, err := e.SerializeGame(b)
	utils.AssertNoError(t, err)
	assert.Equal(t, rawA, rawB)
}

func TestValueChoiceOffersAges(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 27)
	g.Phase.Player = Player0
	g.Phase.ActionsRemaining = 2

	forceMeld(t, e, g, Player0, cards.MassMedia)
	giveScore(t, g, Player0, 3, 1)
	giveScore(t, g, Player1, 3, 1)
	giveScore(t, g, Player1, 1, 1)

	// first choice: may return a card from hand
	ng, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.MassMedia})
	utils.AssertNoError(t, err)
	pc := ng.PendingChoice
	if pc == nil {
		t.Fatal("expected a hand-card choice")
	}
	assert.Equal(t, ChoiceCards, pc.Kind)

	ng, err = e.ProcessChoiceAnswer(ng, ChoiceAnswer{Player: pc.Player, Picks: []int{pc.Options[0]}})
	utils.AssertNoError(t, err)

	// second choice: a value, not a card id
	pc = ng.PendingChoice
	if pc == nil {
		t.Fatal("expected a value choice")
	}
	assert.Equal(t, ChoiceValue, pc.Kind)
	assert.Equal(t, []int{1, 3}, pc.Options)

	ng, err = e.ProcessChoiceAnswer(ng, ChoiceAnswer{Player: pc.Player, Picks: []int{3}})
	utils.AssertNoError(t, err)

	// every age-3 score card on either side went back to its pile
	assert.Empty(t, ng.Player(Player0).Scores)
	assert.Len(t, ng.Player(Player1).Scores, 1)
	c, _ := e.Cards().Card(ng.Player(Player1).Scores[0])
	assert.Equal(t, cards.Age(1), c.Age)
}

func TestUnscriptedCardIsAConfigurationError(t *testing.T) {
	set := cards.BaseSet()
	reg := NewRegistry()
	_, err := NewEngine(set, reg)
	utils.AssertErrorIs(t, err, ErrConfiguration)
}

func TestRegistryRejectsDoubleRegistration(t *testing.T) {
	reg := NewRegistry()
	utils.AssertNoError(t, reg.Register(cards.Writing, nil))
	utils.AssertErrorIs(t, reg.Register(cards.Writing, nil), ErrConfiguration)
}
