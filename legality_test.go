package innovation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innovation-engine/innovation/cards"
	utils "github.com/innovation-engine/innovation/internal"
)

func TestCheckAction(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 41)

	t.Run("draw is always legal on turn", func(t *testing.T) {
		utils.AssertNoError(t, e.CheckAction(g, Action{Type: ActionDraw, Player: Player0}))
	})

	t.Run("off-turn player is rejected", func(t *testing.T) {
		err := e.CheckAction(g, Action{Type: ActionDraw, Player: Player1})
		utils.AssertErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("invalid seat is rejected", func(t *testing.T) {
		err := e.CheckAction(g, Action{Type: ActionDraw, Player: PlayerID(5)})
		utils.AssertErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown action type is rejected", func(t *testing.T) {
		err := e.CheckAction(g, Action{Type: ActionType("pass"), Player: Player0})
		utils.AssertErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("dogma needs a top card", func(t *testing.T) {
		err := e.CheckAction(g, Action{Type: ActionDogma, Player: Player0, Card: g.Player(Player0).Hand[0]})
		utils.AssertErrorIs(t, err, ErrPreconditionViolation)
	})
}

func TestLegalActionsMatchAcceptance(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 42)
	forceMeld(t, e, g, Player0, cards.Writing)
	giveScore(t, g, Player0, 3, 2)

	actions := e.LegalActions(g)
	utils.AssertTrue(t, len(actions) > 0)

	// every enumerated action must be accepted by the processor
	for _, a := range actions {
		utils.AssertNoError(t, e.CheckAction(g, a))
		_, err := e.ProcessAction(g, a)
		utils.AssertNoError(t, err)
	}

	// draw, a meld per hand card, dogma on the sole top card, achieve age 1
	want := 1 + len(g.Player(Player0).Hand) + 1 + 1
	assert.Len(t, actions, want)
	assert.Equal(t, ActionDraw, actions[0].Type)
}

func TestLegalActionsForOffTurnPlayer(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 43)

	assert.Empty(t, e.PlayerLegalActions(g, Player1))
	assert.NotEmpty(t, e.PlayerLegalActions(g, Player0))
}

func TestLegalActionsWhileSuspended(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 44)
	forceMeld(t, e, g, Player0, cards.Agriculture)

	ng, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.Agriculture})
	utils.AssertNoError(t, err)
	assert.Equal(t, AwaitingChoice, ng.Phase.State)

	assert.Empty(t, e.LegalActions(ng))
	err = e.CheckAction(ng, Action{Type: ActionDraw, Player: Player0})
	utils.AssertErrorIs(t, err, ErrAwaitingChoice)
}

func TestCheckChoiceAnswer(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 45)

	t.Run("no pending choice", func(t *testing.T) {
		err := e.CheckChoiceAnswer(g, ChoiceAnswer{Player: Player0})
		utils.AssertErrorIs(t, err, ErrNoPendingChoice)
	})

	forceMeld(t, e, g, Player0, cards.Agriculture)
	ng, err := e.ProcessAction(g, Action{Type: ActionDogma, Player: Player0, Card: cards.Agriculture})
	utils.AssertNoError(t, err)
	pc := ng.PendingChoice

	t.Run("wrong player", func(t *testing.T) {
		err := e.CheckChoiceAnswer(ng, ChoiceAnswer{Player: Player1, Picks: []int{pc.Options[0]}})
		utils.AssertErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("too many picks", func(t *testing.T) {
		err := e.CheckChoiceAnswer(ng, ChoiceAnswer{Player: Player0, Picks: pc.Options})
		utils.AssertErrorIs(t, err, ErrInvalidChoice)
	})

	t.Run("duplicate picks", func(t *testing.T) {
		wide := ng.Clone()
		wide.PendingChoice.MaxCount = 2
		err := e.CheckChoiceAnswer(wide, ChoiceAnswer{Player: Player0, Picks: []int{pc.Options[0], pc.Options[0]}})
		utils.AssertErrorIs(t, err, ErrInvalidChoice)
	})

	t.Run("pick outside the options", func(t *testing.T) {
		err := e.CheckChoiceAnswer(ng, ChoiceAnswer{Player: Player0, Picks: []int{int(cards.TheInternet)}})
		utils.AssertErrorIs(t, err, ErrInvalidChoice)
	})

	t.Run("declining an optional choice is valid", func(t *testing.T) {
		utils.AssertNoError(t, e.CheckChoiceAnswer(ng, ChoiceAnswer{Player: Player0, Picks: nil}))
	})
}
