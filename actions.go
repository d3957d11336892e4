package innovation

import (
	"fmt"

	"github.com/innovation-engine/innovation/cards"
)

// ActionType names one of the four turn actions.
type ActionType string

const (
	ActionDraw    ActionType = "draw"
	ActionMeld    ActionType = "meld"
	ActionDogma   ActionType = "dogma"
	ActionAchieve ActionType = "achieve"
)

// Action is an external actor's move. Card is required for meld and dogma,
// Age for achieve.
type Action struct {
	Type   ActionType   `json:"type"`
	Player PlayerID     `json:"player"`
	Card   cards.CardID `json:"card,omitempty"`
	Age    cards.Age    `json:"age,omitempty"`
}

// ProcessAction validates and applies one action against the snapshot and
// returns a new snapshot; the input is never mutated. An illegal action
// returns the error with the original state untouched. When a dogma
// activation suspends for input, the returned snapshot is awaiting a
// choice and the action's turn accounting is settled once the choice
// resolves.
func (e *Engine) ProcessAction(g *GameData, act Action) (*GameData, error) {
	if err := e.CheckAction(g, act); err != nil {
		return nil, err
	}

	ng := g.Clone()
	ng.Version++

	var err error
	switch act.Type {
	case ActionDraw:
		_, err = e.DrawCard(ng, act.Player, e.DrawAge(ng, act.Player))
	case ActionMeld:
		err = e.MeldCard(ng, act.Player, act.Card, ZoneHand)
	case ActionDogma:
		err = e.ProcessDogmaAction(ng, act.Player, act.Card)
	case ActionAchieve:
		err = e.claimAchievement(ng, act.Player, act.Age)
	default:
		err = fmt.Errorf("unknown action type %q: %w", act.Type, ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}

	e.settleAction(ng)
	return ng, nil
}

// ProcessChoiceAnswer resumes a suspended dogma activation with the
// actor's answer and returns a new snapshot. A malformed answer is
// rejected without mutating state.
func (e *Engine) ProcessChoiceAnswer(g *GameData, ans ChoiceAnswer) (*GameData, error) {
	if err := e.CheckChoiceAnswer(g, ans); err != nil {
		return nil, err
	}

	ng := g.Clone()
	ng.Version++
	if err := e.resumeDogma(ng, ans); err != nil {
		return nil, err
	}

	e.settleAction(ng)
	return ng, nil
}

// settleAction runs the post-mutation bookkeeping shared by actions and
// choice resolutions: victory checks and, once the action has fully
// resolved, consuming it and advancing the turn.
func (e *Engine) settleAction(g *GameData) {
	if g.Phase.State == GameOver {
		return
	}
	e.CheckVictoryConditions(g)
	if g.Phase.State != AwaitingAction {
		// still suspended (or ended by the victory check)
		return
	}

	g.Phase.ActionsRemaining--
	if g.Phase.ActionsRemaining > 0 {
		return
	}
	g.Phase.Player = g.Phase.Player.Opponent()
	g.Phase.Turn++
	g.Phase.ActionsRemaining = 2
	g.logEvent(GameEvent{Type: EventTurnAdvanced, Player: g.Phase.Player})
}

// DrawAge is the value of the side's draw action: the highest top card on
// their board, or 1 with an empty board.
func (e *Engine) DrawAge(g *GameData, p PlayerID) cards.Age {
	a := cards.Age(1)
	for _, id := range g.Player(p).TopCards() {
		if v := e.card(id).Age; v > a {
			a = v
		}
	}
	return a
}

// claimAchievement moves the available achievement of the given age to the
// player. Eligibility: score of at least five times the age and a top card
// of at least that age.
func (e *Engine) claimAchievement(g *GameData, p PlayerID, age cards.Age) error {
	idx, err := e.canAchieve(g, p, age)
	if err != nil {
		return err
	}

	id := g.Shared.Achievements[idx]
	rest := make([]cards.CardID, 0, len(g.Shared.Achievements)-1)
	rest = append(rest, g.Shared.Achievements[:idx]...)
	rest = append(rest, g.Shared.Achievements[idx+1:]...)
	g.Shared.Achievements = rest

	b := g.Player(p)
	b.NormalAchievements = append(b.NormalAchievements, id)
	g.logEvent(GameEvent{Type: EventAchieved, Player: p, Card: id, Age: age})
	return nil
}

// CheckVictoryConditions applies the fixed priority order: achievement
// count first, then card-triggered wins. Score victory is reachable only
// through the exhausted-supply trigger in DrawCard.
func (e *Engine) CheckVictoryConditions(g *GameData) {
	if g.Phase.State == GameOver {
		return
	}
	for p := Player0; p < NumPlayers; p++ {
		if g.Player(p).AchievementCount() >= AchievementsToWin {
			winner := p
			e.endGame(g, &winner, VictoryAchievements)
			return
		}
	}
	e.checkCardVictory(g)
}

// checkCardVictory is the hook for card-triggered instant wins. The base
// game wires none; it exists so expansion effects have a single place to
// end the game through.
func (e *Engine) checkCardVictory(g *GameData) {}

// endByScore resolves the game after a draw beyond the highest age: the
// higher score wins, ties fall back to achievement count, and a remaining
// tie is a draw.
func (e *Engine) endByScore(g *GameData) {
	s0, s1 := e.ScoreTotal(g, Player0), e.ScoreTotal(g, Player1)
	a0, a1 := g.Player(Player0).AchievementCount(), g.Player(Player1).AchievementCount()

	switch {
	case s0 > s1:
		w := Player0
		e.endGame(g, &w, VictoryScore)
	case s1 > s0:
		w := Player1
		e.endGame(g, &w, VictoryScore)
	case a0 > a1:
		w := Player0
		e.endGame(g, &w, VictoryScore)
	case a1 > a0:
		w := Player1
		e.endGame(g, &w, VictoryScore)
	default:
		e.endGame(g, nil, VictoryDraw)
	}
}

func (e *Engine) endGame(g *GameData, winner *PlayerID, condition string) {
	g.Result = &VictoryResult{Winner: winner, Condition: condition}
	g.Phase.State = GameOver
	g.PendingChoice = nil
	g.logEvent(GameEvent{Type: EventGameEnd, Winner: winner, Condition: condition})
}
