package innovation

import (
	"fmt"

	"github.com/innovation-engine/innovation/cards"
)

// CheckAction decides whether the action would be accepted, without
// mutating anything. ProcessAction consults it before cloning, and any
// external player or UI can consult it first; the two must never diverge.
func (e *Engine) CheckAction(g *GameData, act Action) error {
	if !act.Player.Valid() {
		return fmt.Errorf("player %d: %w", act.Player, ErrInvalidArgument)
	}
	switch g.Phase.State {
	case GameOver:
		return ErrGameOver
	case AwaitingChoice:
		return ErrAwaitingChoice
	}
	if act.Player != g.Phase.Player {
		return ErrNotYourTurn
	}

	switch act.Type {
	case ActionDraw:
		return nil
	case ActionMeld:
		if !containsID(g.Player(act.Player).Hand, act.Card) {
			return fmt.Errorf("card %d not in hand: %w", act.Card, ErrPreconditionViolation)
		}
		return nil
	case ActionDogma:
		if !containsID(g.Player(act.Player).TopCards(), act.Card) {
			return fmt.Errorf("card %d is not a top card: %w", act.Card, ErrPreconditionViolation)
		}
		return nil
	case ActionAchieve:
		_, err := e.canAchieve(g, act.Player, act.Age)
		return err
	default:
		return fmt.Errorf("unknown action type %q: %w", act.Type, ErrInvalidArgument)
	}
}

// canAchieve reports whether the player may claim the achievement of the
// given age, returning its index in the shared row.
func (e *Engine) canAchieve(g *GameData, p PlayerID, age cards.Age) (int, error) {
	idx := -1
	for i, id := range g.Shared.Achievements {
		if e.card(id).Age == age {
			idx = i
			break
		}
	}
	if idx < 0 {
		return -1, fmt.Errorf("no achievement of age %d available: %w", age, ErrPreconditionViolation)
	}
	if e.ScoreTotal(g, p) < 5*int(age) {
		return -1, fmt.Errorf("score too low for age %d achievement: %w", age, ErrPreconditionViolation)
	}
	eligible := false
	for _, id := range g.Player(p).TopCards() {
		if e.card(id).Age >= age {
			eligible = true
			break
		}
	}
	if !eligible {
		return -1, fmt.Errorf("no top card of age %d or higher: %w", age, ErrPreconditionViolation)
	}
	return idx, nil
}

// CheckChoiceAnswer validates an answer against the pending choice's shape
// and constraints.
func (e *Engine) CheckChoiceAnswer(g *GameData, ans ChoiceAnswer) error {
	if g.Phase.State == GameOver {
		return ErrGameOver
	}
	pc := g.PendingChoice
	if g.Phase.State != AwaitingChoice || pc == nil {
		return ErrNoPendingChoice
	}
	if ans.Player != pc.Player {
		return ErrNotYourTurn
	}
	if len(ans.Picks) < pc.MinCount || len(ans.Picks) > pc.MaxCount {
		return fmt.Errorf("want between %d and %d picks, got %d: %w", pc.MinCount, pc.MaxCount, len(ans.Picks), ErrInvalidChoice)
	}
	seen := map[int]bool{}
	for _, pick := range ans.Picks {
		if seen[pick] {
			return fmt.Errorf("duplicate pick %d: %w", pick, ErrInvalidChoice)
		}
		seen[pick] = true
		if !containsInt(pc.Options, pick) {
			return fmt.Errorf("pick %d not among options: %w", pick, ErrInvalidChoice)
		}
	}
	return nil
}

// LegalActions enumerates every action the side to move could submit.
func (e *Engine) LegalActions(g *GameData) []Action {
	return e.PlayerLegalActions(g, g.Phase.Player)
}

// PlayerLegalActions enumerates the legal actions for one player; a player
// not on turn (or a suspended or finished game) has none.
func (e *Engine) PlayerLegalActions(g *GameData, p PlayerID) []Action {
	out := []Action{}
	if g.Phase.State != AwaitingAction || p != g.Phase.Player {
		return out
	}

	out = append(out, Action{Type: ActionDraw, Player: p})
	for _, id := range g.Player(p).Hand {
		out = append(out, Action{Type: ActionMeld, Player: p, Card: id})
	}
	for _, id := range g.Player(p).TopCards() {
		out = append(out, Action{Type: ActionDogma, Player: p, Card: id})
	}
	for age := cards.Age(1); age <= cards.MaxAge; age++ {
		if _, err := e.canAchieve(g, p, age); err == nil {
			out = append(out, Action{Type: ActionAchieve, Player: p, Age: age})
		}
	}
	return out
}

func containsID(xs []cards.CardID, id cards.CardID) bool {
	for _, x := range xs {
		if x == id {
			return true
		}
	}
	return false
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
