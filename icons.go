package innovation

import "github.com/innovation-engine/innovation/cards"

// Icon visibility. A stack's splay direction decides which positions of
// which cards count:
//
//	none  -> all four positions of the top card only
//	left  -> all of the top card, plus the left position of every covered card
//	right -> the top, left and middle positions of every card in the stack
//	up    -> all four positions of every card
//
// A single-card stack always behaves as unsplayed regardless of any stored
// direction.

var allPositions = []cards.Position{cards.PosTop, cards.PosLeft, cards.PosMiddle, cards.PosRight}
var rightSplayPositions = []cards.Position{cards.PosTop, cards.PosLeft, cards.PosMiddle}
var leftSplayPositions = []cards.Position{cards.PosLeft}

// visiblePositions returns the positions that count for one card of a
// stack under the given direction. top marks the stack's topmost card.
func visiblePositions(dir SplayDirection, top bool) []cards.Position {
	switch dir {
	case SplayLeft:
		if top {
			return allPositions
		}
		return leftSplayPositions
	case SplayRight:
		return rightSplayPositions
	case SplayUp:
		return allPositions
	default:
		if top {
			return allPositions
		}
		return nil
	}
}

// CountIcons sums occurrences of icon across all visible positions of all
// of the player's color stacks.
func (e *Engine) CountIcons(g *GameData, p PlayerID, icon cards.Icon) int {
	count := 0
	board := g.Player(p)
	for c := range board.Stacks {
		stack := &board.Stacks[c]
		dir := stack.Splay
		if len(stack.Cards) < 2 {
			dir = SplayNone
		}
		for i, id := range stack.Cards {
			card := e.card(id)
			top := i == len(stack.Cards)-1
			for _, pos := range visiblePositions(dir, top) {
				if card.Icons[pos] == icon {
					count++
				}
			}
		}
	}
	return count
}

// HasIcon reports whether the player has at least one visible icon of the
// given kind.
func (e *Engine) HasIcon(g *GameData, p PlayerID, icon cards.Icon) bool {
	return e.CountIcons(g, p, icon) > 0
}

// CompareIcons returns the difference between a's and b's visible counts
// of icon (positive when a has more).
func (e *Engine) CompareIcons(g *GameData, a, b PlayerID, icon cards.Icon) int {
	return e.CountIcons(g, a, icon) - e.CountIcons(g, b, icon)
}

// IsPlayerAffected reports whether target is affected by a demand from
// activator on the given icon: strictly fewer visible icons. A tie exempts
// the defender.
func (e *Engine) IsPlayerAffected(g *GameData, activator, target PlayerID, icon cards.Icon) bool {
	return e.CompareIcons(g, target, activator, icon) < 0
}

// AffectedPlayers returns the opponents of activator affected by a demand
// on the given icon, in turn order from the activator.
func (e *Engine) AffectedPlayers(g *GameData, activator PlayerID, icon cards.Icon) []PlayerID {
	var out []PlayerID
	opp := activator.Opponent()
	if e.IsPlayerAffected(g, activator, opp, icon) {
		out = append(out, opp)
	}
	return out
}

// HighestIconCount returns every player tied for the highest visible count
// of icon, in seat order, along with that count. Returning all tied ids
// keeps the tie policy deterministic for every caller.
func (e *Engine) HighestIconCount(g *GameData, icon cards.Icon) ([]PlayerID, int) {
	return e.extremeIconCount(g, icon, func(count, best int) bool { return count > best })
}

// LowestIconCount is the mirror of HighestIconCount.
func (e *Engine) LowestIconCount(g *GameData, icon cards.Icon) ([]PlayerID, int) {
	return e.extremeIconCount(g, icon, func(count, best int) bool { return count < best })
}

func (e *Engine) extremeIconCount(g *GameData, icon cards.Icon, better func(count, best int) bool) ([]PlayerID, int) {
	best := e.CountIcons(g, Player0, icon)
	ids := []PlayerID{Player0}
	for p := Player1; p < NumPlayers; p++ {
		count := e.CountIcons(g, p, icon)
		if better(count, best) {
			best = count
			ids = []PlayerID{p}
		} else if count == best {
			ids = append(ids, p)
		}
	}
	return ids, best
}
