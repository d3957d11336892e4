package innovation

import "github.com/innovation-engine/innovation/cards"

// PlayerSummary is the public projection of one side's position.
type PlayerSummary struct {
	Player       PlayerID       `json:"player"`
	Score        int            `json:"score"`
	Achievements int            `json:"achievements"`
	HandSize     int            `json:"hand_size"`
	TopCards     []cards.CardID `json:"top_cards"`
}

// GameSummary is what observers see: turn, phase, both positions, the
// pending choice if any, and the outcome once decided. It never exposes
// hidden hand contents.
type GameSummary struct {
	GameID           string                    `json:"game_id"`
	Turn             int                       `json:"turn"`
	Player           PlayerID                  `json:"player"`
	State            PhaseState                `json:"state"`
	ActionsRemaining int                       `json:"actions_remaining"`
	Players          [NumPlayers]PlayerSummary `json:"players"`
	PendingChoice    *Choice                   `json:"pending_choice,omitempty"`
	Winner           *PlayerID                 `json:"winner,omitempty"`
	Condition        string                    `json:"condition,omitempty"`
}

// Summary projects a snapshot for display and transport.
func (e *Engine) Summary(g *GameData) GameSummary {
	s := GameSummary{
		GameID:           g.GameID,
		Turn:             g.Phase.Turn,
		Player:           g.Phase.Player,
		State:            g.Phase.State,
		ActionsRemaining: g.Phase.ActionsRemaining,
	}
	for p := Player0; p < NumPlayers; p++ {
		s.Players[p] = PlayerSummary{
			Player:       p,
			Score:        e.ScoreTotal(g, p),
			Achievements: g.Player(p).AchievementCount(),
			HandSize:     len(g.Player(p).Hand),
			TopCards:     g.Player(p).TopCards(),
		}
	}
	if g.PendingChoice != nil {
		pc := g.PendingChoice.clone()
		s.PendingChoice = &pc
	}
	if g.Result != nil {
		if g.Result.Winner != nil {
			w := *g.Result.Winner
			s.Winner = &w
		}
		s.Condition = g.Result.Condition
	}
	return s
}
