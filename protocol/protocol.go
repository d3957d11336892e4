// Package protocol defines the wire messages exchanged between the game
// server and its clients. The engine types marshal directly; this package
// only adds the envelope and command vocabulary.
package protocol

import (
	"encoding/json"

	innovation "github.com/innovation-engine/innovation"
)

// Cmd represents a server-to-client command.
type Cmd int

const (
	Null Cmd = iota
	GameCreated
	GameLoaded
	StateUpdate
	ChoiceRequested
	GameOver
	Error
)

var cmdNames = []string{
	"Null",
	"GameCreated",
	"GameLoaded",
	"StateUpdate",
	"ChoiceRequested",
	"GameOver",
	"Error",
}

func (c Cmd) String() string {
	if int(c) < 0 || int(c) >= len(cmdNames) {
		return "Unknown"
	}
	return cmdNames[c]
}

// NewGameRequest starts a game from a seed. A zero GameID lets the server
// assign one; replays supply both so the resulting state is reproducible.
type NewGameRequest struct {
	Seed   uint32 `json:"seed"`
	GameID string `json:"game_id,omitempty"`
}

// LoadGameRequest restores a game from a serialized save envelope.
type LoadGameRequest struct {
	Save json.RawMessage `json:"save"`
}

// ActionRequest submits one turn action for a game.
type ActionRequest struct {
	GameID string            `json:"game_id"`
	Action innovation.Action `json:"action"`
}

// ChoiceAnswerRequest resolves a game's pending choice.
type ChoiceAnswerRequest struct {
	GameID string                  `json:"game_id"`
	Answer innovation.ChoiceAnswer `json:"answer"`
}

// GameResponse is the server's reply to any game-mutating request, and the
// message pushed to websocket observers after every state change.
type GameResponse struct {
	Command Cmd                    `json:"command"`
	GameID  string                 `json:"game_id"`
	Summary innovation.GameSummary `json:"summary"`
	Error   string                 `json:"error,omitempty"`
}

// LegalActionsResponse enumerates what a player may submit right now.
type LegalActionsResponse struct {
	GameID  string              `json:"game_id"`
	Player  innovation.PlayerID `json:"player"`
	Actions []innovation.Action `json:"actions"`
}

// SummaryCmd chooses the push command for a summary: a pending choice and
// a finished game are worth distinguishing for clients.
func SummaryCmd(s innovation.GameSummary) Cmd {
	switch s.State {
	case innovation.AwaitingChoice:
		return ChoiceRequested
	case innovation.GameOver:
		return GameOver
	}
	return StateUpdate
}
