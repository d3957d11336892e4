package innovation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/innovation-engine/innovation/cards"
)

// SavedGame is the persistence envelope: schema version, the snapshot
// encoded as canonical JSON, and a checksum over those exact bytes. The
// envelope timestamp is the game's creation time so a snapshot always
// serializes to the same bytes.
type SavedGame struct {
	Version   string          `json:"version"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Checksum  uint32          `json:"checksum"`
}

// Checksum is the persisted-data digest: h = h*31 + byte over the exact
// encoded string. It guards against corruption, not tampering.
func Checksum(data string) uint32 {
	var h uint32
	for i := 0; i < len(data); i++ {
		h = h*31 + uint32(data[i])
	}
	return h
}

// SerializeGame externalizes a snapshot. An invalid snapshot refuses to
// serialize rather than persisting garbage.
func (e *Engine) SerializeGame(g *GameData) ([]byte, error) {
	if issues := e.ValidateGameData(g); len(issues) > 0 {
		return nil, fmt.Errorf("snapshot invalid: %s: %w", strings.Join(issues, "; "), ErrValidation)
	}
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return json.Marshal(SavedGame{
		Version:   SchemaVersion,
		Timestamp: g.CreatedAt,
		Data:      data,
		Checksum:  Checksum(string(data)),
	})
}

// DeserializeGame loads a snapshot, distinguishing malformed input
// (ErrParseFailure), bit rot (ErrCorrupted), and well-formed but
// inconsistent state (ErrValidation). Nothing partial is ever returned.
func (e *Engine) DeserializeGame(raw []byte) (*GameData, error) {
	var env SavedGame
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed save envelope: %w", ErrParseFailure)
	}
	if Checksum(string(env.Data)) != env.Checksum {
		return nil, fmt.Errorf("checksum mismatch: %w", ErrCorrupted)
	}
	env, err := MigrateSavedGame(env)
	if err != nil {
		return nil, err
	}

	var g GameData
	if err := json.Unmarshal(env.Data, &g); err != nil {
		return nil, fmt.Errorf("malformed snapshot data: %w", ErrParseFailure)
	}
	if issues := e.ValidateGameData(&g); len(issues) > 0 {
		return nil, fmt.Errorf("snapshot invalid: %s: %w", strings.Join(issues, "; "), ErrValidation)
	}
	return &g, nil
}

// MigrateSavedGame upgrades an envelope to the current schema. There is a
// single schema so far, so only the identity migration exists.
func MigrateSavedGame(env SavedGame) (SavedGame, error) {
	if env.Version != SchemaVersion {
		return SavedGame{}, fmt.Errorf("save schema %q, engine speaks %q: %w", env.Version, SchemaVersion, ErrUnsupportedMigration)
	}
	return env, nil
}

// ValidateGameData collects every consistency violation it can find; an
// empty result means the snapshot is safe to play on.
func (e *Engine) ValidateGameData(g *GameData) []string {
	issues := []string{}
	add := func(format string, args ...interface{}) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	if g.GameID == "" {
		add("missing game id")
	}
	switch g.Phase.State {
	case AwaitingAction, AwaitingChoice, GameOver:
	default:
		add("unknown phase state %q", g.Phase.State)
	}
	if !g.Phase.Player.Valid() {
		add("invalid player on turn %d", g.Phase.Player)
	}
	if g.Phase.Turn < 1 {
		add("turn %d below 1", g.Phase.Turn)
	}
	if g.Phase.ActionsRemaining < 0 || g.Phase.ActionsRemaining > 2 {
		add("actions remaining %d out of range", g.Phase.ActionsRemaining)
	}

	if (g.Phase.State == AwaitingChoice) != (g.PendingChoice != nil) {
		add("pending choice does not match phase state %q", g.Phase.State)
	}
	if pc := g.PendingChoice; pc != nil {
		if !pc.Player.Valid() {
			add("pending choice for invalid player %d", pc.Player)
		}
		if pc.MinCount < 0 || pc.MaxCount < pc.MinCount {
			add("pending choice counts %d..%d malformed", pc.MinCount, pc.MaxCount)
		}
		if _, ok := e.cards.Card(pc.Resume.Card); !ok {
			add("pending choice resumes unknown card %d", pc.Resume.Card)
		}
	}
	if (g.Phase.State == GameOver) != (g.Result != nil) {
		add("victory result does not match phase state %q", g.Phase.State)
	}

	if len(g.Shared.Piles) != int(cards.MaxAge) {
		add("want %d supply piles, have %d", cards.MaxAge, len(g.Shared.Piles))
	} else {
		for i := range g.Shared.Piles {
			pile := &g.Shared.Piles[i]
			if pile.Age != cards.Age(i+1) {
				add("pile %d labeled age %d", i, pile.Age)
			}
			for _, id := range pile.Cards {
				if c, ok := e.cards.Card(id); ok && c.Age != pile.Age {
					add("card %d of age %d in age %d pile", id, c.Age, pile.Age)
				}
			}
		}
	}

	// every card of the set lives in exactly one zone
	counts := map[cards.CardID]int{}
	track := func(ids []cards.CardID) {
		for _, id := range ids {
			if _, ok := e.cards.Card(id); !ok {
				add("unknown card %d in play", id)
			}
			counts[id]++
		}
	}
	for p := range g.Players {
		b := &g.Players[p]
		track(b.Hand)
		track(b.Scores)
		track(b.NormalAchievements)
		for c := range b.Stacks {
			st := &b.Stacks[c]
			if st.Color != cards.Color(c) {
				add("player %d stack %d labeled %s", p, c, st.Color)
			}
			if !ValidSplay(st.Splay) {
				add("player %d %s stack splayed %q", p, st.Color, st.Splay)
			}
			for _, id := range st.Cards {
				if card, ok := e.cards.Card(id); ok && card.Color != st.Color {
					add("%s card %d in player %d %s stack", card.Color, id, p, st.Color)
				}
			}
			track(st.Cards)
		}
	}
	for i := range g.Shared.Piles {
		track(g.Shared.Piles[i].Cards)
	}
	track(g.Shared.Achievements)

	for _, id := range e.cards.IDs() {
		switch counts[id] {
		case 1:
		case 0:
			add("card %d missing from every zone", id)
		default:
			add("card %d present %d times", id, counts[id])
		}
	}
	return issues
}
