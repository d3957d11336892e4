package innovation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	utils "github.com/innovation-engine/innovation/internal"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint32(0), Checksum(""))
	assert.Equal(t, uint32('a'), Checksum("a"))
	assert.Equal(t, uint32('a')*31+uint32('b'), Checksum("ab"))
	assert.NotEqual(t, Checksum("ab"), Checksum("ba"))
}

func TestSerializeRoundTrip(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 51)

	raw, err := e.SerializeGame(g)
	utils.AssertNoError(t, err)

	loaded, err := e.DeserializeGame(raw)
	utils.AssertNoError(t, err)
	assert.Equal(t, g, loaded)

	// serializing the reloaded game reproduces the exact bytes
	again, err := e.SerializeGame(loaded)
	utils.AssertNoError(t, err)
	assert.Equal(t, raw, again)
}

func TestDeserializeRejectsFlippedByte(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 52)

	raw, err := e.SerializeGame(g)
	utils.AssertNoError(t, err)

	var env SavedGame
	utils.AssertNoError(t, json.Unmarshal(raw, &env))
	env.Data[len(env.Data)/2] ^= 1
	corrupt, err := json.Marshal(env)
	utils.AssertNoError(t, err)

	_, err = e.DeserializeGame(corrupt)
	utils.AssertErrorIs(t, err, ErrCorrupted)
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	e := testEngine(t)
	_, err := e.DeserializeGame([]byte("not even json"))
	utils.AssertErrorIs(t, err, ErrParseFailure)
}

func TestDeserializeRejectsUnknownSchema(t *testing.T) {
	e := testEngine(t)
	g := fixedGame(t, e, 53)

	raw, err := e.SerializeGame(g)
	utils.AssertNoError(t, err)

	var env SavedGame
	utils.AssertNoError(t, json.Unmarshal(raw, &env))
	env.Version = "999"
	old, err := json.Marshal(env)
	utils.AssertNoError(t, err)

	_, err = e.DeserializeGame(old)
	utils.AssertErrorIs(t, err, ErrUnsupportedMigration)
}

func TestValidationGuardsBothDirections(t *testing.T) {
	e := testEngine(t)

	t.Run("an inconsistent snapshot refuses to serialize", func(t *testing.T) {
		g := fixedGame(t, e, 54)
		g.Phase.ActionsRemaining = 7
		_, err := e.SerializeGame(g)
		utils.AssertErrorIs(t, err, ErrValidation)
	})

	t.Run("well-formed but inconsistent data refuses to load", func(t *testing.T) {
		g := fixedGame(t, e, 55)
		g.Phase.State = AwaitingChoice // no pending choice to match

		data, err := json.Marshal(g)
		utils.AssertNoError(t, err)
		raw, err := json.Marshal(SavedGame{
			Version:   SchemaVersion,
			Timestamp: g.CreatedAt,
			Data:      data,
			Checksum:  Checksum(string(data)),
		})
		utils.AssertNoError(t, err)

		_, err = e.DeserializeGame(raw)
		utils.AssertErrorIs(t, err, ErrValidation)
	})
}

func TestValidateGameData(t *testing.T) {
	e := testEngine(t)

	t.Run("a fresh game is clean", func(t *testing.T) {
		g := fixedGame(t, e, 56)
		assert.Empty(t, e.ValidateGameData(g))
	})

	t.Run("violations are collected, not short-circuited", func(t *testing.T) {
		g := fixedGame(t, e, 57)
		g.GameID = ""
		g.Phase.Turn = 0
		g.Phase.ActionsRemaining = -1

		issues := e.ValidateGameData(g)
		utils.AssertTrue(t, len(issues) >= 3)
	})

	t.Run("a duplicated card is reported", func(t *testing.T) {
		g := fixedGame(t, e, 58)
		b := g.Player(Player0)
		b.Hand = append(b.Hand, b.Hand[0])

		issues := e.ValidateGameData(g)
		utils.AssertTrue(t, len(issues) > 0)
	})
}
