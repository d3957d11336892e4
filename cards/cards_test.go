package cards

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseSet(t *testing.T) {
	set := BaseSet()

	t.Run("has the full base game", func(t *testing.T) {
		assert.Equal(t, 105, set.Len())
		assert.Equal(t, 15, len(set.AgeIDs(1)))
		for a := Age(2); a <= MaxAge; a++ {
			assert.Equal(t, 10, len(set.AgeIDs(a)), "age %d", a)
		}
	})

	t.Run("every card is well formed", func(t *testing.T) {
		for _, id := range set.IDs() {
			c, ok := set.Card(id)
			assert.True(t, ok)
			assert.True(t, c.Color.Valid(), "%s has invalid color", c.Title)
			assert.True(t, c.DogmaIcon.Valid(), "%s has invalid dogma icon", c.Title)
			if len(c.Dogmas) == 0 {
				t.Errorf("%s has no dogma effects", c.Title)
			}
		}
	})

	t.Run("known cards", func(t *testing.T) {
		c, ok := set.Card(Archery)
		assert.True(t, ok)
		assert.Equal(t, "Archery", c.Title)
		assert.Equal(t, Age(1), c.Age)
		assert.Equal(t, Red, c.Color)
		assert.True(t, c.Dogmas[0].Demand)

		c, _ = set.Card(TheInternet)
		assert.Equal(t, Age(10), c.Age)
		assert.Equal(t, 3, len(c.Dogmas))
	})
}

func TestNewSetValidation(t *testing.T) {
	valid := func() Card {
		return Card{ID: 1, Title: "Test", Age: 1, Color: Red, DogmaIcon: Castle}
	}

	tt := []struct {
		name   string
		mutate func(*Card)
		want   error
	}{
		{"zero id", func(c *Card) { c.ID = 0 }, ErrInvalidCard},
		{"empty title", func(c *Card) { c.Title = "" }, ErrInvalidCard},
		{"age too low", func(c *Card) { c.Age = 0 }, ErrInvalidCard},
		{"age too high", func(c *Card) { c.Age = 11 }, ErrInvalidCard},
		{"bad color", func(c *Card) { c.Color = Color(9) }, ErrInvalidCard},
		{"bad dogma icon", func(c *Card) { c.DogmaIcon = IconNone }, ErrInvalidCard},
		{"too many dogmas", func(c *Card) {
			c.Dogmas = []Dogma{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}}
		}, ErrInvalidCard},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			_, err := NewSet([]Card{c})
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewSet([]Card{valid(), valid()})
		if !errors.Is(err, ErrDuplicateCard) {
			t.Fatalf("want ErrDuplicateCard, got %v", err)
		}
	})
}

func TestLoadJSON(t *testing.T) {
	t.Run("round trips the base table", func(t *testing.T) {
		base := BaseSet()
		list := make([]Card, 0, base.Len())
		for _, id := range base.IDs() {
			c, _ := base.Card(id)
			list = append(list, c)
		}

		raw, err := json.Marshal(list)
		assert.NoError(t, err)

		loaded, err := LoadJSON(bytes.NewReader(raw))
		assert.NoError(t, err)
		assert.Equal(t, base.Len(), loaded.Len())

		want, _ := base.Card(Pottery)
		got, ok := loaded.Card(Pottery)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := LoadJSON(bytes.NewReader([]byte("{not json")))
		assert.Error(t, err)
	})
}
