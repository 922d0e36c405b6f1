package game_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-engine/card"
	"github.com/feel-easy/uno-engine/card/color"
	"github.com/feel-easy/uno-engine/card/value"
	"github.com/feel-easy/uno-engine/game"
)

func labels(cards []*card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Label())
	}
	return out
}

func TestFillDefault(t *testing.T) {
	t.Run("yields_the_standard_108_card_distribution", func(t *testing.T) {
		deck := game.NewDeck()
		deck.FillDefault()
		require.Equal(t, 108, deck.Size())

		counts := make(map[string]int)
		for _, c := range deck.Cards() {
			counts[c.Label()]++
		}
		for _, col := range color.All() {
			require.Equal(t, 1, counts[col.Name()+" ZERO"])
			for number := 1; number <= 9; number++ {
				val, err := value.ByNumber(number)
				require.NoError(t, err)
				require.Equal(t, 2, counts[col.Name()+" "+val.Name()])
			}
			require.Equal(t, 2, counts[col.Name()+" SKIP"])
			require.Equal(t, 2, counts[col.Name()+" REVERSE"])
			require.Equal(t, 2, counts[col.Name()+" DRAW_TWO"])
		}
		require.Equal(t, 4, counts["BLACK WILD"])
		require.Equal(t, 4, counts["BLACK WILD_DRAW_FOUR"])
	})

	t.Run("replaces_previous_content", func(t *testing.T) {
		deck := game.NewDeck()
		deck.AddCard(card.New(color.Red, value.Five))
		deck.FillDefault()
		require.Equal(t, 108, deck.Size())
		deck.FillDefault()
		require.Equal(t, 108, deck.Size())
	})
}

func TestShuffle(t *testing.T) {
	t.Run("is_a_permutation_of_the_same_cards", func(t *testing.T) {
		deck := game.NewDeck()
		deck.FillDefault()
		before := deck.Cards()
		deck.Shuffle()
		require.ElementsMatch(t, before, deck.Cards())
	})

	t.Run("is_reproducible_with_an_injected_source", func(t *testing.T) {
		deckOne := game.NewDeckWithRand(rand.New(rand.NewSource(42)))
		deckTwo := game.NewDeckWithRand(rand.New(rand.NewSource(42)))
		deckOne.FillDefault()
		deckTwo.FillDefault()
		require.Equal(t, labels(deckOne.Cards()), labels(deckTwo.Cards()))
	})
}

func TestTopCard(t *testing.T) {
	deck := game.NewDeck()
	require.Nil(t, deck.TopCard(false))

	bottom := card.New(color.Red, value.Five)
	top := card.New(color.Blue, value.Nine)
	deck.AddCard(bottom)
	deck.AddCard(top)

	require.Same(t, top, deck.TopCard(false))
	require.Equal(t, 2, deck.Size())

	require.Same(t, top, deck.TopCard(true))
	require.Same(t, bottom, deck.TopCard(false))
	require.Equal(t, 1, deck.Size())
}

func TestRemoveCard(t *testing.T) {
	t.Run("removes_by_identity_first", func(t *testing.T) {
		deck := game.NewDeck()
		twinOne := card.New(color.Red, value.Five)
		twinTwo := card.New(color.Red, value.Five)
		deck.AddCard(twinOne)
		deck.AddCard(twinTwo)

		require.True(t, deck.RemoveCard(twinOne))
		require.Equal(t, 1, deck.Size())
		require.Same(t, twinTwo, deck.TopCard(false))
	})

	t.Run("falls_back_to_color_and_value", func(t *testing.T) {
		deck := game.NewDeck()
		held := card.New(color.Red, value.Five)
		deck.AddCard(held)

		require.True(t, deck.RemoveCard(card.New(color.Red, value.Five)))
		require.Equal(t, 0, deck.Size())
	})

	t.Run("reports_missing_cards", func(t *testing.T) {
		deck := game.NewDeck()
		deck.AddCard(card.New(color.Red, value.Five))
		require.False(t, deck.RemoveCard(card.New(color.Blue, value.Nine)))
	})
}

func TestFind(t *testing.T) {
	newDeck := func() *game.Deck {
		deck := game.NewDeck()
		deck.AddCard(card.New(color.Black, value.Wild))
		deck.AddCard(card.New(color.Green, value.Nine))
		deck.AddCard(card.New(color.Red, value.Five))
		return deck
	}

	t.Run("returns_nil_without_criteria", func(t *testing.T) {
		require.Nil(t, newDeck().Find(color.None, value.None))
	})

	t.Run("finds_by_color", func(t *testing.T) {
		found := newDeck().Find(color.Green, value.None)
		require.NotNil(t, found)
		require.Equal(t, "GREEN NINE", found.Label())
	})

	t.Run("finds_by_value", func(t *testing.T) {
		found := newDeck().Find(color.None, value.Five)
		require.NotNil(t, found)
		require.Equal(t, "RED FIVE", found.Label())
	})

	t.Run("finds_by_color_and_value", func(t *testing.T) {
		require.Nil(t, newDeck().Find(color.Green, value.Five))
		require.NotNil(t, newDeck().Find(color.Red, value.Five))
	})

	t.Run("wild_search_ignores_color_and_declares_it", func(t *testing.T) {
		found := newDeck().Find(color.Blue, value.Wild)
		require.NotNil(t, found)
		require.True(t, found.IsWild())
		require.Equal(t, color.Blue, found.PickedColor())
	})
}

func TestColorCounts(t *testing.T) {
	deck := game.NewDeck()
	deck.AddCard(card.New(color.Red, value.Five))
	deck.AddCard(card.New(color.Red, value.Nine))
	deck.AddCard(card.New(color.Blue, value.Two))
	deck.AddCard(card.New(color.Black, value.Wild))

	require.Equal(t, map[string]int{"RED": 2, "BLUE": 1, "BLACK": 1}, deck.ColorCounts())
}

func TestDeckJSON(t *testing.T) {
	deck := game.NewDeck()
	deck.AddCard(card.New(color.Red, value.Five))
	deck.AddCard(card.New(color.Black, value.Wild))

	data, err := json.Marshal(deck)
	require.NoError(t, err)

	restored := game.NewDeck()
	require.NoError(t, json.Unmarshal(data, restored))
	require.Equal(t, labels(deck.Cards()), labels(restored.Cards()))
}
