package card_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-engine/card"
	"github.com/feel-easy/uno-engine/card/color"
	"github.com/feel-easy/uno-engine/card/value"
)

func TestNew(t *testing.T) {
	t.Run("derives_the_wild_flag", func(t *testing.T) {
		require.True(t, card.New(color.Black, value.Wild).IsWild())
		require.True(t, card.New(color.Black, value.WildDrawFour).IsWild())
		require.False(t, card.New(color.Red, value.Five).IsWild())
		require.False(t, card.New(color.Black, value.Five).IsWild())
	})

	t.Run("wild_cards_start_with_black_picked_color", func(t *testing.T) {
		require.Equal(t, color.Black, card.New(color.Black, value.Wild).PickedColor())
		require.Equal(t, color.None, card.New(color.Red, value.Five).PickedColor())
	})

	t.Run("new_wild_flags_explicitly", func(t *testing.T) {
		c := card.NewWild(color.Red, value.Five)
		require.True(t, c.IsWild())
		require.Equal(t, color.Black, c.PickedColor())
	})
}

func TestValidOn(t *testing.T) {
	redFive := func() *card.Card { return card.New(color.Red, value.Five) }
	wild := func() *card.Card { return card.New(color.Black, value.Wild) }
	wildFour := func() *card.Card { return card.New(color.Black, value.WildDrawFour) }
	drawTwo := func(col color.Color) *card.Card { return card.New(col, value.DrawTwo) }

	t.Run("never_valid_without_a_top_card", func(t *testing.T) {
		require.False(t, redFive().ValidOn(nil, false, false))
		require.False(t, wild().ValidOn(nil, false, false))
	})

	t.Run("matches_by_color_or_value", func(t *testing.T) {
		require.True(t, redFive().ValidOn(card.New(color.Red, value.Nine), true, false))
		require.True(t, redFive().ValidOn(card.New(color.Blue, value.Five), true, false))
		require.False(t, redFive().ValidOn(card.New(color.Blue, value.Six), true, false))
	})

	t.Run("stacking_allows_only_matching_penalty_cards", func(t *testing.T) {
		require.True(t, drawTwo(color.Red).ValidOn(drawTwo(color.Blue), true, true))
		require.True(t, wildFour().ValidOn(wildFour(), true, true))
		require.False(t, wildFour().ValidOn(drawTwo(color.Blue), true, true))
		require.False(t, drawTwo(color.Red).ValidOn(wildFour(), true, true))
		require.False(t, redFive().ValidOn(redFive(), true, true))
	})

	t.Run("wild_is_never_valid_on_another_wild", func(t *testing.T) {
		topWild := wild()
		require.NoError(t, topWild.PickColor(color.Green))
		topWild.CommitWildColor()
		require.False(t, wild().ValidOn(topWild, false, false))
		require.False(t, wildFour().ValidOn(topWild, true, false))
	})

	t.Run("undeclared_wild_is_listable_but_not_playable", func(t *testing.T) {
		top := card.New(color.Green, value.Two)
		c := wild()
		require.True(t, c.ValidOn(top, false, false))
		require.False(t, c.ValidOn(top, true, false))

		require.NoError(t, c.PickColor(color.Blue))
		require.True(t, c.ValidOn(top, true, false))
	})
}

func TestPickColor(t *testing.T) {
	t.Run("rejects_non_wild_cards", func(t *testing.T) {
		require.Error(t, card.New(color.Red, value.Five).PickColor(color.Blue))
	})

	t.Run("rejects_black_and_zero_colors", func(t *testing.T) {
		c := card.New(color.Black, value.Wild)
		require.Error(t, c.PickColor(color.Black))
		require.Error(t, c.PickColor(color.None))
	})
}

func TestCommitWildColor(t *testing.T) {
	c := card.New(color.Black, value.Wild)
	require.NoError(t, c.PickColor(color.Yellow))
	c.CommitWildColor()
	require.Equal(t, color.Yellow, c.Color())

	plain := card.New(color.Red, value.Five)
	plain.CommitWildColor()
	require.Equal(t, color.Red, plain.Color())
}

func TestSetters(t *testing.T) {
	c := card.New(color.Red, value.Five)
	c.SetColor(color.Blue)
	require.Equal(t, color.Blue, c.Color())
	c.SetValue(value.Nine)
	require.Equal(t, value.Nine, c.Value())

	require.NoError(t, c.SetColorName("green"))
	require.Equal(t, color.Green, c.Color())
	require.Error(t, c.SetColorName("PURPLE"))

	require.NoError(t, c.SetValueName("SKIP"))
	require.Equal(t, value.Skip, c.Value())
	require.Error(t, c.SetValueName("TEN"))
}

func TestEqual(t *testing.T) {
	require.True(t, card.New(color.Red, value.Five).Equal(card.New(color.Red, value.Five)))
	require.False(t, card.New(color.Red, value.Five).Equal(card.New(color.Blue, value.Five)))
	require.False(t, card.New(color.Red, value.Five).Equal(nil))
	require.False(t, card.New(color.Red, value.Five).Equal(card.NewWild(color.Red, value.Five)))
}

func TestJSON(t *testing.T) {
	t.Run("plain_card_round_trips_with_null_picked_color", func(t *testing.T) {
		data, err := json.Marshal(card.New(color.Red, value.Five))
		require.NoError(t, err)
		require.JSONEq(t, `{"color":"RED","value":"FIVE","wild":false,"pickedColor":null}`, string(data))

		restored := &card.Card{}
		require.NoError(t, json.Unmarshal(data, restored))
		require.Equal(t, color.Red, restored.Color())
		require.Equal(t, value.Five, restored.Value())
		require.False(t, restored.IsWild())
	})

	t.Run("wild_card_keeps_its_picked_color", func(t *testing.T) {
		c := card.New(color.Black, value.WildDrawFour)
		require.NoError(t, c.PickColor(color.Green))
		data, err := json.Marshal(c)
		require.NoError(t, err)

		restored := &card.Card{}
		require.NoError(t, json.Unmarshal(data, restored))
		require.True(t, restored.IsWild())
		require.Equal(t, color.Green, restored.PickedColor())
	})

	t.Run("wild_card_without_picked_color_defaults_to_black", func(t *testing.T) {
		restored := &card.Card{}
		payload := `{"color":"BLACK","value":"WILD","wild":true,"pickedColor":null}`
		require.NoError(t, json.Unmarshal([]byte(payload), restored))
		require.Equal(t, color.Black, restored.PickedColor())
	})
}
