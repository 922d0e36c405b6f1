package card

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/feel-easy/uno-engine/card/color"
	"github.com/feel-easy/uno-engine/card/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Card combines a color and a face value. Wild cards carry a picked color,
// Black until the player declares one; committing a play fixes the card's
// color to the picked one.
type Card struct {
	color  color.Color
	value  value.Value
	wild   bool
	picked color.Color
}

// New derives the wild flag from the pair itself: a wild-capable face with
// the Black color is a wild card.
func New(col color.Color, val value.Value) *Card {
	c := &Card{color: col, value: val}
	if col.IsBlack() && val.IsWild() {
		c.wild = true
		c.picked = color.Black
	}
	return c
}

// NewWild flags the card wild regardless of its color and value.
func NewWild(col color.Color, val value.Value) *Card {
	c := New(col, val)
	c.wild = true
	if c.picked == color.None {
		c.picked = color.Black
	}
	return c
}

func (c *Card) Color() color.Color {
	return c.color
}

func (c *Card) Value() value.Value {
	return c.value
}

func (c *Card) IsWild() bool {
	return c.wild
}

// PickedColor is Black for a wild card whose color has not been declared yet
// and None for non-wild cards.
func (c *Card) PickedColor() color.Color {
	return c.picked
}

// PickColor declares the color a wild card will take once played.
func (c *Card) PickColor(col color.Color) error {
	if !c.wild {
		return fmt.Errorf("cannot pick a color for non-wild card %s", c.Label())
	}
	if col == color.None || col.IsBlack() {
		return fmt.Errorf("a wild card needs one of the four playable colors")
	}
	c.picked = col
	return nil
}

// CommitWildColor turns the wild card into its picked color. Called by the
// engine at the moment the card hits the discard pile.
func (c *Card) CommitWildColor() {
	if !c.wild {
		return
	}
	c.color = c.picked
}

func (c *Card) SetColor(col color.Color) {
	c.color = col
}

// SetColorName is SetColor for a raw symbol.
func (c *Card) SetColorName(name string) error {
	col, err := color.ByName(name)
	if err != nil {
		return err
	}
	c.color = col
	return nil
}

func (c *Card) SetValue(val value.Value) {
	c.value = val
}

// SetValueName is SetValue for a raw symbol.
func (c *Card) SetValueName(name string) error {
	val, err := value.ByName(name)
	if err != nil {
		return err
	}
	c.value = val
	return nil
}

// Matches reports whether the two cards share a color or a face value.
func (c *Card) Matches(other *Card) bool {
	return c.color == other.color || c.value == other.value
}

func (c *Card) Equal(other *Card) bool {
	return other != nil && c.color == other.color && c.value == other.value && c.wild == other.wild
}

// ValidOn decides whether the card may sit on top of the given discard card.
// toPlay distinguishes committing the card from merely listing it as an
// option; stacking restricts play to counter cards of a pending draw stack.
func (c *Card) ValidOn(top *Card, toPlay bool, stacking bool) bool {
	if top == nil {
		return false
	}
	if stacking {
		if c.value != top.value {
			return false
		}
		return c.value == value.DrawTwo || c.value == value.WildDrawFour
	}
	if c.wild {
		if top.wild {
			return false
		}
		if !toPlay {
			return true
		}
		return c.picked != color.Black && c.picked != color.None
	}
	return c.Matches(top)
}

// Label is the unpainted "COLOR VALUE" form, for logs and error messages.
func (c *Card) Label() string {
	return c.color.Name() + " " + c.value.Name()
}

func (c *Card) String() string {
	var text string
	switch c.value {
	case value.Skip:
		text = "(/)"
	case value.Reverse:
		text = "<=>"
	case value.DrawTwo:
		text = "+2!"
	case value.Wild:
		text = "(*)"
	case value.WildDrawFour:
		text = "+4!"
	default:
		number, _ := c.value.Number()
		text = fmt.Sprintf("[%d]", number)
	}
	return c.color.Paint(text)
}

type cardJSON struct {
	Color  color.Color  `json:"color"`
	Value  value.Value  `json:"value"`
	Wild   bool         `json:"wild"`
	Picked *color.Color `json:"pickedColor"`
}

func (c *Card) MarshalJSON() ([]byte, error) {
	payload := cardJSON{
		Color: c.color,
		Value: c.value,
		Wild:  c.wild,
	}
	if c.picked != color.None {
		picked := c.picked
		payload.Picked = &picked
	}
	return json.Marshal(payload)
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var payload cardJSON
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	c.color = payload.Color
	c.value = payload.Value
	c.wild = payload.Wild
	c.picked = color.None
	if payload.Picked != nil {
		c.picked = *payload.Picked
	} else if c.wild {
		c.picked = color.Black
	}
	return nil
}
