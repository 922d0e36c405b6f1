package game

import (
	"math/rand"

	jsoniter "github.com/json-iterator/go"

	"github.com/feel-easy/uno-engine/card"
	"github.com/feel-easy/uno-engine/card/color"
	"github.com/feel-easy/uno-engine/card/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CardContainer is the ordered pile of cards the engine deals with. The same
// contract backs draw decks, the discard pile and player hands; hosts may
// substitute their own implementation through Config.NewDeck.
type CardContainer interface {
	Cards() []*card.Card
	Size() int
	TopCard(remove bool) *card.Card
	AddCard(c *card.Card)
	RemoveCard(c *card.Card) bool
	Find(col color.Color, val value.Value) *card.Card
	ColorCounts() map[string]int
	Shuffle()
	FillDefault()
}

// Deck is the default CardContainer. Index zero is the top.
type Deck struct {
	cards []*card.Card
	rng   *rand.Rand
}

func NewDeck() *Deck {
	return &Deck{}
}

// NewDeckWithRand shuffles with the given source instead of the shared one.
func NewDeckWithRand(rng *rand.Rand) *Deck {
	return &Deck{rng: rng}
}

func (d *Deck) Cards() []*card.Card {
	cards := make([]*card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

// TopCard peeks at the top card, or pops it when remove is set. Nil when the
// deck is empty.
func (d *Deck) TopCard(remove bool) *card.Card {
	if len(d.cards) == 0 {
		return nil
	}
	top := d.cards[0]
	if remove {
		d.cards = d.cards[1:]
	}
	return top
}

// AddCard puts the card on top.
func (d *Deck) AddCard(c *card.Card) {
	d.cards = append([]*card.Card{c}, d.cards...)
}

// RemoveCard removes the exact card when present, falling back to the first
// card with the same color and value.
func (d *Deck) RemoveCard(target *card.Card) bool {
	for i, c := range d.cards {
		if c == target {
			d.removeAt(i)
			return true
		}
	}
	for i, c := range d.cards {
		if c.Color() == target.Color() && c.Value() == target.Value() {
			d.removeAt(i)
			return true
		}
	}
	return false
}

func (d *Deck) removeAt(index int) {
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
}

// Find returns the first card matching the criteria, nil when none is given
// or none matches. Searching for a wild value ignores the color constraint;
// when a wild card is found and a color was asked for, the color is declared
// on the card right away, so hosts can pick a wild by its intended color.
func (d *Deck) Find(col color.Color, val value.Value) *card.Card {
	if col == color.None && val == value.None {
		return nil
	}
	for _, c := range d.cards {
		if val != value.None && c.Value() != val {
			continue
		}
		if col != color.None && !val.IsWild() && c.Color() != col {
			continue
		}
		if c.IsWild() && col != color.None && !col.IsBlack() {
			_ = c.PickColor(col)
		}
		return c
	}
	return nil
}

func (d *Deck) ColorCounts() map[string]int {
	counts := make(map[string]int)
	for _, c := range d.cards {
		counts[c.Color().Name()]++
	}
	return counts
}

func (d *Deck) Shuffle() {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// FillDefault throws away the current content and deals in the standard
// 108-card distribution, shuffled.
func (d *Deck) FillDefault() {
	d.cards = defaultCards()
	d.Shuffle()
}

func defaultCards() []*card.Card {
	cards := make([]*card.Card, 0, 108)
	for _, col := range color.All() {
		cards = append(cards, colorCards(col)...)
	}
	return append(cards, blackCards()...)
}

func colorCards(col color.Color) []*card.Card {
	cards := []*card.Card{card.New(col, value.Zero)}
	for number := 1; number <= 9; number++ {
		val, _ := value.ByNumber(number)
		cards = append(cards, card.New(col, val), card.New(col, val))
	}
	for _, val := range []value.Value{value.Skip, value.Reverse, value.DrawTwo} {
		cards = append(cards, card.New(col, val), card.New(col, val))
	}
	return cards
}

func blackCards() []*card.Card {
	cards := make([]*card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		cards = append(cards,
			card.New(color.Black, value.Wild),
			card.New(color.Black, value.WildDrawFour),
		)
	}
	return cards
}

func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.cards)
}

func (d *Deck) UnmarshalJSON(data []byte) error {
	var cards []*card.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return err
	}
	d.cards = cards
	return nil
}
