package game

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cast"

	"github.com/feel-easy/uno-engine/card"
)

const (
	DefaultPlayersPerDeck = 10
	DefaultInitialCards   = 7
)

// Config is read once, at construction and Start; the zero value gives a
// standard game.
type Config struct {
	// DefaultRotation is the direction of the first turn. Clockwise if empty.
	DefaultRotation Rotation
	// PlayersPerDeck decides how many physical decks get shuffled in:
	// ceil(players / PlayersPerDeck).
	PlayersPerDeck int
	// InitialCards is the hand size dealt at Start.
	InitialCards int
	// StackCards enables the draw-two / wild-draw-four stacking rule.
	StackCards bool

	// NewDeck substitutes the card container used for decks, piles and the
	// hands of engine-made players. Must return an empty container.
	NewDeck func() CardContainer
	// NewPlayer substitutes the player implementation materialized for named
	// seats.
	NewPlayer func(name string, id int) Player
	// OnCardPlayed fully replaces the built-in special-card dispatch.
	OnCardPlayed func(g *Game, c *card.Card)

	// Rand drives shuffles and random picks; the shared source when nil.
	Rand *rand.Rand
}

func (c Config) withDefaults() Config {
	if c.DefaultRotation == "" {
		c.DefaultRotation = Clockwise
	}
	if c.PlayersPerDeck <= 0 {
		c.PlayersPerDeck = DefaultPlayersPerDeck
	}
	if c.InitialCards <= 0 {
		c.InitialCards = DefaultInitialCards
	}
	if c.NewDeck == nil {
		rng := c.Rand
		c.NewDeck = func() CardContainer { return NewDeckWithRand(rng) }
	}
	if c.NewPlayer == nil {
		c.NewPlayer = func(name string, id int) Player { return NewBasicPlayer(name, id) }
	}
	return c
}

// ConfigFromMap builds a Config from a loosely-typed option map, as read from
// a JSON file or a client payload. Unknown keys are rejected.
func ConfigFromMap(options map[string]interface{}) (Config, error) {
	var cfg Config
	for key, raw := range options {
		var err error
		switch key {
		case "defaultRotation":
			cfg.DefaultRotation, err = ParseRotation(cast.ToString(raw))
		case "playersPerDeck":
			cfg.PlayersPerDeck, err = cast.ToIntE(raw)
		case "initialCards":
			cfg.InitialCards, err = cast.ToIntE(raw)
		case "stackCards":
			cfg.StackCards, err = cast.ToBoolE(raw)
		default:
			return Config{}, fmt.Errorf("unrecognized game option '%s'", key)
		}
		if err != nil {
			return Config{}, fmt.Errorf("bad game option '%s': %w", key, err)
		}
	}
	return cfg, nil
}
