// Package gamelog bridges engine events into structured logs.
package gamelog

import (
	"github.com/rs/zerolog"

	"github.com/feel-easy/uno-engine/event"
	"github.com/feel-easy/uno-engine/game"
)

// Listener writes a structured play-by-play through zerolog.
type Listener struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Listener {
	return &Listener{log: log}
}

// Register attaches a listener for every event kind of the game.
func Register(g *game.Game, log zerolog.Logger) *Listener {
	listener := New(log)
	events := g.Events()
	events.CardPlayed.AddListener(listener)
	events.CardsDrawn.AddListener(listener)
	events.TurnChanged.AddListener(listener)
	return listener
}

func (l *Listener) OnCardPlayed(payload event.CardPlayedPayload) {
	l.log.Info().
		Str("player", payload.PlayerName).
		Str("card", payload.Card.Label()).
		Str("next", payload.NextPlayerName).
		Msg("card played")
}

func (l *Listener) OnCardsDrawn(payload event.CardsDrawnPayload) {
	l.log.Info().
		Str("player", payload.PlayerName).
		Int("count", len(payload.Cards)).
		Msg("cards drawn")
}

func (l *Listener) OnTurnChanged(payload event.TurnChangedPayload) {
	l.log.Debug().
		Str("player", payload.PlayerName).
		Msg("turn changed")
}
