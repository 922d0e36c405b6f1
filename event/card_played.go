package event

import "github.com/feel-easy/uno-engine/card"

// CardPlayedPayload carries the played card together with the player who was
// computed to act next at the moment the card landed on the pile.
type CardPlayedPayload struct {
	PlayerName     string
	NextPlayerName string
	Card           *card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type CardPlayedEmitter struct {
	listeners []CardPlayedListener
}

func (e *CardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
