package ui

import (
	"github.com/feel-easy/uno-engine/event"
)

// Announcer narrates game events on the terminal. Register it on a game's
// event manager.
type Announcer struct{}

func (Announcer) OnCardPlayed(payload event.CardPlayedPayload) {
	Printfln("%s played %s!", payload.PlayerName, payload.Card)
}

func (Announcer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if len(payload.Cards) == 1 {
		Printfln("%s drew a card!", payload.PlayerName)
		return
	}
	Printfln("%s drew %d cards!", payload.PlayerName, len(payload.Cards))
}

func (Announcer) OnTurnChanged(payload event.TurnChangedPayload) {
	Printfln("It's %s's turn!", payload.PlayerName)
}

// Announce registers the announcer for every event kind.
func Announce(events *event.Manager) {
	announcer := Announcer{}
	events.CardPlayed.AddListener(announcer)
	events.CardsDrawn.AddListener(announcer)
	events.TurnChanged.AddListener(announcer)
}
