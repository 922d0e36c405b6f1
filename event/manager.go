// Package event is the notification side of the engine: one typed emitter
// per event kind, each dispatching synchronously and in registration order.
// Listeners are passive observers and must not call back into the engine.
package event

// Manager bundles the emitters of a single game, so observers of one game
// never hear about another running in the same process.
type Manager struct {
	CardPlayed  CardPlayedEmitter
	CardsDrawn  CardsDrawnEmitter
	TurnChanged TurnChangedEmitter
}

func NewManager() *Manager {
	return &Manager{}
}
