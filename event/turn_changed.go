package event

type TurnChangedPayload struct {
	PlayerName string
}

type TurnChangedListener interface {
	OnTurnChanged(TurnChangedPayload)
}

type TurnChangedEmitter struct {
	listeners []TurnChangedListener
}

func (e *TurnChangedEmitter) AddListener(listener TurnChangedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnChangedEmitter) Emit(payload TurnChangedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnChanged(payload)
	}
}
