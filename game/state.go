package game

import "fmt"

// State is the coarse lifecycle of a game. StateContest is reserved for a
// future wild-draw-four challenge rule; nothing transitions into it yet.
type State string

const (
	StateNotStarted State = "NOT_STARTED"
	StatePlaying    State = "PLAYING"
	StateStackDraw  State = "STACK_DRAW"
	StateContest    State = "CONTEST"
)

func ParseState(s string) (State, error) {
	switch State(s) {
	case StateNotStarted, StatePlaying, StateStackDraw, StateContest:
		return State(s), nil
	}
	return "", fmt.Errorf("invalid game state '%s'", s)
}

// Rotation is the direction turns advance around the player list.
type Rotation string

const (
	Clockwise        Rotation = "CW"
	CounterClockwise Rotation = "CCW"
)

func ParseRotation(s string) (Rotation, error) {
	switch Rotation(s) {
	case Clockwise, CounterClockwise:
		return Rotation(s), nil
	}
	return "", fmt.Errorf("invalid rotation '%s'", s)
}

func (r Rotation) Flip() Rotation {
	if r == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}
