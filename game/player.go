package game

import (
	"github.com/feel-easy/uno-engine/card"
)

// Player is what the engine needs from a seat at the table. BasicPlayer is
// the stock implementation; hosts may substitute their own through
// Config.NewPlayer.
type Player interface {
	ID() int
	Name() string
	Hand() CardContainer
	PlayableCards(top *card.Card, toPlay bool, stacking bool) []*card.Card
}

type BasicPlayer struct {
	id   int
	name string
	hand CardContainer
}

func NewBasicPlayer(name string, id int) *BasicPlayer {
	return &BasicPlayer{id: id, name: name, hand: NewDeck()}
}

func (p *BasicPlayer) ID() int {
	return p.id
}

func (p *BasicPlayer) Name() string {
	return p.name
}

func (p *BasicPlayer) Hand() CardContainer {
	return p.hand
}

// PlayableCards filters the hand down to the cards valid on the given top
// card.
func (p *BasicPlayer) PlayableCards(top *card.Card, toPlay bool, stacking bool) []*card.Card {
	var playable []*card.Card
	for _, c := range p.hand.Cards() {
		if c.ValidOn(top, toPlay, stacking) {
			playable = append(playable, c)
		}
	}
	return playable
}

// PlayerSpec names a seat before the game starts: either a bare name the
// engine materializes into a BasicPlayer at Start, or a ready-made Player.
type PlayerSpec struct {
	name   string
	player Player
}

func Named(name string) PlayerSpec {
	return PlayerSpec{name: name}
}

func Handle(player Player) PlayerSpec {
	return PlayerSpec{player: player}
}

// Names is a convenience for an all-named table.
func Names(names ...string) []PlayerSpec {
	specs := make([]PlayerSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, Named(name))
	}
	return specs
}

func (s PlayerSpec) resolve(id int, newPlayer func(name string, id int) Player) Player {
	if s.player != nil {
		return s.player
	}
	return newPlayer(s.name, id)
}

func (s PlayerSpec) displayName() string {
	if s.player != nil {
		return s.player.Name()
	}
	return s.name
}
