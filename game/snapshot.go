package game

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/feel-easy/uno-engine/card"
	"github.com/feel-easy/uno-engine/event"
)

type playerSnapshot struct {
	ID   int          `json:"id"`
	Name string       `json:"name"`
	Hand []*card.Card `json:"hand"`
}

type snapshot struct {
	Rotation       Rotation         `json:"rotation"`
	State          State            `json:"state"`
	StackAmount    int              `json:"stackAmount"`
	CurrentPlayer  *int             `json:"currentPlayer"`
	InitPlayers    []string         `json:"initPlayers"`
	Decks          [][]*card.Card   `json:"decks"`
	Players        []playerSnapshot `json:"players"`
	DiscardedCards []*card.Card     `json:"discardedCards"`
}

var requiredFields = []string{"initPlayers", "decks", "players", "discardedCards"}

// ToJSON snapshots everything needed to resume the game: rotation, state,
// pending stack, current player, decks, discard pile and every hand. Card
// lists are ordered top-first.
func (g *Game) ToJSON() ([]byte, error) {
	snap := snapshot{
		Rotation:       g.rotation,
		State:          g.state,
		StackAmount:    g.stackAmount,
		InitPlayers:    make([]string, 0, len(g.initPlayers)),
		Decks:          make([][]*card.Card, 0, len(g.decks)),
		Players:        make([]playerSnapshot, 0, len(g.players)),
		DiscardedCards: []*card.Card{},
	}
	for _, spec := range g.initPlayers {
		snap.InitPlayers = append(snap.InitPlayers, spec.displayName())
	}
	for _, deck := range g.decks {
		snap.Decks = append(snap.Decks, deck.Cards())
	}
	for _, p := range g.players {
		snap.Players = append(snap.Players, playerSnapshot{
			ID:   p.ID(),
			Name: p.Name(),
			Hand: p.Hand().Cards(),
		})
	}
	if g.discard != nil {
		snap.DiscardedCards = g.discard.Cards()
	}
	if g.current != nil {
		id := g.current.ID()
		snap.CurrentPlayer = &id
	}
	return json.Marshal(snap)
}

// FromJSON rebuilds a game from a ToJSON snapshot under the given config.
// Fails with a descriptive error when the payload is malformed or any of
// initPlayers, decks, players, discardedCards is absent.
func FromJSON(data []byte, cfg Config) (*Game, error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed game snapshot: %w", err)
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("game snapshot is missing required field '%s'", field)
		}
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("malformed game snapshot: %w", err)
	}

	rotation, err := ParseRotation(string(snap.Rotation))
	if err != nil {
		return nil, err
	}
	state, err := ParseState(string(snap.State))
	if err != nil {
		return nil, err
	}

	cfg = cfg.withDefaults()
	g := &Game{
		cfg:         cfg,
		events:      event.NewManager(),
		rng:         cfg.Rand,
		initPlayers: Names(snap.InitPlayers...),
		rotation:    rotation,
		state:       state,
		stackAmount: snap.StackAmount,
	}
	g.players = make([]Player, 0, len(snap.Players))
	for _, ps := range snap.Players {
		p := cfg.NewPlayer(ps.Name, ps.ID)
		fillContainer(p.Hand(), ps.Hand)
		g.players = append(g.players, p)
	}
	g.decks = make([]CardContainer, 0, len(snap.Decks))
	for _, cards := range snap.Decks {
		deck := cfg.NewDeck()
		fillContainer(deck, cards)
		g.decks = append(g.decks, deck)
	}
	g.discard = cfg.NewDeck()
	fillContainer(g.discard, snap.DiscardedCards)

	if snap.CurrentPlayer != nil {
		for _, p := range g.players {
			if p.ID() == *snap.CurrentPlayer {
				g.current = p
				break
			}
		}
		if g.current == nil {
			return nil, fmt.Errorf("game snapshot names unknown current player %d", *snap.CurrentPlayer)
		}
	}
	return g, nil
}

// fillContainer restores a top-first card list into a container whose
// AddCard inserts on top.
func fillContainer(container CardContainer, cards []*card.Card) {
	for i := len(cards) - 1; i >= 0; i-- {
		container.AddCard(cards[i])
	}
}
