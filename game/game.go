// Package game is the UNO turn and state engine: deck mechanics, turn
// rotation, special-card effects and the optional draw-stacking rule. The
// engine is single-actor and synchronous; it performs no I/O and no locking,
// the host loop serializes calls per game instance.
package game

import (
	"fmt"
	"math/rand"

	"github.com/feel-easy/uno-engine/card"
	"github.com/feel-easy/uno-engine/card/color"
	"github.com/feel-easy/uno-engine/card/value"
	"github.com/feel-easy/uno-engine/event"
)

// Game owns the players, the draw decks, the discard pile, the turn pointer
// and the stacked-draw sub-state. Rule violations come back as false from
// Play and Draw so the host can re-prompt; everything else errors loudly.
type Game struct {
	cfg    Config
	events *event.Manager
	rng    *rand.Rand

	initPlayers []PlayerSpec
	players     []Player
	current     Player

	rotation    Rotation
	state       State
	stackAmount int

	decks   []CardContainer
	discard CardContainer
}

func New(players []PlayerSpec, cfg Config) *Game {
	cfg = cfg.withDefaults()
	return &Game{
		cfg:         cfg,
		events:      event.NewManager(),
		rng:         cfg.Rand,
		initPlayers: players,
		rotation:    cfg.DefaultRotation,
		state:       StateNotStarted,
	}
}

func (g *Game) Events() *event.Manager {
	return g.events
}

func (g *Game) Players() []Player {
	players := make([]Player, len(g.players))
	copy(players, g.players)
	return players
}

func (g *Game) CurrentPlayer() Player {
	return g.current
}

func (g *Game) Rotation() Rotation {
	return g.rotation
}

func (g *Game) State() State {
	return g.state
}

// StackAmount is the pending draw total while the game sits in STACK_DRAW.
func (g *Game) StackAmount() int {
	return g.stackAmount
}

// Stacking reports whether plays are currently restricted to counter cards.
func (g *Game) Stacking() bool {
	return g.cfg.StackCards && g.state == StateStackDraw
}

func (g *Game) DiscardPile() CardContainer {
	return g.discard
}

func (g *Game) Decks() []CardContainer {
	decks := make([]CardContainer, len(g.decks))
	copy(decks, g.decks)
	return decks
}

// Start deals the table: one shuffled deck per PlayersPerDeck players, the
// configured hand for every seat, a random first player and a random opening
// card that is neither wild nor an action card. Fails on fewer than two
// players and on a second call.
func (g *Game) Start() error {
	if g.state != StateNotStarted {
		return fmt.Errorf("game has already started")
	}
	if len(g.initPlayers) < 2 {
		return fmt.Errorf("a game needs at least 2 players, got %d", len(g.initPlayers))
	}

	deckCount := (len(g.initPlayers) + g.cfg.PlayersPerDeck - 1) / g.cfg.PlayersPerDeck
	g.decks = make([]CardContainer, 0, deckCount)
	for i := 0; i < deckCount; i++ {
		deck := g.cfg.NewDeck()
		deck.FillDefault()
		g.decks = append(g.decks, deck)
	}
	g.discard = g.cfg.NewDeck()

	g.players = make([]Player, 0, len(g.initPlayers))
	for i, spec := range g.initPlayers {
		g.players = append(g.players, spec.resolve(i, g.cfg.NewPlayer))
	}
	for _, p := range g.players {
		g.DrawWith(p, DrawOptions{
			Count:      g.cfg.InitialCards,
			KeepTurn:   true,
			SilentDraw: true,
			Force:      true,
		})
	}

	g.current = g.players[g.intn(len(g.players))]
	opening := g.pickOpeningCard()
	if opening == nil {
		return fmt.Errorf("no valid opening card left in the draw decks")
	}
	g.discard.AddCard(opening)
	g.state = StatePlaying
	return nil
}

// pickOpeningCard draws a uniformly random card that may legally open the
// discard pile: not wild, and none of DRAW_TWO, REVERSE, SKIP.
func (g *Game) pickOpeningCard() *card.Card {
	type candidate struct {
		deck CardContainer
		c    *card.Card
	}
	var candidates []candidate
	for _, deck := range g.decks {
		for _, c := range deck.Cards() {
			if c.Color().IsBlack() {
				continue
			}
			switch c.Value() {
			case value.DrawTwo, value.Reverse, value.Skip:
				continue
			}
			candidates = append(candidates, candidate{deck: deck, c: c})
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	picked := candidates[g.intn(len(candidates))]
	picked.deck.RemoveCard(picked.c)
	return picked.c
}

// DrawOptions tweak a single Draw. The zero value is a regular one-card draw
// by the current player: audible, turn-consuming, turn-enforced.
type DrawOptions struct {
	// Count of cards to draw; one if zero. Ignored while a draw stack is
	// pending, the stacked amount wins.
	Count int
	// KeepTurn suppresses the turn advance after drawing.
	KeepTurn bool
	// SilentDraw suppresses the CardsDrawn event.
	SilentDraw bool
	// SilentAdvance suppresses the TurnChanged event of the advance.
	SilentAdvance bool
	// Force bypasses the current-player check; used for dealt hands and draw
	// penalties.
	Force bool
}

// Draw makes the player take count cards from the draw pile and pass the
// turn. False when it is not the player's turn, the count is not positive, or
// the table ran out of cards before the count was satisfied.
func (g *Game) Draw(player Player, count int) bool {
	if count <= 0 {
		return false
	}
	return g.DrawWith(player, DrawOptions{Count: count})
}

// DrawWith is Draw with full control over turn handling, events and
// enforcement. A pending draw stack is resolved here: the stacked amount
// overrides the count and the game returns to PLAYING.
func (g *Game) DrawWith(player Player, opts DrawOptions) bool {
	if player == nil || opts.Count < 0 {
		return false
	}
	if !opts.Force && player != g.current {
		return false
	}
	count := opts.Count
	if count == 0 {
		count = 1
	}
	if g.state == StateStackDraw {
		count = g.stackAmount
		g.stackAmount = 0
		g.state = StatePlaying
	}

	drawn := make([]*card.Card, 0, count)
	for len(drawn) < count {
		c := g.activeDeck().TopCard(true)
		if c == nil {
			break
		}
		player.Hand().AddCard(c)
		drawn = append(drawn, c)
	}

	if !opts.SilentDraw && len(drawn) > 0 {
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: player.Name(),
			Cards:      drawn,
		})
	}
	if !opts.KeepTurn {
		g.advanceTurn(opts.SilentAdvance)
	}
	return len(drawn) == count
}

// Play commits a card from the player's hand onto the discard pile, applying
// its effect. False, with no state touched, when the player is not current,
// does not hold the card, or the card is not valid on the discard top.
func (g *Game) Play(player Player, c *card.Card) bool {
	if player == nil || c == nil || g.state == StateNotStarted {
		return false
	}
	if player != g.current {
		return false
	}
	if !holdsCard(player, c) {
		return false
	}
	if !c.ValidOn(g.discard.TopCard(false), true, g.Stacking()) {
		return false
	}

	if c.IsWild() {
		c.CommitWildColor()
	}
	g.performCardEffect(c)
	player.Hand().RemoveCard(c)
	g.discard.AddCard(c)

	next := g.NextPlayer()
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName:     player.Name(),
		NextPlayerName: next.Name(),
		Card:           c,
	})
	g.advanceTurn(false)
	return true
}

func holdsCard(player Player, c *card.Card) bool {
	for _, held := range player.Hand().Cards() {
		if held == c || held.Equal(c) {
			return true
		}
	}
	return false
}

func (g *Game) performCardEffect(c *card.Card) {
	if g.cfg.OnCardPlayed != nil {
		g.cfg.OnCardPlayed(g, c)
		return
	}
	switch c.Value() {
	case value.Reverse:
		g.rotation = g.rotation.Flip()
		if len(g.players) == 2 {
			// with two players a reverse behaves like a skip
			g.advanceTurn(true)
		}
	case value.Skip:
		g.advanceTurn(true)
	case value.DrawTwo:
		g.applyDrawPenalty(c, 2)
	case value.WildDrawFour:
		g.applyDrawPenalty(c, 4)
	}
}

// applyDrawPenalty either grows the pending stack, when stacking is on and
// the next player can counter or a stack is already pending, or makes the
// next player take the cards on the spot, consuming their turn.
func (g *Game) applyDrawPenalty(c *card.Card, amount int) {
	next := g.NextPlayer()
	canStack := g.cfg.StackCards &&
		(g.state == StateStackDraw || next.Hand().Find(color.None, c.Value()) != nil)
	if canStack {
		g.stackAmount += amount
		g.state = StateStackDraw
		return
	}
	g.DrawWith(next, DrawOptions{Count: amount, Force: true, SilentAdvance: true})
}

// NextPlayer is the player the turn passes to next, under the current
// rotation.
func (g *Game) NextPlayer() Player {
	p, _ := g.NextFrom(g.rotation, g.current)
	return p
}

// NextFrom computes the player one seat from the given one in the given
// rotation. A nil player yields a uniformly random seat.
func (g *Game) NextFrom(rotation Rotation, from Player) (Player, error) {
	var step int
	switch rotation {
	case Clockwise:
		step = 1
	case CounterClockwise:
		step = -1
	default:
		return nil, fmt.Errorf("invalid rotation '%s'", string(rotation))
	}
	if len(g.players) == 0 {
		return nil, fmt.Errorf("game has no players yet")
	}
	if from == nil {
		return g.players[g.intn(len(g.players))], nil
	}
	index := -1
	for i, p := range g.players {
		if p == from {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("player %s is not part of this game", from.Name())
	}
	count := len(g.players)
	return g.players[(index+step+count)%count], nil
}

func (g *Game) advanceTurn(silent bool) {
	next := g.NextPlayer()
	if next == nil {
		return
	}
	g.current = next
	if !silent {
		g.events.TurnChanged.Emit(event.TurnChangedPayload{PlayerName: next.Name()})
	}
}

// activeDeck is the first draw deck with cards left. When all are empty the
// discard pile minus its top card becomes the single new deck, shuffled; an
// empty container comes back when the table is truly out of cards.
func (g *Game) activeDeck() CardContainer {
	for _, deck := range g.decks {
		if deck.Size() > 0 {
			return deck
		}
	}
	top := g.discard.TopCard(true)
	refill := g.cfg.NewDeck()
	for {
		c := g.discard.TopCard(true)
		if c == nil {
			break
		}
		refill.AddCard(c)
	}
	refill.Shuffle()
	if top != nil {
		g.discard.AddCard(top)
	}
	g.decks = []CardContainer{refill}
	return refill
}

// Winner is the first player with an empty hand, nil while the round is
// still going. The engine never closes the game itself; the host loop checks
// this after every action.
func (g *Game) Winner() Player {
	if g.state == StateNotStarted {
		return nil
	}
	for _, p := range g.players {
		if p.Hand().Size() == 0 {
			return p
		}
	}
	return nil
}

func (g *Game) Finished() bool {
	return g.Winner() != nil
}

func (g *Game) intn(n int) int {
	if g.rng != nil {
		return g.rng.Intn(n)
	}
	return rand.Intn(n)
}
