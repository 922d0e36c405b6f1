// Package player holds card-picking strategies for seats the host wants the
// engine to drive, such as bots in the demo driver.
package player

import (
	"github.com/feel-easy/uno-engine/card"
	"github.com/feel-easy/uno-engine/card/color"
	"github.com/feel-easy/uno-engine/game"
)

// Naive plays the first playable card it sees and declares the color it
// holds the most of on wilds. Nil means the seat has nothing to play and
// should draw.
type Naive struct{}

func (Naive) Choose(g *game.Game, p game.Player) *card.Card {
	top := g.DiscardPile().TopCard(false)
	playable := p.PlayableCards(top, false, g.Stacking())
	if len(playable) == 0 {
		return nil
	}
	pick := playable[0]
	if pick.IsWild() {
		_ = pick.PickColor(MajorityColor(p.Hand()))
	}
	return pick
}

// MajorityColor is the playable color the hand holds the most cards of.
func MajorityColor(hand game.CardContainer) color.Color {
	counts := hand.ColorCounts()
	best := color.Red
	bestCount := -1
	for _, col := range color.All() {
		if counts[col.Name()] > bestCount {
			best = col
			bestCount = counts[col.Name()]
		}
	}
	return best
}
