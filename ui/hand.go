package ui

import (
	"fmt"
	"strings"

	"github.com/feel-easy/uno-engine/card"
)

const initialRune = 'A'

type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

// CardOptions labels each card with a letter and returns both the rendered
// menu line and the label lookup for reading the selection back.
func CardOptions(cards []*card.Card) (string, map[string]*card.Card) {
	sequence := runeSequence{}
	options := make(map[string]*card.Card, len(cards))
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		label := string(sequence.next())
		options[label] = c
		parts = append(parts, fmt.Sprintf("%s) %s", label, c))
	}
	return strings.Join(parts, "  "), options
}

// RenderHand is the whole hand on one line.
func RenderHand(cards []*card.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
