package game

import (
	"fmt"
	"time"
)

// Mulligan tracks which opening cards white wants to replace. PreHand is
// the hand as it was before confirming, kept for the swap animation.
type Mulligan struct {
	Marked  []bool
	PreHand []CardID
}

// Count is the number of cards marked for replacement.
func (m Mulligan) Count() int {
	n := 0
	for _, marked := range m.Marked {
		if marked {
			n++
		}
	}
	return n
}

// ToggleMulligan marks or unmarks the i-th opening card.
func (g *Game) ToggleMulligan(i int) error {
	if g.State != StateMulligan {
		return fmt.Errorf("%w: %s", ErrWrongState, g.State)
	}
	if i < 0 || i >= len(g.Mulligan.Marked) {
		return fmt.Errorf("%w: %d", ErrNoSuchCard, i)
	}
	g.Mulligan.Marked[i] = !g.Mulligan.Marked[i]
	return nil
}

// ConfirmMulligan shuffles the marked cards back into the deck, then
// replaces each of them in place with a fresh draw.
func (g *Game) ConfirmMulligan(now time.Time) error {
	if g.State != StateMulligan {
		return fmt.Errorf("%w: %s", ErrWrongState, g.State)
	}
	p := g.White
	g.Mulligan.PreHand = append([]CardID{}, p.Hand...)
	for i, marked := range g.Mulligan.Marked {
		if marked {
			p.Deck.Return(p.Hand[i])
		}
	}
	for i, marked := range g.Mulligan.Marked {
		if !marked {
			continue
		}
		card, ok := p.Deck.Draw(g.rng)
		if !ok {
			continue
		}
		p.Hand[i] = card
	}
	g.emit(Event{Type: EventMulligan, Side: White, Value: g.Mulligan.Count()})
	return g.SetState(StateMulliganAnim, now)
}
