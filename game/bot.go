package game

import (
	"time"

	"go.uber.org/zap"
)

// botStep takes one action for black and reports whether it did anything.
// Black plays its most expensive affordable minion on the right end of
// its row, uses the coin first when the extra mana buys a dearer minion
// than it can afford now, and spends leftover mana on the hero power.
func (g *Game) botStep(now time.Time) bool {
	p := g.Black
	best, bestCost := -1, -1
	coin, gain := -1, 0
	for i, card := range p.Hand {
		def, err := g.cat.Def(card)
		if err != nil {
			continue
		}
		if !def.IsMinion() {
			if def.Effect != nil && def.Effect.GainMana > 0 && coin < 0 {
				coin, gain = i, def.Effect.GainMana
			}
			continue
		}
		if p.BoardFull() {
			continue
		}
		if def.Cost <= p.Mana && def.Cost > bestCost {
			best, bestCost = i, def.Cost
		}
	}
	unlockCost := -1
	if coin >= 0 && !p.BoardFull() {
		boosted := min(p.Mana+gain, MaxMana)
		for _, card := range p.Hand {
			def, err := g.cat.Def(card)
			if err != nil || !def.IsMinion() {
				continue
			}
			if def.Cost > p.Mana && def.Cost <= boosted && def.Cost > unlockCost {
				unlockCost = def.Cost
			}
		}
	}

	switch {
	case unlockCost > bestCost:
		if _, err := g.PlayCard(Black, coin, 0, now); err != nil {
			g.log.Warn("bot coin failed", zap.Error(err))
			return false
		}
		return true
	case best >= 0:
		if _, err := g.PlayCard(Black, best, len(p.Board), now); err != nil {
			g.log.Warn("bot play failed", zap.Error(err))
			return false
		}
		return true
	case g.CanUseHeroPower(Black) == nil:
		return g.UseHeroPower(Black, now) == nil
	}
	return false
}
