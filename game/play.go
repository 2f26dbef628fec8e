package game

import (
	"fmt"
	"time"
)

func (g *Game) checkTurn(side Side) error {
	turn, ok := g.State.Side()
	if !ok {
		return fmt.Errorf("%w: %s", ErrWrongState, g.State)
	}
	if turn != side {
		return ErrNotYourTurn
	}
	return nil
}

// CanPlay reports whether side may play the i-th card of its hand now.
func (g *Game) CanPlay(side Side, i int) error {
	if err := g.checkTurn(side); err != nil {
		return err
	}
	p := g.Player(side)
	if i < 0 || i >= len(p.Hand) {
		return fmt.Errorf("%w: %d", ErrNoSuchCard, i)
	}
	def, err := g.cat.Def(p.Hand[i])
	if err != nil {
		return err
	}
	if def.Cost > p.Mana {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrNotEnoughMana, def.Name, def.Cost, p.Mana)
	}
	if def.IsMinion() && p.BoardFull() {
		return ErrBoardFull
	}
	return nil
}

// PlayCard spends mana and plays the i-th card of side's hand. Minions
// are summoned at slot; spells resolve straight away. It returns the
// board slot a minion landed in, or -1 for spells.
func (g *Game) PlayCard(side Side, i, slot int, now time.Time) (int, error) {
	if err := g.CanPlay(side, i); err != nil {
		return -1, err
	}
	p := g.Player(side)
	def, _ := g.cat.Def(p.Hand[i])
	card := p.removeFromHand(i)
	p.Mana -= def.Cost

	if !def.IsMinion() {
		if def.Effect != nil && def.Effect.GainMana > 0 {
			p.GainMana(def.Effect.GainMana)
		}
		g.emit(Event{Type: EventSpell, Side: side, Card: card, Index: i})
		return -1, nil
	}
	at := p.Summon(card, slot)
	g.Anim = Anim{Kind: AnimSummon, Side: side, Index: at, Start: now}
	g.emit(Event{Type: EventSummon, Side: side, Card: card, Index: at})
	return at, nil
}

func (g *Game) CanUseHeroPower(side Side) error {
	if err := g.checkTurn(side); err != nil {
		return err
	}
	p := g.Player(side)
	if p.PowerUsed {
		return ErrPowerUsed
	}
	if p.Mana < g.cfg.HeroPowerCost {
		return fmt.Errorf("%w: hero power costs %d, have %d", ErrNotEnoughMana, g.cfg.HeroPowerCost, p.Mana)
	}
	return nil
}

// UseHeroPower spends mana to hit the enemy hero. It can be used once
// per turn.
func (g *Game) UseHeroPower(side Side, now time.Time) error {
	if err := g.CanUseHeroPower(side); err != nil {
		return err
	}
	p := g.Player(side)
	p.Mana -= g.cfg.HeroPowerCost
	p.PowerUsed = true
	g.emit(Event{Type: EventHeroPower, Side: side, Value: g.cfg.HeroPowerDamage})
	g.damage(side.Opponent(), g.cfg.HeroPowerDamage, now)
	return nil
}

// EndTurn passes the turn to the other side.
func (g *Game) EndTurn(side Side, now time.Time) error {
	if err := g.checkTurn(side); err != nil {
		return err
	}
	g.emit(Event{Type: EventEndTurn, Side: side})
	return g.SetState(TurnOf(side.Opponent()), now)
}
