package game

import "github.com/oklog/ulid/v2"

const (
	MaxMana  = 10
	MaxHand  = 10
	MaxBoard = 7
)

type Player struct {
	Side      Side
	Deck      *Deck
	Hand      []CardID
	Board     []Minion
	Mana      int
	MaxMana   int
	Health    int
	PowerUsed bool
}

func NewPlayer(side Side, deck []CardID, health int) *Player {
	return &Player{
		Side:   side,
		Deck:   NewDeck(deck...),
		Hand:   []CardID{},
		Board:  []Minion{},
		Health: health,
	}
}

func (p *Player) BoardFull() bool {
	return len(p.Board) >= MaxBoard
}

// Upkeep grows the mana pool by one crystal up to MaxMana and refills it.
func (p *Player) Upkeep() {
	p.MaxMana++
	if p.MaxMana > MaxMana {
		p.MaxMana = MaxMana
	}
	p.Mana = p.MaxMana
	p.PowerUsed = false
}

// Summon inserts a minion at slot, clamped to the row, and returns the
// slot it landed in.
func (p *Player) Summon(card CardID, slot int) int {
	if slot < 0 {
		slot = 0
	}
	if slot > len(p.Board) {
		slot = len(p.Board)
	}
	m := Minion{Id: ulid.Make(), Card: card}
	p.Board = append(p.Board, Minion{})
	copy(p.Board[slot+1:], p.Board[slot:])
	p.Board[slot] = m
	return slot
}

func (p *Player) removeFromHand(i int) CardID {
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card
}

func (p *Player) GainMana(n int) {
	p.Mana += n
	if p.Mana > MaxMana {
		p.Mana = MaxMana
	}
}
