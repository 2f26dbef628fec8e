package game

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

type Side int8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "unknown"
}

func (s Side) Prefix() string {
	if s == Black {
		return "b"
	}
	return "w"
}

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

func ParseSide(name string) (Side, bool) {
	switch strings.ToLower(name) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// CardID names a card the way its art is named: a side prefix and the
// piece kind ("w_pawn", "b_queen"), or a sideless name such as "coin".
type CardID string

const Coin CardID = "coin"

func NewCardID(side Side, kind string) CardID {
	return CardID(side.Prefix() + "_" + strings.ToLower(kind))
}

func (c CardID) Side() (Side, bool) {
	prefix, _, found := strings.Cut(string(c), "_")
	if !found {
		return White, false
	}
	return ParseSide(prefix)
}

// Kind is the catalogue key of the card.
func (c CardID) Kind() string {
	if _, ok := c.Side(); ok {
		_, kind, _ := strings.Cut(string(c), "_")
		return kind
	}
	return string(c)
}

// Token is the art name of the minion the card becomes on the board, or
// "" for cards without a side.
func (c CardID) Token() string {
	side, ok := c.Side()
	if !ok {
		return ""
	}
	return side.Prefix() + "_m_" + c.Kind()
}

// Minion is a card that has been played to the board.
type Minion struct {
	Id   ulid.ULID
	Card CardID
}
