package game

import "errors"

var (
	ErrInvalidState  = errors.New("invalid state")
	ErrWrongState    = errors.New("not allowed in the current state")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNoSuchCard    = errors.New("no such card in hand")
	ErrUnknownCard   = errors.New("unknown card")
	ErrBoardFull     = errors.New("board is full")
	ErrNotEnoughMana = errors.New("not enough mana")
	ErrPowerUsed     = errors.New("hero power already used this turn")
	ErrInvalidDeck   = errors.New("invalid deck")
)
