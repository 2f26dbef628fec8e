package game

import "go.uber.org/zap"

type EventType int8

const (
	EventState EventType = iota
	EventDeal
	EventDraw
	EventBurn
	EventFatigue
	EventMulligan
	EventSummon
	EventSpell
	EventHeroPower
	EventDamage
	EventEndTurn
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventState:
		return "state"
	case EventDeal:
		return "deal"
	case EventDraw:
		return "draw"
	case EventBurn:
		return "burn"
	case EventFatigue:
		return "fatigue"
	case EventMulligan:
		return "mulligan"
	case EventSummon:
		return "summon"
	case EventSpell:
		return "spell"
	case EventHeroPower:
		return "hero-power"
	case EventDamage:
		return "damage"
	case EventEndTurn:
		return "end-turn"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event records one change to the game.
type Event struct {
	Type  EventType
	Turn  int
	Side  Side
	Card  CardID
	Index int
	Value int
	State State
}

func (g *Game) emit(e Event) {
	e.Turn = g.Turn
	g.events = append(g.events, e)
	g.log.Debug("game event",
		zap.Stringer("event", e.Type),
		zap.Int("turn", e.Turn),
		zap.Stringer("side", e.Side),
		zap.String("card", string(e.Card)),
		zap.Int("index", e.Index),
		zap.Int("value", e.Value),
		zap.Stringer("state", e.State),
	)
}

// Events returns everything that happened so far, oldest first.
func (g *Game) Events() []Event {
	return g.events
}

// EventsOfType returns all events of the given type.
func (g *Game) EventsOfType(t EventType) []Event {
	var result []Event
	for _, e := range g.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}
