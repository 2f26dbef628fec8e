package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type State int8

const (
	StateLoading State = iota
	StateMulligan
	StateMulliganAnim
	StateTurnWhite
	StateTurnBlack
	StateGameOver
)

var stateNames = map[State]string{
	StateLoading:      "loading",
	StateMulligan:     "mulligan",
	StateMulliganAnim: "mulligan_anim",
	StateTurnWhite:    "turn_w",
	StateTurnBlack:    "turn_b",
	StateGameOver:     "game_over",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return StateLoading, fmt.Errorf("%w: %q", ErrInvalidState, name)
}

// TurnOf is the state in which side acts.
func TurnOf(side Side) State {
	if side == Black {
		return StateTurnBlack
	}
	return StateTurnWhite
}

// Side reports whose turn the state is.
func (s State) Side() (Side, bool) {
	switch s {
	case StateTurnWhite:
		return White, true
	case StateTurnBlack:
		return Black, true
	}
	return White, false
}

type AnimKind int8

const (
	AnimNone AnimKind = iota
	AnimDraw
	AnimSummon
)

// Anim marks the card or minion currently fading in. Index is a hand
// index for AnimDraw and a board slot for AnimSummon.
type Anim struct {
	Kind  AnimKind
	Side  Side
	Index int
	Start time.Time
}

type Config struct {
	WhiteHealth      int
	BlackHealth      int
	OpeningHand      int
	SecondHand       int
	HeroPowerCost    int
	HeroPowerDamage  int
	MulliganDuration time.Duration
	AnimDuration     time.Duration
	BotDelay         time.Duration
}

func DefaultConfig() Config {
	return Config{
		WhiteHealth:      20,
		BlackHealth:      30,
		OpeningHand:      3,
		SecondHand:       4,
		HeroPowerCost:    2,
		HeroPowerDamage:  1,
		MulliganDuration: 4 * time.Second,
		AnimDuration:     500 * time.Millisecond,
		BotDelay:         700 * time.Millisecond,
	}
}

type Option func(*Game)

func WithConfig(cfg Config) Option { return func(g *Game) { g.cfg = cfg } }

func WithRand(rng Rand) Option { return func(g *Game) { g.rng = rng } }

func WithLogger(log *zap.Logger) Option { return func(g *Game) { g.log = log } }

func WithCatalogue(cat *Catalogue) Option { return func(g *Game) { g.cat = cat } }

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type Game struct {
	Id       ulid.ULID
	White    *Player
	Black    *Player
	State    State
	Turn     int
	Winner   Side
	Anim     Anim
	Mulligan Mulligan

	started    time.Time
	ended      time.Time
	stateStart time.Time
	botNext    time.Time

	cfg    Config
	cat    *Catalogue
	rng    Rand
	log    *zap.Logger
	events []Event
}

// New sets up both players and deals the opening hands. The game starts
// in the loading state.
func New(decks Decks, opts ...Option) *Game {
	g := &Game{
		Id:  ulid.Make(),
		cfg: DefaultConfig(),
		cat: DefaultCatalogue(),
		rng: globalRand{},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.White = NewPlayer(White, decks.White, g.cfg.WhiteHealth)
	g.Black = NewPlayer(Black, decks.Black, g.cfg.BlackHealth)
	g.deal()
	return g
}

func (g *Game) deal() {
	for range g.cfg.OpeningHand {
		g.draw(g.White)
	}
	for range g.cfg.SecondHand {
		g.draw(g.Black)
	}
	g.Black.Hand = append(g.Black.Hand, Coin)
	g.Mulligan = Mulligan{Marked: make([]bool, len(g.White.Hand))}
	g.emit(Event{Type: EventDeal, Side: White, Value: len(g.White.Hand)})
	g.emit(Event{Type: EventDeal, Side: Black, Value: len(g.Black.Hand)})
}

func (g *Game) Config() Config { return g.cfg }

func (g *Game) Catalogue() *Catalogue { return g.cat }

func (g *Game) Player(side Side) *Player {
	if side == Black {
		return g.Black
	}
	return g.White
}

// StateElapsed is how long the game has been in its current state.
func (g *Game) StateElapsed(now time.Time) time.Duration {
	return now.Sub(g.stateStart)
}

// SetState switches state and runs its entry actions.
func (g *Game) SetState(s State, now time.Time) error {
	if _, ok := stateNames[s]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidState, s)
	}
	g.State = s
	g.stateStart = now
	g.emit(Event{Type: EventState, State: s})

	switch s {
	case StateMulligan:
		g.started = now
		g.Mulligan = Mulligan{Marked: make([]bool, len(g.White.Hand))}
	case StateTurnWhite, StateTurnBlack:
		side, _ := s.Side()
		if side == White {
			g.Turn++
		}
		p := g.Player(side)
		p.Upkeep()
		if g.draw(p) {
			g.Anim = Anim{Kind: AnimDraw, Side: side, Index: len(p.Hand) - 1, Start: now}
		}
		g.botNext = now.Add(g.cfg.BotDelay)
	case StateGameOver:
		g.ended = now
		g.Anim = Anim{}
		g.emit(Event{Type: EventGameOver, Side: g.Winner})
		g.log.Info("game over",
			zap.Stringer("winner", g.Winner),
			zap.Int("turns", g.Turn),
			zap.Stringer("game", g.Id),
		)
	}
	return nil
}

// SetStateName switches state by its name, e.g. "turn_w".
func (g *Game) SetStateName(name string, now time.Time) error {
	s, err := ParseState(name)
	if err != nil {
		return err
	}
	return g.SetState(s, now)
}

// Tick advances everything driven by time: fades, the end of the
// mulligan animation and the opponent's actions.
func (g *Game) Tick(now time.Time) {
	if g.Anim.Kind != AnimNone && now.Sub(g.Anim.Start) >= g.cfg.AnimDuration {
		g.Anim = Anim{}
	}
	switch g.State {
	case StateMulliganAnim:
		if g.StateElapsed(now) >= g.cfg.MulliganDuration {
			g.SetState(StateTurnWhite, now)
		}
	case StateTurnBlack:
		if now.Before(g.botNext) {
			return
		}
		if !g.botStep(now) {
			if err := g.EndTurn(Black, now); err != nil {
				g.log.Warn("bot could not end turn", zap.Error(err))
			}
			return
		}
		g.botNext = now.Add(g.cfg.BotDelay)
	}
}

// draw moves a random card from the deck into the hand. It reports
// whether the hand grew.
func (g *Game) draw(p *Player) bool {
	card, ok := p.Deck.Draw(g.rng)
	if !ok {
		g.emit(Event{Type: EventFatigue, Side: p.Side})
		return false
	}
	if len(p.Hand) >= MaxHand {
		g.emit(Event{Type: EventBurn, Side: p.Side, Card: card})
		return false
	}
	p.Hand = append(p.Hand, card)
	g.emit(Event{Type: EventDraw, Side: p.Side, Card: card, Index: len(p.Hand) - 1})
	return true
}

func (g *Game) damage(side Side, n int, now time.Time) {
	p := g.Player(side)
	p.Health -= n
	g.emit(Event{Type: EventDamage, Side: side, Value: n})
	if p.Health <= 0 && g.State != StateGameOver {
		g.Winner = side.Opponent()
		g.SetState(StateGameOver, now)
	}
}

// Result summarises a finished game.
type Result struct {
	Id          ulid.ULID
	Winner      Side
	Turns       int
	WhiteHealth int
	BlackHealth int
	Started     time.Time
	Ended       time.Time
}

// Result returns the outcome once the game is over.
func (g *Game) Result() (Result, bool) {
	if g.State != StateGameOver {
		return Result{}, false
	}
	return Result{
		Id:          g.Id,
		Winner:      g.Winner,
		Turns:       g.Turn,
		WhiteHealth: g.White.Health,
		BlackHealth: g.Black.Health,
		Started:     g.started,
		Ended:       g.ended,
	}, true
}
