package screens

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/SvenDH/hearthchess/assets"
	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/table"
	"github.com/SvenDH/hearthchess/ui"
)

// Recorder stores finished matches.
type Recorder interface {
	Record(ctx context.Context, r game.Result) error
}

// Match is the root model. It follows the game state and swaps in the
// screen that draws and handles input for it.
type Match struct {
	Game     *game.Game
	Table    *table.Controller
	Loader   *assets.Loader
	Images   *ui.Images
	Recorder Recorder
	// Err is set when the match had to stop, e.g. broken art.
	Err error

	log    *zap.Logger
	now    time.Time
	screen ui.Model
	kind   screenKind
}

type screenKind int8

const (
	kindLoading screenKind = iota
	kindMulligan
	kindMulliganAnim
	kindTurn
	kindGameOver
)

func kindOf(s game.State) screenKind {
	switch s {
	case game.StateMulligan:
		return kindMulligan
	case game.StateMulliganAnim:
		return kindMulliganAnim
	case game.StateTurnWhite, game.StateTurnBlack:
		return kindTurn
	case game.StateGameOver:
		return kindGameOver
	}
	return kindLoading
}

func NewMatch(g *game.Game, loader *assets.Loader, rec Recorder, log *zap.Logger) *Match {
	if log == nil {
		log = zap.NewNop()
	}
	return &Match{
		Game:     g,
		Table:    table.New(g, game.White, log),
		Loader:   loader,
		Images:   ui.NewImages(),
		Recorder: rec,
		log:      log.Named("match"),
	}
}

func (m *Match) Now() time.Time {
	return m.now
}

func (m *Match) Init() ui.Cmd {
	m.kind = kindOf(m.Game.State)
	m.screen = m.newScreen(m.kind)
	return m.screen.Init()
}

func (m *Match) newScreen(k screenKind) ui.Model {
	switch k {
	case kindMulligan:
		return &Mulligan{m: m}
	case kindMulliganAnim:
		return &MulliganAnim{m: m}
	case kindTurn:
		return &Turn{m: m}
	case kindGameOver:
		return &GameOver{m: m}
	}
	return &Loading{m: m}
}

func (m *Match) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	var cmds []ui.Cmd
	if t, ok := msg.(ui.Tick); ok {
		m.now = t.Now
		if m.Game.State != game.StateLoading {
			m.Game.Tick(t.Now)
		}
	}
	if k := kindOf(m.Game.State); k != m.kind {
		m.log.Debug("screen", zap.Stringer("state", m.Game.State))
		m.kind = k
		m.screen = m.newScreen(k)
		cmds = append(cmds, m.screen.Init())
	}
	var cmd ui.Cmd
	m.screen, cmd = m.screen.Update(msg)
	cmds = append(cmds, cmd)
	return m, ui.Batch(cmds...)
}

func (m *Match) Draw(screen *ebiten.Image) {
	m.screen.Draw(screen)
}

func (m *Match) Zones() []*ui.Zone {
	if z, ok := m.screen.(ui.Zoner); ok {
		return z.Zones()
	}
	return nil
}

// fail stops the program with err.
func (m *Match) fail(err error) ui.Cmd {
	m.Err = err
	m.log.Error("match stopped", zap.Error(err))
	return func() ui.Msg { return ui.Quit{} }
}

func (m *Match) image(name string) *ebiten.Image {
	return m.Images.Get(name)
}
