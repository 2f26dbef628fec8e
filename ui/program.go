package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
	MouseEnter
	MouseLeave
)

type Msg interface{}

// Tick is sent once per frame after input.
type Tick struct {
	Now       time.Time
	DeltaTime float32
}

// MouseEvent positions are in virtual screen pixels.
type MouseEvent struct {
	X, Y   float64
	Action MouseAction
	Button ebiten.MouseButton
	Zone   *Zone
}

type KeyEvent struct {
	Key     ebiten.Key
	Pressed bool
}

// Quit stops the program after the current frame.
type Quit struct{}

type Cmd func() Msg

// Based on bubbletea model
type Model interface {
	Init() Cmd
	Update(msg Msg) (Model, Cmd)
	Draw(screen *ebiten.Image)
}

// Zoner is implemented by models that expose pointer zones. Zones are
// collected after each Draw, topmost last.
type Zoner interface {
	Zones() []*Zone
}

func Batch(cmds ...Cmd) Cmd {
	var valid []Cmd
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return func() Msg { return batchMsg(valid) }
}

type batchMsg []Cmd

type Program struct {
	M             Model
	Width, Height int
	ShowDebug     bool
	// Clock defaults to time.Now.
	Clock func() time.Time

	lastX, lastY int
	zones        []*Zone
	initialized  bool
	lastTick     time.Time
	quit         bool
}

func (p *Program) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now()
}

func (p *Program) Update() error {
	if !p.initialized {
		p.initialized = true
		p.lastTick = p.now()
		p.lastX, p.lastY = -1, -1
		p.runUpdate(p.M.Init())
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if mx != p.lastX || my != p.lastY {
		p.hover(x, y)
		p.runUpdate(MouseEvent{X: x, Y: y, Action: MouseMotion})
		p.lastX, p.lastY = mx, my
	}
	for i := range ebiten.MouseButtonMax {
		b := ebiten.MouseButton(i)
		if inpututil.IsMouseButtonJustPressed(b) {
			p.runUpdate(MouseEvent{X: x, Y: y, Action: MousePress, Button: b})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			p.runUpdate(MouseEvent{X: x, Y: y, Action: MouseRelease, Button: b})
		}
	}
	for i := range ebiten.KeyMax {
		k := ebiten.Key(i)
		if inpututil.IsKeyJustPressed(k) {
			p.runUpdate(KeyEvent{Key: k, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(k) {
			p.runUpdate(KeyEvent{Key: k})
		}
	}
	now := p.now()
	dt := float32(now.Sub(p.lastTick).Seconds())
	p.lastTick = now
	p.runUpdate(Tick{Now: now, DeltaTime: dt})
	if p.quit {
		return ebiten.Termination
	}
	return nil
}

// hover sends enter and leave events. Only the topmost capturing zone
// under the pointer counts as hovered.
func (p *Program) hover(x, y float64) {
	top := -1
	for i := len(p.zones) - 1; i >= 0; i-- {
		if p.zones[i].Capture && p.zones[i].Contains(x, y) {
			top = i
			break
		}
	}
	for i, z := range p.zones {
		inside := z.Contains(x, y) && (top == -1 || i == top)
		switch {
		case inside && !z.hovered:
			z.hovered = true
			p.runCmd(z.handle(MouseEvent{X: x, Y: y, Action: MouseEnter, Zone: z}))
		case !inside && z.hovered:
			z.hovered = false
			p.runCmd(z.handle(MouseEvent{X: x, Y: y, Action: MouseLeave, Zone: z}))
		}
	}
}

func (p *Program) runCmd(cmd Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		p.runUpdate(msg)
	}
}

func (p *Program) runUpdate(msg Msg) {
	var cmd Cmd
	for msg != nil {
		switch m := msg.(type) {
		case Quit:
			p.quit = true
			return
		case batchMsg:
			for _, c := range m {
				p.runCmd(c)
			}
			return
		case MouseEvent:
			if m.Action == MousePress || m.Action == MouseRelease {
				p.runCmd(p.zoneCmd(m))
			}
		}
		p.M, cmd = p.M.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

// zoneCmd delivers a press or release to the topmost zone under it.
func (p *Program) zoneCmd(m MouseEvent) Cmd {
	for i := len(p.zones) - 1; i >= 0; i-- {
		z := p.zones[i]
		if z.Contains(m.X, m.Y) {
			m.Zone = z
			return z.handle(m)
		}
	}
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	p.M.Draw(screen)
	if zm, ok := p.M.(Zoner); ok {
		p.zones = zm.Zones()
	}
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout keeps the virtual resolution fixed; ebiten scales and
// letterboxes it into the window.
func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return p.Width, p.Height
}
