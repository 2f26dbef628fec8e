package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SvenDH/hearthchess/layout"
)

// Zone is a clickable region of the virtual screen.
type Zone struct {
	Shape   layout.Shape
	Capture bool
	// Disabled zones keep their hover state but ignore clicks.
	Disabled bool
	Click    func(msg Msg) Cmd
	Release  func(msg Msg) Cmd
	Enter    func(msg Msg) Cmd
	Leave    func(msg Msg) Cmd

	hovered bool
}

func (z *Zone) Contains(x, y float64) bool {
	return z.Shape != nil && z.Shape.Contains(x, y)
}

func (z *Zone) Hovered() bool {
	return z.hovered
}

func (z *Zone) handle(m MouseEvent) Cmd {
	switch m.Action {
	case MousePress:
		if z.Click != nil && !z.Disabled && m.Button == ebiten.MouseButtonLeft {
			return z.Click(m)
		}
	case MouseRelease:
		if z.Release != nil && !z.Disabled && m.Button == ebiten.MouseButtonLeft {
			return z.Release(m)
		}
	case MouseEnter:
		if z.Enter != nil {
			return z.Enter(m)
		}
	case MouseLeave:
		if z.Leave != nil {
			return z.Leave(m)
		}
	}
	return nil
}
