package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/SvenDH/hearthchess/layout"
	"github.com/SvenDH/hearthchess/ui"
)

var hoverColor = color.RGBA{0xd9, 0xa4, 0x41, 0xff}

// Mulligan shows white's opening hand. Clicking a card marks it to be
// replaced; the confirm button swaps the marked cards.
type Mulligan struct {
	m     *Match
	cards []*ui.Zone
	ok    *ui.Zone
}

func (s *Mulligan) Init() ui.Cmd {
	click := func(msg ui.Msg) ui.Cmd {
		e := msg.(ui.MouseEvent)
		if err := s.m.Table.MulliganClick(e.X, e.Y, s.m.Now()); err != nil {
			s.m.log.Warn("mulligan click", zap.Error(err))
		}
		return nil
	}
	s.cards = s.cards[:0]
	for i := range s.m.Game.Mulligan.Marked {
		s.cards = append(s.cards, &ui.Zone{Shape: layout.MulliganCard(i), Capture: true, Click: click})
	}
	s.ok = &ui.Zone{Shape: layout.Confirm, Capture: true, Click: click}
	return nil
}

func (s *Mulligan) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	return s, nil
}

func (s *Mulligan) Zones() []*ui.Zone {
	return append(append([]*ui.Zone{}, s.cards...), s.ok)
}

func (s *Mulligan) Draw(screen *ebiten.Image) {
	g := s.m.Game
	ui.DrawImage(screen, s.m.image("board"), 0, 0, 1)
	ui.Dim(screen, 0x80)
	for i, z := range s.cards {
		r := layout.MulliganCard(i)
		ui.DrawImage(screen, s.m.image(string(g.White.Hand[i])), r.X, r.Y, 1)
		if g.Mulligan.Marked[i] {
			p := layout.MulliganDiscard(i)
			ui.DrawImage(screen, s.m.image("discard"), p.X, p.Y, 1)
		}
		if z.Hovered() {
			ui.Outline(screen, r, hoverColor)
		}
	}
	ui.DrawImage(screen, s.m.image("confirm"), layout.Confirm.X, layout.Confirm.Y, 1)
	if s.ok.Hovered() {
		ui.Outline(screen, layout.Confirm, hoverColor)
	}
	ui.DrawTextCentered(screen, "Choose cards to replace", layout.ScreenWidth/2, 260)
}
