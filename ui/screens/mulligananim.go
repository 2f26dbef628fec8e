package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SvenDH/hearthchess/layout"
	"github.com/SvenDH/hearthchess/ui"
)

// MulliganAnim flips the replaced cards and flies the hand into place.
// It takes no input.
type MulliganAnim struct {
	m *Match
}

func (s *MulliganAnim) Init() ui.Cmd {
	return nil
}

func (s *MulliganAnim) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	return s, nil
}

func (s *MulliganAnim) Draw(screen *ebiten.Image) {
	g := s.m.Game
	f := layout.MulliganFrameAt(
		g.StateElapsed(s.m.Now()),
		g.Config().MulliganDuration,
		g.Mulligan.Marked,
		len(g.White.Hand),
	)
	ui.DrawImage(screen, s.m.image("board"), 0, 0, float32(f.BoardAlpha))
	for i, c := range f.Cards {
		card := g.White.Hand[i]
		if !c.Replaced && i < len(g.Mulligan.PreHand) {
			card = g.Mulligan.PreHand[i]
		}
		ui.DrawImageRect(screen, s.m.image(string(card)), c.Rect, 1)
	}
}
