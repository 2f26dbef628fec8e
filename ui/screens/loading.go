package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/layout"
	"github.com/SvenDH/hearthchess/ui"
)

var loadingBar = layout.Rect{X: 420, Y: 600, W: 600, H: 40}

// Loading uploads one image per frame and starts the mulligan when the
// manifest is done.
type Loading struct {
	m *Match
}

func (s *Loading) Init() ui.Cmd {
	return nil
}

func (s *Loading) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	t, ok := msg.(ui.Tick)
	if !ok {
		return s, nil
	}
	l := s.m.Loader
	if !l.Done() {
		name, err := l.Next()
		if err != nil {
			return s, s.m.fail(err)
		}
		img, _ := l.Image(name)
		s.m.Images.Add(name, img)
		return s, nil
	}
	if err := s.m.Game.SetState(game.StateMulligan, t.Now); err != nil {
		return s, s.m.fail(err)
	}
	return s, nil
}

func (s *Loading) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	l := s.m.Loader
	ui.DrawTextCentered(screen, "HearthChess", layout.ScreenWidth/2, 480)
	ui.DrawBar(screen, loadingBar, l.Progress(), color.RGBA{0xd9, 0xa4, 0x41, 0xff})
	ui.DrawTextCentered(screen, fmt.Sprintf("%d / %d", l.Loaded(), l.Total()), layout.ScreenWidth/2, 700)
}
