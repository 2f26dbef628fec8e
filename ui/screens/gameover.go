package screens

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/SvenDH/hearthchess/layout"
	"github.com/SvenDH/hearthchess/ui"
)

const recordTimeout = 2 * time.Second

// GameOver announces the winner, stores the match and quits on click.
type GameOver struct {
	m     *Match
	title string
	turns int
}

func (s *GameOver) Init() ui.Cmd {
	res, ok := s.m.Game.Result()
	if !ok {
		return nil
	}
	s.title = "DEFEAT"
	if res.Winner == s.m.Table.Side {
		s.title = "VICTORY"
	}
	s.turns = res.Turns
	if s.m.Recorder == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := s.m.Recorder.Record(ctx, res); err != nil {
		s.m.log.Error("could not record match", zap.Error(err))
	} else {
		s.m.log.Info("match recorded", zap.Stringer("id", res.Id))
	}
	return nil
}

func (s *GameOver) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	switch e := msg.(type) {
	case ui.MouseEvent:
		if e.Action == ui.MousePress && e.Button == ebiten.MouseButtonLeft {
			return s, func() ui.Msg { return ui.Quit{} }
		}
	case ui.KeyEvent:
		if e.Pressed && (e.Key == ebiten.KeyEscape || e.Key == ebiten.KeyEnter) {
			return s, func() ui.Msg { return ui.Quit{} }
		}
	}
	return s, nil
}

func (s *GameOver) Draw(screen *ebiten.Image) {
	ui.DrawImage(screen, s.m.image("board"), 0, 0, 1)
	ui.Dim(screen, 0xb0)
	ui.DrawTextCentered(screen, s.title, layout.ScreenWidth/2, 460)
	ui.DrawTextCentered(screen, fmt.Sprintf("after %d turns", s.turns), layout.ScreenWidth/2, 540)
	ui.DrawTextCentered(screen, "click to quit", layout.ScreenWidth/2, 640)
}
