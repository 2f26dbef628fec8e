package screens

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/layout"
	"github.com/SvenDH/hearthchess/table"
	"github.com/SvenDH/hearthchess/tween"
	"github.com/SvenDH/hearthchess/ui"
)

const slideDuration = float32(0.2)

var (
	powerColor  = color.RGBA{0x4c, 0xd9, 0x64, 0xff}
	targetColor = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
)

// Turn is the main table for both sides' turns.
type Turn struct {
	m       *Match
	endTurn *ui.Zone

	// Hand x positions slide when cards are added or removed.
	hand   []game.CardID
	xs     []float32
	tweens []*tween.Tween

	state       game.State
	banner      *tween.Sequence
	bannerAlpha float32
}

func (s *Turn) Init() ui.Cmd {
	s.endTurn = &ui.Zone{Shape: layout.EndTurn, Capture: true}
	s.state = game.StateTurnWhite
	s.hand = append([]game.CardID{}, s.m.Game.White.Hand...)
	s.xs = make([]float32, len(s.hand))
	s.tweens = make([]*tween.Tween, len(s.hand))
	for i := range s.hand {
		s.xs[i] = float32(layout.HandCard(i, len(s.hand)).X)
	}
	return nil
}

func (s *Turn) Zones() []*ui.Zone {
	return []*ui.Zone{s.endTurn}
}

func (s *Turn) Update(msg ui.Msg) (ui.Model, ui.Cmd) {
	c := s.m.Table
	now := s.m.Now()
	var err error
	switch e := msg.(type) {
	case ui.Tick:
		s.slide(e.DeltaTime)
		s.fadeBanner(e.DeltaTime)
	case ui.MouseEvent:
		switch {
		case e.Action == ui.MouseMotion:
			c.MouseMove(e.X, e.Y)
		case e.Button != ebiten.MouseButtonLeft:
		case e.Action == ui.MousePress:
			err = c.MouseDown(e.X, e.Y, now)
		case e.Action == ui.MouseRelease:
			err = c.MouseUp(e.X, e.Y, now)
		}
	case ui.KeyEvent:
		if e.Pressed && e.Key == ebiten.KeySpace {
			if side, ok := s.m.Game.State.Side(); ok && side == c.Side {
				err = s.m.Game.EndTurn(c.Side, now)
			}
		}
	}
	if err != nil && !errors.Is(err, game.ErrNotYourTurn) {
		s.m.log.Debug("move refused", zap.Error(err))
	}
	return s, nil
}

// slide keeps each card's x on a tween towards its slot. Cards that stay
// in the hand keep their current x as the tween start.
func (s *Turn) slide(dt float32) {
	hand := s.m.Game.White.Hand
	if !sameHand(hand, s.hand) {
		n := len(hand)
		xs := make([]float32, n)
		tweens := make([]*tween.Tween, n)
		k := 0
		for i, card := range hand {
			target := float32(layout.HandCard(i, n).X)
			from := target
			for j := k; j < len(s.hand); j++ {
				if s.hand[j] == card {
					from, k = s.xs[j], j+1
					break
				}
			}
			xs[i] = from
			tweens[i] = tween.New(from, target, slideDuration, tween.InOutQuad)
		}
		s.hand = append(s.hand[:0], hand...)
		s.xs, s.tweens = xs, tweens
	}
	for i, t := range s.tweens {
		if t == nil {
			continue
		}
		x, done := t.Update(dt)
		s.xs[i] = x
		if done {
			s.tweens[i] = nil
		}
	}
}

// fadeBanner pops the enemy turn banner in when black's turn starts and
// lets it settle slightly transparent.
func (s *Turn) fadeBanner(dt float32) {
	state := s.m.Game.State
	if state != s.state {
		s.state = state
		s.banner, s.bannerAlpha = nil, 0
		if state == game.StateTurnBlack {
			s.banner = tween.NewSequence(
				tween.New(0, 1, 0.25, tween.OutQuad),
				tween.New(1, 0.8, 0.5, tween.InQuad),
			)
		}
	}
	if s.banner == nil {
		return
	}
	v, _, done := s.banner.Update(dt)
	s.bannerAlpha = v
	if done {
		s.banner = nil
	}
}

func sameHand(a, b []game.CardID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Turn) fade(kind game.AnimKind, side game.Side, i int) float32 {
	a := s.m.Game.Anim
	if a.Kind != kind || a.Side != side || a.Index != i {
		return 1
	}
	return float32(layout.FadeIn(s.m.Now().Sub(a.Start), s.m.Game.Config().AnimDuration))
}

func (s *Turn) Draw(screen *ebiten.Image) {
	g := s.m.Game
	c := s.m.Table
	w, b := g.White, g.Black

	ui.DrawImage(screen, s.m.image("board"), 0, 0, 1)

	ui.DrawText(screen, fmt.Sprintf("%d/%d", b.Mana, b.MaxMana), layout.EnemyManaText.X, layout.EnemyManaText.Y)
	ui.DrawText(screen, fmt.Sprintf("%d/%d", w.Mana, w.MaxMana), layout.PlayerManaText.X, layout.PlayerManaText.Y)
	ui.DrawText(screen, fmt.Sprint(b.Health), layout.EnemyHealthText.X, layout.EnemyHealthText.Y)
	ui.DrawText(screen, fmt.Sprint(w.Health), layout.PlayerHealthText.X, layout.PlayerHealthText.Y)
	ui.DrawText(screen, fmt.Sprint(b.Deck.Len()), layout.EnemyDeckText.X, layout.EnemyDeckText.Y)
	ui.DrawText(screen, fmt.Sprint(w.Deck.Len()), layout.PlayerDeckText.X, layout.PlayerDeckText.Y)

	for i := range w.MaxMana {
		p := layout.ManaCrystal(i)
		name := "mana_empty"
		if i < w.Mana {
			name = "mana_full"
		}
		ui.DrawImageRect(screen, s.m.image(name), layout.Rect{X: p.X, Y: p.Y, W: layout.ManaSize, H: layout.ManaSize}, 1)
	}

	s.drawRow(screen, b, true)
	s.drawRow(screen, w, false)

	for i := range b.Hand {
		r := layout.OpponentHandCard(i, len(b.Hand))
		ui.DrawImage(screen, s.m.image("back"), r.X, r.Y, 1)
	}
	for i, card := range w.Hand {
		r := layout.HandCard(i, len(w.Hand))
		if len(s.xs) == len(w.Hand) {
			r.X = float64(s.xs[i])
		}
		ui.DrawImage(screen, s.m.image(string(card)), r.X, r.Y, s.fade(game.AnimDraw, game.White, i))
	}

	myTurn := g.State == game.TurnOf(c.Side)
	if myTurn && g.CanUseHeroPower(c.Side) == nil {
		ui.Highlight(screen, layout.HeroPower, powerColor)
	}
	ui.DrawImage(screen, s.m.image("end_turn"), layout.EndTurn.X, layout.EndTurn.Y, 1)
	if myTurn && s.endTurn.Hovered() {
		ui.Outline(screen, layout.EndTurn, hoverColor)
	}

	if c.Detail >= 0 && c.Detail < len(w.Hand) {
		r := layout.Detail(c.Detail, len(w.Hand))
		ui.DrawImage(screen, s.m.image(string(w.Hand[c.Detail])), r.X, r.Y, 1)
	}
	if c.Aiming() {
		if c.Source == table.SourcePower {
			ui.Highlight(screen, layout.EnemyHero, targetColor)
		}
		ui.DrawArrow(screen, s.m.image("arrow"), c.Arrow)
	}

	if banner := s.m.image("enemy_turn"); banner != nil && g.State == game.StateTurnBlack {
		bw, bh := banner.Bounds().Dx(), banner.Bounds().Dy()
		ui.DrawImage(screen, banner, float64(layout.ScreenWidth-bw)/2, float64(layout.ScreenHeight-bh)/2, s.bannerAlpha)
	}
}

func (s *Turn) drawRow(screen *ebiten.Image, p *game.Player, enemy bool) {
	n := len(p.Board)
	for i, minion := range p.Board {
		r := layout.Minion(i, n, enemy)
		a := s.fade(game.AnimSummon, p.Side, i)
		if a < 1 {
			ui.DrawImageRect(screen, s.m.image("summon"), r, 1-a)
		}
		ui.DrawImageRect(screen, s.m.image(minion.Card.Token()), r, a)
	}
}
