// Package table turns pointer input on the virtual screen into game
// actions for the human player. It knows nothing about rendering so it
// can be driven from tests.
package table

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SvenDH/hearthchess/game"
	"github.com/SvenDH/hearthchess/layout"
)

type Source int8

const (
	SourceNone Source = iota
	SourceHand
	SourcePower
)

func (s Source) String() string {
	switch s {
	case SourceHand:
		return "hand"
	case SourcePower:
		return "hero-power"
	}
	return "none"
}

// Controller holds the pointer state of one player seated at the table.
type Controller struct {
	Side game.Side

	// Detail is the hand card shown enlarged, or -1.
	Detail int
	Source Source
	// Index is the hand card being aimed when Source is SourceHand.
	Index int
	Arrow layout.Arrow

	g   *game.Game
	log *zap.Logger
}

func New(g *game.Game, side game.Side, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		Side:   side,
		Detail: -1,
		Index:  -1,
		g:      g,
		log:    log.Named("table"),
	}
}

// Aiming reports whether an arrow is being dragged.
func (c *Controller) Aiming() bool {
	return c.Source != SourceNone
}

func (c *Controller) myTurn() bool {
	side, ok := c.g.State.Side()
	return ok && side == c.Side
}

func (c *Controller) hand() []game.CardID {
	return c.g.Player(c.Side).Hand
}

func (c *Controller) reset() {
	c.Source = SourceNone
	c.Index = -1
}

// MouseMove follows the pointer: while aiming it stretches the arrow,
// otherwise it picks the hand card to preview.
func (c *Controller) MouseMove(x, y float64) {
	if c.Aiming() {
		c.Arrow = c.Arrow.To(x, y)
		return
	}
	if c.g.State == game.StateMulligan || c.g.State == game.StateMulliganAnim {
		c.Detail = -1
		return
	}
	c.Detail = c.cardAt(x, y)
}

// cardAt is the hand card under the pointer. The enlarged detail card
// stays selected while the pointer is over it.
func (c *Controller) cardAt(x, y float64) int {
	if i := c.detailAt(x, y); i >= 0 {
		return i
	}
	return layout.HandHit(x, y, len(c.hand()))
}

// detailAt is the enlarged detail card under the pointer or -1. Only the
// detail card can be picked up, not the resting hand.
func (c *Controller) detailAt(x, y float64) int {
	n := len(c.hand())
	if c.Detail >= 0 && c.Detail < n && layout.Detail(c.Detail, n).Contains(x, y) {
		return c.Detail
	}
	return -1
}

// MouseDown starts aiming from the detail card or the hero power, or ends
// the turn when the button is pressed.
func (c *Controller) MouseDown(x, y float64, now time.Time) error {
	if !c.myTurn() {
		return nil
	}
	if layout.EndTurn.Contains(x, y) {
		c.reset()
		c.Detail = -1
		return c.g.EndTurn(c.Side, now)
	}
	var playErr error
	if i := c.detailAt(x, y); i >= 0 {
		playErr = c.g.CanPlay(c.Side, i)
		if playErr == nil {
			r := layout.Detail(i, len(c.hand()))
			cx, cy := r.Center()
			c.Source, c.Index = SourceHand, i
			c.Arrow = layout.NewArrow(cx, cy).To(x, y)
			return nil
		}
	}
	// The detail card can cover the hero power.
	if layout.HeroPower.Contains(x, y) {
		if err := c.g.CanUseHeroPower(c.Side); err != nil {
			return err
		}
		c.Source = SourcePower
		c.Arrow = layout.NewArrow(layout.HeroPower.X, layout.HeroPower.Y).To(x, y)
		return nil
	}
	return playErr
}

// MouseUp resolves an aimed card or hero power at the release point.
// Releasing anywhere without a valid target cancels.
func (c *Controller) MouseUp(x, y float64, now time.Time) error {
	if !c.Aiming() {
		return nil
	}
	source, index := c.Source, c.Index
	c.reset()
	c.Detail = -1
	if !c.myTurn() {
		return nil
	}

	switch source {
	case SourceHand:
		if !layout.InDropArea(x, y) {
			return nil
		}
		slot := layout.InsertIndex(x, len(c.g.Player(c.Side).Board))
		at, err := c.g.PlayCard(c.Side, index, slot, now)
		if err != nil {
			c.log.Debug("card not played", zap.Int("index", index), zap.Error(err))
			return err
		}
		c.log.Debug("card played", zap.Int("index", index), zap.Int("slot", at))
	case SourcePower:
		if !layout.EnemyHero.Contains(x, y) {
			return nil
		}
		if err := c.g.UseHeroPower(c.Side, now); err != nil {
			c.log.Debug("hero power failed", zap.Error(err))
			return err
		}
	default:
		return fmt.Errorf("unknown arrow source %s", source)
	}
	return nil
}

// MulliganClick toggles an opening card or confirms the mulligan.
func (c *Controller) MulliganClick(x, y float64, now time.Time) error {
	if c.g.State != game.StateMulligan {
		return nil
	}
	if layout.Confirm.Contains(x, y) {
		return c.g.ConfirmMulligan(now)
	}
	for i := range c.g.Mulligan.Marked {
		if layout.MulliganCard(i).Contains(x, y) {
			return c.g.ToggleMulligan(i)
		}
	}
	return nil
}
