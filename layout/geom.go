// Package layout holds the virtual-screen geometry of the table: where
// every card, button and hero sits, and how pointer positions map to them.
// All values are in the fixed 1440x1080 virtual space; the window scales
// and letterboxes it.
package layout

import "math"

const (
	ScreenWidth  = 1440
	ScreenHeight = 1080

	CardWidth   = 269
	CardHeight  = 376
	TokenWidth  = 120
	TokenHeight = 157
	ManaSize    = 32
)

// Shape is anything a pointer can be inside of.
type Shape interface {
	Contains(x, y float64) bool
}

type Rect struct {
	X, Y, W, H float64
}

// Contains is inclusive on every edge.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

type Circle struct {
	X, Y, R float64
}

// Contains is strict: a point on the rim is outside.
func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy < c.R*c.R
}

var (
	HeroPower  = Circle{X: 880, Y: 824, R: 73}
	EnemyHero  = Circle{X: 720, Y: 215, R: 90}
	PlayerHero = Circle{X: 720, Y: 865, R: 90}
	EndTurn    = Rect{X: 1220, Y: 490, W: 180, H: 70}
	Confirm    = Rect{X: 600, Y: 800, W: 240, H: 100}
)

// Text anchors for the HUD.
var (
	EnemyManaText    = Point{950, 80}
	PlayerManaText   = Point{985, 1010}
	EnemyHealthText  = Point{765, 280}
	PlayerHealthText = Point{765, 910}
	EnemyDeckText    = Point{1330, 350}
	PlayerDeckText   = Point{1330, 650}
)

type Point struct {
	X, Y float64
}

// MulliganCard is where opening card i is drawn during the mulligan.
func MulliganCard(i int) Rect {
	return Rect{X: 220 + 340*float64(i), Y: 340, W: CardWidth, H: CardHeight}
}

// MulliganDiscard is where the discard mark of opening card i is drawn.
func MulliganDiscard(i int) Point {
	return Point{X: 260 + 340*float64(i), Y: 400}
}

// HandSpacing is the horizontal step between cards in a hand of n.
func HandSpacing(n int) int {
	return 500 / (n + 1)
}

func HandCard(i, n int) Rect {
	return Rect{X: 400 + float64(HandSpacing(n)*i), Y: 930, W: CardWidth, H: CardHeight}
}

// Detail is the enlarged preview of hand card i, lifted above the hand.
func Detail(i, n int) Rect {
	r := HandCard(i, n)
	r.Y = 710
	return r
}

// HandHit returns the index of the topmost hand card under the pointer or
// -1. Later cards overlap earlier ones, so the scan runs backwards.
func HandHit(x, y float64, n int) int {
	for i := n - 1; i >= 0; i-- {
		if HandCard(i, n).Contains(x, y) {
			return i
		}
	}
	return -1
}

func OpponentHandCard(i, n int) Rect {
	spacing := 300 / (n + 1)
	return Rect{X: 450 + float64(spacing*i), Y: -280, W: CardWidth, H: CardHeight}
}

// BoardX is the left edge of a centred row of n minions.
func BoardX(n int) float64 {
	return 720 - float64(n)*65
}

func rowY(enemy bool) float64 {
	if enemy {
		return 330
	}
	return 520
}

func Minion(i, n int, enemy bool) Rect {
	return Rect{X: BoardX(n) + 130*float64(i), Y: rowY(enemy), W: TokenWidth, H: TokenHeight}
}

// InDropArea reports whether a card released at (x, y) lands on the
// player's row.
func InDropArea(x, y float64) bool {
	return x > 125 && x < 1200 && y > 500 && y < 680
}

// InsertIndex is the gap in a row of n minions nearest to x.
func InsertIndex(x float64, n int) int {
	i := int(math.Floor((x - BoardX(n) + 65) / 130))
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func ManaCrystal(i int) Point {
	return Point{X: 1055 + 33*float64(i), Y: 985}
}
