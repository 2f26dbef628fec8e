package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/SvenDH/hearthchess/layout"
)

var Face = text.NewGoXFace(basicfont.Face7x13)

// TextScale blows the 7x13 bitmap font up to HUD size.
const TextScale = 2.5

// Images holds GPU copies of the loaded art by name.
type Images struct {
	m map[string]*ebiten.Image
}

func NewImages() *Images {
	return &Images{m: map[string]*ebiten.Image{}}
}

func (im *Images) Add(name string, img image.Image) {
	im.m[name] = ebiten.NewImageFromImage(img)
}

func (im *Images) Get(name string) *ebiten.Image {
	return im.m[name]
}

func (im *Images) Len() int {
	return len(im.m)
}

// DrawImage draws img unscaled with its top-left corner at (x, y).
func DrawImage(dst, img *ebiten.Image, x, y float64, alpha float32) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

// DrawImageRect stretches img over r. A zero width rect draws nothing.
func DrawImageRect(dst, img *ebiten.Image, r layout.Rect, alpha float32) {
	if img == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

var outline = [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}, {-2, -2}, {2, 2}, {-2, 2}, {2, -2}}

// DrawText draws white text with a black outline. y is the baseline.
func DrawText(dst *ebiten.Image, s string, x, y float64) {
	top := y - Face.Metrics().HAscent*TextScale
	for _, o := range outline {
		op := &text.DrawOptions{}
		op.GeoM.Scale(TextScale, TextScale)
		op.GeoM.Translate(x+o[0], top+o[1])
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(dst, s, Face, op)
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(TextScale, TextScale)
	op.GeoM.Translate(x, top)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, s, Face, op)
}

// DrawTextCentered draws text centred on (x, y).
func DrawTextCentered(dst *ebiten.Image, s string, x, y float64) {
	w, h := text.Measure(s, Face, 0)
	DrawText(dst, s, x-w*TextScale/2, y+h*TextScale/2-Face.Metrics().HDescent*TextScale)
}

// DrawArrow stretches the arrow image from the arrow's source to its
// tip, centred on the image's own height.
func DrawArrow(dst, img *ebiten.Image, a layout.Arrow) {
	if img == nil || a.Length() == 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.ScaleX(float64(b.Dx())), 1)
	op.GeoM.Translate(0, -float64(b.Dy())/2)
	op.GeoM.Rotate(a.Angle())
	op.GeoM.Translate(a.X0, a.Y0)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// DrawBar draws a progress bar filled to p in [0, 1].
func DrawBar(dst *ebiten.Image, r layout.Rect, p float64, fill color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W*p), float32(r.H), fill, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, color.White, false)
}

// Dim darkens the whole screen.
func Dim(dst *ebiten.Image, alpha uint8) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: alpha}, false)
}

// Highlight rings a circle, used for the hero power and targets.
func Highlight(dst *ebiten.Image, c layout.Circle, clr color.Color) {
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y), float32(c.R), 4, clr, true)
}

// Outline strokes a rect.
func Outline(dst *ebiten.Image, r layout.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 4, clr, true)
}
