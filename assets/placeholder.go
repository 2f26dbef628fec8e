package assets

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/SvenDH/hearthchess/game"
)

var (
	colorFelt   = color.RGBA{0x2f, 0x5d, 0x3a, 0xff}
	colorWood   = color.RGBA{0x6b, 0x45, 0x23, 0xff}
	colorIvory  = color.RGBA{0xee, 0xe6, 0xd2, 0xff}
	colorEbony  = color.RGBA{0x2a, 0x26, 0x24, 0xff}
	colorGold   = color.RGBA{0xd9, 0xa4, 0x41, 0xff}
	colorMana   = color.RGBA{0x3b, 0x7d, 0xd8, 0xff}
	colorRed    = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	colorBanner = color.RGBA{0x1c, 0x1c, 0x28, 0xe0}
)

// Placeholder generates flat art for an image missing from disk so the
// game stays playable without the art pack.
func Placeholder(s Spec) image.Image {
	switch s.Kind {
	case KindToken:
		// Tokens are shrunk cards so both read the same on the table.
		card := Placeholder(Spec{Name: strings.Replace(s.Name, "_m_", "_", 1), W: 269, H: 376, Kind: KindCard, Label: s.Label})
		return transform.Resize(card, s.W, s.H, transform.Linear)
	case KindMana:
		full := crystal(s.W, s.H)
		if s.Name == "mana_empty" {
			return effect.Grayscale(full)
		}
		return full
	case KindBack:
		img := panel(s.W, s.H, colorWood, colorGold, 6)
		label(img, "HEARTHCHESS", colorGold)
		return img
	case KindCard:
		fill, ink := colorIvory, colorEbony
		if side, ok := game.CardID(s.Name).Side(); ok && side == game.Black {
			fill, ink = colorEbony, colorIvory
		} else if !ok {
			fill = colorGold
		}
		img := panel(s.W, s.H, fill, ink, 4)
		label(img, s.Label, ink)
		return img
	}

	switch s.Name {
	case "board":
		img := panel(s.W, s.H, colorFelt, colorWood, 40)
		// Dark band marks where the enemy's minions stand.
		draw.Draw(img, image.Rect(100, 320, s.W-100, 500), image.NewUniform(color.RGBA{0x27, 0x4f, 0x31, 0xff}), image.Point{}, draw.Src)
		return img
	case "arrow":
		img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
		for y := 0; y < s.H; y++ {
			// Shaft in the middle third, head over the last quarter.
			d := abs(y - s.H/2)
			end := s.W * 3 / 4
			if d < s.H/6 {
				end = s.W
			}
			head := s.W - (s.W/4)*d*2/s.H
			if head > end {
				end = head
			}
			for x := 0; x < end; x++ {
				img.Set(x, y, colorRed)
			}
		}
		return img
	case "summon":
		img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
		draw.Draw(img, image.Rect(10, 10, s.W-10, s.H-10), image.NewUniform(color.White), image.Point{}, draw.Src)
		return blur.Gaussian(img, 6)
	case "enemy_turn", "confirm", "end_turn":
		img := panel(s.W, s.H, colorBanner, colorGold, 3)
		label(img, s.Label, colorGold)
		return img
	case "discard":
		img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
		for i := 0; i < min(s.W, s.H); i++ {
			for t := -4; t <= 4; t++ {
				img.Set(i*s.W/min(s.W, s.H)+t, i*s.H/min(s.W, s.H), colorRed)
				img.Set(s.W-i*s.W/min(s.W, s.H)+t, i*s.H/min(s.W, s.H), colorRed)
			}
		}
		return img
	}
	img := panel(s.W, s.H, colorWood, colorGold, 2)
	label(img, s.Label, colorGold)
	return img
}

func panel(w, h int, fill, border color.Color, thickness int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(border), image.Point{}, draw.Src)
	inner := image.Rect(thickness, thickness, w-thickness, h-thickness)
	draw.Draw(img, inner, image.NewUniform(fill), image.Point{}, draw.Src)
	return img
}

func crystal(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := w/2, h/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if abs(x-cx)*h+abs(y-cy)*w <= w*h/2 {
				img.Set(x, y, colorMana)
			}
		}
	}
	return img
}

// label prints text centred near the top of img.
func label(img *image.RGBA, text string, ink color.Color) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(text).Round()
	b := img.Bounds()
	y := b.Dy() / 2
	if b.Dy() > 100 {
		y = 40
	}
	d.Dot = fixed.P((b.Dx()-width)/2, y+basicfont.Face7x13.Ascent/2)
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
