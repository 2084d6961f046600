package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/satindergrewal/fandial"
)

// baseFaceSize is the pixel height of the bitmap face; text is scaled
// relative to it to honor the requested size.
const baseFaceSize = 13.0

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// ebitenSurface adapts an ebiten image to the dial's Surface contract.
type ebitenSurface struct {
	dst *ebiten.Image
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, c fandial.Color) {
	if c.A == 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c.NRGBA(), true)
}

func (s *ebitenSurface) CenteredText(str string, x, y float64, c fandial.Color, size float64, bold bool) {
	if c.A == 0 || str == "" {
		return
	}
	w, h := text.Measure(str, labelFace, 0)
	scale := size / baseFaceSize

	draw := func(dx float64) {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x-w*scale/2+dx, y-h*scale/2)
		op.ColorScale.ScaleWithColor(c.NRGBA())
		text.Draw(s.dst, str, labelFace, op)
	}
	draw(0)
	if bold {
		// Bitmap face has no bold variant; double strike instead.
		draw(1)
	}
}
