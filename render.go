package fandial

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label typography. Labels are drawn bold at a fixed size; surfaces
// that cannot scale text may approximate.
const (
	labelTextSize = 16.0
	labelBold     = true
)

// Surface is the host canvas a dial draws onto. The dial issues draw
// calls only; it never owns the surface.
type Surface interface {
	FillCircle(cx, cy, r float64, c Color)
	CenteredText(text string, x, y float64, c Color, size float64, bold bool)
}

// Render draws the dial onto the surface: the filled disc in the
// current speed's color, the indicator dot on the inner ring at the
// current speed's slot, then all four labels in ordinal order on the
// outer ring. Render mutates nothing; with a zero radius (no Resize
// yet, or degenerate bounds) it degrades to a zero-size disc.
func (d *Dial) Render(s Surface) {
	cx, cy := d.Center()

	s.FillCircle(cx, cy, d.radius, d.FillColor())

	ix, iy := PositionForIndex(int(d.speed), d.radius-indicatorInset, cx, cy)
	s.FillCircle(ix, iy, d.radius/12, IndicatorColor)

	for _, sp := range Speeds() {
		lx, ly := PositionForIndex(int(sp), d.radius+labelOffset, cx, cy)
		s.CenteredText(d.config.lookup(sp.LabelKey()), lx, ly, IndicatorColor, labelTextSize, labelBold)
	}
}

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Background color for software-rendered frames (#fafafa).
var bgColor = color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}

// ImageSurface is a software Surface backed by an RGBA image, for
// headless rendering and tests. Text uses the fixed-size Face7x13
// bitmap face, so the size parameter is approximated and bold is
// emulated with a one-pixel double strike.
type ImageSurface struct {
	img  *image.RGBA
	face font.Face
}

// NewImageSurface creates a surface of the given pixel size with the
// background filled in.
func NewImageSurface(width, height int) *ImageSurface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, bgColor)
		}
	}
	return &ImageSurface{img: img, face: basicfont.Face7x13}
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// FillCircle draws a filled circle. Transparent colors are skipped
// rather than composited; an unset config color leaves the background
// visible, matching the degrade-to-default contract.
func (s *ImageSurface) FillCircle(cx, cy, radius float64, c Color) {
	if c.A == 0 {
		return
	}
	col := color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	bounds := s.img.Bounds()
	r2 := radius * radius

	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))

	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		dy := float64(y) + 0.5 - cy
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				s.img.SetRGBA(x, y, col)
			}
		}
	}
}

// CenteredText draws text centered on (x, y).
func (s *ImageSurface) CenteredText(text string, x, y float64, c Color, size float64, bold bool) {
	if c.A == 0 || text == "" {
		return
	}
	drawer := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: s.face,
	}
	adv := drawer.MeasureString(text)
	metrics := s.face.Metrics()
	dot := fixed.Point26_6{
		X: fixed.I(int(math.Round(x))) - adv/2,
		Y: fixed.I(int(math.Round(y))) + (metrics.Ascent-metrics.Descent)/2,
	}
	drawer.Dot = dot
	drawer.DrawString(text)
	if bold {
		drawer.Dot = fixed.Point26_6{X: dot.X + fixed.I(1), Y: dot.Y}
		drawer.DrawString(text)
	}
}
