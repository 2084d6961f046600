// Package fandial implements an interactive radial fan-speed selector.
//
// The dial cycles through four discrete speeds (off, low, medium, high)
// on each activation and renders the current speed as a colored disc
// with an indicator dot and text labels arranged around its rim. The
// package owns state, geometry, and draw orchestration only; the host
// UI supplies layout bounds, input dispatch, and a drawing Surface.
package fandial

import "errors"

// ErrBadColor is returned by ParseHex for malformed color strings.
var ErrBadColor = errors.New("fandial: invalid hex color")

// Fixed render colors. The off state always uses OffColor regardless of
// configuration, and the indicator dot is always IndicatorColor.
var (
	OffColor       = Color{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	IndicatorColor = Color{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// Color represents an RGBA color value. The zero value is fully
// transparent, which is the documented fallback for unset config colors.
type Color struct {
	R, G, B, A uint8
}

// Hex returns the color as a CSS hex string (#rrggbb, or #rrggbbaa when
// the alpha channel is not fully opaque).
func (c Color) Hex() string {
	s := "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
	if c.A != 0xff {
		s += hexByte(c.A)
	}
	return s
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0x0f]})
}

// ParseHex parses a CSS hex color: #rgb, #rrggbb or #rrggbbaa.
// The leading '#' is optional. Alpha defaults to opaque.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		r, okR := nibble(s[0])
		g, okG := nibble(s[1])
		b, okB := nibble(s[2])
		if !okR || !okG || !okB {
			return Color{}, ErrBadColor
		}
		return Color{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	case 6, 8:
		var v [4]uint8
		v[3] = 0xff
		for i := 0; i*2 < len(s); i++ {
			hi, okHi := nibble(s[i*2])
			lo, okLo := nibble(s[i*2+1])
			if !okHi || !okLo {
				return Color{}, ErrBadColor
			}
			v[i] = hi<<4 | lo
		}
		return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
	default:
		return Color{}, ErrBadColor
	}
}

func nibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Config controls a dial's appearance and text resolution.
type Config struct {
	// LowColor, MediumColor and HighColor fill the disc at the matching
	// speed. Unset (zero) colors stay fully transparent; the off state
	// ignores them and always renders gray.
	LowColor    Color
	MediumColor Color
	HighColor   Color

	// Lookup resolves opaque label identifiers (see Speed.LabelKey and
	// the accessibility action keys) to display text. A nil Lookup
	// returns each key unchanged.
	Lookup func(key string) string
}

// DefaultConfig returns a dial configuration with a conventional
// green/amber/red speed palette and identity label lookup.
func DefaultConfig() Config {
	return Config{
		LowColor:    Color{R: 0x44, G: 0xcc, B: 0x44, A: 0xff},
		MediumColor: Color{R: 0xff, G: 0xb3, B: 0x00, A: 0xff},
		HighColor:   Color{R: 0xe5, G: 0x39, B: 0x35, A: 0xff},
	}
}

// lookup applies the configured resolver, falling back to the key itself.
func (c Config) lookup(key string) string {
	if c.Lookup == nil {
		return key
	}
	return c.Lookup(key)
}
