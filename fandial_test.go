package fandial

import (
	"errors"
	"testing"
)

func TestColorHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{R: 0xff, G: 0x44, B: 0x44, A: 0xff}, "#ff4444"},
		{Color{R: 0x00, G: 0xce, B: 0xd1, A: 0xff}, "#00ced1"},
		{Color{A: 0xff}, "#000000"},
		{Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, "#ffffff"},
		{Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, "#12345678"},
		{Color{}, "#00000000"},
	}
	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{R: 0xff, A: 0xff}},
		{"00ff00", Color{G: 0xff, A: 0xff}},
		{"#ABC", Color{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}},
		{"#12345678", Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}},
		{"#888888", OffColor},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "xyzxyz", "#gggggg"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrBadColor", in, err)
		}
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, c := range []Color{OffColor, IndicatorColor, DefaultConfig().LowColor} {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("round trip of %v: %v", c, err)
		}
		if got != c {
			t.Errorf("round trip %v -> %q -> %v", c, c.Hex(), got)
		}
	}
}

func TestDefaultConfigOpaque(t *testing.T) {
	cfg := DefaultConfig()
	for _, c := range []Color{cfg.LowColor, cfg.MediumColor, cfg.HighColor} {
		if c.A != 0xff {
			t.Errorf("default palette color %v not opaque", c)
		}
	}
}
