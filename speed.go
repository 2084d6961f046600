package fandial

import "fmt"

// Speed is the dial's selectable fan speed, an ordered cyclic enum.
// The zero value is SpeedOff, the dial's initial state. Ordinals 0..3
// are significant: they pick the angular slot for a speed's label.
type Speed int

const (
	SpeedOff Speed = iota
	SpeedLow
	SpeedMedium
	SpeedHigh

	speedCount = 4
)

// Speeds returns all speeds in ordinal order. This is the fixed
// iteration order used when laying out labels, independent of the
// currently selected speed.
func Speeds() [speedCount]Speed {
	return [speedCount]Speed{SpeedOff, SpeedLow, SpeedMedium, SpeedHigh}
}

// Valid reports whether s is one of the four defined speeds.
func (s Speed) Valid() bool {
	return s >= SpeedOff && s < speedCount
}

// Next returns the successor in the cycle off→low→medium→high→off.
func (s Speed) Next() Speed {
	switch s {
	case SpeedOff:
		return SpeedLow
	case SpeedLow:
		return SpeedMedium
	case SpeedMedium:
		return SpeedHigh
	default:
		return SpeedOff
	}
}

func (s Speed) String() string {
	switch s {
	case SpeedOff:
		return "off"
	case SpeedLow:
		return "low"
	case SpeedMedium:
		return "medium"
	case SpeedHigh:
		return "high"
	default:
		return "unknown"
	}
}

// LabelKey returns the opaque label identifier for s, resolved to
// display text by the host's resource table (Config.Lookup).
func (s Speed) LabelKey() string {
	switch s {
	case SpeedOff:
		return "fan_off"
	case SpeedLow:
		return "fan_low"
	case SpeedMedium:
		return "fan_medium"
	case SpeedHigh:
		return "fan_high"
	default:
		return "fan_unknown"
	}
}

// ParseSpeed is handy for config files / CLI flags.
func ParseSpeed(s string) (Speed, error) {
	switch s {
	case "off":
		return SpeedOff, nil
	case "low":
		return SpeedLow, nil
	case "medium":
		return SpeedMedium, nil
	case "high":
		return SpeedHigh, nil
	default:
		return SpeedOff, fmt.Errorf("invalid fan speed: %q", s)
	}
}
