package fandial

// Accessibility action label keys, resolved through Config.Lookup.
// The reset key is exposed at the top of the cycle (high), signaling
// that the next activation wraps back to off.
const (
	actionChangeKey = "fan_action_change"
	actionResetKey  = "fan_action_reset"
)

// Accessibility is the descriptor consumed by the host's narration
// subsystem: the spoken description of the current speed plus the
// label for the dial's single custom action.
type Accessibility struct {
	Description string
	ActionLabel string
}

// Accessibility returns the current descriptor. It is recomputed after
// every state mutation, never lazily, so it can be read at any time
// without observing a stale description.
func (d *Dial) Accessibility() Accessibility {
	return d.a11y
}

// Description returns the narrated description of the current speed.
func (d *Dial) Description() string {
	return d.a11y.Description
}

// refreshAccessibility rebuilds the descriptor from the current speed.
func (d *Dial) refreshAccessibility() {
	key := actionChangeKey
	if d.speed == SpeedHigh {
		key = actionResetKey
	}
	d.a11y = Accessibility{
		Description: d.config.lookup(d.speed.LabelKey()),
		ActionLabel: d.config.lookup(key),
	}
}
